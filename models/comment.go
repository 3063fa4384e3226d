package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `gorm:"not null;index" json:"-"`
	Author User `gorm:"foreignKey:UserID" json:"-"`

	// Removed together with the parent review.
	ReviewID uint   `gorm:"not null;index" json:"-"`
	Review   Review `gorm:"foreignKey:ReviewID" json:"-"`
}
