package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Rating    int       `json:"rating"` // stored as-is, no range check
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"createdAt"`

	// One review per (author, subject) pair, enforced at the storage level.
	UserID    uint    `gorm:"not null;uniqueIndex:idx_reviews_author_subject" json:"-"`
	Author    User    `gorm:"foreignKey:UserID" json:"-"`
	PerfumeID uint    `gorm:"not null;uniqueIndex:idx_reviews_author_subject" json:"-"`
	Subject   Perfume `gorm:"foreignKey:PerfumeID" json:"-"`

	Likes    []User    `gorm:"many2many:review_likes" json:"-"`
	Comments []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Review) LikesCount() int {
	return len(r.Likes)
}
