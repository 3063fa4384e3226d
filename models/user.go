package models

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Email    string `json:"email,omitempty"`
	Role     Role   `gorm:"type:varchar(16);default:'USER'" json:"role"`

	// Friends is a directed edge set: toggling a friendship writes a join row
	// for the initiator only, the target's reciprocal set is untouched.
	Friends []*User `gorm:"many2many:user_friends;joinForeignKey:UserID;joinReferences:FriendID" json:"-"`

	WishlistPerfumes []Perfume `gorm:"many2many:user_wishlist" json:"-"`
	OwnedPerfumes    []Perfume `gorm:"many2many:user_owned" json:"-"`

	CreatedAt time.Time `json:"-"`
}
