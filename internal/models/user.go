package models

import "time"

const (
	RoleMember    = "member"
	RoleCounselor = "counselor"
)

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	DisplayName        string    `gorm:"not null;default:''" json:"displayName"`
	Role               string    `gorm:"not null;default:member" json:"role"`
	CounselorID        *uint     `gorm:"index" json:"counselorId,omitempty"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"mustChangePassword"`
	CreatedAt          time.Time `gorm:"not null" json:"createdAt"`
}

func (user *User) IsCounselor() bool {
	return user != nil && user.Role == RoleCounselor
}
