package entity

import "time"

// User represents the centralized authentication table
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleID       uint      `gorm:"not null;index" json:"role_id"`
	Login        string    `gorm:"type:varchar(255);uniqueIndex:uq_users_login;not null" json:"login"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}
