package models

import "time"

// User represents the canonical identity entity. The password hash never
// leaves the persistence layer; transport shapes live in internal/users.
type User struct {
	ID           uint       `gorm:"column:id;primaryKey"`
	Username     string     `gorm:"column:username;size:50;not null;uniqueIndex:idx_users_username"`
	Email        string     `gorm:"column:email;size:100;not null;uniqueIndex:idx_users_email"`
	PasswordHash string     `gorm:"column:password_hash;size:255;not null"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	CartItems    []CartItem `gorm:"foreignKey:UserID"`
}
