package types

import "time"

const (
	LevelUser  = "user"
	LevelAdmin = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null;column:name" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null;column:email" json:"email"`
	Level        string    `gorm:"size:100;not null;default:user;column:level" json:"level"`
	PasswordHash string    `gorm:"size:255;column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) Validate() map[string]string {
	errorDetails := map[string]string{}
	if u.Name == "" {
		errorDetails["name"] = "Name cannot be blank"
	}
	if u.Email == "" {
		errorDetails["email"] = "Email cannot be blank"
	}
	return errorDetails
}
