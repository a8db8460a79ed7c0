package types

import (
	"strings"
	"time"
)

type Activity struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:100;not null;column:description" json:"description"`
	Duration    float64   `gorm:"not null;column:duration" json:"duration"`
	Calories    int       `gorm:"not null;column:calories" json:"calories"`
	Started     time.Time `gorm:"not null;column:started" json:"started"`
	UserID      uint      `gorm:"not null;index;column:user_id" json:"user_id"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) Validate() map[string]string {
	errorDetails := map[string]string{}
	if strings.TrimSpace(a.Description) == "" {
		errorDetails["description"] = "Description cannot be blank"
	}
	if a.Duration < 0 {
		errorDetails["duration"] = "Duration cannot be less than zero"
	}
	if a.Calories < 0 {
		errorDetails["calories"] = "Calories cannot be less than zero"
	}
	return errorDetails
}
