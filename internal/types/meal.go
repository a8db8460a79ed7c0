package types

import "strings"

type Meal struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null;column:name" json:"name"`
}

func (Meal) TableName() string {
	return "meals"
}

func (m *Meal) Validate() map[string]string {
	errorDetails := map[string]string{}
	if strings.TrimSpace(m.Name) == "" {
		errorDetails["name"] = "Name cannot be blank"
	}
	return errorDetails
}
