package types

// MealIngredient links a meal to the ingredients resolved for it at
// creation time. Rows cascade-delete with either parent; the pair is unique.
type MealIngredient struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	MealID       uint `gorm:"not null;uniqueIndex:idx_meals_ingredients_pair;column:meal_id" json:"meal_id"`
	IngredientID uint `gorm:"not null;uniqueIndex:idx_meals_ingredients_pair;column:ingredient_id" json:"ingredient_id"`

	Meal       Meal       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Ingredient Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (MealIngredient) TableName() string {
	return "meals_ingredients"
}

// UserMeal links a user to a meal they added. Rows cascade-delete with
// either parent; re-adding the same meal is a no-op.
type UserMeal struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_users_meals_pair;column:user_id" json:"user_id"`
	MealID uint `gorm:"not null;uniqueIndex:idx_users_meals_pair;column:meal_id" json:"meal_id"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Meal Meal `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (UserMeal) TableName() string {
	return "users_meals"
}
