package types

// Ingredient is shared reference data: rows are deduplicated on
// (name, serving_size_g) and never removed when a meal is deleted.
type Ingredient struct {
	ID                  uint    `gorm:"primaryKey" json:"id"`
	Name                string  `gorm:"size:100;not null;uniqueIndex:idx_ingredients_name_serving;column:name" json:"name"`
	Calories            float64 `gorm:"not null;column:calories" json:"calories"`
	ServingSizeG        float64 `gorm:"not null;uniqueIndex:idx_ingredients_name_serving;column:serving_size_g" json:"serving_size_g"`
	FatTotalG           float64 `gorm:"not null;column:fat_total_g" json:"fat_total_g"`
	FatSaturatedG       float64 `gorm:"not null;column:fat_saturated_g" json:"fat_saturated_g"`
	ProteinG            float64 `gorm:"not null;column:protein_g" json:"protein_g"`
	SodiumMg            int     `gorm:"not null;column:sodium_mg" json:"sodium_mg"`
	PotassiumMg         int     `gorm:"not null;column:potassium_mg" json:"potassium_mg"`
	CholesterolMg       int     `gorm:"not null;column:cholesterol_mg" json:"cholesterol_mg"`
	CarbohydratesTotalG float64 `gorm:"not null;column:carbohydrates_total_g" json:"carbohydrates_total_g"`
	FiberG              float64 `gorm:"not null;column:fiber_g" json:"fiber_g"`
	SugarG              float64 `gorm:"not null;column:sugar_g" json:"sugar_g"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// RecommendedDailyAllowance is a single-row reference table used by the
// ingredients overview.
type RecommendedDailyAllowance struct {
	ID                  uint    `gorm:"primaryKey" json:"-"`
	Calories            float64 `gorm:"not null;column:calories" json:"calories"`
	FatTotalG           float64 `gorm:"not null;column:fat_total_g" json:"fat_total_g"`
	FatSaturatedG       float64 `gorm:"not null;column:fat_saturated_g" json:"fat_saturated_g"`
	ProteinG            float64 `gorm:"not null;column:protein_g" json:"protein_g"`
	SodiumMg            int     `gorm:"not null;column:sodium_mg" json:"sodium_mg"`
	PotassiumMg         int     `gorm:"not null;column:potassium_mg" json:"potassium_mg"`
	CholesterolMg       int     `gorm:"not null;column:cholesterol_mg" json:"cholesterol_mg"`
	CarbohydratesTotalG float64 `gorm:"not null;column:carbohydrates_total_g" json:"carbohydrates_total_g"`
	FiberG              float64 `gorm:"not null;column:fiber_g" json:"fiber_g"`
	SugarG              float64 `gorm:"not null;column:sugar_g" json:"sugar_g"`
}

func (RecommendedDailyAllowance) TableName() string {
	return "recommended_daily_allowances"
}
