package models

// Category represents the categories table
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

// TableName specifies the table name for Category model
func (Category) TableName() string {
	return "categories"
}

// Subcategory represents the subcategories table
type Subcategory struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `gorm:"size:255" json:"name"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName specifies the table name for Subcategory model
func (Subcategory) TableName() string {
	return "subcategories"
}

// SubcategoryDTO is the wire shape for a subcategory
type SubcategoryDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	CategoryID uint   `json:"category_id"`
}

// ToSubcategoryDTO maps a persisted subcategory to its wire shape
func ToSubcategoryDTO(s Subcategory) SubcategoryDTO {
	return SubcategoryDTO{
		ID:         s.ID,
		Name:       s.Name,
		CategoryID: s.CategoryID,
	}
}
