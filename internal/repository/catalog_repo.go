package repository

import (
	"learning-app-backend/internal/models"

	"gorm.io/gorm"
)

// CatalogRepository serves the read-only vocabulary and exam tables.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetAllWords returns every vocabulary word
func (r *CatalogRepository) GetAllWords() ([]models.Word, error) {
	var words []models.Word
	err := r.db.Find(&words).Error
	return words, err
}

// GetAllCategories returns every category
func (r *CatalogRepository) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Find(&categories).Error
	return categories, err
}

// GetSubcategoriesByCategoryID returns the subcategories under a category
func (r *CatalogRepository) GetSubcategoriesByCategoryID(categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.Where("category_id = ?", categoryID).Find(&subcategories).Error
	return subcategories, err
}

// GetAllQuestions returns every exam question
func (r *CatalogRepository) GetAllQuestions() ([]models.Question, error) {
	var questions []models.Question
	err := r.db.Find(&questions).Error
	return questions, err
}
