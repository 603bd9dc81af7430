package service

import (
	"learning-app-backend/internal/models"
	"learning-app-backend/internal/repository"
)

// CatalogService serves the read-only vocabulary and exam catalog.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
}

func NewCatalogService(catalogRepo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// GetAllWords returns every vocabulary word
func (s *CatalogService) GetAllWords() ([]models.Word, error) {
	return s.catalogRepo.GetAllWords()
}

// GetAllCategories returns every category
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.catalogRepo.GetAllCategories()
}

// GetSubcategoriesByCategoryID returns the subcategories of a category
// in their wire shape
func (s *CatalogService) GetSubcategoriesByCategoryID(categoryID uint) ([]models.SubcategoryDTO, error) {
	subcategories, err := s.catalogRepo.GetSubcategoriesByCategoryID(categoryID)
	if err != nil {
		return nil, err
	}

	dtos := make([]models.SubcategoryDTO, 0, len(subcategories))
	for _, sub := range subcategories {
		dtos = append(dtos, models.ToSubcategoryDTO(sub))
	}
	return dtos, nil
}

// GetAllQuestions returns every exam question in its wire shape
func (s *CatalogService) GetAllQuestions() ([]models.QuestionDTO, error) {
	questions, err := s.catalogRepo.GetAllQuestions()
	if err != nil {
		return nil, err
	}

	dtos := make([]models.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		dtos = append(dtos, models.ToQuestionDTO(q))
	}
	return dtos, nil
}
