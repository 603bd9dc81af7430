package handler

import (
	"net/http"
	"strconv"

	"learning-app-backend/internal/service"
	"learning-app-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetWords returns all vocabulary words
func (h *CatalogHandler) GetWords(c *gin.Context) {
	words, err := h.catalogService.GetAllWords()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching words")
		return
	}

	utils.SuccessResponse(c, "Words fetched successfully", words)
}

// GetQuestions returns all exam questions
func (h *CatalogHandler) GetQuestions(c *gin.Context) {
	questions, err := h.catalogService.GetAllQuestions()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching questions")
		return
	}

	utils.SuccessResponse(c, "Questions fetched successfully", questions)
}

// GetCategories returns all categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.GetAllCategories()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	utils.SuccessResponse(c, "Categories fetched successfully", categories)
}

// GetSubcategories returns the subcategories of a category
func (h *CatalogHandler) GetSubcategories(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	subcategories, err := h.catalogService.GetSubcategoriesByCategoryID(uint(categoryID))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching subcategories")
		return
	}

	utils.SuccessResponse(c, "Subcategories fetched successfully", subcategories)
}
