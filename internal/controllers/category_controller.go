package controllers

import (
	"errors"
	"log"
	"net/http"

	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// Create handles POST /api/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := cc.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			respondError(c, http.StatusBadRequest, "Category with this title and type already exists")
			return
		}
		log.Printf("ERROR: failed to create category: %v", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusCreated, category)
}

// List handles GET /api/categories
func (cc *CategoryController) List(c *gin.Context) {
	var q models.ListCategoriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	categories, err := cc.categoryService.List(c.Request.Context(), &q)
	if err != nil {
		log.Printf("ERROR: failed to list categories: %v", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, categories)
}

// Get handles GET /api/categories/:id
func (cc *CategoryController) Get(c *gin.Context) {
	category, err := cc.categoryService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("ERROR: failed to get category: %v", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, category)
}

// Update handles PUT /api/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	var req models.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := cc.categoryService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		if errors.Is(err, service.ErrCategoryExists) {
			respondError(c, http.StatusBadRequest, "Category with this title and type already exists")
			return
		}
		log.Printf("ERROR: failed to update category: %v", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, category)
}

// Delete handles DELETE /api/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	err := cc.categoryService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCategoryInUse) {
			respondError(c, http.StatusBadRequest, "Cannot delete category with existing transactions")
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("ERROR: failed to delete category: %v", err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondMessage(c, http.StatusOK, "Category deleted successfully")
}
