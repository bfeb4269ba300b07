package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only category routes.
func (h *CategoryHandler) RegisterPublicRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
}

// RegisterAdminRoutes registers the category-management routes.
func (h *CategoryHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/categories", h.HandleCreateCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Categories retrieved successfully", categories)
}

// HandleGetCategoryByID retrieves a single category with its products.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	category, err := h.service.GetCategoryByID(c.Params("id"))
	if err != nil {
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusOK, "Category retrieved successfully", category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.validate.Struct(category); err != nil {
		return Fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := h.service.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return DomainError(c, err)
	}
	return Success(c, fiber.StatusCreated, "Category created successfully", category)
}
