package handlers

import (
	"errors"

	"libeasy/internal/core/domain"
	"libeasy/internal/core/services"
	"libeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BookHandler handles book catalog endpoints
type BookHandler struct {
	bookService *services.BookService
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// List handles listing all books
// @Summary List books
// @Tags Books
// @Produce json
// @Success 200 {array} models.Book
// @Router /books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	books, err := h.bookService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list books")
	}
	return response.JSON(c, books)
}

// GetByID handles getting a book by ID
// @Summary Get book
// @Tags Books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} map[string]string
// @Router /books/{id} [get]
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid book ID")
	}

	book, err := h.bookService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrBookNotFound) {
			return response.NotFound(c, "Book not found")
		}
		return response.InternalServerError(c, "Failed to get book")
	}
	return response.JSON(c, book)
}

// Create handles creating a book
// @Summary Create book
// @Tags Books
// @Accept json
// @Produce json
// @Param body body services.BookInput true "Book data"
// @Success 200 {object} models.Book
// @Security BearerAuth
// @Router /books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var input services.BookInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Title == "" {
		return response.BadRequest(c, "Title is required")
	}

	book, err := h.bookService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCopyCount) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to create book")
	}
	return response.JSON(c, book)
}

// Update handles updating a book
// @Summary Update book
// @Tags Books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param body body services.BookInput true "Book data"
// @Success 200 {object} models.Book
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid book ID")
	}

	var input services.BookInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	book, err := h.bookService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrInvalidCopyCount):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update book")
		}
	}
	return response.JSON(c, book)
}

// Delete handles deleting a book
// @Summary Delete book
// @Tags Books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid book ID")
	}

	if err := h.bookService.Delete(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrBookHasRecords):
			return response.Conflict(c, "Book has borrow records and cannot be deleted")
		default:
			return response.InternalServerError(c, "Failed to delete book")
		}
	}
	return response.Message(c, "Book deleted successfully")
}
