package handlers

import (
	"errors"

	"libeasy/internal/adapters/http/middleware"
	"libeasy/internal/core/domain"
	"libeasy/internal/core/services"
	"libeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// BorrowHandler handles borrow record endpoints
type BorrowHandler struct {
	borrowService *services.BorrowService
}

// NewBorrowHandler creates a new borrow handler
func NewBorrowHandler(borrowService *services.BorrowService) *BorrowHandler {
	return &BorrowHandler{borrowService: borrowService}
}

// List handles listing all borrow records
// @Summary List borrow records
// @Tags Borrowing
// @Produce json
// @Success 200 {array} models.BorrowRecord
// @Security BearerAuth
// @Router /borrow-records [get]
func (h *BorrowHandler) List(c *fiber.Ctx) error {
	records, err := h.borrowService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list borrow records")
	}
	return response.JSON(c, records)
}

// Issue handles issuing a book to a student
// @Summary Issue book
// @Tags Borrowing
// @Accept json
// @Produce json
// @Param body body services.IssueInput true "Issue data"
// @Success 200 {object} models.BorrowRecord
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /borrow-records/issue [post]
func (h *BorrowHandler) Issue(c *fiber.Ctx) error {
	var input services.IssueInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.StudentID == 0 || input.BookID == 0 {
		return response.BadRequest(c, "student_id and book_id are required")
	}

	record, err := h.borrowService.Issue(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookNotFound):
			return response.NotFound(c, "Book not found")
		case errors.Is(err, domain.ErrStudentNotFound):
			return response.NotFound(c, "Student not found")
		case errors.Is(err, domain.ErrBookNotAvailable):
			return response.BadRequest(c, "Book is not available")
		default:
			return response.InternalServerError(c, "Failed to issue book")
		}
	}
	return response.JSON(c, record)
}

// Return handles returning a borrowed book
// @Summary Return book
// @Tags Borrowing
// @Produce json
// @Param id path int true "Borrow record ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /borrow-records/{id}/return [post]
func (h *BorrowHandler) Return(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid record ID")
	}

	alreadyReturned, err := h.borrowService.Return(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return response.NotFound(c, "Record not found")
		}
		return response.InternalServerError(c, "Failed to return book")
	}

	if alreadyReturned {
		return response.Message(c, "Book already returned")
	}
	return response.Message(c, "Book returned successfully")
}

// MyHistory handles listing the authenticated user's own borrow records
// @Summary My borrow history
// @Tags Borrowing
// @Produce json
// @Success 200 {array} models.BorrowRecord
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /borrow-records/my-history [get]
func (h *BorrowHandler) MyHistory(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return response.Unauthorized(c, "Unauthorized")
	}

	records, err := h.borrowService.MyHistory(c.Context(), user.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNoStudentProfile) {
			return response.NotFound(c, "Student profile not found")
		}
		return response.InternalServerError(c, "Failed to get borrow history")
	}
	return response.JSON(c, records)
}
