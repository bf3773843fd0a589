package handlers

import (
	"errors"

	"libeasy/internal/core/domain"
	"libeasy/internal/core/services"
	"libeasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StudentHandler handles student record endpoints
type StudentHandler struct {
	studentService *services.StudentService
	borrowService  *services.BorrowService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *services.StudentService, borrowService *services.BorrowService) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		borrowService:  borrowService,
	}
}

// List handles listing all students
// @Summary List students
// @Tags Students
// @Produce json
// @Success 200 {array} models.Student
// @Security BearerAuth
// @Router /students [get]
func (h *StudentHandler) List(c *fiber.Ctx) error {
	students, err := h.studentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list students")
	}
	return response.JSON(c, students)
}

// GetByID handles getting a student by ID
// @Summary Get student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id} [get]
func (h *StudentHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	student, err := h.studentService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to get student")
	}
	return response.JSON(c, student)
}

// Create handles creating a student
// @Summary Create student
// @Tags Students
// @Accept json
// @Produce json
// @Param body body services.StudentInput true "Student data"
// @Success 200 {object} models.Student
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /students [post]
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var input services.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" || input.Email == "" || input.RollNo == "" {
		return response.BadRequest(c, "Name, email and roll number are required")
	}

	student, err := h.studentService.Create(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrStudentConflict) {
			return response.Conflict(c, "Student email or roll number already exists")
		}
		return response.InternalServerError(c, "Failed to create student")
	}
	return response.JSON(c, student)
}

// Update handles updating a student
// @Summary Update student
// @Tags Students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param body body services.StudentInput true "Student data"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id} [put]
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	var input services.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	student, err := h.studentService.Update(c.Context(), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStudentNotFound):
			return response.NotFound(c, "Student not found")
		case errors.Is(err, domain.ErrStudentConflict):
			return response.Conflict(c, "Student email or roll number already exists")
		default:
			return response.InternalServerError(c, "Failed to update student")
		}
	}
	return response.JSON(c, student)
}

// Delete handles deleting a student
// @Summary Delete student
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /students/{id} [delete]
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	if err := h.studentService.Delete(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrStudentNotFound):
			return response.NotFound(c, "Student not found")
		case errors.Is(err, domain.ErrStudentHasRecords):
			return response.Conflict(c, "Student has borrow records and cannot be deleted")
		default:
			return response.InternalServerError(c, "Failed to delete student")
		}
	}
	return response.Message(c, "Student deleted successfully")
}

// BorrowHistory handles listing a student's borrow records
// @Summary Student borrow history
// @Tags Students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} models.BorrowRecord
// @Security BearerAuth
// @Router /students/{id}/borrow-history [get]
func (h *StudentHandler) BorrowHistory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid student ID")
	}

	records, err := h.borrowService.HistoryForStudent(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to get borrow history")
	}
	return response.JSON(c, records)
}
