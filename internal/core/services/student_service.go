package services

import (
	"context"
	"errors"
	"time"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/core/domain"

	"gorm.io/gorm"
)

// StudentService handles student record business logic
type StudentService struct {
	studentRepo repositories.StudentRepository
	recordRepo  repositories.BorrowRecordRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.StudentRepository, recordRepo repositories.BorrowRecordRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		recordRepo:  recordRepo,
	}
}

// StudentInput represents student create/update input
type StudentInput struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	RollNo     string    `json:"roll_no"`
	Department string    `json:"department"`
	JoinDate   time.Time `json:"join_date"`
}

// List lists all students
func (s *StudentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

// GetByID gets a student by ID
func (s *StudentService) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// Create creates a new student record
func (s *StudentService) Create(ctx context.Context, input *StudentInput) (*models.Student, error) {
	exists, err := s.studentRepo.ExistsByEmailOrRollNo(ctx, input.Email, input.RollNo, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrStudentConflict
	}

	student := &models.Student{
		Name:       input.Name,
		Email:      input.Email,
		RollNo:     input.RollNo,
		Department: input.Department,
		JoinDate:   input.JoinDate,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update updates a student record
func (s *StudentService) Update(ctx context.Context, id uint, input *StudentInput) (*models.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.ExistsByEmailOrRollNo(ctx, input.Email, input.RollNo, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrStudentConflict
	}

	student.Name = input.Name
	student.Email = input.Email
	student.RollNo = input.RollNo
	student.Department = input.Department
	student.JoinDate = input.JoinDate

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete deletes a student. Refused while borrow records reference them.
func (s *StudentService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.recordRepo.CountByStudent(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrStudentHasRecords
	}

	return s.studentRepo.Delete(ctx, id)
}
