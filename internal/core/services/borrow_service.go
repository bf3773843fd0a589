package services

import (
	"context"
	"errors"
	"log"
	"time"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/core/domain"

	"gorm.io/gorm"
)

// BorrowService handles the issue/return workflow. Both operations run
// inside a single request-scoped transaction so the copy counter and the
// record commit together or not at all.
type BorrowService struct {
	db          *gorm.DB
	studentRepo repositories.StudentRepository
	recordRepo  repositories.BorrowRecordRepository
}

// NewBorrowService creates a new borrow service
func NewBorrowService(
	db *gorm.DB,
	studentRepo repositories.StudentRepository,
	recordRepo repositories.BorrowRecordRepository,
) *BorrowService {
	return &BorrowService{
		db:          db,
		studentRepo: studentRepo,
		recordRepo:  recordRepo,
	}
}

// IssueInput represents issue input
type IssueInput struct {
	StudentID uint `json:"student_id"`
	BookID    uint `json:"book_id"`
}

// today returns the current date at midnight
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Issue creates a borrow record and decrements the book's available count.
// The decrement is a single conditional UPDATE guarded on
// available_copies > 0, so two concurrent issues of the last copy cannot
// both succeed regardless of the datastore's isolation level.
func (s *BorrowService) Issue(ctx context.Context, input *IssueInput) (*models.BorrowRecord, error) {
	var record *models.BorrowRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Where("id = ?", input.BookID).First(&book).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrBookNotFound
			}
			return err
		}
		if book.AvailableCopies <= 0 {
			return domain.ErrBookNotAvailable
		}

		var student models.Student
		if err := tx.Where("id = ?", input.StudentID).First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrStudentNotFound
			}
			return err
		}

		res := tx.Model(&models.Book{}).
			Where("id = ? AND available_copies > 0", book.ID).
			UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost the race for the last copy
			return domain.ErrBookNotAvailable
		}

		issueDate := today()
		record = &models.BorrowRecord{
			StudentID: input.StudentID,
			BookID:    input.BookID,
			IssueDate: issueDate,
			DueDate:   issueDate.AddDate(0, 0, models.LoanPeriodDays),
			Status:    models.StatusIssued,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Book %d issued to student %d (record %d)", input.BookID, input.StudentID, record.ID)
	return record, nil
}

// Return closes a borrow record and restores the book's available count.
// Returning an already-returned record is a no-op success. A missing book
// row is tolerated: the record is still marked returned.
func (s *BorrowService) Return(ctx context.Context, recordID uint) (alreadyReturned bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.BorrowRecord
		if err := tx.Where("id = ?", recordID).First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecordNotFound
			}
			return err
		}

		if record.IsReturned() {
			alreadyReturned = true
			return nil
		}

		returnDate := today()
		record.ReturnDate = &returnDate
		record.Status = models.StatusReturned
		if err := tx.Save(&record).Error; err != nil {
			return err
		}

		return tx.Model(&models.Book{}).
			Where("id = ?", record.BookID).
			UpdateColumn("available_copies", gorm.Expr("available_copies + 1")).Error
	})
	if err != nil {
		return false, err
	}

	if !alreadyReturned {
		log.Printf("Borrow record %d returned", recordID)
	}
	return alreadyReturned, nil
}

// List lists all borrow records
func (s *BorrowService) List(ctx context.Context) ([]*models.BorrowRecord, error) {
	return s.recordRepo.List(ctx)
}

// HistoryForStudent lists all borrow records for a student ID
func (s *BorrowService) HistoryForStudent(ctx context.Context, studentID uint) ([]*models.BorrowRecord, error) {
	return s.recordRepo.ListByStudent(ctx, studentID)
}

// MyHistory resolves the authenticated user's student profile by email and
// returns its borrow records
func (s *BorrowService) MyHistory(ctx context.Context, email string) ([]*models.BorrowRecord, error) {
	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoStudentProfile
		}
		return nil, err
	}
	return s.recordRepo.ListByStudent(ctx, student.ID)
}
