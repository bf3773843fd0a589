package repositories

import (
	"context"

	"libeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// borrowRecordRepository implements BorrowRecordRepository interface
type borrowRecordRepository struct {
	db *gorm.DB
}

// NewBorrowRecordRepository creates a new borrow record repository
func NewBorrowRecordRepository(db *gorm.DB) BorrowRecordRepository {
	return &borrowRecordRepository{db: db}
}

// GetByID gets a borrow record by ID
func (r *borrowRecordRepository) GetByID(ctx context.Context, id uint) (*models.BorrowRecord, error) {
	var record models.BorrowRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List lists all borrow records
func (r *borrowRecordRepository) List(ctx context.Context) ([]*models.BorrowRecord, error) {
	var records []*models.BorrowRecord
	err := r.db.WithContext(ctx).Find(&records).Error
	return records, err
}

// ListByStudent lists all borrow records for a student
func (r *borrowRecordRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.BorrowRecord, error) {
	var records []*models.BorrowRecord
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Find(&records).Error
	return records, err
}

// CountByBook counts borrow records referencing a book
func (r *borrowRecordRepository) CountByBook(ctx context.Context, bookID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BorrowRecord{}).Where("book_id = ?", bookID).Count(&count).Error
	return count, err
}

// CountByStudent counts borrow records referencing a student
func (r *borrowRecordRepository) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BorrowRecord{}).Where("student_id = ?", studentID).Count(&count).Error
	return count, err
}
