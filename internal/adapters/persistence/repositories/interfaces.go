package repositories

import (
	"context"

	"libeasy/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// BookRepository defines book repository interface
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	List(ctx context.Context) ([]*models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id uint) error
}

// StudentRepository defines student repository interface
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	ExistsByEmailOrRollNo(ctx context.Context, email, rollNo string, excludeID uint) (bool, error)
}

// BorrowRecordRepository defines borrow record repository interface
type BorrowRecordRepository interface {
	GetByID(ctx context.Context, id uint) (*models.BorrowRecord, error)
	List(ctx context.Context) ([]*models.BorrowRecord, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.BorrowRecord, error)
	CountByBook(ctx context.Context, bookID uint) (int64, error)
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
}
