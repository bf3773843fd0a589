package services

import (
	"context"
	"errors"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/adapters/persistence/repositories"
	"libeasy/internal/core/domain"

	"gorm.io/gorm"
)

// BookService handles book catalog business logic
type BookService struct {
	bookRepo   repositories.BookRepository
	recordRepo repositories.BorrowRecordRepository
}

// NewBookService creates a new book service
func NewBookService(bookRepo repositories.BookRepository, recordRepo repositories.BorrowRecordRepository) *BookService {
	return &BookService{
		bookRepo:   bookRepo,
		recordRepo: recordRepo,
	}
}

// BookInput represents book create/update input
type BookInput struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
}

// List lists all books
func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.List(ctx)
}

// GetByID gets a book by ID
func (s *BookService) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// Create creates a new book. All copies start available.
func (s *BookService) Create(ctx context.Context, input *BookInput) (*models.Book, error) {
	if input.TotalCopies < 0 {
		return nil, domain.ErrInvalidCopyCount
	}

	book := &models.Book{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.TotalCopies,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update updates a book, enforcing 0 <= available_copies <= total_copies
func (s *BookService) Update(ctx context.Context, id uint, input *BookInput) (*models.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AvailableCopies < 0 || input.AvailableCopies > input.TotalCopies {
		return nil, domain.ErrInvalidCopyCount
	}

	book.Title = input.Title
	book.Author = input.Author
	book.ISBN = input.ISBN
	book.TotalCopies = input.TotalCopies
	book.AvailableCopies = input.AvailableCopies

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Delete deletes a book. Deletion is refused while borrow records
// reference it, preserving loan history.
func (s *BookService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.recordRepo.CountByBook(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrBookHasRecords
	}

	return s.bookRepo.Delete(ctx, id)
}
