package domain

import "errors"

// Common domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyExists   = errors.New("already exists")
)

// Auth errors
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Catalog errors
var (
	ErrBookNotFound      = errors.New("book not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentConflict   = errors.New("student email or roll number already exists")
	ErrBookHasRecords    = errors.New("book has borrow records")
	ErrStudentHasRecords = errors.New("student has borrow records")
	ErrInvalidCopyCount  = errors.New("available copies must be between 0 and total copies")
)

// Borrowing errors
var (
	ErrRecordNotFound   = errors.New("borrow record not found")
	ErrBookNotAvailable = errors.New("book is not available")
	ErrNoStudentProfile = errors.New("student profile not found")
)
