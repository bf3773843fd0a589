package models

import (
	"time"

	"gorm.io/gorm"
)

// Borrow record status
const (
	StatusIssued   = "ISSUED"
	StatusReturned = "RETURNED"
)

// LoanPeriodDays is the fixed borrowing period
const LoanPeriodDays = 30

// User represents a staff account in the users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Role      string    `gorm:"size:20;not null" json:"role"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO - never carries the password hash
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Book represents the books table.
// Invariant: 0 <= available_copies <= total_copies.
type Book struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:255;not null" json:"title"`
	Author          string `gorm:"size:255;not null" json:"author"`
	ISBN            string `gorm:"size:20;index" json:"isbn"`
	TotalCopies     int    `gorm:"not null" json:"total_copies"`
	AvailableCopies int    `gorm:"not null" json:"available_copies"`
}

func (Book) TableName() string {
	return "books"
}

// Student represents the students table.
// Independent identity record, linked to a User by matching email for
// self-service history lookups.
type Student struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	RollNo     string    `gorm:"uniqueIndex;size:50;not null" json:"roll_no"`
	Department string    `gorm:"size:100" json:"department"`
	JoinDate   time.Time `gorm:"type:date" json:"join_date"`
}

func (Student) TableName() string {
	return "students"
}

// BorrowRecord represents the borrow_records table.
// Created on issue, mutated once on return. Never deleted in normal flow,
// which is why the foreign keys restrict deletion of referenced rows.
type BorrowRecord struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	StudentID  uint       `gorm:"not null;index" json:"student_id"`
	BookID     uint       `gorm:"not null;index" json:"book_id"`
	IssueDate  time.Time  `gorm:"type:date;not null" json:"issue_date"`
	DueDate    time.Time  `gorm:"type:date;not null" json:"due_date"`
	ReturnDate *time.Time `gorm:"type:date" json:"return_date"`
	Status     string     `gorm:"size:20;not null" json:"status"`

	Student *Student `gorm:"foreignKey:StudentID;constraint:OnDelete:RESTRICT" json:"-"`
	Book    *Book    `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (BorrowRecord) TableName() string {
	return "borrow_records"
}

// IsReturned reports whether the record has been closed
func (r *BorrowRecord) IsReturned() bool {
	return r.Status == StatusReturned
}

// AutoMigrate creates the tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Book{},
		&Student{},
		&BorrowRecord{},
	)
}
