package services

import (
	"context"

	"libeasy/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService handles dashboard aggregation.
// The four numbers are independent queries; the only consistency guarantee
// is that they are read within the same request.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Stats represents dashboard statistics
type Stats struct {
	TotalBooks     int64 `json:"total_books"`
	IssuedBooks    int64 `json:"issued_books"`
	AvailableBooks int64 `json:"available_books"`
	OverdueBooks   int64 `json:"overdue_books"`
}

// GetStats returns the dashboard statistics
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	if err := s.db.WithContext(ctx).Model(&models.Book{}).
		Count(&stats.TotalBooks).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.BorrowRecord{}).
		Where("status = ?", models.StatusIssued).
		Count(&stats.IssuedBooks).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Book{}).
		Select("COALESCE(SUM(available_copies), 0)").
		Scan(&stats.AvailableBooks).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.BorrowRecord{}).
		Where("status = ? AND due_date < ?", models.StatusIssued, today()).
		Count(&stats.OverdueBooks).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
