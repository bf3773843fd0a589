package config

import (
	"log"

	"libeasy/internal/adapters/persistence/models"
	"libeasy/internal/core/domain"
	"libeasy/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	if err := s.seedAdminUser(); err != nil {
		log.Printf("Warning: admin seeder skipped: %v", err)
	}
	return nil
}

// seedAdminUser creates the default admin account when none exists.
// Skipped entirely unless ADMIN_PASSWORD is set.
func (s *Seeder) seedAdminUser() error {
	if s.cfg.Admin.Password == "" {
		return nil
	}

	var count int64
	s.db.Model(&models.User{}).Where("role = ?", domain.RoleAdmin.String()).Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashed, err := password.Hash(s.cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     s.cfg.Admin.Name,
		Email:    s.cfg.Admin.Email,
		Role:     domain.RoleAdmin.String(),
		Password: hashed,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded default admin account: %s", admin.Email)
	return nil
}
