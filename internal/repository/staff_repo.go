package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// StaffRepository defines data operations for staff accounts.
type StaffRepository interface {
	GetByUsername(ctx context.Context, username string) (models.StaffAccount, error)
	GetByUsernameAndRole(ctx context.Context, username, role string) (models.StaffAccount, error)
	Create(ctx context.Context, account *models.StaffAccount) error
}

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByUsername(ctx context.Context, username string) (models.StaffAccount, error) {
	var account models.StaffAccount
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return models.StaffAccount{}, err
	}

	return account, nil
}

func (r *staffRepository) GetByUsernameAndRole(ctx context.Context, username, role string) (models.StaffAccount, error) {
	var account models.StaffAccount
	if err := r.db.WithContext(ctx).
		Where("username = ? AND role = ?", username, role).
		First(&account).Error; err != nil {
		return models.StaffAccount{}, err
	}

	return account, nil
}

func (r *staffRepository) Create(ctx context.Context, account *models.StaffAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}
