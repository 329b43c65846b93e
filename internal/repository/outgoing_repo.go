package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// OutgoingRepository defines data operations for the outgoing ledger.
type OutgoingRepository interface {
	List(ctx context.Context, rollNoPrefix string) ([]models.OutgoingRecord, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type outgoingRepository struct {
	db *gorm.DB
}

// NewOutgoingRepository instantiates the repository. Inserts happen through
// RequestRepository.TransitionAndAppend only; the ledger has no standalone
// create path.
func NewOutgoingRepository(db *gorm.DB) OutgoingRepository {
	return &outgoingRepository{db: db}
}

func (r *outgoingRepository) List(ctx context.Context, rollNoPrefix string) ([]models.OutgoingRecord, error) {
	query := r.db.WithContext(ctx).Model(&models.OutgoingRecord{})

	if prefix := strings.TrimSpace(rollNoPrefix); prefix != "" {
		query = query.Where("lower(roll_no) LIKE ?", strings.ToLower(prefix)+"%")
	}

	var records []models.OutgoingRecord
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

// Delete removes a ledger entry permanently. The bool reports whether a row
// was actually removed, letting callers distinguish a repeat consume.
func (r *outgoingRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&models.OutgoingRecord{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
