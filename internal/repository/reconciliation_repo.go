package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// ReconciliationRepository persists audit rows for approve-and-ledger units
// that failed partway. Read access is left to operators with database tools.
type ReconciliationRepository interface {
	Create(ctx context.Context, entry *models.ReconciliationEntry) error
}

type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository instantiates the repository.
func NewReconciliationRepository(db *gorm.DB) ReconciliationRepository {
	return &reconciliationRepository{db: db}
}

func (r *reconciliationRepository) Create(ctx context.Context, entry *models.ReconciliationEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
