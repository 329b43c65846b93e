package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// RequestRepository defines data operations for leave requests. Both
// transition methods compare-and-set on status so that concurrent deciders
// on the same request serialize; only one caller observes a change.
type RequestRepository interface {
	Create(ctx context.Context, request *models.LeaveRequest) error
	GetByID(ctx context.Context, id uint) (models.LeaveRequest, error)
	ListByRollNo(ctx context.Context, rollNo string) ([]models.LeaveRequest, error)
	ListByStatus(ctx context.Context, status string) ([]models.LeaveRequest, error)
	ListByStatusAndRecipient(ctx context.Context, status, recipient string) ([]models.LeaveRequest, error)
	Transition(ctx context.Context, id uint, from, to, actor string) (bool, error)
	TransitionAndAppend(ctx context.Context, id uint, from, to, actor string, record *models.OutgoingRecord) (bool, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository instantiates the repository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uint) (models.LeaveRequest, error) {
	var request models.LeaveRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return models.LeaveRequest{}, err
	}

	return request, nil
}

func (r *requestRepository) ListByRollNo(ctx context.Context, rollNo string) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("roll_no = ?", rollNo).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *requestRepository) ListByStatus(ctx context.Context, status string) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *requestRepository) ListByStatusAndRecipient(ctx context.Context, status, recipient string) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	if err := r.db.WithContext(ctx).
		Where("status = ? AND recipient = ?", status, recipient).
		Order("created_at ASC").
		Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// transitionUpdates builds the column set for a status move. Decision audit
// fields are only stamped on terminal transitions.
func transitionUpdates(to, actor string) map[string]interface{} {
	updates := map[string]interface{}{"status": to}
	if to == models.StatusApproved || to == models.StatusRejected {
		now := time.Now()
		updates["decided_by"] = actor
		updates["decided_at"] = &now
	}

	return updates
}

func (r *requestRepository) Transition(ctx context.Context, id uint, from, to, actor string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(transitionUpdates(to, actor))
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// TransitionAndAppend performs the status move and the ledger insert as one
// transaction. The returned bool reports whether the compare-and-set matched
// inside the transaction; when it is true and an error is also returned, the
// transaction rolled back after the match and the caller must surface the
// failure for reconciliation.
func (r *requestRepository) TransitionAndAppend(ctx context.Context, id uint, from, to, actor string, record *models.OutgoingRecord) (bool, error) {
	matched := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.LeaveRequest{}).
			Where("id = ? AND status = ?", id, from).
			Updates(transitionUpdates(to, actor))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		matched = true
		return tx.Create(record).Error
	})
	if err != nil {
		return matched, err
	}

	return matched, nil
}
