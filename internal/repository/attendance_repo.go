package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// AttendanceRepository reads the academic attendance table. The gate-pass
// service never writes it.
type AttendanceRepository interface {
	GetByRollNo(ctx context.Context, rollNo string) (models.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) GetByRollNo(ctx context.Context, rollNo string) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	if err := r.db.WithContext(ctx).Where("roll_no = ?", rollNo).First(&record).Error; err != nil {
		return models.AttendanceRecord{}, err
	}

	return record, nil
}
