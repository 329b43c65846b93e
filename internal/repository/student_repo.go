package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// StudentRepository defines data operations for the student roster.
type StudentRepository interface {
	GetByRollNo(ctx context.Context, rollNo string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	DeleteByYear(ctx context.Context, year string) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository instantiates the repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetByRollNo(ctx context.Context, rollNo string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Where("roll_no = ?", rollNo).First(&student).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) DeleteByYear(ctx context.Context, year string) (int64, error) {
	result := r.db.WithContext(ctx).Where("year = ?", year).Delete(&models.Student{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
