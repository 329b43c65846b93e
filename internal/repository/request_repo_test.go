package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.StaffAccount{},
		&models.LeaveRequest{},
		&models.OutgoingRecord{},
		&models.AttendanceRecord{},
		&models.ReconciliationEntry{},
	))
	return db
}

func seedRequest(t *testing.T, db *gorm.DB, status string) models.LeaveRequest {
	t.Helper()
	request := models.LeaveRequest{
		RollNo:    "21BD1A0501",
		Recipient: "dr.rao",
		Reason:    "sick",
		ExitTime:  "14:30",
		Status:    status,
	}
	require.NoError(t, db.Create(&request).Error)
	return request
}

func TestRequestRepositoryTransitionIsCompareAndSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	request := seedRequest(t, db, models.StatusPending)

	moved, err := repo.Transition(context.Background(), request.ID, models.StatusPending, models.StatusAdminPending, "dr.rao")
	require.NoError(t, err)
	require.True(t, moved)

	// Second mover sees the stale from-status and must lose.
	moved, err = repo.Transition(context.Background(), request.ID, models.StatusPending, models.StatusRejected, "dr.rao")
	require.NoError(t, err)
	require.False(t, moved)

	stored, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusAdminPending, stored.Status)
	require.Empty(t, stored.DecidedBy, "intermediate move must not stamp the decision audit")
	require.Nil(t, stored.DecidedAt)
}

func TestRequestRepositoryTransitionStampsTerminalDecision(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	request := seedRequest(t, db, models.StatusPending)

	moved, err := repo.Transition(context.Background(), request.ID, models.StatusPending, models.StatusRejected, "dr.rao")
	require.NoError(t, err)
	require.True(t, moved)

	stored, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusRejected, stored.Status)
	require.Equal(t, "dr.rao", stored.DecidedBy)
	require.NotNil(t, stored.DecidedAt)
}

func TestRequestRepositoryTransitionAndAppend(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	request := seedRequest(t, db, models.StatusAdminPending)

	record := models.OutgoingRecord{RollNo: request.RollNo, Reason: request.Reason, ExitTime: request.ExitTime}
	matched, err := repo.TransitionAndAppend(context.Background(), request.ID, models.StatusAdminPending, models.StatusApproved, "office1", &record)
	require.NoError(t, err)
	require.True(t, matched)
	require.NotZero(t, record.ID)

	stored, err := repo.GetByID(context.Background(), request.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, stored.Status)
	require.Equal(t, "office1", stored.DecidedBy)

	var ledgerCount int64
	require.NoError(t, db.Model(&models.OutgoingRecord{}).Count(&ledgerCount).Error)
	require.EqualValues(t, 1, ledgerCount)

	// A repeat approve finds no matching row and appends nothing.
	repeat := models.OutgoingRecord{RollNo: request.RollNo, Reason: request.Reason, ExitTime: request.ExitTime}
	matched, err = repo.TransitionAndAppend(context.Background(), request.ID, models.StatusAdminPending, models.StatusApproved, "office1", &repeat)
	require.NoError(t, err)
	require.False(t, matched)

	require.NoError(t, db.Model(&models.OutgoingRecord{}).Count(&ledgerCount).Error)
	require.EqualValues(t, 1, ledgerCount)
}

func TestRequestRepositoryProjections(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)

	seedRequest(t, db, models.StatusPending)
	other := models.LeaveRequest{RollNo: "22BD1A0777", Recipient: "dr.iyer", Reason: "hackathon", ExitTime: "09:00", Status: models.StatusAdminPending}
	require.NoError(t, db.Create(&other).Error)

	mine, err := repo.ListByRollNo(context.Background(), "21BD1A0501")
	require.NoError(t, err)
	require.Len(t, mine, 1)

	forFaculty, err := repo.ListByStatusAndRecipient(context.Background(), models.StatusPending, "dr.rao")
	require.NoError(t, err)
	require.Len(t, forFaculty, 1)

	forFaculty, err = repo.ListByStatusAndRecipient(context.Background(), models.StatusPending, "dr.iyer")
	require.NoError(t, err)
	require.Empty(t, forFaculty)

	forAdmin, err := repo.ListByStatus(context.Background(), models.StatusAdminPending)
	require.NoError(t, err)
	require.Len(t, forAdmin, 1)
	require.Equal(t, "22BD1A0777", forAdmin[0].RollNo)
}
