package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/observability"
	"github.com/nps-campus/gatepass-api/internal/repository"
)

// ErrRequestNotFound indicates the leave request id is unknown.
var ErrRequestNotFound = errors.New("leave request not found")

// ErrAlreadyDecided indicates the request is not in the state the action
// requires; under concurrency this is the losing racer's result.
var ErrAlreadyDecided = errors.New("request already acted on")

// ErrNotRecipient indicates a faculty member tried to act on a request that
// is not addressed to them.
var ErrNotRecipient = errors.New("request is not addressed to this approver")

// ErrInvalidExitTime indicates the requested time misses the daily slot grid.
var ErrInvalidExitTime = errors.New("exit time is outside the permitted slots")

// ErrInvalidRecipient indicates the recipient is neither the student's
// mentor nor HOD.
var ErrInvalidRecipient = errors.New("recipient must be the student's mentor or HOD")

// ErrStudentNotFound indicates the roll number has no roster entry.
var ErrStudentNotFound = errors.New("student not found")

// ErrLedgerInconsistent indicates the terminal approve and its outgoing
// record could not be committed as one unit. The transition is rolled back
// and the failure is recorded for manual reconciliation.
var ErrLedgerInconsistent = errors.New("approval could not be committed with its outgoing record")

// ApprovalService owns the leave request lifecycle: creation, the two
// role-gated decision stages and the read projections each role sees.
type ApprovalService interface {
	Create(ctx context.Context, payload dto.RequestCreateRequest) (dto.RequestResponse, error)
	FacultyAct(ctx context.Context, payload dto.ActionRequest, facultyUsername string) (dto.RequestResponse, error)
	AdminAct(ctx context.Context, payload dto.ActionRequest, adminUsername string) (dto.RequestResponse, error)
	ListForStudent(ctx context.Context, rollNo string) ([]dto.RequestResponse, error)
	ListPendingForFaculty(ctx context.Context, facultyUsername string) ([]dto.RequestResponse, error)
	ListPendingForAdmin(ctx context.Context) ([]dto.RequestResponse, error)
}

type approvalService struct {
	requests        repository.RequestRepository
	students        repository.StudentRepository
	reconciliations repository.ReconciliationRepository
	validator       *validator.Validate
	events          EventPublisher
	logger          zerolog.Logger
}

// NewApprovalService constructs an ApprovalService instance.
func NewApprovalService(requests repository.RequestRepository, students repository.StudentRepository, reconciliations repository.ReconciliationRepository, validate *validator.Validate, events EventPublisher, logger zerolog.Logger) ApprovalService {
	return &approvalService{
		requests:        requests,
		students:        students,
		reconciliations: reconciliations,
		validator:       validate,
		events:          events,
		logger:          logger.With().Str("component", "approval_service").Logger(),
	}
}

func (s *approvalService) Create(ctx context.Context, payload dto.RequestCreateRequest) (dto.RequestResponse, error) {
	payload.RollNo = strings.TrimSpace(payload.RollNo)
	payload.Recipient = strings.TrimSpace(payload.Recipient)
	payload.Reason = strings.ToLower(strings.TrimSpace(payload.Reason))
	payload.ExitTime = strings.TrimSpace(payload.ExitTime)

	if err := s.validator.Struct(payload); err != nil {
		return dto.RequestResponse{}, err
	}

	if !models.ValidExitTime(payload.ExitTime) {
		return dto.RequestResponse{}, ErrInvalidExitTime
	}

	student, err := s.students.GetByRollNo(ctx, payload.RollNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.RequestResponse{}, ErrStudentNotFound
		}
		return dto.RequestResponse{}, err
	}

	if payload.Recipient != student.Mentor && payload.Recipient != student.HOD {
		return dto.RequestResponse{}, ErrInvalidRecipient
	}

	request := models.LeaveRequest{
		RollNo:    payload.RollNo,
		Recipient: payload.Recipient,
		Reason:    payload.Reason,
		ExitTime:  payload.ExitTime,
		Status:    models.StatusPending,
	}

	if err := s.requests.Create(ctx, &request); err != nil {
		return dto.RequestResponse{}, err
	}

	s.logger.Info().
		Uint("request_id", request.ID).
		Str("roll_no", request.RollNo).
		Str("recipient", request.Recipient).
		Msg("leave request created")

	return dto.NewRequestResponse(request), nil
}

func (s *approvalService) FacultyAct(ctx context.Context, payload dto.ActionRequest, facultyUsername string) (dto.RequestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RequestResponse{}, err
	}

	request, err := s.getRequest(ctx, payload.RequestID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	// The recipient binding is immutable, so the gate holds even if the
	// status changes between this read and the transition below.
	if request.Recipient != facultyUsername {
		return dto.RequestResponse{}, ErrNotRecipient
	}

	next := models.StatusAdminPending
	if payload.Action == models.ActionReject {
		next = models.StatusRejected
	}

	moved, err := s.requests.Transition(ctx, request.ID, models.StatusPending, next, facultyUsername)
	if err != nil {
		return dto.RequestResponse{}, err
	}
	if !moved {
		return dto.RequestResponse{}, ErrAlreadyDecided
	}

	updated, err := s.getRequest(ctx, request.ID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	s.logger.Info().
		Uint("request_id", updated.ID).
		Str("action", payload.Action).
		Str("faculty", facultyUsername).
		Str("status", updated.Status).
		Msg("faculty decision recorded")

	s.publish(ctx, updated, models.RoleFaculty, facultyUsername)

	return dto.NewRequestResponse(updated), nil
}

func (s *approvalService) AdminAct(ctx context.Context, payload dto.ActionRequest, adminUsername string) (dto.RequestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.RequestResponse{}, err
	}

	request, err := s.getRequest(ctx, payload.RequestID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	if payload.Action == models.ActionReject {
		moved, err := s.requests.Transition(ctx, request.ID, models.StatusAdminPending, models.StatusRejected, adminUsername)
		if err != nil {
			return dto.RequestResponse{}, err
		}
		if !moved {
			return dto.RequestResponse{}, ErrAlreadyDecided
		}

		return s.finishAdminAct(ctx, request.ID, payload.Action, adminUsername)
	}

	record := models.OutgoingRecord{
		RollNo:   request.RollNo,
		Reason:   request.Reason,
		ExitTime: request.ExitTime,
	}

	matched, err := s.requests.TransitionAndAppend(ctx, request.ID, models.StatusAdminPending, models.StatusApproved, adminUsername, &record)
	if err != nil {
		if matched {
			s.recordLedgerFailure(ctx, request, err)
			return dto.RequestResponse{}, ErrLedgerInconsistent
		}
		return dto.RequestResponse{}, err
	}
	if !matched {
		return dto.RequestResponse{}, ErrAlreadyDecided
	}

	s.logger.Info().
		Uint("request_id", request.ID).
		Uint("outgoing_id", record.ID).
		Str("roll_no", request.RollNo).
		Msg("outgoing record appended")

	return s.finishAdminAct(ctx, request.ID, payload.Action, adminUsername)
}

func (s *approvalService) finishAdminAct(ctx context.Context, requestID uint, action, adminUsername string) (dto.RequestResponse, error) {
	updated, err := s.getRequest(ctx, requestID)
	if err != nil {
		return dto.RequestResponse{}, err
	}

	s.logger.Info().
		Uint("request_id", updated.ID).
		Str("action", action).
		Str("admin", adminUsername).
		Str("status", updated.Status).
		Msg("admin decision recorded")

	s.publish(ctx, updated, models.RoleAdmin, adminUsername)

	return dto.NewRequestResponse(updated), nil
}

func (s *approvalService) ListForStudent(ctx context.Context, rollNo string) ([]dto.RequestResponse, error) {
	requests, err := s.requests.ListByRollNo(ctx, strings.TrimSpace(rollNo))
	if err != nil {
		return nil, err
	}

	return dto.NewRequestResponseSlice(requests), nil
}

func (s *approvalService) ListPendingForFaculty(ctx context.Context, facultyUsername string) ([]dto.RequestResponse, error) {
	requests, err := s.requests.ListByStatusAndRecipient(ctx, models.StatusPending, strings.TrimSpace(facultyUsername))
	if err != nil {
		return nil, err
	}

	return dto.NewRequestResponseSlice(requests), nil
}

func (s *approvalService) ListPendingForAdmin(ctx context.Context) ([]dto.RequestResponse, error) {
	requests, err := s.requests.ListByStatus(ctx, models.StatusAdminPending)
	if err != nil {
		return nil, err
	}

	return dto.NewRequestResponseSlice(requests), nil
}

func (s *approvalService) getRequest(ctx context.Context, id uint) (models.LeaveRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.LeaveRequest{}, ErrRequestNotFound
		}
		return models.LeaveRequest{}, err
	}

	return request, nil
}

func (s *approvalService) publish(ctx context.Context, request models.LeaveRequest, actorRole, actor string) {
	observability.Transitions().WithLabelValues(request.Status).Inc()

	if s.events == nil {
		return
	}

	s.events.PublishTransition(ctx, ApprovalEvent{
		RequestID: request.ID,
		RollNo:    request.RollNo,
		Status:    request.Status,
		ActorRole: actorRole,
		Actor:     actor,
		At:        time.Now().UTC(),
	})
}

func (s *approvalService) recordLedgerFailure(ctx context.Context, request models.LeaveRequest, cause error) {
	s.logger.Error().
		Err(cause).
		Uint("request_id", request.ID).
		Str("roll_no", request.RollNo).
		Msg("approve and ledger append did not commit as a unit")

	snapshot, err := json.Marshal(request)
	if err != nil {
		snapshot = nil
	}

	entry := models.ReconciliationEntry{
		RequestID: request.ID,
		Stage:     "admin_approve",
		Detail:    cause.Error(),
		Snapshot:  snapshot,
	}
	if err := s.reconciliations.Create(ctx, &entry); err != nil {
		s.logger.Error().Err(err).Uint("request_id", request.ID).Msg("failed to record reconciliation entry")
	}
}
