package dto

import (
	"time"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// RequestCreateRequest carries a new leave request from the student app.
type RequestCreateRequest struct {
	RollNo    string `json:"roll_no" validate:"required,max=20"`
	Recipient string `json:"recipient" validate:"required,max=64"`
	Reason    string `json:"reason" validate:"required,oneof=sick function hackathon internship"`
	ExitTime  string `json:"exit_time" validate:"required,len=5"`
}

// ActionRequest is an approve/reject decision on a pending request.
type ActionRequest struct {
	RequestID uint   `json:"request_id" validate:"required,gt=0"`
	Action    string `json:"action" validate:"required,oneof=approve reject"`
}

// RequestResponse is the API view of a leave request.
type RequestResponse struct {
	ID        uint       `json:"id"`
	RollNo    string     `json:"roll_no"`
	Recipient string     `json:"recipient"`
	Reason    string     `json:"reason"`
	ExitTime  string     `json:"exit_time"`
	Status    string     `json:"status"`
	DecidedBy string     `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewRequestResponse converts a LeaveRequest model into a DTO.
func NewRequestResponse(model models.LeaveRequest) RequestResponse {
	return RequestResponse{
		ID:        model.ID,
		RollNo:    model.RollNo,
		Recipient: model.Recipient,
		Reason:    model.Reason,
		ExitTime:  model.ExitTime,
		Status:    model.Status,
		DecidedBy: model.DecidedBy,
		DecidedAt: model.DecidedAt,
		CreatedAt: model.CreatedAt,
	}
}

// NewRequestResponseSlice converts leave request models into DTOs.
func NewRequestResponseSlice(requests []models.LeaveRequest) []RequestResponse {
	responses := make([]RequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, NewRequestResponse(request))
	}

	return responses
}
