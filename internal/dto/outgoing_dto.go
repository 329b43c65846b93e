package dto

import (
	"time"

	"github.com/nps-campus/gatepass-api/internal/models"
)

// OutgoingResponse is the checkpoint's view of a ledger entry.
type OutgoingResponse struct {
	ID        uint      `json:"id"`
	RollNo    string    `json:"roll_no"`
	Reason    string    `json:"reason"`
	ExitTime  string    `json:"exit_time"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOutgoingResponse converts an OutgoingRecord model into a DTO.
func NewOutgoingResponse(model models.OutgoingRecord) OutgoingResponse {
	return OutgoingResponse{
		ID:        model.ID,
		RollNo:    model.RollNo,
		Reason:    model.Reason,
		ExitTime:  model.ExitTime,
		CreatedAt: model.CreatedAt,
	}
}

// NewOutgoingResponseSlice converts ledger models into DTOs.
func NewOutgoingResponseSlice(records []models.OutgoingRecord) []OutgoingResponse {
	responses := make([]OutgoingResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewOutgoingResponse(record))
	}

	return responses
}
