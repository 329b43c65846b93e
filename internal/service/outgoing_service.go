package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/repository"
)

// ErrOutgoingNotFound indicates the ledger entry is unknown or was already
// consumed at the checkpoint.
var ErrOutgoingNotFound = errors.New("outgoing record not found")

// OutgoingService exposes the checkpoint's view of the outgoing ledger:
// listing entries awaiting exit and consuming them once the student leaves.
type OutgoingService interface {
	List(ctx context.Context, rollNoPrefix string) ([]dto.OutgoingResponse, error)
	Consume(ctx context.Context, id uint) error
}

type outgoingService struct {
	outgoings repository.OutgoingRepository
	logger    zerolog.Logger
}

// NewOutgoingService constructs an OutgoingService instance.
func NewOutgoingService(outgoings repository.OutgoingRepository, logger zerolog.Logger) OutgoingService {
	return &outgoingService{
		outgoings: outgoings,
		logger:    logger.With().Str("component", "outgoing_service").Logger(),
	}
}

func (s *outgoingService) List(ctx context.Context, rollNoPrefix string) ([]dto.OutgoingResponse, error) {
	records, err := s.outgoings.List(ctx, rollNoPrefix)
	if err != nil {
		return nil, err
	}

	return dto.NewOutgoingResponseSlice(records), nil
}

// Consume removes the ledger entry permanently. There is no undo; the call
// mirrors the student physically passing the gate.
func (s *outgoingService) Consume(ctx context.Context, id uint) error {
	removed, err := s.outgoings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrOutgoingNotFound
	}

	s.logger.Info().Uint("outgoing_id", id).Msg("outgoing record consumed at checkpoint")

	return nil
}
