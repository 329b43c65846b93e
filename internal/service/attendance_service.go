package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/repository"
)

// ErrAttendanceUnavailable indicates the academic attendance record could
// not be read. Callers treat it as advisory-missing, never as a failure of
// the workflow they are in.
var ErrAttendanceUnavailable = errors.New("attendance unavailable")

const attendanceCachePrefix = "gatepass:attendance:"

// AttendanceService serves advisory attendance percentages with a short
// redis cache in front of the academic table.
type AttendanceService interface {
	Get(ctx context.Context, rollNo string) (dto.AttendanceResponse, error)
}

type attendanceService struct {
	records repository.AttendanceRepository
	redis   *redis.Client
	ttl     time.Duration
	logger  zerolog.Logger
}

// NewAttendanceService constructs an AttendanceService. The redis client may
// be nil, in which case every read goes to the database.
func NewAttendanceService(records repository.AttendanceRepository, redisClient *redis.Client, ttl time.Duration, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		records: records,
		redis:   redisClient,
		ttl:     ttl,
		logger:  logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) Get(ctx context.Context, rollNo string) (dto.AttendanceResponse, error) {
	rollNo = strings.TrimSpace(rollNo)
	if rollNo == "" {
		return dto.AttendanceResponse{}, ErrAttendanceUnavailable
	}

	cacheKey := attendanceCachePrefix + strings.ToLower(rollNo)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.AttendanceResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return response, nil
			}
		}
	}

	record, err := s.records.GetByRollNo(ctx, rollNo)
	if err != nil {
		s.logger.Warn().Err(err).Str("roll_no", rollNo).Msg("attendance lookup failed")
		return dto.AttendanceResponse{}, ErrAttendanceUnavailable
	}

	response := dto.AttendanceResponse{
		RollNo:     record.RollNo,
		Percentage: record.Percentage,
		Available:  true,
	}

	if s.redis != nil && s.ttl > 0 {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.redis.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn().Err(err).Str("roll_no", rollNo).Msg("attendance cache write failed")
			}
		}
	}

	return response, nil
}
