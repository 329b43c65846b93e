package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const publishTimeout = 2 * time.Second

// ApprovalEvent describes one observed status transition. Downstream
// consumers (notification workers, dashboards) subscribe to these; delivery
// is best-effort and never part of the transition itself.
type ApprovalEvent struct {
	RequestID uint      `json:"request_id"`
	RollNo    string    `json:"roll_no"`
	Status    string    `json:"status"`
	ActorRole string    `json:"actor_role"`
	Actor     string    `json:"actor"`
	At        time.Time `json:"at"`
	Node      string    `json:"node"`
}

// EventPublisher fans transition events out to the configured brokers.
type EventPublisher interface {
	PublishTransition(ctx context.Context, event ApprovalEvent)
}

type approvalEventPublisher struct {
	nats      *nats.Conn
	subject   string
	redis     *redis.Client
	channel   string
	sanitizer *bluemonday.Policy
	tracer    trace.Tracer
	logger    zerolog.Logger
	nodeID    string
}

// NewApprovalEventPublisher constructs a publisher over the NATS and redis
// connections, either of which may be nil.
func NewApprovalEventPublisher(natsConn *nats.Conn, redisClient *redis.Client, channelBase string, logger zerolog.Logger) EventPublisher {
	subject := ""
	channel := ""
	if channelBase != "" {
		subject = strings.ReplaceAll(channelBase, ":", ".") + ".approvals"
		channel = channelBase + ":approvals"
	}

	return &approvalEventPublisher{
		nats:      natsConn,
		subject:   subject,
		redis:     redisClient,
		channel:   channel,
		sanitizer: bluemonday.StrictPolicy(),
		tracer:    otel.Tracer("github.com/nps-campus/gatepass-api/internal/service/events"),
		logger:    logger.With().Str("component", "event_publisher").Logger(),
		nodeID:    uuid.NewString(),
	}
}

func (p *approvalEventPublisher) PublishTransition(ctx context.Context, event ApprovalEvent) {
	event.Actor = strings.TrimSpace(p.sanitizer.Sanitize(event.Actor))
	event.Node = p.nodeID

	spanCtx, span := p.tracer.Start(ctx, "approvals.publish", trace.WithAttributes(
		attribute.Int("request.id", int(event.RequestID)),
		attribute.String("request.status", event.Status),
	))
	defer span.End()

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error().Err(err).Uint("request_id", event.RequestID).Msg("failed to encode approval event")
		return
	}

	timed, cancel := context.WithTimeout(spanCtx, publishTimeout)
	defer cancel()

	if p.nats != nil && p.subject != "" {
		if err := p.nats.Publish(p.subject, payload); err != nil {
			p.logger.Warn().Err(err).Str("subject", p.subject).Msg("approval event not published to nats")
		}
	}

	if p.redis != nil && p.channel != "" {
		if err := p.redis.Publish(timed, p.channel, payload).Err(); err != nil {
			p.logger.Warn().Err(err).Str("channel", p.channel).Msg("approval event not published to redis")
		}
	}
}
