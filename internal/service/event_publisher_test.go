package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nps-campus/gatepass-api/internal/models"
)

func TestPublishTransitionWithoutBrokersIsNoOp(t *testing.T) {
	publisher := NewApprovalEventPublisher(nil, nil, "gatepass", testLogger())

	// Must not panic and must not block.
	publisher.PublishTransition(context.Background(), ApprovalEvent{
		RequestID: 7,
		RollNo:    "21BD1A0501",
		Status:    models.StatusApproved,
		ActorRole: models.RoleAdmin,
		Actor:     "office1",
		At:        time.Now().UTC(),
	})
}

func TestPublishTransitionToRedisChannel(t *testing.T) {
	client := setupTestRedis(t)
	publisher := NewApprovalEventPublisher(nil, client, "gatepass", testLogger())

	subscription := client.Subscribe(context.Background(), "gatepass:approvals")
	t.Cleanup(func() { _ = subscription.Close() })

	// Wait for the subscription to be established before publishing.
	_, err := subscription.Receive(context.Background())
	require.NoError(t, err)

	publisher.PublishTransition(context.Background(), ApprovalEvent{
		RequestID: 7,
		RollNo:    "21BD1A0501",
		Status:    models.StatusApproved,
		ActorRole: models.RoleAdmin,
		Actor:     "<b>office1</b>",
	})

	select {
	case message := <-subscription.Channel():
		require.Contains(t, message.Payload, `"request_id":7`)
		require.Contains(t, message.Payload, `"actor":"office1"`, "markup must be stripped from the actor")
	case <-time.After(2 * time.Second):
		t.Fatal("no event received on the approvals channel")
	}
}
