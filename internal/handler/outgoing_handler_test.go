package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nps-campus/gatepass-api/internal/dto"
	"github.com/nps-campus/gatepass-api/internal/handler"
	"github.com/nps-campus/gatepass-api/internal/service"
)

type mockOutgoingService struct {
	lastPrefix string
	lastID     uint
	records    []dto.OutgoingResponse
	err        error
}

func (m *mockOutgoingService) List(_ context.Context, rollNoPrefix string) ([]dto.OutgoingResponse, error) {
	m.lastPrefix = rollNoPrefix
	return m.records, m.err
}

func (m *mockOutgoingService) Consume(_ context.Context, id uint) error {
	m.lastID = id
	return m.err
}

func newOutgoingApp(svc *mockOutgoingService) *fiber.App {
	app := fiber.New()
	handler.NewOutgoingHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/v1/outgoings"))
	return app
}

func TestOutgoingHandler_ListPassesFilter(t *testing.T) {
	svc := &mockOutgoingService{records: []dto.OutgoingResponse{{ID: 1, RollNo: "21BD1A0501"}}}
	app := newOutgoingApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/outgoings?roll_no=21bd", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "21bd", svc.lastPrefix)

	var response struct {
		Data []dto.OutgoingResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Len(t, response.Data, 1)
}

func TestOutgoingHandler_Consume(t *testing.T) {
	svc := &mockOutgoingService{}
	app := newOutgoingApp(svc)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/outgoings/8", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(8), svc.lastID)

	svc.err = service.ErrOutgoingNotFound
	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/outgoings/8", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/outgoings/not-a-number", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
