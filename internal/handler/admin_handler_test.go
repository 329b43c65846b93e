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
	"github.com/nps-campus/gatepass-api/internal/models"
	"github.com/nps-campus/gatepass-api/internal/service"
)

type mockRosterService struct {
	lastRegister dto.FacultyRegisterRequest
	lastYear     string
	profile      dto.StaffProfile
	removed      int64
	err          error
}

func (m *mockRosterService) RegisterFaculty(_ context.Context, payload dto.FacultyRegisterRequest) (dto.StaffProfile, error) {
	m.lastRegister = payload
	if m.err != nil {
		return dto.StaffProfile{}, m.err
	}
	return m.profile, nil
}

func (m *mockRosterService) RemoveGraduates(_ context.Context, year string) (int64, error) {
	m.lastYear = year
	if m.err != nil {
		return 0, m.err
	}
	return m.removed, nil
}

func newAdminApp(approvals *mockApprovalService, roster *mockRosterService) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/v1/admin", authenticatedAs("office1", models.RoleAdmin))
	handler.NewAdminHandler(approvals, roster, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestAdminHandler_ActApprove(t *testing.T) {
	svc := &mockApprovalService{response: dto.RequestResponse{ID: 7, Status: models.StatusApproved, DecidedBy: "office1"}}
	app := newAdminApp(svc, &mockRosterService{})

	payload := dto.ActionRequest{RequestID: 7, Action: models.ActionApprove}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/request-action", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "office1", svc.lastActor)

	var response struct {
		Success bool                `json:"success"`
		Data    dto.RequestResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, models.StatusApproved, response.Data.Status)
}

func TestAdminHandler_ActErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"already decided", service.ErrAlreadyDecided, fiber.StatusConflict},
		{"unknown request", service.ErrRequestNotFound, fiber.StatusNotFound},
		{"ledger failure", service.ErrLedgerInconsistent, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAdminApp(&mockApprovalService{err: tc.err}, &mockRosterService{})

			payload := dto.ActionRequest{RequestID: 7, Action: models.ActionApprove}
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/request-action", payload))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestAdminHandler_RegisterFaculty(t *testing.T) {
	roster := &mockRosterService{profile: dto.StaffProfile{Username: "dr.menon", Role: models.RoleFaculty}}
	app := newAdminApp(&mockApprovalService{}, roster)

	payload := dto.FacultyRegisterRequest{Username: "dr.menon", Name: "Dr. Menon", Password: "secret99"}
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/faculty", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, "dr.menon", roster.lastRegister.Username)

	roster.err = service.ErrUsernameTaken
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/v1/admin/faculty", payload))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestAdminHandler_RemoveGraduates(t *testing.T) {
	roster := &mockRosterService{removed: 42}
	app := newAdminApp(&mockApprovalService{}, roster)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/students/graduates?year=4", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "4", roster.lastYear)

	var response struct {
		Data struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.EqualValues(t, 42, response.Data.Count)
}

func TestAdminHandler_ListPending(t *testing.T) {
	svc := &mockApprovalService{listed: []dto.RequestResponse{
		{ID: 1, Status: models.StatusAdminPending},
		{ID: 2, Status: models.StatusAdminPending},
	}}
	app := newAdminApp(svc, &mockRosterService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/requests", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data []dto.RequestResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Len(t, response.Data, 2)
}
