//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workspace-rental/internal/domain/booking"
	"workspace-rental/internal/domain/payment"
	"workspace-rental/internal/domain/workspace"
	"workspace-rental/internal/handler/api"
	"workspace-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubRentalCommands lets each subtest pin the next return value without
// generated mocks.
type stubRentalCommands struct {
	rentNowFn      func(ctx context.Context, workspaceID uuid.UUID, equipmentIDs []uuid.UUID, info payment.PaymentInfo, lateFine *float64, userID uuid.UUID) (*commands.RentNowResult, error)
	rentTimeSlotFn func(ctx context.Context, workspaceID uuid.UUID, start, end time.Time, info payment.PaymentInfo, userID uuid.UUID) (*commands.RentSlotResult, error)
	releaseFn      func(ctx context.Context, workspaceID uuid.UUID) (*workspace.Workspace, error)
}

func (s *stubRentalCommands) RentNow(ctx context.Context, workspaceID uuid.UUID, equipmentIDs []uuid.UUID, info payment.PaymentInfo, lateFine *float64, userID uuid.UUID) (*commands.RentNowResult, error) {
	return s.rentNowFn(ctx, workspaceID, equipmentIDs, info, lateFine, userID)
}

func (s *stubRentalCommands) RentTimeSlot(ctx context.Context, workspaceID uuid.UUID, start, end time.Time, info payment.PaymentInfo, userID uuid.UUID) (*commands.RentSlotResult, error) {
	return s.rentTimeSlotFn(ctx, workspaceID, start, end, info, userID)
}

func (s *stubRentalCommands) Release(ctx context.Context, workspaceID uuid.UUID) (*workspace.Workspace, error) {
	return s.releaseFn(ctx, workspaceID)
}

type RentalHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubRentalCommands
}

func (s *RentalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubRentalCommands{}

	handler := api.NewRentalHandler(s.stub)
	s.router.POST("/workspaces/:id/rent", handler.RentNow)
	s.router.POST("/workspaces/:id/rent-time-slot", handler.RentTimeSlot)
	s.router.POST("/workspaces/:id/release", handler.Release)
}

func TestRentalHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalHandlerTestSuite))
}

func (s *RentalHandlerTestSuite) perform(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func reservedWorkspace(id uuid.UUID) *workspace.Workspace {
	return workspace.ReconstructWorkspace(
		id, "meeting", "Room A", 4, "", 50, workspace.StatusReserved, nil, 1)
}

func rentNowBody() map[string]any {
	return map[string]any{
		"user_id":  uuid.New().String(),
		"late_fine": 5,
		"payment_info": map[string]any{
			"method": "card",
			"token":  "tok_test",
		},
	}
}

func rentSlotBody(start, end string) map[string]any {
	return map[string]any{
		"user_id":    uuid.New().String(),
		"start_time": start,
		"end_time":   end,
		"payment_info": map[string]any{
			"method": "card",
			"token":  "tok_test",
		},
	}
}

// ================================================================================
// RentNow
// ================================================================================

func (s *RentalHandlerTestSuite) TestRentNow() {
	workspaceID := uuid.New()
	url := "/workspaces/" + workspaceID.String() + "/rent"

	s.Run("success: returns 200 OK with rental result", func() {
		record := payment.NewRecord(
			time.Now(), 55, uuid.New(), workspaceID, nil, nil, payment.StatusSuccess)
		s.stub.rentNowFn = func(_ context.Context, id uuid.UUID, _ []uuid.UUID, _ payment.PaymentInfo, lateFine *float64, _ uuid.UUID) (*commands.RentNowResult, error) {
			s.Equal(workspaceID, id)
			s.Require().NotNil(lateFine)
			s.InDelta(5.0, *lateFine, 1e-9)
			return &commands.RentNowResult{
				Workspace:  reservedWorkspace(id),
				TotalPrice: 55,
				Record:     record,
			}, nil
		}

		rec := s.perform(http.MethodPost, url, rentNowBody())
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(55.0, body["totalPrice"])
		s.Equal(record.PaymentID.String(), body["paymentId"])
	})

	s.Run("error: 400 Bad Request for invalid workspace UUID", func() {
		rec := s.perform(http.MethodPost, "/workspaces/not-a-uuid/rent", rentNowBody())
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: 400 Bad Request for missing user_id", func() {
		body := rentNowBody()
		delete(body, "user_id")
		rec := s.perform(http.MethodPost, url, body)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "workspace not found", commandsError: commands.ErrWorkspaceNotFound, expectedStatus: http.StatusNotFound},
			{name: "equipment not found", commandsError: commands.ErrEquipmentNotFound, expectedStatus: http.StatusNotFound},
			{name: "workspace already reserved", commandsError: commands.ErrWorkspaceUnavailable, expectedStatus: http.StatusConflict},
			{name: "store unavailable", commandsError: commands.ErrStoreUnavailable, expectedStatus: http.StatusServiceUnavailable},
			{name: "internal server error", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.stub.rentNowFn = func(context.Context, uuid.UUID, []uuid.UUID, payment.PaymentInfo, *float64, uuid.UUID) (*commands.RentNowResult, error) {
					return nil, tc.commandsError
				}
				rec := s.perform(http.MethodPost, url, rentNowBody())
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})

	s.Run("error: 402 Payment Required includes the ledger record id", func() {
		record := payment.NewRecord(
			time.Now(), 55, uuid.New(), workspaceID, nil, nil, payment.StatusFailed)
		s.stub.rentNowFn = func(context.Context, uuid.UUID, []uuid.UUID, payment.PaymentInfo, *float64, uuid.UUID) (*commands.RentNowResult, error) {
			return nil, commands.NewPaymentDeclinedError(record, errors.New("card declined"))
		}

		rec := s.perform(http.MethodPost, url, rentNowBody())
		s.Equal(http.StatusPaymentRequired, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(record.PaymentID.String(), body["paymentId"])
	})
}

// ================================================================================
// RentTimeSlot
// ================================================================================

func (s *RentalHandlerTestSuite) TestRentTimeSlot() {
	workspaceID := uuid.New()
	url := "/workspaces/" + workspaceID.String() + "/rent-time-slot"

	s.Run("success: returns 200 OK and forwards the parsed window", func() {
		s.stub.rentTimeSlotFn = func(_ context.Context, _ uuid.UUID, start, end time.Time, _ payment.PaymentInfo, userID uuid.UUID) (*commands.RentSlotResult, error) {
			s.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC), start)
			s.Equal(time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC), end)
			slot, err := booking.NewTimeSlot(start, end, userID)
			s.Require().NoError(err)
			record := payment.NewRecord(
				time.Now(), 20, userID, workspaceID, nil, nil, payment.StatusSuccess)
			return &commands.RentSlotResult{TotalPrice: 20, Slot: slot, Record: record}, nil
		}

		rec := s.perform(http.MethodPost, url, rentSlotBody("2023-05-01T10:00:00", "2023-05-01T12:00:00"))
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(20.0, body["totalPrice"])
	})

	s.Run("error: 400 Bad Request for malformed timestamps", func() {
		testCases := []struct {
			name       string
			start, end string
		}{
			{name: "space separator", start: "2023-05-01 10:00:00", end: "2023-05-01T12:00:00"},
			{name: "date only", start: "2023-05-01", end: "2023-05-01T12:00:00"},
			{name: "timezone suffix", start: "2023-05-01T10:00:00Z", end: "2023-05-01T12:00:00"},
			{name: "malformed end", start: "2023-05-01T10:00:00", end: "noon"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := s.perform(http.MethodPost, url, rentSlotBody(tc.start, tc.end))
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "invalid time slot", commandsError: commands.ErrInvalidTimeSlot, expectedStatus: http.StatusBadRequest},
			{name: "slot overlaps", commandsError: commands.ErrSlotUnavailable, expectedStatus: http.StatusConflict},
			{name: "workspace not found", commandsError: commands.ErrWorkspaceNotFound, expectedStatus: http.StatusNotFound},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.stub.rentTimeSlotFn = func(context.Context, uuid.UUID, time.Time, time.Time, payment.PaymentInfo, uuid.UUID) (*commands.RentSlotResult, error) {
					return nil, tc.commandsError
				}
				rec := s.perform(http.MethodPost, url, rentSlotBody("2023-05-01T10:00:00", "2023-05-01T12:00:00"))
				s.Equal(tc.expectedStatus, rec.Code)
			})
		}
	})
}

// ================================================================================
// Release
// ================================================================================

func (s *RentalHandlerTestSuite) TestRelease() {
	workspaceID := uuid.New()
	url := "/workspaces/" + workspaceID.String() + "/release"

	s.Run("success: returns 200 OK with the released workspace", func() {
		s.stub.releaseFn = func(_ context.Context, id uuid.UUID) (*workspace.Workspace, error) {
			return workspace.ReconstructWorkspace(
				id, "meeting", "Room A", 4, "", 50, workspace.StatusAvailable, nil, 2), nil
		}

		rec := s.perform(http.MethodPost, url, nil)
		s.Equal(http.StatusOK, rec.Code)

		var body map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(string(workspace.StatusAvailable), body["status"])
	})

	s.Run("error: 409 Conflict when workspace is not reserved", func() {
		s.stub.releaseFn = func(context.Context, uuid.UUID) (*workspace.Workspace, error) {
			return nil, commands.ErrWorkspaceNotReserved
		}
		rec := s.perform(http.MethodPost, url, nil)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: 404 Not Found for missing workspace", func() {
		s.stub.releaseFn = func(context.Context, uuid.UUID) (*workspace.Workspace, error) {
			return nil, commands.ErrWorkspaceNotFound
		}
		rec := s.perform(http.MethodPost, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
