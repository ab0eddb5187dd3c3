package check_conflicts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
)

type fakeUseCase struct {
	resp *checkConflicts.Response
	err  error

	gotReq *checkConflicts.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestHandle_AvailableSlot(t *testing.T) {
	uc := &fakeUseCase{resp: &checkConflicts.Response{
		Available:       true,
		Conflicts:       []domain.BookingConflict{},
		DurationMinutes: 90,
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability/check?date=2026-03-10&time=10:00&services=Carpet%20Cleaning,Upholstery", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, 90, body.DurationMinutes)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "2026-03-10", uc.gotReq.Date.Format(domain.DateFormat))
	assert.Equal(t, []string{"Carpet Cleaning", "Upholstery"}, uc.gotReq.ServiceNames)
}

func TestHandle_ConflictingSlotStillReturns200(t *testing.T) {
	uc := &fakeUseCase{resp: &checkConflicts.Response{
		Available: false,
		Message:   "Time slot conflicts with existing service 'Deep Clean' for Jane Doe at 10:00 AM (Duration: 90 minutes)",
		Conflicts: []domain.BookingConflict{{
			BookingID:       7,
			ConflictTime:    "10:00",
			ServiceName:     "Deep Clean",
			CustomerName:    "Jane Doe",
			DurationMinutes: 90,
		}},
		DurationMinutes: 60,
	}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability/check?date=2026-03-10&time=10:30", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Available)
	assert.Contains(t, body.Message, "Time slot conflicts")
	require.Len(t, body.Conflicts, 1)
	assert.Equal(t, int64(7), body.Conflicts[0].BookingID)
}

func TestHandle_BadQueryRejected(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	for _, target := range []string{
		"/api/v1/availability/check",
		"/api/v1/availability/check?date=03/10/2026&time=10:00",
		"/api/v1/availability/check?date=2026-03-10&time=10am",
		"/api/v1/availability/check?date=2026-03-10&time=10:00&excludeBookingId=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		h.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}

func TestHandle_ExcludeBookingIDForwarded(t *testing.T) {
	uc := &fakeUseCase{resp: &checkConflicts.Response{Available: true}}
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability/check?date=2026-03-10&time=10:00&excludeBookingId=42", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq.ExcludeBookingID)
	assert.Equal(t, int64(42), *uc.gotReq.ExcludeBookingID)
}
