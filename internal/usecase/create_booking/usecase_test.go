package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
	"github.com/jtmanningm/ezbiz-booking/pkg/ptr"
)

type fakeChecker struct {
	busy       map[string]bool
	unverified bool
}

func (f *fakeChecker) Execute(_ context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error) {
	if f.unverified {
		return &checkConflicts.Response{
			Available:  false,
			Unverified: true,
			Message:    "Unable to verify existing bookings for this date.",
		}, nil
	}
	if f.busy[req.Date.Format(domain.DateFormat)] {
		return &checkConflicts.Response{
			Available: false,
			Message:   "Time slot conflicts with existing service 'Deep Clean' for Jane Doe at 10:00 AM (Duration: 90 minutes)",
		}, nil
	}
	return &checkConflicts.Response{Available: true}, nil
}

type fakeCatalog struct {
	duration int
	cost     float64
}

func (f *fakeCatalog) TotalDuration(_ context.Context, _ []string) int  { return f.duration }
func (f *fakeCatalog) TotalCost(_ context.Context, _ []string) float64 { return f.cost }

type fakeRepo struct {
	created []*domain.Booking
	err     error
}

func (f *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *b
	out.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &out)
	return &out, nil
}

// passthroughTx runs the function directly; transactional behavior is
// covered by the tx manager's own tests.
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeConfirmation struct {
	sent []int64
	err  error
}

func (f *fakeConfirmation) SendBookingConfirmation(_ context.Context, b *domain.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, b.ID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		CustomerID:   ptr.Ptr(int64(5)),
		CustomerName: "John Smith",
		ServiceNames: []string{"Carpet Cleaning"},
		ServiceDate:  tuesday,
		StartTime:    "10:00",
	}
}

func newUseCase(checker *fakeChecker, repo *fakeRepo, confirmation ConfirmationSender) *UseCase {
	return NewUseCase(
		checker,
		&fakeCatalog{duration: 90, cost: 149.99},
		repo,
		passthroughTx{},
		confirmation,
		noopLogger{},
	)
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeRepo{}
	confirmation := &fakeConfirmation{}
	uc := newUseCase(&fakeChecker{}, repo, confirmation)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(1), resp.Booking.ID)
	assert.Equal(t, domain.StatusScheduled, resp.Booking.Status)
	assert.Equal(t, 90, resp.Booking.DurationMinutes)
	assert.Equal(t, 149.99, resp.Booking.TotalCost)
	assert.False(t, resp.Booking.IsRecurring)
	assert.Equal(t, []time.Time{tuesday}, resp.CreatedDates)
	assert.Empty(t, resp.SkippedDates)
	assert.True(t, resp.ConfirmationSent)
	assert.Equal(t, []int64{1}, confirmation.sent)
}

func TestExecute_ConflictRejectsBooking(t *testing.T) {
	checker := &fakeChecker{busy: map[string]bool{tuesday.Format(domain.DateFormat): true}}
	repo := &fakeRepo{}
	uc := newUseCase(checker, repo, &fakeConfirmation{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Contains(t, err.Error(), "Time slot conflicts")
	assert.Empty(t, repo.created)
}

func TestExecute_UnverifiedAvailabilityRejectsBooking(t *testing.T) {
	repo := &fakeRepo{}
	uc := newUseCase(&fakeChecker{unverified: true}, repo, &fakeConfirmation{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Empty(t, repo.created)
}

func TestExecute_RecurringSeriesSkipsConflictingOccurrences(t *testing.T) {
	// Second projected occurrence is taken; the base and the others are
	// still created.
	conflictDate := tuesday.AddDate(0, 0, 14)
	checker := &fakeChecker{busy: map[string]bool{conflictDate.Format(domain.DateFormat): true}}
	repo := &fakeRepo{}
	uc := newUseCase(checker, repo, &fakeConfirmation{})

	req := validRequest()
	req.IsRecurring = true
	req.RecurrencePattern = "Weekly"
	req.MaxOccurrences = 4

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, repo.created, 3)
	assert.Equal(t, []time.Time{
		tuesday,
		tuesday.AddDate(0, 0, 7),
		tuesday.AddDate(0, 0, 21),
	}, resp.CreatedDates)
	require.Len(t, resp.SkippedDates, 1)
	assert.Equal(t, conflictDate, resp.SkippedDates[0])
	require.Len(t, resp.SkippedMessages, 1)
	assert.Contains(t, resp.SkippedMessages[0], conflictDate.Format(domain.LongDateFormat))

	for _, b := range repo.created {
		assert.True(t, b.IsRecurring)
		require.NotNil(t, b.RecurrencePattern)
		assert.Equal(t, domain.RecurrenceWeekly, *b.RecurrencePattern)
	}
}

func TestExecute_RecurringBaseConflictRejectsWholeRequest(t *testing.T) {
	checker := &fakeChecker{busy: map[string]bool{tuesday.Format(domain.DateFormat): true}}
	repo := &fakeRepo{}
	uc := newUseCase(checker, repo, &fakeConfirmation{})

	req := validRequest()
	req.IsRecurring = true
	req.RecurrencePattern = "Weekly"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, repo.created)
}

func TestExecute_ConfirmationFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeRepo{}
	confirmation := &fakeConfirmation{err: errors.New("gateway timeout")}
	uc := newUseCase(&fakeChecker{}, repo, confirmation)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.ConfirmationSent)
	assert.Len(t, repo.created, 1)
}

func TestExecute_NoConfirmationSenderConfigured(t *testing.T) {
	uc := newUseCase(&fakeChecker{}, &fakeRepo{}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, resp.ConfirmationSent)
}

func TestExecute_RepoFailureSurfacesAsInternal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	uc := newUseCase(&fakeChecker{}, repo, &fakeConfirmation{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newUseCase(&fakeChecker{}, &fakeRepo{}, &fakeConfirmation{})

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer name", func(r *Request) { r.CustomerName = " " }},
		{"no services", func(r *Request) { r.ServiceNames = nil }},
		{"too many services", func(r *Request) { r.ServiceNames = []string{"a", "b", "c", "d"} }},
		{"blank service name", func(r *Request) { r.ServiceNames = []string{"Carpet Cleaning", ""} }},
		{"missing date", func(r *Request) { r.ServiceDate = time.Time{} }},
		{"bad start time", func(r *Request) { r.StartTime = "9am" }},
		{"recurring without pattern", func(r *Request) { r.IsRecurring = true }},
		{"unknown pattern", func(r *Request) { r.IsRecurring = true; r.RecurrencePattern = "Daily" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
