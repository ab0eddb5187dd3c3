package check_conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	"github.com/jtmanningm/ezbiz-booking/pkg/ptr"
	"github.com/jtmanningm/ezbiz-booking/pkg/types"
)

type fakeCatalog struct {
	duration int
}

func (f *fakeCatalog) TotalDuration(_ context.Context, _ []string) int {
	return f.duration
}

type fakeCalendar struct {
	open  types.TimeString
	close types.TimeString
}

func (f *fakeCalendar) HoursFor(_ context.Context, _ time.Time) (types.TimeString, types.TimeString) {
	return f.open, f.close
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetScheduledByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Tuesday, inside default weekday hours 08:00-17:00.
var tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newBooking(id int64, start string, durationMinutes int, service, customer string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		CustomerName:    customer,
		ServiceNames:    []string{service},
		ServiceDate:     tuesday,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
		Status:          domain.StatusScheduled,
	}
}

func newUseCase(duration int, repo *fakeBookingRepo) *UseCase {
	return NewUseCase(
		&fakeCatalog{duration: duration},
		&fakeCalendar{open: "08:00", close: "17:00"},
		repo,
		noopLogger{},
	)
}

func TestExecute_FreeSlotIsAvailable(t *testing.T) {
	uc := newUseCase(60, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         tuesday,
		StartTime:    "10:00",
		ServiceNames: []string{"Carpet Cleaning"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.False(t, resp.Unverified)
	assert.Empty(t, resp.Conflicts)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_BufferMakesAdjacentSlotConflict(t *testing.T) {
	// Existing job 09:00-10:30. With the 15-minute buffer its window
	// extends to 10:45, so a 10:30 start still conflicts.
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(1, "09:00", 90, "Deep Clean", "Jane Doe"),
	}}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         tuesday,
		StartTime:    "10:30",
		ServiceNames: []string{"Carpet Cleaning"},
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(1), resp.Conflicts[0].BookingID)
}

func TestExecute_SlotExactlyOneBufferPastEndIsFree(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(1, "09:00", 90, "Deep Clean", "Jane Doe"),
	}}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:         tuesday,
		StartTime:    "10:45",
		ServiceNames: []string{"Carpet Cleaning"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_BufferBeforeExistingBookingConflicts(t *testing.T) {
	// Request ending at 13:15 runs into the 12:45 buffered start of a
	// 13:00 job; ending at 12:45 exactly does not.
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(1, "13:00", 60, "Upholstery", "Bob Ross"),
	}}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      tuesday,
		StartTime: "12:15",
	})
	require.NoError(t, err)
	assert.False(t, resp.Available)

	resp, err = uc.Execute(context.Background(), &Request{
		Date:      tuesday,
		StartTime: "11:45",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_ConflictMessageFormat(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(7, "10:00", 90, "Carpet Cleaning", "John Smith"),
	}}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:      tuesday,
		StartTime: "10:30",
	})

	require.NoError(t, err)
	assert.Equal(t,
		"Time slot conflicts with existing service 'Carpet Cleaning' for John Smith at 10:00 AM (Duration: 90 minutes)",
		resp.Message)
}

func TestExecute_MultipleConflictsSuffix(t *testing.T) {
	two := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(1, "10:00", 60, "Carpet Cleaning", "John Smith"),
		newBooking(2, "10:30", 60, "Upholstery", "Jane Doe"),
	}}
	uc := newUseCase(60, two)

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "10:00"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "(and 1 other conflict)")

	three := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(1, "10:00", 60, "Carpet Cleaning", "John Smith"),
		newBooking(2, "10:30", 60, "Upholstery", "Jane Doe"),
		newBooking(3, "11:00", 60, "Tile & Grout", "Sam Lee"),
	}}
	uc = newUseCase(120, three)

	resp, err = uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "10:00"})
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "(and 2 other conflicts)")
	assert.Len(t, resp.Conflicts, 3)
}

func TestExecute_BeforeOpeningRejected(t *testing.T) {
	uc := newUseCase(60, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "07:30"})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, "Service cannot start before business hours (08:00 AM)", resp.Message)
}

func TestExecute_EndingAfterClosingRejected(t *testing.T) {
	uc := newUseCase(60, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "16:30"})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t,
		"Service would end after business hours (05:00 PM). Please select an earlier time or reduce service duration.",
		resp.Message)
}

func TestExecute_SlotEndingExactlyAtClosingAllowed(t *testing.T) {
	uc := newUseCase(60, &fakeBookingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "16:00"})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_RepoErrorFailsClosed(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "10:00"})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.True(t, resp.Unverified)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.Conflicts)
}

func TestExecute_ExcludedBookingIgnored(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(42, "10:00", 60, "Carpet Cleaning", "John Smith"),
	}}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:             tuesday,
		StartTime:        "10:00",
		ExcludeBookingID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CompletedAndCancelledBookingsReleaseSlot(t *testing.T) {
	done := newBooking(1, "10:00", 60, "Carpet Cleaning", "John Smith")
	done.Status = domain.StatusCompleted
	gone := newBooking(2, "10:00", 60, "Upholstery", "Jane Doe")
	gone.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: []*domain.Booking{done, gone}}
	uc := newUseCase(60, repo)

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "10:00"})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_ZeroDurationBookingDefaultsToStandard(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		newBooking(1, "10:00", 0, "Carpet Cleaning", "John Smith"),
	}}
	uc := newUseCase(60, repo)

	// With the default 60 minutes the existing job runs to 11:00, so a
	// 11:10 start is still inside the buffer.
	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "11:10"})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, 60, resp.Conflicts[0].DurationMinutes)
}

func TestExecute_InvalidInputRejected(t *testing.T) {
	uc := newUseCase(60, &fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{StartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: tuesday, StartTime: "25:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:         tuesday,
		StartTime:    "10:00",
		ServiceNames: []string{"a", "b", "c", "d"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
