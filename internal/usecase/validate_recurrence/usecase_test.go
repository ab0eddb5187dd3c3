package validate_recurrence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtmanningm/ezbiz-booking/internal/domain"
	checkConflicts "github.com/jtmanningm/ezbiz-booking/internal/usecase/check_conflicts"
)

// fakeChecker reports a conflict for dates in the busy set.
type fakeChecker struct {
	busy map[string]bool
	err  error
}

func (f *fakeChecker) Execute(_ context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.busy[req.Date.Format(domain.DateFormat)] {
		return &checkConflicts.Response{
			Available: false,
			Message:   "Time slot conflicts with existing service 'Deep Clean' for Jane Doe at 10:00 AM (Duration: 90 minutes)",
		}, nil
	}
	return &checkConflicts.Response{Available: true}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var base = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestExecute_WeeklySeriesAllFree(t *testing.T) {
	checker := &fakeChecker{busy: map[string]bool{}}
	uc := NewUseCase(checker, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BaseDate:       base,
		StartTime:      "10:00",
		Pattern:        domain.RecurrenceWeekly,
		MaxOccurrences: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.AllAvailable)
	assert.Empty(t, resp.ConflictMessages)
	// Base date is not re-validated, so three projected occurrences.
	require.Len(t, resp.CheckedDates, 3)
	assert.Equal(t, base.AddDate(0, 0, 7), resp.CheckedDates[0])
	assert.Equal(t, base.AddDate(0, 0, 21), resp.CheckedDates[2])
}

func TestExecute_ConflictDoesNotStopRemainingChecks(t *testing.T) {
	secondOccurrence := base.AddDate(0, 0, 14)
	checker := &fakeChecker{busy: map[string]bool{
		secondOccurrence.Format(domain.DateFormat): true,
	}}
	uc := NewUseCase(checker, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BaseDate:       base,
		StartTime:      "10:00",
		Pattern:        domain.RecurrenceWeekly,
		MaxOccurrences: 5,
	})

	require.NoError(t, err)
	assert.False(t, resp.AllAvailable)
	require.Len(t, resp.ConflictDates, 1)
	assert.Equal(t, secondOccurrence, resp.ConflictDates[0])
	// Later occurrences were still checked.
	assert.Len(t, resp.CheckedDates, 4)

	require.Len(t, resp.ConflictMessages, 1)
	assert.Contains(t, resp.ConflictMessages[0], secondOccurrence.Format(domain.LongDateFormat)+": ")
	assert.Contains(t, resp.ConflictMessages[0], "Time slot conflicts")
}

func TestExecute_SixMonthHorizonCapsBiWeeklySeries(t *testing.T) {
	checker := &fakeChecker{busy: map[string]bool{}}
	uc := NewUseCase(checker, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BaseDate:  base,
		StartTime: "10:00",
		Pattern:   domain.RecurrenceBiWeekly,
		// Default cap of 24 occurrences would reach past 180 days.
	})

	require.NoError(t, err)
	// Occurrences land every 14 days; 12*14 = 168 fits, 13*14 = 182 does not.
	assert.Len(t, resp.CheckedDates, 12)
	last := resp.CheckedDates[len(resp.CheckedDates)-1]
	assert.LessOrEqual(t, int(last.Sub(base).Hours()/24), domain.RecurrenceHorizonDays)
}

func TestExecute_MonthlyOccurrencesUseClampedDates(t *testing.T) {
	// Starting January 31st, February clamps to the 28th and later
	// occurrences advance from the clamped day.
	jan31 := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	checker := &fakeChecker{busy: map[string]bool{}}
	uc := NewUseCase(checker, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BaseDate:       jan31,
		StartTime:      "10:00",
		Pattern:        domain.RecurrenceMonthly,
		MaxOccurrences: 3,
	})

	require.NoError(t, err)
	require.Len(t, resp.CheckedDates, 2)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), resp.CheckedDates[0])
	assert.Equal(t, time.Date(2026, 3, 28, 0, 0, 0, 0, time.UTC), resp.CheckedDates[1])
}

func TestExecute_CheckerFailureAborts(t *testing.T) {
	checker := &fakeChecker{err: errors.New("connection refused")}
	uc := NewUseCase(checker, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BaseDate:       base,
		StartTime:      "10:00",
		Pattern:        domain.RecurrenceWeekly,
		MaxOccurrences: 4,
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_InvalidInputRejected(t *testing.T) {
	uc := NewUseCase(&fakeChecker{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartTime: "10:00", Pattern: domain.RecurrenceWeekly})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BaseDate: base, StartTime: "10:00", Pattern: "Fortnightly"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
