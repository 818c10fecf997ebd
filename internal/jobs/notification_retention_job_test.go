package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/jobs"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPruner struct {
	mock.Mock
}

func (m *MockPruner) Handle(ctx context.Context, cmd commands.PruneNotificationLogsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func retentionIs(d time.Duration) any {
	return mock.MatchedBy(func(cmd commands.PruneNotificationLogsCommand) bool {
		return cmd.Retention() == d
	})
}

func TestNotificationRetentionJob_RunOnce(t *testing.T) {
	pruner := new(MockPruner)
	pruner.On("Handle", mock.Anything, retentionIs(72*time.Hour)).Return(int64(4), nil).Once()

	job := jobs.NewNotificationRetentionJob(pruner, jobs.RetentionPolicy{Retention: 72 * time.Hour}, slog.New(slog.DiscardHandler))
	deleted, err := job.RunOnce(t.Context())

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	pruner.AssertExpectations(t)
}

func TestNotificationRetentionJob_RunOnce_PropagatesFailure(t *testing.T) {
	pruner := new(MockPruner)
	pruner.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

	job := jobs.NewNotificationRetentionJob(pruner, jobs.RetentionPolicy{Retention: time.Hour}, slog.New(slog.DiscardHandler))
	_, err := job.RunOnce(t.Context())

	require.EqualError(t, err, "db down")
}

func TestNotificationRetentionJob_Start_RejectsInvalidPolicy(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	err := jobs.NewNotificationRetentionJob(new(MockPruner), jobs.RetentionPolicy{}, logger).Start()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	err = jobs.NewNotificationRetentionJob(new(MockPruner), jobs.RetentionPolicy{
		Schedule:  "not a schedule",
		Retention: time.Hour,
	}, logger).Start()
	require.Error(t, err)
}

func TestNotificationRetentionJob_Start_RunsOnSchedule(t *testing.T) {
	pruner := new(MockPruner)
	ran := make(chan struct{}, 1)
	pruner.On("Handle", mock.Anything, retentionIs(time.Hour)).
		Return(int64(0), nil).
		Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		})

	manager := jobs.NewJobManager(pruner, jobs.RetentionPolicy{
		Schedule:  "* * * * * *",
		Retention: time.Hour,
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, manager.StartAll())
	defer manager.StopAll()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("retention job did not run")
	}
}
