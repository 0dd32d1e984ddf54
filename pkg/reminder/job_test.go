package reminder_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"birthdayreminder/pkg/birthday"
	"birthdayreminder/pkg/birthday/mocks"
	"birthdayreminder/pkg/reminder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notifierFunc func(ctx context.Context, text string) error

func (f notifierFunc) Notify(ctx context.Context, text string) error { return f(ctx, text) }

func TestJob_Run(t *testing.T) {
	today := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	due := []birthday.Upcoming{
		{Birthday: &birthday.Birthday{ID: 1, Name: "Мама", BirthDate: "1965-10-17"}, DaysUntil: 0},
	}

	t.Run("sends digest", func(t *testing.T) {
		svc := new(mocks.ServiceBirthday)
		svc.On("Upcoming", mock.Anything, today, 7).Return(due)

		var sent string
		job := reminder.NewJob(svc, notifierFunc(func(_ context.Context, text string) error {
			sent = text
			return nil
		}), 7, slog.Default())
		job.Now = func() time.Time { return today }

		n, err := job.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Contains(t, sent, "Мама — 17 октября")
		svc.AssertExpectations(t)
	})

	t.Run("nothing due sends nothing", func(t *testing.T) {
		svc := new(mocks.ServiceBirthday)
		svc.On("Upcoming", mock.Anything, today, 3).Return([]birthday.Upcoming{})

		job := reminder.NewJob(svc, notifierFunc(func(context.Context, string) error {
			t.Fatal("notifier must not be called")
			return nil
		}), 3, slog.Default())
		job.Now = func() time.Time { return today }

		n, err := job.Run(context.Background())

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("notifier failure", func(t *testing.T) {
		svc := new(mocks.ServiceBirthday)
		svc.On("Upcoming", mock.Anything, today, 7).Return(due)

		job := reminder.NewJob(svc, notifierFunc(func(context.Context, string) error {
			return errors.New("offline")
		}), 7, slog.Default())
		job.Now = func() time.Time { return today }

		n, err := job.Run(context.Background())

		assert.EqualError(t, err, "offline")
		assert.Zero(t, n)
	})
}
