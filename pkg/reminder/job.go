package reminder

import (
	"context"
	"log/slog"
	"time"

	"birthdayreminder/pkg/birthday"
)

type Job struct {
	Birthdays birthday.ServiceBirthday
	Notifier  Notifier
	DaysAhead int
	Now       func() time.Time
	Logger    *slog.Logger
}

func NewJob(birthdays birthday.ServiceBirthday, notifier Notifier, daysAhead int, logger *slog.Logger) *Job {
	return &Job{
		Birthdays: birthdays,
		Notifier:  notifier,
		DaysAhead: daysAhead,
		Now:       time.Now,
		Logger:    logger,
	}
}

// Run sends one digest for the birthdays due within DaysAhead days and
// reports how many were included. Nothing is sent when none are due.
func (j *Job) Run(ctx context.Context) (int, error) {
	upcoming := j.Birthdays.Upcoming(ctx, j.Now(), j.DaysAhead)
	if len(upcoming) == 0 {
		j.Logger.Info("no upcoming birthdays", "days", j.DaysAhead)
		return 0, nil
	}

	if err := j.Notifier.Notify(ctx, FormatDigest(upcoming)); err != nil {
		return 0, err
	}

	j.Logger.Info("reminder sent", "count", len(upcoming), "days", j.DaysAhead)
	return len(upcoming), nil
}
