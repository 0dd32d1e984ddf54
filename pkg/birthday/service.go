package birthday

import (
	"context"
	"log/slog"
	"time"
)

type ServiceBirthday interface {
	List(ctx context.Context) []*Birthday
	Get(ctx context.Context, id int) *Birthday
	Create(ctx context.Context, in Input) (*Birthday, error)
	Update(ctx context.Context, id int, patch Patch) (*Birthday, error)
	Delete(ctx context.Context, id int) error
	Upcoming(ctx context.Context, today time.Time, days int) []Upcoming
}

type BirthdayService struct {
	Repo   Repository
	Logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *BirthdayService {
	return &BirthdayService{Repo: repo, Logger: logger}
}

// List never fails: a store read error is logged and an empty list returned.
func (s *BirthdayService) List(ctx context.Context) []*Birthday {
	list, err := s.Repo.GetAll(ctx)
	if err != nil {
		s.Logger.Error("list birthdays", "error", err)
		return []*Birthday{}
	}
	return list
}

// Get returns nil both for a missing record and for a failed read.
func (s *BirthdayService) Get(ctx context.Context, id int) *Birthday {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		s.Logger.Error("get birthday", "id", id, "error", err)
		return nil
	}
	return b
}

func (s *BirthdayService) Create(ctx context.Context, in Input) (*Birthday, error) {
	return s.Repo.Create(ctx, in)
}

func (s *BirthdayService) Update(ctx context.Context, id int, patch Patch) (*Birthday, error) {
	return s.Repo.Update(ctx, id, patch)
}

func (s *BirthdayService) Delete(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}

func (s *BirthdayService) Upcoming(ctx context.Context, today time.Time, days int) []Upcoming {
	upcoming, skipped := UpcomingWithin(s.List(ctx), today, days)
	for _, err := range skipped {
		s.Logger.Warn("skip birthday", "error", err)
	}
	return upcoming
}

func ptr[T any](v T) *T {
	return &v
}

// SeedInputs are created, in order, when the store is empty at startup.
func SeedInputs() []Input {
	return []Input{
		{
			Name:           "Андрей",
			BirthDate:      "1990-07-15",
			Description:    ptr("Любит рыбалку и технику."),
			IsGiftRequired: ptr(true),
			IsReminderSet:  ptr(true),
		},
		{
			Name:           "Марина",
			BirthDate:      "1995-02-20",
			Description:    ptr("Цветы и книги."),
			IsGiftRequired: ptr(false),
			IsReminderSet:  ptr(true),
		},
		{
			Name:           "Бабушка",
			BirthDate:      "1950-12-05",
			Description:    ptr("Позвонить заранее!"),
			IsGiftRequired: ptr(true),
			IsReminderSet:  ptr(false),
		},
	}
}

// Seed fills an empty store with SeedInputs. It reports whether anything was
// written. A failed read is returned rather than treated as an empty store.
func (s *BirthdayService) Seed(ctx context.Context) (bool, error) {
	existing, err := s.Repo.GetAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	s.Logger.Info("seeding initial data")
	for _, in := range SeedInputs() {
		if _, err := s.Repo.Create(ctx, in); err != nil {
			return false, err
		}
	}
	return true, nil
}
