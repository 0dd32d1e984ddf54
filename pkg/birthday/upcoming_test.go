package birthday_test

import (
	"testing"
	"time"

	"birthdayreminder/pkg/birthday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	today := time.Date(2026, time.December, 30, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		want      int
	}{
		{"today", "1990-12-30", 0},
		{"tomorrow", "1990-12-31", 1},
		{"wraps into next year", "1990-01-02", 3},
		{"already passed", "1990-12-29", 364},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := birthday.DaysUntil(tt.birthDate, today)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("leap day in a common year", func(t *testing.T) {
		got, err := birthday.DaysUntil("2000-02-29", time.Date(2027, time.February, 27, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := birthday.DaysUntil("15 июля", today)
		assert.Error(t, err)
	})
}

func TestUpcomingWithin(t *testing.T) {
	list := []*birthday.Birthday{
		{ID: 1, Name: "a", BirthDate: "2000-01-10"},
		{ID: 2, Name: "b", BirthDate: "2000-01-03"},
		{ID: 3, Name: "c", BirthDate: "2000-13-40"},
	}
	today := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	got, skipped := birthday.UpcomingWithin(list, today, 9)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Birthday.ID)
	assert.Equal(t, 1, got[1].Birthday.ID)
	assert.Equal(t, 9, got[1].DaysUntil)
	assert.Len(t, skipped, 1)

	got, _ = birthday.UpcomingWithin(list, today, 0)
	assert.Empty(t, got)
}

func TestSortByMonthDay(t *testing.T) {
	list := []*birthday.Birthday{
		{Name: "Бабушка", BirthDate: "1950-12-05"},
		{Name: "Андрей", BirthDate: "1990-07-15"},
		{Name: "Марина", BirthDate: "1995-02-20"},
		{Name: "Алла", BirthDate: "2001-02-20"},
	}

	birthday.SortByMonthDay(list)

	names := make([]string, 0, len(list))
	for _, b := range list {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Алла", "Марина", "Андрей", "Бабушка"}, names)
}

func TestFilterByName(t *testing.T) {
	list := []*birthday.Birthday{{Name: "Марина"}, {Name: "Андрей"}, {Name: "марк"}}

	assert.Len(t, birthday.FilterByName(list, "МАР"), 2)
	assert.Len(t, birthday.FilterByName(list, "  "), 3)
	assert.Empty(t, birthday.FilterByName(list, "zzz"))
}
