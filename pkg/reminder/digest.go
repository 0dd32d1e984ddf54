package reminder

import (
	"fmt"
	"strings"
	"time"

	"birthdayreminder/pkg/birthday"
)

// Month names in the genitive case, as used after a day number.
var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

const digestTitle = "🎂 Напоминание о днях рождения"

// FormatDate renders YYYY-MM-DD as "5 марта". Unparsable input is returned as is.
func FormatDate(birthDate string) string {
	d, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return birthDate
	}
	return fmt.Sprintf("%d %s", d.Day(), monthsGenitive[d.Month()-1])
}

func when(daysUntil int) string {
	switch daysUntil {
	case 0:
		return "🎉 СЕГОДНЯ!"
	case 1:
		return "⏰ Завтра"
	default:
		return fmt.Sprintf("Через %d дн.", daysUntil)
	}
}

// FormatDigest builds the reminder text. It returns "" for an empty list.
func FormatDigest(upcoming []birthday.Upcoming) string {
	if len(upcoming) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(digestTitle)
	sb.WriteString("\n")

	for _, u := range upcoming {
		b := u.Birthday
		fmt.Fprintf(&sb, "\n\n%s — %s\n%s", b.Name, FormatDate(b.BirthDate), when(u.DaysUntil))
		if b.IsGiftRequired {
			sb.WriteString(" 🎁")
		}
		if b.Description != nil && *b.Description != "" {
			sb.WriteString("\n")
			sb.WriteString(*b.Description)
		}
	}

	return sb.String()
}
