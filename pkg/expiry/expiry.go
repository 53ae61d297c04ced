// Package expiry turns stored expiry dates into remaining days, severity
// tiers and the named windows used to filter the item list.
package expiry

import (
	"fmt"
	"math"
	"strings"
	"time"

	"fridgemate/domain"
)

// UnknownDays is reported for dates that do not parse so they sort last and
// never look urgent.
const UnknownDays = 999

// UrgentWithinDays is the inclusive bound for an item to count as urgent.
const UrgentWithinDays = 3

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
}

type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now()
}

// ParseDate reads a calendar date. RFC 3339 timestamps are accepted and only
// their date part is kept.
func ParseDate(text string, loc *time.Location) (time.Time, error) {
	text = strings.TrimSpace(text)
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, text, loc); err == nil {
			return parsed, nil
		}
	}

	if parsed, err := time.Parse(time.RFC3339, text); err == nil {
		return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, text)
}

func IsValidDate(text string) bool {
	_, err := ParseDate(text, time.Local)
	return err == nil
}

// DaysUntil counts whole days from now to local midnight of the date, rounded
// up so that a date later today still counts as today.
func DaysUntil(dateText string, now time.Time) int {
	date, err := ParseDate(dateText, now.Location())
	if err != nil {
		return UnknownDays
	}

	days := math.Ceil(date.Sub(now).Hours() / 24)
	return int(days)
}

func IsUrgent(days int) bool {
	return days <= UrgentWithinDays
}

type Severity string

const (
	SeverityExpired     Severity = "expired"
	SeverityDueToday    Severity = "dueToday"
	SeverityDueSoon     Severity = "dueSoon"
	SeverityDueThisWeek Severity = "dueThisWeek"
	SeverityDueLater    Severity = "dueLater"
)

type Status struct {
	Days     int
	Severity Severity
	Text     string
	Tone     string
}

func StatusForDays(days int) Status {
	switch {
	case days < 0:
		return Status{Days: days, Severity: SeverityExpired, Text: "유통기한 만료", Tone: "red"}
	case days == 0:
		return Status{Days: days, Severity: SeverityDueToday, Text: "오늘 만료", Tone: "red"}
	case days <= UrgentWithinDays:
		return Status{Days: days, Severity: SeverityDueSoon, Text: remainingText(days), Tone: "orange"}
	case days <= 7:
		return Status{Days: days, Severity: SeverityDueThisWeek, Text: remainingText(days), Tone: "yellow"}
	default:
		return Status{Days: days, Severity: SeverityDueLater, Text: remainingText(days), Tone: "green"}
	}
}

func StatusOf(dateText string, now time.Time) Status {
	return StatusForDays(DaysUntil(dateText, now))
}

func remainingText(days int) string {
	return fmt.Sprintf("%d일 남음", days)
}

// Window is a named filter over remaining days. Windows overlap: "3일" is a
// subset of "1주일".
type Window string

const (
	WindowAll         Window = "전체"
	WindowExpired     Window = "만료"
	WindowThreeDays   Window = "3일"
	WindowOneWeek     Window = "1주일"
	WindowOneMonth    Window = "1개월"
	WindowBeyondMonth Window = "1개월+"
)

func Windows() []Window {
	return []Window{WindowAll, WindowExpired, WindowThreeDays, WindowOneWeek, WindowOneMonth, WindowBeyondMonth}
}

// Contains reports whether days falls inside the window. Unknown window names
// behave like WindowAll.
func (w Window) Contains(days int) bool {
	switch w {
	case WindowExpired:
		return days < 0
	case WindowThreeDays:
		return days >= 0 && days <= 3
	case WindowOneWeek:
		return days >= 0 && days <= 7
	case WindowOneMonth:
		return days >= 0 && days <= 30
	case WindowBeyondMonth:
		return days > 30
	default:
		return true
	}
}
