package speech

import (
	"strconv"
	"strings"
	"time"

	"github.com/iurnickita/binday/internal/collection"
)

// Compose renders the next-collection result as one spoken reply. Categories
// sharing a date are read out in one sentence; missing ones go last.
func Compose(result collection.Result, today time.Time) string {
	type bucket struct {
		date  time.Time
		asked []string
	}
	var buckets []*bucket
	var notFound []string

	for _, entry := range result.Entries {
		if entry.Date == nil {
			notFound = append(notFound, entry.AskedFor)
			continue
		}
		var target *bucket
		for _, b := range buckets {
			if b.date.Equal(*entry.Date) {
				target = b
				break
			}
		}
		if target == nil {
			target = &bucket{date: *entry.Date}
			buckets = append(buckets, target)
		}
		target.asked = append(target.asked, entry.AskedFor)
	}

	var sb strings.Builder
	for _, b := range buckets {
		sb.WriteString("The next ")
		sb.WriteString(JoinList(b.asked))
		if len(b.asked) == 1 {
			sb.WriteString(" collection is ")
		} else {
			sb.WriteString(" collections are ")
		}
		sb.WriteString(RelativeDate(b.date, today))
		sb.WriteString(". ")
	}

	if len(notFound) > 0 {
		sb.WriteString("Sorry, I could not find the date for the next ")
		sb.WriteString(JoinList(notFound))
		if len(notFound) == 1 {
			sb.WriteString(" collection.")
		} else {
			sb.WriteString(" collections.")
		}
	}
	return sb.String()
}

// RelativeDate phrases date relative to today: "today", "tomorrow",
// "this coming Wed 5th December" within a week, "on ..." beyond.
func RelativeDate(date, today time.Time) string {
	today = collection.Midnight(today)
	date = collection.Midnight(date.In(today.Location()))

	switch {
	case date.Equal(today):
		return "today"
	case date.Equal(today.AddDate(0, 0, 1)):
		return "tomorrow"
	case date.Before(today.AddDate(0, 0, 7)):
		return "this coming " + FormatDate(date)
	default:
		return "on " + FormatDate(date)
	}
}

// FormatDate renders a date the way en-GB reads it out: "Wed 5th December".
func FormatDate(date time.Time) string {
	day := date.Day()
	return date.Format("Mon") + " " + strconv.Itoa(day) + OrdinalSuffix(day) + " " + date.Format("January")
}

func OrdinalSuffix(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	}
	return "th"
}

// JoinList joins items as "a, b and c".
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
