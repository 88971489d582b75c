package collection

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/iurnickita/binday/internal/catalog"
	"github.com/iurnickita/binday/internal/model"
)

var ErrMissingData = errors.New("missing collection data")

// Форматы дат календаря вывоза
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Entry holds the next date for one requested category. Date is nil when no
// qualifying collection was found.
type Entry struct {
	Key       string
	RoundType model.RoundType
	Resolved  bool
	AskedFor  string
	Date      *time.Time
}

// Result lists entries in the order the categories were requested.
type Result struct {
	Entries []Entry
}

func (r Result) Get(key string) (Entry, bool) {
	for _, entry := range r.Entries {
		if entry.Key == key {
			return entry, true
		}
	}
	return Entry{}, false
}

// Next computes, for every requested category, the earliest collection date
// that is today or later. Events are not assumed to be ordered.
func Next(schedule *model.Schedule, categories []catalog.Category, today time.Time) (Result, error) {
	var result Result
	index := make(map[string]int, len(categories))
	for _, category := range categories {
		key := category.Key()
		if i, ok := index[key]; ok {
			// тот же тип под другим словом: остаётся первая позиция
			result.Entries[i].AskedFor = category.Phrase
			continue
		}
		index[key] = len(result.Entries)
		result.Entries = append(result.Entries, Entry{
			Key:       key,
			RoundType: category.RoundType,
			Resolved:  category.Resolved,
			AskedFor:  category.Phrase,
		})
	}

	if schedule == nil || schedule.Collections == nil {
		return Result{}, ErrMissingData
	}

	today = Midnight(today)
	for _, event := range schedule.Collections {
		if len(event.RoundTypes) == 0 {
			continue
		}

		var found []int
		for i, entry := range result.Entries {
			if entry.Resolved && slices.Contains(event.RoundTypes, entry.RoundType) {
				found = append(found, i)
			}
		}
		if len(found) == 0 {
			continue
		}

		date, err := ParseDate(event.Date, today.Location())
		if err != nil {
			continue
		}
		if date.Before(today) {
			continue
		}
		for _, i := range found {
			if current := result.Entries[i].Date; current == nil || date.Before(*current) {
				d := date
				result.Entries[i].Date = &d
			}
		}
	}

	return result, nil
}

// ParseDate reads a council date as a calendar date at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised collection date %q", value)
}

// Midnight truncates t to the start of its calendar day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
