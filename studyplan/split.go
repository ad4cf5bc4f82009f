// Package studyplan splits a day-by-day study plan into labeled entries.
package studyplan

import (
	"strings"
	"unicode/utf8"
)

const dayPrefix = "Day "

// Day is one entry of a study plan.
type Day struct {
	// Label is the day label as written, e.g. "Day 3:".
	Label string `json:"day"`

	// Tasks is the trimmed text between this label and the next one.
	Tasks string `json:"tasks"`
}

// Split cuts text at every "Day <number>:" label. Labels are case-sensitive.
// Text before the first label is ignored. A day whose content is not valid UTF-8 is dropped.
func Split(text string) []Day {
	var days []Day

	label, ok := nextLabel(text, 0)
	for ok {
		next, found := nextLabel(text, label.End)

		contentEnd := len(text)
		if found {
			contentEnd = next.Start
		}

		tasks := strings.TrimSpace(text[label.End:contentEnd])
		if utf8.ValidString(tasks) {
			days = append(days, Day{
				Label: strings.Clone(text[label.Start:label.End]),
				Tasks: strings.Clone(tasks),
			})
		}

		label, ok = next, found
	}

	return days
}

// span is a half-open byte range [Start, End).
type span struct {
	Start int
	End   int
}

// nextLabel finds the first "Day <digits>:" label at or after from.
func nextLabel(text string, from int) (span, bool) {
	for from < len(text) {
		idx := strings.Index(text[from:], dayPrefix)
		if idx < 0 {
			break
		}

		start := from + idx
		i := start + len(dayPrefix)
		digits := i
		for i < len(text) && text[i] >= '0' && text[i] <= '9' {
			i++
		}

		if i > digits && i < len(text) && text[i] == ':' {
			return span{Start: start, End: i + 1}, true
		}

		from = start + 1
	}

	return span{}, false
}
