package parser

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ExtractDate resolves the date a command refers to. It recognizes the
// relative literals "today" and "yesterday", then tries fuzzy parsing on the
// phrase after the last " on ", and falls back to now. It never fails: a
// command always gets a usable date.
func ExtractDate(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "yesterday") {
		return now.AddDate(0, 0, -1)
	}
	if strings.Contains(lower, "today") {
		return now
	}

	if idx := strings.LastIndex(lower, " on "); idx >= 0 {
		phrase := strings.TrimSpace(text[idx+4:])
		if parsed, err := tryParseDate(phrase); err == nil {
			return parsed
		}
	}

	return now
}

func tryParseDate(phrase string) (parsed time.Time, err error) {
	// dateparse panics on some malformed inputs; a bad date phrase must not
	// take the command down.
	defer func() {
		if r := recover(); r != nil {
			err = errUnparseableDate
		}
	}()

	return dateparse.ParseAny(phrase)
}

var errUnparseableDate = dateparseError("unparseable date phrase")

type dateparseError string

func (e dateparseError) Error() string { return string(e) }
