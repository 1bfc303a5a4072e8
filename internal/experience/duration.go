package experience

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"resume-intel/internal/parser"
)

var (
	monthDate = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*\d{2,4}`

	dateRangeRe = regexp.MustCompile(`(?i)(` + monthDate + `|\d{1,2}/\d{2,4}|\d{4})\s*[-–—to]+\s*(` + monthDate + `|\d{1,2}/\d{2,4}|\d{4}|present|current|now)`)
	yearCountRe = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`)
	monthCountRe = regexp.MustCompile(`(?i)(\d+)\s*(?:months?|mos?)`)
	yearRangeRe = regexp.MustCompile(`(\d{4})\s*[-–—]\s*(\d{4})`)
	yearTokenRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// DurationMonths parses a free-form duration string into months. It tries a
// date range first, then explicit year and month counts, then a bare year
// range. The second return is false when nothing parseable was found.
func DurationMonths(duration string) (int, bool) {
	if duration == "" {
		return 0, false
	}

	if m := dateRangeRe.FindStringSubmatch(duration); m != nil {
		start, okStart := extractYear(m[1])
		end, okEnd := extractYear(m[2])
		if okStart && okEnd {
			months := (end - start) * 12
			if months < 0 {
				months = 0
			}
			return months, true
		}
	}

	if m := yearCountRe.FindStringSubmatch(duration); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 12, true
	}

	if m := monthCountRe.FindStringSubmatch(duration); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n, true
	}

	if m := yearRangeRe.FindStringSubmatch(duration); m != nil {
		start, _ := strconv.Atoi(m[1])
		end, _ := strconv.Atoi(m[2])
		if end >= start {
			return (end - start) * 12, true
		}
	}

	return 0, false
}

func extractYear(date string) (int, bool) {
	if token := yearTokenRe.FindString(date); token != "" {
		year, _ := strconv.Atoi(token)
		return year, true
	}

	lower := strings.ToLower(date)
	for _, word := range []string{"present", "current", "now"} {
		if strings.Contains(lower, word) {
			return time.Now().Year(), true
		}
	}

	return 0, false
}

// TotalYears sums parseable durations across all roles and reports the
// total in years, rounded to one decimal. Unparseable entries contribute
// nothing rather than failing the whole calculation.
func TotalYears(experiences []parser.Experience) float64 {
	if len(experiences) == 0 {
		return 0
	}

	totalMonths := 0
	for _, exp := range experiences {
		if months, ok := DurationMonths(exp.Duration); ok {
			totalMonths += months
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}
