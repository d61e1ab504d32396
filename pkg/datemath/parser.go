package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date strings (English or Vietnamese) to absolute days.
type Parser struct {
	location *time.Location
}

var (
	reInDuration   = regexp.MustCompile(`in (\d+) (days?|weeks?|months?)`)
	reViDuration   = regexp.MustCompile(`(?:trong|sau) (\d+) (ngày|tuần|tháng)|(\d+) (ngày|tuần|tháng) (?:nữa|tới)`)
	reNextWeekday  = regexp.MustCompile(`next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	reViNextWeekly = regexp.MustCompile(`(thứ hai|thứ ba|thứ tư|thứ năm|thứ sáu|thứ bảy|chủ nhật) (?:tới|sau|này)`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"thứ hai":   time.Monday,
	"thứ ba":    time.Tuesday,
	"thứ tư":    time.Wednesday,
	"thứ năm":   time.Thursday,
	"thứ sáu":   time.Friday,
	"thứ bảy":   time.Saturday,
	"chủ nhật":  time.Sunday,
}

// fixedOffsets are day offsets for bare words. Longer phrases sharing a prefix come first.
var fixedOffsets = []struct {
	phrase string
	days   int
}{
	{"ngày kia", 2},
	{"ngày mai", 1},
	{"hôm nay", 0},
	{"hôm qua", -1},
	{"tuần sau", 7},
	{"tuần tới", 7},
	{"next week", 7},
	{"tomorrow", 1},
	{"today", 0},
	{"yesterday", -1},
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	for _, f := range fixedOffsets {
		if relative == f.phrase {
			return p.startOfDay(baseTime.AddDate(0, 0, f.days)), nil
		}
	}

	switch {
	case strings.HasPrefix(relative, "in "):
		return p.parseInDuration(relative, baseTime)
	case strings.HasPrefix(relative, "next "):
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	case reViDuration.MatchString(relative):
		m := reViDuration.FindStringSubmatch(relative)
		return p.parseViDuration(m, baseTime)
	case reViNextWeekly.MatchString(relative):
		m := reViNextWeekly.FindStringSubmatch(relative)
		return p.parseNextWeekday(m[1], baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

// Find scans free text for the first relative date phrase it understands.
// Explicit durations and weekdays are tried before bare words.
func (p *Parser) Find(text string, baseTime time.Time) (Match, bool) {
	lower := strings.ToLower(text)

	if m := reInDuration.FindString(lower); m != "" {
		if t, err := p.parseInDuration(m, baseTime); err == nil {
			return Match{Phrase: m, Date: t}, true
		}
	}
	if m := reViDuration.FindStringSubmatch(lower); m != nil {
		if t, err := p.parseViDuration(m, baseTime); err == nil {
			return Match{Phrase: m[0], Date: t}, true
		}
	}
	if m := reNextWeekday.FindStringSubmatch(lower); m != nil {
		if t, err := p.parseNextWeekday(m[1], baseTime); err == nil {
			return Match{Phrase: m[0], Date: t}, true
		}
	}
	if m := reViNextWeekly.FindStringSubmatch(lower); m != nil {
		if t, err := p.parseNextWeekday(m[1], baseTime); err == nil {
			return Match{Phrase: m[0], Date: t}, true
		}
	}
	for _, f := range fixedOffsets {
		if strings.Contains(lower, f.phrase) {
			return Match{Phrase: f.phrase, Date: p.startOfDay(baseTime.AddDate(0, 0, f.days))}, true
		}
	}

	return Match{}, false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := reInDuration.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	return p.addUnit(baseTime, amount, matches[2])
}

// parseViDuration handles "trong 3 ngày", "sau 2 tuần", "5 ngày nữa".
// m is a submatch of reViDuration; only one of the two alternatives is populated.
func (p *Parser) parseViDuration(m []string, baseTime time.Time) (time.Time, error) {
	num, unit := m[1], m[2]
	if num == "" {
		num, unit = m[3], m[4]
	}

	amount, err := strconv.Atoi(num)
	if err != nil {
		return baseTime, fmt.Errorf("invalid duration format: %q", m[0])
	}
	return p.addUnit(baseTime, amount, unit)
}

func (p *Parser) addUnit(baseTime time.Time, amount int, unit string) (time.Time, error) {
	switch {
	case strings.HasPrefix(unit, "day"), unit == "ngày":
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"), unit == "tuần":
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"), unit == "tháng":
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday resolves the next occurrence of dayName strictly after baseTime.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
