package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognizedDate is returned for input that is neither ISO nor a known relative phrase.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// Parser resolves ISO dates and short English or Spanish relative phrases
// ("tomorrow", "in 2 weeks", "próximo lunes") to midnight in its timezone.
type Parser struct {
	location *time.Location
}

var inDurationPattern = regexp.MustCompile(`^(?:in|en) (\d+) (days?|weeks?|months?|d[ií]as?|semanas?|mes|meses)$`)

var dayOffsets = map[string]int{
	"":                    0,
	"today":               0,
	"hoy":                 0,
	"yesterday":           -1,
	"ayer":                -1,
	"tomorrow":            1,
	"mañana":              1,
	"manana":              1,
	"day after tomorrow":  2,
	"pasado mañana":       2,
	"pasado manana":       2,
	"next week":           7,
	"próxima semana":      7,
	"proxima semana":      7,
	"la semana que viene": 7,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "lunes": time.Monday,
	"tuesday": time.Tuesday, "martes": time.Tuesday,
	"wednesday": time.Wednesday, "miércoles": time.Wednesday, "miercoles": time.Wednesday,
	"thursday": time.Thursday, "jueves": time.Thursday,
	"friday": time.Friday, "viernes": time.Friday,
	"saturday": time.Saturday, "sábado": time.Saturday, "sabado": time.Saturday,
	"sunday": time.Sunday, "domingo": time.Sunday,
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "America/Mexico_City"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser bound to an already loaded location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Parse resolves value against baseTime. An empty value means today.
func (p *Parser) Parse(value string, baseTime time.Time) (time.Time, error) {
	value = strings.Join(strings.Fields(strings.ToLower(value)), " ")

	if t, err := time.ParseInLocation(DateFormat, value, p.location); err == nil {
		return t, nil
	}
	if days, ok := dayOffsets[value]; ok {
		return p.startOfDay(baseTime.AddDate(0, 0, days)), nil
	}
	if strings.HasPrefix(value, "in ") || strings.HasPrefix(value, "en ") {
		return p.parseInDuration(value, baseTime)
	}
	for _, prefix := range []string{"next ", "próximo ", "proximo ", "el próximo ", "el proximo "} {
		if strings.HasPrefix(value, prefix) {
			return p.parseNextWeekday(strings.TrimPrefix(value, prefix), baseTime)
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "en 1 mes".
func (p *Parser) parseInDuration(value string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(value)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
	}
	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
	}

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "semana"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"), strings.HasPrefix(unit, "mes"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	default:
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	}
}

// parseNextWeekday returns the first matching weekday strictly after baseTime.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognizedDate, dayName)
	}

	base := baseTime.In(p.location)
	days := int(target - base.Weekday())
	if days <= 0 {
		days += 7
	}
	return p.startOfDay(base.AddDate(0, 0, days)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
