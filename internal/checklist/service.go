package checklist

import (
	"regexp"
	"strings"
	"time"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state, and text.
	// Example: "  - [x] Task name" → groups: ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^([ \t]*)[-*] \[([ xX])\] (.+?)[ \t]*\r?$`

	DueLayout = "2006-01-02"
)

var (
	fencedCodeBlockPattern = regexp.MustCompile("(?s)```.*?```")
	dueSuffixPattern       = regexp.MustCompile(`\s*\(due (\d{4}-\d{2}-\d{2})\)$`)
	whitespacePattern      = regexp.MustCompile(`\s+`)
)

type Service interface {
	// ParseCheckboxes extracts all checkboxes from markdown content
	ParseCheckboxes(content string) []Checkbox

	// GetStats calculates checklist statistics
	GetStats(content string) ChecklistStats

	// Render writes items as a markdown checklist with an optional heading
	Render(in RenderInput) string

	// IsFullyCompleted checks if all checkboxes are checked
	IsFullyCompleted(content string) bool
}

type service struct {
	pattern *regexp.Regexp
}

func New() Service {
	return &service{
		pattern: regexp.MustCompile(CheckboxPattern),
	}
}

// sanitizeContent blanks fenced code blocks so that examples inside them
// are not parsed. Newlines are kept so line numbers stay valid.
func sanitizeContent(content string) string {
	return fencedCodeBlockPattern.ReplaceAllStringFunc(content, func(block string) string {
		return strings.Repeat("\n", strings.Count(block, "\n"))
	})
}

// ParseCheckboxes extracts all checkboxes from markdown
func (s *service) ParseCheckboxes(content string) []Checkbox {
	sanitized := sanitizeContent(content)

	idx := s.pattern.FindAllStringSubmatchIndex(sanitized, -1)
	checkboxes := make([]Checkbox, 0, len(idx))

	for _, m := range idx {
		text := strings.TrimSpace(sanitized[m[6]:m[7]])
		cb := Checkbox{
			Line:    strings.Count(sanitized[:m[0]], "\n"),
			Indent:  sanitized[m[2]:m[3]],
			Checked: strings.EqualFold(sanitized[m[4]:m[5]], "x"),
			RawLine: sanitized[m[0]:m[1]],
		}
		cb.Text, cb.Due = splitDue(text)
		checkboxes = append(checkboxes, cb)
	}

	return checkboxes
}

func splitDue(text string) (string, time.Time) {
	m := dueSuffixPattern.FindStringSubmatchIndex(text)
	if m == nil {
		return text, time.Time{}
	}
	due, err := time.Parse(DueLayout, text[m[2]:m[3]])
	if err != nil {
		return text, time.Time{}
	}
	return strings.TrimSpace(text[:m[0]]), due
}

// GetStats calculates checklist statistics
func (s *service) GetStats(content string) ChecklistStats {
	checkboxes := s.ParseCheckboxes(content)
	total := len(checkboxes)
	if total == 0 {
		return ChecklistStats{}
	}

	completed := 0
	for _, cb := range checkboxes {
		if cb.Checked {
			completed++
		}
	}

	return ChecklistStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  float64(completed) / float64(total) * 100,
	}
}

// Render writes one checkbox per item. Item text is flattened to a single line.
func (s *service) Render(in RenderInput) string {
	var b strings.Builder
	if title := strings.TrimSpace(in.Title); title != "" {
		b.WriteString("# ")
		b.WriteString(whitespacePattern.ReplaceAllString(title, " "))
		b.WriteString("\n\n")
	}

	for _, it := range in.Items {
		if it.Checked {
			b.WriteString(CheckboxChecked)
		} else {
			b.WriteString(CheckboxUnchecked)
		}
		b.WriteByte(' ')
		b.WriteString(whitespacePattern.ReplaceAllString(strings.TrimSpace(it.Text), " "))
		if !it.Due.IsZero() {
			b.WriteString(" (due ")
			b.WriteString(it.Due.Format(DueLayout))
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// IsFullyCompleted checks if all checkboxes are checked
func (s *service) IsFullyCompleted(content string) bool {
	checkboxes := s.ParseCheckboxes(content)
	if len(checkboxes) == 0 {
		return false
	}

	for _, cb := range checkboxes {
		if !cb.Checked {
			return false
		}
	}
	return true
}
