package checklist

import "time"

// Checkbox represents a single checkbox in markdown
type Checkbox struct {
	Line    int       // Line number in content, zero based
	Indent  string    // Leading whitespace
	Checked bool      // true if [x], false if [ ]
	Text    string    // Checkbox text without the due suffix
	Due     time.Time // Zero when the line carries no "(due YYYY-MM-DD)" suffix
	RawLine string    // Original line
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int     // Total checkboxes
	Completed int     // Checked checkboxes
	Pending   int     // Unchecked checkboxes
	Progress  float64 // Completion percentage (0-100)
}

// Item is one line to render.
type Item struct {
	Text    string
	Checked bool
	Due     time.Time
}

// RenderInput is a titled list of items.
type RenderInput struct {
	Title string
	Items []Item
}
