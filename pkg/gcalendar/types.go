package gcalendar

import "time"

// DefaultCalendarID is the authenticated user's main calendar.
const DefaultCalendarID = "primary"

// AllDayEventRequest creates an event spanning the whole of Date.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
	// Reminder adds a popup this long before the event starts; zero keeps the calendar default.
	Reminder time.Duration
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	// Date is set for all-day events, StartTime otherwise.
	Date      string
	StartTime time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
