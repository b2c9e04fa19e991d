package deadline_test

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"action-plan-assistant/pkg/deadline"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		due       time.Time
		completed bool
		now       time.Time
		want      deadline.Info
	}{
		{
			name: "Overdue",
			due:  date(2024, 1, 1, 0),
			now:  date(2024, 1, 5, 0),
			want: deadline.Info{DaysRemaining: -4, IsOverdue: true, Urgency: deadline.UrgencyCritical, Status: deadline.StatusOverdue},
		},
		{
			name: "Due today",
			due:  date(2024, 1, 5, 0),
			now:  date(2024, 1, 5, 0),
			want: deadline.Info{DaysRemaining: 0, Urgency: deadline.UrgencyHigh, Status: deadline.StatusDueToday},
		},
		{
			name: "Due earlier today",
			due:  date(2024, 1, 5, 0),
			now:  date(2024, 1, 5, 15),
			want: deadline.Info{DaysRemaining: 0, Urgency: deadline.UrgencyHigh, Status: deadline.StatusDueToday},
		},
		{
			name: "Partial day rounds up",
			due:  date(2024, 1, 6, 0),
			now:  date(2024, 1, 5, 15),
			want: deadline.Info{DaysRemaining: 1, Urgency: deadline.UrgencyHigh, Status: deadline.StatusUpcoming},
		},
		{
			name: "Two days left",
			due:  date(2024, 1, 7, 0),
			now:  date(2024, 1, 5, 0),
			want: deadline.Info{DaysRemaining: 2, Urgency: deadline.UrgencyHigh, Status: deadline.StatusUpcoming},
		},
		{
			name: "Three days left",
			due:  date(2024, 1, 8, 0),
			now:  date(2024, 1, 5, 0),
			want: deadline.Info{DaysRemaining: 3, Urgency: deadline.UrgencyMedium, Status: deadline.StatusUpcoming},
		},
		{
			name: "One week left",
			due:  date(2024, 1, 12, 0),
			now:  date(2024, 1, 5, 0),
			want: deadline.Info{DaysRemaining: 7, Urgency: deadline.UrgencyMedium, Status: deadline.StatusUpcoming},
		},
		{
			name: "More than a week left",
			due:  date(2024, 1, 13, 0),
			now:  date(2024, 1, 5, 0),
			want: deadline.Info{DaysRemaining: 8, Urgency: deadline.UrgencyLow, Status: deadline.StatusUpcoming},
		},
		{
			name:      "Completed overdue step",
			due:       date(2024, 1, 1, 0),
			completed: true,
			now:       date(2024, 1, 5, 0),
			want:      deadline.Info{DaysRemaining: -4, Urgency: deadline.UrgencyLow, Status: deadline.StatusCompleted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deadline.Evaluate(tt.due, tt.completed, tt.now)
			if got != tt.want {
				t.Errorf("Evaluate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEvaluate_DSTDays(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// Still the due day during the extra hour of 2024-11-03.
	info := deadline.Evaluate(time.Date(2024, 11, 3, 0, 0, 0, 0, loc), false, time.Date(2024, 11, 3, 23, 30, 0, 0, loc))
	if info.Status != deadline.StatusDueToday || info.IsOverdue || info.DaysRemaining != 0 {
		t.Errorf("fall back day: got %+v, want due_today", info)
	}

	info = deadline.Evaluate(time.Date(2024, 11, 5, 0, 0, 0, 0, loc), false, time.Date(2024, 11, 2, 0, 0, 0, 0, loc))
	if info.DaysRemaining != 3 || info.Urgency != deadline.UrgencyMedium {
		t.Errorf("three days across fall back: got %+v, want 3 days medium", info)
	}

	info = deadline.Evaluate(time.Date(2024, 3, 10, 0, 0, 0, 0, loc), false, time.Date(2024, 3, 10, 23, 30, 0, 0, loc))
	if info.Status != deadline.StatusDueToday {
		t.Errorf("spring forward day: got %+v, want due_today", info)
	}

	info = deadline.Evaluate(time.Date(2024, 3, 12, 0, 0, 0, 0, loc), false, time.Date(2024, 3, 9, 0, 0, 0, 0, loc))
	if info.DaysRemaining != 3 || info.Status != deadline.StatusUpcoming {
		t.Errorf("three days across spring forward: got %+v", info)
	}
}

func TestEvaluate_CompletionOverrides(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 500; i++ {
		due := planStart.Add(time.Duration(r.Int64N(int64(90*24*time.Hour))))
		now := planStart.Add(time.Duration(r.Int64N(int64(90*24*time.Hour))))

		got := deadline.Evaluate(due, true, now)
		if got.Status != deadline.StatusCompleted || got.Urgency != deadline.UrgencyLow || got.IsOverdue {
			t.Fatalf("Evaluate(%s, true, %s) = %+v", due, now, got)
		}
		if got.NeedsAlert() {
			t.Fatalf("completed step must not alert: %+v", got)
		}
	}
}

func TestInfo_NeedsAlert(t *testing.T) {
	tests := map[deadline.Status]bool{
		deadline.StatusOverdue:   true,
		deadline.StatusDueToday:  true,
		deadline.StatusUpcoming:  false,
		deadline.StatusCompleted: false,
	}
	for status, want := range tests {
		if got := (deadline.Info{Status: status}).NeedsAlert(); got != want {
			t.Errorf("NeedsAlert() for %s = %v, want %v", status, got, want)
		}
	}
}

func TestUrgencyLevel(t *testing.T) {
	if !(deadline.UrgencyLow < deadline.UrgencyMedium &&
		deadline.UrgencyMedium < deadline.UrgencyHigh &&
		deadline.UrgencyHigh < deadline.UrgencyCritical) {
		t.Fatal("urgency levels are not ordered")
	}

	b, err := json.Marshal(deadline.Info{Urgency: deadline.UrgencyCritical, Status: deadline.StatusOverdue, DaysRemaining: -1, IsOverdue: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"days_remaining":-1,"is_overdue":true,"urgency_level":"critical","status":"overdue"}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}

	var info deadline.Info
	if err := json.Unmarshal([]byte(want), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.Urgency != deadline.UrgencyCritical {
		t.Errorf("Urgency = %v, want critical", info.Urgency)
	}

	var u deadline.UrgencyLevel
	if err := u.UnmarshalText([]byte("panic")); err == nil {
		t.Error("expected error for unknown level")
	}
	if s := deadline.UrgencyLevel(9).String(); s != "urgency(9)" {
		t.Errorf("String() = %q", s)
	}
}
