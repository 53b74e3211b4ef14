package format

import (
	"slices"
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"just now", 0, "0 min ago"},
		{"seconds floor to zero", 59 * time.Second, "0 min ago"},
		{"59 minutes", 59 * time.Minute, "59 min ago"},
		{"60 minutes", 60 * time.Minute, "1 hr ago"},
		{"23h59m", 23*time.Hour + 59*time.Minute, "23 hr ago"},
		{"24 hours", 24 * time.Hour, "1 day ago"},
		{"47 hours", 47 * time.Hour, "1 day ago"},
		{"2 days", 48 * time.Hour, "2 days ago"},
		{"future clamps", -3 * time.Hour, "0 min ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(now.Add(-tt.elapsed), now); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{245.5, "$245.50"},
		{0, "$0.00"},
		{1234.567, "$1234.57"},
		{-12, "-$12.00"},
		{-0.004, "$0.00"},
		{-0.006, "-$0.01"},
		{-1234.567, "-$1234.57"},
	}
	for _, tt := range tests {
		if got := Currency("$", tt.amount); got != tt.want {
			t.Errorf("Currency(%v): expected %q, got %q", tt.amount, tt.want, got)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := map[string]string{
		"paid":        "Paid",
		"in-progress": "In progress",
		"":            "",
		"x":           "X",
	}
	for in, want := range tests {
		if got := StatusLabel(in); got != want {
			t.Errorf("StatusLabel(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestLayoutDirection(t *testing.T) {
	if LayoutDirection("ar") != RTL {
		t.Fatal("expected rtl for ar")
	}
	if LayoutDirection("en") != LTR || LayoutDirection("") != LTR {
		t.Fatal("expected ltr for everything else")
	}
}

func TestArrange(t *testing.T) {
	in := []string{"icon", "label", "badge"}

	if got := Arrange(in, LTR); !slices.Equal(got, in) {
		t.Fatalf("ltr changed order: %v", got)
	}
	got := Arrange(in, RTL)
	if !slices.Equal(got, []string{"badge", "label", "icon"}) {
		t.Fatalf("rtl not reversed: %v", got)
	}
	if in[0] != "icon" {
		t.Fatal("Arrange modified its input")
	}
}

func TestMetricValue(t *testing.T) {
	tests := []struct {
		value float64
		lang  string
		want  string
	}{
		{1248, "en", "1,248"},
		{68, "en", "68"},
		{1000000, "en", "1,000,000"},
		{826, "not a tag!", "826"},
	}
	for _, tt := range tests {
		if got := MetricValue(tt.value, tt.lang); got != tt.want {
			t.Errorf("MetricValue(%v, %q): expected %q, got %q", tt.value, tt.lang, tt.want, got)
		}
	}
}

func TestTrendOf(t *testing.T) {
	if TrendOf(5.2) != TrendUp {
		t.Fatal("expected up for positive change")
	}
	if TrendOf(-3.1) != TrendDown || TrendOf(0) != TrendDown {
		t.Fatal("expected down for zero and negative change")
	}
}

func TestStatusTone(t *testing.T) {
	tests := map[string]Tone{
		"paid":        ToneSuccess,
		"completed":   ToneSuccess,
		"pending":     ToneWarning,
		"in-progress": ToneWarning,
		"overdue":     ToneDanger,
		"failed":      ToneDanger,
		"archived":    ToneNeutral,
	}
	for status, want := range tests {
		if got := StatusTone(status); got != want {
			t.Errorf("StatusTone(%q): expected %q, got %q", status, want, got)
		}
	}
}
