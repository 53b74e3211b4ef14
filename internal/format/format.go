// Package format derives display values from domain records. Every function
// is pure and safe for concurrent use.
package format

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// RelativeTime renders the time elapsed between ts and now with floor
// division: minutes below one hour, hours below one day, days otherwise.
// Timestamps after now read as "0 min ago".
func RelativeTime(ts, now time.Time) string {
	elapsed := now.Sub(ts)
	if elapsed < 0 {
		elapsed = 0
	}

	minutes := int64(elapsed / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%d min ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hr ago", hours)
	}

	days := hours / 24
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

// Currency prefixes symbol and fixes two decimals: Currency("$", 245.5) is
// "$245.50". The sign follows the amount rounded to cents, so -0.004 is
// "$0.00".
func Currency(symbol string, amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s%s%d.%02d", sign, symbol, cents/100, cents%100)
}

// StatusLabel turns a status value into a label: the first letter is
// capitalised and hyphens become spaces ("in-progress" → "In progress").
func StatusLabel(status string) string {
	if status == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(status)
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(status[size:], "-", " ")
}

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// LayoutDirection is RTL for Arabic and LTR for everything else.
func LayoutDirection(lang string) Direction {
	if lang == "ar" {
		return RTL
	}
	return LTR
}

// Arrange returns the horizontal order of items for dir. The input is never
// modified.
func Arrange[T any](items []T, dir Direction) []T {
	out := slices.Clone(items)
	if dir == RTL {
		slices.Reverse(out)
	}
	return out
}

// MetricValue groups digits for the reader's locale ("1,248"). Unknown
// languages fall back to English.
func MetricValue(value float64, lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	if value == math.Trunc(value) && math.Abs(value) < math.MaxInt64 {
		return p.Sprintf("%d", int64(value))
	}
	return p.Sprint(number.Decimal(value, number.MaxFractionDigits(3)))
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// TrendOf is up for a positive change and down otherwise, zero included.
func TrendOf(change float64) Trend {
	if change > 0 {
		return TrendUp
	}
	return TrendDown
}

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneNeutral Tone = "neutral"
)

// StatusTone maps bill and experiment statuses to a badge tone.
func StatusTone(status string) Tone {
	switch status {
	case "paid", "completed":
		return ToneSuccess
	case "pending", "in-progress":
		return ToneWarning
	case "overdue", "failed":
		return ToneDanger
	}
	return ToneNeutral
}
