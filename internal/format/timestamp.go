// Package format renders notification timestamps for display.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
)

// ErrUnsupportedLocale is returned by New for a locale without month data.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// DefaultLocale is used by Timestamp.
const DefaultLocale = "en"

var translators = map[string]func() locales.Translator{
	"en": en.New,
	"es": es.New,
}

// Formatter renders timestamps with locale-specific month names.
type Formatter struct {
	trans locales.Translator
}

// New returns a Formatter for locale ("en" or "es").
func New(locale string) (*Formatter, error) {
	mk, ok := translators[strings.ToLower(locale)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	return &Formatter{trans: mk()}, nil
}

var defaultFormatter = &Formatter{trans: en.New()}

// Timestamp formats t as "02 Jan - 3:04 PM" in the default locale.
func Timestamp(t time.Time) string {
	return defaultFormatter.Timestamp(t)
}

// Timestamp formats t as day, abbreviated month and 12-hour time, e.g.
// "05 Mar - 3:45 PM".
func (f *Formatter) Timestamp(t time.Time) string {
	return fmt.Sprintf(
		"%02d %s - %s",
		t.Day(),
		f.trans.MonthAbbreviated(t.Month()),
		t.Format("3:04 PM"),
	)
}

// Locale returns the formatter's locale tag.
func (f *Formatter) Locale() string {
	return f.trans.Locale()
}

// Relative returns a short relative age such as "3h ago" for t as seen
// from now.
func Relative(now, t time.Time) string {
	if t.IsZero() {
		return ""
	}

	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return fmt.Sprintf("%dw ago", int(d.Hours()/24/7))
	}
}
