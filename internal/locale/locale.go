// Package locale renders timestamps the way a user's language expects them.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type layout struct {
	date  string
	clock string
}

// Order matters: the first tag wins ties in the matcher.
var supported = []struct {
	tag    language.Tag
	layout layout
}{
	{language.AmericanEnglish, layout{"1/2/2006", "3:04:05 PM"}},
	{language.BritishEnglish, layout{"02/01/2006", "15:04:05"}},
	{language.German, layout{"2.1.2006", "15:04:05"}},
	{language.French, layout{"02/01/2006", "15:04:05"}},
	{language.Spanish, layout{"2/1/2006", "15:04:05"}},
	{language.Japanese, layout{"2006/1/2", "15:04:05"}},
	{language.TraditionalChinese, layout{"2006/1/2", "15:04:05"}},
	{language.SimplifiedChinese, layout{"2006/1/2", "15:04:05"}},
}

// Formatter renders dates and times in a fixed display zone.
// It is safe for concurrent use.
type Formatter struct {
	loc        *time.Location
	matcher    language.Matcher
	defaultIdx int
}

// New creates a Formatter for loc. defaultLang is used when a request's
// language is missing or unsupported, and must itself be supported.
func New(loc *time.Location, defaultLang string) (*Formatter, error) {
	if loc == nil {
		loc = time.UTC
	}
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	f := &Formatter{loc: loc, matcher: language.NewMatcher(tags)}

	idx, ok := f.match(defaultLang)
	if !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLang)
	}
	f.defaultIdx = idx
	return f, nil
}

// Location returns the display zone.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Format returns the localized date and time-of-day for t.
func (f *Formatter) Format(t time.Time, languageCode string) (date, clock string) {
	idx, ok := f.match(languageCode)
	if !ok {
		idx = f.defaultIdx
	}
	l := supported[idx].layout
	local := t.In(f.loc)
	return local.Format(l.date), local.Format(l.clock)
}

func (f *Formatter) match(code string) (int, bool) {
	if code == "" {
		return 0, false
	}
	tag, err := language.Parse(code)
	if err != nil {
		return 0, false
	}
	_, idx, conf := f.matcher.Match(tag)
	if conf == language.No {
		return 0, false
	}
	return idx, true
}

// LoadLocation loads an IANA zone such as "America/Chicago".
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load display timezone %q: %w", name, err)
	}
	return loc, nil
}
