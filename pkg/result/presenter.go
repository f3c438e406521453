package result

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NotAvailable is rendered for missing or non-numeric values.
const NotAvailable = "N/A"

// Row is one presented metric.
type Row struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (r Row) String() string {
	return r.Label + ": " + r.Value
}

// Section is one presented group.
type Section struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Rows  []Row  `json:"rows"`
}

// Presenter converts results into display sections.
type Presenter struct {
	precision int
	missing   string
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithPrecision overrides the number of decimals (default 2).
func WithPrecision(decimals int) PresenterOption {
	return func(p *Presenter) {
		if decimals >= 0 {
			p.precision = decimals
		}
	}
}

// WithMissing overrides the placeholder for unavailable values.
func WithMissing(text string) PresenterOption {
	return func(p *Presenter) {
		p.missing = text
	}
}

// NewPresenter constructs a Presenter.
func NewPresenter(options ...PresenterOption) *Presenter {
	p := &Presenter{precision: 2, missing: NotAvailable}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

var defaultPresenter = NewPresenter()

// Present groups r with the default presenter.
func Present(r Result) []Section {
	return defaultPresenter.Present(r)
}

// Present walks the known groups in fixed order, skipping absent or empty
// ones, and formats each metric in wire order.
func (p *Presenter) Present(r Result) []Section {
	var sections []Section
	for _, key := range GroupOrder {
		group, ok := r.Group(key)
		if !ok || len(group.Metrics) == 0 {
			continue
		}
		section := Section{
			Key:   key,
			Label: Humanize(key),
			Rows:  make([]Row, 0, len(group.Metrics)),
		}
		for _, metric := range group.Metrics {
			section.Rows = append(section.Rows, Row{
				Key:   metric.Key,
				Label: Humanize(metric.Key),
				Value: p.Format(metric.Value),
			})
		}
		sections = append(sections, section)
	}
	return sections
}

// Format renders a numeric value with the configured decimals, rounding half
// away from zero. Anything else renders as the missing placeholder.
func (p *Presenter) Format(value any) string {
	f, ok := asFloat(value)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return p.missing
	}
	scale := math.Pow10(p.precision)
	scaled := f * scale
	if math.IsInf(scaled, 0) || math.Abs(f) >= 1e15 {
		// Scaling past this magnitude adds nothing and can overflow.
		return strconv.FormatFloat(f, 'f', p.precision, 64)
	}
	rounded := math.Round(scaled) / scale
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return strconv.FormatFloat(rounded, 'f', p.precision, 64)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Humanize turns snake_case or camelCase keys into title-cased labels:
// "max_speed" and "maxSpeed" both become "Max Speed", "engineRPM" becomes
// "Engine RPM".
func Humanize(key string) string {
	words := splitWords(key)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}

func splitWords(key string) []string {
	runes := []rune(key)
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(current) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}
