package result

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Known group keys, in presentation order.
const (
	GroupVesselCharacteristics = "vessel_characteristics"
	GroupPropulsionParameters  = "propulsion_parameters"
	GroupPerformance           = "performance"
)

// GroupOrder lists the presented groups in display order.
var GroupOrder = []string{
	GroupVesselCharacteristics,
	GroupPropulsionParameters,
	GroupPerformance,
}

// Metric is a single raw result value. Value is a float64 for numbers, nil
// for null, or whatever else the payload carried.
type Metric struct {
	Key   string
	Value any
}

// Group is a named, ordered set of metrics.
type Group struct {
	Key     string
	Metrics []Metric
}

// Result is the structured output of a calculation.
type Result struct {
	Groups []Group
}

// New builds a Result from groups, keeping their order.
func New(groups ...Group) Result {
	return Result{Groups: append([]Group(nil), groups...)}
}

// Group returns the group stored under key.
func (r Result) Group(key string) (Group, bool) {
	for _, group := range r.Groups {
		if group.Key == key {
			return group, true
		}
	}
	return Group{}, false
}

// Empty reports whether the result carries no groups.
func (r Result) Empty() bool {
	return len(r.Groups) == 0
}

// Value returns the raw metric value for group/key.
func (g Group) Value(key string) (any, bool) {
	for _, metric := range g.Metrics {
		if metric.Key == key {
			return metric.Value, true
		}
	}
	return nil, false
}

// UnmarshalJSON decodes `{group: {metric: value}}` preserving key order.
// Group entries that are not objects are ignored.
func (r *Result) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("result: %w", err)
	}

	var groups []Group
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return fmt.Errorf("result: %w", err)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("result: group %q: %w", key, err)
		}
		metrics, ok, err := decodeMetrics(raw)
		if err != nil {
			return fmt.Errorf("result: group %q: %w", key, err)
		}
		if !ok {
			continue
		}
		groups = append(groups, Group{Key: key, Metrics: metrics})
	}

	if err := expectDelim(dec, '}'); err != nil {
		return fmt.Errorf("result: %w", err)
	}

	r.Groups = groups
	return nil
}

// MarshalJSON encodes the result as nested objects in group/metric order.
func (r Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range r.Groups {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, group.Key); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, metric := range group.Metrics {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, metric.Key); err != nil {
				return nil, err
			}
			value, err := json.Marshal(metric.Value)
			if err != nil {
				return nil, fmt.Errorf("result: encode %s.%s: %w", group.Key, metric.Key, err)
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func decodeMetrics(raw json.RawMessage) ([]Metric, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := expectDelim(dec, '{'); err != nil {
		return nil, false, err
	}

	metrics := []Metric{}
	positions := make(map[string]int)
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, false, err
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, false, fmt.Errorf("metric %q: %w", key, err)
		}
		value = normalizeNumber(value)
		if idx, seen := positions[key]; seen {
			metrics[idx].Value = value
			continue
		}
		positions[key] = len(metrics)
		metrics = append(metrics, Metric{Key: key, Value: value})
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, false, err
	}
	return metrics, true, nil
}

func normalizeNumber(value any) any {
	number, ok := value.(json.Number)
	if !ok {
		return value
	}
	if f, err := number.Float64(); err == nil {
		return f
	}
	return number.String()
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	buf.WriteByte(':')
	return nil
}
