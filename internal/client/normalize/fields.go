package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	unknown = "Unknown"
	na      = "N/A"
)

// text returns the trimmed string form of raw[key], or def when the field is
// absent, null, blank or not a scalar.
func text(raw map[string]any, key, def string) string {
	switch v := raw[key].(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	case float64:
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return def
}

// number returns raw[key] as a finite float64, parsing numeric strings.
// Anything else is 0.
func number(raw map[string]any, key string) float64 {
	var f float64
	switch v := raw[key].(type) {
	case float64:
		f = v
	case json.Number:
		f, _ = v.Float64()
	case string:
		f, _ = strconv.ParseFloat(strings.TrimSpace(v), 64)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func integer(raw map[string]any, key string) int {
	f := number(raw, key)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

func boolean(raw map[string]any, key string) bool {
	switch v := raw[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	case float64:
		return v != 0
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// timestamp reads raw[key] as an ISO-8601 string, epoch milliseconds, or a
// {"$date": ...} wrapper. ok is false when nothing usable is present.
func timestamp(raw map[string]any, key string) (t time.Time, ok bool) {
	return parseTime(raw[key])
}

func parseTime(v any) (time.Time, bool) {
	switch value := v.(type) {
	case string:
		s := strings.TrimSpace(value)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil && ms > 0 {
			return time.UnixMilli(ms).UTC(), true
		}
	case float64:
		if value > 0 && value < 1e15 {
			return time.UnixMilli(int64(value)).UTC(), true
		}
	case map[string]any:
		return parseTime(value["$date"])
	}
	return time.Time{}, false
}

// objectIDTime extracts the creation second embedded in the first eight hex
// digits of a 24-character document id.
func objectIDTime(id string) (time.Time, bool) {
	if len(id) != 24 {
		return time.Time{}, false
	}
	secs, err := strconv.ParseUint(id[:8], 16, 32)
	if err != nil || secs == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(secs), 0).UTC(), true
}

// Slice pulls the collection stored under key out of a decoded response
// envelope. A missing key or a non-array value yields an empty slice, and
// elements that are not JSON objects are dropped.
func Slice(envelope map[string]any, key string) []map[string]any {
	items, _ := envelope[key].([]any)
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Object returns envelope[key] when it is a JSON object, or an empty map.
func Object(envelope map[string]any, key string) map[string]any {
	if m, ok := envelope[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
