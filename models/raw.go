package models

import (
	"strconv"
)

// RawRecord is a catalog record as delivered by a source: a JSON object of
// unknown shape. Normalization maps it into one of the canonical structs.
type RawRecord = map[string]interface{}

func rawString(raw RawRecord, key string) (string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func rawNumber(raw RawRecord, key string) (float64, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return 0, false
	}
	return asNumber(v)
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func rawBool(raw RawRecord, key string) (bool, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// rawList materializes a list-typed field as a string slice. Non-string
// entries are skipped; a missing or differently-typed value yields nil.
func rawList(raw RawRecord, key string) ([]string, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	entries, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

func rawObject(raw RawRecord, key string) (RawRecord, bool) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	return obj, ok
}

// normalizeID coerces numeric-looking string ids to numbers so that a record
// keyed "7" and one keyed 7 compare equal downstream. Every other id passes
// through unchanged.
func normalizeID(v interface{}) interface{} {
	if s, ok := v.(string); ok {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n
		}
	}
	return v
}

func strPtr(s string) *string {
	return &s
}

func numPtr(f float64) *float64 {
	return &f
}

// setString fills dst from the same-named key when present and non-null.
func setString(dst **string, raw RawRecord, key string) {
	if s, ok := rawString(raw, key); ok {
		*dst = strPtr(s)
	}
}

func setNumber(dst **float64, raw RawRecord, key string) {
	if n, ok := rawNumber(raw, key); ok {
		*dst = numPtr(n)
	}
}

func listOrEmpty(raw RawRecord, key string) []string {
	if entries, ok := rawList(raw, key); ok {
		return entries
	}
	return []string{}
}
