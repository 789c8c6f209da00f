package firestoredb

import (
	"strconv"
	"time"
)

// Documents written by the web console and the mobile apps are loosely typed:
// numbers may be stored as integers, doubles or strings.

func str(data map[string]interface{}, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	}
	return ""
}

func boolean(data map[string]interface{}, key string) bool {
	b, _ := data[key].(bool)
	return b
}

func number(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func integer(data map[string]interface{}, key string) (int64, bool) {
	switch v := data[key].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		return i, err == nil
	}
	return 0, false
}

func timestamp(data map[string]interface{}, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v.UTC()
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
