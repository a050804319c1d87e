package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Stat is a display-only value that may arrive as a JSON number or string.
// Null, zero and empty all decode to the empty Stat.
type Stat string

// UnmarshalJSON accepts numbers, strings and null.
func (s *Stat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("decode stat string: %w", err)
		}
		*s = Stat(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode stat number: %w", err)
	}
	if f, err := n.Float64(); err == nil && f == 0 {
		*s = ""
		return nil
	}
	*s = Stat(n.String())
	return nil
}

// FormatMinutes renders an optional duration as "N min", or "" when absent.
func FormatMinutes(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + " min"
}
