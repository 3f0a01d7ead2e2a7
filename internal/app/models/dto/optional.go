package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The types in this file exist because profile updates arrive from two very
// different clients: JSON bodies with native types, and multipart form
// submissions where every value is a string. Each optional type records
// explicit presence (the JSON key appeared) separately from the value, so an
// empty string can be coerced to an explicit null instead of being stored as
// a malformed number or date.

// StringList is a list field that tolerates textual encodings. A JSON array
// decodes as-is; a string value is first tried as an encoded JSON array, then
// split on commas, and finally kept as a single element.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = items
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("value must be a list of strings or a string: %w", err)
	}

	*l = ParseStringList(text)
	return nil
}

// ParseStringList coerces a textual list value into a string slice.
func ParseStringList(text string) []string {
	if text == "" {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return items
	}

	if strings.Contains(text, ",") {
		parts := strings.Split(text, ",")
		items = make([]string, 0, len(parts))
		for _, part := range parts {
			items = append(items, strings.TrimSpace(part))
		}
		return items
	}

	return []string{text}
}

// OptionalInt is an integer field where an empty string means "clear the value".
type OptionalInt struct {
	Value *int
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		v, perr := ParseOptionalInt(text)
		if perr != nil {
			return perr
		}
		o.Value = v
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value must be an integer: %w", err)
	}
	o.Value = &n
	return nil
}

// ParseOptionalInt coerces a textual integer; empty string yields nil.
func ParseOptionalInt(text string) (*int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("invalid integer value %q", text)
	}
	return &n, nil
}

// OptionalFloat is a float field where an empty string means "clear the value".
type OptionalFloat struct {
	Value *float64
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		v, perr := ParseOptionalFloat(text)
		if perr != nil {
			return perr
		}
		o.Value = v
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("value must be a number: %w", err)
	}
	o.Value = &f
	return nil
}

// ParseOptionalFloat coerces a textual number; empty string yields nil.
func ParseOptionalFloat(text string) (*float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric value %q", text)
	}
	return &f, nil
}

// Accepted layouts for date fields, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// OptionalDate is a date field where an empty string means "clear the value".
type OptionalDate struct {
	Value *time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalDate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("value must be a date string: %w", err)
	}

	v, err := ParseOptionalDate(text)
	if err != nil {
		return err
	}
	o.Value = v
	return nil
}

// ParseOptionalDate coerces a textual date; empty string yields nil.
func ParseOptionalDate(text string) (*time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date value %q", text)
}
