package glaze

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// ErrMissingField is returned when a record lacks a required field.
var ErrMissingField = errors.New("missing required field")

// requiredCache maps a struct type to the JSON names of its required fields.
var requiredCache sync.Map

// requiredFields lists the JSON keys of t that are not tagged omitempty.
// Untagged and "-" fields are ignored.
func requiredFields(t reflect.Type) []string {
	if cached, ok := requiredCache.Load(t); ok {
		return cached.([]string)
	}
	var names []string
	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup("json")
		if !ok || tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if strings.Contains(opts, "omitempty") || name == "" {
			continue
		}
		names = append(names, name)
	}
	requiredCache.Store(t, names)
	return names
}

// decodeRecord decodes one JSON object into dst after checking that every
// required field is present and non-null.
func decodeRecord[T any](data []byte, dst *T) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, name := range requiredFields(reflect.TypeOf(*dst)) {
		v, ok := raw[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("%w %q", ErrMissingField, name)
		}
	}
	return json.Unmarshal(data, dst)
}
