// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/cnt-foundation/cnt/lib/config"
)

// FromJSON parses JSON (or JSONC; comments and trailing commas are
// stripped first) into a top-level key to Value mapping. The input must
// be a JSON object at the top level, mirroring the CNT document shape.
func FromJSON(data []byte) (map[string]*config.Value, error) {
	stripped := jsonc.ToJSON(data)

	decoder := json.NewDecoder(bytes.NewReader(stripped))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	result := make(map[string]*config.Value, len(raw))
	for key, entry := range raw {
		value, err := fromNative(entry)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		result[key] = value
	}
	return result, nil
}

// ToJSON renders a top-level mapping as indented JSON. Characters
// become length-1 strings and None becomes null; those two conversions
// are lossy on a JSON round trip.
func ToJSON(data map[string]*config.Value) ([]byte, error) {
	native := make(map[string]any, len(data))
	for key, value := range data {
		native[key] = toNative(value)
	}
	out, err := json.MarshalIndent(native, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return out, nil
}

// FromYAML parses a YAML mapping into a top-level key to Value mapping.
func FromYAML(data []byte) (map[string]*config.Value, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	result := make(map[string]*config.Value, len(raw))
	for key, entry := range raw {
		value, err := fromNative(entry)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		result[key] = value
	}
	return result, nil
}

// ToYAML renders a top-level mapping as YAML, with the same Character
// and None lossiness as ToJSON.
func ToYAML(data map[string]*config.Value) ([]byte, error) {
	native := make(map[string]any, len(data))
	for key, value := range data {
		native[key] = toNative(value)
	}
	out, err := yaml.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return out, nil
}

// ToNative converts a single Value into the plain Go forms the stdlib
// encoders accept: map[string]any, []any, and scalars. Characters
// become length-1 strings and None becomes nil, with the same
// lossiness as ToJSON.
func ToNative(v *config.Value) any {
	return toNative(v)
}

// fromNative converts a decoded JSON/YAML value into a config Value.
// Numbers become Integer when they are whole and fit in int64, Float
// otherwise.
func fromNative(entry any) (*config.Value, error) {
	switch v := entry.(type) {
	case nil:
		return config.None(), nil
	case bool:
		return config.Bool(v), nil
	case string:
		return config.Str(v), nil
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return config.Int(n), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", v.String(), err)
		}
		return config.Float(f), nil
	case int:
		return config.Int(int64(v)), nil
	case int64:
		return config.Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return config.Float(float64(v)), nil
		}
		return config.Int(int64(v)), nil
	case float64:
		return config.Float(v), nil
	case []any:
		array := config.NewArray()
		for i, element := range v {
			converted, err := fromNative(element)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			array.Append(converted)
		}
		return array, nil
	case map[string]any:
		object := config.NewObject()
		for key, element := range v {
			converted, err := fromNative(element)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			object.Set(key, converted)
		}
		return object, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", entry)
	}
}

// toNative converts a config Value into the plain Go form both
// encoders accept. Iteration order is irrelevant here; both encoders
// sort object keys themselves.
func toNative(v *config.Value) any {
	switch v.Kind() {
	case config.KindNone:
		return nil
	case config.KindInteger:
		n, _ := v.AsInteger()
		return n
	case config.KindFloat:
		f, _ := v.AsFloat()
		return f
	case config.KindBoolean:
		b, _ := v.AsBoolean()
		return b
	case config.KindString, config.KindCharacter:
		s, _ := v.AsString()
		return s
	case config.KindObject:
		out := make(map[string]any, v.Size())
		for _, key := range v.Keys() {
			entry, _ := v.Lookup(key)
			out[key] = toNative(entry)
		}
		return out
	case config.KindArray:
		out := make([]any, 0, v.Size())
		for i := 0; i < v.Size(); i++ {
			element, _ := v.Item(i)
			out = append(out, toNative(element))
		}
		return out
	}
	return nil
}
