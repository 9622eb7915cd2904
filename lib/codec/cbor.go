// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"
	"math"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/cnt-foundation/cnt/lib/config"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. The same tree always produces
// identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Value payloads decode through any-typed targets; CBOR's
		// default concrete map type for those is
		// map[interface{}]interface{}, which nothing here wants.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Wire form: every Value is a two-element array [kind, payload]. The
// explicit kind tag is what lets Character survive next to String and
// None next to absent keys; a plain JSON-style mapping cannot carry
// either distinction.
type wireValue struct {
	_       struct{} `cbor:",toarray"`
	Kind    uint8
	Payload any
}

// EncodeValue encodes a single Value tree to deterministic CBOR.
func EncodeValue(v *config.Value) ([]byte, error) {
	return encMode.Marshal(toWire(v))
}

// DecodeValue decodes CBOR produced by EncodeValue.
func DecodeValue(data []byte) (*config.Value, error) {
	var wire wireValue
	if err := decMode.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding value: %w", err)
	}
	return fromWire(wire)
}

// EncodeMapping encodes a top-level key to Value mapping.
func EncodeMapping(data map[string]*config.Value) ([]byte, error) {
	wire := make(map[string]wireValue, len(data))
	for key, value := range data {
		wire[key] = toWire(value)
	}
	return encMode.Marshal(wire)
}

// DecodeMapping decodes CBOR produced by EncodeMapping.
func DecodeMapping(data []byte) (map[string]*config.Value, error) {
	var wire map[string]wireValue
	if err := decMode.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decoding mapping: %w", err)
	}
	result := make(map[string]*config.Value, len(wire))
	for key, entry := range wire {
		value, err := fromWire(entry)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		result[key] = value
	}
	return result, nil
}

func toWire(v *config.Value) wireValue {
	wire := wireValue{Kind: uint8(v.Kind())}
	switch v.Kind() {
	case config.KindNone:
		wire.Payload = nil
	case config.KindInteger:
		wire.Payload, _ = v.AsInteger()
	case config.KindFloat:
		wire.Payload, _ = v.AsFloat()
	case config.KindBoolean:
		wire.Payload, _ = v.AsBoolean()
	case config.KindString:
		wire.Payload, _ = v.AsString()
	case config.KindCharacter:
		ch, _ := v.AsCharacter()
		wire.Payload = int64(ch)
	case config.KindObject:
		entries := make(map[string]wireValue, v.Size())
		for _, key := range v.Keys() {
			entry, _ := v.Lookup(key)
			entries[key] = toWire(entry)
		}
		wire.Payload = entries
	case config.KindArray:
		elements := make([]wireValue, 0, v.Size())
		for i := 0; i < v.Size(); i++ {
			element, _ := v.Item(i)
			elements = append(elements, toWire(element))
		}
		wire.Payload = elements
	}
	return wire
}

func fromWire(wire wireValue) (*config.Value, error) {
	switch config.Kind(wire.Kind) {
	case config.KindNone:
		return config.None(), nil
	case config.KindInteger:
		n, err := wireInt(wire.Payload)
		if err != nil {
			return nil, err
		}
		return config.Int(n), nil
	case config.KindFloat:
		switch f := wire.Payload.(type) {
		case float64:
			return config.Float(f), nil
		case float32:
			return config.Float(float64(f)), nil
		}
		// Whole floats arrive as CBOR integers under deterministic
		// encoding's smallest-form rule.
		n, err := wireInt(wire.Payload)
		if err != nil {
			return nil, err
		}
		return config.Float(float64(n)), nil
	case config.KindBoolean:
		b, ok := wire.Payload.(bool)
		if !ok {
			return nil, fmt.Errorf("boolean payload is %T", wire.Payload)
		}
		return config.Bool(b), nil
	case config.KindString:
		s, ok := wire.Payload.(string)
		if !ok {
			return nil, fmt.Errorf("string payload is %T", wire.Payload)
		}
		return config.Str(s), nil
	case config.KindCharacter:
		n, err := wireInt(wire.Payload)
		if err != nil {
			return nil, err
		}
		return config.Char(rune(n)), nil
	case config.KindObject:
		entries, ok := wire.Payload.(map[string]any)
		if !ok && wire.Payload != nil {
			return nil, fmt.Errorf("object payload is %T", wire.Payload)
		}
		object := config.NewObject()
		for key, raw := range entries {
			entry, err := reWire(raw)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			object.Set(key, entry)
		}
		return object, nil
	case config.KindArray:
		elements, ok := wire.Payload.([]any)
		if !ok && wire.Payload != nil {
			return nil, fmt.Errorf("array payload is %T", wire.Payload)
		}
		array := config.NewArray()
		for i, raw := range elements {
			element, err := reWire(raw)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			array.Append(element)
		}
		return array, nil
	default:
		return nil, fmt.Errorf("unknown kind tag %d", wire.Kind)
	}
}

// reWire rebuilds a nested wireValue that the decoder surfaced as a
// bare []any pair (nested any-typed targets do not know the struct
// shape).
func reWire(raw any) (*config.Value, error) {
	pair, ok := raw.([]any)
	if !ok || len(pair) != 2 {
		return nil, fmt.Errorf("malformed wire pair %T", raw)
	}
	kind, err := wireInt(pair[0])
	if err != nil {
		return nil, err
	}
	if kind < 0 || kind > math.MaxUint8 {
		return nil, fmt.Errorf("kind tag %d out of range", kind)
	}
	return fromWire(wireValue{Kind: uint8(kind), Payload: pair[1]})
}

// wireInt normalizes the integer types the CBOR decoder may produce
// for an any-typed target.
func wireInt(raw any) (int64, error) {
	switch n := raw.(type) {
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d overflows int64", n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("integer payload is %T", raw)
	}
}
