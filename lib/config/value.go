// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Kind identifies which variant a Value currently holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindString
	KindCharacter
	KindObject
	KindArray
)

// String returns the kind name used in error messages and debug output.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindCharacter:
		return "character"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Sentinel errors returned by the strict container accessors.
var (
	// ErrNotObject is returned by At when the Value is not an object.
	ErrNotObject = errors.New("config: value is not an object")

	// ErrNotArray is returned by AtIndex when the Value is not an array.
	ErrNotArray = errors.New("config: value is not an array")

	// ErrNotFound is returned by At and AtIndex when the key or index
	// does not exist in the container.
	ErrNotFound = errors.New("config: entry not found")
)

// Value is a dynamically typed configuration datum. A Value holds exactly
// one of the variants enumerated by Kind; the kind and the stored payload
// are always consistent.
//
// Values are handled through pointers. Copying a *Value aliases the entire
// subtree: mutation through one handle is visible through every other
// handle to the same Value, matching the shared-container semantics of the
// persisted format's data model. Use Clone for an independent deep copy.
// The type provides no internal locking; callers sharing a tree across
// goroutines must synchronize externally.
type Value struct {
	kind    Kind
	integer int64
	float   float64
	boolean bool
	str     string
	char    rune
	object  map[string]*Value
	array   []*Value
}

// None returns a Value holding no payload.
func None() *Value { return &Value{kind: KindNone} }

// Int returns an integer Value.
func Int(v int64) *Value { return &Value{kind: KindInteger, integer: v} }

// Float returns a float Value.
func Float(v float64) *Value { return &Value{kind: KindFloat, float: v} }

// Bool returns a boolean Value.
func Bool(v bool) *Value { return &Value{kind: KindBoolean, boolean: v} }

// Str returns a string Value.
func Str(v string) *Value { return &Value{kind: KindString, str: v} }

// Char returns a character Value holding a single Unicode scalar.
func Char(v rune) *Value { return &Value{kind: KindCharacter, char: v} }

// NewObject returns an empty object Value.
func NewObject() *Value {
	return &Value{kind: KindObject, object: map[string]*Value{}}
}

// NewArray returns an empty array Value.
func NewArray() *Value {
	return &Value{kind: KindArray, array: []*Value{}}
}

// Kind returns the variant the Value currently holds.
func (v *Value) Kind() Kind { return v.kind }

// IsNone reports whether the Value holds no payload.
func (v *Value) IsNone() bool { return v.kind == KindNone }

// IsInteger reports whether the Value holds an integer.
func (v *Value) IsInteger() bool { return v.kind == KindInteger }

// IsFloat reports whether the Value holds a float.
func (v *Value) IsFloat() bool { return v.kind == KindFloat }

// IsBoolean reports whether the Value holds a boolean.
func (v *Value) IsBoolean() bool { return v.kind == KindBoolean }

// IsString reports whether the Value holds a string.
func (v *Value) IsString() bool { return v.kind == KindString }

// IsCharacter reports whether the Value holds a single character.
func (v *Value) IsCharacter() bool { return v.kind == KindCharacter }

// IsObject reports whether the Value holds a keyed mapping.
func (v *Value) IsObject() bool { return v.kind == KindObject }

// IsArray reports whether the Value holds an ordered sequence.
func (v *Value) IsArray() bool { return v.kind == KindArray }

// AsInteger returns the integer payload. A float payload is truncated
// toward zero. Any other kind reports false.
func (v *Value) AsInteger() (int64, bool) {
	switch v.kind {
	case KindInteger:
		return v.integer, true
	case KindFloat:
		return int64(v.float), true
	}
	return 0, false
}

// AsFloat returns the float payload. An integer payload widens
// losslessly. Any other kind reports false.
func (v *Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.float, true
	case KindInteger:
		return float64(v.integer), true
	}
	return 0, false
}

// AsBoolean returns the boolean payload, or false for any other kind.
func (v *Value) AsBoolean() (bool, bool) {
	if v.kind == KindBoolean {
		return v.boolean, true
	}
	return false, false
}

// AsString returns the string payload. A character payload is wrapped in
// a length-1 string. Any other kind reports false.
func (v *Value) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindCharacter:
		return string(v.char), true
	}
	return "", false
}

// AsCharacter returns the character payload. A string payload succeeds
// only when it contains exactly one Unicode scalar. Any other kind
// reports false.
func (v *Value) AsCharacter() (rune, bool) {
	switch v.kind {
	case KindCharacter:
		return v.char, true
	case KindString:
		if utf8.RuneCountInString(v.str) == 1 {
			r, _ := utf8.DecodeRuneInString(v.str)
			return r, true
		}
	}
	return 0, false
}

// Lookup returns the Value stored under key without mutating the
// receiver. It reports false when the receiver is not an object or the
// key is absent.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	entry, ok := v.object[key]
	return entry, ok
}

// Item returns the element at index without mutating the receiver. It
// reports false when the receiver is not an array or the index is out of
// range.
func (v *Value) Item(index int) (*Value, bool) {
	if v.kind != KindArray || index < 0 || index >= len(v.array) {
		return nil, false
	}
	return v.array[index], true
}

// Entry returns the Value stored under key, inserting a None entry if the
// key is absent. If the receiver is not currently an object its payload
// is discarded and reinitialized as an empty object first. Use Lookup for
// read-only access.
func (v *Value) Entry(key string) *Value {
	if v.kind != KindObject {
		*v = Value{kind: KindObject, object: map[string]*Value{}}
	}
	entry, ok := v.object[key]
	if !ok {
		entry = None()
		v.object[key] = entry
	}
	return entry
}

// Index returns the element at index. If the receiver is not currently an
// array its payload is discarded and reinitialized as an empty array
// first; if index is beyond the current length the array grows with None
// padding up to and including index. A negative index is a programming
// error and panics. Use Item for read-only access.
func (v *Value) Index(index int) *Value {
	if index < 0 {
		panic("config: negative array index " + strconv.Itoa(index))
	}
	if v.kind != KindArray {
		*v = Value{kind: KindArray, array: []*Value{}}
	}
	for len(v.array) <= index {
		v.array = append(v.array, None())
	}
	return v.array[index]
}

// At returns the Value stored under key. It returns ErrNotObject when the
// receiver is not an object and ErrNotFound when the key is absent.
func (v *Value) At(key string) (*Value, error) {
	if v.kind != KindObject {
		return nil, ErrNotObject
	}
	entry, ok := v.object[key]
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

// AtIndex returns the element at index. It returns ErrNotArray when the
// receiver is not an array and ErrNotFound when index is out of range.
func (v *Value) AtIndex(index int) (*Value, error) {
	if v.kind != KindArray {
		return nil, ErrNotArray
	}
	if index < 0 || index >= len(v.array) {
		return nil, ErrNotFound
	}
	return v.array[index], nil
}

// Append appends element to the array payload, reinitializing the
// receiver as an empty array first if it holds any other kind.
func (v *Value) Append(element *Value) {
	if v.kind != KindArray {
		*v = Value{kind: KindArray, array: []*Value{}}
	}
	v.array = append(v.array, element)
}

// Set stores entry under key, reinitializing the receiver as an empty
// object first if it holds any other kind.
func (v *Value) Set(key string, entry *Value) {
	if v.kind != KindObject {
		*v = Value{kind: KindObject, object: map[string]*Value{}}
	}
	v.object[key] = entry
}

// Size returns the element count for arrays, the key count for objects,
// the byte length for strings, and 0 for every other kind.
func (v *Value) Size() int {
	switch v.kind {
	case KindArray:
		return len(v.array)
	case KindObject:
		return len(v.object)
	case KindString:
		return len(v.str)
	}
	return 0
}

// HasKey reports whether the Value is an object containing key.
func (v *Value) HasKey(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.object[key]
	return ok
}

// Keys returns the object's keys in lexicographic order, or nil for
// non-object kinds. This is the iteration order used everywhere the tree
// is rendered, so output is deterministic.
func (v *Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.object))
	for key := range v.object {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the Value. The result shares no containers
// with the receiver.
func (v *Value) Clone() *Value {
	clone := &Value{
		kind:    v.kind,
		integer: v.integer,
		float:   v.float,
		boolean: v.boolean,
		str:     v.str,
		char:    v.char,
	}
	switch v.kind {
	case KindObject:
		clone.object = make(map[string]*Value, len(v.object))
		for key, entry := range v.object {
			clone.object[key] = entry.Clone()
		}
	case KindArray:
		clone.array = make([]*Value, len(v.array))
		for i, element := range v.array {
			clone.array[i] = element.Clone()
		}
	}
	return clone
}

// Equal reports structural equality: same kinds, same scalar payloads,
// same key sets, same array lengths and element order.
func (v *Value) Equal(other *Value) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNone:
		return true
	case KindInteger:
		return v.integer == other.integer
	case KindFloat:
		return v.float == other.float
	case KindBoolean:
		return v.boolean == other.boolean
	case KindString:
		return v.str == other.str
	case KindCharacter:
		return v.char == other.char
	case KindObject:
		if len(v.object) != len(other.object) {
			return false
		}
		for key, entry := range v.object {
			otherEntry, ok := other.object[key]
			if !ok || !entry.Equal(otherEntry) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.array) != len(other.array) {
			return false
		}
		for i, element := range v.array {
			if !element.Equal(other.array[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns a single-line, fully quoted rendering for diagnostics.
// This is not the persisted form; see Writer for that.
func (v *Value) String() string {
	var b strings.Builder
	v.debugRender(&b)
	return b.String()
}

func (v *Value) debugRender(b *strings.Builder) {
	switch v.kind {
	case KindNone:
		b.WriteString("None")
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.integer, 10))
	case KindFloat:
		b.WriteString(strconv.FormatFloat(v.float, 'g', -1, 64))
	case KindBoolean:
		b.WriteString(strconv.FormatBool(v.boolean))
	case KindString:
		b.WriteByte('"')
		b.WriteString(v.str)
		b.WriteByte('"')
	case KindCharacter:
		b.WriteByte('\'')
		b.WriteRune(v.char)
		b.WriteByte('\'')
	case KindObject:
		b.WriteByte('{')
		for i, key := range v.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('"')
			b.WriteString(key)
			b.WriteString("\": ")
			v.object[key].debugRender(b)
		}
		b.WriteByte('}')
	case KindArray:
		b.WriteByte('[')
		for i, element := range v.array {
			if i > 0 {
				b.WriteString(", ")
			}
			element.debugRender(b)
		}
		b.WriteByte(']')
	}
}
