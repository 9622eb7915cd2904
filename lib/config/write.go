// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strconv"
	"strings"
)

// DefaultArrayInlineLimit is the largest array rendered on a single line
// when the caller did not ask for inline output. This is a formatting
// heuristic, not a correctness rule.
const DefaultArrayInlineLimit = 3

// indentUnit is one level of indentation in multi-line output.
const indentUnit = "    "

// Writer renders Values in the persisted text format. The zero value is
// not usable; construct with NewWriter.
type Writer struct {
	// ArrayInlineLimit is the maximum element count for which a
	// non-empty array is rendered on one line regardless of the
	// surrounding layout.
	ArrayInlineLimit int
}

// NewWriter returns a Writer with the default formatting policy.
func NewWriter() *Writer {
	return &Writer{ArrayInlineLimit: DefaultArrayInlineLimit}
}

// Render returns the multi-line rendering of v at indentation depth 0.
// The result parses back to a structurally equal Value.
func (w *Writer) Render(v *Value) string {
	var b strings.Builder
	w.writeValue(&b, v, 0, false)
	return b.String()
}

// RenderInline returns the single-line rendering of v.
func (w *Writer) RenderInline(v *Value) string {
	var b strings.Builder
	w.writeValue(&b, v, 0, true)
	return b.String()
}

func (w *Writer) writeValue(b *strings.Builder, v *Value, indent int, inline bool) {
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
		writeQuotedString(b, v.str)
	case KindCharacter:
		writeQuotedCharacter(b, v.char)
	case KindObject:
		w.writeObject(b, v, indent, inline)
	case KindArray:
		w.writeArray(b, v, indent, inline)
	}
}

func (w *Writer) writeObject(b *strings.Builder, v *Value, indent int, inline bool) {
	keys := v.Keys()
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}

	if inline {
		b.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('"')
			b.WriteString(key)
			b.WriteString("\": ")
			w.writeValue(b, v.object[key], 0, true)
		}
		b.WriteByte('}')
		return
	}

	outer := strings.Repeat(indentUnit, indent)
	b.WriteString("{\n")
	for i, key := range keys {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(outer)
		b.WriteString(indentUnit)
		b.WriteByte('"')
		b.WriteString(key)
		b.WriteString("\": ")
		w.writeValue(b, v.object[key], indent+1, false)
	}
	b.WriteByte('\n')
	b.WriteString(outer)
	b.WriteByte('}')
}

func (w *Writer) writeArray(b *strings.Builder, v *Value, indent int, inline bool) {
	if len(v.array) == 0 {
		b.WriteString("[]")
		return
	}

	if inline || len(v.array) <= w.ArrayInlineLimit {
		b.WriteByte('[')
		for i, element := range v.array {
			if i > 0 {
				b.WriteString(", ")
			}
			w.writeValue(b, element, 0, true)
		}
		b.WriteByte(']')
		return
	}

	outer := strings.Repeat(indentUnit, indent)
	b.WriteString("[\n")
	for i, element := range v.array {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(outer)
		b.WriteString(indentUnit)
		w.writeValue(b, element, indent+1, false)
	}
	b.WriteByte('\n')
	b.WriteString(outer)
	b.WriteByte(']')
}

func writeQuotedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
}

func writeQuotedCharacter(b *strings.Builder, ch rune) {
	b.WriteByte('\'')
	switch ch {
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\r':
		b.WriteString(`\r`)
	case '\\':
		b.WriteString(`\\`)
	case '\'':
		b.WriteString(`\'`)
	default:
		b.WriteRune(ch)
	}
	b.WriteByte('\'')
}
