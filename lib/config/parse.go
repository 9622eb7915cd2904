// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// maxNestingDepth bounds object/array recursion. The format has no
// legitimate use for trees this deep; the limit exists so adversarial
// input cannot grow the stack without bound.
const maxNestingDepth = 128

// Parse reads an entire document and returns its top-level key to Value
// mapping.
//
// The parser is deliberately lenient: unterminated strings, characters,
// arrays, and objects yield truncated results rather than errors, and
// unrecognized fragments are skipped. The two fatal conditions are a
// numeric token that fails integer/float conversion and input nested
// deeper than maxNestingDepth.
func Parse(src []byte) (map[string]*Value, error) {
	p := &parser{src: src}
	data := map[string]*Value{}

	for p.pos < len(p.src) {
		start := p.pos
		p.skipSpaceAndComments()
		if p.pos >= len(p.src) {
			break
		}

		key := p.parseKey()

		p.skipSpaceAndComments()
		if p.pos < len(p.src) && p.src[p.pos] == ':' {
			p.pos++
		}

		value, err := p.parseValue(0)
		if err != nil {
			return nil, err
		}
		if key != "" {
			data[key] = value
		}

		p.skipSpaceAndComments()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
		}

		// An unrecognized byte consumes nothing above. Skip it rather
		// than spinning on the same position forever.
		if p.pos == start {
			p.pos++
		}
	}

	return data, nil
}

// ParseValue reads a single value from src, ignoring any trailing input.
// This is the entry point used when a value arrives on its own (CLI
// arguments, embedded fragments) rather than as part of a document.
func ParseValue(src []byte) (*Value, error) {
	p := &parser{src: src}
	return p.parseValue(0)
}

type parser struct {
	src []byte
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

// skipSpaceAndComments advances past whitespace and any run of // line
// comments or /* block comments */. Block comments do not nest.
func (p *parser) skipSpaceAndComments() {
	for {
		p.skipSpace()
		if p.pos+1 >= len(p.src) || p.src[p.pos] != '/' {
			return
		}
		switch p.src[p.pos+1] {
		case '/':
			for p.pos < len(p.src) && p.src[p.pos] != '\n' {
				p.pos++
			}
		case '*':
			p.pos += 2
			for p.pos+1 < len(p.src) && !(p.src[p.pos] == '*' && p.src[p.pos+1] == '/') {
				p.pos++
			}
			if p.pos+1 < len(p.src) {
				p.pos += 2
			} else {
				p.pos = len(p.src)
			}
		default:
			return
		}
	}
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-'
}

// parseKey reads a quoted string or a bare identifier. A byte that can
// start neither yields an empty key and consumes nothing.
func (p *parser) parseKey() string {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return ""
	}

	if p.src[p.pos] == '"' {
		p.pos++
		start := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != '"' {
			p.pos++
		}
		key := string(p.src[start:p.pos])
		if p.pos < len(p.src) {
			p.pos++ // closing quote
		}
		return key
	}

	start := p.pos
	for p.pos < len(p.src) && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) hasPrefix(literal string) bool {
	return p.pos+len(literal) <= len(p.src) && string(p.src[p.pos:p.pos+len(literal)]) == literal
}

func (p *parser) parseValue(depth int) (*Value, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("config: nesting exceeds %d levels", maxNestingDepth)
	}

	p.skipSpace()
	if p.pos >= len(p.src) {
		return None(), nil
	}

	switch {
	case p.hasPrefix("None"):
		p.pos += 4
		return None(), nil
	case p.hasPrefix("true"):
		p.pos += 4
		return Bool(true), nil
	case p.hasPrefix("false"):
		p.pos += 5
		return Bool(false), nil
	}

	switch c := p.src[p.pos]; {
	case c == '"':
		return p.parseString(), nil
	case c == '\'':
		return p.parseCharacter(), nil
	case c == '[':
		return p.parseArray(depth)
	case c == '{':
		return p.parseObject(depth)
	case c >= '0' && c <= '9' || c == '-' || c == '+':
		return p.parseNumber()
	}

	// Nothing matched; the value defaults to None without consuming.
	return None(), nil
}

// parseString reads a double-quoted string. Recognized escapes are
// \n \t \r \\ \"; any other escaped byte passes through literally. An
// unterminated string consumes to end of input.
func (p *parser) parseString() *Value {
	p.pos++ // opening quote
	var out []byte
	for p.pos < len(p.src) && p.src[p.pos] != '"' {
		c := p.src[p.pos]
		if c == '\\' && p.pos+1 < len(p.src) {
			p.pos++
			out = append(out, unescape(p.src[p.pos]))
		} else {
			out = append(out, c)
		}
		p.pos++
	}
	if p.pos < len(p.src) {
		p.pos++ // closing quote
	}
	return Str(string(out))
}

// parseCharacter reads a single-quoted character with the string escape
// set plus \'. An unterminated literal consumes one character or ends at
// end of input.
func (p *parser) parseCharacter() *Value {
	p.pos++ // opening quote
	var ch rune
	if p.pos < len(p.src) {
		if p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
			p.pos++
			ch = rune(unescape(p.src[p.pos]))
			p.pos++
		} else {
			r, size := utf8.DecodeRune(p.src[p.pos:])
			ch = r
			p.pos += size
		}
	}
	if p.pos < len(p.src) && p.src[p.pos] == '\'' {
		p.pos++
	}
	return Char(ch)
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		// \\ \" \' and anything else pass through as themselves.
		return c
	}
}

// parseArray reads elements until the closing bracket or end of input.
// Commas between elements are optional; a missing closing bracket yields
// the elements accumulated so far.
func (p *parser) parseArray(depth int) (*Value, error) {
	p.pos++ // opening bracket
	array := NewArray()

	p.skipSpaceAndComments()
	for p.pos < len(p.src) && p.src[p.pos] != ']' {
		element, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		array.Append(element)

		p.skipSpaceAndComments()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			p.skipSpaceAndComments()
		}
	}
	if p.pos < len(p.src) {
		p.pos++ // closing bracket
	}
	return array, nil
}

// parseObject reads key/value pairs until the closing brace or end of
// input, with the same comma and termination leniency as parseArray.
// A pair with an empty key is dropped.
func (p *parser) parseObject(depth int) (*Value, error) {
	p.pos++ // opening brace
	object := NewObject()

	p.skipSpaceAndComments()
	for p.pos < len(p.src) && p.src[p.pos] != '}' {
		start := p.pos
		key := p.parseKey()

		p.skipSpaceAndComments()
		if p.pos < len(p.src) && p.src[p.pos] == ':' {
			p.pos++
		}

		value, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		if key != "" {
			object.Set(key, value)
		}

		p.skipSpaceAndComments()
		if p.pos < len(p.src) && p.src[p.pos] == ',' {
			p.pos++
			p.skipSpaceAndComments()
		}
		if p.pos == start {
			p.pos++
		}
	}
	if p.pos < len(p.src) {
		p.pos++ // closing brace
	}
	return object, nil
}

// parseNumber accumulates a numeric token (sign, digits, decimal point,
// exponent) and converts it. A decimal point or exponent marker selects
// the float path; otherwise the token must be a valid signed integer.
// Conversion failure is the one syntax error the parser treats as fatal.
func (p *parser) parseNumber() (*Value, error) {
	start := p.pos
	isFloat := false

	if p.src[p.pos] == '-' || p.src[p.pos] == '+' {
		p.pos++
	}
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			isFloat = true
		case c == 'e' || c == 'E':
			isFloat = true
		case c == '+' || c == '-':
			// Sign inside the token is only valid directly after an
			// exponent marker, but the tokenizer is permissive here and
			// lets the conversion decide.
		default:
			goto done
		}
		p.pos++
	}
done:
	token := string(p.src[start:p.pos])

	if isFloat {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid number %q", token)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("config: invalid number %q", token)
	}
	return Int(n), nil
}
