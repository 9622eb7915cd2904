// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"strings"
	"testing"

	"github.com/cnt-foundation/cnt/lib/config"
)

func TestFromJSON(t *testing.T) {
	data, err := FromJSON([]byte(`{
		"name": "launcher",
		"count": 42,
		"ratio": 0.5,
		"big": 9223372036854775807,
		"huge": 18446744073709551615,
		"on": true,
		"nothing": null,
		"list": [1, "two"],
		"nested": {"k": "v"}
	}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}

	if s, _ := data["name"].AsString(); s != "launcher" {
		t.Errorf("name = %q", s)
	}
	if !data["count"].IsInteger() {
		t.Errorf("count kind = %v, want integer", data["count"].Kind())
	}
	if !data["ratio"].IsFloat() {
		t.Errorf("ratio kind = %v, want float", data["ratio"].Kind())
	}
	if n, _ := data["big"].AsInteger(); n != 9223372036854775807 {
		t.Errorf("big = %d", n)
	}
	// Beyond int64 falls back to float.
	if !data["huge"].IsFloat() {
		t.Errorf("huge kind = %v, want float", data["huge"].Kind())
	}
	if !data["nothing"].IsNone() {
		t.Errorf("null kind = %v, want none", data["nothing"].Kind())
	}
	if data["list"].Size() != 2 {
		t.Errorf("list size = %d", data["list"].Size())
	}
	inner, _ := data["nested"].Lookup("k")
	if s, _ := inner.AsString(); s != "v" {
		t.Errorf("nested.k = %q", s)
	}
}

func TestFromJSONAcceptsJSONC(t *testing.T) {
	data, err := FromJSON([]byte(`{
		// trailing commas and comments are fine
		"a": 1,
	}`))
	if err != nil {
		t.Fatalf("JSONC rejected: %v", err)
	}
	if n, _ := data["a"].AsInteger(); n != 1 {
		t.Errorf("a = %d", n)
	}
}

func TestFromJSONRejectsNonObject(t *testing.T) {
	if _, err := FromJSON([]byte(`[1, 2]`)); err == nil {
		t.Error("top-level array accepted")
	}
	if _, err := FromJSON([]byte(`not json`)); err == nil {
		t.Error("garbage accepted")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := map[string]*config.Value{
		"int":   config.Int(-3),
		"float": config.Float(2.5),
		"str":   config.Str("x\ny"),
		"bool":  config.Bool(true),
		"arr":   config.NewArray(),
		"obj":   config.NewObject(),
	}
	original["arr"].Append(config.Int(1))
	original["obj"].Set("inner", config.Str("v"))

	encoded, err := ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	decoded, err := FromJSON(encoded)
	if err != nil {
		t.Fatalf("FromJSON of own output failed: %v", err)
	}

	for key, want := range original {
		if !decoded[key].Equal(want) {
			t.Errorf("%s: got %v, want %v", key, decoded[key], want)
		}
	}
}

func TestJSONLossyKinds(t *testing.T) {
	original := map[string]*config.Value{
		"ch":   config.Char('q'),
		"none": config.None(),
	}
	encoded, err := ToJSON(original)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := FromJSON(encoded)
	if err != nil {
		t.Fatal(err)
	}

	// Character degrades to a length-1 string, None to null and back.
	if !decoded["ch"].IsString() {
		t.Errorf("ch kind = %v, want string", decoded["ch"].Kind())
	}
	if s, _ := decoded["ch"].AsString(); s != "q" {
		t.Errorf("ch = %q", s)
	}
	if !decoded["none"].IsNone() {
		t.Errorf("none kind = %v", decoded["none"].Kind())
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	original := map[string]*config.Value{
		"name":  config.Str("inst"),
		"count": config.Int(7),
		"vals":  config.NewArray(),
	}
	original["vals"].Append(config.Float(1.5))
	original["vals"].Append(config.Bool(false))

	encoded, err := ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	decoded, err := FromYAML(encoded)
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}

	for key, want := range original {
		if !decoded[key].Equal(want) {
			t.Errorf("%s: got %v, want %v", key, decoded[key], want)
		}
	}
}

func TestFromYAML(t *testing.T) {
	data, err := FromYAML([]byte("name: launcher\nworkers: 4\nnested:\n  deep: true\n"))
	if err != nil {
		t.Fatalf("FromYAML failed: %v", err)
	}
	if s, _ := data["name"].AsString(); s != "launcher" {
		t.Errorf("name = %q", s)
	}
	deep, _ := data["nested"].Lookup("deep")
	if b, _ := deep.AsBoolean(); !b {
		t.Error("nested.deep not true")
	}
}

func TestToJSONDeterministicKeyOrder(t *testing.T) {
	data := map[string]*config.Value{
		"b": config.Int(2),
		"a": config.Int(1),
	}
	encoded, err := ToJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Index(string(encoded), `"a"`) > strings.Index(string(encoded), `"b"`) {
		t.Errorf("keys not sorted:\n%s", encoded)
	}
}
