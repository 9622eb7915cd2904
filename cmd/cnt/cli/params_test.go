// Copyright 2026 The CNT Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Name    string        `flag:"name" desc:"a string"`
		Deep    bool          `flag:"deep" desc:"a bool"`
		Limit   int           `flag:"limit" desc:"an int" default:"3"`
		Size    int64         `flag:"size" desc:"an int64"`
		Ratio   float64       `flag:"ratio" desc:"a float" default:"0.5"`
		Wait    time.Duration `flag:"wait" desc:"a duration" default:"2s"`
		Include []string      `flag:"include" desc:"a slice"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--name", "alpha",
		"--deep",
		"--size", "1024",
		"--include", "a,b",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Name != "alpha" {
		t.Errorf("Name = %q", p.Name)
	}
	if !p.Deep {
		t.Error("Deep = false")
	}
	if p.Limit != 3 {
		t.Errorf("Limit = %d, want default 3", p.Limit)
	}
	if p.Size != 1024 {
		t.Errorf("Size = %d", p.Size)
	}
	if p.Ratio != 0.5 {
		t.Errorf("Ratio = %v, want default 0.5", p.Ratio)
	}
	if p.Wait != 2*time.Second {
		t.Errorf("Wait = %v, want default 2s", p.Wait)
	}
	if len(p.Include) != 2 || p.Include[0] != "a" || p.Include[1] != "b" {
		t.Errorf("Include = %v", p.Include)
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		Output string `flag:"output,o" desc:"output path"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"-o", "out.cnt"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Output != "out.cnt" {
		t.Errorf("Output = %q", p.Output)
	}
}

func TestBindFlags_SkipsUntaggedFields(t *testing.T) {
	type params struct {
		Tagged   string `flag:"tagged"`
		Untagged string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if flagSet.Lookup("tagged") == nil {
		t.Error("tagged flag not registered")
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field registered as a flag")
	}
}

func TestBindFlags_EmbeddedJSONOutput(t *testing.T) {
	type params struct {
		JSONOutput
		Deep bool `flag:"deep" desc:"recursive search"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--json", "--deep"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !p.OutputJSON {
		t.Error("OutputJSON = false after --json")
	}
	if !p.Deep {
		t.Error("Deep = false after --deep")
	}
}

type binderParams struct {
	bound bool
}

func (b *binderParams) AddFlags(flagSet *pflag.FlagSet) {
	b.bound = true
	flagSet.Bool("custom", false, "bound by AddFlags")
}

func TestBindFlags_FlagBinder(t *testing.T) {
	type params struct {
		Custom binderParams
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if !p.Custom.bound {
		t.Error("AddFlags not called on FlagBinder field")
	}
	if flagSet.Lookup("custom") == nil {
		t.Error("custom flag not registered")
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	type params struct{}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(params{}, flagSet); err == nil {
		t.Error("BindFlags accepted a non-pointer")
	}
}

func TestBindFlags_RejectsUnsupportedType(t *testing.T) {
	type params struct {
		Bad map[string]string `flag:"bad"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags accepted a map field")
	}
	if !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("error = %q, want unsupported type", err)
	}
}

func TestBindFlags_RejectsBadDefault(t *testing.T) {
	type params struct {
		Limit int `flag:"limit" default:"not-a-number"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Error("BindFlags accepted an unparseable default")
	}
}

func TestFlagsFromParams_PanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic on invalid params")
		}
	}()
	FlagsFromParams("test", 42)
}
