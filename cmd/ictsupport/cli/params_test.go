// Copyright 2026 The MSP ICT Support Authors
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
		Building string        `flag:"building" desc:"building id"`
		Verbose  bool          `flag:"verbose,v" desc:"enable verbose output"`
		Floor    int           `flag:"floor" desc:"floor number"`
		Timeout  time.Duration `flag:"timeout" desc:"request timeout"`
		Tags     []string      `flag:"tags" desc:"tag list"`
		Untagged string        // no flag tag, should be skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--building", "library",
		"-v",
		"--floor", "3",
		"--timeout", "15s",
		"--tags", "printer,urgent",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Building != "library" {
		t.Errorf("Building = %q, want %q", p.Building, "library")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Floor != 3 {
		t.Errorf("Floor = %d, want 3", p.Floor)
	}
	if p.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", p.Timeout)
	}
	if len(p.Tags) != 2 || p.Tags[0] != "printer" || p.Tags[1] != "urgent" {
		t.Errorf("Tags = %v, want [printer urgent]", p.Tags)
	}
	if p.Untagged != "" {
		t.Errorf("Untagged = %q, want empty (should be skipped)", p.Untagged)
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Priority string `flag:"priority" desc:"ticket priority" default:"medium"`
		Floor    int    `flag:"floor" desc:"floor number" default:"1"`
		Yes      bool   `flag:"yes" desc:"skip confirmation" default:"false"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Priority != "medium" {
		t.Errorf("Priority = %q, want %q", p.Priority, "medium")
	}
	if p.Floor != 1 {
		t.Errorf("Floor = %d, want 1", p.Floor)
	}
	if p.Yes {
		t.Error("Yes = true, want false")
	}
}

func TestBindFlags_DefaultsOverriddenByCLI(t *testing.T) {
	type params struct {
		Priority string `flag:"priority" desc:"ticket priority" default:"medium"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--priority", "urgent"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Priority != "urgent" {
		t.Errorf("Priority = %q, want %q", p.Priority, "urgent")
	}
}

func TestBindFlags_BadDefault(t *testing.T) {
	type params struct {
		Floor int `flag:"floor" desc:"floor number" default:"ground"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	err := BindFlags(&p, flagSet)
	if err == nil {
		t.Fatal("BindFlags should reject an unparseable int default")
	}
	if !strings.Contains(err.Error(), "--floor") {
		t.Errorf("error %q should name the offending flag", err)
	}
}

func TestBindFlags_RejectsNonStructPointer(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	if err := BindFlags("not a struct", flagSet); err == nil {
		t.Error("BindFlags should reject a non-pointer")
	}
	value := 7
	if err := BindFlags(&value, flagSet); err == nil {
		t.Error("BindFlags should reject a pointer to non-struct")
	}
}

func TestBindFlags_UnsupportedFieldType(t *testing.T) {
	type params struct {
		Weights map[string]int `flag:"weights" desc:"unsupported"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Fatal("BindFlags should reject a map field")
	}
}

func TestBindFlags_EmbeddedStruct(t *testing.T) {
	type common struct {
		LogFile string `flag:"log-file" desc:"debug log path"`
	}
	type params struct {
		common
		Floor int `flag:"floor" desc:"floor number"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse([]string{"--log-file", "/tmp/debug.log", "--floor", "2"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.LogFile != "/tmp/debug.log" {
		t.Errorf("LogFile = %q, want %q", p.LogFile, "/tmp/debug.log")
	}
	if p.Floor != 2 {
		t.Errorf("Floor = %d, want 2", p.Floor)
	}
}

type binderParams struct {
	added *bool
}

func (b *binderParams) AddFlags(flagSet *pflag.FlagSet) {
	*b.added = true
}

func TestBindFlags_FlagBinder(t *testing.T) {
	added := false
	type params struct {
		Custom binderParams
	}
	p := params{Custom: binderParams{added: &added}}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if !added {
		t.Error("FlagBinder.AddFlags was not called for a struct field")
	}
}
