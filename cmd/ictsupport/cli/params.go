// Copyright 2026 The MSP ICT Support Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// FlagBinder lets a field type register its own flags instead of going
// through struct-tag reflection.
type FlagBinder interface {
	AddFlags(flagSet *pflag.FlagSet)
}

// FlagsFromParams builds the flag set for a command's parameter struct.
// Commands declare flags as tagged struct fields:
//
//	type createParams struct {
//	    Building string `flag:"building" desc:"building ID"`
//	    Floor    int    `flag:"floor" desc:"floor number" default:"1"`
//	}
//
// Invalid params are a programming error, so this panics rather than
// returning an error every Command author would have to thread through.
func FlagsFromParams(name string, params any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	if err := BindFlags(params, flagSet); err != nil {
		panic(fmt.Sprintf("cli.FlagsFromParams(%q): %v", name, err))
	}
	return flagSet
}

// BindFlags registers a pflag entry for every tagged field of the
// struct params points to.
//
// Recognized tags: `flag:"name"` or `flag:"name,n"` (long name plus
// optional one-letter shorthand), `desc:"help text"`, and
// `default:"value"` parsed per the field's Go type. Fields without a
// flag tag are ignored. Supported types: string, bool, int, int64,
// float64, time.Duration, []string.
//
// Struct-typed fields implementing FlagBinder register themselves via
// AddFlags; embedded structs without it are walked recursively.
func BindFlags(params any, flagSet *pflag.FlagSet) error {
	value := reflect.ValueOf(params)
	if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("params must be a pointer to a struct, got %T", params)
	}
	return bindStruct(value.Elem(), flagSet)
}

func bindStruct(structValue reflect.Value, flagSet *pflag.FlagSet) error {
	structType := structValue.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if field.Type.Kind() == reflect.Struct && field.IsExported() && fieldValue.CanAddr() {
			if binder, ok := fieldValue.Addr().Interface().(FlagBinder); ok {
				binder.AddFlags(flagSet)
				continue
			}
		}
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := bindStruct(fieldValue, flagSet); err != nil {
				return fmt.Errorf("embedded %s: %w", field.Name, err)
			}
			continue
		}

		tag := field.Tag.Get("flag")
		if tag == "" {
			continue
		}
		name, shorthand, _ := strings.Cut(tag, ",")

		if !fieldValue.CanAddr() {
			return fmt.Errorf("field %s: not addressable", field.Name)
		}
		err := bindField(fieldValue.Addr().Interface(), flagSet, name, shorthand,
			field.Tag.Get("desc"), field.Tag.Get("default"))
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

// bindField registers one flag. The default tag is parsed per target
// type; an unparseable default is reported against the flag it belongs
// to so the author can find it.
func bindField(pointer any, flagSet *pflag.FlagSet, name, shorthand, description, fallback string) error {
	badDefault := func(err error) error {
		return fmt.Errorf("default for --%s: %w", name, err)
	}

	switch target := pointer.(type) {
	case *string:
		flagSet.StringVarP(target, name, shorthand, fallback, description)

	case *bool:
		value := false
		if fallback != "" {
			parsed, err := strconv.ParseBool(fallback)
			if err != nil {
				return badDefault(err)
			}
			value = parsed
		}
		flagSet.BoolVarP(target, name, shorthand, value, description)

	case *int:
		value := 0
		if fallback != "" {
			parsed, err := strconv.Atoi(fallback)
			if err != nil {
				return badDefault(err)
			}
			value = parsed
		}
		flagSet.IntVarP(target, name, shorthand, value, description)

	case *int64:
		var value int64
		if fallback != "" {
			parsed, err := strconv.ParseInt(fallback, 10, 64)
			if err != nil {
				return badDefault(err)
			}
			value = parsed
		}
		flagSet.Int64VarP(target, name, shorthand, value, description)

	case *float64:
		var value float64
		if fallback != "" {
			parsed, err := strconv.ParseFloat(fallback, 64)
			if err != nil {
				return badDefault(err)
			}
			value = parsed
		}
		flagSet.Float64VarP(target, name, shorthand, value, description)

	case *time.Duration:
		var value time.Duration
		if fallback != "" {
			parsed, err := time.ParseDuration(fallback)
			if err != nil {
				return badDefault(err)
			}
			value = parsed
		}
		flagSet.DurationVarP(target, name, shorthand, value, description)

	case *[]string:
		var value []string
		if fallback != "" {
			value = strings.Split(fallback, ",")
		}
		flagSet.StringSliceVarP(target, name, shorthand, value, description)

	default:
		return fmt.Errorf("unsupported type %s for flag --%s", reflect.TypeOf(pointer).Elem(), name)
	}

	return nil
}
