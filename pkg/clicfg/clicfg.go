// Package clicfg copies parsed cli flag values into a config struct using `flag:"name"` tags.
package clicfg

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
)

var (
	ErrCannotParseFlags = errors.New("cannot parse flags")
)

// Source is the subset of *cli.Command used to read flag values.
type Source interface {
	Value(name string) any
}

// ParseFlags fills the tagged fields of s, which must be a pointer to a struct.
func ParseFlags(c Source, s any) error {
	v := reflect.ValueOf(s)
	if v.Kind() != reflect.Ptr {
		return fmt.Errorf("%w: expected pointer to struct, got %T", ErrCannotParseFlags, s)
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("%w: expected pointer to struct, got pointer to %s", ErrCannotParseFlags, v.Kind())
	}

	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !fieldValue.CanSet() {
			continue
		}

		flagName := field.Tag.Get("flag")
		if flagName == "" {
			continue
		}

		raw := c.Value(flagName)
		if raw == nil {
			continue
		}

		if err := setValue(fieldValue, reflect.ValueOf(raw)); err != nil {
			return fmt.Errorf("%w: failed to set field %s: %w", ErrCannotParseFlags, field.Name, err)
		}
	}

	return nil
}

func setValue(fieldValue, raw reflect.Value) error {
	if raw.Kind() == reflect.String && fieldValue.Kind() != reflect.String {
		return setValueFromString(fieldValue, raw.String())
	}
	// reflect converts integers to strings as runes.
	if fieldValue.Kind() == reflect.String && raw.Kind() != reflect.String ||
		!raw.Type().ConvertibleTo(fieldValue.Type()) {
		return fmt.Errorf("%w: cannot convert %s to %s", ErrCannotParseFlags, raw.Type(), fieldValue.Type())
	}
	fieldValue.Set(raw.Convert(fieldValue.Type()))
	return nil
}

// setValueFromString attempts to convert a string value to the target type
func setValueFromString(fieldValue reflect.Value, strVal string) error {
	switch fieldValue.Kind() {
	case reflect.Bool:
		boolVal, err := strconv.ParseBool(strVal)
		if err != nil {
			return err
		}
		fieldValue.SetBool(boolVal)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intVal, err := strconv.ParseInt(strVal, 10, fieldValue.Type().Bits())
		if err != nil {
			return err
		}
		fieldValue.SetInt(intVal)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintVal, err := strconv.ParseUint(strVal, 10, fieldValue.Type().Bits())
		if err != nil {
			return err
		}
		fieldValue.SetUint(uintVal)
	case reflect.Float32, reflect.Float64:
		floatVal, err := strconv.ParseFloat(strVal, fieldValue.Type().Bits())
		if err != nil {
			return err
		}
		fieldValue.SetFloat(floatVal)
	default:
		return fmt.Errorf("%w: unsupported type: %s", ErrCannotParseFlags, fieldValue.Kind())
	}
	return nil
}
