package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindingTags lists the struct tags the binders in this package read.
var bindingTags = []string{"form", "query", "path"}

// valuesType is the type of url.Values.
var valuesType = reflect.TypeOf(map[string][]string(nil))

// bindToStruct binds values to a struct using reflection.
// tagName selects the struct tag ("query", "form"). A field tagged "*" with
// a url.Values-compatible type receives a copy of all values. Fields carrying
// only another binder's tag are left alone.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv, err := structValue(v, bindErr)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		if paramName == "*" {
			if !fieldType.Type.ConvertibleTo(valuesType) {
				return fmt.Errorf("%w: field %s: wildcard needs url.Values", bindErr, fieldType.Name)
			}
			all := make(map[string][]string, len(values))
			for k, vs := range values {
				all[k] = append([]string(nil), vs...)
			}
			field.Set(reflect.ValueOf(all).Convert(fieldType.Type))
			continue
		}

		fieldValues, exists := values[paramName]
		if !exists || len(fieldValues) == 0 {
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

// parseFieldTag returns the parameter name for tagName and whether to skip
// the field. Untagged fields bind by their lowercased name unless another
// binder claims them.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag, ok := field.Tag.Lookup(tagName)
	if !ok || tag == "" {
		for _, other := range bindingTags {
			if other == tagName {
				continue
			}
			if _, claimed := field.Tag.Lookup(other); claimed {
				return "", true
			}
		}
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

// setFieldValue sets the field value from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	// Handle pointer types
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	// Handle slice types
	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	// For non-slice types, use the first value
	if len(values) == 0 {
		return nil
	}
	value := values[0]

	// Handle basic types
	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Be lenient with boolean values
			switch strings.ToLower(value) {
			case "on", "yes", "1":
				b = true
			case "off", "no", "0", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// setSliceValue sets slice field values from string values.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()

	// Support comma-separated values as well
	var allValues []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			allValues = append(allValues, strings.Split(v, ",")...)
		} else {
			allValues = append(allValues, v)
		}
	}

	slice := reflect.MakeSlice(fieldType, len(allValues), len(allValues))

	for i, value := range allValues {
		elem := slice.Index(i)
		if err := setFieldValue(elem, elemType, []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
