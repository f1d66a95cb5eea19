package format

import (
	"fmt"
	"reflect"
	"strconv"
)

// Stringer is the explicit text capability accepted for types outside the
// built-in set. It matches fmt.Stringer.
type Stringer interface {
	String() string
}

// Stringify returns the text form of v.
//
// Nil pointers and nil interfaces render as NullPointer whatever they point
// to. Strings, byte slices, booleans, integers, floats and complex numbers use
// their strconv form, Stringer and error values their method, and named types
// fall back to their underlying kind. A non-nil pointer renders as its
// pointee. Anything else yields an *UnsupportedTypeError.
func Stringify(v any) (string, error) {
	if v == nil {
		return NullPointer, nil
	}

	switch x := v.(type) {
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case uintptr:
		return strconv.FormatUint(uint64(x), 10), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case complex64:
		return strconv.FormatComplex(complex128(x), 'g', -1, 64), nil
	case complex128:
		return strconv.FormatComplex(x, 'g', -1, 128), nil
	}

	return stringifyValue(reflect.ValueOf(v), 0)
}

// MustStringify is Stringify with failures rendered as InvalidFormat.
func MustStringify(v any) string {
	s, err := Stringify(v)
	if err != nil {
		return InvalidFormat
	}
	return s
}

func stringifyValue(rv reflect.Value, depth int) (string, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Interface:
		if rv.IsNil() {
			return NullPointer, nil
		}
	default:
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Stringer:
			return callText(x.String)
		case error:
			return callText(x.Error)
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.Complex64:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 64), nil
	case reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), nil
		}
	case reflect.UnsafePointer:
		return EscapeMarker + strconv.FormatUint(uint64(rv.Pointer()), 16), nil
	case reflect.Pointer, reflect.Interface:
		if depth < maxPointerDepth {
			return stringifyValue(rv.Elem(), depth+1)
		}
	default:
	}

	return "", &UnsupportedTypeError{Type: rv.Type(), Index: -1}
}

// callText invokes a String or Error method, turning a panic into an error.
func callText(fn func() string) (s string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = "", fmt.Errorf("%w: %v", ErrStringerPanic, r)
		}
	}()
	return fn(), nil
}
