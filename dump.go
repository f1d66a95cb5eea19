package diag

import (
	"reflect"

	"github.com/Station-Manager/diag/format"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// maxDumpElements caps the elements printed per slice or array.
const maxDumpElements = 10

// Dump prints the structure of v as debug lines: exported struct fields, map
// entries and up to ten slice elements, one line per leaf. Like Debug it is a
// no-op in release and size-constrained builds.
func (s *Service) Dump(v any) {
	if !s.debugEnabled() || s.load() == nil {
		return
	}

	if v == nil {
		s.Debug("Dump: {}", format.NullPointer)
		return
	}

	// Use a map to track visited pointers to prevent infinite recursion
	visited := make(map[uintptr]bool)
	s.dumpValue(reflect.ValueOf(v), "", visited, 0)
}

// Dump prints the structure of v on the default Service.
func Dump(v any) {
	std.Load().Dump(v)
}

func (s *Service) dumpValue(val reflect.Value, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		s.Debug("{}: <max depth reached>", prefix)
		return
	}

	// Unwrap interfaces and pointers, with cycle detection.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Pointer {
		if val.IsNil() {
			s.Debug("{}: {}", prefix, format.NullPointer)
			return
		}
		if val.Kind() == reflect.Pointer {
			ptr := val.Pointer()
			if visited[ptr] {
				s.Debug("{}: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	if !val.IsValid() {
		s.Debug("{}: {}", prefix, format.NullPointer)
		return
	}
	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if _, ok := asStringer(val); ok {
			s.dumpLeaf(val, prefix)
			return
		}
		if prefix == emptyString {
			s.Debug("Struct: {}", typ.Name())
		} else {
			s.Debug("{}: {} {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			s.dumpValue(val.Field(i), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			s.Debug("{}: }", prefix)
		}

	case reflect.Map:
		s.Debug("{}: map[{}]{} (len: {}) {", prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			keyStr := format.MustStringify(interfaceOf(iter.Key()))
			s.dumpValue(iter.Value(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		s.Debug("{}: }", prefix)

	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 && val.Kind() == reflect.Slice {
			s.Debug("{}: {}", prefix, format.Escape(val.Bytes()))
			return
		}
		s.Debug("{}: {} (len: {}, cap: {}) {", prefix, typ.String(), val.Len(), val.Cap())

		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			s.dumpValue(val.Index(i), prefix+"["+format.MustStringify(i)+"]", visited, depth+1)
		}

		if val.Len() > maxDumpElements {
			s.Debug("{}: ... ({} more elements)", prefix, val.Len()-maxDumpElements)
		}

		s.Debug("{}: }", prefix)

	default:
		s.dumpLeaf(val, prefix)
	}
}

func (s *Service) dumpLeaf(val reflect.Value, prefix string) {
	text, err := format.Stringify(interfaceOf(val))
	if err != nil {
		text = "<" + val.Type().String() + ">"
	}
	if prefix == emptyString {
		s.Debug("{}", text)
		return
	}
	s.Debug("{}: {}", prefix, text)
}

func asStringer(val reflect.Value) (format.Stringer, bool) {
	if !val.CanInterface() {
		return nil, false
	}
	st, ok := val.Interface().(format.Stringer)
	return st, ok
}

// interfaceOf returns val as an interface, or nil for unexported values.
func interfaceOf(val reflect.Value) any {
	if !val.IsValid() || !val.CanInterface() {
		return nil
	}
	return val.Interface()
}
