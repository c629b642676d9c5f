// Package shape implements the conventions shared by every generated shape:
// null-safe field-wise equality, 31-prime hashing, field rendering and the
// collection helpers used by Add/Put/Clear methods.
//
// Only exported fields take part, in declaration order. Fields tagged with
// json:"-" carry request metadata and are ignored.
package shape

import (
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
)

// epochMillis is implemented by timestamp values that compare and hash at
// millisecond precision
type epochMillis interface {
	EpochMillis() int64
}

var epochMillisType = reflect.TypeOf((*epochMillis)(nil)).Elem()

const prime int32 = 31

// Equal reports whether a and b are of the same type and all their fields are
// pairwise equal. An unset field is only equal to another unset field, so a nil
// slice never equals an empty one.
func Equal(a, b any) bool {
	return equalValue(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValue(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if a.Type() != b.Type() {
		return false
	}

	if ma, ok := millis(a); ok {
		mb, _ := millis(b)
		return ma == mb
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem())
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		iter := a.MapRange()
		for iter.Next() {
			other := b.MapIndex(iter.Key())
			if !other.IsValid() || !equalValue(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for _, idx := range fields(a.Type()) {
			if !equalValue(a.Field(idx), b.Field(idx)) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() == b.Uint()
	case reflect.Float32:
		return math.Float32bits(float32(a.Float())) == math.Float32bits(float32(b.Float()))
	case reflect.Float64:
		return math.Float64bits(a.Float()) == math.Float64bits(b.Float())
	}

	return false
}

// Hash combines the hashes of all fields as hash = 31*hash + fieldHash,
// starting from 1. Unset fields contribute 0. Scalars hash the way their
// boxed Java counterparts do so that hash codes are stable across ports.
func Hash(v any) int32 {
	return hashValue(reflect.ValueOf(v))
}

func hashValue(v reflect.Value) int32 {
	if !v.IsValid() {
		return 0
	}

	if m, ok := millis(v); ok {
		return hashInt64(m)
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Struct:
		h := int32(1)
		for _, idx := range fields(v.Type()) {
			h = prime*h + hashValue(v.Field(idx))
		}
		return h
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		h := int32(1)
		for i := 0; i < v.Len(); i++ {
			h = prime*h + hashValue(v.Index(i))
		}
		return h
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		var h int32
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key()) ^ hashValue(iter.Value())
		}
		return h
	case reflect.String:
		return hashString(v.String())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return int32(v.Int())
	case reflect.Int, reflect.Int64:
		return hashInt64(v.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int32(v.Uint())
	case reflect.Uint, reflect.Uint64:
		return hashInt64(int64(v.Uint()))
	case reflect.Float32:
		return int32(math.Float32bits(float32(v.Float())))
	case reflect.Float64:
		return hashInt64(int64(math.Float64bits(v.Float())))
	}

	return 0
}

func hashString(s string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = prime*h + int32(unit)
	}
	return h
}

func hashInt64(x int64) int32 {
	return int32(x ^ int64(uint64(x)>>32))
}

// String renders a shape as {Name: value,Name: value}. Unset fields are left
// out and the order follows the field declarations.
func String(v any) string {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return "<nil>"
	}

	sb := &strings.Builder{}
	writeValue(sb, rv)
	return sb.String()
}

func writeValue(sb *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		sb.WriteString("null")
		return
	}

	if v.Kind() != reflect.Pointer && v.Type().Implements(epochMillisType) && v.CanInterface() {
		if s, ok := v.Interface().(interface{ String() string }); ok {
			sb.WriteString(s.String())
			return
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			sb.WriteString("null")
			return
		}
		writeValue(sb, v.Elem())
	case reflect.Struct:
		sb.WriteString("{")
		first := true
		t := v.Type()
		for _, idx := range fields(t) {
			fv := v.Field(idx)
			if !isSet(fv) {
				continue
			}
			if !first {
				sb.WriteString(",")
			}
			first = false
			sb.WriteString(fieldName(t.Field(idx)))
			sb.WriteString(": ")
			writeValue(sb, fv)
		}
		sb.WriteString("}")
	case reflect.Slice:
		sb.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, v.Index(i))
		}
		sb.WriteString("]")
	case reflect.Map:
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		sb.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, k)
			sb.WriteString("=")
			writeValue(sb, v.MapIndex(k))
		}
		sb.WriteString("}")
	case reflect.String:
		sb.WriteString(v.String())
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		sb.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	}
}

// isSet reports whether a field holds a value. Enum fields are plain strings
// where the empty string means unset.
func isSet(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return !v.IsNil()
	case reflect.String:
		return v.Len() > 0
	}
	return true
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			return name
		}
	}
	return f.Name
}

// fields returns the indices of the fields that take part in equality,
// hashing and rendering
func fields(t reflect.Type) []int {
	indices := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("json") == "-" {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

func millis(v reflect.Value) (int64, bool) {
	if v.Kind() == reflect.Pointer || !v.Type().Implements(epochMillisType) || !v.CanInterface() {
		return 0, false
	}
	return v.Interface().(epochMillis).EpochMillis(), true
}

// Append adds items to the list behind dst, allocating it first if it is
// unset. Calling Append without items still turns an unset list into an empty
// one.
func Append[E any](dst *[]E, items ...E) {
	if *dst == nil {
		*dst = make([]E, 0, len(items))
	}
	*dst = append(*dst, items...)
}

// PutUnique inserts a single entry into the map behind dst, allocating it first
// if it is unset. Inserting an existing key fails with errors.ErrDuplicateKey
// and leaves the map untouched.
func PutUnique[V any](dst *map[string]V, key string, value V) error {
	if *dst == nil {
		*dst = make(map[string]V)
	}

	if _, ok := (*dst)[key]; ok {
		return errors.NewDuplicateKeyError(key)
	}

	(*dst)[key] = value
	return nil
}

// Clear resets the map behind dst to unset
func Clear[V any](dst *map[string]V) {
	*dst = nil
}
