// Package shapetest checks that a shape type follows the shape conventions:
// field-wise equality and hashing, rendering of set fields only, list append
// and replace, unique map insertion and JSON round trips.
package shapetest

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	smerrors "github.com/diwise/sagemaker-client/pkg/sagemaker/errors"
	"github.com/matryer/is"
)

var epoch = time.Date(2020, 2, 29, 13, 37, 0, 123000000, time.UTC)

// Conventions runs all convention checks for the shape type of prototype,
// which must be a pointer to a struct.
func Conventions(t *testing.T, prototype any) {
	t.Helper()

	typ := reflect.TypeOf(prototype).Elem()

	t.Run(typ.Name(), func(t *testing.T) {
		is := is.New(t)

		a, b := reflect.New(typ), reflect.New(typ)
		is.True(equal(a, b))                       // empty shapes should be equal
		is.Equal(hashCode(a), hashCode(b))         // empty shapes should hash alike
		is.Equal(render(a), "{}")                  // nothing set, nothing rendered
		is.True(!equal(a, reflect.Zero(a.Type()))) // a shape never equals nil

		for _, f := range shapeFields(typ) {
			checkField(t, typ, f)
		}
	})
}

func checkField(t *testing.T, typ reflect.Type, f reflect.StructField) {
	t.Run(f.Name, func(t *testing.T) {
		is := is.New(t)

		name := jsonName(f)
		a, b := reflect.New(typ), reflect.New(typ)

		value, rendered := sample(f.Type)
		a.Elem().FieldByIndex(f.Index).Set(value)
		value, _ = sample(f.Type)
		b.Elem().FieldByIndex(f.Index).Set(value)

		is.True(equal(a, b))               // same field set on both sides
		is.Equal(hashCode(a), hashCode(b)) // equal shapes should hash alike
		is.True(!equal(a, reflect.New(typ)))
		is.Equal(render(a), fmt.Sprintf("{%s: %s}", name, rendered))

		body, err := json.Marshal(a.Interface())
		is.NoErr(err)
		is.True(strings.Contains(string(body), `"`+name+`":`)) // set field should be encoded

		c := reflect.New(typ)
		is.NoErr(json.Unmarshal(body, c.Interface()))
		is.True(equal(a, c)) // should survive a json round trip

		switch f.Type.Kind() {
		case reflect.Slice:
			checkList(t, typ, f)
		case reflect.Map:
			checkMap(t, typ, f)
		}
	})
}

func checkList(t *testing.T, typ reflect.Type, f reflect.StructField) {
	is := is.New(t)

	s := reflect.New(typ)
	add := s.MethodByName("Add" + f.Name)
	is.True(add.IsValid()) // list field should have an Add method

	field := s.Elem().FieldByIndex(f.Index)

	add.Call(nil)
	is.True(!field.IsNil()) // append without items should allocate
	is.Equal(field.Len(), 0)

	first, _ := sample(f.Type.Elem())
	second, _ := sample(f.Type.Elem())
	if first.Kind() == reflect.String {
		first = reflect.ValueOf("a").Convert(f.Type.Elem())
		second = reflect.ValueOf("b").Convert(f.Type.Elem())
	}
	add.Call([]reflect.Value{first, second})
	is.Equal(field.Len(), 2)
	is.True(reflect.DeepEqual(field.Index(0).Interface(), first.Interface()))
	is.True(reflect.DeepEqual(field.Index(1).Interface(), second.Interface()))

	empty := reflect.New(typ)
	empty.Elem().FieldByIndex(f.Index).Set(reflect.MakeSlice(f.Type, 0, 0))
	is.True(!equal(empty, reflect.New(typ))) // an empty list is not an unset list

	field.Set(reflect.Zero(f.Type))
	is.True(field.IsNil()) // replacing with nil should unset the field
	is.True(equal(s, reflect.New(typ)))
}

func checkMap(t *testing.T, typ reflect.Type, f reflect.StructField) {
	is := is.New(t)

	s := reflect.New(typ)
	put := s.MethodByName("Put" + f.Name)
	clearAll := s.MethodByName("Clear" + f.Name)
	is.True(put.IsValid())      // map field should have a Put method
	is.True(clearAll.IsValid()) // map field should have a Clear method

	value, _ := sample(f.Type.Elem())
	key := reflect.ValueOf("k")

	out := put.Call([]reflect.Value{key, value})
	is.True(out[0].IsNil()) // first insert should succeed

	out = put.Call([]reflect.Value{key, value})
	err, _ := out[0].Interface().(error)
	is.True(errors.Is(err, smerrors.ErrDuplicateKey)) // second insert should fail

	field := s.Elem().FieldByIndex(f.Index)
	is.Equal(field.Len(), 1)

	clearAll.Call(nil)
	is.True(field.IsNil()) // clear should reset the map to unset
}

// sample returns a non zero value of type t together with its rendering
func sample(t reflect.Type) (reflect.Value, string) {
	switch t.Kind() {
	case reflect.Pointer:
		v, rendered := sample(t.Elem())
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		return p, rendered
	case reflect.Struct:
		if reflect.TypeOf(epoch).ConvertibleTo(t) {
			v := reflect.ValueOf(epoch).Convert(t)
			return v, v.Interface().(fmt.Stringer).String()
		}
		return reflect.New(t).Elem(), "{}"
	case reflect.String:
		if t.Name() != "string" {
			return reflect.ValueOf("Value").Convert(t), "Value"
		}
		return reflect.ValueOf("value"), "value"
	case reflect.Bool:
		return reflect.ValueOf(true), "true"
	case reflect.Int32, reflect.Int64:
		return reflect.ValueOf(7).Convert(t), "7"
	case reflect.Float32, reflect.Float64:
		return reflect.ValueOf(1.5).Convert(t), "1.5"
	case reflect.Slice:
		v, rendered := sample(t.Elem())
		s := reflect.MakeSlice(t, 0, 1)
		return reflect.Append(s, v), "[" + rendered + "]"
	case reflect.Map:
		v, rendered := sample(t.Elem())
		m := reflect.MakeMap(t)
		m.SetMapIndex(reflect.ValueOf("k"), v)
		return m, "{k=" + rendered + "}"
	}
	panic("no sample for " + t.String())
}

func shapeFields(t reflect.Type) []reflect.StructField {
	var result []reflect.StructField
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("json") == "-" {
			continue
		}
		result = append(result, f)
	}
	return result
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}

func equal(a, b reflect.Value) bool {
	return a.MethodByName("Equal").Call([]reflect.Value{b})[0].Bool()
}

func hashCode(v reflect.Value) int32 {
	return int32(v.MethodByName("HashCode").Call(nil)[0].Int())
}

func render(v reflect.Value) string {
	return v.Interface().(fmt.Stringer).String()
}
