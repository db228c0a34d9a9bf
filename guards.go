package pureguard

import (
	"reflect"
	"strings"
)

// IsDefined reports whether v holds a usable value: not nil and not a nil
// pointer, map, slice, interface, channel or func.
func IsDefined(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// HasProperty reports whether obj is an object carrying key.
//
// Objects are maps with string keys and structs (or pointers to them).
// A struct field matches by its Go name or by the name in its json tag.
//
// Example:
//
//	HasProperty(map[string]any{"id": 1}, "id") // true
//	HasProperty(User{Name: "Ann"}, "Name")     // true
//	HasProperty("id", "id")                    // false
func HasProperty(obj any, key string) bool {
	rv, ok := asObject(obj)
	if !ok {
		return false
	}
	return hasKey(rv, key)
}

// HasProperties reports whether obj is an object carrying every key.
// An object with no keys requested passes.
func HasProperties(obj any, keys ...string) bool {
	rv, ok := asObject(obj)
	if !ok {
		return false
	}
	for _, key := range keys {
		if !hasKey(rv, key) {
			return false
		}
	}
	return true
}

// IsNonEmptyArray reports whether v is a slice or array with at least one element.
func IsNonEmptyArray(v any) bool {
	n, ok := arrayLen(v)
	return ok && n > 0
}

// IsEmptyArray reports whether v is a slice or array with no elements.
// A typed nil slice counts as empty.
func IsEmptyArray(v any) bool {
	n, ok := arrayLen(v)
	return ok && n == 0
}

// IsEnumKey reports whether key names a member of enum.
//
// Go has no enum objects; a lookup table stands in for one:
//
//	var Color = map[string]string{"Red": "red", "Blue": "blue"}
//	IsEnumKey(Color, "Red") // true
//	IsEnumKey(Color, "red") // false
func IsEnumKey[K comparable, V any](enum map[K]V, key K) bool {
	_, ok := enum[key]
	return ok
}

// IsEnumValue reports whether value is one of enum's member values.
func IsEnumValue[K, V comparable](enum map[K]V, value V) bool {
	for _, v := range enum {
		if v == value {
			return true
		}
	}
	return false
}

func arrayLen(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

// asObject unwraps obj to a string-keyed map or a struct.
func asObject(obj any) (reflect.Value, bool) {
	rv, ok := indirect(reflect.ValueOf(obj))
	if !ok {
		return rv, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv, false
		}
		return rv, rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return rv, true
	}
	return rv, false
}

func hasKey(rv reflect.Value, key string) bool {
	if rv.Kind() == reflect.Map {
		k := reflect.ValueOf(key).Convert(rv.Type().Key())
		return rv.MapIndex(k).IsValid()
	}
	_, ok := structField(rv, key)
	return ok
}

// structField finds the exported field addressed by key, searching
// untagged embedded structs the way encoding/json flattens them.
func structField(rv reflect.Value, key string) (reflect.Value, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, ok := fieldName(sf)
		if !ok {
			continue
		}
		if name == "" {
			inner, ok := indirect(rv.Field(i))
			if ok && inner.Kind() == reflect.Struct {
				if f, found := structField(inner, key); found {
					return f, true
				}
			}
			continue
		}
		if name == key || sf.Name == key {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// fieldName returns the key a struct field is addressed by. It returns
// "" for embedded structs to be flattened and false for skipped fields.
func fieldName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if sf.Anonymous && name == "" {
		t := sf.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t.Kind() == reflect.Struct {
			return "", true
		}
	}
	if !sf.IsExported() {
		return "", false
	}
	if name == "" {
		name = sf.Name
	}
	return name, true
}
