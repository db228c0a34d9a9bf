package pureguard

import (
	"cmp"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// KeysOf returns the keys of m in ascending order.
//
// Example:
//
//	KeysOf(map[string]string{"B": "b", "A": "a"}) // [A B]
func KeysOf[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	return slices.Sorted(maps.Keys(m))
}

// ValuesOf returns the values of m ordered by their keys.
func ValuesOf[M ~map[K]V, K cmp.Ordered, V any](m M) []V {
	keys := KeysOf(m)
	values := make([]V, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return values
}

// DeepKeys returns every dotted key path reachable in v through
// string-keyed maps and structs, intermediate paths included, sorted.
//
// Struct fields follow encoding/json naming: the json tag name when set,
// "-" skips the field, and untagged embedded structs are flattened.
// Slices, arrays and scalars end a path. A pointer or map that refers
// back to a value on the current path is listed but not entered again.
//
// Example:
//
//	DeepKeys(map[string]any{"a": map[string]any{"b": 1}, "c": 2})
//	// [a a.b c]
func DeepKeys(v any) []string {
	w := &keyWalker{active: make(map[visit]bool)}
	w.walk(reflect.ValueOf(v), "")
	slices.Sort(w.out)
	return w.out
}

// visit identifies a pointer or map on the current walk path. The type is
// part of the key because a struct and its first field share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// keyWalker collects paths for DeepKeys. Values already on the path being
// walked are not entered again, so cyclic values end.
type keyWalker struct {
	out    []string
	active map[visit]bool
}

// enter marks rv as being walked. It returns false when rv is already on
// the path.
func (w *keyWalker) enter(rv reflect.Value) bool {
	v := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if w.active[v] {
		return false
	}
	w.active[v] = true
	return true
}

func (w *keyWalker) leave(rv reflect.Value) {
	delete(w.active, visit{ptr: rv.Pointer(), typ: rv.Type()})
}

func (w *keyWalker) walk(rv reflect.Value, prefix string) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return
		}
		if rv.Kind() == reflect.Pointer {
			if !w.enter(rv) {
				return
			}
			defer w.leave(rv)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String || !w.enter(rv) {
			return
		}
		defer w.leave(rv)
		iter := rv.MapRange()
		for iter.Next() {
			path := joinPath(prefix, iter.Key().String())
			w.out = append(w.out, path)
			w.walk(iter.Value(), path)
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			name, ok := fieldName(t.Field(i))
			if !ok {
				continue
			}
			if name == "" {
				w.walk(rv.Field(i), prefix)
				continue
			}
			path := joinPath(prefix, name)
			w.out = append(w.out, path)
			w.walk(rv.Field(i), path)
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Lookup resolves a dotted path produced by DeepKeys against v.
// The empty path resolves to v itself.
//
// Example:
//
//	cfg := map[string]any{"db": map[string]any{"port": 5432}}
//	port, ok := Lookup(cfg, "db.port") // 5432, true
func Lookup(v any, path string) (any, bool) {
	if path == "" {
		return v, true
	}

	rv := reflect.ValueOf(v)
	for _, key := range strings.Split(path, ".") {
		obj, ok := indirect(rv)
		if !ok {
			return nil, false
		}
		switch obj.Kind() {
		case reflect.Map:
			if obj.Type().Key().Kind() != reflect.String {
				return nil, false
			}
			next := obj.MapIndex(reflect.ValueOf(key).Convert(obj.Type().Key()))
			if !next.IsValid() {
				return nil, false
			}
			rv = next
		case reflect.Struct:
			next, found := structField(obj, key)
			if !found {
				return nil, false
			}
			rv = next
		default:
			return nil, false
		}
	}

	if !rv.IsValid() || !rv.CanInterface() {
		return nil, false
	}
	return rv.Interface(), true
}
