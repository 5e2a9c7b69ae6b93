package scale

import (
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// melCache memoizes MaxEncodedLen results per reflect.Type, the same
// concurrent-safe caching shape the teacher uses in fixed.go to avoid
// recomputing a struct's fixed size via reflection on every call. Computing
// a composite type's MEL walks its fields recursively; caching means that
// cost is paid once per type, not once per value.
var melCache = xsync.NewMap[reflect.Type, int]()

// MaxEncodedLen returns v's statically-known worst-case encoded length.
// If v implements MaxEncodedLenner directly, that takes precedence.
// Otherwise MaxEncodedLen reflects over v's structure — struct fields,
// array elements, fixed-size primitives — recursively summing known
// bounds; a field or element whose type implements MaxEncodedLenner
// contributes that method's result. Types containing a variable-length component with no declared
// bound (a plain slice, map, or string field with no MEL override) cannot
// be computed this way and MaxEncodedLen panics for them, mirroring the
// source ecosystem's compile-time rejection of MaxEncodedLen impls for such
// types — callers of types with unbounded fields must provide their own
// MaxEncodedLenner implementation instead of relying on reflection.
func MaxEncodedLen(v any) int {
	t := reflect.TypeOf(v)
	if cached, ok := melCache.Load(t); ok {
		return cached
	}
	if m, ok := v.(MaxEncodedLenner); ok {
		n := m.MaxEncodedLen()
		melCache.Store(t, n)
		return n
	}
	n := reflectMaxEncodedLen(t)
	melCache.Store(t, n)
	return n
}

func reflectMaxEncodedLen(t reflect.Type) int {
	if k := t.Kind(); k != reflect.Ptr && k != reflect.Interface &&
		t.Implements(reflect.TypeOf((*MaxEncodedLenner)(nil)).Elem()) {
		return reflect.Zero(t).Interface().(MaxEncodedLenner).MaxEncodedLen()
	}
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	case reflect.Array:
		return reflectMaxEncodedLen(t.Elem()) * t.Len()
	case reflect.Struct:
		sum := 0
		for i := 0; i < t.NumField(); i++ {
			sum += reflectMaxEncodedLen(t.Field(i).Type)
		}
		return sum
	case reflect.Ptr:
		return reflectMaxEncodedLen(t.Elem())
	default:
		panic("scale: MaxEncodedLen: type " + t.String() + " has no statically-known bound; provide a MaxEncodedLenner implementation")
	}
}
