/*
Package value holds the reflection helpers shared by the algebraic types:
absence detection, structural equality, hashing and type names.
*/
package value

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hasher is implemented by values which know their own hash.
type Hasher interface {
	Hash() uint64
}

// IsNil reports whether x is the absence marker of its type, i.e. a nil
// pointer, interface, map, slice, channel or function.
func IsNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Equal is deep value equality.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// Hash returns x.Hash() for a Hasher, 0 for nil and a structural hash
// otherwise. The hash follows the rules of Equal: pointers and interfaces are
// followed, and arrays, slices, maps and struct fields are hashed element by
// element, so that Equal values hash equally.
func Hash(x any) uint64 {
	if IsNil(x) {
		return 0
	}
	if h, ok := x.(Hasher); ok {
		return h.Hash()
	}
	d := xxhash.New()
	hashValue(d, reflect.ValueOf(x), map[uintptr]bool{})
	return d.Sum64()
}

func writeUint(d *xxhash.Digest, n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	d.Write(buf[:])
}

func writeFloat(d *xxhash.Digest, f float64) {
	if f == 0 { // -0 == +0
		f = 0
	}
	writeUint(d, math.Float64bits(f))
}

// hashValue writes v to d. visiting holds the pointers on the current path
// and stops cycles.
func hashValue(d *xxhash.Digest, v reflect.Value, visiting map[uintptr]bool) {
	if !v.IsValid() {
		d.WriteString("<nil>")
		return
	}
	d.WriteString(v.Type().String())
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(d, 1)
		} else {
			writeUint(d, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(d, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(d, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(d, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(d, real(c))
		writeFloat(d, imag(c))
	case reflect.String:
		d.WriteString(v.String())
	case reflect.Pointer:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		if visiting[v.Pointer()] {
			d.WriteString("<cycle>")
			return
		}
		visiting[v.Pointer()] = true
		hashValue(d, v.Elem(), visiting)
		delete(visiting, v.Pointer())
	case reflect.Interface:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		hashValue(d, v.Elem(), visiting)
	case reflect.Array, reflect.Slice:
		if v.Kind() == reflect.Slice && v.Len() > 0 {
			if visiting[v.Pointer()] {
				d.WriteString("<cycle>")
				return
			}
			visiting[v.Pointer()] = true
			defer delete(visiting, v.Pointer())
		}
		writeUint(d, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			hashValue(d, v.Index(i), visiting)
		}
	case reflect.Map:
		if v.IsNil() {
			writeUint(d, 0)
			return
		}
		if visiting[v.Pointer()] {
			d.WriteString("<cycle>")
			return
		}
		visiting[v.Pointer()] = true
		defer delete(visiting, v.Pointer())
		writeUint(d, uint64(v.Len()))
		// entries combine by addition, independent of iteration order
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			e := xxhash.New()
			hashValue(e, iter.Key(), visiting)
			hashValue(e, iter.Value(), visiting)
			sum += e.Sum64()
		}
		writeUint(d, sum)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			hashValue(d, v.Field(i), visiting)
		}
	case reflect.Func:
		// non-nil functions are never Equal
		writeUint(d, uint64(v.Pointer()))
	case reflect.Chan, reflect.UnsafePointer:
		writeUint(d, uint64(v.Pointer()))
	}
}

// TypeName returns the simple name of the dynamic type of x, or the full type
// string for unnamed types.
func TypeName(x any) string {
	t := reflect.TypeOf(x)
	if t == nil {
		return "nil"
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
