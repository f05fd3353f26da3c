/*
Copyright 2025 Fixedtext Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fixed provides Text, a fixed-capacity string: a byte array of a
// statically known size that is guaranteed to always hold well-formed UTF-8
// of exactly that byte length.
//
// The capacity is carried by the array type used to instantiate Text, not
// by a runtime length field. Text[[5]byte] is a five-byte string value:
// trivially copyable, comparable (usable as a map key), stack-resident,
// with no indirection and no heap allocation.
//
// Key features include:
//   - Checked construction from runtime input (FromSlice, FromString,
//     FromArray, View), returning a typed error locating the first invalid
//     UTF-8 sequence or the length mismatch.
//   - Infallible construction from input the caller controls (Must, Repeat,
//     Concat), which panics on static-arithmetic misuse instead of
//     returning an error.
//   - A Unicode NFC-normalizing constructor (FromStringNFC) for input that
//     may not come from a pre-normalized source.
//   - An exact-fit Builder that adapts fmt's streaming formatted output
//     into a fixed-capacity buffer.
//   - JSON and text marshalling that encode as a plain string and decode
//     through the checked construction path.
package fixed

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"golang.org/x/text/unicode/norm"
)

// Text is a fixed-capacity string. The type parameter A must be a byte
// array type ([N]byte or a type whose underlying type is [N]byte); N is the
// exact byte length of the text. The zero value is N NUL characters, which
// satisfies the validity invariant, so Text is useful without explicit
// initialization.
//
// Every value observable through the exported API holds valid UTF-8 of
// exactly N bytes. The only way to break that invariant is to write invalid
// bytes through UnsafeBytes, which shifts responsibility for it to the
// caller.
//
// Instantiating Text with anything other than a byte array type is a
// programmer error; every construction entry point panics on such an
// instantiation.
type Text[A comparable] struct {
	raw A
}

// size returns the byte capacity carried by the array type A. It compiles
// to a constant for any concrete instantiation.
func size[A comparable]() int {
	var zero A
	return int(unsafe.Sizeof(zero))
}

// checkInstantiation panics unless A is a byte array type. The check keeps
// the unsafe reinterpretation of the stored array sound: all byte-view code
// in this package assumes the value is exactly N contiguous bytes.
func checkInstantiation[A comparable]() {
	t := reflect.TypeOf((*A)(nil)).Elem()
	if t.Kind() != reflect.Array || t.Elem().Kind() != reflect.Uint8 {
		panic(fmt.Sprintf("fixed: Text instantiated with %s, need a byte array type", t))
	}
}

// unsafeBytes returns the stored array as a byte slice aliasing the value's
// own storage. Callers must not let the slice outlive t.
func (t *Text[A]) unsafeBytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&t.raw)), size[A]())
}

// stringBytes returns a read-only byte view of s without copying. The
// result must never be written to.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// FromArray validates arr as UTF-8 and returns it wrapped as a Text value.
// On failure it returns a *UTF8Error locating the first invalid sequence.
// The array is copied; the caller keeps ownership of arr.
func FromArray[A comparable](arr A) (Text[A], error) {
	checkInstantiation[A]()
	t := Text[A]{raw: arr}
	if err := validate(t.unsafeBytes()); err != nil {
		return Text[A]{}, err
	}
	return t, nil
}

// View validates the array behind arr and, on success, returns a validated
// view of the same storage without copying. Mutating the array through arr
// after a successful View breaks the invariant of the returned value; use
// UnsafeBytes semantics for any such mutation.
func View[A comparable](arr *A) (*Text[A], error) {
	checkInstantiation[A]()
	b := unsafe.Slice((*byte)(unsafe.Pointer(arr)), size[A]())
	if err := validate(b); err != nil {
		return nil, err
	}
	// Text has a single field of type A, so the representations match.
	return (*Text[A])(unsafe.Pointer(arr)), nil
}

// FromSlice copies b into a new Text value. It returns a *LengthError if
// len(b) differs from the capacity of A, or a *UTF8Error if b is not valid
// UTF-8. No partial result is ever produced.
func FromSlice[A comparable](b []byte) (Text[A], error) {
	checkInstantiation[A]()
	n := size[A]()
	if len(b) != n {
		return Text[A]{}, &LengthError{Want: n, Got: len(b)}
	}
	if err := validate(b); err != nil {
		return Text[A]{}, err
	}
	var t Text[A]
	copy(t.unsafeBytes(), b)
	return t, nil
}

// FromString copies s into a new Text value. The length must match the
// capacity of A exactly. The bytes are validated as well: Go permits string
// values that are not valid UTF-8 (for example string([]byte{0xFF})), and
// admitting one would silently break the invariant.
func FromString[A comparable](s string) (Text[A], error) {
	return FromSlice[A](stringBytes(s))
}

// FromStringNFC normalizes s to Unicode Normalization Form C and then
// converts it like FromString. This is useful when the input does not come
// from a pre-normalized source (for example, read from user input or
// converted from a legacy encoding): canonically equivalent inputs produce
// identical Text values. Note that normalization can change the byte
// length, so the length check applies to the normalized form.
func FromStringNFC[A comparable](s string) (Text[A], error) {
	return FromString[A](norm.NFC.String(s))
}

// String returns the text as a string view of the value's own storage,
// without copying. The result aliases t: it stays correct as long as t is
// alive and not mutated through UnsafeBytes.
func (t *Text[A]) String() string {
	b := t.unsafeBytes()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Bytes returns a copy of the stored bytes. The caller may freely modify
// the result.
func (t *Text[A]) Bytes() []byte {
	b := make([]byte, size[A]())
	copy(b, t.unsafeBytes())
	return b
}

// Array returns a copy of the stored byte array.
func (t *Text[A]) Array() A {
	return t.raw
}

// UnsafeBytes returns the stored bytes as a mutable slice aliasing the
// value's own storage.
//
// The caller is responsible for upholding the type's invariant: every write
// must leave the full buffer valid UTF-8 (the byte length cannot change),
// and the caller must have exclusive access to t for the duration of the
// mutation. Strings previously returned by String alias the same storage
// and will observe the writes.
func (t *Text[A]) UnsafeBytes() []byte {
	checkInstantiation[A]()
	return t.unsafeBytes()
}

// Len returns the byte length of the text, which is the capacity of A.
func (t *Text[A]) Len() int {
	return size[A]()
}

// Compare lexicographically compares the text of t and other, returning
// -1, 0, or +1 as t is less than, equal to, or greater than other.
func (t *Text[A]) Compare(other *Text[A]) int {
	return strings.Compare(t.String(), other.String())
}

// EqualString reports whether the text equals s. Two Text values of the
// same instantiation can be compared directly with ==.
func (t *Text[A]) EqualString(s string) bool {
	return t.String() == s
}

// Substring returns the text in the byte range [i, j). It panics if the
// range is out of bounds or if either end splits a multi-byte character,
// matching how indexing into dynamic text by an ill-formed range is a
// defect at the call site rather than a data error.
func (t *Text[A]) Substring(i, j int) string {
	s := t.String()
	if i < 0 || j < i || j > len(s) {
		panic(fmt.Sprintf("fixed: substring range [%d:%d] out of bounds for length %d", i, j, len(s)))
	}
	if !boundary(s, i) || !boundary(s, j) {
		panic(fmt.Sprintf("fixed: substring range [%d:%d] splits a multi-byte character", i, j))
	}
	return s[i:j]
}

// MarshalJSON implements the json.Marshaler interface, encoding the text as
// a plain JSON string.
func (t *Text[A]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string and routes it through the checked construction path, so a
// length mismatch or invalid UTF-8 surfaces as the same error a direct
// FromString call would return.
func (t *Text[A]) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := FromString[A](s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t *Text[A]) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface, decoding
// through the checked construction path.
func (t *Text[A]) UnmarshalText(data []byte) error {
	v, err := FromSlice[A](data)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
