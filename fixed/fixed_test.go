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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package fixed

import (
	"encoding/json"
	"errors"
	"testing"
)

// expectPanic runs fn and fails the test unless it panics. Infallible
// constructors signal static-arithmetic misuse by panicking, so the tests
// for that channel assert panics the way the fallible ones assert errors.
func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	fn()
}

// TestFromSliceRoundTrip tests the round-trip property: any valid text of
// the right length converts successfully and reads back byte-for-byte
// identical through the string view.
func TestFromSliceRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "ASCII", input: "hello"},
		{name: "Two-byte characters", input: "hää"},
		{name: "NUL bytes", input: "a\x00b\x00c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromSlice[[5]byte]([]byte(tt.input))
			if err != nil {
				t.Fatalf("FromSlice(%q) returned error: %v", tt.input, err)
			}
			if v.String() != tt.input {
				t.Errorf("String() = %q, want %q", v.String(), tt.input)
			}
			if v.Len() != 5 {
				t.Errorf("Len() = %d, want 5", v.Len())
			}
		})
	}
}

// TestFromSliceErrors tests rejection of wrong-length and malformed input.
// No partial value is ever produced: on error the returned value is the
// zero value.
func TestFromSliceErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      []byte
		wantLength bool
		wantUTF8   bool
	}{
		{name: "Too short", input: []byte("hell"), wantLength: true},
		{name: "Too long", input: []byte("hellos"), wantLength: true},
		{name: "Empty input for non-zero capacity", input: nil, wantLength: true},
		{name: "Invalid byte", input: []byte{'h', 'e', 0xFF, 'l', 'o'}, wantUTF8: true},
		{name: "Truncated multi-byte at end", input: []byte{'h', 'e', 'l', 'l', 0xC3}, wantUTF8: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromSlice[[5]byte](tt.input)
			if err == nil {
				t.Fatalf("FromSlice(% X) succeeded, want error", tt.input)
			}
			var lenErr *LengthError
			var utf8Err *UTF8Error
			if errors.As(err, &lenErr) != tt.wantLength {
				t.Errorf("LengthError match = %v, want %v (err: %v)", !tt.wantLength, tt.wantLength, err)
			}
			if errors.As(err, &utf8Err) != tt.wantUTF8 {
				t.Errorf("UTF8Error match = %v, want %v (err: %v)", !tt.wantUTF8, tt.wantUTF8, err)
			}
			if v != (Text[[5]byte]{}) {
				t.Errorf("failed conversion returned non-zero value %q", v.String())
			}
		})
	}
}

// TestFromArray tests checked construction from an owned byte array,
// including the offset detail of the validation error.
func TestFromArray(t *testing.T) {
	v, err := FromArray([5]byte{'h', 'e', 'l', 'l', 'o'})
	if err != nil {
		t.Fatalf("FromArray returned error: %v", err)
	}
	if v.String() != "hello" {
		t.Errorf("String() = %q, want %q", v.String(), "hello")
	}

	_, err = FromArray([5]byte{'h', 'e', 0x80, 'l', 'o'})
	var utf8Err *UTF8Error
	if !errors.As(err, &utf8Err) {
		t.Fatalf("FromArray with stray continuation byte returned %v, want *UTF8Error", err)
	}
	if utf8Err.Offset != 2 || utf8Err.Byte != 0x80 {
		t.Errorf("UTF8Error = offset %d byte 0x%02X, want offset 2 byte 0x80", utf8Err.Offset, utf8Err.Byte)
	}
}

// TestView tests the zero-copy validated view of a byte array: the view
// must share storage with the array rather than copy it.
func TestView(t *testing.T) {
	arr := [5]byte{'h', 'e', 'l', 'l', 'o'}
	v, err := View(&arr)
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if v.String() != "hello" {
		t.Errorf("String() = %q, want %q", v.String(), "hello")
	}

	// Valid UTF-8 writes through the source array are observable through
	// the view, proving no copy was taken.
	arr[0] = 'y'
	if v.String() != "yello" {
		t.Errorf("after source mutation String() = %q, want %q", v.String(), "yello")
	}

	bad := [2]byte{0xC3, 0x28}
	if _, err := View(&bad); err == nil {
		t.Error("View of invalid bytes succeeded, want error")
	}
}

// TestFromString tests the string constructor, including rejection of Go
// strings that do not hold valid UTF-8.
func TestFromString(t *testing.T) {
	v, err := FromString[[6]byte](" world")
	if err != nil {
		t.Fatalf("FromString returned error: %v", err)
	}
	if v.String() != " world" {
		t.Errorf("String() = %q, want %q", v.String(), " world")
	}

	if _, err := FromString[[5]byte]("hi"); err == nil {
		t.Error("FromString with short input succeeded, want *LengthError")
	}

	var utf8Err *UTF8Error
	if _, err := FromString[[1]byte](string([]byte{0xFF})); !errors.As(err, &utf8Err) {
		t.Errorf("FromString of invalid string returned %v, want *UTF8Error", err)
	}
}

// TestFromStringNFC tests the normalizing constructor: a decomposed input
// sequence must be converted to its precomposed form before the length
// check, so canonically equivalent inputs yield identical values.
func TestFromStringNFC(t *testing.T) {
	// "e" followed by a combining acute accent: three bytes decomposed,
	// two bytes ("é") once normalized.
	decomposed := "é"

	if _, err := FromString[[2]byte](decomposed); err == nil {
		t.Fatal("FromString of decomposed input succeeded, want *LengthError")
	}

	v, err := FromStringNFC[[2]byte](decomposed)
	if err != nil {
		t.Fatalf("FromStringNFC returned error: %v", err)
	}
	if v.String() != "é" {
		t.Errorf("String() = %q, want %q", v.String(), "é")
	}

	precomposed, err := FromStringNFC[[2]byte]("é")
	if err != nil {
		t.Fatalf("FromStringNFC of precomposed input returned error: %v", err)
	}
	if v != precomposed {
		t.Error("canonically equivalent inputs produced different values")
	}
}

// TestZeroValue tests the degenerate cases: the zero value of any
// instantiation is all NUL characters and satisfies the invariant, and a
// zero-capacity instantiation holds the empty text.
func TestZeroValue(t *testing.T) {
	var v Text[[3]byte]
	if v.String() != "\x00\x00\x00" {
		t.Errorf("zero value String() = %q, want three NULs", v.String())
	}

	var empty Text[[0]byte]
	if empty.String() != "" || empty.Len() != 0 {
		t.Errorf("zero-capacity value = %q (len %d), want empty", empty.String(), empty.Len())
	}
	if _, err := FromString[[0]byte](""); err != nil {
		t.Errorf("FromString of empty text into zero capacity returned error: %v", err)
	}
}

// TestValueSemantics tests that Text behaves as a plain comparable value:
// copies are independent, == compares content, and values work as map keys.
func TestValueSemantics(t *testing.T) {
	a := Must[[5]byte]("hello")
	b := a
	if a != b {
		t.Error("copy compares unequal to original")
	}

	c := Must[[5]byte]("world")
	if a == c {
		t.Error("distinct texts compare equal")
	}

	m := map[Text[[5]byte]]int{a: 1, c: 2}
	if m[Must[[5]byte]("hello")] != 1 || m[Must[[5]byte]("world")] != 2 {
		t.Error("map lookup through reconstructed keys failed")
	}

	if a.Compare(&c) >= 0 || c.Compare(&a) <= 0 || a.Compare(&b) != 0 {
		t.Error("Compare ordering is inconsistent with lexicographic order")
	}
	if !a.EqualString("hello") || a.EqualString("hell0") {
		t.Error("EqualString mismatch")
	}
}

// TestBytesViews tests the byte accessors: Bytes and Array return copies,
// while UnsafeBytes aliases the value's storage so valid in-place mutation
// is observable through the text view.
func TestBytesViews(t *testing.T) {
	v := Must[[5]byte]("hello")

	b := v.Bytes()
	b[0] = 'X'
	if v.String() != "hello" {
		t.Errorf("mutating Bytes() copy changed the value to %q", v.String())
	}

	arr := v.Array()
	arr[0] = 'X'
	if v.String() != "hello" {
		t.Errorf("mutating Array() copy changed the value to %q", v.String())
	}

	v.UnsafeBytes()[0] = 'j'
	if v.String() != "jello" {
		t.Errorf("after UnsafeBytes write String() = %q, want %q", v.String(), "jello")
	}
}

// TestSubstring tests byte-range indexing, including the panic on ranges
// that split a multi-byte character or fall out of bounds.
func TestSubstring(t *testing.T) {
	v := Must[[11]byte]("hello world")
	if got := v.Substring(0, 5); got != "hello" {
		t.Errorf("Substring(0, 5) = %q, want %q", got, "hello")
	}
	if got := v.Substring(6, 11); got != "world" {
		t.Errorf("Substring(6, 11) = %q, want %q", got, "world")
	}
	if got := v.Substring(5, 5); got != "" {
		t.Errorf("Substring(5, 5) = %q, want empty", got)
	}

	multi := Must[[6]byte]("aä€")
	if got := multi.Substring(1, 3); got != "ä" {
		t.Errorf("Substring(1, 3) = %q, want %q", got, "ä")
	}
	expectPanic(t, func() { multi.Substring(1, 2) })
	expectPanic(t, func() { multi.Substring(4, 6) })
	expectPanic(t, func() { v.Substring(-1, 5) })
	expectPanic(t, func() { v.Substring(0, 12) })
	expectPanic(t, func() { v.Substring(6, 5) })
}

// TestJSON tests the serialization boundary: values encode as plain JSON
// strings, decoding routes through the checked constructor, and rejection
// surfaces the validation taxonomy.
func TestJSON(t *testing.T) {
	type record struct {
		Code Text[[5]byte] `json:"code"`
	}

	out, err := json.Marshal(&record{Code: Must[[5]byte]("hello")})
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(out) != `{"code":"hello"}` {
		t.Errorf("Marshal = %s, want {\"code\":\"hello\"}", out)
	}

	var in record
	if err := json.Unmarshal([]byte(`{"code":"world"}`), &in); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if in.Code.String() != "world" {
		t.Errorf("decoded value = %q, want %q", in.Code.String(), "world")
	}

	var lenErr *LengthError
	if err := json.Unmarshal([]byte(`{"code":"toolong"}`), &in); !errors.As(err, &lenErr) {
		t.Errorf("Unmarshal of wrong-length string returned %v, want *LengthError", err)
	}
}

// TestTextMarshalling tests the encoding.TextMarshaler/TextUnmarshaler
// pair, which text-based encoders use.
func TestTextMarshalling(t *testing.T) {
	v := Must[[5]byte]("hello")
	out, err := v.MarshalText()
	if err != nil || string(out) != "hello" {
		t.Fatalf("MarshalText = %q, %v, want %q, nil", out, err, "hello")
	}

	var in Text[[5]byte]
	if err := in.UnmarshalText([]byte("world")); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if in.String() != "world" {
		t.Errorf("decoded value = %q, want %q", in.String(), "world")
	}
	if err := in.UnmarshalText([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}); err == nil {
		t.Error("UnmarshalText of invalid bytes succeeded, want error")
	}
}

// TestBadInstantiation tests that construction entry points reject type
// arguments that are not byte arrays. The reinterpretation machinery is
// only sound for byte arrays, so this is a panic, not an error.
func TestBadInstantiation(t *testing.T) {
	expectPanic(t, func() { _, _ = FromString[int32]("abcd") })
	expectPanic(t, func() { _, _ = FromSlice[[2]int16]([]byte("abcd")) })
	expectPanic(t, func() {
		var v Text[int64]
		v.UnsafeBytes()
	})
}
