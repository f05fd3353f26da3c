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

package fixed

import "fmt"

// This file holds the infallible constructors: Must, Repeat, and Concat.
// Their inputs are under the caller's control (literals, repeat counts, and
// already-validated values), so any mismatch is a defect at the call site.
// They panic instead of returning an error, keeping the programmer-error
// channel separate from the data-error channel of the From* constructors.

// Must converts a string literal whose length matches the capacity of A,
// panicking on any mismatch. It is intended for package-level values:
//
//	var greeting = fixed.Must[[5]byte]("hello")
func Must[A comparable](s string) Text[A] {
	t, err := FromString[A](s)
	if err != nil {
		panic(fmt.Sprintf("fixed: Must(%q): %v", s, err))
	}
	return t
}

// Repeat builds a Text value containing count repetitions of the character
// r. The capacity of A must equal count times the encoded length of r; any
// other combination panics, as does a count below zero or a value that is
// not a Unicode scalar (surrogate halves, out-of-range values).
//
// The character is encoded once and its byte pattern tiled across the
// destination, so multi-byte characters work the same as ASCII:
// Repeat[[20]byte]('ä', 10) yields "ääääääääää".
func Repeat[A comparable](r rune, count int) Text[A] {
	checkInstantiation[A]()
	buf, n := encodeRune(r)
	if n == 0 {
		panic(fmt.Sprintf("fixed: Repeat of invalid character %#U", r))
	}
	if count < 0 || count*n != size[A]() {
		panic(fmt.Sprintf("fixed: Repeat count %d of a %d-byte character does not fill %d bytes", count, n, size[A]()))
	}
	var t Text[A]
	dst := t.unsafeBytes()
	for i := range dst {
		dst[i] = buf[i%n]
	}
	return t
}

// Concat concatenates a and b into a Text value whose capacity must be
// exactly the sum of the operand capacities; any other result type panics.
// The result type parameter cannot be inferred and is given explicitly:
//
//	h := fixed.Must[[5]byte]("hello")
//	w := fixed.Must[[6]byte](" world")
//	hw := fixed.Concat[[11]byte](h, w)
//
// The operands are written back to back without re-validation: UTF-8 has no
// state that crosses sequence boundaries, so the concatenation of two valid
// encodings is itself a valid encoding.
func Concat[C, A, B comparable](a Text[A], b Text[B]) Text[C] {
	checkInstantiation[A]()
	checkInstantiation[B]()
	checkInstantiation[C]()
	na, nb := size[A](), size[B]()
	if size[C]() != na+nb {
		panic(fmt.Sprintf("fixed: Concat of %d and %d bytes into %d", na, nb, size[C]()))
	}
	var t Text[C]
	dst := t.unsafeBytes()
	copy(dst[:na], a.unsafeBytes())
	copy(dst[na:], b.unsafeBytes())
	return t
}
