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

import "unicode/utf8"

// Builder accumulates streaming writes into a fixed-capacity buffer and
// finalizes them into a Text value. It implements io.Writer, io.StringWriter
// and io.ByteWriter, so formatted output can be streamed straight into it:
//
//	b := fixed.NewBuilder[[6]byte]()
//	fmt.Fprintf(b, "%06X", 0xFA8072)
//	t, err := b.Finalize() // Text[[6]byte]("FA8072")
//
// Finalize requires an exact fill: every one of the N bytes must have been
// written, no more and no fewer. There is no silent truncation and no
// padding; a caller that sizes the capacity wrong gets an error, not a
// mangled value.
//
// A write that would overrun the capacity fails with a *CapacityError and
// puts the builder into a failed state; subsequent writes and Finalize
// return the same error until Reset is called. Builder is a single-owner
// sequential object and must not be shared between goroutines.
//
// The zero Builder is ready to use.
type Builder[A comparable] struct {
	buf     Text[A]
	n       int
	err     error
	checked bool
}

// NewBuilder returns an empty builder for the capacity carried by A. It
// panics if A is not a byte array type.
func NewBuilder[A comparable]() *Builder[A] {
	checkInstantiation[A]()
	return &Builder[A]{checked: true}
}

// reserve checks that n more bytes fit, recording and returning a
// *CapacityError if they do not. A previously failed write keeps the
// builder failed.
func (b *Builder[A]) reserve(n int) error {
	if !b.checked {
		checkInstantiation[A]()
		b.checked = true
	}
	if b.err != nil {
		return b.err
	}
	if n > size[A]()-b.n {
		b.err = &CapacityError{Cap: size[A](), Len: b.n, N: n}
		return b.err
	}
	return nil
}

// Write implements io.Writer. Writes are all-or-nothing: a chunk that does
// not fit in the remaining capacity is rejected entirely.
func (b *Builder[A]) Write(p []byte) (int, error) {
	if err := b.reserve(len(p)); err != nil {
		return 0, err
	}
	copy(b.buf.unsafeBytes()[b.n:], p)
	b.n += len(p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (b *Builder[A]) WriteString(s string) (int, error) {
	return b.Write(stringBytes(s))
}

// WriteByte implements io.ByteWriter.
func (b *Builder[A]) WriteByte(c byte) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.buf.unsafeBytes()[b.n] = c
	b.n++
	return nil
}

// WriteRune appends the UTF-8 encoding of r. Values that are not valid
// Unicode scalars are replaced by the replacement character U+FFFD, the
// same substitution the standard string builder performs.
func (b *Builder[A]) WriteRune(r rune) (int, error) {
	buf, n := encodeRune(r)
	if n == 0 {
		buf, n = encodeRune(utf8.RuneError)
	}
	return b.Write(buf[:n])
}

// Len returns the number of bytes written so far.
func (b *Builder[A]) Len() int {
	return b.n
}

// Cap returns the target capacity.
func (b *Builder[A]) Cap() int {
	return size[A]()
}

// Err returns the error that put the builder into the failed state, or nil.
func (b *Builder[A]) Err() error {
	return b.err
}

// Reset returns the builder to the empty state, clearing any failure.
func (b *Builder[A]) Reset() {
	b.buf = Text[A]{}
	b.n = 0
	b.err = nil
}

// Finalize returns the completed Text value. It fails with the pending
// write error if a write overran the capacity, with a *LengthError if fewer
// bytes than the capacity were written, or with a *UTF8Error if byte-level
// writes left the buffer invalid (byte and chunked writes can individually
// split characters, so validity is established once here rather than per
// write). On success the builder may be reused after Reset.
func (b *Builder[A]) Finalize() (Text[A], error) {
	if b.err != nil {
		return Text[A]{}, b.err
	}
	if b.n != size[A]() {
		return Text[A]{}, &LengthError{Want: size[A](), Got: b.n}
	}
	if err := validate(b.buf.unsafeBytes()); err != nil {
		return Text[A]{}, err
	}
	return b.buf, nil
}
