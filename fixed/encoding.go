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

// UTF-8 encoding constants. The leading byte of a sequence carries a tag
// identifying the sequence length (0xxxxxxx, 110xxxxx, 1110xxxx, 11110xxx
// for 1 to 4 bytes); every continuation byte is tagged 10xxxxxx.
const (
	tagCont  = 0b1000_0000
	tag2     = 0b1100_0000
	tag3     = 0b1110_0000
	tag4     = 0b1111_0000
	maskCont = 0b0011_1111

	max1 = 1<<7 - 1
	max2 = 1<<11 - 1
	max3 = 1<<16 - 1

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// encodeRune writes the UTF-8 encoding of r into a fixed four-byte buffer
// and returns it together with the encoded length. It returns a length of
// zero for surrogate halves and values outside the Unicode codespace.
//
// This is the only place encoding logic lives; Repeat and Builder.WriteRune
// both route through it. It is a pure computation over a fixed-size array,
// deliberately independent of the string runtime.
func encodeRune(r rune) (buf [4]byte, n int) {
	switch {
	case r < 0:
		return buf, 0
	case r <= max1:
		buf[0] = byte(r)
		return buf, 1
	case r <= max2:
		buf[0] = tag2 | byte(r>>6)
		buf[1] = tagCont | byte(r)&maskCont
		return buf, 2
	case surrogateMin <= r && r <= surrogateMax:
		return buf, 0
	case r <= max3:
		buf[0] = tag3 | byte(r>>12)
		buf[1] = tagCont | byte(r>>6)&maskCont
		buf[2] = tagCont | byte(r)&maskCont
		return buf, 3
	case r <= utf8.MaxRune:
		buf[0] = tag4 | byte(r>>18)
		buf[1] = tagCont | byte(r>>12)&maskCont
		buf[2] = tagCont | byte(r>>6)&maskCont
		buf[3] = tagCont | byte(r)&maskCont
		return buf, 4
	default:
		return buf, 0
	}
}

// validate scans b and returns nil if it is entirely valid UTF-8, otherwise
// a UTF8Error locating the first invalid sequence. Unlike utf8.Valid, the
// error carries the offset and leading byte, which the fallible
// constructors surface to their callers.
func validate(b []byte) *UTF8Error {
	for i := 0; i < len(b); {
		if b[i] < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return &UTF8Error{Offset: i, Byte: b[i]}
		}
		i += size
	}
	return nil
}

// boundary reports whether position i in s falls on a rune boundary. The
// start and end of the string are boundaries; any other position is one
// exactly when it does not point at a continuation byte.
func boundary(s string, i int) bool {
	if i == 0 || i == len(s) {
		return true
	}
	return s[i]&0b1100_0000 != tagCont
}
