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

// UTF8Error is returned when input bytes do not form valid UTF-8. It
// reports the position of the first invalid sequence so callers can locate
// the offending data.
type UTF8Error struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
	// Byte is the leading byte of that sequence.
	Byte byte
}

// Error formats the error with the offset and leading byte of the first
// invalid sequence.
func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d (0x%02X)", e.Offset, e.Byte)
}

// LengthError is returned when the length of a runtime input does not match
// the capacity required by the instantiated text type, or when a Builder is
// finalized before it has been completely filled.
type LengthError struct {
	// Want is the required byte length.
	Want int
	// Got is the length that was actually supplied or written.
	Got int
}

// Error formats the error with the required and actual byte lengths.
func (e *LengthError) Error() string {
	return fmt.Sprintf("length mismatch: need exactly %d bytes, got %d", e.Want, e.Got)
}

// CapacityError is returned by Builder writes that would overrun the target
// capacity. Once a write fails this way, the builder stays in the failed
// state and rejects further writes with the same error.
type CapacityError struct {
	// Cap is the builder's target capacity.
	Cap int
	// Len is the number of bytes written before the failing write.
	Len int
	// N is the size of the write that did not fit.
	N int
}

// Error formats the error with the capacity, the current fill level, and
// the size of the rejected write.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d bytes written, write of %d bytes does not fit in %d", e.Len, e.N, e.Cap)
}
