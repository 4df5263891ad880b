/*
 * PETSCII - Fixed length 8-bit strings.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package petscii converts fixed-length 8-bit PETSCII strings to and from
// Unicode text. PETSCII is the character set used by Commodore Business
// Machines' 8-bit computers. It is based on the 1963 version of ASCII and
// adds block graphics, geometric shapes and playing card suits. Strings
// are fixed length because the C64 file systems this package was written
// to help debug store names and labels in fixed-size fields.
package petscii

import "bytes"

// String is an immutable fixed-length sequence of raw PETSCII code units.
// The stored length is fixed at construction and never changes.
type String struct {
	data []byte
}

// New creates a String from raw bytes. The input length must equal size;
// anything else is rejected with a LengthError and no string is produced.
func New(data []byte, size int) (String, error) {
	if len(data) != size {
		return String{}, &LengthError{Got: len(data), Want: size}
	}
	buf := make([]byte, size)
	copy(buf, data)
	return String{data: buf}, nil
}

// NewPadded creates a String of the given size from input of any length.
// Short input is extended with the fill byte. Long input is cut at size
// under PolicyTruncate and rejected with a LengthExceededError under any
// other policy. Use New when the input is already the right size.
func NewPadded(data []byte, size int, fill byte, overflow Policy) (String, error) {
	if len(data) > size {
		if overflow != PolicyTruncate {
			return String{}, &LengthExceededError{Need: len(data), Size: size}
		}
		data = data[:size]
	}
	buf := make([]byte, size)
	copy(buf, data)
	for i := len(data); i < size; i++ {
		buf[i] = fill
	}
	return String{data: buf}, nil
}

// Size returns the fixed length of the string.
func (s String) Size() int {
	return len(s.data)
}

// Bytes returns a copy of the raw code units.
func (s String) Bytes() []byte {
	buf := make([]byte, len(s.data))
	copy(buf, s.data)
	return buf
}

// At returns the code unit at position i.
func (s String) At(i int) byte {
	return s.data[i]
}

// Equal reports whether two strings have the same size and bytes.
func (s String) Equal(o String) bool {
	return bytes.Equal(s.data, o.data)
}

// Compare orders two strings byte-wise, like bytes.Compare.
func (s String) Compare(o String) int {
	return bytes.Compare(s.data, o.data)
}

// String decodes the raw bytes with the default table, so fixed-length
// strings print as text.
func (s String) String() string {
	return Decode(s)
}
