/*
 * PETSCII - Encode and decode fixed length strings.
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

package petscii

import (
	"strings"
	"unicode"
)

// Policy selects what Encode and NewPadded do when output does not fill
// the fixed length exactly.
type Policy int

const (
	// PolicyFail rejects output longer than the fixed length with a
	// LengthExceededError. Shorter output is extended with the fill byte.
	PolicyFail Policy = iota
	// PolicyPad behaves like PolicyFail for long output and extends
	// short output with the fill byte.
	PolicyPad
	// PolicyTruncate cuts output at the fixed length and extends short
	// output with the fill byte. Data past the limit is dropped.
	PolicyTruncate
)

// DefaultFill is the PETSCII space, the conventional filler in C64
// directory entries and headers.
const DefaultFill byte = 0x20

// Codec converts between fixed-length PETSCII strings and Unicode text
// using one mapping table. The zero value is not usable; call NewCodec.
// A Codec holds no conversion state: shift tracking lives on the stack of
// each call, so every string converts independently and a Codec is safe
// for concurrent use.
type Codec struct {
	table *Table
	fill  byte
}

// NewCodec returns a codec using the default C64 table and space fill.
func NewCodec() *Codec {
	return &Codec{table: DefaultTable(), fill: DefaultFill}
}

// SetTable replaces the mapping table, for custom character maps.
func (codec *Codec) SetTable(table *Table) {
	codec.table = table
}

// SetFill replaces the fill byte used when encoded output is shorter than
// the fixed length.
func (codec *Codec) SetFill(fill byte) {
	codec.fill = fill
}

// Decode converts a fixed-length string to Unicode text. Decoding is
// total: every byte either switches the shift mode (0x0e, 0x8e, no
// output), maps to a character under the mode in effect, or produces
// U+FFFD if it has no printable mapping. The shift mode starts unshifted
// on every call and a string that ends mid-shift is valid; the final mode
// is discarded.
func (codec *Codec) Decode(s String) string {
	var text strings.Builder

	mode := Unshifted
	for _, code := range s.data {
		switch code {
		case ShiftOut:
			mode = Shifted
		case ShiftIn:
			mode = Unshifted
		default:
			r, ok := codec.table.Rune(code, mode)
			if !ok {
				r = unicode.ReplacementChar
			}
			text.WriteRune(r)
		}
	}
	return text.String()
}

// Encode converts Unicode text to a fixed-length PETSCII string. A shift
// control byte is emitted whenever the next character lives in the other
// character set, mirroring the decode side, so the output always decodes
// back to the input text. Runes with no PETSCII representation in either
// mode are rejected with an UnmappableCharError. The policy decides what
// happens when the encoding, including shift bytes, does not fit size.
func (codec *Codec) Encode(text string, size int, policy Policy) (String, error) {
	out := make([]byte, 0, size)

	mode := Unshifted
	pos := 0
	for _, r := range text {
		code, m, ok := codec.table.Code(r)
		if !ok {
			return String{}, &UnmappableCharError{Rune: r, Offset: pos}
		}
		if m != mode {
			if m == Shifted {
				out = append(out, ShiftOut)
			} else {
				out = append(out, ShiftIn)
			}
			mode = m
		}
		out = append(out, code)
		pos++
	}
	return NewPadded(out, size, codec.fill, policy)
}

// Decode converts a fixed-length string to Unicode text using the default
// C64 table.
func Decode(s String) string {
	return defCodec.Decode(s)
}

// Encode converts Unicode text to a fixed-length PETSCII string using the
// default C64 table and space fill.
func Encode(text string, size int, policy Policy) (String, error) {
	return defCodec.Encode(text, size, policy)
}

var defCodec = &Codec{table: defTable, fill: DefaultFill}
