/*
 * PETSCII - Conversion error types.
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

import "fmt"

// LengthError is returned when raw input does not match the declared
// fixed length of a string.
type LengthError struct {
	Got  int // length of the supplied bytes
	Want int // declared fixed length
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("petscii: length mismatch: got %d bytes, want %d", e.Got, e.Want)
}

// UnmappableCharError is returned by Encode when a rune has no PETSCII
// representation in either shift mode.
type UnmappableCharError struct {
	Rune   rune // the offending rune
	Offset int  // rune offset in the input text
}

func (e *UnmappableCharError) Error() string {
	return fmt.Sprintf("petscii: no PETSCII encoding for %q at offset %d", e.Rune, e.Offset)
}

// LengthExceededError is returned when encoded output, including any shift
// control bytes, does not fit the target length.
type LengthExceededError struct {
	Need int // bytes the encoding requires
	Size int // fixed length of the target string
}

func (e *LengthExceededError) Error() string {
	return fmt.Sprintf("petscii: encoded length %d exceeds fixed length %d", e.Need, e.Size)
}
