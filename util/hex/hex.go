/*
 * PETSCII - Convert hex to strings.
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

package hex

import (
	"fmt"
	"strings"
)

var hexMap = "0123456789ABCDEF"

// FormatByte appends a byte as two hex digits.
func FormatByte(str *strings.Builder, data byte) {
	str.WriteByte(hexMap[(data>>4)&0xf])
	str.WriteByte(hexMap[data&0xf])
}

// FormatBytes appends bytes as pairs of hex digits, with an optional space
// between each byte.
func FormatBytes(str *strings.Builder, space bool, data []uint8) {
	for _, by := range data {
		str.WriteByte(hexMap[(by>>4)&0xf])
		str.WriteByte(hexMap[by&0xf])
		if space {
			str.WriteByte(' ')
		}
	}
}

// FormatOffset appends a 4 digit hex offset followed by a colon.
func FormatOffset(str *strings.Builder, offset int) {
	shift := 12
	for i := 0; i < 4; i++ {
		str.WriteByte(hexMap[(offset>>shift)&0xf])
		shift -= 4
	}
	str.WriteByte(':')
}

// ParseBytes converts a string of hex digits to bytes. Spaces between
// digit pairs are ignored, so both "4142" and "41 42" are accepted. An
// odd number of digits or a non hex character is an error.
func ParseBytes(text string) ([]byte, error) {
	data := []byte{}
	digits := 0
	value := byte(0)
	for _, ch := range text {
		if ch == ' ' || ch == '\t' {
			if digits != 0 {
				return nil, fmt.Errorf("hex: split byte in %q", text)
			}
			continue
		}
		nibble := strings.IndexRune(hexMap, ch)
		if nibble < 0 && ch >= 'a' && ch <= 'f' {
			nibble = strings.IndexRune(hexMap, ch-0x20)
		}
		if nibble < 0 {
			return nil, fmt.Errorf("hex: bad digit %q", ch)
		}
		value = (value << 4) | byte(nibble)
		digits++
		if digits == 2 {
			data = append(data, value)
			value = 0
			digits = 0
		}
	}
	if digits != 0 {
		return nil, fmt.Errorf("hex: odd number of digits in %q", text)
	}
	return data, nil
}
