/*
 * PETSCII - Hex formatting test cases.
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
	"bytes"
	"strings"
	"testing"
)

// Check the formatting helpers.
func TestFormat(t *testing.T) {
	var str strings.Builder
	FormatByte(&str, 0x4a)
	if str.String() != "4A" {
		t.Errorf("FormatByte = %q, want 4A", str.String())
	}

	str.Reset()
	FormatBytes(&str, true, []byte{0x00, 0xff, 0x41})
	if str.String() != "00 FF 41 " {
		t.Errorf("FormatBytes = %q", str.String())
	}

	str.Reset()
	FormatBytes(&str, false, []byte{0x00, 0xff, 0x41})
	if str.String() != "00FF41" {
		t.Errorf("FormatBytes without spaces = %q", str.String())
	}

	str.Reset()
	FormatOffset(&str, 0x120)
	if str.String() != "0120:" {
		t.Errorf("FormatOffset = %q", str.String())
	}
}

// Check hex parsing of the accepted spellings.
func TestParseBytes(t *testing.T) {
	tests := []struct {
		text string
		want []byte
	}{
		{"4142", []byte{0x41, 0x42}},
		{"41 42", []byte{0x41, 0x42}},
		{"41\t42  0e", []byte{0x41, 0x42, 0x0e}},
		{"DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
		{"", []byte{}},
	}
	for _, tt := range tests {
		got, err := ParseBytes(tt.text)
		if err != nil {
			t.Errorf("ParseBytes(%q) failed: %v", tt.text, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ParseBytes(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	for _, text := range []string{"4", "414", "4g", "4 1", "0x41"} {
		if _, err := ParseBytes(text); err == nil {
			t.Errorf("ParseBytes(%q) succeeded, want error", text)
		}
	}
}
