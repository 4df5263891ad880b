/*
 * PETSCII - Debug dump test cases.
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
	"testing"
)

// Check the exact dump format for a short record.
func TestDumpFormat(t *testing.T) {
	s := mustString(t, []byte{0x41, 0x42, 0x43, 0x44, 0x8e})
	want := "0000: 41 42 43 44 8E" + strings.Repeat(" ", 35) + "ABCD.\n"
	if got := Dump(s); got != want {
		t.Errorf("Dump = %q, want %q", got, want)
	}
}

// Check that long records break into 16 byte lines.
func TestDumpLines(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = 0x41
	}
	got := Dump(mustString(t, data))
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Dump produced %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0010:") || !strings.HasPrefix(lines[2], "0020:") {
		t.Errorf("Dump offsets wrong: %q, %q", lines[1], lines[2])
	}
	if !strings.HasSuffix(lines[2], "AAAAAAAA") {
		t.Errorf("Dump last line glyphs wrong: %q", lines[2])
	}
}

// Check that the dump is pure and total: equal strings dump the same and
// every byte value renders without error.
func TestDumpPure(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	a := mustString(t, data)
	b := mustString(t, data)
	first := Dump(a)
	if first != Dump(b) {
		t.Error("Dump of equal strings differs")
	}
	if first != Dump(a) {
		t.Error("Dump of the same string differs between calls")
	}
	if len(strings.Split(strings.TrimRight(first, "\n"), "\n")) != 16 {
		t.Error("Dump of 256 bytes not 16 lines")
	}
	// Control bytes, shift codes included, render as placeholders.
	for _, line := range strings.Split(first, "\n")[:2] {
		if !strings.HasSuffix(line, strings.Repeat(".", 16)) {
			t.Errorf("control line %q does not end in placeholders", line)
		}
	}
}

// Check that the dump ignores shift codes: it is not a decode.
func TestDumpModeAgnostic(t *testing.T) {
	got := Dump(mustString(t, []byte{ShiftOut, 0x41}))
	if !strings.HasSuffix(got, ".A\n") {
		t.Errorf("Dump after shift-out = %q, want uppercase reference glyph", got)
	}
}
