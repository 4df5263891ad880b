/*
 * PETSCII - Debug dump of raw strings.
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

	"github.com/rcornwell/petscii/util/hex"
)

// Bytes shown per dump line.
const dumpWidth = 16

// Dump renders a fixed-length string for humans inspecting raw data. Each
// line shows a hex offset, up to 16 bytes in hex and the glyphs of those
// bytes under the unshifted table, with '.' standing in for control and
// unmapped bytes. The unshifted table is used as a fixed reference: Dump
// does not run the shift-state machine and is not a decode. It never
// fails for any byte value.
func Dump(s String) string {
	var out strings.Builder

	for base := 0; base < s.Size(); base += dumpWidth {
		row := s.data[base:min(base+dumpWidth, s.Size())]
		hex.FormatOffset(&out, base)
		out.WriteByte(' ')
		hex.FormatBytes(&out, true, row)
		for i := 0; i < dumpWidth-len(row); i++ {
			out.WriteString("   ")
		}
		out.WriteByte(' ')
		for _, code := range row {
			r, ok := defTable.Rune(code, Unshifted)
			if !ok {
				r = '.'
			}
			out.WriteRune(r)
		}
		out.WriteByte('\n')
	}
	return out.String()
}
