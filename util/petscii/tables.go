/*
 * PETSCII - Character mapping tables.
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

// Shift mode of a PETSCII character set.
type Mode int

const (
	// Unshifted is the power-on character set: uppercase letters and
	// graphics. Every conversion starts in this mode.
	Unshifted Mode = iota
	// Shifted is the lowercase/uppercase character set selected by the
	// shift-out control code.
	Shifted
)

func (m Mode) String() string {
	if m == Shifted {
		return "shifted"
	}
	return "unshifted"
}

// Shift control codes. These never map to a character; the codec consumes
// them to switch between the two character sets.
const (
	ShiftOut byte = 0x0E // switch to the shifted (lowercase) set
	ShiftIn  byte = 0x8E // switch back to the unshifted (graphics) set
)

// Table holds the bidirectional mapping between 8-bit PETSCII codes and
// Unicode for both shift modes. A zero entry in a forward table means the
// code has no printable mapping in that mode (control codes and the two
// shift codes). Tables are immutable once built and safe for concurrent use.
type Table struct {
	forward [2][256]rune
	reverse map[rune]charCode
}

// A PETSCII code plus the shift mode it is valid in.
type charCode struct {
	code byte
	mode Mode
}

/* Character mapping notes:
 *
 * PETSCII is based on 1963 ASCII. Codes 0x20-0x3f match ASCII. In the
 * unshifted set 0x41-0x5a are uppercase letters and 0x61-0x7a along with
 * 0xa1-0xbf are graphics. The shifted set moves lowercase into 0x41-0x5a
 * and uppercase into 0x61-0x7a. Codes 0xc0-0xdf display the same glyphs
 * as 0x60-0x7f, 0xe0-0xfe the same as 0xa0-0xbe, and 0xff the same as
 * 0x7e. The mirror regions and the shifted set's inherited glyphs are
 * filled in at init, the same way the reverse table is derived.
 *
 * Semigraphic characters use Unicode box drawing, block element, and
 * Legacy Computing (Unicode 13) code points.
 */

var unshiftedRunes = [256]rune{
	/* 0x00 - 0x1f control codes, no printable mapping */
	0x20: ' ', 0x21: '!', 0x22: '"', 0x23: '#',
	0x24: '$', 0x25: '%', 0x26: '&', 0x27: '\'',
	0x28: '(', 0x29: ')', 0x2a: '*', 0x2b: '+',
	0x2c: ',', 0x2d: '-', 0x2e: '.', 0x2f: '/',
	0x30: '0', 0x31: '1', 0x32: '2', 0x33: '3',
	0x34: '4', 0x35: '5', 0x36: '6', 0x37: '7',
	0x38: '8', 0x39: '9', 0x3a: ':', 0x3b: ';',
	0x3c: '<', 0x3d: '=', 0x3e: '>', 0x3f: '?',
	0x40: '@', 0x41: 'A', 0x42: 'B', 0x43: 'C',
	0x44: 'D', 0x45: 'E', 0x46: 'F', 0x47: 'G',
	0x48: 'H', 0x49: 'I', 0x4a: 'J', 0x4b: 'K',
	0x4c: 'L', 0x4d: 'M', 0x4e: 'N', 0x4f: 'O',
	0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S',
	0x54: 'T', 0x55: 'U', 0x56: 'V', 0x57: 'W',
	0x58: 'X', 0x59: 'Y', 0x5a: 'Z', 0x5b: '[',
	0x5c: '£', 0x5d: ']', 0x5e: '↑', 0x5f: '←',
	/* Graphics */
	0x60: '─', 0x61: '♠', 0x62: '│', 0x63: '─',
	0x64: '\U0001FB77', 0x65: '\U0001FB76', 0x66: '\U0001FB7A', 0x67: '\U0001FB71',
	0x68: '\U0001FB74', 0x69: '╮', 0x6a: '╰', 0x6b: '╯',
	0x6c: '\U0001FB7C', 0x6d: '╲', 0x6e: '╱', 0x6f: '\U0001FB7D',
	0x70: '\U0001FB7E', 0x71: '●', 0x72: '\U0001FB7B', 0x73: '♥',
	0x74: '\U0001FB70', 0x75: '╭', 0x76: '╳', 0x77: '○',
	0x78: '♣', 0x79: '\U0001FB75', 0x7a: '♦', 0x7b: '┼',
	0x7c: '\U0001FB8C', 0x7d: '│', 0x7e: 'π', 0x7f: '◥',
	/* 0x80 - 0x9f control codes, no printable mapping */
	0xa0: ' ', 0xa1: '▌', 0xa2: '▄', 0xa3: '▔',
	0xa4: '▁', 0xa5: '▏', 0xa6: '▒', 0xa7: '▕',
	0xa8: '\U0001FB8F', 0xa9: '◤', 0xaa: '\U0001FB87', 0xab: '├',
	0xac: '▗', 0xad: '└', 0xae: '┐', 0xaf: '▂',
	0xb0: '┌', 0xb1: '┴', 0xb2: '┬', 0xb3: '┤',
	0xb4: '▎', 0xb5: '▍', 0xb6: '\U0001FB88', 0xb7: '\U0001FB82',
	0xb8: '\U0001FB83', 0xb9: '▃', 0xba: '\U0001FB7F', 0xbb: '▖',
	0xbc: '▝', 0xbd: '┘', 0xbe: '▘', 0xbf: '▚',
	/* 0xc0 - 0xff filled from the mirror regions at init */
}

// Only the codes where the shifted set differs from the unshifted set are
// listed. The rest is inherited at init.
var shiftedRunes = [256]rune{
	0x41: 'a', 0x42: 'b', 0x43: 'c', 0x44: 'd',
	0x45: 'e', 0x46: 'f', 0x47: 'g', 0x48: 'h',
	0x49: 'i', 0x4a: 'j', 0x4b: 'k', 0x4c: 'l',
	0x4d: 'm', 0x4e: 'n', 0x4f: 'o', 0x50: 'p',
	0x51: 'q', 0x52: 'r', 0x53: 's', 0x54: 't',
	0x55: 'u', 0x56: 'v', 0x57: 'w', 0x58: 'x',
	0x59: 'y', 0x5a: 'z',
	0x61: 'A', 0x62: 'B', 0x63: 'C', 0x64: 'D',
	0x65: 'E', 0x66: 'F', 0x67: 'G', 0x68: 'H',
	0x69: 'I', 0x6a: 'J', 0x6b: 'K', 0x6c: 'L',
	0x6d: 'M', 0x6e: 'N', 0x6f: 'O', 0x70: 'P',
	0x71: 'Q', 0x72: 'R', 0x73: 'S', 0x74: 'T',
	0x75: 'U', 0x76: 'V', 0x77: 'W', 0x78: 'X',
	0x79: 'Y', 0x7a: 'Z',
	/* The lowercase font drops pi and two triangles for fill patterns
	   and turns one corner piece into a check mark. */
	0x7e: '\U0001FB95', 0x7f: '\U0001FB98',
	0xa9: '\U0001FB99', 0xba: '✓',
}

var defTable = buildDefaultTable()

// Fill in the mirror regions and the shifted set, then derive the reverse
// tables. Runs once at program start.
func buildDefaultTable() *Table {
	for i := 0x20; i < 0xc0; i++ {
		if shiftedRunes[i] == 0 {
			shiftedRunes[i] = unshiftedRunes[i]
		}
	}
	completeMirror(&unshiftedRunes)
	completeMirror(&shiftedRunes)
	return NewTable(unshiftedRunes, shiftedRunes)
}

// Fill in the regions that display the same glyphs as 0x60-0x7f and
// 0xa0-0xbe.
func completeMirror(table *[256]rune) {
	for i := 0xc0; i < 0xe0; i++ {
		table[i] = table[i-0x60]
	}
	for i := 0xe0; i < 0xff; i++ {
		table[i] = table[i-0x40]
	}
	table[0xff] = table[0x7e]
}

// NewTable builds a mapping table from two forward tables, one per shift
// mode. A zero entry marks a code with no printable mapping. The reverse
// table is derived from the forward tables; when a rune is reachable from
// more than one code the unshifted set wins over the shifted set and the
// lowest code wins within a set, so encoding prefers codes that need no
// shift change.
func NewTable(unshifted [256]rune, shifted [256]rune) *Table {
	table := new(Table)
	table.forward[Unshifted] = unshifted
	table.forward[Shifted] = shifted
	table.reverse = make(map[rune]charCode)
	for _, mode := range []Mode{Unshifted, Shifted} {
		for i, r := range table.forward[mode] {
			if r == 0 {
				continue
			}
			if _, ok := table.reverse[r]; !ok {
				table.reverse[r] = charCode{code: byte(i), mode: mode}
			}
		}
	}
	return table
}

// DefaultTable returns the standard Commodore 64 mapping table.
func DefaultTable() *Table {
	return defTable
}

// Rune returns the Unicode mapping of a PETSCII code under the given shift
// mode. ok is false for control codes and codes with no printable mapping.
func (table *Table) Rune(code byte, mode Mode) (rune, bool) {
	r := table.forward[mode][code]
	if r == 0 {
		return 0, false
	}
	return r, true
}

// Code returns the PETSCII code and shift mode that decode to the given
// rune. ok is false if the rune has no PETSCII representation in either
// mode.
func (table *Table) Code(r rune) (byte, Mode, bool) {
	enc, ok := table.reverse[r]
	if !ok {
		return 0, Unshifted, false
	}
	return enc.code, enc.mode, true
}

// Runes returns a copy of the forward table for one shift mode. Used to
// build modified tables from the default one.
func (table *Table) Runes(mode Mode) [256]rune {
	return table.forward[mode]
}
