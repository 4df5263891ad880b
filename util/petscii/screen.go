/*
 * PETSCII - Screen code conversion.
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

/* Screen codes are the values the C64 video chip reads from the screen
 * matrix. They order the glyphs differently from PETSCII: the character
 * ROM holds 128 glyphs per set and bit 7 selects reverse video. The
 * mapping between PETSCII and screen codes is a fixed rearrangement of
 * 32-code blocks, so it is computed rather than held in a table. Set 1
 * is the unshifted (uppercase/graphics) font, set 2 the shifted
 * (lowercase) font.
 */

// ToScreen converts a PETSCII code to its screen code. ok is false for
// control codes, which have no place in the screen matrix.
func ToScreen(code byte) (byte, bool) {
	switch {
	case code < 0x20: // control
		return 0, false
	case code < 0x40:
		return code, true
	case code < 0x60:
		return code - 0x40, true
	case code < 0x80:
		return code - 0x20, true
	case code < 0xa0: // control
		return 0, false
	case code < 0xc0:
		return code - 0x40, true
	case code < 0xff:
		return code - 0x80, true
	default: // pi
		return 0x5e, true
	}
}

// FromScreen converts a screen code back to a PETSCII code. Codes with
// bit 7 set are reverse video; the glyph is the same, so the bit is
// ignored. Where several PETSCII codes share the screen code the lowest
// one is returned.
func FromScreen(code byte) byte {
	code &= 0x7f
	switch {
	case code < 0x20:
		return code + 0x40
	case code < 0x40:
		return code
	case code < 0x60:
		return code + 0x20
	default:
		return code + 0x40
	}
}

// ScreenRune returns the Unicode mapping of a screen code under the font
// selected by mode. ok is false if the glyph has no Unicode mapping.
func ScreenRune(code byte, mode Mode) (rune, bool) {
	return defTable.Rune(FromScreen(code), mode)
}
