/*
 * PETSCII - Custom character map loading.
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

// Package charmap loads character map overrides from JSON files. Machines
// in the PETSCII family differ in a handful of code points, so a map file
// only lists the codes that differ from the built-in C64 tables:
//
//	{
//	    "version": "1.0",
//	    "unshifted": { "92": 163, "94": 8593 },
//	    "shifted":   { "186": 10003 }
//	}
//
// Keys are decimal PETSCII codes, values decimal Unicode code points. A
// value of 0 removes the mapping for that code.
package charmap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rcornwell/petscii/util/petscii"
)

// File layout of a character map.
type mapFile struct {
	Version   string            `json:"version"`
	Unshifted map[string]uint32 `json:"unshifted"`
	Shifted   map[string]uint32 `json:"shifted"`
}

// Load reads a character map file and returns the built-in table with the
// file's overrides applied.
func Load(fileName string) (*petscii.Table, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	table, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return table, nil
}

// Parse reads character map overrides and returns the built-in table with
// them applied.
func Parse(r io.Reader) (*petscii.Table, error) {
	var cm mapFile

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cm); err != nil {
		return nil, fmt.Errorf("charmap: %w", err)
	}

	unshifted := petscii.DefaultTable().Runes(petscii.Unshifted)
	shifted := petscii.DefaultTable().Runes(petscii.Shifted)
	if err := apply(&unshifted, cm.Unshifted); err != nil {
		return nil, fmt.Errorf("charmap: unshifted: %w", err)
	}
	if err := apply(&shifted, cm.Shifted); err != nil {
		return nil, fmt.Errorf("charmap: shifted: %w", err)
	}
	return petscii.NewTable(unshifted, shifted), nil
}

// Apply one mode's overrides to a forward table.
func apply(table *[256]rune, overrides map[string]uint32) error {
	for key, value := range overrides {
		code, err := strconv.ParseUint(key, 10, 8)
		if err != nil {
			return fmt.Errorf("bad code %q", key)
		}
		if value > 0x10ffff {
			return fmt.Errorf("bad code point %d for code %s", value, key)
		}
		table[code] = rune(value)
	}
	return nil
}
