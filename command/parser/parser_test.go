/*
 * PETSCII - Console command parser test cases.
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

package parser

import (
	"slices"
	"testing"

	"github.com/rcornwell/petscii/util/petscii"
)

// Check the commands that should run without error.
func TestProcessCommand(t *testing.T) {
	codec := petscii.NewCodec()
	tests := []string{
		"decode 41 42 43",
		"decode 0e414243",
		"encode 8 HELLO",
		"dump 48 45 4c 4c 4f",
		"screen 41 61 ff",
		"help",
		"DECODE 41", // case folds
		"",          // blank line is ignored
	}
	for _, line := range tests {
		done, err := ProcessCommand(line, codec)
		if err != nil {
			t.Errorf("ProcessCommand(%q) failed: %v", line, err)
		}
		if done {
			t.Errorf("ProcessCommand(%q) asked to stop", line)
		}
	}
}

// Check that quit and exit stop the console.
func TestProcessCommandQuit(t *testing.T) {
	codec := petscii.NewCodec()
	for _, line := range []string{"quit", "exit", "QUIT"} {
		done, err := ProcessCommand(line, codec)
		if err != nil {
			t.Errorf("ProcessCommand(%q) failed: %v", line, err)
		}
		if !done {
			t.Errorf("ProcessCommand(%q) did not stop", line)
		}
	}
}

// Check rejection of bad commands and bad arguments.
func TestProcessCommandErrors(t *testing.T) {
	codec := petscii.NewCodec()
	tests := []string{
		"bogus",
		"decode",          // no bytes
		"decode 4",        // split byte
		"decode zz",       // not hex
		"encode HELLO",    // missing size
		"encode x HELLO",  // bad size
		"encode 0 HELLO",  // bad size
		"encode 2 HELLO",  // does not fit
		"encode 4 \\oops", // unmappable rune
		"screen",
	}
	for _, line := range tests {
		done, err := ProcessCommand(line, codec)
		if err == nil {
			t.Errorf("ProcessCommand(%q) succeeded, want error", line)
		}
		if done {
			t.Errorf("ProcessCommand(%q) asked to stop", line)
		}
	}
}

// Check command name completion.
func TestCompleteCmd(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"d", []string{"decode", "dump"}},
		{"de", []string{"decode"}},
		{"E", []string{"encode", "exit"}},
		{"quit", []string{"quit"}},
		{"z", []string{}},
	}
	for _, tt := range tests {
		got := CompleteCmd(tt.line)
		if !slices.Equal(got, tt.want) {
			t.Errorf("CompleteCmd(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
