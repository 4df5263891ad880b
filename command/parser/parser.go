/*
 * PETSCII - Console command parser.
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
	"fmt"
	"strconv"
	"strings"

	"github.com/rcornwell/petscii/util/hex"
	"github.com/rcornwell/petscii/util/petscii"
)

// Console command. Process gets the text after the command name.
type command struct {
	name    string
	help    string
	process func(codec *petscii.Codec, args string) error
}

var commands []command

// Populated in init so cmdHelp can refer to commands without an
// initialization cycle.
func init() {
	commands = []command{
		{"decode", "decode <hex bytes>     convert raw PETSCII to text", cmdDecode},
		{"encode", "encode <size> <text>   convert text to raw PETSCII", cmdEncode},
		{"dump", "dump <hex bytes>       hex and glyph dump of raw bytes", cmdDump},
		{"screen", "screen <hex bytes>     show screen codes of raw PETSCII", cmdScreen},
		{"help", "help                   list commands", cmdHelp},
		{"quit", "quit                   leave the console", nil},
		{"exit", "exit                   leave the console", nil},
	}
}

// ProcessCommand runs one console command line. It returns true when the
// console should stop.
func ProcessCommand(line string, codec *petscii.Codec) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	name, args, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if cmd.process == nil {
			return true, nil
		}
		return false, cmd.process(codec, strings.TrimSpace(args))
	}
	return false, fmt.Errorf("unknown command: %s", name)
}

// CompleteCmd returns the commands that start with the given prefix.
func CompleteCmd(line string) []string {
	matches := []string{}
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.name, strings.ToLower(line)) {
			matches = append(matches, cmd.name)
		}
	}
	return matches
}

// Convert hex arguments to a fixed-length string of their own size.
func parseRaw(args string) (petscii.String, error) {
	data, err := hex.ParseBytes(args)
	if err != nil {
		return petscii.String{}, err
	}
	if len(data) == 0 {
		return petscii.String{}, fmt.Errorf("no bytes given")
	}
	return petscii.New(data, len(data))
}

func cmdDecode(codec *petscii.Codec, args string) error {
	s, err := parseRaw(args)
	if err != nil {
		return err
	}
	fmt.Println(codec.Decode(s))
	return nil
}

func cmdEncode(codec *petscii.Codec, args string) error {
	sizeArg, text, ok := strings.Cut(args, " ")
	if !ok {
		return fmt.Errorf("usage: encode <size> <text>")
	}
	size, err := strconv.Atoi(sizeArg)
	if err != nil || size <= 0 {
		return fmt.Errorf("bad size: %s", sizeArg)
	}
	s, err := codec.Encode(text, size, petscii.PolicyFail)
	if err != nil {
		return err
	}
	var out strings.Builder
	hex.FormatBytes(&out, true, s.Bytes())
	fmt.Println(strings.TrimRight(out.String(), " "))
	return nil
}

func cmdDump(_ *petscii.Codec, args string) error {
	s, err := parseRaw(args)
	if err != nil {
		return err
	}
	fmt.Print(petscii.Dump(s))
	return nil
}

func cmdScreen(_ *petscii.Codec, args string) error {
	s, err := parseRaw(args)
	if err != nil {
		return err
	}
	var out strings.Builder
	for i := 0; i < s.Size(); i++ {
		code, ok := petscii.ToScreen(s.At(i))
		if !ok {
			out.WriteString("-- ")
			continue
		}
		hex.FormatByte(&out, code)
		out.WriteByte(' ')
	}
	fmt.Println(strings.TrimRight(out.String(), " "))
	return nil
}

func cmdHelp(_ *petscii.Codec, _ string) error {
	for _, cmd := range commands {
		fmt.Println("  " + cmd.help)
	}
	return nil
}
