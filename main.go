/*
 * PETSCII - Main process.
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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"
	reader "github.com/rcornwell/petscii/command/reader"
	charmap "github.com/rcornwell/petscii/config/charmap"
	logger "github.com/rcornwell/petscii/util/logger"
	petscii "github.com/rcornwell/petscii/util/petscii"
)

func main() {
	optEncode := getopt.BoolLong("encode", 'e', "Encode text from stdin to raw PETSCII")
	optSize := getopt.IntLong("size", 'n', 0, "Fixed record length, defaults to the input length")
	optFill := getopt.StringLong("fill", 'f', "20", "Fill byte in hex for short records")
	optPolicy := getopt.StringLong("policy", 'p', "fail", "Overflow policy: fail, pad or truncate")
	optMap := getopt.StringLong("map", 'm', "", "Custom character map file")
	optConsole := getopt.BoolLong("interactive", 'i', "Interactive console")
	optDump := getopt.StringLong("dump", 'D', "", "Write a debug dump of the record to a file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile io.Writer
	if *optLogFile != "" {
		file, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Can't open log file: "+err.Error())
			os.Exit(1)
		}
		defer file.Close()
		logFile = file
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	log := slog.New(logger.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel}, optDebug))
	slog.SetDefault(log)

	codec := petscii.NewCodec()
	if *optMap != "" {
		table, err := charmap.Load(*optMap)
		if err != nil {
			log.Error(err.Error())
			os.Exit(1)
		}
		codec.SetTable(table)
		log.Debug("Loaded character map " + *optMap)
	}

	fill, err := strconv.ParseUint(*optFill, 16, 8)
	if err != nil {
		log.Error("Bad fill byte: " + *optFill)
		os.Exit(1)
	}
	codec.SetFill(byte(fill))

	var policy petscii.Policy
	switch strings.ToLower(*optPolicy) {
	case "fail":
		policy = petscii.PolicyFail
	case "pad":
		policy = petscii.PolicyPad
	case "truncate":
		policy = petscii.PolicyTruncate
	default:
		log.Error("Bad policy: " + *optPolicy)
		os.Exit(1)
	}

	if *optConsole {
		reader.ConsoleReader(codec)
		return
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("Error reading stdin: " + err.Error())
		os.Exit(1)
	}

	if *optEncode {
		encode(codec, input, *optSize, policy, *optDump, log)
		return
	}
	decode(codec, input, *optSize, *optDump, log)
}

// Decode one raw record from stdin and write the text to stdout.
func decode(codec *petscii.Codec, input []byte, size int, dumpFile string, log *slog.Logger) {
	if size == 0 {
		size = len(input)
	}
	s, err := petscii.New(input, size)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	writeDump(s, dumpFile, log)
	fmt.Println(codec.Decode(s))
}

// Encode text from stdin and write the raw record to stdout.
func encode(codec *petscii.Codec, input []byte, size int, policy petscii.Policy, dumpFile string, log *slog.Logger) {
	text := strings.TrimRight(string(input), "\r\n")
	if size == 0 {
		log.Error("Encoding needs a record length, use -n")
		os.Exit(1)
	}
	s, err := codec.Encode(text, size, policy)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
	writeDump(s, dumpFile, log)
	if _, err := os.Stdout.Write(s.Bytes()); err != nil {
		log.Error("Error writing stdout: " + err.Error())
		os.Exit(1)
	}
}

// Write a debug dump of the record if a dump file was asked for.
func writeDump(s petscii.String, dumpFile string, log *slog.Logger) {
	if dumpFile == "" {
		return
	}
	if err := os.WriteFile(dumpFile, []byte(petscii.Dump(s)), 0644); err != nil {
		log.Error("Error writing dump: " + err.Error())
		os.Exit(1)
	}
}
