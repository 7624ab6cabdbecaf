/*
 * tostr - Main routine.
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

	getopt "github.com/pborman/getopt/v2"
	command "github.com/rcornwell/tostr/command/command"
	parser "github.com/rcornwell/tostr/command/parser"
	reader "github.com/rcornwell/tostr/command/reader"
	config "github.com/rcornwell/tostr/config/configparser"
	logger "github.com/rcornwell/tostr/util/logger"

	_ "github.com/rcornwell/tostr/fields"
)

func main() {
	optScript := getopt.StringLong("script", 's', "", "Field script to render")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optDebug := getopt.BoolLong("debug", 'd', "Log debug to console")
	optOutput := getopt.StringLong("output", 'o', command.FormatText, "Output format, text or yaml")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("[kind value [option[=value]...]]")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file io.Writer
	if *optLogFile != "" {
		f, err := os.Create(*optLogFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to create log file: "+err.Error())
			os.Exit(1)
		}
		defer f.Close()
		file = f
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger := slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, optDebug))
	slog.SetDefault(Logger)

	session, err := command.NewSession(os.Stdout, *optOutput)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	args := getopt.Args()
	switch {
	case *optScript != "":
		Logger.Debug("Rendering script", "file", *optScript)
		fields, err := config.LoadFile(*optScript)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		if err := session.Show(fields); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}

	case len(args) != 0:
		err := parser.RenderArgs(args, session)
		session.Release()
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}

	default:
		Logger.Info("tostr console started")
		reader.ConsoleReader(session)
	}
}
