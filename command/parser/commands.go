/*
 * tostr - Console commands.
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
	"errors"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/shlex"

	command "github.com/rcornwell/tostr/command/command"
	config "github.com/rcornwell/tostr/config/configparser"
)

var cmdList = []cmd{
	{Name: "render", Min: 1, Process: render, Complete: kindComplete},
	{Name: "load", Min: 2, Process: load},
	{Name: "list", Min: 2, Process: list},
	{Name: "help", Min: 1, Process: help},
	{Name: "quit", Min: 4, Process: quit},
	{Name: "exit", Min: 4, Process: quit},
}

// Handle render command.
func render(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Render")

	kind := line.getWord()
	if kind == "" {
		return false, errors.New("render requires a field kind")
	}
	return false, renderKind(kind, line.rest(), session)
}

// Render value and options given in args as kind.
func renderKind(kind string, args string, session *command.Session) error {
	words, err := shlex.Split(args)
	if err != nil {
		return err
	}
	return RenderArgs(append([]string{kind}, words...), session)
}

// Render kind, value and options already split into words.
func RenderArgs(words []string, session *command.Session) error {
	if len(words) == 0 {
		return errors.New("no field kind given")
	}
	kind := strings.ToLower(words[0])
	if len(words) == 1 {
		return errors.New("field " + kind + " requires a value")
	}

	options, err := getOptions(words[2:])
	if err != nil {
		return err
	}

	text, err := config.Render(session.Scope(), kind, words[1], options)
	if err != nil {
		return err
	}
	return session.Show([]config.Field{{Kind: kind, Value: words[1], Text: text}})
}

// Convert name[=value][,value...] words to options. A lone ',' after
// the '=' is taken as the value.
func getOptions(words []string) ([]config.Option, error) {
	options := []config.Option{}
	for _, word := range words {
		values := []string{word}
		if !strings.HasSuffix(word, "=,") || strings.Count(word, ",") != 1 {
			values = strings.Split(word, ",")
		}
		name, equal, _ := strings.Cut(values[0], "=")
		if name == "" || !unicode.IsLetter(rune(name[0])) {
			return nil, errors.New("invalid option: " + word)
		}
		option := config.Option{Name: strings.ToLower(name), EqualOpt: equal}
		for _, v := range values[1:] {
			if v != "" {
				option.Value = append(option.Value, &v)
			}
		}
		options = append(options, option)
	}
	return options, nil
}

// Handle load command.
func load(line *cmdLine, session *command.Session) (bool, error) {
	slog.Debug("Command Load")

	name, ok := line.parseQuoteString()
	if !ok || name == "" {
		return false, errors.New("load requires a file name")
	}
	line.skipSpace()
	if !line.isEOL() {
		return false, errors.New("load takes only a file name")
	}

	fields, err := config.LoadFile(name)
	if err != nil {
		return false, err
	}
	return false, session.Show(fields)
}

// Handle list command.
func list(line *cmdLine, session *command.Session) (bool, error) {
	line.skipSpace()
	if !line.isEOL() {
		return false, errors.New("list takes no arguments")
	}
	for _, kind := range config.Kinds() {
		session.Printf("%s\n", kind)
	}
	return false, nil
}

// Handle help command.
func help(_ *cmdLine, session *command.Session) (bool, error) {
	session.Printf("render <kind> <value> [option[=value]...]  Render one field\n")
	session.Printf("<kind> <value> [option[=value]...]         Same as render\n")
	session.Printf("load <file>                                Render every field in a script\n")
	session.Printf("list                                       Show field kinds\n")
	session.Printf("quit                                       Leave console\n")
	return false, nil
}

// Handle quit command.
func quit(_ *cmdLine, _ *command.Session) (bool, error) {
	return true, nil
}
