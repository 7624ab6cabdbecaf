/*
 * tostr - Console session state and output.
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

package command

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	config "github.com/rcornwell/tostr/config/configparser"
	"github.com/rcornwell/tostr/util/wmem"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Session holds where results go and the scope commands render into.
type Session struct {
	Out    io.Writer
	Format string
	arena  *wmem.Arena
}

// Create new session writing to out.
func NewSession(out io.Writer, format string) (*Session, error) {
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatYAML {
		return nil, errors.New("output format must be text or yaml: " + format)
	}
	return &Session{Out: out, Format: format, arena: wmem.NewArena(wmem.DefaultBlockSize)}, nil
}

// Scope for the current command.
func (s *Session) Scope() wmem.Scope {
	return s.arena
}

// Drop everything rendered by the last command.
func (s *Session) Release() {
	s.arena.Free()
}

// Show rendered fields.
func (s *Session) Show(fields []config.Field) error {
	if s.Format == FormatYAML {
		enc := yaml.NewEncoder(s.Out)
		enc.SetIndent(2)
		if err := enc.Encode(fields); err != nil {
			return err
		}
		return enc.Close()
	}
	for _, field := range fields {
		if _, err := fmt.Fprintln(s.Out, field.Text); err != nil {
			return err
		}
	}
	return nil
}

// Print message to session output.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}
