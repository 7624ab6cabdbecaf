/*
 * tostr - Field script parser.
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

package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/rcornwell/tostr/util/wmem"
)

// List of options to pass to render routine.
type Option struct {
	Name     string    // Name of option.
	EqualOpt string    // Value of string after =.
	Value    []*string // Value of option.
}

// One rendered field.
type Field struct {
	Line  int    `yaml:"line"`
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
	Text  string `yaml:"text"`
}

// Current option line being parsed.
type optionLine struct {
	line   string // Current option line.
	pos    int    // Current position in line.
	number int    // Line number for errors.
}

/* Field script format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := <kind> <whitespace> <value> <whitespace> <options>
 * <kind> := <string>
 * <value> ::= <quoteopt>
 * <options> ::= *(<option> *(<whitespace>))
 * <option> ::= <name> ['=' <quoteopt>] *(<commaopt>)
 * <commaopt> ::= ',' *(<whitespace>) <string>
 * <quoteopt> ::= *(<char>) | '"' *(<char> | '""') '"'
 * <name> ::= <letter> *(<letter> | <number>)
 */

// Renderer turns the value of a field into text. The result may
// be allocated from scope.
type Renderer func(scope wmem.Scope, value string, options []Option) (string, error)

var renderers = map[string]Renderer{}

// Register should be called from init functions.
func RegisterField(kind string, fn Renderer) {
	kind = strings.ToLower(kind)
	if _, ok := renderers[kind]; ok {
		panic("field kind registered twice: " + kind)
	}
	renderers[kind] = fn
}

// Return true if kind has a renderer.
func IsField(kind string) bool {
	_, ok := renderers[strings.ToLower(kind)]
	return ok
}

// Return sorted list of registered kinds.
func Kinds() []string {
	kinds := make([]string, 0, len(renderers))
	for kind := range renderers {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Render value as kind.
func Render(scope wmem.Scope, kind string, value string, options []Option) (string, error) {
	kind = strings.ToLower(kind)
	fn, ok := renderers[kind]
	if !ok {
		return "", errors.New("Unknown field kind: " + kind)
	}
	slog.Debug("render", "kind", kind, "value", value, "options", len(options))
	return fn(scope, value, options)
}

// Find option by name.
func FindOption(options []Option, name string) (*Option, bool) {
	for i := range options {
		if strings.EqualFold(options[i].Name, name) {
			return &options[i], true
		}
	}
	return nil, false
}

// Return error for first option not in allowed.
func CheckOptions(kind string, options []Option, allowed ...string) error {
	for _, option := range options {
		found := false
		for _, name := range allowed {
			if strings.EqualFold(option.Name, name) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("option %s not valid for %s", option.Name, kind)
		}
	}
	return nil
}

// Parse and render one line. Returns nil for empty or comment lines.
func ParseLine(scope wmem.Scope, text string, number int) (*Field, error) {
	line := optionLine{line: text, number: number}
	return line.parseLine(scope)
}

// Load in a field script.
func LoadFile(name string) ([]Field, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// Load field script from reader.
func Load(input io.Reader) ([]Field, error) {
	arena := wmem.NewArena(wmem.DefaultBlockSize)
	defer arena.Free()

	fields := []Field{}
	lineNumber := 0
	reader := bufio.NewReader(input)
	for {
		var err error

		line := optionLine{}
		line.line, err = reader.ReadString('\n')
		lineNumber++
		line.number = lineNumber
		if len(line.line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		field, perr := line.parseLine(arena)
		if perr != nil {
			return nil, perr
		}
		if field != nil {
			// Results outlive the arena.
			field.Text = strings.Clone(field.Text)
			fields = append(fields, *field)
		}
		if err != nil {
			break
		}
	}
	slog.Debug("script loaded", "fields", len(fields), "arena", arena.Used(), "blocks", arena.Blocks())
	return fields, nil
}

// Parse one line from file.
func (line *optionLine) parseLine(scope wmem.Scope) (*Field, error) {
	kind := line.parseKind()
	if kind == "" {
		if !line.isEOL() {
			return nil, fmt.Errorf("Invalid field kind, line: %d", line.number)
		}
		return nil, nil
	}
	if !IsField(kind) {
		return nil, fmt.Errorf("No kind: %s registered, line: %d", kind, line.number)
	}

	value, err := line.parseValue()
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, fmt.Errorf("Field: %s not followed by value, line: %d", kind, line.number)
	}

	// Get any remaining options.
	options, err := line.parseOptions()
	if err != nil {
		return nil, err
	}

	text, err := Render(scope, kind, value, options)
	if err != nil {
		return nil, fmt.Errorf("Field: %s %s, line: %d", kind, err.Error(), line.number)
	}
	return &Field{Line: line.number, Kind: kind, Value: value, Text: text}, nil
}

// Skip forward over line until none whitespace character found.
func (line *optionLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}

	if line.line[line.pos] == '#' {
		return true
	}
	return false
}

// Return next letter or digit in line. 0 if EOL or space.
func (line *optionLine) getNext() byte {
	line.pos++
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
		return by
	}
	return 0
}

// Peek at next character.
func (line *optionLine) getPeek() byte {
	if (line.pos + 1) >= len(line.line) {
		return 0
	}
	return line.line[line.pos+1]
}

// Parse field kind.
func (line *optionLine) parseKind() string {
	// Skip leading space
	line.skipSpace()
	// Check if end of line.
	if line.isEOL() {
		return ""
	}

	kind := ""
	for !line.isEOL() {
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			kind += string([]byte{by})
			line.pos++
			continue
		}
		break
	}

	// Kind must be followed by space.
	if !line.isEOL() && !unicode.IsSpace(rune(line.line[line.pos])) {
		return ""
	}
	return strings.ToLower(kind)
}

// Parse value of field.
func (line *optionLine) parseValue() (string, error) {
	line.skipSpace()
	if line.isEOL() {
		return "", nil
	}
	// String parse starts at character after current one.
	line.pos--
	value, ok := line.parseQuoteString()
	if !ok {
		return "", fmt.Errorf("Invalid quoted string [%d], line: %d", line.pos, line.number)
	}
	return value, nil
}

// Parse string that is "string" or just string.
func (line *optionLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	// If quote, set we are in quoted string
	if line.getPeek() == '"' {
		inQuote = true
		line.pos++
	}

	for {
		line.pos++
		if line.pos >= len(line.line) {
			return value, !inQuote
		}
		by := line.line[line.pos]
		if inQuote {
			// If processing a quoted string "" gets replaced by signal quote
			if by == '"' {
				if line.getPeek() != '"' {
					// Hit end of string.
					line.pos++
					return value, true
				}
				line.pos++
			}
			value += string([]byte{by})
			continue
		}

		// Space, comma or comment terminates a no quoted string.
		if unicode.IsSpace(rune(by)) || by == ',' || by == '#' {
			return value, true
		}
		value += string([]byte{by})
	}
}

// Parse option name.
func (line *optionLine) getName() (string, error) {
	// Check if end of line.
	if line.isEOL() {
		return "", nil
	}

	// First character must be alphabetic.
	by := line.line[line.pos]
	if !unicode.IsLetter(rune(by)) {
		return "", fmt.Errorf("Invalid option encountered [%d], line: %d", line.pos, line.number)
	}
	value := ""

	// Already verified that first character is letter,
	// so grab until not letter or number.
	for {
		value += string([]byte{by})
		by = line.getNext()
		if by == 0 {
			break
		}
	}

	return value, nil
}

// Parse options for a line.
func (line *optionLine) parseOption() (*Option, error) {
	// Skip leading space
	line.skipSpace()

	// Grab option name
	value, err := line.getName()
	if value == "" {
		return nil, err
	}

	// Empty option.
	option := Option{Name: strings.ToLower(value)}

	// If at end of line done.
	if line.isEOL() {
		return &option, nil
	}

	// Check if equals option.
	if line.line[line.pos] == '=' {
		v, ok := line.parseQuoteString()
		if !ok {
			return nil, fmt.Errorf("Invalid quoted string [%d], line: %d", line.pos, line.number)
		}
		option.EqualOpt = v
	} else if !unicode.IsSpace(rune(line.line[line.pos])) && line.line[line.pos] != ',' {
		return nil, fmt.Errorf("Invalid option encountered [%d], line: %d", line.pos, line.number)
	}

	// Skip any spaces.
	line.skipSpace()

	// Grab all , options
	for !line.isEOL() && line.line[line.pos] == ',' {
		line.pos++ // Skip comma
		// Skip space between , and next option
		line.skipSpace()
		v, err := line.getName()
		if err != nil {
			return nil, err
		}
		if v != "" {
			option.Value = append(option.Value, &v)
		}
		// Skip any trailing spaces.
		line.skipSpace()
	}

	return &option, nil
}

// Collect all options for line.
func (line *optionLine) parseOptions() ([]Option, error) {
	options := []Option{}
	for {
		option, err := line.parseOption()
		if err != nil {
			return nil, err
		}
		if option == nil {
			break
		}
		options = append(options, *option)
	}
	return options, nil
}
