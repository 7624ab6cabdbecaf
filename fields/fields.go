/*
 * tostr - Field renderer helpers.
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

// Package fields registers a renderer for every field kind with the
// script parser. Importing it for side effects makes the kinds available
// to scripts and the console.
package fields

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	config "github.com/rcornwell/tostr/config/configparser"
	"github.com/rcornwell/tostr/util/wmem"
)

// Largest buffer a size= option may ask for.
const maxSize = 4096

// Convert strconv errors to something shorter.
func numberError(value string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return errors.New("number out of range: " + value)
	}
	return errors.New("not a number: " + value)
}

// Parse unsigned number, 0x, 0o and 0b prefixes accepted.
func parseUint(value string, bitSize int) (uint64, error) {
	u, err := strconv.ParseUint(value, 0, bitSize)
	if err != nil {
		return 0, numberError(value, err)
	}
	return u, nil
}

// Parse signed number, 0x, 0o and 0b prefixes accepted.
func parseInt(value string, bitSize int) (int64, error) {
	i, err := strconv.ParseInt(value, 0, bitSize)
	if err != nil {
		return 0, numberError(value, err)
	}
	return i, nil
}

// Get number after = of option.
func optionInt(option *config.Option, bitSize int) (int64, error) {
	if option.EqualOpt == "" {
		return 0, errors.New(option.Name + " requires a value")
	}
	return parseInt(option.EqualOpt, bitSize)
}

// Get buffer size option.
func optionSize(option *config.Option) (int, error) {
	size, err := optionInt(option, 32)
	if err != nil {
		return 0, err
	}
	if size < 0 || size > maxSize {
		return 0, errors.New("size out of range: " + option.EqualOpt)
	}
	return int(size), nil
}

// Options that only take a value after =.
func simpleOption(option *config.Option) error {
	if option.Value != nil {
		return errors.New("extra options not supported on: " + option.Name)
	}
	return nil
}

// Switch options take no value.
func switchOption(option *config.Option) error {
	if option.EqualOpt != "" || option.Value != nil {
		return errors.New("option " + option.Name + " does not take a value")
	}
	return nil
}

// Decode hex digits, separators ':', '-' and '.' are skipped.
// If length is not zero the value must be exactly length bytes.
func parseHex(value string, length int) ([]byte, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
	digits = strings.NewReplacer(":", "", "-", "", ".", "").Replace(digits)
	data, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.New("invalid hex string: " + value)
	}
	if length != 0 && len(data) != length {
		return nil, errors.New("hex value must be " + strconv.Itoa(length) + " bytes: " + value)
	}
	return data, nil
}

// Return text of NUL terminated buf without copying.
func bufString(buf []byte) string {
	for i, by := range buf {
		if by == 0 {
			return wmem.String(buf[:i])
		}
	}
	return wmem.String(buf)
}
