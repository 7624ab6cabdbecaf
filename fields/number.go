/*
 * tostr - Number field renderers.
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

package fields

import (
	"errors"

	config "github.com/rcornwell/tostr/config/configparser"
	"github.com/rcornwell/tostr/util/tostr"
	"github.com/rcornwell/tostr/util/wmem"
)

// register field kinds on initialize.
func init() {
	config.RegisterField("uint32", renderUint32)
	config.RegisterField("uint64", renderUint64)
	config.RegisterField("int", renderInt)
	config.RegisterField("oct", renderOct)
	config.RegisterField("hex", renderHex)
	config.RegisterField("bits", renderBits)
}

// Get size option for bounded buffer kinds.
func sizeOnly(kind string, options []config.Option, size int) (int, error) {
	for i := range options {
		option := &options[i]
		switch option.Name {
		case "size":
			var err error
			size, err = optionSize(option)
			if err != nil {
				return 0, err
			}
		default:
			return 0, errors.New(kind + " invalid option " + option.Name)
		}
		if err := simpleOption(option); err != nil {
			return 0, err
		}
	}
	return size, nil
}

// Decimal into bounded buffer.
func renderUint32(scope wmem.Scope, value string, options []config.Option) (string, error) {
	u, err := parseUint(value, 32)
	if err != nil {
		return "", err
	}
	size, err := sizeOnly("uint32", options, tostr.MaxUint32Digits+1)
	if err != nil {
		return "", err
	}
	buf := wmem.Alloc(scope, size)
	n := tostr.Uint32ToStrBuf(uint32(u), buf)
	return wmem.String(buf[:n]), nil
}

func renderUint64(scope wmem.Scope, value string, options []config.Option) (string, error) {
	u, err := parseUint(value, 64)
	if err != nil {
		return "", err
	}
	size, err := sizeOnly("uint64", options, tostr.MaxUint64Digits+1)
	if err != nil {
		return "", err
	}
	buf := wmem.Alloc(scope, size)
	n := tostr.Uint64ToStrBuf(u, buf)
	return wmem.String(buf[:n]), nil
}

// Signed decimal.
func renderInt(scope wmem.Scope, value string, options []config.Option) (string, error) {
	if err := config.CheckOptions("int", options); err != nil {
		return "", err
	}
	i, err := parseInt(value, 64)
	if err != nil {
		return "", err
	}
	var num [tostr.MaxInt64Chars]byte
	start := tostr.IntBack(num[:], len(num), i)
	return wmem.Strdup(scope, string(num[start:])), nil
}

// Octal with leading 0.
func renderOct(scope wmem.Scope, value string, options []config.Option) (string, error) {
	if err := config.CheckOptions("oct", options); err != nil {
		return "", err
	}
	u, err := parseUint(value, 64)
	if err != nil {
		return "", err
	}
	var num [24]byte
	start := tostr.OctBack(num[:], len(num), u)
	return wmem.Strdup(scope, string(num[start:])), nil
}

// Hex with leading 0x, digits= sets minimum width.
func renderHex(scope wmem.Scope, value string, options []config.Option) (string, error) {
	u, err := parseUint(value, 64)
	if err != nil {
		return "", err
	}
	digits := 0
	for i := range options {
		option := &options[i]
		switch option.Name {
		case "digits":
			d, err := optionInt(option, 32)
			if err != nil {
				return "", err
			}
			if d < 0 || d > 16 {
				return "", errors.New("digits out of range: " + option.EqualOpt)
			}
			digits = int(d)
		default:
			return "", errors.New("hex invalid option " + option.Name)
		}
		if err := simpleOption(option); err != nil {
			return "", err
		}
	}
	var num [2 + 16]byte
	start := tostr.HexBack(num[:], len(num), digits, u)
	return wmem.Strdup(scope, string(num[start:])), nil
}

// Bit pattern, offset= bits from byte boundary, width= bits in field.
func renderBits(scope wmem.Scope, value string, options []config.Option) (string, error) {
	u, err := parseUint(value, 64)
	if err != nil {
		return "", err
	}
	offset := int64(0)
	width := int64(8)
	for i := range options {
		option := &options[i]
		switch option.Name {
		case "offset":
			offset, err = optionInt(option, 32)
			if err != nil {
				return "", err
			}
			if offset < 0 || offset > 255 {
				return "", errors.New("offset out of range: " + option.EqualOpt)
			}
		case "width":
			width, err = optionInt(option, 32)
			if err != nil {
				return "", err
			}
			if width < 0 || width > 64 {
				return "", errors.New("width out of range: " + option.EqualOpt)
			}
		default:
			return "", errors.New("bits invalid option " + option.Name)
		}
		if err := simpleOption(option); err != nil {
			return "", err
		}
	}
	return tostr.DecodeBitsInField(scope, uint(offset), int(width), u), nil
}
