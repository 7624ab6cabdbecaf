/*
 * tostr - Write numbers backward into a buffer.
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

package tostr

import (
	"golang.org/x/exp/constraints"

	"github.com/rcornwell/tostr/util/hex"
)

// The writers in this file put the last character at buf[end-1] and
// work toward the start of buf. They return the index of the first
// character written. The caller reserves room for the widest result.

const (
	MaxUint32Digits = 10 // 4294967295
	MaxUint64Digits = 20 // 18446744073709551615
	MaxInt64Chars   = 20 // Sign plus 19 digits.
	NsecsChars      = 10 // .000000001
)

// UintBack writes the decimal digits of value, two per step.
func UintBack[T constraints.Unsigned](buf []byte, end int, value T) int {
	if value == 0 {
		end--
		buf[end] = '0'
		return end
	}

	for value >= 10 {
		p := fastStrings[100+int(value%100)]
		value /= 100
		buf[end-1] = p[2]
		buf[end-2] = p[1]
		end -= 2
	}

	if value != 0 {
		end--
		buf[end] = byte(value) | '0'
	}
	return end
}

// UintBackLen writes value with '0' on the left until at least length
// characters are written.
func UintBackLen[T constraints.Unsigned](buf []byte, end int, value T, length int) int {
	pos := UintBack(buf, end, value)

	for length -= end - pos; length > 0; length-- {
		pos--
		buf[pos] = '0'
	}
	return pos
}

// IntBack writes a signed decimal number.
func IntBack[T constraints.Signed](buf []byte, end int, value T) int {
	if value >= 0 {
		return UintBack(buf, end, uint64(value))
	}

	// Negate as unsigned, the minimum value has no signed magnitude.
	pos := UintBack(buf, end, -uint64(value))
	pos--
	buf[pos] = '-'
	return pos
}

// OctBack writes value in octal with a leading '0'.
func OctBack[T constraints.Unsigned](buf []byte, end int, value T) int {
	for value != 0 {
		end--
		buf[end] = '0' + byte(value&0x7)
		value >>= 3
	}

	end--
	buf[end] = '0'
	return end
}

// HexBack writes value in hex with at least digits digits and a leading 0x.
func HexBack[T constraints.Unsigned](buf []byte, end int, digits int, value T) int {
	for {
		end--
		buf[end] = hex.Nibble(byte(value & 0xf))
		value >>= 4
		digits--
		if value == 0 {
			break
		}
	}

	for ; digits > 0; digits-- {
		end--
		buf[end] = '0'
	}

	buf[end-1] = 'x'
	buf[end-2] = '0'
	return end - 2
}
