/*
 * tostr - Show the bits of a field within its bytes.
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
	"github.com/rcornwell/tostr/util/wmem"
)

// Room for 256 bit positions plus spacing.
const maxBitsStrLen = 256 + 64

// DecodeBitsInField shows noOfBits bits of value starting bitOffset bits
// after a byte boundary, for example "..10 1...". Bits outside the field
// show as '.', a space separates every four bits and inside the field an
// extra space separates bytes. Fields wider than 64 bits are cut to 64.
// The result comes from scope, normally the one for the current packet.
func DecodeBitsInField(scope wmem.Scope, bitOffset uint, noOfBits int, value uint64) string {
	var str [maxBitsStrLen]byte
	strP := 0

	maxBits := min(64, noOfBits)
	var mask uint64
	if maxBits > 0 {
		mask = uint64(1) << (maxBits - 1)
	}

	bit := 0
	for ; bit < int(bitOffset&0x07); bit++ {
		if bit != 0 && bit%4 == 0 {
			str[strP] = ' '
			strP++
		}
		str[strP] = '.'
		strP++
	}

	// Bits of the value.
	for range maxBits {
		if bit != 0 && bit%4 == 0 {
			str[strP] = ' '
			strP++
		}
		if bit != 0 && bit%8 == 0 {
			str[strP] = ' '
			strP++
		}
		bit++
		if value&mask != 0 {
			str[strP] = '1'
		} else {
			str[strP] = '0'
		}
		strP++
		mask >>= 1
	}

	for ; bit%8 != 0; bit++ {
		if bit%4 == 0 {
			str[strP] = ' '
			strP++
		}
		str[strP] = '.'
		strP++
	}

	buf := wmem.Alloc(scope, strP)
	copy(buf, str[:strP])
	return wmem.String(buf)
}
