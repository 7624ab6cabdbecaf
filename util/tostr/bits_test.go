/*
 * tostr - Bit field test cases.
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
	"strings"
	"testing"

	"github.com/rcornwell/tostr/util/wmem"
)

// Fields at various offsets.
func TestDecodeBitsInField(t *testing.T) {
	tests := []struct {
		offset uint
		width  int
		value  uint64
		match  string
	}{
		{3, 5, 0b10110, "...1 0110"},
		{0, 8, 0xa5, "1010 0101"},
		{2, 3, 0b101, "..10 1..."},
		{0, 1, 1, "1... ...."},
		{7, 1, 0, ".... ...0"},
		{0, 16, 0x1234, "0001 0010  0011 0100"},
		{4, 8, 0xff, ".... 1111  1111 ...."},
		{3, 0, 0, ".... ...."},
		{11, 2, 3, "...1 1..."},
	}

	packet := wmem.NewArena(0)
	defer packet.Free()
	for _, test := range tests {
		r := DecodeBitsInField(packet, test.offset, test.width, test.value)
		if r != test.match {
			t.Errorf("DecodeBitsInField %d,%d,%x got: '%s' expected: '%s'",
				test.offset, test.width, test.value, r, test.match)
		}
	}
}

// Widths past 64 bits are cut.
func TestDecodeBitsWide(t *testing.T) {
	r := DecodeBitsInField(nil, 0, 70, ^uint64(0))
	if strings.Count(r, "1") != 64 || strings.Contains(r, "0") {
		t.Errorf("DecodeBitsInField wide got: %s", r)
	}
	if len(r) != 64+8+14 {
		t.Errorf("DecodeBitsInField wide length got: %d expected: %d", len(r), 64+8+14)
	}

	r = DecodeBitsInField(nil, 5, 64, 1)
	if strings.Count(r, "1") != 1 || strings.Count(r, "0") != 63 || strings.Count(r, ".") != 8 {
		t.Errorf("DecodeBitsInField offset 64 got: %s", r)
	}
	if !strings.HasPrefix(r, "....") || !strings.HasSuffix(r, " 1...") {
		t.Errorf("DecodeBitsInField offset 64 got: %s", r)
	}

	r = DecodeBitsInField(nil, 0, -3, 1)
	if r != "" {
		t.Errorf("DecodeBitsInField negative width got: '%s' expected empty", r)
	}
}
