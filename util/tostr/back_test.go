/*
 * tostr - Backward number writer test cases.
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
	"math"
	"strconv"
	"testing"
)

// Decimal digits of 32 and 64 bit values.
func TestUintBack(t *testing.T) {
	tests := []uint64{0, 1, 9, 10, 11, 99, 100, 101, 255, 1000, 65535, 99999,
		1000000000, math.MaxUint32, 10000000000, 1<<63 - 1, math.MaxUint64}

	buf := make([]byte, MaxUint64Digits)
	for _, value := range tests {
		match := strconv.FormatUint(value, 10)
		pos := UintBack(buf, len(buf), value)
		if string(buf[pos:]) != match {
			t.Errorf("UintBack got: %s expected: %s", buf[pos:], match)
		}
		if value > math.MaxUint32 {
			continue
		}
		pos = UintBack(buf, len(buf), uint32(value))
		if string(buf[pos:]) != match {
			t.Errorf("UintBack 32 got: %s expected: %s", buf[pos:], match)
		}
	}
}

// Written digits parse back to the same value.
func TestUintBackRoundTrip(t *testing.T) {
	var buf [MaxUint32Digits]byte
	for v := uint64(0); v <= math.MaxUint32; v += 7919 * 311 {
		value := uint32(v)
		pos := UintBack(buf[:], len(buf), value)
		r, err := strconv.ParseUint(string(buf[pos:]), 10, 32)
		if err != nil {
			t.Errorf("UintBack %d produced: %s error: %v", value, buf[pos:], err)
			continue
		}
		if uint32(r) != value {
			t.Errorf("UintBack round trip got: %d expected: %d", r, value)
		}
	}
}

// Only the characters of the number are touched.
func TestUintBackBounds(t *testing.T) {
	buf := []byte("xxxxxxxxxx")
	pos := UintBack(buf, 8, uint32(1234))
	if pos != 4 || string(buf) != "xxxx1234xx" {
		t.Errorf("UintBack wrote outside number got: %s", buf)
	}
}

// Fixed width numbers.
func TestUintBackLen(t *testing.T) {
	tests := []struct {
		value  uint32
		length int
		match  string
	}{
		{0, 3, "000"},
		{5, 3, "005"},
		{50, 3, "050"},
		{500, 3, "500"},
		{1234, 3, "1234"},
		{7, 9, "000000007"},
		{7, 0, "7"},
	}

	buf := make([]byte, 12)
	for _, test := range tests {
		pos := UintBackLen(buf, len(buf), test.value, test.length)
		if string(buf[pos:]) != test.match {
			t.Errorf("UintBackLen %d,%d got: %s expected: %s", test.value, test.length, buf[pos:], test.match)
		}
	}

	pos := UintBackLen(buf, len(buf), uint64(42), 6)
	if string(buf[pos:]) != "000042" {
		t.Errorf("UintBackLen 64 got: %s expected: %s", buf[pos:], "000042")
	}
}

// Signed numbers, including the most negative of each size.
func TestIntBack(t *testing.T) {
	buf := make([]byte, MaxInt64Chars)

	tests32 := []int32{0, 1, -1, 10, -10, math.MaxInt32, math.MinInt32, math.MinInt32 + 1}
	for _, value := range tests32 {
		match := strconv.FormatInt(int64(value), 10)
		pos := IntBack(buf, len(buf), value)
		if string(buf[pos:]) != match {
			t.Errorf("IntBack 32 got: %s expected: %s", buf[pos:], match)
		}
	}

	tests64 := []int64{0, -99, math.MaxInt64, math.MinInt64, math.MinInt64 + 1}
	for _, value := range tests64 {
		match := strconv.FormatInt(value, 10)
		pos := IntBack(buf, len(buf), value)
		if string(buf[pos:]) != match {
			t.Errorf("IntBack 64 got: %s expected: %s", buf[pos:], match)
		}
	}

	pos := IntBack(buf, len(buf), int8(math.MinInt8))
	if string(buf[pos:]) != "-128" {
		t.Errorf("IntBack 8 got: %s expected: %s", buf[pos:], "-128")
	}
	if pos != len(buf)-4 {
		t.Errorf("IntBack 8 position got: %d expected: %d", pos, len(buf)-4)
	}
}

// Octal numbers always start with 0.
func TestOctBack(t *testing.T) {
	tests := []struct {
		value uint64
		match string
	}{
		{0, "0"},
		{7, "07"},
		{8, "010"},
		{511, "0777"},
		{math.MaxUint64, "01777777777777777777777"},
	}

	buf := make([]byte, 24)
	for _, test := range tests {
		pos := OctBack(buf, len(buf), test.value)
		if string(buf[pos:]) != test.match {
			t.Errorf("OctBack %d got: %s expected: %s", test.value, buf[pos:], test.match)
		}
	}

	pos := OctBack(buf, len(buf), uint32(0o644))
	if string(buf[pos:]) != "0644" {
		t.Errorf("OctBack 32 got: %s expected: %s", buf[pos:], "0644")
	}
}

// Hex numbers padded to a minimum width.
func TestHexBack(t *testing.T) {
	tests := []struct {
		value  uint64
		digits int
		match  string
	}{
		{0, 0, "0x0"},
		{0, 4, "0x0000"},
		{0xab, 4, "0x00ab"},
		{0x12345, 2, "0x12345"},
		{math.MaxUint64, 16, "0xffffffffffffffff"},
		{1, 16, "0x0000000000000001"},
	}

	buf := make([]byte, 20)
	for _, test := range tests {
		pos := HexBack(buf, len(buf), test.digits, test.value)
		if string(buf[pos:]) != test.match {
			t.Errorf("HexBack %x,%d got: %s expected: %s", test.value, test.digits, buf[pos:], test.match)
		}
	}

	pos := HexBack(buf, len(buf), 8, uint32(0xbeef))
	if string(buf[pos:]) != "0x0000beef" {
		t.Errorf("HexBack 32 got: %s expected: %s", buf[pos:], "0x0000beef")
	}
}
