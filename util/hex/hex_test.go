/*
 * tostr - Hex conversion test cases.
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

package hex

import (
	"testing"
)

// Fixed width words.
func TestWords(t *testing.T) {
	out := make([]byte, 32)

	pos := Byte(out, 0, 0xa5)
	if pos != 2 || string(out[:pos]) != "a5" {
		t.Errorf("Byte got: %s expected: %s", out[:pos], "a5")
	}

	pos = Word(out, 0, 0x0102)
	if pos != 4 || string(out[:pos]) != "0102" {
		t.Errorf("Word got: %s expected: %s", out[:pos], "0102")
	}

	pos = WordPunct(out, 0, 0xbeef, ':')
	if pos != 5 || string(out[:pos]) != "be:ef" {
		t.Errorf("WordPunct got: %s expected: %s", out[:pos], "be:ef")
	}

	pos = Dword(out, 0, 0x01020304)
	if pos != 8 || string(out[:pos]) != "01020304" {
		t.Errorf("Dword got: %s expected: %s", out[:pos], "01020304")
	}

	pos = DwordPunct(out, 0, 0xdeadbeef, '.')
	if pos != 11 || string(out[:pos]) != "de.ad.be.ef" {
		t.Errorf("DwordPunct got: %s expected: %s", out[:pos], "de.ad.be.ef")
	}

	pos = Qword(out, 0, 0x0011223344556677)
	if pos != 16 || string(out[:pos]) != "0011223344556677" {
		t.Errorf("Qword got: %s expected: %s", out[:pos], "0011223344556677")
	}

	pos = QwordPunct(out, 0, 0x8899aabbccddeeff, '-')
	if pos != 23 || string(out[:pos]) != "88-99-aa-bb-cc-dd-ee-ff" {
		t.Errorf("QwordPunct got: %s expected: %s", out[:pos], "88-99-aa-bb-cc-dd-ee-ff")
	}
}

// Words without leading zeros.
func TestWordNoPad(t *testing.T) {
	tests := []struct {
		word  uint16
		match string
	}{
		{0, "0"},
		{0xf, "f"},
		{0x10, "10"},
		{0x100, "100"},
		{0xfff, "fff"},
		{0x1000, "1000"},
		{0xffff, "ffff"},
		{0x0a0b, "a0b"},
	}

	out := make([]byte, 4)
	for _, test := range tests {
		pos := WordNoPad(out, 0, test.word)
		if string(out[:pos]) != test.match {
			t.Errorf("WordNoPad %04x got: %s expected: %s", test.word, out[:pos], test.match)
		}
	}
}

// Writers must continue from the position given.
func TestAppend(t *testing.T) {
	out := make([]byte, 12)
	pos := Word(out, 0, 0x1234)
	out[pos] = '/'
	pos = Word(out, pos+1, 0x5678)
	if string(out[:pos]) != "1234/5678" {
		t.Errorf("Append got: %s expected: %s", out[:pos], "1234/5678")
	}
}

// Byte strings.
func TestBytes(t *testing.T) {
	data := []byte{0x00, 0x7f, 0x80, 0xff}

	out := make([]byte, BytesLen(len(data)))
	pos := Bytes(out, 0, data)
	if pos != len(out) || string(out) != "007f80ff" {
		t.Errorf("Bytes got: %s expected: %s", out[:pos], "007f80ff")
	}

	out = make([]byte, BytesPunctLen(len(data)))
	pos = BytesPunct(out, 0, data, ':')
	if pos != len(out) || string(out) != "00:7f:80:ff" {
		t.Errorf("BytesPunct got: %s expected: %s", out[:pos], "00:7f:80:ff")
	}

	if BytesPunctLen(0) != 0 {
		t.Errorf("BytesPunctLen(0) got: %d expected: 0", BytesPunctLen(0))
	}
	pos = BytesPunct(out, 0, nil, ':')
	if pos != 0 {
		t.Errorf("BytesPunct empty got: %d expected: 0", pos)
	}
}

// Every nibble value.
func TestNibble(t *testing.T) {
	match := "0123456789abcdef"
	for i := range 256 {
		by := Nibble(byte(i))
		if by != match[i&0xf] {
			t.Errorf("Nibble %02x got: %c expected: %c", i, by, match[i&0xf])
		}
	}
}
