/*
 * tostr - Convert binary values to hex text.
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

// Writers in this package put hex text into out starting at pos and return
// the position following the last character. Nothing is NUL terminated and
// nothing is checked; the caller must have sized out.

var hexMap = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// Nibble returns the hex digit of the low four bits of oct.
func Nibble(oct byte) byte {
	return hexMap[oct&0xf]
}

// BytesLen is the size of Bytes output for n bytes.
func BytesLen(n int) int {
	return n * 2
}

// BytesPunctLen is the size of BytesPunct output for n bytes.
func BytesPunctLen(n int) int {
	if n == 0 {
		return 0
	}
	return n*3 - 1
}

func Byte(out []byte, pos int, val uint8) int {
	out[pos] = hexMap[val>>4]
	out[pos+1] = hexMap[val&0xf]
	return pos + 2
}

func Word(out []byte, pos int, word uint16) int {
	pos = Byte(out, pos, uint8(word>>8))
	return Byte(out, pos, uint8(word))
}

func WordPunct(out []byte, pos int, word uint16, punct byte) int {
	pos = Byte(out, pos, uint8(word>>8))
	out[pos] = punct
	return Byte(out, pos+1, uint8(word))
}

// WordNoPad drops leading zero digits, zero gives "0".
func WordNoPad(out []byte, pos int, word uint16) int {
	if word >= 0x1000 {
		out[pos] = Nibble(uint8(word >> 12))
		pos++
	}
	if word >= 0x0100 {
		out[pos] = Nibble(uint8(word >> 8))
		pos++
	}
	if word >= 0x0010 {
		out[pos] = Nibble(uint8(word >> 4))
		pos++
	}
	out[pos] = Nibble(uint8(word))
	return pos + 1
}

func Dword(out []byte, pos int, dword uint32) int {
	pos = Word(out, pos, uint16(dword>>16))
	return Word(out, pos, uint16(dword))
}

func DwordPunct(out []byte, pos int, dword uint32, punct byte) int {
	pos = WordPunct(out, pos, uint16(dword>>16), punct)
	out[pos] = punct
	return WordPunct(out, pos+1, uint16(dword), punct)
}

func Qword(out []byte, pos int, qword uint64) int {
	pos = Dword(out, pos, uint32(qword>>32))
	return Dword(out, pos, uint32(qword))
}

func QwordPunct(out []byte, pos int, qword uint64, punct byte) int {
	pos = DwordPunct(out, pos, uint32(qword>>32), punct)
	out[pos] = punct
	return DwordPunct(out, pos+1, uint32(qword), punct)
}

// Bytes writes two digits for every byte of data.
func Bytes(out []byte, pos int, data []byte) int {
	for _, by := range data {
		pos = Byte(out, pos, by)
	}
	return pos
}

// BytesPunct writes data with punct between each byte.
func BytesPunct(out []byte, pos int, data []byte, punct byte) int {
	for i, by := range data {
		if i != 0 {
			out[pos] = punct
			pos++
		}
		pos = Byte(out, pos, by)
	}
	return pos
}
