/*
 * tostr - Numbers into fixed size buffers.
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

// BufTooSmall replaces any value that does not fit its buffer.
const BufTooSmall = "[Buffer too small]"

// Number of decimal digits in u.
func Uint32StrLen(u uint32) int {
	switch {
	case u >= 1000000000:
		return 10
	case u >= 100000000:
		return 9
	case u >= 10000000:
		return 8
	case u >= 1000000:
		return 7
	case u >= 100000:
		return 6
	case u >= 10000:
		return 5
	case u >= 1000:
		return 4
	case u >= 100:
		return 3
	case u >= 10:
		return 2
	}
	return 1
}

// Number of decimal digits in u.
func Uint64StrLen(u uint64) int {
	switch {
	case u >= 10000000000000000000:
		return 20
	case u >= 1000000000000000000:
		return 19
	case u >= 100000000000000000:
		return 18
	case u >= 10000000000000000:
		return 17
	case u >= 1000000000000000:
		return 16
	case u >= 100000000000000:
		return 15
	case u >= 10000000000000:
		return 14
	case u >= 1000000000000:
		return 13
	case u >= 100000000000:
		return 12
	case u >= 10000000000:
		return 11
	case u >= 1000000000:
		return 10
	case u >= 100000000:
		return 9
	case u >= 10000000:
		return 8
	case u >= 1000000:
		return 7
	case u >= 100000:
		return 6
	case u >= 10000:
		return 5
	case u >= 1000:
		return 4
	case u >= 100:
		return 3
	case u >= 10:
		return 2
	}
	return 1
}

// Strlcpy copies as much of src as fits in dst with a NUL terminator.
// It returns len(src) so truncation can be detected.
func Strlcpy(dst []byte, src string) int {
	if len(dst) == 0 {
		return len(src)
	}
	n := copy(dst[:len(dst)-1], src)
	dst[n] = 0
	return len(src)
}

// CStr returns the text of buf up to the first NUL.
func CStr(buf []byte) string {
	for i, by := range buf {
		if by == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// Put the sentinel in buf, return number of characters stored.
func tooSmall(buf []byte) int {
	Strlcpy(buf, BufTooSmall)
	return min(len(BufTooSmall), max(len(buf)-1, 0))
}

// Uint32ToStrBuf puts u with a NUL terminator into buf.
// Returns the number of characters stored before the NUL.
func Uint32ToStrBuf(u uint32, buf []byte) int {
	strLen := Uint32StrLen(u) + 1

	if len(buf) < strLen {
		return tooSmall(buf)
	}

	buf[strLen-1] = 0
	UintBack(buf, strLen-1, u)
	return strLen - 1
}

// Uint64ToStrBuf puts u with a NUL terminator into buf.
// Returns the number of characters stored before the NUL.
func Uint64ToStrBuf(u uint64, buf []byte) int {
	strLen := Uint64StrLen(u) + 1

	if len(buf) < strLen {
		return tooSmall(buf)
	}

	buf[strLen-1] = 0
	UintBack(buf, strLen-1, u)
	return strLen - 1
}
