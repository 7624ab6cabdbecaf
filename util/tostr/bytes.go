/*
 * tostr - Byte strings to hex dumps.
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
	"github.com/rcornwell/tostr/util/hex"
	"github.com/rcornwell/tostr/util/wmem"
)

const (
	MaxByteStrLen  = 48 // Longest unpunctuated dump before the ellipsis.
	MaxPunctStrLen = 72 // Longest punctuated dump plus one separator.
)

// Marks a dump cut short.
const ellipsis = "…"

// DissectorBug is raised with panic when a caller breaks the calling
// contract of a routine. It is never returned as an error.
type DissectorBug struct {
	Msg string
}

func (b *DissectorBug) Error() string {
	return "dissector bug: " + b.Msg
}

func reportBug(msg string) {
	panic(&DissectorBug{Msg: msg})
}

// Check that ad can supply n bytes.
func checkBytes(name string, ad []byte, n int) {
	if ad == nil && n != 0 {
		reportBug("nil byte string passed to " + name)
	}
	if n < 0 || n > len(ad) {
		reportBug("length larger than byte string passed to " + name)
	}
}

// BytesToStr returns the first n bytes of bd as hex with no punctuation.
// Past MaxByteStrLen/2 bytes the output is cut and ends with an ellipsis.
func BytesToStr(scope wmem.Scope, bd []byte, n int) string {
	checkBytes("BytesToStr", bd, n)
	if n == 0 {
		return ""
	}

	truncated := false
	if n > MaxByteStrLen/2 {
		truncated = true
		n = MaxByteStrLen / 2
	}

	size := hex.BytesLen(n)
	if truncated {
		size += len(ellipsis)
	}

	buf := wmem.Alloc(scope, size)
	pos := hex.Bytes(buf, 0, bd[:n])
	if truncated {
		copy(buf[pos:], ellipsis)
	}
	return wmem.String(buf)
}

// BytestringToStr returns the first n bytes of ad as hex with punct
// between bytes. A punct of 0 gives the BytesToStr form.
func BytestringToStr(scope wmem.Scope, ad []byte, n int, punct byte) string {
	if n == 0 {
		return ""
	}
	checkBytes("BytestringToStr", ad, n)

	if punct == 0 {
		return BytesToStr(scope, ad, n)
	}

	truncated := false
	if n > MaxPunctStrLen/3 {
		truncated = true
		n = MaxPunctStrLen / 3
	}

	size := hex.BytesPunctLen(n)
	if truncated {
		size += 1 + len(ellipsis)
	}

	buf := wmem.Alloc(scope, size)
	pos := hex.BytesPunct(buf, 0, ad[:n], punct)
	if truncated {
		buf[pos] = punct
		copy(buf[pos+1:], ellipsis)
	}
	return wmem.String(buf)
}
