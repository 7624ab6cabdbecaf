/*
 * tostr - Network addresses and identifiers to text.
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
	"encoding/binary"
	"net/netip"

	"github.com/rcornwell/tostr/util/hex"
	"github.com/rcornwell/tostr/util/wmem"
)

// Buffer sizes including the NUL terminator.
const (
	InetAddrStrLen  = 16 // xxx.xxx.xxx.xxx
	Inet6AddrStrLen = 46 // ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255
	GUIDStrLen      = 37 // xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	EUI64StrLen     = 24 // xx:xx:xx:xx:xx:xx:xx:xx
)

// GUID in its structured form.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GUIDFromBytes takes the fields of a GUID stored in network order.
func GUIDFromBytes(b [16]byte) GUID {
	guid := GUID{
		Data1: binary.BigEndian.Uint32(b[0:4]),
		Data2: binary.BigEndian.Uint16(b[4:6]),
		Data3: binary.BigEndian.Uint16(b[6:8]),
	}
	copy(guid.Data4[:], b[8:])
	return guid
}

// IPToStrBuf puts the dotted form of the four bytes of ad into buf.
// Returns the number of characters stored before the NUL.
func IPToStrBuf(ad []byte, buf []byte) int {
	if len(ad) < 4 {
		reportBug("short address passed to IPToStrBuf")
	}

	if len(buf) < InetAddrStrLen {
		return tooSmall(buf)
	}

	pos := copy(buf, fastStrings[ad[0]])
	for _, oct := range ad[1:4] {
		buf[pos] = '.'
		pos++
		pos += copy(buf[pos:], fastStrings[oct])
	}
	buf[pos] = 0
	return pos
}

// IPToStr returns the dotted form of ad from scope.
func IPToStr(scope wmem.Scope, ad []byte) string {
	buf := wmem.Alloc(scope, InetAddrStrLen)

	n := IPToStrBuf(ad, buf)
	return wmem.String(buf[:n])
}

// IP6ToStrBufWithPrefix puts prefix followed by the canonical text form
// of addr into buf. Returns the number of characters stored, or if buf
// is too small the length of the sentinel put there instead.
func IP6ToStrBufWithPrefix(addr *[16]byte, buf []byte, prefix string) int {
	text := netip.AddrFrom16(*addr).String()

	length := len(prefix) + len(text)
	if length > len(buf)-1 {
		return Strlcpy(buf, BufTooSmall)
	}

	pos := copy(buf, prefix)
	pos += copy(buf[pos:], text)
	buf[pos] = 0
	return length
}

// IP6ToStrBuf puts the canonical text form of addr into buf.
func IP6ToStrBuf(addr *[16]byte, buf []byte) int {
	return IP6ToStrBufWithPrefix(addr, buf, "")
}

// IP6ToStr returns the text form of addr from scope.
func IP6ToStr(scope wmem.Scope, addr *[16]byte) string {
	buf := wmem.Alloc(scope, Inet6AddrStrLen)

	n := IP6ToStrBuf(addr, buf)
	return wmem.String(buf[:n])
}

// GUIDToStrBuf puts the hyphenated form of guid into buf.
// Returns the number of characters stored before the NUL.
func GUIDToStrBuf(guid *GUID, buf []byte) int {
	if len(buf) < GUIDStrLen {
		return tooSmall(buf)
	}

	pos := hex.Dword(buf, 0, guid.Data1)
	buf[pos] = '-'
	pos = hex.Word(buf, pos+1, guid.Data2)
	buf[pos] = '-'
	pos = hex.Word(buf, pos+1, guid.Data3)
	buf[pos] = '-'
	pos = hex.Bytes(buf, pos+1, guid.Data4[0:2])
	buf[pos] = '-'
	pos = hex.Bytes(buf, pos+1, guid.Data4[2:8])
	buf[pos] = 0
	return pos
}

// GUIDToStr returns the hyphenated form of guid from scope.
func GUIDToStr(scope wmem.Scope, guid *GUID) string {
	buf := wmem.Alloc(scope, GUIDStrLen)

	n := GUIDToStrBuf(guid, buf)
	return wmem.String(buf[:n])
}

// EUI64ToStr returns ad in network byte order as colon separated hex.
func EUI64ToStr(scope wmem.Scope, ad uint64) string {
	var eui [8]byte

	binary.BigEndian.PutUint64(eui[:], ad)
	buf := wmem.Alloc(scope, hex.BytesPunctLen(len(eui)))
	hex.BytesPunct(buf, 0, eui[:], ':')
	return wmem.String(buf)
}
