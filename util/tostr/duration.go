/*
 * tostr - Durations as days, hours, minutes and seconds.
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

// Longest days/hours/minutes/seconds string without terminator,
// -12345 days, 12 hours, 12 minutes, 12.123 seconds.
const TimeSecsLen = 10 + 1 + 4 + 2 + 2 + 5 + 2 + 2 + 7 + 2 + 2 + 7 + 4

// Sign, nanosecond fraction and a fraction wider than its field.
const timeStrLen = 1 + TimeSecsLen + NsecsChars + 1

// Fixed size buffer a duration is built in.
type timeBuf struct {
	buf [timeStrLen]byte
	pos int
}

func (b *timeBuf) str(s string) {
	b.pos += copy(b.buf[b.pos:], s)
}

func (b *timeBuf) number(value uint32, width int) {
	var num [MaxUint32Digits]byte

	start := UintBackLen(num[:], len(num), value, width)
	b.pos += copy(b.buf[b.pos:], num[start:])
}

// Add "N unit" or "N units".
func (b *timeBuf) unit(comma bool, value uint32, name string) {
	if comma {
		b.str(", ")
	}
	b.number(value, 0)
	b.str(" ")
	b.str(name)
	if value > 1 {
		b.str("s")
	}
}

func (b *timeBuf) result(scope wmem.Scope) string {
	buf := wmem.Alloc(scope, b.pos)
	copy(buf, b.buf[:b.pos])
	return wmem.String(buf)
}

// Add timeVal seconds and frac, frac is nanoseconds when nsecs is set
// otherwise milliseconds.
func (b *timeBuf) unsignedTimeSecs(timeVal uint32, frac uint32, nsecs bool) {
	secs := timeVal % 60
	timeVal /= 60
	mins := timeVal % 60
	timeVal /= 60
	hours := timeVal % 24
	timeVal /= 24

	comma := false
	if timeVal != 0 {
		b.unit(comma, timeVal, "day")
		comma = true
	}
	if hours != 0 {
		b.unit(comma, hours, "hour")
		comma = true
	}
	if mins != 0 {
		b.unit(comma, mins, "minute")
		comma = true
	}

	if secs == 0 && frac == 0 {
		return
	}

	if frac == 0 {
		b.unit(comma, secs, "second")
		return
	}

	if comma {
		b.str(", ")
	}
	b.number(secs, 0)
	b.str(".")
	if nsecs {
		b.number(frac, 9)
	} else {
		b.number(frac, 3)
	}
	b.str(" seconds")
}

func (b *timeBuf) signedTimeSecs(timeVal int32, frac uint32, nsecs bool) {
	if timeVal < 0 {
		b.str("-")
		b.unsignedTimeSecs(-uint32(timeVal), frac, nsecs)
		return
	}
	b.unsignedTimeSecs(uint32(timeVal), frac, nsecs)
}

// UnsignedTimeSecsToStr shows timeVal seconds as days, hours, minutes and
// seconds.
func UnsignedTimeSecsToStr(scope wmem.Scope, timeVal uint32) string {
	if timeVal == 0 {
		return wmem.Strdup(scope, "0 seconds")
	}

	var b timeBuf
	b.unsignedTimeSecs(timeVal, 0, false)
	return b.result(scope)
}

// SignedTimeSecsToStr shows timeVal seconds as days, hours, minutes and
// seconds, with a leading '-' if negative.
func SignedTimeSecsToStr(scope wmem.Scope, timeVal int32) string {
	if timeVal == 0 {
		return wmem.Strdup(scope, "0 seconds")
	}

	var b timeBuf
	b.signedTimeSecs(timeVal, 0, false)
	return b.result(scope)
}

// TimeSecsToStr shows signed seconds plus a fraction, which is nanoseconds
// if nsecs is set otherwise milliseconds.
func TimeSecsToStr(scope wmem.Scope, timeVal int32, frac uint32, nsecs bool) string {
	if timeVal == 0 && frac == 0 {
		return wmem.Strdup(scope, "0 seconds")
	}

	var b timeBuf
	b.signedTimeSecs(timeVal, frac, nsecs)
	return b.result(scope)
}

// SignedTimeMsecsToStr shows timeVal milliseconds as days, hours, minutes
// and seconds.
func SignedTimeMsecsToStr(scope wmem.Scope, timeVal int32) string {
	if timeVal == 0 {
		return wmem.Strdup(scope, "0 seconds")
	}

	var b timeBuf
	mag := uint32(timeVal)
	if timeVal < 0 {
		b.str("-")
		mag = -mag
	}
	b.unsignedTimeSecs(mag/1000, mag%1000, false)
	return b.result(scope)
}

// RelTimeToStr shows a relative time as days, hours, minutes and seconds.
// A negative nanosecond part means the whole time is negative, the seconds
// are then expected to be zero or negative.
func RelTimeToStr(scope wmem.Scope, relTime NSTime) string {
	timeVal := int32(relTime.Secs)
	nsec := relTime.Nsecs
	if timeVal == 0 && nsec == 0 {
		return wmem.Strdup(scope, "0.000000000 seconds")
	}

	var b timeBuf
	frac := uint32(nsec)
	if nsec < 0 {
		frac = -frac
		b.str("-")
		mag := uint32(relTime.Secs)
		if relTime.Secs < 0 {
			mag = uint32(-uint64(relTime.Secs))
		}
		b.unsignedTimeSecs(mag, frac, true)
		return b.result(scope)
	}

	b.signedTimeSecs(timeVal, frac, true)
	return b.result(scope)
}
