/*
 * tostr - Time stamp test cases.
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
	"testing"
	"time"
)

// Signed times into a buffer.
func TestDisplaySignedTime(t *testing.T) {
	tests := []struct {
		sec   int64
		frac  int32
		units TimeRes
		match string
	}{
		{5, 123, TimeResMsecs, "5.123"},
		{-5, 0, TimeResSecs, "-5"},
		{0, -500, TimeResMsecs, "-0.500"},
		{-1, -500, TimeResMsecs, "-1.500"},
		{1, 1234, TimeResMsecs, "1.1234"},
		{7, 3, TimeResDsecs, "7.3"},
		{7, 3, TimeResCsecs, "7.03"},
		{7, 3, TimeResUsecs, "7.000003"},
		{math.MinInt64, 1, TimeResNsecs, "-9223372036854775808.000000001"},
		{0, math.MinInt32, TimeResNsecs, "-0.2147483648"},
		{12, 5, TimeRes(42), "12"},
		{math.MinInt64, math.MinInt32, TimeResNsecs, "-9223372036854775808.2147483648"},
		{math.MaxInt64, math.MinInt32, TimeResNsecs, "-9223372036854775807.2147483648"},
	}

	buf := make([]byte, RelTimeSecsLen)
	for _, test := range tests {
		n := DisplaySignedTime(buf, test.sec, test.frac, test.units)
		if CStr(buf) != test.match || n != len(test.match) {
			t.Errorf("DisplaySignedTime %d,%d got: %s (%d) expected: %s", test.sec, test.frac, CStr(buf), n, test.match)
		}
	}

	// Too small for the text.
	buf = make([]byte, 4)
	n := DisplaySignedTime(buf, 12345, 0, TimeResSecs)
	if n != 3 || CStr(buf) != "[Bu" {
		t.Errorf("DisplaySignedTime short got: %s (%d) expected: [Bu (3)", CStr(buf), n)
	}

	// No room for the terminator.
	buf = make([]byte, 5)
	n = DisplaySignedTime(buf, 12345, 0, TimeResSecs)
	if n != 4 || CStr(buf) != "[Buf" {
		t.Errorf("DisplaySignedTime no NUL got: %s (%d) expected: [Buf (4)", CStr(buf), n)
	}

	buf = make([]byte, 6)
	n = DisplaySignedTime(buf, 12345, 0, TimeResSecs)
	if n != 5 || CStr(buf) != "12345" {
		t.Errorf("DisplaySignedTime exact got: %s (%d) expected: 12345 (5)", CStr(buf), n)
	}

	n = DisplaySignedTime(nil, 1, 1, TimeResSecs)
	if n != 0 {
		t.Errorf("DisplaySignedTime empty got: %d expected: 0", n)
	}

	buf = make([]byte, 16)
	DisplayEpochTime(buf, 1700000000, 42, TimeResMsecs)
	if CStr(buf) != "1700000000.042" {
		t.Errorf("DisplayEpochTime got: %s expected: %s", CStr(buf), "1700000000.042")
	}
}

// Relative seconds.
func TestRelTimeToSecsStr(t *testing.T) {
	r := RelTimeToSecsStr(nil, NSTime{-2, 5})
	if r != "-2.000000005" {
		t.Errorf("RelTimeToSecsStr got: %s expected: %s", r, "-2.000000005")
	}
	r = RelTimeToSecsStr(nil, NSTime{math.MinInt64, math.MinInt32})
	if r != "-9223372036854775808.2147483648" {
		t.Errorf("RelTimeToSecsStr got: %s expected: %s", r, "-9223372036854775808.2147483648")
	}
	r = RelTimeToSecsStr(nil, NSTime{0, 0})
	if r != "0.000000000" {
		t.Errorf("RelTimeToSecsStr got: %s expected: %s", r, "0.000000000")
	}
}

// Calendar that refuses every time.
type badCalendar struct{}

func (badCalendar) Breakdown(int64, bool) (time.Time, bool) {
	return time.Time{}, false
}

// Calendar with a fixed local zone.
type fixedCalendar struct{}

func (fixedCalendar) Breakdown(secs int64, utc bool) (time.Time, bool) {
	tm := time.Unix(secs, 0)
	if utc {
		return tm.UTC(), true
	}
	return tm.In(time.FixedZone("XST", 3600)), true
}

// Absolute times with nanoseconds.
func TestAbsTimeToStr(t *testing.T) {
	stamp := NSTime{1700000000, 5}
	tests := []struct {
		format AbsTimeFormat
		zone   bool
		match  string
	}{
		{AbsTimeUTC, true, "Nov 14, 2023 22:13:20.000000005 UTC"},
		{AbsTimeUTC, false, "Nov 14, 2023 22:13:20.000000005"},
		{AbsTimeNTPUTC, true, "Nov 14, 2023 22:13:20.000000005 UTC"},
		{AbsTimeDOYUTC, false, "2023/318:22:13:20.000000005"},
		{AbsTimeDOYUTC, true, "2023/318:22:13:20.000000005 UTC"},
		{AbsTimeLocal, true, "Nov 14, 2023 23:13:20.000000005 XST"},
	}

	for _, test := range tests {
		r := AbsTimeToStr(nil, fixedCalendar{}, stamp, test.format, test.zone)
		if r != test.match {
			t.Errorf("AbsTimeToStr %d got: %s expected: %s", test.format, r, test.match)
		}
	}

	r := AbsTimeToStr(nil, nil, NSTime{}, AbsTimeUTC, false)
	if r != "(0)Jan  1, 1970 00:00:00.000000000" {
		t.Errorf("AbsTimeToStr epoch got: %s expected: %s", r, "(0)Jan  1, 1970 00:00:00.000000000")
	}

	r = AbsTimeToStr(nil, badCalendar{}, stamp, AbsTimeUTC, true)
	if r != "Not representable" {
		t.Errorf("AbsTimeToStr bad calendar got: %s", r)
	}

	r = AbsTimeToStr(nil, nil, NSTime{math.MaxInt64, 0}, AbsTimeUTC, true)
	if r != "Not representable" {
		t.Errorf("AbsTimeToStr huge got: %s", r)
	}
}

// Absolute times in whole seconds.
func TestAbsTimeSecsToStr(t *testing.T) {
	tests := []struct {
		secs   int64
		format AbsTimeFormat
		zone   bool
		match  string
	}{
		{1700000000, AbsTimeUTC, true, "Nov 14, 2023 22:13:20 UTC"},
		{1700000000, AbsTimeNTPUTC, false, "Nov 14, 2023 22:13:20"},
		{0, AbsTimeNTPUTC, true, "NULL"},
		{0, AbsTimeUTC, false, "Jan  1, 1970 00:00:00"},
		{1700000000, AbsTimeDOYUTC, true, "2023/318:22:13:20 UTC"},
		{0, AbsTimeLocal, true, "Jan  1, 1970 01:00:00 XST"},
	}

	for _, test := range tests {
		r := AbsTimeSecsToStr(nil, fixedCalendar{}, test.secs, test.format, test.zone)
		if r != test.match {
			t.Errorf("AbsTimeSecsToStr %d got: %s expected: %s", test.secs, r, test.match)
		}
	}
}
