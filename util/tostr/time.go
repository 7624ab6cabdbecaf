/*
 * tostr - Time stamps to text.
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
	"fmt"
	"time"

	"github.com/rcornwell/tostr/util/wmem"
)

// NSTime is seconds and nanoseconds, absolute from the epoch or relative.
type NSTime struct {
	Secs  int64
	Nsecs int32
}

// TimeRes selects how many fraction digits a time shows.
type TimeRes int

const (
	TimeResSecs TimeRes = iota
	TimeResDsecs
	TimeResCsecs
	TimeResMsecs
	TimeResUsecs
	TimeResNsecs
)

// Number of fraction digits, 0 for none.
func (units TimeRes) digits() int {
	switch units {
	case TimeResDsecs:
		return 1
	case TimeResCsecs:
		return 2
	case TimeResMsecs:
		return 3
	case TimeResUsecs:
		return 6
	case TimeResNsecs:
		return 9
	}
	return 0
}

// AbsTimeFormat picks the zone and layout of an absolute time.
type AbsTimeFormat int

const (
	AbsTimeLocal  AbsTimeFormat = iota // Mon dd, yyyy hh:mm:ss in local zone.
	AbsTimeUTC                         // Mon dd, yyyy hh:mm:ss in UTC.
	AbsTimeDOYUTC                      // yyyy/ddd:hh:mm:ss in UTC.
	AbsTimeNTPUTC                      // As UTC, a zero time is NULL.
)

// Calendar breaks seconds since the epoch into calendar fields.
// It returns false when the time can not be represented.
type Calendar interface {
	Breakdown(secs int64, utc bool) (time.Time, bool)
}

// Beyond this the year no longer fits a 32 bit calendar year.
const maxCalendarSecs = int64(1) << 55

// SystemCalendar uses the time package and the local zone of the process.
type SystemCalendar struct{}

func (SystemCalendar) Breakdown(secs int64, utc bool) (time.Time, bool) {
	if secs > maxCalendarSecs || secs < -maxCalendarSecs {
		return time.Time{}, false
	}
	t := time.Unix(secs, 0)
	if utc {
		return t.UTC(), true
	}
	return t.Local(), true
}

const notRepresentable = "Not representable"

// Zone name and calendar fields for secs.
func breakdown(cal Calendar, secs int64, format AbsTimeFormat) (time.Time, string, bool) {
	if cal == nil {
		cal = SystemCalendar{}
	}

	if format == AbsTimeLocal {
		tm, ok := cal.Breakdown(secs, false)
		if !ok {
			return tm, "", false
		}
		zone, _ := tm.Zone()
		if zone == "" {
			zone = "???"
		}
		return tm, zone, true
	}
	tm, ok := cal.Breakdown(secs, true)
	return tm, "UTC", ok
}

func monthName(tm time.Time) string {
	return tm.Month().String()[:3]
}

// AbsTimeToStr shows absTime as a date and time with nanoseconds.
// A nil cal uses SystemCalendar.
func AbsTimeToStr(scope wmem.Scope, cal Calendar, absTime NSTime, format AbsTimeFormat, showZone bool) string {
	tm, zone, ok := breakdown(cal, absTime.Secs, format)
	if !ok {
		return wmem.Strdup(scope, notRepresentable)
	}

	var str string
	switch format {
	case AbsTimeDOYUTC:
		str = fmt.Sprintf("%04d/%03d:%02d:%02d:%02d.%09d",
			tm.Year(), tm.YearDay(), tm.Hour(), tm.Minute(), tm.Second(), absTime.Nsecs)
	default:
		str = fmt.Sprintf("%s %2d, %d %02d:%02d:%02d.%09d",
			monthName(tm), tm.Day(), tm.Year(), tm.Hour(), tm.Minute(), tm.Second(), absTime.Nsecs)
		if absTime.Secs == 0 && absTime.Nsecs == 0 {
			str = "(0)" + str
		}
	}

	if showZone {
		str += " " + zone
	}
	return wmem.Strdup(scope, str)
}

// AbsTimeSecsToStr shows absTime seconds as a date and time.
// A nil cal uses SystemCalendar.
func AbsTimeSecsToStr(scope wmem.Scope, cal Calendar, absTime int64, format AbsTimeFormat, showZone bool) string {
	tm, zone, ok := breakdown(cal, absTime, format)
	if !ok {
		return wmem.Strdup(scope, notRepresentable)
	}

	var str string
	switch format {
	case AbsTimeDOYUTC:
		str = fmt.Sprintf("%04d/%03d:%02d:%02d:%02d",
			tm.Year(), tm.YearDay(), tm.Hour(), tm.Minute(), tm.Second())
	case AbsTimeNTPUTC:
		if absTime == 0 {
			return wmem.Strdup(scope, "NULL")
		}
		fallthrough
	default:
		str = fmt.Sprintf("%s %2d, %d %02d:%02d:%02d",
			monthName(tm), tm.Day(), tm.Year(), tm.Hour(), tm.Minute(), tm.Second())
	}

	if showZone {
		str += " " + zone
	}
	return wmem.Strdup(scope, str)
}

// DisplaySignedTime puts sec and frac into buf with the fraction width
// given by units. A negative frac is shown by its magnitude, with a '-'
// in front when sec is not negative itself. If the text and its NUL do
// not fit buf gets the sentinel instead. Returns the number of characters
// stored.
func DisplaySignedTime(buf []byte, sec int64, frac int32, units TimeRes) int {
	var num [MaxInt64Chars]byte
	var text [1 + MaxInt64Chars + 1 + MaxUint32Digits]byte

	pos := 0
	mag := uint32(frac)
	if frac < 0 {
		mag = -mag
		if sec >= 0 {
			text[0] = '-'
			pos++
		}
	}

	start := IntBack(num[:], len(num), sec)
	pos += copy(text[pos:], num[start:])

	if width := units.digits(); width != 0 {
		start = UintBackLen(num[:], len(num), mag, width)
		text[pos] = '.'
		pos++
		pos += copy(text[pos:], num[start:])
	}

	if pos+1 > len(buf) {
		return tooSmall(buf)
	}
	copy(buf, text[:pos])
	buf[pos] = 0
	return pos
}

// DisplayEpochTime puts seconds since the epoch and frac into buf, as
// DisplaySignedTime does.
func DisplayEpochTime(buf []byte, sec int64, frac int32, units TimeRes) int {
	return DisplaySignedTime(buf, sec, frac, units)
}

// Relative time in seconds, sign, 19 digits, point, a fraction of up to
// 10 digits and terminator.
const RelTimeSecsLen = MaxInt64Chars + 1 + MaxUint32Digits + 1

// RelTimeToSecsStr shows relTime as seconds with nanoseconds.
func RelTimeToSecsStr(scope wmem.Scope, relTime NSTime) string {
	buf := wmem.Alloc(scope, RelTimeSecsLen)

	n := DisplaySignedTime(buf, relTime.Secs, relTime.Nsecs, TimeResNsecs)
	return wmem.String(buf[:n])
}
