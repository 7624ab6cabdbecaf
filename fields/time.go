/*
 * tostr - Time field renderers.
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

package fields

import (
	"errors"
	"strings"
	"time"

	config "github.com/rcornwell/tostr/config/configparser"
	"github.com/rcornwell/tostr/util/tostr"
	"github.com/rcornwell/tostr/util/wmem"
)

// Calendar used for absolute times.
var calendar tostr.Calendar = tostr.SystemCalendar{}

// register field kinds on initialize.
func init() {
	config.RegisterField("secs", renderSecs)
	config.RegisterField("msecs", renderMsecs)
	config.RegisterField("reltime", renderRelTime)
	config.RegisterField("abstime", renderAbsTime)
	config.RegisterField("epoch", renderEpoch)
}

// Duration in seconds, frac= adds a fraction in unit= msecs or nsecs.
// unsigned shows the value as an unsigned 32 bit count.
func renderSecs(scope wmem.Scope, value string, options []config.Option) (string, error) {
	var frac int64
	hasFrac := false
	nsecs := false
	unsigned := false
	for i := range options {
		option := &options[i]
		var err error
		switch option.Name {
		case "frac":
			frac, err = optionInt(option, 32)
			if err != nil {
				return "", err
			}
			if frac < 0 {
				return "", errors.New("frac must not be negative: " + option.EqualOpt)
			}
			hasFrac = true
		case "unit":
			switch strings.ToLower(option.EqualOpt) {
			case "msecs":
				nsecs = false
			case "nsecs":
				nsecs = true
			default:
				return "", errors.New("unit must be msecs or nsecs: " + option.EqualOpt)
			}
		case "unsigned":
			err = switchOption(option)
			unsigned = true
		default:
			return "", errors.New("secs invalid option " + option.Name)
		}
		if err != nil {
			return "", err
		}
		if err := simpleOption(option); err != nil {
			return "", err
		}
	}

	if unsigned {
		if hasFrac {
			return "", errors.New("unsigned does not take a fraction")
		}
		u, err := parseUint(value, 32)
		if err != nil {
			return "", err
		}
		return tostr.UnsignedTimeSecsToStr(scope, uint32(u)), nil
	}

	secs, err := parseInt(value, 32)
	if err != nil {
		return "", err
	}
	if !hasFrac {
		return tostr.SignedTimeSecsToStr(scope, int32(secs)), nil
	}
	return tostr.TimeSecsToStr(scope, int32(secs), uint32(frac), nsecs), nil
}

// Duration in milliseconds.
func renderMsecs(scope wmem.Scope, value string, options []config.Option) (string, error) {
	if err := config.CheckOptions("msecs", options); err != nil {
		return "", err
	}
	msecs, err := parseInt(value, 32)
	if err != nil {
		return "", err
	}
	return tostr.SignedTimeMsecsToStr(scope, int32(msecs)), nil
}

// Get nsecs= option, and secs switch for reltime.
func timeOptions(kind string, options []config.Option, allowed ...string) (int32, map[string]string, error) {
	var nsecs int64
	seen := map[string]string{}
	for i := range options {
		option := &options[i]
		ok := option.Name == "nsecs"
		for _, name := range allowed {
			ok = ok || option.Name == name
		}
		if !ok {
			return 0, nil, errors.New(kind + " invalid option " + option.Name)
		}
		if err := simpleOption(option); err != nil {
			return 0, nil, err
		}
		if option.Name == "nsecs" {
			var err error
			nsecs, err = optionInt(option, 32)
			if err != nil {
				return 0, nil, err
			}
			if nsecs <= -1000000000 || nsecs >= 1000000000 {
				return 0, nil, errors.New("nsecs out of range: " + option.EqualOpt)
			}
		}
		seen[option.Name] = option.EqualOpt
	}
	return int32(nsecs), seen, nil
}

// Relative time in seconds, nsecs= adds nanoseconds. The secs switch
// shows the result as seconds only.
func renderRelTime(scope wmem.Scope, value string, options []config.Option) (string, error) {
	nsecs, seen, err := timeOptions("reltime", options, "secs")
	if err != nil {
		return "", err
	}
	secs, err := parseInt(value, 64)
	if err != nil {
		return "", err
	}
	rel := tostr.NSTime{Secs: secs, Nsecs: nsecs}
	if v, ok := seen["secs"]; ok {
		if v != "" {
			return "", errors.New("option secs does not take a value")
		}
		return tostr.RelTimeToSecsStr(scope, rel), nil
	}
	if secs != int64(int32(secs)) {
		return "", errors.New("number out of range: " + value)
	}
	return tostr.RelTimeToStr(scope, rel), nil
}

// Absolute time as seconds since the epoch or RFC 3339 text.
// format= picks utc, local, doy or ntp, zone adds the zone name.
func renderAbsTime(scope wmem.Scope, value string, options []config.Option) (string, error) {
	nsecs, seen, err := timeOptions("abstime", options, "format", "zone")
	if err != nil {
		return "", err
	}
	_, hasNsecs := seen["nsecs"]

	format := tostr.AbsTimeUTC
	if v, ok := seen["format"]; ok {
		switch strings.ToLower(v) {
		case "utc":
			format = tostr.AbsTimeUTC
		case "local":
			format = tostr.AbsTimeLocal
		case "doy":
			format = tostr.AbsTimeDOYUTC
		case "ntp":
			format = tostr.AbsTimeNTPUTC
		default:
			return "", errors.New("format must be utc, local, doy or ntp: " + v)
		}
	}
	v, showZone := seen["zone"]
	if v != "" {
		return "", errors.New("option zone does not take a value")
	}

	secs, err := parseInt(value, 64)
	if err != nil {
		tm, terr := time.Parse(time.RFC3339Nano, value)
		if terr != nil {
			return "", err
		}
		secs = tm.Unix()
		if tm.Nanosecond() != 0 {
			if hasNsecs {
				return "", errors.New("nsecs given twice")
			}
			nsecs = int32(tm.Nanosecond())
			hasNsecs = true
		}
	}

	if hasNsecs {
		if nsecs < 0 {
			return "", errors.New("nsecs must not be negative")
		}
		return tostr.AbsTimeToStr(scope, calendar, tostr.NSTime{Secs: secs, Nsecs: nsecs}, format, showZone), nil
	}
	return tostr.AbsTimeSecsToStr(scope, calendar, secs, format, showZone), nil
}

// Seconds since the epoch with a fraction, frac= gives the fraction in
// units= secs, dsecs, csecs, msecs, usecs or nsecs.
func renderEpoch(scope wmem.Scope, value string, options []config.Option) (string, error) {
	secs, err := parseInt(value, 64)
	if err != nil {
		return "", err
	}
	var frac int64
	units := tostr.TimeResNsecs
	size := tostr.RelTimeSecsLen
	for i := range options {
		option := &options[i]
		switch option.Name {
		case "frac":
			frac, err = optionInt(option, 32)
		case "units":
			switch strings.ToLower(option.EqualOpt) {
			case "secs":
				units = tostr.TimeResSecs
			case "dsecs":
				units = tostr.TimeResDsecs
			case "csecs":
				units = tostr.TimeResCsecs
			case "msecs":
				units = tostr.TimeResMsecs
			case "usecs":
				units = tostr.TimeResUsecs
			case "nsecs":
				units = tostr.TimeResNsecs
			default:
				err = errors.New("invalid units: " + option.EqualOpt)
			}
		case "size":
			size, err = optionSize(option)
		default:
			err = errors.New("epoch invalid option " + option.Name)
		}
		if err != nil {
			return "", err
		}
		if err := simpleOption(option); err != nil {
			return "", err
		}
	}
	buf := wmem.Alloc(scope, size)
	n := tostr.DisplayEpochTime(buf, secs, int32(frac), units)
	return wmem.String(buf[:n]), nil
}
