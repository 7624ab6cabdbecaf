/*
 * tostr - Address and byte field renderers.
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
	"net/netip"
	"strings"

	config "github.com/rcornwell/tostr/config/configparser"
	"github.com/rcornwell/tostr/util/tostr"
	"github.com/rcornwell/tostr/util/wmem"
)

// register field kinds on initialize.
func init() {
	config.RegisterField("bytes", renderBytes)
	config.RegisterField("ipv4", renderIPv4)
	config.RegisterField("ipv6", renderIPv6)
	config.RegisterField("guid", renderGUID)
	config.RegisterField("eui64", renderEUI64)
	config.RegisterField("port", renderPort)
}

// Hex dump, punct= puts a separator between bytes.
func renderBytes(scope wmem.Scope, value string, options []config.Option) (string, error) {
	data, err := parseHex(value, 0)
	if err != nil {
		return "", err
	}
	punct := byte(0)
	for i := range options {
		option := &options[i]
		switch option.Name {
		case "punct":
			if len(option.EqualOpt) != 1 {
				return "", errors.New("punct must be one character")
			}
			punct = option.EqualOpt[0]
		default:
			return "", errors.New("bytes invalid option " + option.Name)
		}
		if err := simpleOption(option); err != nil {
			return "", err
		}
	}
	if punct == 0 {
		return tostr.BytesToStr(scope, data, len(data)), nil
	}
	return tostr.BytestringToStr(scope, data, len(data), punct), nil
}

// IPv4 address given as dotted quad or 8 hex digits.
func renderIPv4(scope wmem.Scope, value string, options []config.Option) (string, error) {
	var addr []byte
	if strings.Contains(value, ".") {
		ip, err := netip.ParseAddr(value)
		if err != nil || !ip.Is4() {
			return "", errors.New("invalid IPv4 address: " + value)
		}
		a4 := ip.As4()
		addr = a4[:]
	} else {
		var err error
		addr, err = parseHex(value, 4)
		if err != nil {
			return "", err
		}
	}
	size, err := sizeOnly("ipv4", options, tostr.InetAddrStrLen)
	if err != nil {
		return "", err
	}
	buf := wmem.Alloc(scope, size)
	tostr.IPToStrBuf(addr, buf)
	return bufString(buf), nil
}

// IPv6 address given as text or 32 hex digits.
func renderIPv6(scope wmem.Scope, value string, options []config.Option) (string, error) {
	var addr [16]byte
	ip, err := netip.ParseAddr(value)
	switch {
	case err == nil && ip.Is6() && ip.Zone() == "":
		addr = ip.As16()
	case err == nil:
		return "", errors.New("invalid IPv6 address: " + value)
	default:
		data, err := parseHex(value, 16)
		if err != nil {
			if strings.ContainsAny(value, ".%") {
				return "", errors.New("invalid IPv6 address: " + value)
			}
			return "", err
		}
		copy(addr[:], data)
	}

	prefix := ""
	size := -1
	for i := range options {
		option := &options[i]
		switch option.Name {
		case "prefix":
			prefix = option.EqualOpt
		case "size":
			size, err = optionSize(option)
			if err != nil {
				return "", err
			}
		default:
			return "", errors.New("ipv6 invalid option " + option.Name)
		}
		if err := simpleOption(option); err != nil {
			return "", err
		}
	}
	if size < 0 {
		size = len(prefix) + tostr.Inet6AddrStrLen
	}
	buf := wmem.Alloc(scope, size)
	tostr.IP6ToStrBufWithPrefix(&addr, buf, prefix)
	return bufString(buf), nil
}

// GUID given as 32 hex digits, dashes allowed.
func renderGUID(scope wmem.Scope, value string, options []config.Option) (string, error) {
	data, err := parseHex(strings.Trim(value, "{}"), 16)
	if err != nil {
		return "", err
	}
	size, err := sizeOnly("guid", options, tostr.GUIDStrLen)
	if err != nil {
		return "", err
	}
	guid := tostr.GUIDFromBytes([16]byte(data))
	buf := wmem.Alloc(scope, size)
	tostr.GUIDToStrBuf(&guid, buf)
	return bufString(buf), nil
}

// EUI-64 given as 16 hex digits, separators allowed.
func renderEUI64(scope wmem.Scope, value string, options []config.Option) (string, error) {
	if err := config.CheckOptions("eui64", options); err != nil {
		return "", err
	}
	data, err := parseHex(value, 8)
	if err != nil {
		return "", err
	}
	var eui uint64
	for _, by := range data {
		eui = eui<<8 | uint64(by)
	}
	return tostr.EUI64ToStr(scope, eui), nil
}

// Port type by name or number.
func renderPort(_ wmem.Scope, value string, options []config.Option) (string, error) {
	if err := config.CheckOptions("port", options); err != nil {
		return "", err
	}
	name := strings.ToUpper(value)
	for ty := tostr.PortNone; ty <= tostr.PortBluetooth; ty++ {
		if tostr.PortTypeToStr(ty) == name {
			return tostr.PortTypeToStr(ty), nil
		}
	}
	ty, err := parseInt(value, 32)
	if err != nil {
		return "", errors.New("unknown port type: " + value)
	}
	return tostr.PortTypeToStr(tostr.PortType(ty)), nil
}
