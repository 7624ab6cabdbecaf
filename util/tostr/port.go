/*
 * tostr - Port type names.
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

// PortType is the transport an address port belongs to.
type PortType int

const (
	PortNone PortType = iota
	PortSCTP
	PortTCP
	PortUDP
	PortDCCP
	PortIPX
	PortDDP
	PortIDP
	PortUSB
	PortI2C
	PortIBQP
	PortBluetooth
)

// PortTypeToStr returns the name of ty, or "[Unknown]".
func PortTypeToStr(ty PortType) string {
	switch ty {
	case PortNone:
		return "NONE"
	case PortSCTP:
		return "SCTP"
	case PortTCP:
		return "TCP"
	case PortUDP:
		return "UDP"
	case PortDCCP:
		return "DCCP"
	case PortIPX:
		return "IPX"
	case PortDDP:
		return "DDP"
	case PortIDP:
		return "IDP"
	case PortUSB:
		return "USB"
	case PortI2C:
		return "I2C"
	case PortIBQP:
		return "IBQP"
	case PortBluetooth:
		return "BLUETOOTH"
	}
	return "[Unknown]"
}
