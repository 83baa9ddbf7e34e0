package cidr

import (
	"net"
)

// BitsToCidr converts a slice of binary bits into a net.IPNet structure that represents a CIDR.
// The length of bits is the mask size.
//
// Parameters:
//   - bits: A slice of 0 and 1 values holding the leading bits of the network address.
//   - ipV6: A boolean flag indicating whether the address is IPv6 (true) or IPv4 (false).
//
// Returns:
//   - A pointer to a net.IPNet structure that includes both the IP address and the subnet mask.
//
// Example:
//
//	For the 24 leading bits of "192.168.1.0" and ipV6 set to false, the function returns
//	an IPNet with the IP "192.168.1.0" and the mask "255.255.255.0".
func BitsToCidr(bits []uint8, ipV6 bool) *net.IPNet {
	maxBytes := net.IPv4len
	if ipV6 {
		maxBytes = net.IPv6len
	}

	ipBytes := make([]byte, 0, maxBytes)
	maskBytes := make([]byte, 0, maxBytes)
	currentBit := 0

	for iByte := 0; iByte < maxBytes; iByte++ {
		var ipByte byte
		var maskByte byte
		for i := 0; i < 8; i++ {
			if currentBit < len(bits) {
				ipByte = ipByte<<1 | bits[currentBit]
				maskByte = maskByte<<1 | 1 // one mask bit per address bit
				currentBit++
			} else {
				ipByte = ipByte << 1 // fill the host part with zeros
				maskByte = maskByte << 1
			}
		}
		ipBytes = append(ipBytes, ipByte)
		maskBytes = append(maskBytes, maskByte)
	}

	return &net.IPNet{
		IP:   net.IP(ipBytes),
		Mask: net.IPMask(maskBytes),
	}
}

// CidrToBits returns the leading mask-size bits of the network address of ipnet,
// and whether it is an IPv6 network (a 16 byte mask). A /0 network has no bits.
//
// The function panics if ipnet is nil, validate the input before calling it.
//
// Example:
//
//	For "192.168.1.1/24" the result holds the first 24 bits of 192.168.1.0.
func CidrToBits(ipnet *net.IPNet) ([]uint8, bool) {
	if ipnet == nil {
		panic("[BUG] CidrToBits: IPNet is nil: validate the input before calling CidrToBits")
	}

	isV6 := len(ipnet.Mask) == net.IPv6len
	ip := ipnet.IP.To4()
	if isV6 {
		ip = ipnet.IP.To16()
	}
	maskSize, _ := ipnet.Mask.Size()
	return ipToBits(ip, maskSize), isV6
}

// ipToBits returns the first size bits of ip, most significant bit first.
func ipToBits(ip net.IP, size int) []uint8 {
	if size > len(ip)*8 {
		panic("[BUG] ipToBits: mask is longer than the address")
	}

	path := make([]uint8, size)
	for currentBit := range path {
		byteVal := ip[currentBit/8]
		// shift the wanted bit to the least significant position and isolate it
		path[currentBit] = (byteVal >> (7 - currentBit%8)) & 1
	}
	return path
}
