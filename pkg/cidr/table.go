// Package cidr is a routing table of IPv4 and IPv6 networks stored as bit sequences in a trie.
package cidr

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/khalid-nowaf/trie/pkg/trie"
)

var ErrInvalidIP = errors.New("invalid IP address")

// Table keeps IPv4 and IPv6 networks in separate tries, one bit per level.
// The zero value is an empty Table ready for use.
type Table struct {
	ipv4Cidrs trie.Trie[uint8]
	ipv6Cidrs trie.Trie[uint8]
}

func NewTable() *Table {
	return &Table{}
}

// ParseCIDR parses "ip/mask" notation. A bare IP is a single host network (/32 or /128).
func ParseCIDR(s string) (*net.IPNet, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, "/") {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIP, s)
		}
		if ip.To4() != nil {
			return &net.IPNet{IP: ip.To4(), Mask: net.CIDRMask(32, 32)}, nil
		}
		return &net.IPNet{IP: ip, Mask: net.CIDRMask(128, 128)}, nil
	}

	_, ipnet, err := net.ParseCIDR(s)
	if err != nil {
		return nil, err
	}
	return ipnet, nil
}

func (table *Table) family(isV6 bool) *trie.Trie[uint8] {
	if isV6 {
		return &table.ipv6Cidrs
	}
	return &table.ipv4Cidrs
}

// Insert adds ipnet to the table and reports whether it was new.
// 0.0.0.0/0 and ::/0 are stored on the root of their trie.
func (table *Table) Insert(ipnet *net.IPNet) bool {
	bits, isV6 := CidrToBits(ipnet)
	return table.family(isV6).Insert(bits)
}

func (table *Table) Contains(ipnet *net.IPNet) bool {
	bits, isV6 := CidrToBits(ipnet)
	return table.family(isV6).Contains(bits)
}

func (table *Table) Remove(ipnet *net.IPNet) bool {
	bits, isV6 := CidrToBits(ipnet)
	return table.family(isV6).Remove(bits)
}

// LookupIP returns the most specific network containing ip, or nil when no network does.
//
// Parameters:
//   - ip: A string representing the IP address
//
// Returns:
//   - net.IPNet representing the closest matching CIDR, if found, or nil
//   - An error if the IP address cannot be parsed
func (table *Table) LookupIP(ip string) (*net.IPNet, error) {
	parsedIP := net.ParseIP(strings.TrimSpace(ip))
	if parsedIP == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}

	isV6 := parsedIP.To4() == nil
	var ipBits []uint8
	if isV6 {
		ipBits = ipToBits(parsedIP.To16(), 128)
	} else {
		ipBits = ipToBits(parsedIP.To4(), 32)
	}

	longest, found := table.family(isV6).LongestPrefixOf(ipBits)
	if !found {
		return nil, nil
	}
	return BitsToCidr(longest, isV6), nil
}

// Subnets returns every stored network inside ipnet, ipnet itself included when stored.
func (table *Table) Subnets(ipnet *net.IPNet) []*net.IPNet {
	bits, isV6 := CidrToBits(ipnet)
	return toCidrs(table.family(isV6).StartingWith(bits), isV6)
}

// AllCIDRS returns every network of one family, a network before its subnets.
func (table *Table) AllCIDRS(forV6 bool) []*net.IPNet {
	return toCidrs(table.family(forV6).All(), forV6)
}

func (table *Table) AllCidrsString(forV6 bool) []string {
	var cidrs []string
	for _, ipnet := range table.AllCIDRS(forV6) {
		cidrs = append(cidrs, ipnet.String())
	}
	return cidrs
}

// Len returns the number of stored networks of both families.
func (table *Table) Len() int {
	return table.ipv4Cidrs.Len() + table.ipv6Cidrs.Len()
}

func toCidrs(paths [][]uint8, isV6 bool) []*net.IPNet {
	var cidrs []*net.IPNet
	for _, path := range paths {
		cidrs = append(cidrs, BitsToCidr(path, isV6))
	}
	return cidrs
}
