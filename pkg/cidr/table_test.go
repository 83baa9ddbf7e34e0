package cidr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *net.IPNet {
	t.Helper()
	ipnet, err := ParseCIDR(s)
	require.NoError(t, err)
	return ipnet
}

func TestParseCIDR(t *testing.T) {
	assert.Equal(t, "10.0.0.1/32", mustParse(t, "10.0.0.1").String())
	assert.Equal(t, "2001:db8::1/128", mustParse(t, "2001:db8::1").String())
	assert.Equal(t, "192.168.1.0/24", mustParse(t, " 192.168.1.1/24 ").String())

	_, err := ParseCIDR("not-an-ip")
	assert.ErrorIs(t, err, ErrInvalidIP)
	_, err = ParseCIDR("10.0.0.0/40")
	assert.Error(t, err)
}

func TestInsertAndRetrieveCidrs(t *testing.T) {
	table := NewTable()
	for _, cidr := range []string{"1.1.1.1/8", "2.1.1.1/8", "3.1.1.1/8", "2001:db8::ff00:42:8329/16"} {
		assert.True(t, table.Insert(mustParse(t, cidr)))
	}
	assert.False(t, table.Insert(mustParse(t, "1.0.0.0/8")), "same network twice")

	assert.Equal(t, 4, table.Len())
	assert.ElementsMatch(t, []string{"1.0.0.0/8", "2.0.0.0/8", "3.0.0.0/8"}, table.AllCidrsString(false))
	assert.Equal(t, []string{"2001::/16"}, table.AllCidrsString(true))
	assert.True(t, table.Contains(mustParse(t, "2.0.0.0/8")))
	assert.False(t, table.Contains(mustParse(t, "2.0.0.0/9")))
}

func TestLookIPv4(t *testing.T) {
	table := NewTable()
	table.Insert(mustParse(t, "192.168.0.0/16"))
	table.Insert(mustParse(t, "192.168.1.1/24"))

	cidr, err := table.LookupIP("192.168.1.77")
	assert.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", cidr.String())

	cidr, err = table.LookupIP("192.168.25.154")
	assert.NoError(t, err)
	assert.Equal(t, "192.168.0.0/16", cidr.String())

	cidr, err = table.LookupIP("10.0.0.1")
	assert.NoError(t, err)
	assert.Nil(t, cidr)

	table.Insert(mustParse(t, "0.0.0.0/0"))
	cidr, err = table.LookupIP("10.0.0.1")
	assert.NoError(t, err)
	assert.Equal(t, "0.0.0.0/0", cidr.String(), "the default route matches everything")

	table.Remove(mustParse(t, "192.168.1.0/24"))
	cidr, err = table.LookupIP("192.168.1.77")
	assert.NoError(t, err)
	assert.Equal(t, "192.168.0.0/16", cidr.String())
}

func TestLookIPv6(t *testing.T) {
	table := NewTable()
	table.Insert(mustParse(t, "2001:db8:abcd:12:1234::/80"))
	table.Insert(mustParse(t, "2001:db8:abcd:12::/64"))

	cidr, err := table.LookupIP("2001:0db8:abcd:12:1234::")
	assert.NoError(t, err)
	assert.Equal(t, "2001:db8:abcd:12:1234::/80", cidr.String())

	cidr, err = table.LookupIP("2001:db8:abcd:12:1234::abcd")
	assert.NoError(t, err)
	assert.Equal(t, "2001:db8:abcd:12:1234::/80", cidr.String())

	cidr, err = table.LookupIP("2001:db8:abcd:12:0000::1")
	assert.NoError(t, err)
	assert.Equal(t, "2001:db8:abcd:12::/64", cidr.String())

	cidr, err = table.LookupIP("192.168.0.1")
	assert.NoError(t, err)
	assert.Nil(t, cidr, "IPv4 lookups do not see IPv6 networks")
}

func TestLookupInvalidIP(t *testing.T) {
	_, err := NewTable().LookupIP("300.1.1.1")
	assert.ErrorIs(t, err, ErrInvalidIP)
}

func TestSubnets(t *testing.T) {
	var table Table
	for _, cidr := range []string{"192.168.0.0/16", "192.168.1.0/24", "192.168.1.128/25", "10.0.0.0/8"} {
		table.Insert(mustParse(t, cidr))
	}

	subnets := []string{}
	for _, ipnet := range table.Subnets(mustParse(t, "192.168.0.0/16")) {
		subnets = append(subnets, ipnet.String())
	}
	assert.Equal(t, []string{"192.168.0.0/16", "192.168.1.0/24", "192.168.1.128/25"}, subnets)

	assert.Len(t, table.Subnets(mustParse(t, "192.168.1.0/24")), 2)
	assert.Empty(t, table.Subnets(mustParse(t, "172.16.0.0/12")))

	// removing a supernet keeps its subnets
	table.Remove(mustParse(t, "192.168.0.0/16"))
	assert.Len(t, table.Subnets(mustParse(t, "192.168.0.0/16")), 2)
}
