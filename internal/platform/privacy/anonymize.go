// Package privacy reduces personal data to forms that are safe to log.
package privacy

import (
	"fmt"
	"net/netip"
)

// AnonymizeIP truncates an address to its network: /24 for IPv4 (including
// IPv4-mapped IPv6) and /48 for IPv6.
//
//	"192.168.1.47"                 -> "192.168.1.0"
//	"2001:db8:85a3::8a2e:370:7334" -> "2001:0db8:85a3::"
//
// Empty and "unknown" inputs give "unknown"; unparseable ones give "invalid".
func AnonymizeIP(ip string) string {
	if ip == "" || ip == "unknown" {
		return "unknown"
	}

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap()

	if addr.Is4() {
		b := addr.As4()
		return fmt.Sprintf("%d.%d.%d.0", b[0], b[1], b[2])
	}

	b := addr.As16()
	return fmt.Sprintf("%02x%02x:%02x%02x:%02x%02x::", b[0], b[1], b[2], b[3], b[4], b[5])
}
