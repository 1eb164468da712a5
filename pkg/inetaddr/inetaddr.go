package inetaddr

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"
)

// ipv6Tag is the address literal tag RFC 5321 puts in front of IPv6 literals.
const ipv6Tag = "ipv6:"

var ipv4Regex = regexp.MustCompile(`^(\d{1,3})\.(\d{1,3})\.(\d{1,3})\.(\d{1,3})$`)

// Option configures a Validator.
type Option func(*Validator)

// WithIPv6 toggles acceptance of IPv6 literals. Enabled by default.
func WithIPv6(enabled bool) Option {
	return func(v *Validator) {
		v.ipv4Only = !enabled
	}
}

// Validator checks IP literal syntax. It holds no per-call state.
type Validator struct {
	ipv4Only bool
}

// New creates a Validator with the given options applied.
func New(opts ...Option) Validator {
	var v Validator
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// IsValid reports whether s is a valid IPv4 literal or, unless disabled,
// a valid IPv6 literal.
func (v Validator) IsValid(s string) bool {
	if IsValidIPv4(s) {
		return true
	}
	return !v.ipv4Only && IsValidIPv6(s)
}

// IsValid reports whether s is a valid IPv4 or IPv6 literal.
func IsValid(s string) bool {
	return Validator{}.IsValid(s)
}

// IsValidIPv4 reports whether s is a dotted quad with every segment in 0-255.
// Leading zeros are tolerated.
func IsValidIPv4(s string) bool {
	groups := ipv4Regex.FindStringSubmatch(s)
	if groups == nil {
		return false
	}

	for _, segment := range groups[1:] {
		n, err := strconv.Atoi(segment)
		if err != nil || n > 255 {
			return false
		}
	}

	return true
}

// IsValidIPv6 reports whether s is an IPv6 address, optionally prefixed with
// the "IPv6:" tag. Zoned addresses and plain IPv4 addresses are rejected.
func IsValidIPv6(s string) bool {
	if len(s) >= len(ipv6Tag) && strings.EqualFold(s[:len(ipv6Tag)], ipv6Tag) {
		s = s[len(ipv6Tag):]
	}
	if s == "" || strings.Contains(s, "%") {
		return false
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}

	return addr.Is6()
}
