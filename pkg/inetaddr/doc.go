// Package inetaddr checks the syntax of IP address literals such as the ones
// that appear inside square brackets in the domain part of an email address.
//
// Only syntax is checked: the address is never resolved or dialed.
//
// # Usage
//
//	inetaddr.IsValidIPv4("192.168.1.1")  // true
//	inetaddr.IsValidIPv4("999.1.1.1")    // false
//	inetaddr.IsValidIPv6("IPv6:2001:db8::1") // true
//
//	v := inetaddr.New(inetaddr.WithIPv6(false))
//	v.IsValid("::1") // false, dotted quads only
//
// The zero value of Validator accepts both address families.
package inetaddr
