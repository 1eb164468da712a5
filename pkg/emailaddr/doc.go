// Package emailaddr checks whether a string is a syntactically well-formed
// email address, following a pragmatic approximation of RFC 822.
//
// The check is purely syntactic. It does not look up DNS or MX records, does
// not check the top-level label against a registry (any alphabetic label of
// two or more letters is accepted, so "nobody@noplace.somedog" passes), and
// does not handle internationalized domain names.
//
// # Pipeline
//
// A candidate goes through the following steps, stopping at the first
// failure:
//
//  1. every byte must be 7-bit ASCII and the string must not be empty
//  2. RFC 822 comments "(...)" outside quoted strings are replaced by a space
//  3. the result must have the shape user@domain; with several "@" the
//     rightmost one leaving both sides non-empty is the split point
//  4. the result must not end with "."
//  5. the user part must be dot-separated words, each either a run of
//     ordinary characters or a double-quoted string
//  6. the domain part must be a bracketed IP literal or a dot-separated list
//     of at least two atoms whose last atom is two or more ASCII letters
//
// # Usage
//
//	emailaddr.IsValid("joe@example.com")     // true
//	emailaddr.IsValid("\"john doe\"@example.com") // true
//	emailaddr.IsValid("joe@[192.168.1.1]")   // true
//	emailaddr.IsValid("joe@localhost")       // false
//
//	// Why did it fail?
//	emailaddr.Check("joe@example.c1") // emailaddr.InvalidDomain
//
// # Extension points
//
// Individual steps can be swapped without touching the rest of the pipeline:
//
//	v := emailaddr.New(
//		emailaddr.WithSymbolicDomainCheck(func(domain string) bool {
//			return strings.HasSuffix(domain, ".internal") ||
//				emailaddr.Default.IsValidSymbolicDomain(domain)
//		}),
//	)
//
// A whole alternative implementation can be plugged in with WithChecker.
//
// # Thread Safety
//
// Patterns are compiled once at package initialization and never mutated.
// Validator is an immutable value, so one instance can be shared freely
// between goroutines.
package emailaddr
