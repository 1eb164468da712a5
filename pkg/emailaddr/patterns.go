package emailaddr

import "regexp"

const (
	// whitespace mirrors the classic \s set, vertical tab included.
	whitespace  = `\t\n\x0b\f\r `
	specialChar = `\x00-\x1f\x7f()<>@,;:'\\".\[\]`
	validChar   = `[^` + whitespace + specialChar + `]`
	quotedUser  = `("[^"]*")`
	atom        = validChar + `+`
	word        = `((` + validChar + `|')+|` + quotedUser + `)`

	// Comments may contain escaped characters, but parentheses inside quoted
	// strings are not comments.
	commentPattern = `(?s)^((?:[^"\\]|\\.)*(?:"(?:[^"\\]|\\.)*"(?:[^"\\]|\\.)*)*)\((?:[^()\\]|\\.)*\)`
)

var (
	addressRegex  = regexp.MustCompile(`^([^\r\n]+)@([^\r\n]+)$`)
	ipDomainRegex = regexp.MustCompile(`^\[(.*)\]$`)
	tldRegex      = regexp.MustCompile(`^[A-Za-z]+$`)

	userRegex   = regexp.MustCompile(`^[` + whitespace + `]*` + word + `(\.` + word + `)*$`)
	domainRegex = regexp.MustCompile(`^` + atom + `(\.` + atom + `)*[` + whitespace + `]*$`)
	atomRegex   = regexp.MustCompile(atom)

	commentRegex = regexp.MustCompile(commentPattern)
)
