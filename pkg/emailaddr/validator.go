package emailaddr

import (
	"strings"

	"github.com/dmitrymomot/mailcheck/pkg/inetaddr"
)

// Checker exposes the individual steps of the validation pipeline.
// Validator implements it; alternative implementations can be plugged in
// with WithChecker.
type Checker interface {
	IsValidUser(user string) bool
	IsValidDomain(domain string) bool
	IsValidSymbolicDomain(domain string) bool
	StripComments(s string) string
}

// IPValidator checks the contents of a bracketed domain literal,
// e.g. "192.168.1.1" for "joe@[192.168.1.1]".
type IPValidator interface {
	IsValid(s string) bool
}

// Reason tells which step of the pipeline rejected a candidate.
type Reason string

const (
	OK            Reason = "ok"
	Empty         Reason = "empty"
	NonASCII      Reason = "non_ascii"
	Malformed     Reason = "malformed"
	TrailingDot   Reason = "trailing_dot"
	InvalidUser   Reason = "invalid_user"
	InvalidDomain Reason = "invalid_domain"
)

// Valid reports whether r is OK.
func (r Reason) Valid() bool { return r == OK }

func (r Reason) String() string { return string(r) }

// Option configures a Validator.
type Option func(*Validator)

// WithIPValidator replaces the IP literal validator.
// Nil is ignored.
func WithIPValidator(ip IPValidator) Option {
	return func(v *Validator) {
		if ip != nil {
			v.ip = ip
		}
	}
}

// WithMaxAtoms caps the number of domain atoms taken into account by the
// symbolic domain check. Atoms past the cap are ignored, so the top-level
// label is the last counted atom. Zero or less means no cap.
func WithMaxAtoms(n int) Option {
	return func(v *Validator) {
		v.maxAtoms = max(n, 0)
	}
}

// WithUserCheck replaces the user part check.
func WithUserCheck(fn func(user string) bool) Option {
	return func(v *Validator) { v.userFn = fn }
}

// WithDomainCheck replaces the whole domain part check.
func WithDomainCheck(fn func(domain string) bool) Option {
	return func(v *Validator) { v.domainFn = fn }
}

// WithSymbolicDomainCheck replaces the check applied to non-bracketed domains
// once they matched the atom grammar.
func WithSymbolicDomainCheck(fn func(domain string) bool) Option {
	return func(v *Validator) { v.symbolicFn = fn }
}

// WithCommentStripper replaces the comment stripping step.
func WithCommentStripper(fn func(s string) string) Option {
	return func(v *Validator) { v.stripFn = fn }
}

// WithChecker routes all four pipeline steps through c.
// Nil is ignored.
func WithChecker(c Checker) Option {
	return func(v *Validator) {
		if c == nil {
			return
		}
		v.userFn = c.IsValidUser
		v.domainFn = c.IsValidDomain
		v.symbolicFn = c.IsValidSymbolicDomain
		v.stripFn = c.StripComments
	}
}

// Validator checks email address syntax. The zero value is ready to use:
// IPv4 and IPv6 literals are accepted and the number of domain atoms is
// unbounded.
type Validator struct {
	ip       IPValidator
	maxAtoms int

	userFn     func(string) bool
	domainFn   func(string) bool
	symbolicFn func(string) bool
	stripFn    func(string) string
}

// Default is the zero-configuration Validator used by the package-level
// helpers.
var Default = Validator{}

// New creates a Validator with the given options applied.
func New(opts ...Option) Validator {
	var v Validator
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// IsValid reports whether candidate is a well-formed email address.
func (v Validator) IsValid(candidate string) bool {
	return v.Check(candidate).Valid()
}

// IsValidPtr is IsValid for optional input. A nil candidate is invalid.
func (v Validator) IsValidPtr(candidate *string) bool {
	if candidate == nil {
		return false
	}
	return v.IsValid(*candidate)
}

// Check runs the validation pipeline and returns the reason of the first
// failing step, or OK.
func (v Validator) Check(candidate string) Reason {
	if candidate == "" {
		return Empty
	}
	if !isASCII(candidate) {
		return NonASCII
	}

	address := v.StripComments(candidate)

	groups := addressRegex.FindStringSubmatch(address)
	if groups == nil {
		return Malformed
	}

	if strings.HasSuffix(address, ".") {
		return TrailingDot
	}

	if !v.IsValidUser(groups[1]) {
		return InvalidUser
	}

	if !v.IsValidDomain(groups[2]) {
		return InvalidDomain
	}

	return OK
}

// IsValidUser reports whether user is a valid local part: dot-separated
// words, each a run of ordinary characters and apostrophes or a
// double-quoted string. Leading whitespace is tolerated.
func (v Validator) IsValidUser(user string) bool {
	if v.userFn != nil {
		return v.userFn(user)
	}
	return userRegex.MatchString(user)
}

// IsValidDomain reports whether domain is either a bracketed IP literal
// or a symbolic domain name. Trailing whitespace is tolerated after a
// symbolic domain.
func (v Validator) IsValidDomain(domain string) bool {
	if v.domainFn != nil {
		return v.domainFn(domain)
	}

	if groups := ipDomainRegex.FindStringSubmatch(domain); groups != nil {
		return v.ipValidator().IsValid(groups[1])
	}

	if !domainRegex.MatchString(domain) {
		return false
	}

	return v.IsValidSymbolicDomain(domain)
}

// IsValidSymbolicDomain reports whether domain has a host label and an
// alphabetic top-level label of two or more characters.
func (v Validator) IsValidSymbolicDomain(domain string) bool {
	if v.symbolicFn != nil {
		return v.symbolicFn(domain)
	}

	n := -1
	if v.maxAtoms > 0 {
		n = v.maxAtoms
	}
	atoms := atomRegex.FindAllString(domain, n)

	// A host name must precede the top-level label.
	if len(atoms) < 2 {
		return false
	}

	tld := atoms[len(atoms)-1]
	if len(tld) < 2 {
		return false
	}

	return tldRegex.MatchString(tld)
}

// StripComments replaces every RFC 822 comment outside quoted strings with
// a single space. Nested comments are removed innermost first, so the
// substitution is repeated from the start of the string until nothing
// changes.
func (v Validator) StripComments(s string) string {
	if v.stripFn != nil {
		return v.stripFn(s)
	}

	// Every effective round shrinks the string by at least one byte.
	for i, n := 0, len(s)+1; i < n; i++ {
		stripped := commentRegex.ReplaceAllString(s, "${1} ")
		if stripped == s {
			break
		}
		s = stripped
	}

	return s
}

func (v Validator) ipValidator() IPValidator {
	if v.ip == nil {
		return inetaddr.Validator{}
	}
	return v.ip
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// IsValid reports whether candidate is a well-formed email address using
// the Default validator.
func IsValid(candidate string) bool {
	return Default.IsValid(candidate)
}

// Check runs the Default validator and returns the reason of the first
// failing step, or OK.
func Check(candidate string) Reason {
	return Default.Check(candidate)
}

// StripComments replaces RFC 822 comments in s with single spaces.
func StripComments(s string) string {
	return Default.StripComments(s)
}

var _ Checker = Validator{}
