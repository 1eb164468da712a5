package validator

import (
	"net/mail"
	"strings"

	"github.com/dmitrymomot/mailcheck/pkg/emailaddr"
	"github.com/dmitrymomot/mailcheck/pkg/inetaddr"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail validates that a string is a single RFC 5322 address as parsed
// by net/mail, with no display name or comments around it.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}
			return addr.Name == "" && addr.Address == value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidRFC822Email validates email syntax with the emailaddr pipeline.
// The failing step is exposed as TranslationValues["reason"].
func ValidRFC822Email(field, value string, opts ...emailaddr.Option) Rule {
	v := emailaddr.New(opts...)
	values := map[string]any{
		"field": field,
	}

	return Rule{
		Check: func() bool {
			reason := v.Check(value)
			values["reason"] = reason.String()
			return reason.Valid()
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email_rfc822",
			TranslationValues: values,
		},
	}
}

// ValidEmailDomain validates only the domain part of an email address,
// e.g. to restrict sign-ups to well-formed corporate domains. The domain
// starts after the last "@".
func ValidEmailDomain(field, value string) Rule {
	return Rule{
		Check: func() bool {
			at := strings.LastIndexByte(value, '@')
			if at < 0 || at == len(value)-1 {
				return false
			}
			return emailaddr.Default.IsValidDomain(value[at+1:])
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must have a valid email domain",
			TranslationKey: "validation.email_domain",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIPv4 validates that a string is a dotted-quad IPv4 address.
func ValidIPv4(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return inetaddr.IsValidIPv4(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid IPv4 address",
			TranslationKey: "validation.ipv4",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidIP validates that a string is an IPv4 or IPv6 address literal.
func ValidIP(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return inetaddr.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid IP address",
			TranslationKey: "validation.ip",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
