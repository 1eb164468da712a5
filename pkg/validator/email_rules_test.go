package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailcheck/pkg/emailaddr"
	"github.com/dmitrymomot/mailcheck/pkg/inetaddr"
	"github.com/dmitrymomot/mailcheck/pkg/validator"
)

func TestRequiredString(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.RequiredString("email", "joe@example.com")))

	for _, value := range []string{"", "   ", "\t\n"} {
		err := validator.Apply(validator.RequiredString("email", value))
		require.Error(t, err, "value %q should be rejected", value)
		assert.Equal(t, "validation.required", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func TestValidEmail(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		valid := []string{
			"test@example.com",
			"user.name@domain.co.uk",
			"user+tag@example.org",
			"_______@example.com",
		}

		for _, email := range valid {
			assert.NoError(t, validator.Apply(validator.ValidEmail("email", email)), "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails", func(t *testing.T) {
		invalid := []string{
			"",
			"   ",
			"plainaddress",
			"@missingdomain.com",
			"Joe <joe@example.com>",
			"joe@example.com (Joe)",
		}

		for _, email := range invalid {
			err := validator.Apply(validator.ValidEmail("email", email))
			require.Error(t, err, "Email should be invalid: %s", email)
			assert.Equal(t, "validation.email", validator.ExtractValidationErrors(err)[0].TranslationKey)
		}
	})
}

func TestValidRFC822Email(t *testing.T) {
	t.Run("valid emails", func(t *testing.T) {
		valid := []string{
			"joe@example.com",
			`"john doe"@example.com`,
			"joe@[192.168.1.1]",
			"(work)joe@example.com",
		}

		for _, email := range valid {
			assert.NoError(t, validator.Apply(validator.ValidRFC822Email("email", email)), "Email should be valid: %s", email)
		}
	})

	t.Run("invalid emails report the failing step", func(t *testing.T) {
		tests := map[string]emailaddr.Reason{
			"":                 emailaddr.Empty,
			"jöe@example.com":  emailaddr.NonASCII,
			"joenoatsign":      emailaddr.Malformed,
			"joe@example.com.": emailaddr.TrailingDot,
			"jo e@example.com": emailaddr.InvalidUser,
			"joe@localhost":    emailaddr.InvalidDomain,
		}

		for email, reason := range tests {
			err := validator.Apply(validator.ValidRFC822Email("email", email))
			require.Error(t, err, "Email should be invalid: %q", email)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, "validation.email_rfc822", verrs[0].TranslationKey)
			assert.Equal(t, "email", verrs[0].TranslationValues["field"])
			assert.Equal(t, reason.String(), verrs[0].TranslationValues["reason"])
		}
	})

	t.Run("options are passed to the validator", func(t *testing.T) {
		rule := validator.ValidRFC822Email("email", "joe@[::1]",
			emailaddr.WithIPValidator(inetaddr.New(inetaddr.WithIPv6(false))),
		)
		assert.Error(t, validator.Apply(rule))
		assert.NoError(t, validator.Apply(validator.ValidRFC822Email("email", "joe@[::1]")))
	})
}

func TestValidEmailDomain(t *testing.T) {
	valid := []string{
		"joe@example.com",
		`"a@b"@example.com`,
		"bad user@example.com",
		"joe@[10.0.0.1]",
	}
	for _, email := range valid {
		assert.NoError(t, validator.Apply(validator.ValidEmailDomain("email", email)), "Domain should be valid: %s", email)
	}

	invalid := []string{
		"",
		"example.com",
		"joe@",
		"joe@localhost",
		"joe@example.c",
	}
	for _, email := range invalid {
		err := validator.Apply(validator.ValidEmailDomain("email", email))
		require.Error(t, err, "Domain should be invalid: %s", email)
		assert.Equal(t, "validation.email_domain", validator.ExtractValidationErrors(err)[0].TranslationKey)
	}
}

func TestValidIP(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.ValidIPv4("ip", "192.168.1.1")))
	assert.Error(t, validator.Apply(validator.ValidIPv4("ip", "999.1.1.1")))
	assert.Error(t, validator.Apply(validator.ValidIPv4("ip", "::1")))

	assert.NoError(t, validator.Apply(validator.ValidIP("ip", "192.168.1.1")))
	assert.NoError(t, validator.Apply(validator.ValidIP("ip", "2001:db8::1")))

	err := validator.Apply(validator.ValidIP("ip", "not-an-ip"))
	require.Error(t, err)
	assert.Equal(t, "validation.ip", validator.ExtractValidationErrors(err)[0].TranslationKey)
}

func TestSignupFormValidation(t *testing.T) {
	type SignupForm struct {
		Email       string
		BackupEmail string
	}

	t.Run("valid form", func(t *testing.T) {
		form := SignupForm{Email: "joe@example.com", BackupEmail: "joe.bloggs@example.org"}
		err := validator.Apply(
			validator.RequiredString("email", form.Email),
			validator.ValidRFC822Email("email", form.Email),
			validator.ValidRFC822Email("backup_email", form.BackupEmail),
		)
		assert.NoError(t, err)
	})

	t.Run("collects errors per field", func(t *testing.T) {
		form := SignupForm{Email: "", BackupEmail: "joe@localhost"}
		err := validator.Apply(
			validator.RequiredString("email", form.Email),
			validator.ValidRFC822Email("email", form.Email),
			validator.ValidRFC822Email("backup_email", form.BackupEmail),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"email", "backup_email"}, verrs.Fields())
		assert.Equal(t, []string{"field is required", "must be a valid email address"}, verrs.Get("email"))
	})
}
