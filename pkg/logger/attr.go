package logger

import (
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Reason records a validation failure reason under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Count records a counter under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Email records an address under the key "email" with the local part
// masked: "joe@example.com" becomes "j**@example.com". The domain is kept
// for troubleshooting.
func Email(addr string) slog.Attr {
	return slog.String("email", MaskEmail(addr))
}

// MaskEmail hides everything but the first character before the last "@".
// Values without a local part are fully masked.
func MaskEmail(addr string) string {
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return strings.Repeat("*", len(addr))
	}
	_, size := utf8.DecodeRuneInString(addr)
	return addr[:size] + strings.Repeat("*", utf8.RuneCountInString(addr[size:at])) + addr[at:]
}
