// Command mailcheck validates email address syntax.
//
// Addresses are taken from the arguments, or read line by line from stdin
// when no arguments are given. Each address produces one line on stdout:
//
//	valid	joe@example.com
//	invalid(invalid_domain)	joe@localhost
//
// The exit status is 0 when every address is valid, 1 when at least one is
// invalid and 2 on usage or configuration errors.
//
// Settings are read from MAILCHECK_* environment variables (and an optional
// .env file); command-line flags take precedence.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/mailcheck/pkg/config"
	"github.com/dmitrymomot/mailcheck/pkg/emailaddr"
	"github.com/dmitrymomot/mailcheck/pkg/inetaddr"
	"github.com/dmitrymomot/mailcheck/pkg/logger"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// Config holds the environment-driven settings.
type Config struct {
	Env       string `env:"ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	AllowIPv6 bool   `env:"ALLOW_IPV6" envDefault:"true"`
	MaxAtoms  int    `env:"MAX_ATOMS" envDefault:"0"`
	JSON      bool   `env:"JSON" envDefault:"false"`
}

type result struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("MAILCHECK_")); err != nil {
		fmt.Fprintf(stderr, "mailcheck: %v\n", err)
		return exitUsage
	}

	fs := pflag.NewFlagSet("mailcheck", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: mailcheck [flags] [address ...]")
		fs.PrintDefaults()
	}
	jsonOut := fs.Bool("json", cfg.JSON, "print one JSON object per address")
	allowIPv6 := fs.Bool("ipv6", cfg.AllowIPv6, "accept IPv6 domain literals")
	maxAtoms := fs.Int("max-atoms", cfg.MaxAtoms, "only consider the first N domain labels (0 = all)")
	logLevel := fs.String("log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "mailcheck: %v\n", err)
		return exitUsage
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "mailcheck: invalid log level %q\n", *logLevel)
		return exitUsage
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "mailcheck"),
		logger.WithLevel(level),
		logger.WithOutput(stderr),
	)

	v := emailaddr.New(
		emailaddr.WithIPValidator(inetaddr.New(inetaddr.WithIPv6(*allowIPv6))),
		emailaddr.WithMaxAtoms(*maxAtoms),
	)
	log.Debug("validator configured",
		slog.Bool("ipv6", *allowIPv6),
		slog.Int("max_atoms", *maxAtoms),
	)

	addresses := fs.Args()
	if len(addresses) == 0 {
		var err error
		if addresses, err = readLines(stdin); err != nil {
			log.Error("failed to read stdin", logger.Error(err))
			return exitUsage
		}
	}

	enc := json.NewEncoder(stdout)
	invalid := 0
	for _, addr := range addresses {
		reason := v.Check(addr)
		if !reason.Valid() {
			invalid++
			log.Debug("invalid address", logger.Email(addr), logger.Reason(reason.String()))
		}

		if *jsonOut {
			if err := enc.Encode(result{Address: addr, Valid: reason.Valid(), Reason: reason.String()}); err != nil {
				log.Error("failed to write result", logger.Error(err))
				return exitUsage
			}
			continue
		}

		status := "valid"
		if !reason.Valid() {
			status = "invalid(" + reason.String() + ")"
		}
		fmt.Fprintf(stdout, "%s\t%s\n", status, addr)
	}

	log.Info("addresses checked",
		logger.Count("total", len(addresses)),
		logger.Count("invalid", invalid),
	)

	if invalid > 0 {
		return exitInvalid
	}
	return exitOK
}

// readLines returns the non-blank lines of r. Leading whitespace is kept
// since it is significant for the user part.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
