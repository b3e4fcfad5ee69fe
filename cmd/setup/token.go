package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"finalloc/internal/config"
	"finalloc/internal/middleware"
)

type tokenCmd struct {
	ttl     time.Duration
	subject string
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "print a bearer token for AUTH_SECRET" }
func (*tokenCmd) Usage() string {
	return `token [-ttl <duration>] [-subject <name>]

  Prints an HS256 access token signed with AUTH_SECRET. -ttl defaults to
  AUTH_TOKEN_TTL.
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.ttl, "ttl", 0, "Token lifetime (default AUTH_TOKEN_TTL)")
	f.StringVar(&c.subject, "subject", "dashboard", "Token subject")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "Error: AUTH_SECRET is not set.")
		return subcommands.ExitUsageError
	}

	ttl := c.ttl
	if ttl <= 0 {
		ttl = cfg.AuthTokenTTL
	}

	token, err := middleware.GenerateAccessToken(cfg.AuthSecret, c.subject, ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error signing token: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(token)
	return subcommands.ExitSuccess
}
