package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"

	"finalloc/internal/encryption"
)

const envTemplate = `# API keys for live prices.

# Alpha Vantage (ETFs and stocks): https://www.alphavantage.co/support/#api-key
# Free tier: 5 calls per minute, 500 per day.
ALPHA_VANTAGE_KEY=your_alpha_vantage_api_key_here

# Gold API (XAU): https://www.goldapi.io/
# Free tier: 100 requests per month.
GOLD_API_KEY=your_gold_api_key_here

# CoinGecko needs no key.

# Record store: file, sqlite, or postgres.
STORE_DRIVER=file
DATA_FILE=investments.json

# Encrypts the data file at rest. Generated by "setup keygen".
ENCRYPTION_KEY=%s

# Set to require a bearer token on /api. Mint one with "setup token".
AUTH_SECRET=
`

type keygenCmd struct {
	envPath string
	force   bool
}

func (*keygenCmd) Name() string     { return "keygen" }
func (*keygenCmd) Synopsis() string { return "write a .env file with a fresh encryption key" }
func (*keygenCmd) Usage() string {
	return `keygen [-env <path>] [-force]

  Generates a random 32-byte ENCRYPTION_KEY and writes a .env template with
  placeholders for the price API keys. An existing file is left alone
  unless -force is given.
`
}

func (c *keygenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.envPath, "env", ".env", "Path of the .env file to write")
	f.BoolVar(&c.force, "force", false, "Overwrite an existing file")
}

func (c *keygenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	key, err := encryption.GenerateSecret()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating key: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeEnvFile(c.envPath, key, c.force); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s\n\n", c.envPath)
	fmt.Println("Next steps:")
	fmt.Println("  1. Replace the ALPHA_VANTAGE_KEY and GOLD_API_KEY placeholders.")
	fmt.Println("  2. Run \"setup encrypt\" to seal an existing data file.")
	fmt.Println("Keep the .env file out of version control.")
	return subcommands.ExitSuccess
}

// writeEnvFile writes the template with key filled in. It refuses to
// replace an existing file unless force is set.
func writeEnvFile(path, key string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists; use -force to overwrite", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return os.WriteFile(path, []byte(fmt.Sprintf(envTemplate, key)), 0o600)
}
