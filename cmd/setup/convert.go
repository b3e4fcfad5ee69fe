package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"finalloc/internal/config"
	"finalloc/internal/encryption"
	"finalloc/internal/store"
)

// convertCmd rewrites the data file sealed (encrypt) or plain (decrypt).
type convertCmd struct {
	encrypt bool
	file    string
}

func (c *convertCmd) Name() string {
	if c.encrypt {
		return "encrypt"
	}
	return "decrypt"
}

func (c *convertCmd) Synopsis() string {
	if c.encrypt {
		return "seal the data file with ENCRYPTION_KEY"
	}
	return "rewrite the data file as plain JSON"
}

func (c *convertCmd) Usage() string {
	return c.Name() + ` [-file <path>]

  Reads the data file (plain or sealed) and writes it back in the other
  form using ENCRYPTION_KEY. -file defaults to DATA_FILE.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Data file to convert (default DATA_FILE)")
}

func (c *convertCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if !cfg.EncryptionEnabled() {
		fmt.Fprintln(os.Stderr, "Error: ENCRYPTION_KEY is not set. Run \"setup keygen\" first.")
		return subcommands.ExitUsageError
	}

	path := c.file
	if path == "" {
		path = cfg.DataFile
	}

	n, err := convertFile(ctx, path, cfg.EncryptionKey, c.encrypt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%sed %s (%d investments)\n", c.Name(), path, n)
	return subcommands.ExitSuccess
}

// convertFile reads path with the key and rewrites it sealed or plain.
// It returns the number of records written.
func convertFile(ctx context.Context, path, secret string, encrypt bool) (int, error) {
	cipher, err := encryption.New(secret)
	if err != nil {
		return 0, err
	}

	investments, err := store.NewFileStore(path, cipher).List(ctx)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	target := store.NewFileStore(path, nil)
	if encrypt {
		target = store.NewFileStore(path, cipher)
	}
	if err := target.Replace(ctx, investments); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(investments), nil
}
