package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arcanaland/cardseed/internal/config"
	"github.com/arcanaland/cardseed/internal/deck"
	"github.com/arcanaland/cardseed/internal/validator"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// hashCmd represents the hash command
var hashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Derive a secret from a deck",
	Long: `Hash reads a deck from a file (or stdin) and derives a 32-byte secret
with PBKDF2-HMAC-SHA256 over the deck's canonical text.

A passphrase can be mixed in with --password, or typed without echo with
--prompt. An empty passphrase at the prompt means no passphrase.

Examples:
  cardseed hash deck.txt
  cardseed shuffle | cardseed hash --encoding base64
  cardseed hash --prompt deck.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		d, err := readDeck(cmd, args)
		if err != nil {
			return err
		}

		encoding := cfg.Encoding
		if cmd.Flags().Changed("encoding") {
			encoding, _ = cmd.Flags().GetString("encoding")
		}
		if !config.ValidEncoding(encoding) {
			return fmt.Errorf("unsupported encoding: %s", encoding)
		}

		strict := cfg.Strict
		if cmd.Flags().Changed("strict") {
			strict, _ = cmd.Flags().GetBool("strict")
		}

		results := validator.NewValidator(d).Validate()
		if !results.Valid() {
			if strict {
				return fmt.Errorf("refusing to hash an invalid deck: %s", strings.Join(results.Errors, "; "))
			}
			for _, e := range results.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), colorize.YellowString("warning: %s", e))
			}
		}

		opts, err := passwordOptions(cmd, len(args) == 0 || args[0] == "-")
		if err != nil {
			return err
		}

		logger.Debug("deriving secret",
			"version", deck.HashVersion,
			"iterations", deck.Iterations,
			"cards", d.Len(),
			"password", len(opts) > 0)
		start := time.Now()
		secret, err := d.Hash(opts...)
		if err != nil {
			return err
		}
		logger.Debug("derived secret", "elapsed", time.Since(start))

		fmt.Fprintln(cmd.OutOrStdout(), encodeSecret(secret, encoding))
		return nil
	},
}

func init() {
	hashCmd.Flags().StringP("password", "p", "", "Passphrase appended to the deck before hashing")
	hashCmd.Flags().Bool("prompt", false, "Read the passphrase from the terminal without echo")
	hashCmd.Flags().StringP("encoding", "e", config.EncodingHex, "Output encoding: hex, base64 or bytes")
	hashCmd.Flags().Bool("strict", true, "Refuse to hash decks with duplicate or missing cards")
	hashCmd.MarkFlagsMutuallyExclusive("password", "prompt")
}

// passwordOptions returns the hash options for the passphrase flags.
// deckFromStdin blocks --prompt, since stdin was already consumed.
func passwordOptions(cmd *cobra.Command, deckFromStdin bool) ([]deck.HashOption, error) {
	if cmd.Flags().Changed("password") {
		password, _ := cmd.Flags().GetString("password")
		return []deck.HashOption{deck.WithPassword(password)}, nil
	}

	prompt, _ := cmd.Flags().GetBool("prompt")
	if !prompt {
		return nil, nil
	}

	fd := int(os.Stdin.Fd())
	if deckFromStdin || !term.IsTerminal(fd) {
		return nil, errors.New("--prompt needs an interactive terminal on stdin; pass the deck as a file")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Passphrase: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("error reading passphrase: %w", err)
	}
	if len(password) == 0 {
		return nil, nil
	}
	return []deck.HashOption{deck.WithPassword(string(password))}, nil
}

// encodeSecret formats a derived secret in the given encoding
func encodeSecret(secret []byte, encoding string) string {
	switch encoding {
	case config.EncodingBase64:
		return base64.StdEncoding.EncodeToString(secret)
	case config.EncodingBytes:
		parts := make([]string, len(secret))
		for i, b := range secret {
			parts[i] = fmt.Sprint(b)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return hex.EncodeToString(secret)
	}
}
