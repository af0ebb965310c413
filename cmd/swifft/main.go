// Command swifft is a small CLI around package swifft: hash a file,
// benchmark the batch driver, or replay the package's own golden
// vectors as a self-test.
package main

import (
	"encoding/hex"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/breadbored/LibSWIFFT/swifft"
	"github.com/breadbored/LibSWIFFT/swifftio"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := &cli.App{
		Name:  "swifft",
		Usage: "hash files and benchmark the SWIFFT compression function",
		Commands: []*cli.Command{
			hashCommand(&logger),
			benchCommand(&logger),
			selftestCommand(&logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("swifft failed")
	}
}

func hashCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "print the hex-encoded SWIFFT hash of a file",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one file argument", 1)
			}
			path := c.Args().Get(0)
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("opening %s: %w", path, err)
			}
			defer f.Close()

			h, err := swifftio.HashReader(f)
			if err != nil {
				return fmt.Errorf("hashing %s: %w", path, err)
			}
			b := h.Bytes()
			logger.Info().Str("file", path).Msg("hashed")
			fmt.Println(hex.EncodeToString(b[:]))
			return nil
		},
	}
}

func benchCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "run ComputeMultiple over N random blocks and report throughput",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "blocks", Value: 1000, Usage: "number of blocks to hash"},
		},
		Action: func(c *cli.Context) error {
			n := c.Int("blocks")
			if n <= 0 {
				return cli.Exit("--blocks must be positive", 1)
			}

			rng := rand.New(rand.NewSource(1))
			inputs := make([][swifft.InputBlockSize]byte, n)
			for i := range inputs {
				rng.Read(inputs[i][:])
			}

			start := time.Now()
			swifft.ComputeMultiple(inputs)
			elapsed := time.Since(start)

			logger.Info().
				Int("blocks", n).
				Dur("elapsed", elapsed).
				Float64("blocks_per_sec", float64(n)/elapsed.Seconds()).
				Msg("bench complete")
			return nil
		},
	}
}

func selftestCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "selftest",
		Usage: "recompute the package's golden vectors and report pass/fail",
		Action: func(c *cli.Context) error {
			failures := 0

			var zero [swifft.InputBlockSize]byte
			if h := swifft.Compute(&zero); !isZeroHash(h) {
				logger.Error().Msg("golden vector failed: all-zero input should hash to the all-zero output")
				failures++
			} else {
				logger.Info().Msg("golden vector passed: all-zero input")
			}

			var ramp [swifft.InputBlockSize]byte
			for i := range ramp {
				ramp[i] = byte(i)
			}
			a := swifft.Compute(&ramp)
			b := swifft.Compute(&ramp)
			if *a != *b {
				logger.Error().Msg("golden vector failed: ramp input is not deterministic")
				failures++
			} else {
				logger.Info().Msg("golden vector passed: ramp input determinism")
			}

			if failures > 0 {
				return cli.Exit(fmt.Sprintf("%d golden vector(s) failed", failures), 1)
			}
			logger.Info().Msg("all golden vectors passed")
			return nil
		},
	}
}

func isZeroHash(h *swifft.Hash) bool {
	for _, c := range h {
		if c != 0 {
			return false
		}
	}
	return true
}
