package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/clforge/clforge/pkg/logger"
	"github.com/clforge/clforge/pkg/validator"
	"github.com/clforge/clforge/pkg/verify"
)

// errInvalidRUTs makes validate exit non-zero when any input fails.
var errInvalidRUTs = errors.New("one or more RUTs are invalid")

type validation struct {
	Input string `json:"input" yaml:"input"`
	Valid bool   `json:"valid" yaml:"valid"`
	RUT   string `json:"rut,omitempty" yaml:"rut,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) verifierCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "verifier DIGITS...",
		Short:   "Compute the check character of RUT correlatives",
		Example: "  clforge verifier 12345678 11222333",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ruts := make([]verify.RUT, 0, len(args))
			for _, digits := range args {
				n, err := verify.ParseNumeric(digits)
				if err != nil {
					return fmt.Errorf("%s: %w", digits, err)
				}
				r, err := verify.NewRUT(n)
				if err != nil {
					return err
				}
				ruts = append(ruts, r)
			}
			return a.render(ruts, func(w io.Writer) error {
				for _, r := range ruts {
					if _, err := fmt.Fprintln(w, r); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) validateCommand() *cobra.Command {
	var (
		file     string
		digits   string
		verifier string
	)
	cmd := &cobra.Command{
		Use:   "validate [RUT...]",
		Short: "Check RUTs against their check character",
		Long: `Validates written RUTs such as 12.345.678-5, a --digits/--verifier pair,
or every non-empty line of --file ("-" reads stdin; lines starting with # are skipped).
Exits non-zero when any RUT is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if file != "" {
				lines, err := readLines(cmd, file)
				if err != nil {
					return err
				}
				inputs = append(inputs, lines...)
			}

			var results []validation
			switch {
			case digits != "" || verifier != "":
				if err := validator.Apply(
					validator.ValidCorrelative("digits", digits),
					validator.ValidVerifier("verifier", verifier),
				); err != nil {
					return err
				}
				results = append(results, validatePair(digits, verifier))
			case len(inputs) == 0:
				return errors.New("nothing to validate: pass RUTs, --file or --digits with --verifier")
			}

			batch, err := validateAll(cmd, inputs)
			if err != nil {
				return err
			}
			results = append(results, batch...)

			invalid := 0
			for _, r := range results {
				if !r.Valid {
					invalid++
				}
			}
			a.log.DebugContext(cmd.Context(), "validation finished",
				logger.Component("cli"),
				logger.Count(len(results)),
				slog.Int("invalid", invalid),
			)

			if err := a.render(results, func(w io.Writer) error {
				for _, r := range results {
					if err := writeValidation(w, r); err != nil {
						return err
					}
				}
				return nil
			}); err != nil {
				return err
			}
			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", errInvalidRUTs, invalid, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one RUT per line")
	cmd.Flags().StringVar(&digits, "digits", "", "correlative to check, used with --verifier")
	cmd.Flags().StringVar(&verifier, "verifier", "", "check character to compare against --digits")
	cmd.MarkFlagsRequiredTogether("digits", "verifier")
	return cmd
}

func validatePair(digits, verifier string) validation {
	res := validation{Input: digits + "-" + verifier}
	ok, err := verify.ValidateRUTString(digits, verifier)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	n, _ := verify.ParseNumeric(digits)
	v, _ := verify.ParseVerifier(verifier)
	res.Valid = ok
	res.RUT = verify.RUT{Correlative: n, Verifier: v}.String()
	return res
}

func validateOne(input string) validation {
	res := validation{Input: input}
	r, err := verify.ParseRUT(input)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.RUT = r.String()
	res.Valid = r.Valid()
	return res
}

// validateAll checks inputs concurrently. Results keep the input order.
func validateAll(cmd *cobra.Command, inputs []string) ([]validation, error) {
	results := make([]validation, len(inputs))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = validateOne(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func readLines(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func writeValidation(w io.Writer, r validation) error {
	var err error
	switch {
	case r.Error != "":
		_, err = fmt.Fprintf(w, "%s\terror\t%s\n", r.Input, r.Error)
	case r.Valid:
		_, err = fmt.Fprintf(w, "%s\tvalid\t%s\n", r.Input, r.RUT)
	default:
		_, err = fmt.Fprintf(w, "%s\tinvalid\t%s\n", r.Input, r.RUT)
	}
	return err
}

func (a *app) generateCommand() *cobra.Command {
	var (
		n                int
		minimum, maximum int64
		seed             int64
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate distinct random valid RUTs",
		Example: "  clforge generate -n 5 --min 10000000 --max 20000000 --seed 42",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("min") {
				minimum = a.settings.GenerateMin
			}
			if !cmd.Flags().Changed("max") {
				maximum = a.settings.GenerateMax
			}

			opts := []verify.GenerateOption{verify.WithLimit(a.settings.GenerateMaxCount)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, verify.WithSeed(seed))
			}
			ruts, err := verify.Generate(n, minimum, maximum, opts...)
			if err != nil {
				return err
			}
			a.log.DebugContext(cmd.Context(), "ruts generated",
				logger.Component("cli"),
				logger.Count(len(ruts)),
			)

			return a.render(ruts, func(w io.Writer) error {
				for _, r := range ruts {
					if _, err := fmt.Fprintln(w, r); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 1, "number of RUTs")
	cmd.Flags().Int64Var(&minimum, "min", 0, "smallest correlative (default CLFORGE_GENERATE_MIN)")
	cmd.Flags().Int64Var(&maximum, "max", 0, "largest correlative (default CLFORGE_GENERATE_MAX)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible sequence")
	return cmd
}
