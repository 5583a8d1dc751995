package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/clforge/clforge/pkg/logger"
	"github.com/clforge/clforge/pkg/verify"
)

type normalizedResult struct {
	PPU        string `json:"ppu" yaml:"ppu"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

type numericResult struct {
	PPU     string `json:"ppu" yaml:"ppu"`
	Numeric uint32 `json:"numeric" yaml:"numeric"`
}

func (a *app) ppuCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "ppu PLATE...",
		Short:   "Show the layout, numeric form and check character of plates",
		Example: "  clforge ppu PHZF55 bbc-12 -o json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]verify.PPUView, 0, len(args))
			for _, raw := range args {
				p, err := verify.ParsePPU(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", raw, err)
				}
				a.log.DebugContext(cmd.Context(), "plate parsed", logger.PPU(p))
				views = append(views, p.View())
			}
			return a.render(views, func(w io.Writer) error {
				for _, v := range views {
					if _, err := fmt.Fprintf(w, "%-8s %-7s %s\n", v.Plate, v.Format, v.Complete); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize PLATE...",
		Short: "Print the six-digit canonical form of plates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]normalizedResult, 0, len(args))
			for _, raw := range args {
				normalized, err := verify.NormalizePPU(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", raw, err)
				}
				results = append(results, normalizedResult{PPU: raw, Normalized: normalized})
			}
			return a.render(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintln(w, r.Normalized); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) numericCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "numeric PLATE...",
		Short: "Print the canonical form of plates as numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]numericResult, 0, len(args))
			for _, raw := range args {
				n, err := verify.PPUToNumeric(raw)
				if err != nil {
					return fmt.Errorf("%s: %w", raw, err)
				}
				results = append(results, numericResult{PPU: raw, Numeric: n})
			}
			return a.render(results, func(w io.Writer) error {
				for _, r := range results {
					if _, err := fmt.Fprintln(w, r.Numeric); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
