package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/rgehrsitz/rrgo/internal/output"
)

func calculateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Estimate a redundancy payout",
		Long: `Estimate a redundancy payout from an input file, flags, or both.
Flags override values read from the file.

Examples:
  rrgo calculate estimate.yaml
  rrgo calculate --years 4 --leave-hours 76 --salary 104000 --after-tax
  rrgo calculate estimate.yaml --format pdf --output payout.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, args)
			if err != nil {
				return err
			}

			formatName, _ := cmd.Flags().GetString("format")
			if !cmd.Flags().Changed("format") && a.env.Format != "" {
				formatName = a.env.Format
			}
			f, err := output.LookupFormatter(formatName)
			if err != nil {
				return err
			}

			if afterTax, _ := cmd.Flags().GetBool("after-tax"); afterTax || f.Name() == "summary" {
				snap.View = domain.ViewAfterTax
			}

			engine, err := a.newEngine(cmd, snap)
			if err != nil {
				return err
			}
			est := engine.Estimate(*snap)

			outputPath, _ := cmd.Flags().GetString("output")
			if outputPath != "" || f.Name() == "pdf" {
				written, err := output.WriteFormatted(f, est, outputPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
				return nil
			}

			data, err := f.Format(est)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	addInputFlags(cmd)
	cmd.Flags().StringP("format", "f", "console", fmt.Sprintf("Output format (%s)", strings.Join(output.AvailableFormatterNames(), ", ")))
	cmd.Flags().Bool("after-tax", false, "Show the approximate after-tax figures")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout (pdf always writes a file)")
	return cmd
}
