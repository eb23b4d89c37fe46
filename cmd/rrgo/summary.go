package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rrgo/internal/clipboard"
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/rgehrsitz/rrgo/internal/output"
)

func summaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [input-file]",
		Short: "Print the plain-text summary, optionally copying it or saving a PDF",
		Long: `Print the plain-text payout summary. The summary always includes the
approximate tax figures.

Examples:
  rrgo summary estimate.yaml --copy
  rrgo summary --years 4 --leave-hours 76 --salary 104000 --pdf payout.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, args)
			if err != nil {
				return err
			}
			snap.View = domain.ViewAfterTax

			engine, err := a.newEngine(cmd, snap)
			if err != nil {
				return err
			}
			est := engine.Estimate(*snap)
			text := output.Summary(est)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, text)

			if pdfPath, _ := cmd.Flags().GetString("pdf"); pdfPath != "" {
				written, err := output.WriteFormatted(output.PDFFormatter{}, est, pdfPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nPDF written to %s\n", written)
			}

			if copyText, _ := cmd.Flags().GetBool("copy"); copyText {
				if err := clipboard.Copy(a.clip, text, a.logger); err != nil {
					return err
				}
				fmt.Fprintln(out, "\nCopied!")
			}
			return nil
		},
	}

	addInputFlags(cmd)
	cmd.Flags().Bool("copy", false, "Copy the summary to the clipboard")
	cmd.Flags().String("pdf", "", "Also write the estimate as a PDF to this file")
	return cmd
}
