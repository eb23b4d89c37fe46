package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rrgo/internal/compare"
)

func compareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare one input across policy tables",
		Long: `Estimate the same input under the selected policy table (the base) and
under alternative tables, and report the after-tax differences.

Examples:
  rrgo compare estimate.yaml --with 2022-23
  rrgo compare --years 9 --salary 260000 --all --format csv
  rrgo compare estimate.yaml --policy 2022-23 --with 2024-25 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(cmd, args)
			if err != nil {
				return err
			}

			set, err := a.loadPolicies(cmd)
			if err != nil {
				return err
			}
			snap.Policy = a.policyName(cmd, snap)

			withStr, _ := cmd.Flags().GetString("with")
			all, _ := cmd.Flags().GetBool("all")
			if withStr == "" && !all {
				return fmt.Errorf("--with flag is required to specify policy tables to compare (or use --all)")
			}

			compareEngine := compare.NewCompareEngine(set)
			compareEngine.Logger = a.logger

			ctx := context.Background()
			var comparisonSet *compare.ComparisonSet
			if all {
				comparisonSet, err = compareEngine.CompareAll(ctx, *snap)
			} else {
				comparisonSet, err = compareEngine.Compare(ctx, *snap, parsePolicyList(withStr))
			}
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			if len(args) > 0 {
				comparisonSet.InputPath = args[0]
			}

			return writeComparison(cmd, comparisonSet)
		},
	}

	addInputFlags(cmd)
	cmd.Flags().String("with", "", "Comma-separated list of policy tables to compare against the base")
	cmd.Flags().Bool("all", false, "Compare against every other known policy table")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	return cmd
}

func writeComparison(cmd *cobra.Command, comparisonSet *compare.ComparisonSet) error {
	outputFormat, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	switch strings.ToLower(outputFormat) {
	case "csv":
		formatter := &compare.CSVFormatter{}
		result, err := formatter.Format(comparisonSet)
		if err != nil {
			return fmt.Errorf("failed to format CSV: %w", err)
		}
		fmt.Fprint(out, result)

	case "json":
		formatter := &compare.JSONFormatter{Pretty: true}
		result, err := formatter.Format(comparisonSet)
		if err != nil {
			return fmt.Errorf("failed to format JSON: %w", err)
		}
		fmt.Fprintln(out, result)

	case "table", "console", "":
		formatter := &compare.TableFormatter{}
		fmt.Fprint(out, formatter.Format(comparisonSet))

	default:
		return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", outputFormat)
	}
	return nil
}

// parsePolicyList splits a comma-separated --with value, dropping blanks
func parsePolicyList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

