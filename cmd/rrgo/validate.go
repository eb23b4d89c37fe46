package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rrgo/internal/config"
	"github.com/rgehrsitz/rrgo/internal/domain"
	"github.com/rgehrsitz/rrgo/internal/output"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate an input file and the policy table it selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			snap, err := config.NewInputParser().LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			set, err := a.loadPolicies(cmd)
			if err != nil {
				return err
			}
			policy, err := set.Get(a.policyName(cmd, snap))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid (policy %s)\n", inputFile, policy.Name)
			return nil
		},
	}
}

func policiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the available policy tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadPolicies(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available policy tables (* = default):")
			for _, name := range set.Names() {
				policy, _ := set.Get(name)
				fmt.Fprintln(out, policyLine(policy, name == set.Default))
			}
			return nil
		},
	}
}

// policyLine is one row of the policies listing
func policyLine(p domain.Policy, isDefault bool) string {
	marker := " "
	if isDefault {
		marker = "*"
	}
	return fmt.Sprintf("%s %-10s tax-free %s + %s/year, ETP cap %s  %s",
		marker, p.Name,
		output.Money(p.TaxFree.Base), output.Money(p.TaxFree.PerYear), output.Money(p.ETP.Cap),
		p.Description)
}
