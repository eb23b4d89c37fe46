package main

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rrgo/internal/calculation"
	"github.com/rgehrsitz/rrgo/internal/config"
	"github.com/rgehrsitz/rrgo/internal/domain"
)

// addInputFlags registers the form fields as flags. Amount flags are strings
// so "$104,000" style values are accepted.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("years", "", "Full years of service")
	f.String("leave-hours", "", "Accrued annual leave hours")
	f.String("hours-per-week", "", "Standard hours per week (default 38)")
	f.String("salary", "", "Annual salary")
	f.String("age-group", "", "ETP age group: under60 or 60plus")
	f.Int("age", 0, "Age at termination; overrides --age-group using the policy age threshold")
	f.String("marginal-rate", "", "Marginal tax rate for leave, in percent (default 32)")

	f.String("loan-amount", "", "Mortgage loan amount")
	f.String("loan-term", "", "Mortgage term in years")
	f.String("interest-rate", "", "Mortgage interest rate, percent per year")
	f.Bool("interest-only", false, "Treat the mortgage as interest only")
}

var mortgageFlags = []string{"loan-amount", "loan-term", "interest-rate", "interest-only"}

// loadSnapshot reads the optional input file and overlays any input flags that were set.
func loadSnapshot(cmd *cobra.Command, args []string) (*domain.Snapshot, error) {
	parser := config.NewInputParser()

	snap := &domain.Snapshot{}
	if len(args) > 0 {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		snap = loaded
	}

	flags := cmd.Flags()
	setAmount := func(name string, dst *decimal.Decimal) {
		if flags.Changed(name) {
			v, _ := flags.GetString(name)
			*dst = domain.ParseAmount(v)
		}
	}

	setAmount("years", &snap.Input.YearsOfService)
	setAmount("leave-hours", &snap.Input.AnnualLeaveHours)
	setAmount("hours-per-week", &snap.Input.StandardHoursPerWeek)
	setAmount("salary", &snap.Input.AnnualSalary)
	setAmount("marginal-rate", &snap.Input.MarginalTaxRatePercent)
	if flags.Changed("age-group") {
		v, _ := flags.GetString("age-group")
		snap.Input.AgeGroup = domain.ParseAgeGroup(v)
	}

	for _, name := range mortgageFlags {
		if flags.Changed(name) && snap.Mortgage == nil {
			snap.Mortgage = &domain.MortgageInput{}
		}
	}
	if snap.Mortgage != nil {
		setAmount("loan-amount", &snap.Mortgage.LoanAmount)
		setAmount("loan-term", &snap.Mortgage.LoanTermYears)
		setAmount("interest-rate", &snap.Mortgage.AnnualInterestRatePercent)
		if flags.Changed("interest-only") {
			snap.Mortgage.InterestOnly, _ = flags.GetBool("interest-only")
		}
	}

	if flags.Changed("age") {
		snap.Input.Age, _ = flags.GetInt("age")
	}

	// Flag values are coerced by the engine like form fields; only the file is validated
	return snap, nil
}

// loadPolicies returns the built-in tables plus the resolved policy file, if any
func (a *app) loadPolicies(cmd *cobra.Command) (*domain.PolicySet, error) {
	flagValue, _ := cmd.Flags().GetString("policy-config")
	file := config.ResolvePolicyFile(flagValue, a.env)
	if file != "" {
		a.logger.Debugf("loading policy tables from %s", file)
	}
	return config.NewInputParser().LoadPolicies(file)
}

// policyName picks the table: --policy, then the input file, then RRGO_POLICY.
// An empty result means the set's default.
func (a *app) policyName(cmd *cobra.Command, snap *domain.Snapshot) string {
	if name, _ := cmd.Flags().GetString("policy"); name != "" {
		return name
	}
	if snap != nil && snap.Policy != "" {
		return snap.Policy
	}
	return a.env.Policy
}

// newEngine builds an engine for the selected policy table
func (a *app) newEngine(cmd *cobra.Command, snap *domain.Snapshot) (*calculation.Engine, error) {
	set, err := a.loadPolicies(cmd)
	if err != nil {
		return nil, err
	}
	policy, err := set.Get(a.policyName(cmd, snap))
	if err != nil {
		return nil, err
	}

	engine := calculation.NewEngineWithPolicy(policy)
	engine.SetLogger(a.logger)
	engine.Debug = a.debug
	return engine, nil
}
