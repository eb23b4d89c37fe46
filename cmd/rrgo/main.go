package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rrgo/internal/calculation"
	"github.com/rgehrsitz/rrgo/internal/clipboard"
	"github.com/rgehrsitz/rrgo/internal/config"
	"github.com/rgehrsitz/rrgo/internal/domain"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries what every subcommand shares once the root pre-run has loaded it
type app struct {
	env    config.Env
	logger calculation.Logger
	debug  bool
	clip   clipboard.Writer
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rrgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(&app{clip: clipboard.System{}})
}

func newRootCmdWithApp(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rrgo",
		Short: "Australian redundancy payout estimator",
		Long: `Rough estimate of an Australian redundancy payout: redundancy weeks from
years of service, annual leave payout, approximate tax under the genuine
redundancy rules and how long the payout would cover mortgage repayments.

This is a simple guide only, not tax advice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv()
			if err != nil {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			a.env = env
			a.logger = calculation.NopLogger{}
			a.debug, _ = cmd.Flags().GetBool("debug")
			if a.debug {
				log.SetOutput(cmd.ErrOrStderr())
				a.logger = simpleCLILogger{}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("policy", "", "Policy table to use (default: input file, then RRGO_POLICY, then "+domain.DefaultPolicyName+")")
	rootCmd.PersistentFlags().String("policy-config", "", "Path to policy config file (default: RRGO_POLICY_FILE, then "+config.DefaultPolicyFile+" if it exists)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output for detailed calculations")

	rootCmd.AddCommand(calculateCmd(a))
	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(summaryCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(policiesCmd(a))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
