package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sfclint/internal/config"
	"sfclint/internal/rule"
	"sfclint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List built-in rules and their configured state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit, err := cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return fmt.Errorf("failed to get config flag: %w", err)
		}
		reg := rules.Default()
		cfg, err := loadConfig(cmd.Context(), cmd.ErrOrStderr(), reg, explicit, false)
		if err != nil {
			return err
		}
		return printRules(cmd.OutOrStdout(), reg, cfg)
	},
}

func printRules(out io.Writer, reg *rule.Registry, cfg *config.Config) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range reg.Rules() {
		desc := ""
		if d, ok := r.(rule.Describer); ok {
			desc = d.Description()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID(), cfg.State(r.ID()), desc)
	}
	return tw.Flush()
}
