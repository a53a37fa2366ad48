package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/showorder/diagnostics"
	"github.com/katalvlaran/showorder/roster"
)

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "explain TEAM_A TEAM_B",
		Short: "Explain whether two teams may perform back to back",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.planner()
			if err != nil {
				return err
			}
			rep, err := p.ExplainPair(roster.Normalize(args[0]), roster.Normalize(args[1]))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, rep, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, rep)
				return err
			})
		},
	}
}

type conflictsResult struct {
	Pairs       []diagnostics.PairReport `json:"pairs" yaml:"pairs"`
	Bottlenecks []diagnostics.Performer  `json:"bottlenecks" yaml:"bottlenecks"`
}

func newConflictsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List every incompatible pair and the performers causing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.planner()
			if err != nil {
				return err
			}
			res := conflictsResult{
				Pairs:       diagnostics.Conflicts(p.Registry()),
				Bottlenecks: diagnostics.Bottlenecks(p.Registry()),
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, res, func(w io.Writer) error {
				for _, pr := range res.Pairs {
					if _, err := fmt.Fprintln(w, pr); err != nil {
						return err
					}
				}
				for _, b := range res.Bottlenecks {
					if _, err := fmt.Fprintf(w, "%s is in %d teams: %s\n", b.Name, len(b.Teams), strings.Join(b.Teams, ", ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
