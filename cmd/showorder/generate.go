package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/showorder/search"
)

type generateResult struct {
	Constraints string           `json:"constraints" yaml:"constraints"`
	Count       int              `json:"count" yaml:"count"`
	Setlists    []search.Setlist `json:"setlists,omitempty" yaml:"setlists,omitempty"`
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rf        requestFlags
		countOnly bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "List valid setlists",
		Long: `List setlists in which no performer appears in two consecutive acts.

Examples:
  # First ten setlists (the default limit)
  showorder generate -r roster.csv

  # Open with "go", close with "dope", put "loco" seventh
  showorder generate -s go -e dope --pin 7=loco

  # Count every valid setlist
  showorder generate --limit 0 --count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := rf.request()
			if err != nil {
				return err
			}
			ord, err := search.ParseOrdering(a.cfg.Ordering)
			if err != nil {
				return err
			}
			p, err := a.planner()
			if err != nil {
				return err
			}
			m, err := p.Constraints(req)
			if err != nil {
				return err
			}

			opts := []search.Option{
				search.WithContext(cmd.Context()),
				search.WithOrdering(ord),
				search.WithLimit(a.cfg.Limit),
			}
			if a.cfg.Strict {
				opts = append(opts, search.WithStrictValidation())
			}
			e, err := p.GenerateValidSetlists(req, opts...)
			if err != nil {
				return err
			}

			res := generateResult{Constraints: m.String()}
			if countOnly {
				res.Count, err = e.Count()
			} else {
				res.Setlists, err = e.Collect()
				res.Count = len(res.Setlists)
			}
			st := e.Stats()
			a.log.Info("generation finished",
				zap.Stringer("constraints", m),
				zap.Int("setlists", res.Count),
				zap.Int("placements", st.Placements),
				zap.Int("dead_ends", st.DeadEnds),
				zap.Error(err))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, res, func(w io.Writer) error {
				return writeSetlists(w, res, countOnly)
			})
		},
	}

	fs := cmd.Flags()
	rf.register(fs)
	fs.IntP("limit", "n", 0, "stop after N setlists, 0 for all (default from config)")
	fs.StringP("ordering", "o", "", "candidate ordering: declared, degree or dynamic")
	fs.Bool("strict", false, "re-verify every setlist before printing it")
	fs.BoolVar(&countOnly, "count", false, "print only the number of setlists")
	_ = a.v.BindPFlag("limit", fs.Lookup("limit"))
	_ = a.v.BindPFlag("ordering", fs.Lookup("ordering"))
	_ = a.v.BindPFlag("strict", fs.Lookup("strict"))

	return cmd
}

func writeSetlists(w io.Writer, res generateResult, countOnly bool) error {
	if countOnly {
		_, err := fmt.Fprintln(w, res.Count)
		return err
	}
	if res.Count == 0 {
		_, err := fmt.Fprintf(w, "no valid setlist (%s)\n", res.Constraints)
		return err
	}
	for i, s := range res.Setlists {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, s); err != nil {
			return err
		}
	}

	return nil
}
