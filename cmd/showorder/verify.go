package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/showorder/search"
)

var errRejected = errors.New("setlist rejected")

type problemView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Slot   int    `json:"slot,omitempty" yaml:"slot,omitempty"` // 1-based, 0 when not tied to a slot
	Detail string `json:"detail" yaml:"detail"`
}

type verifyResult struct {
	Setlist  search.Setlist `json:"setlist" yaml:"setlist"`
	Valid    bool           `json:"valid" yaml:"valid"`
	Problems []problemView  `json:"problems,omitempty" yaml:"problems,omitempty"`
}

func newVerifyCmd(a *app) *cobra.Command {
	var rf requestFlags

	cmd := &cobra.Command{
		Use:   "verify TEAM...",
		Short: "Check a proposed setlist",
		Long: `Check a proposed performance order against the roster and the given pins.
Every defect is reported: conflicting neighbours, violated pins, and
missing, duplicated or unknown teams. The exit status is non-zero when
the setlist is rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := rf.request()
			if err != nil {
				return err
			}
			p, err := a.planner()
			if err != nil {
				return err
			}

			seq := normalizeAll(args)
			res := verifyResult{Setlist: seq, Valid: true}
			var verr *search.VerifyError
			switch err := p.Verify(seq, req); {
			case err == nil:
			case errors.As(err, &verr):
				res.Valid = false
				for _, pr := range verr.Problems {
					res.Problems = append(res.Problems, problemView{Kind: string(pr.Kind), Slot: pr.Index + 1, Detail: pr.Detail})
				}
			default:
				return err
			}

			if err := render(cmd.OutOrStdout(), a.cfg.Format, res, func(w io.Writer) error {
				return writeVerify(w, res)
			}); err != nil {
				return err
			}
			if !res.Valid {
				return errRejected
			}

			return nil
		},
	}
	rf.register(cmd.Flags())

	return cmd
}

func writeVerify(w io.Writer, res verifyResult) error {
	if res.Valid {
		_, err := fmt.Fprintf(w, "ok: %s\n", res.Setlist)
		return err
	}
	for _, p := range res.Problems {
		var err error
		if p.Slot > 0 {
			_, err = fmt.Fprintf(w, "%s (slot %d): %s\n", p.Kind, p.Slot, p.Detail)
		} else {
			_, err = fmt.Fprintf(w, "%s: %s\n", p.Kind, p.Detail)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
