package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/showorder/constraint"
	"github.com/katalvlaran/showorder/planner"
	"github.com/katalvlaran/showorder/roster"
)

// requestFlags are the constraint flags shared by generate and verify.
type requestFlags struct {
	start string
	end   string
	pins  []string
}

func (r *requestFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&r.start, "start", "s", "", "team that must open the show")
	fs.StringVarP(&r.end, "end", "e", "", "team that must close the show")
	fs.StringArrayVarP(&r.pins, "pin", "p", nil, "pin a team to a 1-based slot, e.g. --pin 3=loco (repeatable)")
}

// request converts the flags into a planner.Request. Team names go through
// roster.Normalize so they match the CSV headers; slots become 0-based.
func (r *requestFlags) request() (planner.Request, error) {
	req := planner.Request{
		Start: roster.Normalize(r.start),
		End:   roster.Normalize(r.end),
	}
	for _, raw := range r.pins {
		slot, team, ok := strings.Cut(raw, "=")
		if !ok {
			return planner.Request{}, fmt.Errorf("pin %q: want SLOT=TEAM", raw)
		}
		n, err := strconv.Atoi(strings.TrimSpace(slot))
		if err != nil || n < 1 {
			return planner.Request{}, fmt.Errorf("pin %q: slot must be a positive integer", raw)
		}
		team = roster.Normalize(team)
		if team == "" {
			return planner.Request{}, fmt.Errorf("pin %q: missing team", raw)
		}
		if req.Positions == nil {
			req.Positions = make(map[int]string)
		}
		if prev, dup := req.Positions[n-1]; dup && prev != team {
			return planner.Request{}, fmt.Errorf("%w: slot %d pinned to %q and %q",
				constraint.ErrConstraintConflict, n, prev, team)
		}
		req.Positions[n-1] = team
	}

	return req, nil
}

func normalizeAll(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = roster.Normalize(id)
	}

	return out
}
