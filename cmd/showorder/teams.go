package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type teamView struct {
	Team       string   `json:"team" yaml:"team"`
	Members    int      `json:"members" yaml:"members"`
	Compatible int      `json:"compatible" yaml:"compatible"`
	Neighbors  []string `json:"neighbors,omitempty" yaml:"neighbors,omitempty"`
}

func newTeamsCmd(a *app) *cobra.Command {
	var withNeighbors bool

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List teams with their size and number of compatible teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.planner()
			if err != nil {
				return err
			}
			reg, g := p.Registry(), p.Graph()

			views := make([]teamView, g.Len())
			for i := range views {
				views[i] = teamView{
					Team:       g.ID(i),
					Members:    reg.At(i).Size(),
					Compatible: g.DegreeIdx(i),
				}
				if withNeighbors {
					for _, j := range g.NeighborIdx(i) {
						views[i].Neighbors = append(views[i].Neighbors, g.ID(j))
					}
				}
			}

			return render(cmd.OutOrStdout(), a.cfg.Format, views, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TEAM\tMEMBERS\tCOMPATIBLE")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%d\t%d\n", v.Team, v.Members, v.Compatible)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().BoolVar(&withNeighbors, "neighbors", false, "include the compatible teams of each team (json/yaml)")

	return cmd
}
