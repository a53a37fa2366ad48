package roster_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/showorder/roster"
)

// ExampleLoadCSV reads a ragged column-per-team table and prints each roster.
func ExampleLoadCSV() {
	table := "GO,NXDE,Loco\nMeso,Angela,Ava\nSophia Z.,Meso,Sua\nLuke,,\n"

	r, err := roster.LoadCSV(strings.NewReader(table))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range r.IDs() {
		t, _ := r.Team(id)
		fmt.Println(id, t.Members())
	}

	// Output:
	// go [luke meso sophia_z]
	// nxde [angela meso]
	// loco [ava sua]
}
