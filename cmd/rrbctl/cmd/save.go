package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/pool"
	"github.com/arximboldi/rrb-go/rrb"
)

var (
	saveIn  string
	saveOut string
)

// saveCmd ingests a plain JSON array-of-arrays (one array of int64 per
// vector) and writes it out as a pool document, the inverse of dump.
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Convert plain JSON arrays of values into a pool file",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(saveIn)
		if err != nil {
			return fmt.Errorf("reading %s: %w", saveIn, err)
		}
		var rows [][]json.Number
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("parsing %s as a JSON array of arrays: %w", saveIn, err)
		}

		policy := buildPolicy()
		vectors := make([]*rrb.Vector[element], len(rows))
		for i, row := range rows {
			v := rrb.NewWithPolicy[element](policy)
			for _, n := range row {
				x, err := strconv.ParseInt(string(n), 10, 64)
				if err != nil {
					return fmt.Errorf("vector %d: %w", i, err)
				}
				v = v.PushBack(x)
			}
			vectors[i] = v
		}

		log.Info("saved %d vectors", len(vectors))
		return writeDoc(saveOut, pool.Save(vectors...))
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().StringVarP(&saveIn, "in", "i", "", "input JSON file: an array of arrays of int64")
	saveCmd.Flags().StringVarP(&saveOut, "out", "o", "-", "output pool file (- for stdout)")
	saveCmd.MarkFlagRequired("in")
}
