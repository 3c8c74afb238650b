package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/rrb"
)

var (
	dumpIn     string
	dumpVector int
	dumpAll    bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print a vector's elements as a JSON array",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(dumpIn)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		if dumpAll {
			rows := make([][]element, len(vectors))
			for i, v := range vectors {
				rows[i] = collect(v)
			}
			return enc.Encode(rows)
		}

		v, err := vectorIndex(vectors, dumpVector)
		if err != nil {
			return err
		}
		return enc.Encode(collect(v))
	},
}

func collect(v *rrb.Vector[element]) []element {
	out := make([]element, 0, v.Len())
	for _, x := range v.Values() {
		out = append(out, x)
	}
	return out
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().StringVarP(&dumpIn, "in", "i", "", "input pool file")
	dumpCmd.Flags().IntVar(&dumpVector, "vector", 0, "vector index within the pool file")
	dumpCmd.Flags().BoolVar(&dumpAll, "all", false, "dump every vector in the file")
	dumpCmd.MarkFlagRequired("in")
}
