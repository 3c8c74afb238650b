package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/pool"
)

var (
	concatIn    string
	concatOut   string
	concatLeft  int
	concatRight int
)

var concatCmd = &cobra.Command{
	Use:   "concat",
	Short: "Concatenate two vectors of a pool file into a new vector, appended to the output",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(concatIn)
		if err != nil {
			return err
		}
		left, err := vectorIndex(vectors, concatLeft)
		if err != nil {
			return err
		}
		right, err := vectorIndex(vectors, concatRight)
		if err != nil {
			return err
		}
		combined := left.Concat(right)
		vectors = append(vectors, combined)
		log.Info("concatenated vectors %d and %d into vector %d (%d elements)", concatLeft, concatRight, len(vectors)-1, combined.Len())
		return writeDoc(concatOut, pool.Save(vectors...))
	},
}

func init() {
	rootCmd.AddCommand(concatCmd)
	concatCmd.Flags().StringVarP(&concatIn, "in", "i", "", "input pool file")
	concatCmd.Flags().StringVarP(&concatOut, "out", "o", "-", "output pool file (- for stdout)")
	concatCmd.Flags().IntVar(&concatLeft, "left", 0, "left operand vector index")
	concatCmd.Flags().IntVar(&concatRight, "right", 1, "right operand vector index")
	concatCmd.MarkFlagRequired("in")
}
