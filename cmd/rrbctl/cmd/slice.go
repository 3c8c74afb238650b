package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/pool"
)

var (
	sliceIn     string
	sliceOut    string
	sliceVector int
	sliceTake   int
	sliceDrop   int
)

var sliceCmd = &cobra.Command{
	Use:   "slice",
	Short: "Take a prefix and/or drop a prefix of one vector, writing all vectors back",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(sliceIn)
		if err != nil {
			return err
		}
		v, err := vectorIndex(vectors, sliceVector)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("take") {
			v = v.Take(sliceTake)
		}
		if cmd.Flags().Changed("drop") {
			v = v.Drop(sliceDrop)
		}
		vectors[sliceVector] = v
		log.Info("vector %d now has %d elements", sliceVector, v.Len())
		return writeDoc(sliceOut, pool.Save(vectors...))
	},
}

func init() {
	rootCmd.AddCommand(sliceCmd)
	sliceCmd.Flags().StringVarP(&sliceIn, "in", "i", "", "input pool file")
	sliceCmd.Flags().StringVarP(&sliceOut, "out", "o", "-", "output pool file (- for stdout)")
	sliceCmd.Flags().IntVar(&sliceVector, "vector", 0, "vector index within the pool file")
	sliceCmd.Flags().IntVar(&sliceTake, "take", 0, "keep only the first n elements")
	sliceCmd.Flags().IntVar(&sliceDrop, "drop", 0, "drop the first n elements")
	sliceCmd.MarkFlagRequired("in")
}
