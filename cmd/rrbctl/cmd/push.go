package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/pool"
)

var (
	pushIn     string
	pushOut    string
	pushVector int
	pushValues []string
	pushFront  bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push values onto one vector of a pool file and write all vectors back",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(pushIn)
		if err != nil {
			return err
		}
		v, err := vectorIndex(vectors, pushVector)
		if err != nil {
			return err
		}
		for _, a := range pushValues {
			n, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return err
			}
			if pushFront {
				v = v.PushFront(n)
			} else {
				v = v.PushBack(n)
			}
		}
		vectors[pushVector] = v
		log.Info("vector %d now has %d elements", pushVector, v.Len())
		return writeDoc(pushOut, pool.Save(vectors...))
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.Flags().StringVarP(&pushIn, "in", "i", "", "input pool file")
	pushCmd.Flags().StringVarP(&pushOut, "out", "o", "-", "output pool file (- for stdout)")
	pushCmd.Flags().IntVar(&pushVector, "vector", 0, "vector index within the pool file")
	pushCmd.Flags().StringSliceVar(&pushValues, "value", nil, "value to push (repeatable)")
	pushCmd.Flags().BoolVar(&pushFront, "front", false, "push onto the front instead of the back")
	pushCmd.MarkFlagRequired("in")
}
