package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arximboldi/rrb-go/pool"
	"github.com/arximboldi/rrb-go/rrb"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build [values...]",
	Short: "Build a single-vector pool file from literal int64 values",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := rrb.NewWithPolicy[element](buildPolicy())
		for _, a := range args {
			n, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return err
			}
			v = v.PushBack(n)
		}
		doc := pool.Save(v)
		log.Info("built vector with %d elements", v.Len())
		return writeDoc(buildOut, doc)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "-", "output pool file (- for stdout)")
}
