package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateIn string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Walk every vector in a pool file and report any structural invariant violation",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(validateIn)
		if err != nil {
			return err
		}
		var bad int
		for i, v := range vectors {
			if err := v.CheckInvariants(); err != nil {
				bad++
				fmt.Printf("vector %d: INVALID: %v\n", i, err)
				continue
			}
			fmt.Printf("vector %d: ok (%d elements)\n", i, v.Len())
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d vectors failed validation", bad, len(vectors))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateIn, "in", "i", "", "input pool file")
	validateCmd.MarkFlagRequired("in")
}
