package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	diffIn    string
	diffLeft  int
	diffRight int
	diffAll   bool
)

// diffCmd compares two vectors within a pool file element by element,
// reporting a length mismatch or every (or just the first) differing
// index, the way slice/concat report their own summaries.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare two vectors in a pool file element by element",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(diffIn)
		if err != nil {
			return err
		}
		left, err := vectorIndex(vectors, diffLeft)
		if err != nil {
			return err
		}
		right, err := vectorIndex(vectors, diffRight)
		if err != nil {
			return err
		}

		if left.Len() != right.Len() {
			fmt.Printf("length mismatch: vector %d has %d elements, vector %d has %d\n", diffLeft, left.Len(), diffRight, right.Len())
			return fmt.Errorf("vectors differ")
		}

		var mismatches int
		for i := 0; i < left.Len(); i++ {
			lv, rv := left.Get(i), right.Get(i)
			if lv == rv {
				continue
			}
			mismatches++
			fmt.Printf("index %d: %v != %v\n", i, lv, rv)
			if !diffAll {
				break
			}
		}

		if mismatches == 0 {
			fmt.Println("vectors are equal")
			return nil
		}
		return fmt.Errorf("vectors differ")
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().StringVarP(&diffIn, "in", "i", "", "input pool file")
	diffCmd.Flags().IntVar(&diffLeft, "left", 0, "first vector index within the pool file")
	diffCmd.Flags().IntVar(&diffRight, "right", 1, "second vector index within the pool file")
	diffCmd.Flags().BoolVar(&diffAll, "all", false, "print every differing index instead of stopping at the first")
	diffCmd.MarkFlagRequired("in")
}
