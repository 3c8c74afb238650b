package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadIn string

// loadCmd parses and validates a pool file's shape (bits, node ids,
// cycles, depths) and prints a structural summary, without materializing
// every element the way dump does.
var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a pool file and print a structural summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDoc(loadIn)
		if err != nil {
			return err
		}
		vectors, err := loadVectors(loadIn)
		if err != nil {
			return err
		}
		fmt.Printf("B=%d BL=%d leaves=%d inners=%d vectors=%d\n", doc.B, doc.BL, len(doc.Leaves), len(doc.Inners), len(vectors))
		for i, v := range vectors {
			fmt.Printf("  vector %d: len=%d shift=%d\n", i, v.Len(), v.Shift())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVarP(&loadIn, "in", "i", "", "input pool file")
	loadCmd.MarkFlagRequired("in")
}
