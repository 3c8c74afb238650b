package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	getIn     string
	getVector int
	getIndex  int
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the element at an index in one vector of a pool file",
	RunE: func(cmd *cobra.Command, args []string) error {
		vectors, err := loadVectors(getIn)
		if err != nil {
			return err
		}
		v, err := vectorIndex(vectors, getVector)
		if err != nil {
			return err
		}
		if getIndex < 0 || getIndex >= v.Len() {
			return fmt.Errorf("index %d out of range (vector has %d elements)", getIndex, v.Len())
		}
		fmt.Println(v.Get(getIndex))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVarP(&getIn, "in", "i", "", "input pool file")
	getCmd.Flags().IntVar(&getVector, "vector", 0, "vector index within the pool file")
	getCmd.Flags().IntVar(&getIndex, "index", 0, "element index")
	getCmd.MarkFlagRequired("in")
}
