// Command rrbctl drives the rrb engine and its serialization pool from the
// shell: build vectors from literal values, inspect and mutate them, and
// round-trip them through the pool file format.
package main

import "github.com/arximboldi/rrb-go/cmd/rrbctl/cmd"

func main() {
	cmd.Execute()
}
