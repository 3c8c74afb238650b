package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arximboldi/rrb-go/internal/heap"
	"github.com/arximboldi/rrb-go/internal/refcount"
	"github.com/arximboldi/rrb-go/pool"
	"github.com/arximboldi/rrb-go/rrb"
)

// element is the value type every rrbctl vector holds.
type element = int64

// buildPolicy wires an *rrb.Policy up from the loaded config's engine
// section, falling back to DefaultPolicy before PersistentPreRunE has run
// (e.g. in tests that call command RunE directly).
func buildPolicy() *rrb.Policy[element] {
	if cfg == nil {
		return rrb.DefaultPolicy[element]()
	}
	var values heap.Heap[element]
	var children heap.Heap[*rrb.Node[element]]
	switch cfg.Engine.Heap {
	case "pooled":
		values = heap.NewPooled[element](rrb.Branches)
		children = heap.NewPooled[*rrb.Node[element]](rrb.Branches)
	default:
		values = heap.NewGC[element]()
		children = heap.NewGC[*rrb.Node[element]]()
	}

	rc := refcount.PolicyAtomic
	switch cfg.Engine.RefCount {
	case "plain":
		rc = refcount.PolicyPlain
	case "none":
		rc = refcount.PolicyNone
	}

	return rrb.NewPolicy(rc, values, children)
}

func readDoc(path string) (*pool.Document[element], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc pool.Document[element]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}

func writeDoc(path string, doc *pool.Document[element]) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding pool document: %w", err)
	}
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func loadVectors(path string) ([]*rrb.Vector[element], error) {
	doc, err := readDoc(path)
	if err != nil {
		return nil, err
	}
	vectors, err := pool.Load(doc, buildPolicy())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return vectors, nil
}

func vectorIndex(vectors []*rrb.Vector[element], i int) (*rrb.Vector[element], error) {
	if i < 0 || i >= len(vectors) {
		return nil, fmt.Errorf("vector index %d out of range (document has %d)", i, len(vectors))
	}
	return vectors[i], nil
}
