package pool

import "encoding/json"

// Document is the on-wire pool format: a flat table of leaves and inner
// nodes (each keyed by an id unique within this document), plus a list of
// vector roots that reference into that table. Node ids are
// document-local and dense only by convention — Load accepts any
// distinct non-negative ints.
type Document[T any] struct {
	B       int             `json:"B"`
	BL      int             `json:"BL"`
	Leaves  []LeafRecord[T] `json:"leaves"`
	Inners  []InnerRecord   `json:"inners"`
	Vectors []VectorRecord  `json:"vectors"`
}

// LeafRecord is [id, [values...]] on the wire.
type LeafRecord[T any] struct {
	ID     int
	Values []T
}

func (r LeafRecord[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.ID, r.Values})
}

func (r *LeafRecord[T]) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[0], &r.ID); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &r.Values)
}

// InnerBody describes one inner node's children, in order. Relaxed marks
// whether the node is a relaxed node; cumulative sizes are never stored on
// the wire — Load recomputes them from each child's own subtree size.
type InnerBody struct {
	Children []int `json:"children"`
	Relaxed  bool  `json:"relaxed,omitempty"`
}

// InnerRecord is [id, {children, relaxed}] on the wire.
type InnerRecord struct {
	ID   int
	Body InnerBody
}

func (r InnerRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{r.ID, r.Body})
}

func (r *InnerRecord) UnmarshalJSON(data []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if err := json.Unmarshal(tuple[0], &r.ID); err != nil {
		return err
	}
	return json.Unmarshal(tuple[1], &r.Body)
}

// VectorRecord references a root inner-node id (or -1 for the canonical
// empty strict root) and a tail leaf id.
type VectorRecord struct {
	Root int `json:"root"`
	Tail int `json:"tail"`
}
