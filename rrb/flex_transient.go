package rrb

// FlexTransient is a Transient that additionally supports batched
// Append/PushFront, mirroring the split between a plain vector-transient
// and a flex-vector-transient: concatenation needs the full rebalancing
// machinery, so it is only offered where a caller has opted in.
type FlexTransient[T any] struct {
	*Transient[T]
}

// FlexTransient begins a batch of in-place mutations that may include
// concatenation.
func (v *Vector[T]) FlexTransient() *FlexTransient[T] {
	return &FlexTransient[T]{Transient: v.Transient()}
}

// Append concatenates other onto the end of the builder's vector.
func (t *FlexTransient[T]) Append(other *Vector[T]) {
	t.mustBeValid()
	t.adopt(t.snapshot().Concat(other))
}

// PushFront prepends x.
func (t *FlexTransient[T]) PushFront(x T) {
	t.mustBeValid()
	t.adopt(t.snapshot().PushFront(x))
}
