package visitors

import "parsefasta/internal/output"

// Visitor inspects one item and decides whether it is kept. It may return a
// modified copy; the input record is never mutated.
type Visitor func(it output.Item) (keep bool, out output.Item, err error)

// PassThrough returns the item unchanged.
func PassThrough(it output.Item) (bool, output.Item, error) {
	return true, it, nil
}

// Chain applies vs in order, stopping at the first drop or error.
func Chain(vs ...Visitor) Visitor {
	return func(it output.Item) (bool, output.Item, error) {
		for _, v := range vs {
			keep, out, err := v(it)
			if err != nil || !keep {
				return false, out, err
			}
			it = out
		}
		return true, it, nil
	}
}
