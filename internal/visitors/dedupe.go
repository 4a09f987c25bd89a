package visitors

import (
	"parsefasta/internal/output"
	"parsefasta/internal/runutil"
)

// DedupeIDs drops records whose id is among the last window distinct ids
// seen. Not safe for concurrent use.
func DedupeIDs(window int) Visitor {
	seen := runutil.NewLRUSet[string](window)
	return func(it output.Item) (bool, output.Item, error) {
		if seen.Add(it.Rec.ID) {
			return false, it, nil
		}
		return true, it, nil
	}
}
