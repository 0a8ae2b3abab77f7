package interfaces

import "context"

// ISequence hands out monotonically increasing numeric ids per entity name.
type ISequence interface {
	Next(ctx context.Context, name string) (int64, error)
}
