package domain

import "context"

// WriterPort accepts parse events for the analytics store
type WriterPort interface {
	WriteBatch(ctx context.Context, xs []ParseEvent) error
	WriteOne(ctx context.Context, x ParseEvent) error
}
