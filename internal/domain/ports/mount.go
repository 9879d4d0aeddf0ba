package ports

import (
	"context"

	"postboard/internal/domain/model"
)

// Mount binds a rendered board into the host page.
type Mount interface {
	Mount(ctx context.Context, board model.Board) error
}
