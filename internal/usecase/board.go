package usecase

import (
	"context"
	"fmt"
	"time"

	"postboard/internal/domain/ports"
)

// Board runs the fetch, sort and render pass that fills the publication container.
type Board struct {
	publications ports.PublicationProvider
	sorter       *TitleSorter
	mount        ports.Mount
	logger       ports.Logger
}

// NewBoard constructs a Board use case.
func NewBoard(
	publications ports.PublicationProvider,
	sorter *TitleSorter,
	mount ports.Mount,
	logger ports.Logger,
) *Board {
	return &Board{
		publications: publications,
		sorter:       sorter,
		mount:        mount,
		logger:       logger,
	}
}

// Run executes one pass. Fetch failures degrade to an empty board; mount failures are returned.
func (b *Board) Run(ctx context.Context) error {
	start := time.Now()
	b.logger.Info(ctx, "rendering publications")

	fetched := b.publications.FetchPublications(ctx)
	sorted := b.sorter.SortByTitle(fetched)
	board := BuildBoard(sorted)

	if err := b.mount.Mount(ctx, board); err != nil {
		b.logger.Error(ctx, "failed to mount publications", "error", err)
		return fmt.Errorf("mount publications: %w", err)
	}

	b.logger.Info(ctx, "publications rendered", "cards", len(board.Cards), "duration", time.Since(start))
	return nil
}
