package usecase

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"postboard/internal/domain/model"
)

// TitleSorter orders publications by title using the collation rules of a language.
type TitleSorter struct {
	tag language.Tag
}

// NewTitleSorter builds a sorter for tag. language.Und selects the root collation.
func NewTitleSorter(tag language.Tag) *TitleSorter {
	return &TitleSorter{tag: tag}
}

// SortByTitle returns a new slice ordered by title. The input slice is left untouched
// and publications with equal titles keep their relative order.
func (s *TitleSorter) SortByTitle(publications []model.Publication) []model.Publication {
	sorted := make([]model.Publication, len(publications))
	copy(sorted, publications)
	if len(sorted) < 2 {
		return sorted
	}

	// Collators keep scratch buffers and cannot be shared across goroutines.
	c := collate.New(s.tag)
	slices.SortStableFunc(sorted, func(a, b model.Publication) int {
		return c.CompareString(a.Title, b.Title)
	})
	return sorted
}
