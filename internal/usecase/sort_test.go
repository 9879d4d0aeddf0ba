package usecase

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"postboard/internal/domain/model"
)

func titles(pubs []model.Publication) []string {
	out := make([]string, len(pubs))
	for i, p := range pubs {
		out[i] = p.Title
	}
	return out
}

func pubs(titles ...string) []model.Publication {
	out := make([]model.Publication, len(titles))
	for i, t := range titles {
		out[i] = model.Publication{Title: t, Body: fmt.Sprintf("body %d", i)}
	}
	return out
}

func TestSortByTitle_LocaleOrder(t *testing.T) {
	s := NewTitleSorter(language.Und)

	got := s.SortByTitle(pubs("Zebra", "apple"))
	assert.Equal(t, []string{"apple", "Zebra"}, titles(got))

	got = s.SortByTitle(pubs("zoo", "Éclair", "eagle", "Banana", "äpfel"))
	assert.Equal(t, []string{"äpfel", "Banana", "eagle", "Éclair", "zoo"}, titles(got))
}

func TestSortByTitle_UsesConfiguredLanguage(t *testing.T) {
	// Swedish places ä after z; the root collation treats it as a.
	in := pubs("ärlig", "zebra", "apa")

	assert.Equal(t, []string{"apa", "ärlig", "zebra"}, titles(NewTitleSorter(language.Und).SortByTitle(in)))
	assert.Equal(t, []string{"apa", "zebra", "ärlig"}, titles(NewTitleSorter(language.Swedish).SortByTitle(in)))
}

func TestSortByTitle_EmptyAndSingle(t *testing.T) {
	s := NewTitleSorter(language.Und)

	got := s.SortByTitle(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	one := pubs("only")
	assert.Equal(t, one, s.SortByTitle(one))
}

func TestSortByTitle_DoesNotMutateInput(t *testing.T) {
	in := pubs("c", "a", "b")
	snapshot := append([]model.Publication(nil), in...)

	out := NewTitleSorter(language.Und).SortByTitle(in)

	assert.Equal(t, snapshot, in)
	assert.Equal(t, []string{"a", "b", "c"}, titles(out))
}

func TestSortByTitle_TiesKeepInputOrder(t *testing.T) {
	in := []model.Publication{
		{Title: "same", Body: "first"},
		{Title: "alpha", Body: "x"},
		{Title: "same", Body: "second"},
		{Title: "same", Body: "third"},
	}

	out := NewTitleSorter(language.Und).SortByTitle(in)

	require.Len(t, out, 4)
	assert.Equal(t, "alpha", out[0].Title)
	assert.Equal(t, []string{"first", "second", "third"}, []string{out[1].Body, out[2].Body, out[3].Body})
}

func TestSortByTitle_PermutationOrderedIdempotent(t *testing.T) {
	words := []string{"delta", "Alpha", "charlie", "Bravo", "écho", "echo", "Foxtrot", "golf", "Ünder", "under", "123", ""}
	rnd := rand.New(rand.NewSource(42))
	s := NewTitleSorter(language.Und)
	c := collate.New(language.Und)

	for round := 0; round < 50; round++ {
		in := make([]model.Publication, rnd.Intn(25))
		for i := range in {
			in[i] = model.Publication{Title: words[rnd.Intn(len(words))], Body: fmt.Sprint(i)}
		}

		out := s.SortByTitle(in)

		assert.ElementsMatch(t, in, out)
		for i := 1; i < len(out); i++ {
			assert.LessOrEqual(t, c.CompareString(out[i-1].Title, out[i].Title), 0)
		}
		assert.Equal(t, out, s.SortByTitle(out))
	}
}
