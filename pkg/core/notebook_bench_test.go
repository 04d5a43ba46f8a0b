package core_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/scribe/pkg/core"
)

func seeded(b *testing.B, n int) *core.Notebook {
	b.Helper()
	nb := core.NewNotebook(core.NotebookConfig{EventBuffer: 1})
	for i := 0; i < n; i++ {
		nb.OpenForCreate()
		_ = nb.UpdateDraftTitle(fmt.Sprintf("Note %d", i))
		_ = nb.UpdateDraftContent("payload")
		if _, err := nb.Save(); err != nil {
			b.Fatal(err)
		}
	}
	return nb
}

// BenchmarkSave_Create measures the add/save cycle on a growing collection.
// Run with: go test -bench=. -benchmem -run=^$ ./pkg/core/...
func BenchmarkSave_Create(b *testing.B) {
	nb := core.NewNotebook(core.NotebookConfig{EventBuffer: 1})
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		nb.OpenForCreate()
		_ = nb.UpdateDraftTitle("title")
		if _, err := nb.Save(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSave_Edit_10k measures editing the last note of a 10,000 note collection.
func BenchmarkSave_Edit_10k(b *testing.B) {
	nb := seeded(b, 10000)
	last, _ := nb.NoteAt(nb.Len() - 1)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if err := nb.OpenForEdit(last); err != nil {
			b.Fatal(err)
		}
		_ = nb.UpdateDraftTitle("edited")
		if _, err := nb.Save(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNotes_10k measures the copy handed to the list view on every render.
func BenchmarkNotes_10k(b *testing.B) {
	nb := seeded(b, 10000)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if got := len(nb.Notes()); got != 10000 {
			b.Fatalf("expected 10000 notes, got %d", got)
		}
	}
}
