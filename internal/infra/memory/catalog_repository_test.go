package memory

import (
	"context"
	"testing"
	"time"

	"github.com/codebyghita/guess-game/internal/domain"
)

func TestCatalogRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		CatalogLoader: NewStaticCatalogLoader(sampleCatalog()),
	}
	repo := NewCatalogRepository(loader, time.Minute)

	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.Catalog(context.Background()); err != nil {
		t.Fatalf("catalog 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

type countingLoader struct {
	CatalogLoader
	calls int
}

func (l *countingLoader) LoadCatalog(ctx context.Context) ([]domain.Question, error) {
	l.calls++
	return l.CatalogLoader.LoadCatalog(ctx)
}

func sampleCatalog() []domain.Question {
	return []domain.Question{
		{
			ID:            "q1",
			Kind:          domain.KindMeme,
			Prompt:        "Dog in a burning room",
			CorrectAnswer: "this is fine",
			Difficulty:    domain.DifficultyEasy,
			Category:      "Classic Memes",
		},
	}
}
