package buissines

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/tag/repository/memory"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

func newTestUseCase() (*UseCase, *memory.Repository) {
	repo := memory.NewRepository()
	return NewUseCase(repo, zerolog.Nop()), repo
}

func TestResolveOrCreateIsIdempotent(t *testing.T) {
	uc, _ := newTestUseCase()

	first, err := uc.ResolveOrCreate(context.Background(), "Chill Vibes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Slug != "chill-vibes" {
		t.Errorf("slug = %q, want %q", first.Slug, "chill-vibes")
	}

	second, err := uc.ResolveOrCreate(context.Background(), "chill vibes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected one row, got ids %q and %q", first.ID, second.ID)
	}
}

func TestResolveOrCreateRejectsEmptyName(t *testing.T) {
	uc, _ := newTestUseCase()

	if _, err := uc.ResolveOrCreate(context.Background(), "  "); !pkgerrors.IsValidationError(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestReplaceForStreamSetsTags(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"FPS", "Ranked", "EU"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := uc.ListForStream(context.Background(), "stream-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 3 {
		t.Errorf("got %d tags, want 3", len(tags))
	}
}

func TestReplaceForStreamIsFullReplace(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"FPS", "Ranked"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"Cozy"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := uc.ListForStream(context.Background(), "stream-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Slug != "cozy" {
		t.Errorf("got %v, want only the cozy tag", tags)
	}
}

func TestReplaceForStreamEmptyClearsAll(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"FPS"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.ReplaceForStream(context.Background(), "stream-1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := uc.ListForStream(context.Background(), "stream-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("got %d tags, want 0 after clearing", len(tags))
	}
}

func TestReplaceForStreamDeduplicatesNames(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"FPS", "fps", " FPS "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := uc.ListForStream(context.Background(), "stream-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 {
		t.Errorf("got %d tags, want 1 after dedup", len(tags))
	}
}

func TestReplaceForStreamRejectsMalformedName(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"FPS", "!!!"})
	if !pkgerrors.IsValidationError(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestPopularOrdersByStreamCount(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.ReplaceForStream(context.Background(), "stream-1", []string{"FPS", "Ranked"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.ReplaceForStream(context.Background(), "stream-2", []string{"FPS"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	popular, err := uc.Popular(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(popular) != 2 {
		t.Fatalf("got %d tags, want 2", len(popular))
	}
	if popular[0].Slug != "fps" || popular[0].StreamCount != 2 {
		t.Errorf("popular[0] = %s(%d), want fps(2)", popular[0].Slug, popular[0].StreamCount)
	}
}

func TestSearchMatchesSubstring(t *testing.T) {
	uc, _ := newTestUseCase()

	if _, err := uc.ResolveOrCreate(context.Background(), "Speedrun"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.ResolveOrCreate(context.Background(), "Cozy"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := uc.Search(context.Background(), "RUN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 1 || tags[0].Slug != "speedrun" {
		t.Errorf("got %v, want only speedrun", tags)
	}
}
