package buissines

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/social/repository/memory"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

func newTestUseCase() (*UseCase, *memory.Repository) {
	repo := memory.NewRepository()
	repo.AddUser("u-1")
	repo.AddUser("u-2")
	return NewUseCase(repo, zerolog.Nop()), repo
}

func TestFollow(t *testing.T) {
	uc, repo := newTestUseCase()

	if err := uc.Follow(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.HasFollow("u-1", "u-2") {
		t.Fatal("expected follow to be stored")
	}
}

func TestFollow_DuplicateIsNoOp(t *testing.T) {
	uc, repo := newTestUseCase()

	if err := uc.Follow(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Follow(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("expected duplicate follow to be absorbed, got %v", err)
	}
	if repo.FollowCount() != 1 {
		t.Fatalf("expected a single follow row, got %d", repo.FollowCount())
	}
}

func TestFollow_Self(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.Follow(context.Background(), "u-1", "u-1")
	if !pkgerrors.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFollow_UnknownTarget(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.Follow(context.Background(), "u-1", "ghost")
	if !pkgerrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestFollow_RequiresViewer(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.Follow(context.Background(), "", "u-2")
	if !pkgerrors.IsUnauthorizedError(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestUnfollow(t *testing.T) {
	uc, repo := newTestUseCase()

	if err := uc.Follow(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Unfollow(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.HasFollow("u-1", "u-2") {
		t.Fatal("expected follow to be removed")
	}
}

func TestUnfollow_Missing(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.Unfollow(context.Background(), "u-1", "u-2")
	if !pkgerrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestBlock_SeversFollowsBothWays(t *testing.T) {
	uc, repo := newTestUseCase()

	if err := uc.Follow(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Follow(context.Background(), "u-2", "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.Block(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repo.HasBlock("u-1", "u-2") {
		t.Fatal("expected block to be stored")
	}
	if repo.FollowCount() != 0 {
		t.Fatalf("expected all follows severed, got %d", repo.FollowCount())
	}
}

func TestBlock_DuplicateIsNoOp(t *testing.T) {
	uc, _ := newTestUseCase()

	if err := uc.Block(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Block(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("expected duplicate block to be absorbed, got %v", err)
	}
}

func TestBlock_Self(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.Block(context.Background(), "u-1", "u-1")
	if !pkgerrors.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUnblock(t *testing.T) {
	uc, repo := newTestUseCase()

	if err := uc.Block(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Unblock(context.Background(), "u-1", "u-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.HasBlock("u-1", "u-2") {
		t.Fatal("expected block to be removed")
	}
}

func TestUnblock_Missing(t *testing.T) {
	uc, _ := newTestUseCase()

	err := uc.Unblock(context.Background(), "u-1", "u-2")
	if !pkgerrors.IsNotFoundError(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
