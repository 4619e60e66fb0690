package buissines

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/CodesofAkash/twitch-clone/internal/domain/category/dto"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/entities"
	domainerrors "github.com/CodesofAkash/twitch-clone/internal/domain/category/errors"
	"github.com/CodesofAkash/twitch-clone/internal/domain/category/repository/memory"
	pkgerrors "github.com/CodesofAkash/twitch-clone/pkg/errors"
)

// mockCache is a hand-rolled deps.ListingCache for tests
type mockCache struct {
	cached      []entities.Category
	fresh       bool
	invalidated int
}

func (m *mockCache) Get() ([]entities.Category, bool) {
	if !m.fresh {
		return nil, false
	}
	return m.cached, true
}

func (m *mockCache) Set(categories []entities.Category) {
	m.cached = categories
	m.fresh = true
}

func (m *mockCache) Invalidate() {
	m.fresh = false
	m.invalidated++
}

func newTestUseCase() (*UseCase, *memory.Repository, *mockCache) {
	repo := memory.NewRepository()
	cache := &mockCache{}
	uc := NewUseCase(repo, cache, zerolog.Nop())
	return uc, repo, cache
}

func TestResolveOrCreateCreatesCategory(t *testing.T) {
	uc, _, cache := newTestUseCase()

	category, err := uc.ResolveOrCreate(context.Background(), "Valorant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if category.Slug != "valorant" {
		t.Errorf("slug = %q, want %q", category.Slug, "valorant")
	}
	if category.IsPredefined {
		t.Error("custom category must not be predefined")
	}
	if !category.IsActive {
		t.Error("new category must be active")
	}
	if category.ImageURL == "" {
		t.Error("new category must get a placeholder image")
	}
	if cache.invalidated != 1 {
		t.Errorf("listing cache invalidations = %d, want 1", cache.invalidated)
	}
}

func TestResolveOrCreateIsIdempotent(t *testing.T) {
	uc, _, cache := newTestUseCase()

	first, err := uc.ResolveOrCreate(context.Background(), "Valorant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.ResolveOrCreate(context.Background(), "Valorant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected one row, got ids %q and %q", first.ID, second.ID)
	}
	if cache.invalidated != 1 {
		t.Errorf("second call must not invalidate the cache again, invalidations = %d", cache.invalidated)
	}
}

func TestResolveOrCreateMatchesOnDerivedSlug(t *testing.T) {
	uc, _, _ := newTestUseCase()

	first, err := uc.ResolveOrCreate(context.Background(), "Fitness & Health")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := uc.ResolveOrCreate(context.Background(), "fitness   health")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("names deriving the same slug must resolve to one row")
	}
}

// conflictRepo simulates losing the creation race: the slug lookup misses
// but the insert hits the uniqueness constraint.
type conflictRepo struct {
	*memory.Repository
	winner *entities.Category
	misses int
}

func (r *conflictRepo) FindBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	if r.misses > 0 {
		r.misses--
		return nil, domainerrors.ErrCategoryNotFound
	}
	return r.winner, nil
}

func (r *conflictRepo) Create(ctx context.Context, category *entities.Category) error {
	return domainerrors.ErrCategoryAlreadyExists
}

func TestResolveOrCreateAbsorbsCreationRace(t *testing.T) {
	winner := &entities.Category{ID: "cat-1", Name: "Valorant", Slug: "valorant", IsActive: true}
	repo := &conflictRepo{Repository: memory.NewRepository(), winner: winner, misses: 1}
	cache := &mockCache{}
	uc := NewUseCase(repo, cache, zerolog.Nop())

	category, err := uc.ResolveOrCreate(context.Background(), "Valorant")
	if err != nil {
		t.Fatalf("conflict must be absorbed, got: %v", err)
	}
	if category.ID != winner.ID {
		t.Errorf("expected the winner's row, got %q", category.ID)
	}
	if pkgerrors.IsConflictError(err) {
		t.Error("conflict must never surface to the caller")
	}
}

func TestResolveOrCreateReturnsInactiveSlugOwner(t *testing.T) {
	uc, repo, cache := newTestUseCase()

	retired := entities.Category{Name: "Valorant", Slug: "valorant", IsActive: false}
	if err := repo.Create(context.Background(), &retired); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	// The inactive row still owns the slug in the unique index, so
	// get-or-create must hand it back instead of erroring on insert.
	category, err := uc.ResolveOrCreate(context.Background(), "Valorant")
	if err != nil {
		t.Fatalf("get-or-create must never error on an existing slug, got: %v", err)
	}
	if category.ID != retired.ID {
		t.Errorf("expected the existing row %q, got %q", retired.ID, category.ID)
	}
	if category.IsActive {
		t.Error("the existing row must come back unmodified")
	}
	if cache.invalidated != 0 {
		t.Errorf("no create happened, invalidations = %d, want 0", cache.invalidated)
	}
}

func TestGetBySlugHidesInactiveCategories(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	if err := repo.Create(context.Background(), &entities.Category{Name: "Retired", Slug: "retired", IsActive: false}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := uc.GetBySlug(context.Background(), "retired"); !pkgerrors.IsNotFoundError(err) {
		t.Errorf("error = %v, want not found for the public slug lookup", err)
	}
}

func TestResolveOrCreateRejectsEmptyName(t *testing.T) {
	uc, _, _ := newTestUseCase()

	for _, name := range []string{"", "   ", "!!!"} {
		if _, err := uc.ResolveOrCreate(context.Background(), name); !pkgerrors.IsValidationError(err) {
			t.Errorf("ResolveOrCreate(%q) error = %v, want validation error", name, err)
		}
	}
}

func TestResolveByIDMissIsNotFound(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Resolve(context.Background(), dto.ByID("nope"))
	if !pkgerrors.IsNotFoundError(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestResolveByNameCreates(t *testing.T) {
	uc, _, _ := newTestUseCase()

	category, err := uc.Resolve(context.Background(), dto.ByName("Speedrunning"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.Slug != "speedrunning" {
		t.Errorf("slug = %q, want %q", category.Slug, "speedrunning")
	}
}

func TestListActiveUsesCache(t *testing.T) {
	uc, repo, cache := newTestUseCase()

	if err := repo.Create(context.Background(), &entities.Category{Name: "Art", Slug: "art", IsActive: true}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	first, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("got %d categories, want 1", len(first))
	}
	if !cache.fresh {
		t.Fatal("listing must be cached after the first read")
	}

	// The second read must come from the cache even after the store changes.
	if err := repo.Create(context.Background(), &entities.Category{Name: "Music", Slug: "music", IsActive: true}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	second, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("stale cache expected, got %d categories", len(second))
	}
}

func TestListActiveOrdersPredefinedFirst(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	seed := []entities.Category{
		{Name: "Zebra Watching", Slug: "zebra-watching", IsActive: true, IsPredefined: true},
		{Name: "Art", Slug: "art", IsActive: true},
		{Name: "Gaming", Slug: "gaming", IsActive: true, IsPredefined: true},
		{Name: "Retired", Slug: "retired", IsActive: false},
	}
	for i := range seed {
		if err := repo.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	categories, err := uc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Gaming", "Zebra Watching", "Art"}
	if len(categories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(categories), len(want))
	}
	for i, name := range want {
		if categories[i].Name != name {
			t.Errorf("categories[%d] = %q, want %q", i, categories[i].Name, name)
		}
	}
}

func TestListWithStatsOrdersByLiveViewers(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	seed := []entities.Category{
		{Name: "Art", Slug: "art", IsActive: true},
		{Name: "Gaming", Slug: "gaming", IsActive: true},
		{Name: "Music", Slug: "music", IsActive: true},
	}
	for i := range seed {
		if err := repo.Create(context.Background(), &seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	repo.SetStats("art", 2, 10)
	repo.SetStats("gaming", 5, 300)
	repo.SetStats("music", 1, 0)

	stats, err := uc.ListWithStats(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2 (capped)", len(stats))
	}
	if stats[0].Slug != "gaming" || stats[1].Slug != "art" {
		t.Errorf("order = [%s %s], want [gaming art]", stats[0].Slug, stats[1].Slug)
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	if err := repo.Create(context.Background(), &entities.Category{Name: "Art", Slug: "art", IsActive: true}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	categories, err := uc.Search(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 0 {
		t.Errorf("blank query must return an empty set, got %d", len(categories))
	}
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	if err := repo.Create(context.Background(), &entities.Category{Name: "Counter-Strike", Slug: "counter-strike", IsActive: true}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	categories, err := uc.Search(context.Background(), "STRIKE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("got %d matches, want 1", len(categories))
	}
}

func TestRepoErrorsPropagate(t *testing.T) {
	repo := &erroringRepo{}
	uc := NewUseCase(repo, &mockCache{}, zerolog.Nop())

	_, err := uc.ListActive(context.Background())
	if !pkgerrors.IsDatabaseError(err) {
		t.Errorf("error = %v, want database error", err)
	}
}

type erroringRepo struct {
	memory.Repository
}

func (r *erroringRepo) ListActive(ctx context.Context) ([]entities.Category, error) {
	return nil, domainerrors.ErrDatabaseOperation
}
