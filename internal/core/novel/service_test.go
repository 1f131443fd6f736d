// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package novel

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davitran/inkora/internal/core/asset"
	"github.com/davitran/inkora/internal/core/moderation"
	"github.com/davitran/inkora/internal/platform/apperr"
	"github.com/davitran/inkora/internal/platform/sec"
)

// # Test Fakes

// fakeNovelRepo is an in-memory [NovelRepository] for service tests.
type fakeNovelRepo struct {
	novels   map[string]*GraphicNovel
	episodes map[string][]*Episode
}

func newFakeNovelRepo() *fakeNovelRepo {
	return &fakeNovelRepo{
		novels:   make(map[string]*GraphicNovel),
		episodes: make(map[string][]*Episode),
	}
}

func (repo *fakeNovelRepo) Create(_ context.Context, item *GraphicNovel) error {
	repo.novels[item.ID] = item
	return nil
}

func (repo *fakeNovelRepo) FindByID(_ context.Context, id string) (*GraphicNovel, error) {
	if item, ok := repo.novels[id]; ok {
		item.Episodes = repo.episodes[id]
		return item, nil
	}
	return nil, apperr.NotFound("Graphic novel")
}

func (repo *fakeNovelRepo) FindOwned(_ context.Context, id, ownerID string) (*GraphicNovel, error) {
	item, ok := repo.novels[id]
	if !ok || item.OwnerID == nil || *item.OwnerID != ownerID {
		return nil, apperr.NotFound("Graphic novel")
	}
	item.Episodes = repo.episodes[id]
	return item, nil
}

func (repo *fakeNovelRepo) ListByOwner(_ context.Context, ownerID string) ([]*GraphicNovel, error) {
	var items []*GraphicNovel
	for _, item := range repo.novels {
		if item.IsOwnedBy(ownerID) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (repo *fakeNovelRepo) ListAll(_ context.Context) ([]*GraphicNovel, error) {
	var items []*GraphicNovel
	for _, item := range repo.novels {
		items = append(items, item)
	}
	return items, nil
}

func (repo *fakeNovelRepo) ListByStatus(_ context.Context, status moderation.Status) ([]*GraphicNovel, error) {
	var items []*GraphicNovel
	for _, item := range repo.novels {
		if item.Status == status {
			items = append(items, item)
		}
	}
	return items, nil
}

func (repo *fakeNovelRepo) UpdateStatus(_ context.Context, id string, status moderation.Status) error {
	item, ok := repo.novels[id]
	if !ok {
		return apperr.NotFound("Graphic novel")
	}
	item.Status = status
	return nil
}

func (repo *fakeNovelRepo) CreateEpisodeInSequence(_ context.Context, novelID string, build func(int) (*Episode, error)) (*Episode, error) {
	episode, err := build(len(repo.episodes[novelID]) + 1)
	if err != nil {
		return nil, err
	}
	repo.episodes[novelID] = append(repo.episodes[novelID], episode)
	return episode, nil
}

func (repo *fakeNovelRepo) FindEpisode(_ context.Context, novelID, episodeID string) (*Episode, error) {
	for _, episode := range repo.episodes[novelID] {
		if episode.ID == episodeID {
			return episode, nil
		}
	}
	return nil, apperr.NotFound("Episode")
}

// fakePlacer returns deterministic asset references without touching disk.
type fakePlacer struct{}

func (fakePlacer) PlaceIcon(_ context.Context, kind asset.Kind, fileKind string, _ *multipart.FileHeader) (string, error) {
	return fmt.Sprintf("/uploads/%s/icons/%s.png", kind, fileKind), nil
}

func (fakePlacer) PlaceEpisodeAsset(_ context.Context, kind asset.Kind, parentID string, episodeNumber int, fileKind string, _ *multipart.FileHeader) (string, error) {
	return fmt.Sprintf("/uploads/%s/%s/%d/%s.bin", kind, parentID, episodeNumber, fileKind), nil
}

// recordingCache counts hits, stores, and invalidations.
type recordingCache struct {
	entries     map[string]any
	invalidated int
	storedKeys  []string
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: make(map[string]any)}
}

func (cache *recordingCache) Get(_ context.Context, key string, target interface{}) bool {
	value, ok := cache.entries[key]
	if !ok {
		return false
	}
	if slot, ok := target.(*[]*GraphicNovel); ok {
		*slot = value.([]*GraphicNovel)
		return true
	}
	return false
}

func (cache *recordingCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) {
	cache.entries[key] = value
	cache.storedKeys = append(cache.storedKeys, key)
}

func (cache *recordingCache) Invalidate(_ context.Context, keys ...string) {
	cache.invalidated += len(keys)
	for _, key := range keys {
		delete(cache.entries, key)
	}
}

func newTestService(repo *fakeNovelRepo, cache CatalogCache) *Service {
	return NewService(repo, fakePlacer{}, cache, slog.Default())
}

var (
	creatorClaims = &sec.AuthClaims{UserID: "creator-1", Username: "inkartist", Role: sec.RoleCreator}
	adminClaims   = &sec.AuthClaims{UserID: "admin", Username: "admin", Role: sec.RoleAdmin}
)

// # Submission

func TestCreate_CreatorStartsPending(t *testing.T) {
	service := newTestService(newFakeNovelRepo(), newRecordingCache())

	item, err := service.Create(context.Background(), creatorClaims, "Midnight Ledger", nil)
	require.NoError(t, err)

	// 1. Creator submissions await moderation and carry the owner
	assert.Equal(t, moderation.StatusPending, item.Status)
	require.NotNil(t, item.OwnerID)
	assert.Equal(t, creatorClaims.UserID, *item.OwnerID)
	assert.Equal(t, sec.RoleCreator, item.CreatedByRole)

	// 2. Slug derives from the title
	assert.Equal(t, "midnight-ledger", item.Slug)
}

func TestCreate_AdminPublishesImmediately(t *testing.T) {
	cache := newRecordingCache()
	service := newTestService(newFakeNovelRepo(), cache)

	item, err := service.Create(context.Background(), adminClaims, "House Title", nil)
	require.NoError(t, err)

	// Admin submissions are live at once and ownerless
	assert.Equal(t, moderation.StatusPublished, item.Status)
	assert.Nil(t, item.OwnerID)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCreate_TitleRequired(t *testing.T) {
	service := newTestService(newFakeNovelRepo(), newRecordingCache())

	_, err := service.Create(context.Background(), creatorClaims, "", nil)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
}

func TestCreate_IconPlaced(t *testing.T) {
	service := newTestService(newFakeNovelRepo(), newRecordingCache())

	icon := &multipart.FileHeader{Filename: "cover.png"}
	item, err := service.Create(context.Background(), creatorClaims, "Covered", icon)
	require.NoError(t, err)

	require.NotNil(t, item.IconPath)
	assert.Equal(t, "/uploads/graphic-novels/icons/novel-icon.png", *item.IconPath)
}

// # Episode Sequence

func TestAddEpisode_SequentialNumbers(t *testing.T) {
	repo := newFakeNovelRepo()
	service := newTestService(repo, newRecordingCache())

	item, err := service.Create(context.Background(), creatorClaims, "Serial", nil)
	require.NoError(t, err)

	for expected := 1; expected <= 3; expected++ {
		episode, err := service.AddEpisode(context.Background(), creatorClaims, item.ID, EpisodeUploads{
			Icon: &multipart.FileHeader{Filename: "icon.png"},
			PDF:  &multipart.FileHeader{Filename: "pages.pdf"},
		})
		require.NoError(t, err)

		// Numbers are assigned server-side, gapless from 1
		assert.Equal(t, expected, episode.EpisodeNumber)

		// Assets land under the parent id and the assigned number
		require.NotNil(t, episode.IconPath)
		assert.Equal(t, fmt.Sprintf("/uploads/graphic-novels/%s/%d/icon.bin", item.ID, expected), *episode.IconPath)
		require.NotNil(t, episode.PDFPath)
		assert.Equal(t, fmt.Sprintf("/uploads/graphic-novels/%s/%d/pdf.bin", item.ID, expected), *episode.PDFPath)
	}
}

func TestAddEpisode_OwnershipIsolation(t *testing.T) {
	repo := newFakeNovelRepo()
	service := newTestService(repo, newRecordingCache())

	item, err := service.Create(context.Background(), creatorClaims, "Private", nil)
	require.NoError(t, err)

	intruder := &sec.AuthClaims{UserID: "creator-2", Username: "other", Role: sec.RoleCreator}
	_, err = service.AddEpisode(context.Background(), intruder, item.ID, EpisodeUploads{})

	// Another creator's novel is indistinguishable from a missing one
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Empty(t, repo.episodes[item.ID])
}

func TestAddEpisode_AdminReachesAnyNovel(t *testing.T) {
	repo := newFakeNovelRepo()
	service := newTestService(repo, newRecordingCache())

	item, err := service.Create(context.Background(), creatorClaims, "Moderated", nil)
	require.NoError(t, err)

	episode, err := service.AddEpisode(context.Background(), adminClaims, item.ID, EpisodeUploads{})
	require.NoError(t, err)
	assert.Equal(t, 1, episode.EpisodeNumber)
}

func TestAddEpisode_MissingParent(t *testing.T) {
	service := newTestService(newFakeNovelRepo(), newRecordingCache())

	_, err := service.AddEpisode(context.Background(), adminClaims, "missing-id", EpisodeUploads{})
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Moderation

func TestSetStatus(t *testing.T) {
	repo := newFakeNovelRepo()
	cache := newRecordingCache()
	service := newTestService(repo, cache)

	item, err := service.Create(context.Background(), creatorClaims, "Reviewed", nil)
	require.NoError(t, err)

	// 1. Publish, then send back to pending: every direction is legal
	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusPublished))
	assert.Equal(t, moderation.StatusPublished, repo.novels[item.ID].Status)

	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusPending))
	assert.Equal(t, moderation.StatusPending, repo.novels[item.ID].Status)

	// 2. Re-applying the current status is a harmless no-op
	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusPending))

	// 3. Every applied change invalidated the public cache
	assert.Equal(t, 3, cache.invalidated)

	// 4. Unknown status is rejected before touching storage
	err = service.SetStatus(context.Background(), item.ID, moderation.Status("archived"))
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// 5. Unknown novel surfaces as NotFound
	err = service.SetStatus(context.Background(), "missing-id", moderation.StatusPublished)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

// # Public Views

func TestGetPublished_HidesUnpublished(t *testing.T) {
	service := newTestService(newFakeNovelRepo(), newRecordingCache())

	item, err := service.Create(context.Background(), creatorClaims, "Hidden", nil)
	require.NoError(t, err)

	// Pending content exists but is invisible to the public fetch
	_, err = service.GetPublished(context.Background(), item.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusPublished))

	found, err := service.GetPublished(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
}

func TestListPublished_CacheRoundTrip(t *testing.T) {
	repo := newFakeNovelRepo()
	cache := newRecordingCache()
	service := newTestService(repo, cache)

	item, err := service.Create(context.Background(), adminClaims, "Cached", nil)
	require.NoError(t, err)

	// 1. Cold cache: served from the repository, then stored
	items, err := service.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	require.Len(t, cache.storedKeys, 1)

	// 2. Warm cache: the repository is no longer consulted
	delete(repo.novels, item.ID)
	items, err = service.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)

	// 3. Moderation invalidates, so the next read sees fresh state
	cache.Invalidate(context.Background(), cache.storedKeys[0])
	items, err = service.ListPublished(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

// # Ownership Views

func TestGetOwnedDetail(t *testing.T) {
	service := newTestService(newFakeNovelRepo(), newRecordingCache())

	item, err := service.Create(context.Background(), creatorClaims, "Mine", nil)
	require.NoError(t, err)

	// 1. The owner sees the submission
	found, err := service.GetOwnedDetail(context.Background(), creatorClaims.UserID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)

	// 2. Everyone else sees nothing
	_, err = service.GetOwnedDetail(context.Background(), "creator-2", item.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
