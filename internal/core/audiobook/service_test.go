// Copyright (c) 2026 Inkora. All rights reserved.
// Author: davi.tran.dev@gmail.com

package audiobook

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

// fakeBookRepo is an in-memory [AudiobookRepository] for service tests.
type fakeBookRepo struct {
	books    map[string]*Audiobook
	episodes map[string][]*Episode
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{
		books:    make(map[string]*Audiobook),
		episodes: make(map[string][]*Episode),
	}
}

func (repo *fakeBookRepo) Create(_ context.Context, item *Audiobook) error {
	repo.books[item.ID] = item
	return nil
}

func (repo *fakeBookRepo) FindByID(_ context.Context, id string) (*Audiobook, error) {
	if item, ok := repo.books[id]; ok {
		item.Episodes = repo.episodes[id]
		return item, nil
	}
	return nil, apperr.NotFound("Audiobook")
}

func (repo *fakeBookRepo) FindOwned(_ context.Context, id, ownerID string) (*Audiobook, error) {
	item, ok := repo.books[id]
	if !ok || !item.IsOwnedBy(ownerID) {
		return nil, apperr.NotFound("Audiobook")
	}
	item.Episodes = repo.episodes[id]
	return item, nil
}

func (repo *fakeBookRepo) ListByOwner(_ context.Context, ownerID string) ([]*Audiobook, error) {
	var items []*Audiobook
	for _, item := range repo.books {
		if item.IsOwnedBy(ownerID) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (repo *fakeBookRepo) ListAll(_ context.Context) ([]*Audiobook, error) {
	var items []*Audiobook
	for _, item := range repo.books {
		items = append(items, item)
	}
	return items, nil
}

func (repo *fakeBookRepo) ListByStatus(_ context.Context, status moderation.Status) ([]*Audiobook, error) {
	var items []*Audiobook
	for _, item := range repo.books {
		if item.Status == status {
			items = append(items, item)
		}
	}
	return items, nil
}

func (repo *fakeBookRepo) UpdateStatus(_ context.Context, id string, status moderation.Status) error {
	item, ok := repo.books[id]
	if !ok {
		return apperr.NotFound("Audiobook")
	}
	item.Status = status
	return nil
}

func (repo *fakeBookRepo) CreateEpisodeInSequence(_ context.Context, audiobookID string, build func(int) (*Episode, error)) (*Episode, error) {
	episode, err := build(len(repo.episodes[audiobookID]) + 1)
	if err != nil {
		return nil, err
	}
	repo.episodes[audiobookID] = append(repo.episodes[audiobookID], episode)
	return episode, nil
}

func (repo *fakeBookRepo) FindEpisode(_ context.Context, audiobookID, episodeID string) (*Episode, error) {
	for _, episode := range repo.episodes[audiobookID] {
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

// noopCache ignores writes and never reports a hit.
type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) bool         { return false }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) {}
func (noopCache) Invalidate(context.Context, ...string)                 {}

func newTestService(repo *fakeBookRepo) *Service {
	return NewService(repo, fakePlacer{}, noopCache{}, slog.Default())
}

var (
	creatorClaims = &sec.AuthClaims{UserID: "creator-1", Username: "narrator", Role: sec.RoleCreator}
	adminClaims   = &sec.AuthClaims{UserID: "admin", Username: "admin", Role: sec.RoleAdmin}
)

// # Submission

func TestCreate_RoleDrivenOwnershipAndStatus(t *testing.T) {
	service := newTestService(newFakeBookRepo())

	// 1. Creator submissions await moderation and carry the owner
	fromCreator, err := service.Create(context.Background(), creatorClaims, "Night Radio", nil)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPending, fromCreator.Status)
	require.NotNil(t, fromCreator.OwnerID)
	assert.Equal(t, creatorClaims.UserID, *fromCreator.OwnerID)

	// 2. Admin submissions go live at once and stay ownerless
	fromAdmin, err := service.Create(context.Background(), adminClaims, "House Series", nil)
	require.NoError(t, err)
	assert.Equal(t, moderation.StatusPublished, fromAdmin.Status)
	assert.Nil(t, fromAdmin.OwnerID)
}

func TestCreate_IconPlaced(t *testing.T) {
	service := newTestService(newFakeBookRepo())

	icon := &multipart.FileHeader{Filename: "cover.jpg"}
	item, err := service.Create(context.Background(), creatorClaims, "Covered", icon)
	require.NoError(t, err)

	require.NotNil(t, item.IconPath)
	assert.Equal(t, "/uploads/audiobooks/icons/book-icon.png", *item.IconPath)
}

// # Episode Sequence

func TestAddEpisode_SequentialWithYoutubeURL(t *testing.T) {
	repo := newFakeBookRepo()
	service := newTestService(repo)

	item, err := service.Create(context.Background(), creatorClaims, "Serial", nil)
	require.NoError(t, err)

	for expected := 1; expected <= 3; expected++ {
		episode, err := service.AddEpisode(context.Background(), creatorClaims, item.ID, EpisodeInput{
			Icon:       &multipart.FileHeader{Filename: "icon.png"},
			YoutubeURL: fmt.Sprintf("https://youtube.com/watch?v=ep%d", expected),
		})
		require.NoError(t, err)

		assert.Equal(t, expected, episode.EpisodeNumber)
		require.NotNil(t, episode.YoutubeURL)
		assert.Contains(t, *episode.YoutubeURL, fmt.Sprintf("ep%d", expected))
		require.NotNil(t, episode.IconPath)
		assert.Equal(t, fmt.Sprintf("/uploads/audiobooks/%s/%d/icon.bin", item.ID, expected), *episode.IconPath)
	}
}

func TestAddEpisode_YoutubeURLRequired(t *testing.T) {
	repo := newFakeBookRepo()
	service := newTestService(repo)

	item, err := service.Create(context.Background(), creatorClaims, "Silent", nil)
	require.NoError(t, err)

	// 1. Missing URL
	_, err = service.AddEpisode(context.Background(), creatorClaims, item.ID, EpisodeInput{})
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	// 2. Not a URL at all
	_, err = service.AddEpisode(context.Background(), creatorClaims, item.ID, EpisodeInput{YoutubeURL: "not a url"})
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	assert.Empty(t, repo.episodes[item.ID])
}

func TestAddEpisode_OwnershipIsolation(t *testing.T) {
	repo := newFakeBookRepo()
	service := newTestService(repo)

	item, err := service.Create(context.Background(), creatorClaims, "Private", nil)
	require.NoError(t, err)

	intruder := &sec.AuthClaims{UserID: "creator-2", Username: "other", Role: sec.RoleCreator}
	_, err = service.AddEpisode(context.Background(), intruder, item.ID, EpisodeInput{
		YoutubeURL: "https://youtube.com/watch?v=x",
	})

	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Empty(t, repo.episodes[item.ID])
}

// # Moderation & Public Views

func TestSetStatus_RoundTrip(t *testing.T) {
	repo := newFakeBookRepo()
	service := newTestService(repo)

	item, err := service.Create(context.Background(), creatorClaims, "Reviewed", nil)
	require.NoError(t, err)

	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusPublished))
	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusRejected))
	assert.Equal(t, moderation.StatusRejected, repo.books[item.ID].Status)

	err = service.SetStatus(context.Background(), item.ID, moderation.Status("deleted"))
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestGetPublished_HidesUnpublished(t *testing.T) {
	service := newTestService(newFakeBookRepo())

	item, err := service.Create(context.Background(), creatorClaims, "Hidden", nil)
	require.NoError(t, err)

	_, err = service.GetPublished(context.Background(), item.ID)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	require.NoError(t, service.SetStatus(context.Background(), item.ID, moderation.StatusPublished))

	found, err := service.GetPublished(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, found.ID)
}

func TestListPublished_FiltersByStatus(t *testing.T) {
	service := newTestService(newFakeBookRepo())

	_, err := service.Create(context.Background(), creatorClaims, "Pending One", nil)
	require.NoError(t, err)
	live, err := service.Create(context.Background(), adminClaims, "Live One", nil)
	require.NoError(t, err)

	items, err := service.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, live.ID, items[0].ID)
}
