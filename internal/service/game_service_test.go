package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamevault/backend/internal/models"
	"gamevault/backend/internal/repository"
	"gamevault/backend/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

type fakeMetadata struct {
	calls  [][]*models.Game
	err    error
	enrich func(g *models.Game)
}

func (f *fakeMetadata) Refresh(_ context.Context, games []*models.Game) ([]*models.Game, error) {
	f.calls = append(f.calls, games)
	if f.err != nil {
		return nil, f.err
	}
	for _, g := range games {
		if f.enrich != nil {
			f.enrich(g)
		}
	}
	return games, nil
}

type fakeBoxArt struct {
	calls []*models.Game
	image *models.Image
}

func (f *fakeBoxArt) Resolve(_ context.Context, g *models.Game) (*models.Game, error) {
	f.calls = append(f.calls, g)
	if f.image != nil && g.BoxImage == nil {
		g.BoxImage = f.image
		g.BoxImageID = &f.image.ID
	}
	return g, nil
}

type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) Publish(_ context.Context, kind string, _ uint) {
	r.events = append(r.events, kind)
}

type fixture struct {
	db       *gorm.DB
	svc      *GameService
	metadata *fakeMetadata
	boxArt   *fakeBoxArt
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.New(t)
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	f := &fixture{db: db, metadata: &fakeMetadata{}, boxArt: &fakeBoxArt{}, notifier: &recordingNotifier{}}
	images := NewImageService(repository.NewImageRepository(db), bucket, ImageConfig{})
	f.svc = NewGameService(repository.NewGameRepository(db), f.metadata, f.boxArt, images, WithNotifier(f.notifier))
	return f
}

func (f *fixture) create(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, f.db.Create(v).Error)
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int    { return &v }
func uintPtr(v uint) *uint { return &v }

// richGame stores a game with metadata, every relation and a progress.
func (f *fixture) richGame(t *testing.T) *models.Game {
	t.Helper()
	user := &models.User{Username: "ash", Email: "ash@example.com", PasswordHash: "x"}
	f.create(t, user)
	box := &models.Image{Path: "box.png"}
	bg := &models.Image{Path: "bg.png"}
	f.create(t, box)
	f.create(t, bg)

	g := &models.Game{
		FilePath:         "/games/Half-Life (1998).zip",
		Title:            "Half-Life",
		ReleaseDate:      day(1998, time.November, 19),
		Size:             100,
		RawgID:           intPtr(4200),
		RawgTitle:        "Half-Life",
		CacheDate:        day(2024, time.January, 1),
		Description:      "Black Mesa",
		WebsiteURL:       "https://half-life.com",
		MetacriticRating: intPtr(96),
		AveragePlaytime:  intPtr(12),
		BoxImage:         box,
		BackgroundImage:  bg,
		Developers:       []*models.Developer{{RawgEntity: models.RawgEntity{RawgID: 1, Name: "Valve"}}},
		Publishers:       []*models.Publisher{{RawgEntity: models.RawgEntity{RawgID: 2, Name: "Sierra"}}},
		Genres:           []*models.Genre{{RawgEntity: models.RawgEntity{RawgID: 3, Name: "Shooter"}}},
		Stores:           []*models.Store{{RawgEntity: models.RawgEntity{RawgID: 4, Name: "Steam"}}},
		Tags:             []*models.Tag{{RawgEntity: models.RawgEntity{RawgID: 5, Name: "Classic"}}},
		Progresses:       []*models.Progress{{UserID: user.ID, MinutesPlayed: 600, State: models.ProgressCompleted}},
	}
	f.create(t, g)
	return g
}

func TestFindByIDOrFailHonoursDeletedFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := &models.Game{FilePath: "/games/a.zip", Title: "A"}
	f.create(t, g)
	require.NoError(t, f.db.Delete(g).Error)

	_, err := f.svc.FindByIDOrFail(ctx, g.ID, FindOptions{LoadDeletedEntities: false})
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	found, err := f.svc.FindByIDOrFail(ctx, g.ID, FindOptions{LoadDeletedEntities: true})
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)
}

func TestDefaultFindOptions(t *testing.T) {
	opts := DefaultFindOptions()
	assert.True(t, opts.LoadDeletedEntities)
	assert.False(t, opts.LoadRelations)
}

func TestCheckExistenceRejectsMissingIdentity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := map[string]*models.Game{
		"nil":                nil,
		"no identity at all": {},
		"no file path":       {Title: "T", ReleaseDate: day(2000, time.January, 1)},
		"no title nor date":  {FilePath: "/games/t.zip"},
	}
	for name, candidate := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := f.svc.CheckExistence(ctx, candidate)
			assert.ErrorIs(t, err, ErrInsufficientIdentity)
		})
	}
}

func TestCheckExistenceStates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	released := day(2004, time.November, 16)

	stored := &models.Game{FilePath: "/a", Title: "T", ReleaseDate: released, Size: 100, Version: "1.0"}
	f.create(t, stored)

	t.Run("does not exist", func(t *testing.T) {
		state, match, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/b", Title: "Other", ReleaseDate: released})
		require.NoError(t, err)
		assert.Equal(t, DoesNotExist, state)
		assert.Nil(t, match)
	})

	t.Run("exists", func(t *testing.T) {
		state, match, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/a", Title: "T", ReleaseDate: day(2004, time.November, 16), Size: 100, Version: "1.0"})
		require.NoError(t, err)
		assert.Equal(t, Exists, state)
		require.NotNil(t, match)
		assert.Equal(t, stored.ID, match.ID)
	})

	t.Run("altered size", func(t *testing.T) {
		state, match, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/a", Title: "T", ReleaseDate: released, Size: 200, Version: "1.0"})
		require.NoError(t, err)
		assert.Equal(t, ExistsButAltered, state)
		require.NotNil(t, match)
		assert.Equal(t, stored.ID, match.ID)
	})

	t.Run("moved file found by title and date", func(t *testing.T) {
		state, match, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/moved", Title: "T", ReleaseDate: released, Size: 100, Version: "1.0"})
		require.NoError(t, err)
		assert.Equal(t, ExistsButAltered, state)
		require.NotNil(t, match)
		assert.Equal(t, stored.ID, match.ID)
	})

	t.Run("altered early access", func(t *testing.T) {
		state, _, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/a", Title: "T", ReleaseDate: released, Size: 100, Version: "1.0", EarlyAccess: true})
		require.NoError(t, err)
		assert.Equal(t, ExistsButAltered, state)
	})
}

func TestCheckExistenceReportsDeletedMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := &models.Game{FilePath: "/gone", Title: "Gone", Size: 1}
	f.create(t, stored)
	require.NoError(t, f.db.Delete(stored).Error)

	state, match, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/gone", Title: "Gone", Size: 1})
	require.NoError(t, err)
	assert.Equal(t, ExistsButDeleted, state)
	require.NotNil(t, match)
	assert.Equal(t, stored.ID, match.ID)
}

func TestCheckExistencePrefersPathMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	released := day(2010, time.May, 1)

	byTitle := &models.Game{FilePath: "/elsewhere", Title: "T", ReleaseDate: released}
	byPath := &models.Game{FilePath: "/here", Title: "Different", ReleaseDate: released}
	f.create(t, byTitle)
	f.create(t, byPath)

	state, match, err := f.svc.CheckExistence(ctx, &models.Game{FilePath: "/here", Title: "T", ReleaseDate: released})
	require.NoError(t, err)
	assert.Equal(t, ExistsButAltered, state)
	require.NotNil(t, match)
	assert.Equal(t, byPath.ID, match.ID)
}

func TestGetAllSkipsDeletedGames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	active := &models.Game{FilePath: "/1"}
	gone := &models.Game{FilePath: "/2"}
	f.create(t, active)
	f.create(t, gone)
	require.NoError(t, f.db.Delete(gone).Error)

	games, err := f.svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, active.ID, games[0].ID)
	assert.Nil(t, games[0].Tags)
}

func TestGetRandomLoadsRelationsOfDeletedGames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetRandom(ctx)
	assert.ErrorIs(t, err, ErrGameNotFound)

	g := f.richGame(t)
	require.NoError(t, f.db.Delete(g).Error)

	random, err := f.svc.GetRandom(ctx)
	require.NoError(t, err)
	assert.Equal(t, g.ID, random.ID)
	assert.Len(t, random.Developers, 1)
	assert.Len(t, random.Tags, 1)
	require.Len(t, random.Progresses, 1)
	assert.NotNil(t, random.Progresses[0].User)
	assert.NotNil(t, random.BoxImage)
}

func TestRemapClearsMetadataButKeepsProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := f.richGame(t)

	g, err := f.svc.FindByIDOrFail(ctx, stored.ID, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	require.NoError(t, err)
	progresses := g.Progresses
	require.Len(t, progresses, 1)

	remapped, err := f.svc.Remap(ctx, g, 9001)
	require.NoError(t, err)

	require.Len(t, f.metadata.calls, 1)
	require.Len(t, f.metadata.calls[0], 1)
	assert.Equal(t, stored.ID, f.metadata.calls[0][0].ID)
	require.Len(t, f.boxArt.calls, 1)

	require.NotNil(t, remapped.RawgID)
	assert.Equal(t, 9001, *remapped.RawgID)
	assert.Empty(t, remapped.RawgTitle)
	assert.Nil(t, remapped.CacheDate)
	assert.Empty(t, remapped.Description)
	assert.Empty(t, remapped.WebsiteURL)
	assert.Nil(t, remapped.MetacriticRating)
	assert.Nil(t, remapped.AveragePlaytime)
	assert.Nil(t, remapped.BoxImage)
	assert.Nil(t, remapped.BackgroundImage)
	assert.Equal(t, progresses, remapped.Progresses)

	reloaded, err := f.svc.FindByIDOrFail(ctx, stored.ID, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	require.NoError(t, err)
	assert.Empty(t, reloaded.Developers)
	assert.Empty(t, reloaded.Publishers)
	assert.Empty(t, reloaded.Genres)
	assert.Empty(t, reloaded.Stores)
	assert.Empty(t, reloaded.Tags)
	assert.Nil(t, reloaded.BoxImageID)
	assert.Nil(t, reloaded.BackgroundImageID)
	require.Len(t, reloaded.Progresses, 1)
	assert.Equal(t, progresses[0].ID, reloaded.Progresses[0].ID)
	assert.Equal(t, 600, reloaded.Progresses[0].MinutesPlayed)
	// Provenance is not metadata.
	assert.Equal(t, "Half-Life", reloaded.Title)
	assert.EqualValues(t, 100, reloaded.Size)
}

func TestRemapLeavesClearedStateWhenRefreshFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := f.richGame(t)
	f.metadata.err = errors.New("rawg unavailable")

	g, err := f.svc.FindByIDOrFail(ctx, stored.ID, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	require.NoError(t, err)

	_, err = f.svc.Remap(ctx, g, 77)
	assert.EqualError(t, err, "rawg unavailable")
	assert.Empty(t, f.boxArt.calls)

	reloaded, err := f.svc.FindByIDOrFail(ctx, stored.ID, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	require.NoError(t, err)
	require.NotNil(t, reloaded.RawgID)
	assert.Equal(t, 77, *reloaded.RawgID)
	assert.Empty(t, reloaded.Description)
	assert.Empty(t, reloaded.Tags)
}

func TestUpdateBoxImageOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := f.richGame(t)
	replacement := &models.Image{Path: "new-box.png"}
	f.create(t, replacement)

	updated, err := f.svc.Update(ctx, stored.ID, UpdateGameInput{BoxImageID: uintPtr(replacement.ID)})
	require.NoError(t, err)
	assert.Empty(t, f.metadata.calls)
	assert.Empty(t, f.boxArt.calls)
	require.NotNil(t, updated.BoxImage)
	assert.Equal(t, replacement.ID, updated.BoxImage.ID)

	reloaded, err := f.svc.FindByIDOrFail(ctx, stored.ID, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	require.NoError(t, err)
	require.NotNil(t, reloaded.BoxImage)
	assert.Equal(t, "new-box.png", reloaded.BoxImage.Path)
	require.NotNil(t, reloaded.BackgroundImage)
	assert.Equal(t, "bg.png", reloaded.BackgroundImage.Path)
	assert.Equal(t, "Black Mesa", reloaded.Description)
	assert.Equal(t, 4200, *reloaded.RawgID)
	assert.Len(t, reloaded.Developers, 1)
	assert.Len(t, reloaded.Publishers, 1)
	assert.Len(t, reloaded.Genres, 1)
	assert.Len(t, reloaded.Stores, 1)
	assert.Len(t, reloaded.Tags, 1)
	assert.Len(t, reloaded.Progresses, 1)
}

func TestUpdateRemapThenImageOverride(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	stored := f.richGame(t)

	resolved := &models.Image{Path: "resolved.png"}
	override := &models.Image{Path: "override.png"}
	background := &models.Image{Path: "override-bg.png"}
	f.create(t, resolved)
	f.create(t, override)
	f.create(t, background)
	f.boxArt.image = resolved
	f.metadata.enrich = func(g *models.Game) { g.RawgTitle = "Half-Life: Source" }

	updated, err := f.svc.Update(ctx, stored.ID, UpdateGameInput{
		RawgID:            intPtr(555),
		BoxImageID:        uintPtr(override.ID),
		BackgroundImageID: uintPtr(background.ID),
	})
	require.NoError(t, err)
	require.Len(t, f.metadata.calls, 1)
	require.Len(t, f.boxArt.calls, 1)
	assert.Equal(t, "Half-Life: Source", updated.RawgTitle)

	reloaded, err := f.svc.FindByIDOrFail(ctx, stored.ID, FindOptions{LoadDeletedEntities: true, LoadRelations: true})
	require.NoError(t, err)
	assert.Equal(t, 555, *reloaded.RawgID)
	require.NotNil(t, reloaded.BoxImage)
	assert.Equal(t, override.ID, reloaded.BoxImage.ID)
	require.NotNil(t, reloaded.BackgroundImage)
	assert.Equal(t, background.ID, reloaded.BackgroundImage.ID)
	assert.Empty(t, reloaded.Tags)
	assert.Len(t, reloaded.Progresses, 1)
}

func TestUpdateFailsOnUnknownImage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := &models.Game{FilePath: "/x"}
	f.create(t, g)

	_, err := f.svc.Update(ctx, g.ID, UpdateGameInput{BackgroundImageID: uintPtr(404)})
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, err = f.svc.Update(ctx, 12345, UpdateGameInput{})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestDeleteAndRestore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.richGame(t)

	deleted, err := f.svc.Delete(ctx, g)
	require.NoError(t, err)
	assert.True(t, deleted.IsDeleted())

	_, err = f.svc.FindByIDOrFail(ctx, g.ID, FindOptions{})
	assert.ErrorIs(t, err, ErrGameNotFound)

	restored, err := f.svc.Restore(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted())
	assert.Nil(t, restored.Tags)

	found, err := f.svc.FindByIDOrFail(ctx, g.ID, FindOptions{})
	require.NoError(t, err)
	assert.Equal(t, g.ID, found.ID)

	_, err = f.svc.Restore(ctx, 999)
	assert.ErrorIs(t, err, ErrGameNotFound)
	assert.Equal(t, []string{EventGameDeleted, EventGameRestored}, f.notifier.events)
}

func TestSaveReturnsStoredRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved, err := f.svc.Save(ctx, &models.Game{FilePath: "/new", Title: "New"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.False(t, saved.IsDeleted())
}
