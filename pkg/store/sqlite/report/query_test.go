package report_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/adapters"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite/catalog"
	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/store/sqlite/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db         *sql.DB
	store      report.Store
	events     catalog.EventStore
	categories catalog.CategoryStore
	users      catalog.UserStore
	favorites  catalog.FavoriteStore
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: filepath.Join(t.TempDir(), "catalog.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	store, err := report.NewStore(db)
	require.NoError(t, err)
	events, err := catalog.NewEventStore(db)
	require.NoError(t, err)
	categories, err := catalog.NewCategoryStore(db)
	require.NoError(t, err)
	users, err := catalog.NewUserStore(db)
	require.NoError(t, err)
	favorites, err := catalog.NewFavoriteStore(db)
	require.NoError(t, err)

	return &fixture{
		db:         db,
		store:      store,
		events:     events,
		categories: categories,
		users:      users,
		favorites:  favorites,
	}
}

func (f *fixture) addEvent(t *testing.T, name string, categoryID *int64, date *time.Time, location string) int64 {
	id, err := f.events.Add(context.Background(), domain.Event{
		Name:       name,
		CategoryID: categoryID,
		Date:       date,
		Location:   location,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) addCategory(t *testing.T, name string) int64 {
	id, err := f.categories.Add(context.Background(), name, "")
	require.NoError(t, err)
	return id
}

func (f *fixture) addUser(t *testing.T, name string) int64 {
	id, err := f.users.Create(context.Background(), name, name, name+"-secret", name+"@example.com")
	require.NoError(t, err)
	return id
}

func (f *fixture) favorite(t *testing.T, userID, eventID int64) {
	require.NoError(t, f.favorites.Add(context.Background(), userID, eventID))
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestReportQuery_ByCategoryWithDateRange(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	conf := f.addCategory(t, "Conferences")
	work := f.addCategory(t, "Workshops")
	f.addEvent(t, "Tech Summit", &conf, day("2024-06-01"), "Main hall")
	f.addEvent(t, "Go Workshop", &work, day("2024-06-02"), "Room 2")

	records, err := f.store.Query(ctx, domain.ReportFilter{
		Mode:     domain.ModeByCategory,
		Category: "Conferences",
		From:     day("2024-01-01"),
		To:       day("2024-12-31"),
		Sort:     domain.SortNameAsc,
	})
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "Tech Summit", records[0].Name)
	require.NotNil(t, records[0].Category)
	assert.Equal(t, "Conferences", *records[0].Category)
}

func TestReportQuery_AggregatesFavoritingUsers(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	eventID := f.addEvent(t, "Tech Summit", nil, day("2024-06-01"), "")
	alice := f.addUser(t, "alice")
	bob := f.addUser(t, "bob")
	f.favorite(t, alice, eventID)
	f.favorite(t, bob, eventID)
	// Adding the same favorite again must not duplicate the aggregate.
	f.favorite(t, alice, eventID)

	records, err := f.store.Query(ctx, domain.ReportFilter{Mode: domain.ModeAll, Sort: domain.SortDateDesc})
	require.NoError(t, err)
	require.Len(t, records, 1)

	row := adapters.MapStoreReportRecordToDomainRow(records[0])
	assert.Equal(t, "alice, bob", row.Users)
}

func TestReportQuery_DateFilterKeepsUndatedEvents(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.addEvent(t, "Dated Inside", nil, day("2024-06-01"), "")
	f.addEvent(t, "Dated Outside", nil, day("2023-01-15"), "")
	f.addEvent(t, "Undated", nil, nil, "")

	records, err := f.store.Query(ctx, domain.ReportFilter{
		Mode: domain.ModeAll,
		From: day("2024-01-01"),
		To:   day("2024-12-31"),
		Sort: domain.SortNameAsc,
	})
	require.NoError(t, err)

	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Dated Inside", "Undated"}, names)
}

func TestReportQuery_DateDescTreatsMissingDateAsMax(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	f.addEvent(t, "Old", nil, day("2023-01-01"), "")
	f.addEvent(t, "New", nil, day("2024-06-01"), "")
	f.addEvent(t, "Undated", nil, nil, "")

	records, err := f.store.Query(ctx, domain.ReportFilter{Mode: domain.ModeAll, Sort: domain.SortDateDesc})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Undated", records[0].Name)
	assert.Equal(t, "New", records[1].Name)
	assert.Equal(t, "Old", records[2].Name)
}

func TestReportQuery_UserFilterSemantics(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	favByAlice := f.addEvent(t, "Fav By Alice", nil, day("2024-06-01"), "")
	favByCarol := f.addEvent(t, "Fav By Carol", nil, day("2024-06-02"), "")
	f.addEvent(t, "Nobody's Favorite", nil, day("2024-06-03"), "")

	alice := f.addUser(t, "alice")
	carol := f.addUser(t, "carol")
	f.favorite(t, alice, favByAlice)
	f.favorite(t, carol, favByCarol)

	t.Run("by-user mode matches strictly", func(t *testing.T) {
		records, err := f.store.Query(ctx, domain.ReportFilter{
			Mode: domain.ModeByUser,
			User: "alice",
			Sort: domain.SortNameAsc,
		})
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Fav By Alice", records[0].Name)
	})

	t.Run("all mode keeps non-favorited events", func(t *testing.T) {
		records, err := f.store.Query(ctx, domain.ReportFilter{
			Mode: domain.ModeAll,
			User: "alice",
			Sort: domain.SortNameAsc,
		})
		require.NoError(t, err)

		names := make([]string, 0, len(records))
		for _, r := range records {
			names = append(names, r.Name)
		}
		assert.Equal(t, []string{"Fav By Alice", "Nobody's Favorite"}, names)
	})
}

func TestReportQuery_EmptyStore(t *testing.T) {
	f := setupFixture(t)

	records, err := f.store.Query(context.Background(), domain.ReportFilter{
		Mode: domain.ModeAll,
		Sort: domain.SortDateDesc,
	})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReportQuery_Deterministic(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	conf := f.addCategory(t, "Conferences")
	f.addEvent(t, "Tech Summit", &conf, day("2024-06-01"), "Main hall")
	f.addEvent(t, "Undated", nil, nil, "Cafe")

	flt := domain.ReportFilter{Mode: domain.ModeAll, Sort: domain.SortNameDesc}

	first, err := f.store.Query(ctx, flt)
	require.NoError(t, err)
	second, err := f.store.Query(ctx, flt)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
