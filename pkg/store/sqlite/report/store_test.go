package report

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/143WaysToLooseUrSelf/eventdesign/pkg/models/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportColumns = []string{
	"event_id", "event_name", "category_name", "location",
	"event_date", "description", "favorite", "user_names",
}

func TestReportStore_Query_ScansRecords(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	flt := domain.ReportFilter{Mode: domain.ModeAll, Sort: domain.SortDateDesc}
	query, _ := Compose(flt)

	rows := sqlmock.NewRows(reportColumns).
		AddRow(1, "Tech Summit", "Conferences", "Main hall", "2024-06-01", "Annual summit", true, "alice,bob").
		AddRow(2, "Mystery Meetup", nil, "Somewhere", nil, "", false, nil)
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)

	store, err := NewStore(db)
	require.NoError(t, err)

	records, err := store.Query(context.Background(), flt)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, int64(1), first.EventID)
	assert.Equal(t, "Tech Summit", first.Name)
	require.NotNil(t, first.Category)
	assert.Equal(t, "Conferences", *first.Category)
	require.NotNil(t, first.Date)
	assert.Equal(t, "2024-06-01", *first.Date)
	assert.True(t, first.Favorite)
	require.NotNil(t, first.UserNames)
	assert.Equal(t, "alice,bob", *first.UserNames)

	second := records[1]
	assert.Nil(t, second.Category)
	assert.Nil(t, second.Date)
	assert.Nil(t, second.UserNames)
	assert.False(t, second.Favorite)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Query_BindsFilterParameters(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	flt := domain.ReportFilter{
		Mode:     domain.ModeByUser,
		Category: "Workshops",
		User:     "alice",
		Sort:     domain.SortNameAsc,
	}
	query, _ := Compose(flt)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Workshops", "alice").
		WillReturnRows(sqlmock.NewRows(reportColumns))

	store, err := NewStore(db)
	require.NoError(t, err)

	records, err := store.Query(context.Background(), flt)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportStore_Query_RejectedStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	flt := domain.ReportFilter{Mode: domain.ModeAll, Sort: domain.SortDateDesc}
	query, _ := Compose(flt)

	cause := errors.New("no such table: events")
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(cause)

	store, err := NewStore(db)
	require.NoError(t, err)

	_, err = store.Query(context.Background(), flt)
	require.Error(t, err)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.ErrorIs(t, err, cause)
}

func TestNewStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
