package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	selectJournalsSQL    = `SELECT journal_id, title, issn, eissn, publisher, country, language, nlm_id, created_at, updated_at FROM journals ORDER BY title`
	selectSpecialtiesSQL = `SELECT journal_id, specialty FROM journal_specialties WHERE journal_id IN`
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		driver:             config.DriverPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *sql.DB) JournalRepository {
	t.Helper()
	return NewJournalRepository(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

type journalRow struct {
	journalID int64
	title     string
	issn      string
	eissn     driver.Value
	publisher driver.Value
	country   driver.Value
	language  driver.Value
	nlmID     driver.Value
	createdAt time.Time
	updatedAt time.Time
}

func (r journalRow) toArgs() []driver.Value {
	return []driver.Value{
		r.journalID, r.title, r.issn,
		r.eissn, r.publisher, r.country, r.language, r.nlmID,
		r.createdAt, r.updatedAt,
	}
}

func journalRows(rows ...journalRow) *sqlmock.Rows {
	result := sqlmock.NewRows(journalColumns)
	for _, r := range rows {
		result.AddRow(r.toArgs()...)
	}
	return result
}

// ─────────────────────────────────────────────
// GetAllJournals
// ─────────────────────────────────────────────

func TestGetAllJournals(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectJournalsSQL)).
		WillReturnRows(journalRows(
			journalRow{journalID: 1, title: "Circulation", issn: "0009-7322", eissn: "1524-4539", publisher: "Lippincott", country: "United States", language: "eng", nlmID: "0147763", createdAt: now, updatedAt: now},
			journalRow{journalID: 2, title: "The Lancet", issn: "0140-6736", eissn: nil, publisher: nil, country: nil, language: nil, nlmID: nil, createdAt: now, updatedAt: now},
		))
	mock.ExpectQuery(selectSpecialtiesSQL).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id", "specialty"}).
			AddRow(int64(1), "cardiology"))

	journals, err := repo.GetAllJournals(testContext())

	require.NoError(t, err)
	require.Len(t, journals, 2)

	assert.Equal(t, "Circulation", journals[0].Title)
	assert.Equal(t, "1524-4539", journals[0].EISSN)
	assert.Equal(t, []string{"cardiology"}, journals[0].Specialties)

	assert.Equal(t, "The Lancet", journals[1].Title)
	assert.Empty(t, journals[1].EISSN, "NULL columns scan to empty strings")
	assert.Equal(t, []string{}, journals[1].Specialties, "untagged journals get an empty tag slice, not nil")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllJournals_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectJournalsSQL)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetAllJournals(testContext())

	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetAllJournals_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectJournalsSQL)).
		WillReturnRows(journalRows())

	journals, err := repo.GetAllJournals(testContext())

	require.NoError(t, err)
	assert.Empty(t, journals)
	assert.NoError(t, mock.ExpectationsWereMet(), "no specialty query may run for an empty result")
}

// ─────────────────────────────────────────────
// SearchJournals
// ─────────────────────────────────────────────

func TestSearchJournals_TermAndSpecialty(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(`SELECT .+ FROM journals WHERE \(LOWER\(title\) LIKE .+ OR LOWER\(publisher\) LIKE .+\) AND journal_id IN`).
		WithArgs("%heart%", "%heart%", "cardiology").
		WillReturnRows(journalRows(
			journalRow{journalID: 3, title: "Heart", issn: "1355-6037", createdAt: now, updatedAt: now},
		))
	mock.ExpectQuery(selectSpecialtiesSQL).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id", "specialty"}).
			AddRow(int64(3), "cardiology"))

	journals, err := repo.SearchJournals(testContext(), models.SearchCriteria{Term: "Heart", Specialty: "cardiology"})

	require.NoError(t, err)
	require.Len(t, journals, 1)
	assert.Equal(t, "Heart", journals[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// GetJournalByISSN
// ─────────────────────────────────────────────

func TestGetJournalByISSN(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE issn = $1 OR eissn = $1")).
		WithArgs("1524-4539").
		WillReturnRows(journalRows(
			journalRow{journalID: 1, title: "Circulation", issn: "0009-7322", eissn: "1524-4539", createdAt: now, updatedAt: now},
		))
	mock.ExpectQuery(selectSpecialtiesSQL).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id", "specialty"}).
			AddRow(int64(1), "cardiology"))

	journal, err := repo.GetJournalByISSN(testContext(), "1524-4539")

	require.NoError(t, err)
	assert.Equal(t, "Circulation", journal.Title)
	assert.Equal(t, "0009-7322", journal.ISSN, "lookup by electronic ISSN returns the full record")
	assert.Equal(t, []string{"cardiology"}, journal.Specialties)
}

func TestGetJournalByISSN_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE issn = $1 OR eissn = $1")).
		WithArgs("0000-0000").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetJournalByISSN(testContext(), "0000-0000")

	require.ErrorIs(t, err, ErrJournalNotFound)
}

// ─────────────────────────────────────────────
// ListSpecialties / MatchSpecialties
// ─────────────────────────────────────────────

func TestListSpecialties(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT specialty")).
		WillReturnRows(sqlmock.NewRows([]string{"specialty"}).
			AddRow("cardiology").
			AddRow("neurology"))

	tags, err := repo.ListSpecialties(testContext())

	require.NoError(t, err)
	assert.Equal(t, []string{"cardiology", "neurology"}, tags)
}

func TestMatchSpecialties(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(`SELECT DISTINCT specialty FROM journal_specialties WHERE LOWER\(specialty\) LIKE`).
		WithArgs("%olog%").
		WillReturnRows(sqlmock.NewRows([]string{"specialty"}).
			AddRow("cardiology").
			AddRow("neurology"))

	tags, err := repo.MatchSpecialties(testContext(), "OLOG")

	require.NoError(t, err)
	assert.Equal(t, []string{"cardiology", "neurology"}, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// UpsertJournals
// ─────────────────────────────────────────────

func TestUpsertJournals(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	journal := models.Journal{
		Title:       "Circulation",
		ISSN:        "0009-7322",
		EISSN:       "1524-4539",
		Specialties: []string{"cardiology"},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals")).
		WithArgs(
			journal.Title,
			journal.ISSN,
			sql.NullString{String: "1524-4539", Valid: true},
			sql.NullString{},
			sql.NullString{},
			sql.NullString{},
			sql.NullString{},
			journal.CreatedAt,
			journal.UpdatedAt,
		).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_specialties")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_specialties")).
		WithArgs(int64(1), "cardiology").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	changed, err := repo.UpsertJournals(testContext(), []models.Journal{journal})

	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertJournals_EmptyInput(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	changed, err := repo.UpsertJournals(testContext(), nil)

	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet(), "no transaction may be opened for empty input")
}

func TestUpsertJournals_StatementError_RollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals")).
		WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	_, err := repo.UpsertJournals(testContext(), []models.Journal{{Title: "X", ISSN: "0000-0001"}})

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertJournals_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	// first attempt loses a serialization conflict and rolls back
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectRollback()

	// the rerun goes through
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals")).
		WillReturnRows(sqlmock.NewRows([]string{"journal_id"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_specialties")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	changed, err := repo.UpsertJournals(testContext(), []models.Journal{{Title: "Circulation", ISSN: "0009-7322"}})

	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertJournals_TransientFailure_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals")).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
		mock.ExpectRollback()
	}

	_, err := repo.UpsertJournals(testContext(), []models.Journal{{Title: "X", ISSN: "0000-0001"}})

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet(), "exactly %d attempts, no more", maxTxAttempts)
}

func TestUpsertJournals_ConstraintViolation_NotRetried(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO journals")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mock.ExpectRollback()

	_, err := repo.UpsertJournals(testContext(), []models.Journal{{Title: "X", ISSN: "0000-0001"}})

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet(), "non-transient failures get a single attempt")
}

// ─────────────────────────────────────────────
// ReplaceSpecialties
// ─────────────────────────────────────────────

func TestReplaceSpecialties(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_specialties")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_specialties")).
		WithArgs(int64(7), "neurology").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	changed, err := repo.ReplaceSpecialties(testContext(), map[int64][]string{7: {"neurology"}})

	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceSpecialties_EmptyInput(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	changed, err := repo.ReplaceSpecialties(testContext(), nil)

	require.NoError(t, err)
	assert.Zero(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceSpecialties_RetriesDeadlock(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_specialties")).
		WithArgs(int64(7)).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_specialties")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_specialties")).
		WithArgs(int64(7), "neurology").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	changed, err := repo.ReplaceSpecialties(testContext(), map[int64][]string{7: {"neurology"}})

	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ─────────────────────────────────────────────
// CountJournals
// ─────────────────────────────────────────────

func TestCountJournals(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM journals")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.CountJournals(testContext())

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
