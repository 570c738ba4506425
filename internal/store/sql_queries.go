package store

import (
	"strings"

	"github.com/MKhiriev/journal-directory/models"
	"github.com/Masterminds/squirrel"
)

// journalColumns is the canonical column list of the "journals" table,
// in scan order.
var journalColumns = []string{
	"journal_id",
	"title",
	"issn",
	"eissn",
	"publisher",
	"country",
	"language",
	"nlm_id",
	"created_at",
	"updated_at",
}

// psql builds parameterised queries with $N placeholders. SQLite accepts
// the same placeholder syntax, so one builder serves both drivers.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	getJournalByISSN = `SELECT journal_id, title, issn, eissn, publisher, country, language, nlm_id, created_at, updated_at
		FROM journals
		WHERE issn = $1 OR eissn = $1;`

	listSpecialties = `SELECT DISTINCT specialty
		FROM journal_specialties
		ORDER BY specialty;`

	countJournals = `SELECT COUNT(*) FROM journals;`

	upsertJournal = `INSERT INTO journals (
			title,
			issn,
			eissn,
			publisher,
			country,
			language,
			nlm_id,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (issn) DO UPDATE SET
			title = excluded.title,
			eissn = excluded.eissn,
			publisher = excluded.publisher,
			country = excluded.country,
			language = excluded.language,
			nlm_id = excluded.nlm_id,
			updated_at = excluded.updated_at
		RETURNING journal_id;`

	deleteJournalSpecialties = `DELETE FROM journal_specialties
		WHERE journal_id = $1;`

	insertJournalSpecialty = `INSERT INTO journal_specialties (journal_id, specialty)
		VALUES ($1, $2)
		ON CONFLICT (journal_id, specialty) DO NOTHING;`
)

// buildGetAllJournalsQuery builds the full directory listing, ordered by title.
func buildGetAllJournalsQuery() (string, []any, error) {
	return psql.
		Select(journalColumns...).
		From("journals").
		OrderBy("title").
		ToSql()
}

// buildSearchJournalsQuery builds the free-text search query. The term is
// matched case-insensitively against title and publisher; an optional
// specialty narrows the result to journals carrying the exact tag.
func buildSearchJournalsQuery(criteria models.SearchCriteria) (string, []any, error) {
	term := "%" + strings.ToLower(criteria.Term) + "%"

	query := psql.
		Select(journalColumns...).
		From("journals").
		Where(squirrel.Or{
			squirrel.Expr("LOWER(title) LIKE ?", term),
			squirrel.Expr("LOWER(publisher) LIKE ?", term),
		}).
		OrderBy("title")

	if criteria.Specialty != "" {
		query = query.Where(
			squirrel.Expr(
				"journal_id IN (SELECT journal_id FROM journal_specialties WHERE specialty = ?)",
				criteria.Specialty,
			),
		)
	}

	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	return query.ToSql()
}

// buildJournalsBySpecialtyQuery builds the exact specialty-tag lookup.
func buildJournalsBySpecialtyQuery(specialty string) (string, []any, error) {
	return psql.
		Select(journalColumns...).
		From("journals").
		Where(
			squirrel.Expr(
				"journal_id IN (SELECT journal_id FROM journal_specialties WHERE specialty = ?)",
				specialty,
			),
		).
		OrderBy("title").
		ToSql()
}

// buildMatchSpecialtiesQuery builds the case-insensitive substring match
// over distinct specialty tags used by the filter operation.
func buildMatchSpecialtiesQuery(fragment string) (string, []any, error) {
	pattern := "%" + strings.ToLower(fragment) + "%"

	return psql.
		Select("DISTINCT specialty").
		From("journal_specialties").
		Where(squirrel.Expr("LOWER(specialty) LIKE ?", pattern)).
		OrderBy("specialty").
		ToSql()
}

// buildGetSpecialtiesQuery builds the tag lookup for a set of journal IDs.
func buildGetSpecialtiesQuery(journalIDs []int64) (string, []any, error) {
	return psql.
		Select("journal_id", "specialty").
		From("journal_specialties").
		Where(squirrel.Eq{"journal_id": journalIDs}).
		OrderBy("journal_id", "specialty").
		ToSql()
}
