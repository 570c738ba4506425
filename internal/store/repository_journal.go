package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/models"
)

// journalRepository is the SQL-backed implementation of [JournalRepository].
// It executes all directory operations against the "journals" and
// "journal_specialties" tables using the embedded [*DB] connection and
// works unchanged on both supported drivers.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (issn, specialty, result counts, etc.).
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by the
// provided database connection and logger.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllJournals retrieves every directory entry with specialty tags attached.
func (r *journalRepository) GetAllJournals(ctx context.Context) ([]models.Journal, error) {
	query, args, err := buildGetAllJournalsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryJournals(ctx, "GetAllJournals", query, args...)
}

// SearchJournals retrieves entries matching the free-text criteria.
// The criteria are assumed validated by the service layer; an empty term
// matches everything.
func (r *journalRepository) SearchJournals(ctx context.Context, criteria models.SearchCriteria) ([]models.Journal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchJournalsQuery(criteria)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.SearchJournals").
			Str("term", criteria.Term).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryJournals(ctx, "SearchJournals", query, args...)
}

// GetJournalsBySpecialty retrieves entries carrying the exact specialty tag.
func (r *journalRepository) GetJournalsBySpecialty(ctx context.Context, specialty string) ([]models.Journal, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildJournalsBySpecialtyQuery(specialty)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.GetJournalsBySpecialty").
			Str("specialty", specialty).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryJournals(ctx, "GetJournalsBySpecialty", query, args...)
}

// ListSpecialties retrieves all distinct specialty tags in use.
func (r *journalRepository) ListSpecialties(ctx context.Context) ([]string, error) {
	return r.querySpecialtyTags(ctx, "ListSpecialties", listSpecialties)
}

// MatchSpecialties retrieves the distinct tags containing fragment,
// case-insensitively.
func (r *journalRepository) MatchSpecialties(ctx context.Context, fragment string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMatchSpecialtiesQuery(fragment)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.MatchSpecialties").
			Str("fragment", fragment).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.querySpecialtyTags(ctx, "MatchSpecialties", query, args...)
}

// GetJournalByISSN retrieves the entry whose print or electronic ISSN
// equals issn.
//
// Error handling:
//   - No matching row → [ErrJournalNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *journalRepository) GetJournalByISSN(ctx context.Context, issn string) (models.Journal, error) {
	log := logger.FromContext(ctx)

	var journal models.Journal
	row := r.DB.QueryRowContext(ctx, getJournalByISSN, issn)

	var eissn, publisher, country, language, nlmID sql.NullString
	err := row.Scan(
		&journal.JournalID,
		&journal.Title,
		&journal.ISSN,
		&eissn,
		&publisher,
		&country,
		&language,
		&nlmID,
		&journal.CreatedAt,
		&journal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Journal{}, ErrJournalNotFound
		}

		log.Err(err).
			Str("func", "*journalRepository.GetJournalByISSN").
			Str("issn", issn).
			Msg("error: scanning error")
		return models.Journal{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	journal.EISSN = eissn.String
	journal.Publisher = publisher.String
	journal.Country = country.String
	journal.Language = language.String
	journal.NLMID = nlmID.String

	journals := []models.Journal{journal}
	if err := r.loadSpecialties(ctx, journals); err != nil {
		return models.Journal{}, err
	}

	return journals[0], nil
}

// maxTxAttempts bounds how many times a transaction is rerun after a
// transient failure (serialization conflict, dropped connection).
const maxTxAttempts = 3

// UpsertJournals writes the given records inside a single transaction,
// keyed by print ISSN, and replaces their specialty tags. Transient
// failures rerun the whole transaction. Returns the number of records
// written.
func (r *journalRepository) UpsertJournals(ctx context.Context, journals []models.Journal) (int, error) {
	if len(journals) == 0 {
		return 0, nil
	}

	return r.retryTx(ctx, "*journalRepository.UpsertJournals", func() (int, error) {
		return r.upsertJournalsTx(ctx, journals)
	})
}

func (r *journalRepository) upsertJournalsTx(ctx context.Context, journals []models.Journal) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.UpsertJournals").
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	changed := 0
	for _, journal := range journals {
		var journalID int64
		row := tx.QueryRowContext(ctx, upsertJournal,
			journal.Title,
			journal.ISSN,
			nullable(journal.EISSN),
			nullable(journal.Publisher),
			nullable(journal.Country),
			nullable(journal.Language),
			nullable(journal.NLMID),
			journal.CreatedAt,
			journal.UpdatedAt,
		)
		if err := row.Scan(&journalID); err != nil {
			log.Err(err).
				Str("func", "*journalRepository.UpsertJournals").
				Str("issn", journal.ISSN).
				Msg("failed to upsert journal")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := replaceSpecialtiesTx(ctx, tx, journalID, journal.Specialties); err != nil {
			log.Err(err).
				Str("func", "*journalRepository.UpsertJournals").
				Str("issn", journal.ISSN).
				Msg("failed to replace journal specialties")
			return 0, err
		}

		changed++
	}

	if changed == 0 {
		return 0, ErrJournalNotSaved
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*journalRepository.UpsertJournals").
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return changed, nil
}

// ReplaceSpecialties rewrites the tags of the given journals inside a
// single transaction, rerun on transient failures. Returns the number of
// journals updated.
func (r *journalRepository) ReplaceSpecialties(ctx context.Context, assignments map[int64][]string) (int, error) {
	if len(assignments) == 0 {
		return 0, nil
	}

	return r.retryTx(ctx, "*journalRepository.ReplaceSpecialties", func() (int, error) {
		return r.replaceAllSpecialtiesTx(ctx, assignments)
	})
}

func (r *journalRepository) replaceAllSpecialtiesTx(ctx context.Context, assignments map[int64][]string) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.ReplaceSpecialties").
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	changed := 0
	for journalID, specialties := range assignments {
		if err := replaceSpecialtiesTx(ctx, tx, journalID, specialties); err != nil {
			log.Err(err).
				Str("func", "*journalRepository.ReplaceSpecialties").
				Int64("journal_id", journalID).
				Msg("failed to replace journal specialties")
			return 0, err
		}
		changed++
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*journalRepository.ReplaceSpecialties").
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return changed, nil
}

// CountJournals returns the total number of directory entries.
func (r *journalRepository) CountJournals(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.DB.QueryRowContext(ctx, countJournals).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*journalRepository.CountJournals").
			Msg("failed to count journals")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// retryTx runs the transactional operation fn, rerunning it up to
// [maxTxAttempts] times when the driver's classifier reports the failure
// as retryable. SQLite has no classifier and never retries.
func (r *journalRepository) retryTx(ctx context.Context, caller string, fn func() (int, error)) (int, error) {
	log := logger.FromContext(ctx)

	var changed int
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		changed, err = fn()
		if err == nil {
			return changed, nil
		}
		if r.DB.errorClassificator == nil || r.DB.errorClassificator.Classify(err) != Retryable {
			return 0, err
		}

		log.Warn().Err(err).
			Str("func", caller).
			Int("attempt", attempt).
			Msg("transient database error, retrying transaction")
	}

	return 0, err
}

// queryJournals runs a multi-row journal query, scans the result set, and
// attaches specialty tags to every returned record.
func (r *journalRepository) queryJournals(ctx context.Context, caller, query string, args ...any) ([]models.Journal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository."+caller).
			Msg("failed to execute journals query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Journal, 0, 50)

	for rows.Next() {
		var journal models.Journal
		var eissn, publisher, country, language, nlmID sql.NullString

		scanErr := rows.Scan(
			&journal.JournalID,
			&journal.Title,
			&journal.ISSN,
			&eissn,
			&publisher,
			&country,
			&language,
			&nlmID,
			&journal.CreatedAt,
			&journal.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*journalRepository."+caller).
				Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		journal.EISSN = eissn.String
		journal.Publisher = publisher.String
		journal.Country = country.String
		journal.Language = language.String
		journal.NLMID = nlmID.String

		results = append(results, journal)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*journalRepository."+caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if err := r.loadSpecialties(ctx, results); err != nil {
		return nil, err
	}

	return results, nil
}

// querySpecialtyTags runs a single-column specialty query and scans the tags.
func (r *journalRepository) querySpecialtyTags(ctx context.Context, caller, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository."+caller).
			Msg("failed to execute specialties query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]string, 0, 20)
	for rows.Next() {
		var tag string
		if scanErr := rows.Scan(&tag); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*journalRepository."+caller).
				Msg("failed to scan specialty row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tags = append(tags, tag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*journalRepository."+caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}

// loadSpecialties fills the Specialties field of every journal in place
// with a single query over journal_specialties.
func (r *journalRepository) loadSpecialties(ctx context.Context, journals []models.Journal) error {
	log := logger.FromContext(ctx)

	if len(journals) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(journals))
	index := make(map[int64]int, len(journals))
	for i := range journals {
		ids = append(ids, journals[i].JournalID)
		index[journals[i].JournalID] = i
		journals[i].Specialties = []string{}
	}

	query, args, err := buildGetSpecialtiesQuery(ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*journalRepository.loadSpecialties").
			Int("journal count", len(journals)).
			Msg("failed to execute specialties query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var journalID int64
		var specialty string
		if scanErr := rows.Scan(&journalID, &specialty); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*journalRepository.loadSpecialties").
				Msg("failed to scan specialty row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if i, ok := index[journalID]; ok {
			journals[i].Specialties = append(journals[i].Specialties, specialty)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*journalRepository.loadSpecialties").
			Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

// replaceSpecialtiesTx rewrites the tag set of one journal within tx.
func replaceSpecialtiesTx(ctx context.Context, tx *sql.Tx, journalID int64, specialties []string) error {
	if _, err := tx.ExecContext(ctx, deleteJournalSpecialties, journalID); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, specialty := range specialties {
		if _, err := tx.ExecContext(ctx, insertJournalSpecialty, journalID, specialty); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
