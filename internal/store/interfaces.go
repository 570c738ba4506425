package store

import (
	"context"

	"github.com/MKhiriev/journal-directory/models"
)

// JournalRepository is the persistence contract of the journal directory.
// All read methods return journals with their specialty tags populated.
type JournalRepository interface {
	// GetAllJournals returns every directory entry ordered by title.
	GetAllJournals(ctx context.Context) ([]models.Journal, error)

	// SearchJournals returns entries matching the criteria term
	// (case-insensitive, against title and publisher), optionally
	// narrowed to an exact specialty tag.
	SearchJournals(ctx context.Context, criteria models.SearchCriteria) ([]models.Journal, error)

	// GetJournalsBySpecialty returns entries carrying the exact
	// specialty tag.
	GetJournalsBySpecialty(ctx context.Context, specialty string) ([]models.Journal, error)

	// ListSpecialties returns all distinct specialty tags in use,
	// ordered alphabetically.
	ListSpecialties(ctx context.Context) ([]string, error)

	// MatchSpecialties returns the distinct specialty tags containing
	// fragment, case-insensitively.
	MatchSpecialties(ctx context.Context, fragment string) ([]string, error)

	// GetJournalByISSN returns the entry whose print or electronic ISSN
	// equals the normalized issn, or [ErrJournalNotFound].
	GetJournalByISSN(ctx context.Context, issn string) (models.Journal, error)

	// UpsertJournals inserts or updates the given records keyed by ISSN,
	// replacing their specialty tags. Returns the number of records written.
	UpsertJournals(ctx context.Context, journals []models.Journal) (int, error)

	// ReplaceSpecialties rewrites the specialty tags of the given
	// journals. Returns the number of journals updated.
	ReplaceSpecialties(ctx context.Context, assignments map[int64][]string) (int, error)

	// CountJournals returns the total number of directory entries.
	CountJournals(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
