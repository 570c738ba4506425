package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/journal-directory/internal/adapter"
	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/internal/store"
	"github.com/MKhiriev/journal-directory/models"
)

// defaultRefreshTerms is used when neither the request body nor the
// configuration provides a catalog term set.
var defaultRefreshTerms = []string{
	"cardiology", "neurology", "oncology", "pediatrics", "surgery",
}

// refreshPageSize caps the number of catalog records fetched per term.
const refreshPageSize = 100

// issnPattern matches a normalized ISSN: four digits, a dash, three
// digits and a final digit or check character X.
var issnPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{3}[0-9X]$`)

type journalService struct {
	journalRepository store.JournalRepository
	migrator          Migrator
	catalog           adapter.CatalogClient

	refreshTerms []string

	initOnce sync.Once
	ready    atomic.Bool

	logger *logger.Logger
}

func NewJournalService(journalRepository store.JournalRepository, migrator Migrator, catalog adapter.CatalogClient, cfg config.Workers, logger *logger.Logger) JournalService {
	terms := cfg.RefreshTerms
	if len(terms) == 0 {
		terms = defaultRefreshTerms
	}

	return &journalService{
		journalRepository: journalRepository,
		migrator:          migrator,
		catalog:           catalog,
		refreshTerms:      terms,
		logger:            logger,
	}
}

func (j *journalService) Initialize(ctx context.Context) error {
	var initErr error

	j.initOnce.Do(func() {
		log := logger.FromContext(ctx)

		if err := j.migrator.Migrate(); err != nil {
			initErr = fmt.Errorf("%w: %w", ErrInitializationFailed, err)
			return
		}

		total, err := j.journalRepository.CountJournals(ctx)
		if err != nil {
			initErr = fmt.Errorf("%w: %w", ErrInitializationFailed, err)
			return
		}

		j.ready.Store(true)
		log.Info().Str("func", "*journalService.Initialize").Int64("journals", total).Msg("directory initialized")
	})

	return initErr
}

func (j *journalService) Ready() bool {
	return j.ready.Load()
}

func (j *journalService) ListAll(ctx context.Context) ([]models.Journal, error) {
	return j.journalRepository.GetAllJournals(ctx)
}

func (j *journalService) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Journal, error) {
	criteria.Term = strings.TrimSpace(criteria.Term)
	if criteria.Term == "" {
		return nil, ErrNoSearchTerm
	}
	criteria.Specialty = normalizeSpecialty(criteria.Specialty)

	return j.journalRepository.SearchJournals(ctx, criteria)
}

func (j *journalService) BySpecialty(ctx context.Context, specialty string) ([]models.Journal, error) {
	specialty = normalizeSpecialty(specialty)
	if specialty == "" {
		return nil, ErrNoSpecialty
	}

	return j.journalRepository.GetJournalsBySpecialty(ctx, specialty)
}

func (j *journalService) ListSpecialties(ctx context.Context) ([]string, error) {
	return j.journalRepository.ListSpecialties(ctx)
}

func (j *journalService) FilterBySpecialty(ctx context.Context, specialty string) ([]models.SpecialtySummary, error) {
	specialty = normalizeSpecialty(specialty)
	if specialty == "" {
		return nil, ErrNoSpecialty
	}

	tags, err := j.journalRepository.MatchSpecialties(ctx, specialty)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.SpecialtySummary, 0, len(tags))
	for _, tag := range tags {
		journals, err := j.journalRepository.GetJournalsBySpecialty(ctx, tag)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, models.SpecialtySummary{
			Specialty:    tag,
			JournalCount: len(journals),
			Journals:     journals,
		})
	}

	return summaries, nil
}

func (j *journalService) ByISSN(ctx context.Context, issn string) (models.Journal, error) {
	normalized, err := normalizeISSN(issn)
	if err != nil {
		return models.Journal{}, err
	}

	return j.journalRepository.GetJournalByISSN(ctx, normalized)
}

func (j *journalService) RefreshDatabase(ctx context.Context, terms ...string) (models.OperationStatus, error) {
	log := logger.FromContext(ctx)
	startedAt := time.Now()

	if len(terms) == 0 {
		terms = j.refreshTerms
	}

	processed := 0
	changed := 0
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		entries, err := j.catalog.Search(ctx, models.CatalogCriteria{Term: term, Limit: refreshPageSize})
		if err != nil {
			return models.OperationStatus{}, err
		}
		processed += len(entries)

		journals := journalsFromCatalog(entries)
		if len(journals) == 0 {
			continue
		}

		written, err := j.journalRepository.UpsertJournals(ctx, journals)
		if err != nil {
			return models.OperationStatus{}, err
		}
		changed += written
	}

	log.Info().Str("func", "*journalService.RefreshDatabase").
		Int("terms", len(terms)).Int("processed", processed).Int("changed", changed).
		Msg("directory refresh finished")

	return models.OperationStatus{
		Operation: "refresh",
		Processed: processed,
		Changed:   changed,
		Took:      time.Since(startedAt),
		StartedAt: startedAt,
	}, nil
}

func (j *journalService) RemapSpecialties(ctx context.Context) (models.OperationStatus, error) {
	log := logger.FromContext(ctx)
	startedAt := time.Now()

	journals, err := j.journalRepository.GetAllJournals(ctx)
	if err != nil {
		return models.OperationStatus{}, err
	}

	assignments := make(map[int64][]string, len(journals))
	for _, journal := range journals {
		assignments[journal.JournalID] = mapSpecialties(journal.Title, nil)
	}

	changed := 0
	if len(assignments) > 0 {
		changed, err = j.journalRepository.ReplaceSpecialties(ctx, assignments)
		if err != nil {
			return models.OperationStatus{}, err
		}
	}

	log.Info().Str("func", "*journalService.RemapSpecialties").
		Int("processed", len(journals)).Int("changed", changed).
		Msg("specialty remapping finished")

	return models.OperationStatus{
		Operation: "map-specialty",
		Processed: len(journals),
		Changed:   changed,
		Took:      time.Since(startedAt),
		StartedAt: startedAt,
	}, nil
}

// journalsFromCatalog converts catalog entries into directory records.
// Entries without any ISSN are skipped: the directory is keyed by ISSN.
func journalsFromCatalog(entries []models.CatalogEntry) []models.Journal {
	now := time.Now()

	journals := make([]models.Journal, 0, len(entries))
	for _, entry := range entries {
		issn, issnErr := normalizeISSN(entry.ISSN)
		eissn, eissnErr := normalizeISSN(entry.EISSN)

		key := issn
		if issnErr != nil {
			if eissnErr != nil {
				continue
			}
			key = eissn
		}
		if eissnErr != nil {
			eissn = ""
		}

		journals = append(journals, models.Journal{
			Title:       entry.Title,
			ISSN:        key,
			EISSN:       eissn,
			Publisher:   entry.Publisher,
			Country:     entry.Country,
			Language:    entry.Language,
			NLMID:       entry.NLMID,
			Specialties: mapSpecialties(entry.Title, entry.BroadHeadings),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return journals
}

// normalizeISSN brings raw into the canonical "NNNN-NNNC" form: spaces
// stripped, letters uppercased, the dash inserted when missing.
func normalizeISSN(raw string) (string, error) {
	issn := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if len(issn) == 8 && !strings.Contains(issn, "-") {
		issn = issn[:4] + "-" + issn[4:]
	}

	if !issnPattern.MatchString(issn) {
		return "", fmt.Errorf("%w: %q", ErrInvalidISSN, raw)
	}

	return issn, nil
}

func normalizeSpecialty(specialty string) string {
	return strings.ToLower(strings.TrimSpace(specialty))
}
