package adapter

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/journal-directory/models"
)

// esearchResponse is the JSON shape of an E-utilities esearch call.
// Only the identifier list is consumed.
type esearchResponse struct {
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// esummaryResponse is the JSON shape of an E-utilities esummary call.
// The "result" object maps each UID to its own record plus a "uids"
// index, so the records are decoded lazily from raw messages.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// esummaryRecord is a single nlmcatalog summary record. The catalog
// reports many more fields; only those the directory maps are declared.
type esummaryRecord struct {
	NLMUniqueID     string   `json:"nlmuniqueid"`
	Title           string   `json:"title"`
	ISSN            string   `json:"issn"`
	EISSN           string   `json:"eissn"`
	PublicationInfo struct {
		Publisher string `json:"publisher"`
		Country   string `json:"country"`
	} `json:"publicationinfo"`
	Language          []string `json:"language"`
	BroadJournalHeads []string `json:"broadjournalheadinglist"`
}

// uids extracts the ordered identifier index from the esummary result.
func (r *esummaryResponse) uids() ([]string, error) {
	raw, ok := r.Result["uids"]
	if !ok {
		return nil, ErrCatalogMalformedResponse
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, ErrCatalogMalformedResponse
	}

	return ids, nil
}

// toCatalogEntry maps one summary record into the directory's model.
func (rec *esummaryRecord) toCatalogEntry() models.CatalogEntry {
	language := ""
	if len(rec.Language) > 0 {
		language = rec.Language[0]
	}

	return models.CatalogEntry{
		NLMID:         rec.NLMUniqueID,
		Title:         strings.TrimSpace(rec.Title),
		ISSN:          rec.ISSN,
		EISSN:         rec.EISSN,
		Publisher:     rec.PublicationInfo.Publisher,
		Country:       rec.PublicationInfo.Country,
		Language:      language,
		BroadHeadings: rec.BroadJournalHeads,
	}
}
