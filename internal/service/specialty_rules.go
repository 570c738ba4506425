package service

import (
	"sort"
	"strings"
)

// specialtyUnclassified is assigned when no mapping rule matches.
const specialtyUnclassified = "unclassified"

// specialtyRules maps lowercase keywords to specialty tags. A keyword
// matches by substring against the journal title and the catalog's
// broad subject headings.
var specialtyRules = map[string]string{
	"cardio":    "cardiology",
	"heart":     "cardiology",
	"vascular":  "cardiology",
	"neuro":     "neurology",
	"brain":     "neurology",
	"onco":      "oncology",
	"cancer":    "oncology",
	"tumor":     "oncology",
	"pediatr":   "pediatrics",
	"child":     "pediatrics",
	"dermat":    "dermatology",
	"skin":      "dermatology",
	"psychiat":  "psychiatry",
	"mental":    "psychiatry",
	"radiol":    "radiology",
	"imaging":   "radiology",
	"surg":      "surgery",
	"pulmon":    "pulmonology",
	"respir":    "pulmonology",
	"lung":      "pulmonology",
	"gastro":    "gastroenterology",
	"digest":    "gastroenterology",
	"nephro":    "nephrology",
	"kidney":    "nephrology",
	"renal":     "nephrology",
	"endocrin":  "endocrinology",
	"diabet":    "endocrinology",
	"metabol":   "endocrinology",
	"rheumat":   "rheumatology",
	"hematol":   "hematology",
	"blood":     "hematology",
	"immunol":   "immunology",
	"allerg":    "immunology",
	"infect":    "infectious-diseases",
	"microbiol": "infectious-diseases",
	"virol":     "infectious-diseases",
	"ophthalm":  "ophthalmology",
	"urolog":    "urology",
	"anesthes":  "anesthesiology",
	"obstet":    "obstetrics-gynecology",
	"gynecol":   "obstetrics-gynecology",
	"orthop":    "orthopedics",
	"geriatr":   "geriatrics",
	"aging":     "geriatrics",
	"patholog":  "pathology",
	"pharmac":   "pharmacology",
	"epidemiol": "public-health",
	"hygiene":   "public-health",
}

// mapSpecialties derives the specialty tags for a journal from its title
// and the catalog's broad subject headings. The result is sorted,
// deduplicated and never empty.
func mapSpecialties(title string, broadHeadings []string) []string {
	corpus := make([]string, 0, len(broadHeadings)+1)
	corpus = append(corpus, strings.ToLower(title))
	for _, heading := range broadHeadings {
		corpus = append(corpus, strings.ToLower(heading))
	}

	matched := make(map[string]struct{})
	for _, text := range corpus {
		for keyword, specialty := range specialtyRules {
			if strings.Contains(text, keyword) {
				matched[specialty] = struct{}{}
			}
		}
	}

	if len(matched) == 0 {
		return []string{specialtyUnclassified}
	}

	specialties := make([]string, 0, len(matched))
	for specialty := range matched {
		specialties = append(specialties, specialty)
	}
	sort.Strings(specialties)

	return specialties
}
