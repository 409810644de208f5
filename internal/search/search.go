package search

import (
	"sort"
	"strings"

	"github.com/nikbrunner/dialer/internal/model"
	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/sahilm/fuzzy"
)

// SearchResult is one phone number of a matching contact.
type SearchResult struct {
	Contact        *model.Contact
	Number         model.PhoneNumber
	MatchedIndexes []int // indexes into Contact.Name for name matches
	Score          int
}

// contactNames implements fuzzy.Source for a contact slice.
type contactNames []*model.Contact

func (cn contactNames) String(i int) string {
	return cn[i].Name
}

func (cn contactNames) Len() int {
	return len(cn)
}

// FuzzySearchContacts finds contacts for query. Dialable queries match on
// number digits; anything else fuzzy matches contact names. Each phone number
// of a matching contact is its own result. Results are sorted best first.
func FuzzySearchContacts(store *model.Store, query string) []SearchResult {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	contacts := make(contactNames, len(store.Contacts))
	for i := range store.Contacts {
		contacts[i] = &store.Contacts[i]
	}

	if phone.IsDialable(query) {
		return searchNumbers(contacts, phone.Normalize(query))
	}

	var results []SearchResult
	for _, m := range fuzzy.FindFrom(query, contacts) {
		c := contacts[m.Index]
		for _, n := range c.Numbers {
			results = append(results, SearchResult{
				Contact:        c,
				Number:         n,
				MatchedIndexes: m.MatchedIndexes,
				Score:          m.Score,
			})
		}
	}
	return results
}

// searchNumbers returns every number containing the query digits. Earlier
// matches rank higher.
func searchNumbers(contacts contactNames, query string) []SearchResult {
	query = strings.TrimPrefix(query, "+")
	if query == "" {
		return nil
	}

	var results []SearchResult
	for _, c := range contacts {
		for _, n := range c.Numbers {
			digits := strings.TrimPrefix(phone.Normalize(n.Number), "+")
			at := strings.Index(digits, query)
			if at < 0 {
				continue
			}
			results = append(results, SearchResult{
				Contact: c,
				Number:  n,
				Score:   -at,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}
