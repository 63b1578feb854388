package bot

import (
	"fmt"
	"strings"
)

var roleWords = []string{"ceo", "chief", "head"}
var educationWords = []string{"study", "studied", "education", "university", "college", "school"}
var birthWords = []string{"born", "age", "year"}

// searchKnowledgeBase answers a query from the static table, or returns
// "" when no pattern matches. It always takes precedence over live
// search.
func searchKnowledgeBase(query string) string {
	lower := strings.ToLower(query)

	for company, key := range companyKBKeys {
		if !strings.Contains(lower, company) {
			continue
		}
		if !containsAny(lower, roleWords) {
			continue
		}

		entry := knowledgeBase[key]
		return fmt.Sprintf("The CEO of %s is **%s**. %s",
			titleWord(company), entry.Name, entry.Education)
	}

	for _, entry := range knowledgeBase {
		if !mentionsName(lower, entry.Name) {
			continue
		}

		if containsAny(lower, educationWords) {
			return fmt.Sprintf("%s studied at %s.", entry.Name, entry.Education)
		}
		if containsAny(lower, birthWords) {
			return fmt.Sprintf("%s was born in %d.", entry.Name, entry.BirthYear)
		}
	}

	return ""
}

func mentionsName(lowerQuery, name string) bool {
	for _, part := range strings.Fields(strings.ToLower(name)) {
		if strings.Contains(lowerQuery, part) {
			return true
		}
	}
	return false
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
