package bot

import (
	"fmt"
	"strings"
)

func containsPronoun(query string) bool {
	padded := " " + strings.ToLower(query) + " "

	for _, pronoun := range contextPronouns {
		if strings.Contains(padded, " "+pronoun+" ") {
			return true
		}
	}

	return false
}

// extractEntity returns the first tracked company or person mentioned in
// the text, or "".
func extractEntity(text string) string {
	lower := strings.ToLower(text)

	for _, company := range trackedCompanies {
		if strings.Contains(lower, company) {
			return company
		}
	}
	for _, person := range trackedPeople {
		if strings.Contains(lower, person) {
			return person
		}
	}

	return ""
}

// ContextFor builds the carry-over context string for a query: non-empty
// only when the query needs pronoun resolution and at least one prior
// turn exists.
func (s *Service) ContextFor(query string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !containsPronoun(query) {
		return ""
	}
	if len(s.history.turns) == 0 || s.currentEntity == "" {
		return ""
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "[Context: The conversation was about %s]", s.currentEntity)

	for _, turn := range s.history.recent(2) {
		fmt.Fprintf(&builder, "\nHuman: %s\nAI: %s", turn.User, turn.Bot)
	}

	return builder.String()
}

func (s *Service) resolveQuery(query string) string {
	context := s.ContextFor(query)
	if context == "" {
		return query
	}

	return context + "\n\n" + query
}

func (s *Service) trackEntity(query, response string) {
	entity := extractEntity(query)
	if entity == "" {
		entity = extractEntity(response)
	}
	if entity == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// latest entity wins, never merged
	s.currentEntity = entity
	s.entityHistory = append(s.entityHistory, entity)
}
