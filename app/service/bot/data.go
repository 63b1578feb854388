package bot

import "time"

// Turn is one completed user/bot exchange.
type Turn struct {
	User string
	Bot  string
	At   time.Time
}

type kbEntry struct {
	Name         string
	Role         string
	Education    string
	PreviousRole string
	BirthYear    int
	Nationality  string
}

// Static knowledge base for common factual queries. Checked before any
// live search.
var knowledgeBase = map[string]kbEntry{
	"openai_ceo": {
		Name:         "Sam Altman",
		Role:         "CEO of OpenAI",
		Education:    "Stanford University (dropped out)",
		PreviousRole: "President of Y Combinator",
		BirthYear:    1985,
		Nationality:  "American",
	},
	"microsoft_ceo": {
		Name:         "Satya Nadella",
		Role:         "CEO of Microsoft",
		Education:    "University of Wisconsin-Milwaukee (MBA), Manipal Institute of Technology (BE)",
		PreviousRole: "Executive VP of Cloud and Enterprise",
		BirthYear:    1967,
		Nationality:  "Indian-American",
	},
	"google_ceo": {
		Name:         "Sundar Pichai",
		Role:         "CEO of Google and Alphabet",
		Education:    "Stanford University (MS), Wharton School (MBA), IIT Kharagpur (BTech)",
		PreviousRole: "Product Chief",
		BirthYear:    1972,
		Nationality:  "Indian-American",
	},
	"tesla_ceo": {
		Name:         "Elon Musk",
		Role:         "CEO of Tesla and SpaceX",
		Education:    "University of Pennsylvania (BS Economics, BS Physics)",
		PreviousRole: "Co-founder of PayPal, Zip2",
		BirthYear:    1971,
		Nationality:  "South African-American",
	},
	"apple_ceo": {
		Name:         "Tim Cook",
		Role:         "CEO of Apple",
		Education:    "Duke University (MBA), Auburn University (BS Industrial Engineering)",
		PreviousRole: "COO of Apple",
		BirthYear:    1960,
		Nationality:  "American",
	},
}

var companyKBKeys = map[string]string{
	"openai":    "openai_ceo",
	"microsoft": "microsoft_ceo",
	"google":    "google_ceo",
	"alphabet":  "google_ceo",
	"tesla":     "tesla_ceo",
	"apple":     "apple_ceo",
}

// Entity lists for naive context tracking.
var trackedCompanies = []string{
	"openai", "microsoft", "google", "apple", "tesla", "amazon", "meta", "facebook",
}

var trackedPeople = []string{
	"sam altman", "satya nadella", "sundar pichai", "tim cook", "elon musk",
}

var contextPronouns = []string{
	"he", "she", "they", "it", "him", "her", "them", "his", "their",
}
