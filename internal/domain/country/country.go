// Package country guesses a match's country from team and competition names
// when the provider supplies none.
package country

import "strings"

// Unknown is returned when no indicator matches.
const Unknown = "Unknown"

// International marks cross-border national-team friendlies.
const International = "International"

// indicators maps a lowercase country key to the name fragments that point
// at it. Matching is substring-based on lowercased team names.
var indicators = map[string][]string{
	"australia":      {"australia", "aussie", "socceroos", "matildas"},
	"argentina":      {"argentina", "boca", "river plate", "racing club"},
	"brazil":         {"brazil", "sao paulo", "flamengo", "corinthians", "palmeiras"},
	"england":        {"england", "manchester", "liverpool", "chelsea", "arsenal", "tottenham"},
	"spain":          {"spain", "real madrid", "barcelona", "atletico", "sevilla", "valencia"},
	"germany":        {"germany", "bayern", "borussia", "schalke", "hamburg"},
	"france":         {"france", "psg", "marseille", "lyon", "monaco", "saint-etienne"},
	"italy":          {"italy", "juventus", "inter", "milan", "roma", "napoli", "lazio"},
	"netherlands":    {"netherlands", "ajax", "psv", "feyenoord"},
	"portugal":       {"portugal", "porto", "benfica", "sporting"},
	"mexico":         {"mexico", "america", "guadalajara", "cruz azul", "pumas"},
	"usa":            {"usa", "united states", "la galaxy", "seattle sounders", "new york"},
	"south korea":    {"korea", "seoul", "busan", "daegu"},
	"japan":          {"japan", "tokyo", "osaka", "yokohama", "kashima"},
	"china":          {"china", "beijing", "shanghai", "guangzhou"},
	"russia":         {"russia", "moscow", "spartak", "cska", "dynamo", "zenit"},
	"norway":         {"norway", "oslo", "bergen"},
	"czech republic": {"czech", "praha", "prague", "brno"},
	"austria":        {"austria", "vienna", "salzburg"},
}

// indicatorOrder fixes the scan order so inference is deterministic;
// map iteration alone would not be.
var indicatorOrder = []string{
	"australia", "argentina", "brazil", "england", "spain", "germany",
	"france", "italy", "netherlands", "portugal", "mexico", "usa",
	"south korea", "japan", "china", "russia", "norway", "czech republic",
	"austria",
}

// Infer guesses the country for a match. International friendlies between
// teams from different countries collapse to "International"; otherwise the
// first indicator hit across both team names wins.
func Infer(homeTeam, awayTeam, competition string) string {
	home := strings.ToLower(homeTeam)
	away := strings.ToLower(awayTeam)
	comp := strings.ToLower(competition)

	if strings.Contains(comp, "international") && strings.Contains(comp, "friendly") {
		homeCountry := firstMatch(home)
		awayCountry := firstMatch(away)
		switch {
		case homeCountry != "" && awayCountry != "" && homeCountry != awayCountry:
			return International
		case homeCountry != "" && awayCountry == "":
			return title(homeCountry)
		case awayCountry != "" && homeCountry == "":
			return title(awayCountry)
		case homeCountry != "" && homeCountry == awayCountry:
			return title(homeCountry)
		}
	}

	if hit := firstMatch(home + " " + away); hit != "" {
		return title(hit)
	}
	return Unknown
}

func firstMatch(text string) string {
	for _, key := range indicatorOrder {
		for _, fragment := range indicators[key] {
			if strings.Contains(text, fragment) {
				return key
			}
		}
	}
	return ""
}

// title capitalizes each word of a country key for display.
func title(key string) string {
	words := strings.Fields(key)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
