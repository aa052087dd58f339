package chat

import (
	"regexp"
	"strings"
)

const (
	IntentAllocations = "allocations"
	IntentRequirement = "requirement"
	IntentClient      = "client"
	IntentCandidates  = "candidates"
	IntentUsers       = "users"
	IntentGeneral     = "general"
)

// Ordered by priority: the first matching group wins.
var intentKeywords = []struct {
	intent   string
	keywords []string
}{
	{IntentAllocations, []string{"my allocations", "my requirements", "allocated", "assigned to me"}},
	{IntentRequirement, []string{"requirement", "opening", "req ", "req-"}},
	{IntentClient, []string{"client"}},
	{IntentCandidates, []string{"candidate", "applicant"}},
	{IntentUsers, []string{"recruiter", "users", "user list", "team"}},
}

var idPattern = regexp.MustCompile(`(?i)\b[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\b`)

func detectIntent(message string) string {
	ml := strings.ToLower(message)
	for _, group := range intentKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(ml, keyword) {
				return group.intent
			}
		}
	}
	return IntentGeneral
}

// extractIDs returns the record ids mentioned in the message.
func extractIDs(message string) []string {
	return idPattern.FindAllString(strings.ToLower(message), -1)
}

// wordAfter returns the word following keyword, without punctuation.
func wordAfter(message, keyword string) string {
	words := strings.Fields(message)
	for idx, word := range words {
		if strings.EqualFold(strings.Trim(word, ".,:;?!#"), keyword) && idx+1 < len(words) {
			return strings.Trim(words[idx+1], ".,:;?!#\"'")
		}
	}
	return ""
}

// searchWords are the message words long enough to match a name.
func searchWords(message string) []string {
	result := []string{}
	for _, word := range strings.Fields(message) {
		word = strings.ToLower(strings.Trim(word, ".,:;?!#\"'"))
		if len(word) > 2 {
			result = append(result, word)
		}
	}
	return result
}
