package chat

import "strings"

type resourceGroup struct {
	name       string
	keywords   []string
	suggestion string
}

// Groups are independent; their suggestions are joined in this order.
var resourceGroups = []resourceGroup{
	{
		name:       "grief",
		keywords:   []string{"grief", "sadness", "cope", "emotional", "support group", "counseling"},
		suggestion: "Consider reaching out to a professional counselor specializing in reproductive loss or joining a peer support group like those offered by *Still A Mum*.",
	},
	{
		name:       "medical",
		keywords:   []string{"medical", "doctor", "symptoms", "bleeding", "pain", "hospital"},
		suggestion: "For any medical concerns or symptoms, it is crucial to consult a qualified healthcare provider immediately.",
	},
	{
		name:       "partner",
		keywords:   []string{"partner", "family", "friend", "how to help"},
		suggestion: "Resources are available for partners, family, and friends on how to offer compassionate support. Look for guides on supporting someone through grief.",
	},
	{
		name:       "crisis",
		keywords:   []string{"crisis", "urgent", "immediate help"},
		suggestion: "If you need immediate support, crisis lines and helplines such as Marie Stopes Kenya can offer a safe space to talk.",
	},
}

// Suggest returns the resource suggestions triggered by text, space-joined, or
// "" when nothing matches.
func Suggest(text string) string {
	lower := strings.ToLower(text)

	var suggestions []string
	for _, g := range resourceGroups {
		if containsAny(lower, g.keywords) {
			suggestions = append(suggestions, g.suggestion)
		}
	}
	return strings.Join(suggestions, " ")
}

// SuggestionGroups names the groups that match text, in declaration order.
func SuggestionGroups(text string) []string {
	lower := strings.ToLower(text)

	var names []string
	for _, g := range resourceGroups {
		if containsAny(lower, g.keywords) {
			names = append(names, g.name)
		}
	}
	return names
}
