package chat

import (
	"strings"

	"github.com/PabloGalante/safehaven/internal/knowledge"
)

const baseInstructions = `
You are a compassionate and empathetic information assistant specializing in general knowledge about miscarriage.
Your primary goal is to provide accurate, general information and point users towards types of support, always emphasizing seeking professional medical and psychological help.
Do NOT provide medical diagnosis, personalized medical advice, or therapeutic counseling.
Whenever the user describes symptoms, distress, or a decision about their care, encourage them to contact a qualified healthcare provider or mental health professional.
`

// Intent is the knowledge section a question is routed to.
type Intent string

const (
	IntentGeneral       Intent = "general"
	IntentMythsAndFacts Intent = "myths_and_facts"
	IntentHowToTalk     Intent = "how_to_talk"
)

type intentRoute struct {
	intent   Intent
	keywords []string
	marker   string
	title    string
}

// Checked in order; the first route with a matching keyword wins.
var intentRoutes = []intentRoute{
	{
		intent:   IntentMythsAndFacts,
		keywords: []string{"myth", "fact", "misconceptions"},
		marker:   knowledge.SectionMythsAndFacts,
		title:    "MYTHS AND FACTS ABOUT MISCARRIAGE",
	},
	{
		intent:   IntentHowToTalk,
		keywords: []string{"talk", "communicate", "say", "phrases"},
		marker:   knowledge.SectionHowToTalk,
		title:    "HOW TO TALK ABOUT MISCARRIAGE & WHAT TO SAY",
	},
}

// DetectIntent routes free text to a knowledge section by keyword substring.
func DetectIntent(userInput string) Intent {
	if r, ok := matchRoute(userInput); ok {
		return r.intent
	}
	return IntentGeneral
}

func matchRoute(userInput string) (intentRoute, bool) {
	lower := strings.ToLower(userInput)
	for _, r := range intentRoutes {
		if containsAny(lower, r.keywords) {
			return r, true
		}
	}
	return intentRoute{}, false
}

// Compose builds the full instruction text for one question. When the question
// is routed to a section, only that section of the document is included; if the
// document has no such section the whole document is used and the model is still
// told which section to answer from. An empty document yields an empty knowledge block.
func Compose(userInput, document string) string {
	knowledgeText := document
	restriction := ""

	if r, ok := matchRoute(userInput); ok {
		if section, found := knowledge.SectionOf(document, r.marker); found {
			knowledgeText = section
		}
		restriction = `Answer this based ONLY on the "` + r.title + `" section:`
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(baseInstructions))
	b.WriteString("\n\n--- KNOWLEDGE BASE ---\n")
	b.WriteString(knowledgeText)
	b.WriteString("\n--- END KNOWLEDGE BASE ---\n\n")
	if restriction != "" {
		b.WriteString(restriction)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(userInput)

	return b.String()
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
