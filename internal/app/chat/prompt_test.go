package chat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/safehaven/internal/app/chat"
)

var sampleDocument = strings.Join([]string{
	"Myths and Facts About Miscarriage",
	"Fact: it is not your fault",
	"How To Talk About Miscarriage",
	"Say: I'm sorry for your loss",
}, "\n")

func TestDetectIntent(t *testing.T) {
	cases := map[string]chat.Intent{
		"What are common myths?":               chat.IntentMythsAndFacts,
		"Is that a FACT?":                      chat.IntentMythsAndFacts,
		"any Misconceptions I should know":     chat.IntentMythsAndFacts,
		"How do I talk to my sister":           chat.IntentHowToTalk,
		"what phrases help":                    chat.IntentHowToTalk,
		"How can we COMMUNICATE better":        chat.IntentHowToTalk,
		"myths about what to say to a friend":  chat.IntentMythsAndFacts,
		"How long does physical recovery take": chat.IntentGeneral,
	}

	for input, want := range cases {
		assert.Equal(t, want, chat.DetectIntent(input), "input %q", input)
	}
}

func TestComposeMythsSelectsOnlyMythsSection(t *testing.T) {
	prompt := chat.Compose("What are common myths?", sampleDocument)

	assert.Contains(t, prompt, "Myths and Facts About Miscarriage\nFact: it is not your fault")
	assert.NotContains(t, prompt, "How To Talk About Miscarriage")
	assert.NotContains(t, prompt, "Say: I'm sorry for your loss")
	assert.Contains(t, prompt, `based ONLY on the "MYTHS AND FACTS ABOUT MISCARRIAGE" section`)
}

func TestComposeMythsWinsOverTalk(t *testing.T) {
	prompt := chat.Compose("What should I SAY about the MYTH of stress?", sampleDocument)

	assert.Contains(t, prompt, "Fact: it is not your fault")
	assert.NotContains(t, prompt, "Say: I'm sorry for your loss")
	assert.NotContains(t, prompt, "HOW TO TALK")
}

func TestComposeTalkSelectsTalkSection(t *testing.T) {
	prompt := chat.Compose("What can I say to my partner?", sampleDocument)

	assert.Contains(t, prompt, "How To Talk About Miscarriage\nSay: I'm sorry for your loss")
	assert.NotContains(t, prompt, "Myths and Facts About Miscarriage")
	assert.Contains(t, prompt, `based ONLY on the "HOW TO TALK ABOUT MISCARRIAGE & WHAT TO SAY" section`)
}

var mentionsDocument = strings.Join([]string{
	"MYTHS AND FACTS ABOUT MISCARRIAGE",
	"Myth: it is your fault.",
	"Fact: learning how to talk about it with a doctor helps.",
	"Myth: stress causes miscarriage.",
	"HOW TO TALK ABOUT MISCARRIAGE & WHAT TO SAY",
	"Say: I'm sorry for your loss.",
}, "\n")

func knowledgeBlock(t *testing.T, prompt string) string {
	t.Helper()
	start := strings.Index(prompt, "--- KNOWLEDGE BASE ---\n")
	end := strings.Index(prompt, "\n--- END KNOWLEDGE BASE ---")
	if start < 0 || end < start {
		t.Fatalf("knowledge block not found in prompt")
	}
	return prompt[start+len("--- KNOWLEDGE BASE ---\n") : end]
}

func TestComposeTalkIgnoresMarkerInMythsBody(t *testing.T) {
	prompt := chat.Compose("what to say to my sister", mentionsDocument)

	assert.Equal(t, "HOW TO TALK ABOUT MISCARRIAGE & WHAT TO SAY\nSay: I'm sorry for your loss.", knowledgeBlock(t, prompt))
}

func TestComposeMythsKeepsWholeSection(t *testing.T) {
	prompt := chat.Compose("any myths?", mentionsDocument)

	block := knowledgeBlock(t, prompt)
	assert.Contains(t, block, "Fact: learning how to talk about it with a doctor helps.")
	assert.Contains(t, block, "Myth: stress causes miscarriage.")
	assert.NotContains(t, block, "Say: I'm sorry for your loss.")
}

func TestComposeGeneralUsesWholeDocument(t *testing.T) {
	prompt := chat.Compose("How long does recovery take?", sampleDocument)

	assert.Contains(t, prompt, sampleDocument)
	assert.NotContains(t, prompt, "based ONLY on")
}

func TestComposeIncludesInstructionsAndVerbatimInput(t *testing.T) {
	input := "  I feel lost   "
	prompt := chat.Compose(input, sampleDocument)

	assert.Contains(t, prompt, "Do NOT provide medical diagnosis, personalized medical advice, or therapeutic counseling.")
	assert.Contains(t, prompt, "professional")
	assert.True(t, strings.HasSuffix(prompt, "User: "+input))
}

func TestComposeWithMissingSectionFallsBackToDocument(t *testing.T) {
	doc := "General information only."
	prompt := chat.Compose("tell me the facts", doc)

	assert.Contains(t, prompt, doc)
	assert.Contains(t, prompt, "based ONLY on")
}

func TestComposeWithEmptyKnowledge(t *testing.T) {
	prompt := chat.Compose("What are common myths?", "")

	assert.Contains(t, prompt, "--- KNOWLEDGE BASE ---\n\n--- END KNOWLEDGE BASE ---")
	assert.Contains(t, prompt, "User: What are common myths?")
}
