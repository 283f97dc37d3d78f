package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/safehaven/internal/content"
)

func TestFAQs(t *testing.T) {
	faqs := content.FAQs()
	assert.Len(t, faqs, 7)
	assert.Equal(t, "What is a miscarriage?", faqs[0].Question)

	for _, f := range faqs {
		assert.NotEmpty(t, f.Question)
		assert.NotEmpty(t, f.Answer)
	}

	faqs[0].Question = "changed"
	assert.Equal(t, "What is a miscarriage?", content.FAQs()[0].Question)
}

func TestAbout(t *testing.T) {
	about := content.About()
	assert.NotEmpty(t, about.Title)
	assert.Len(t, about.Sections, 2)
	assert.Contains(t, content.Disclaimer, "NOT a substitute")
}
