package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Backend Engineer
jane.doe@example.com | +1 (555) 123-4567

Experience building services in Go and Python, deployed with Docker on AWS.
Comfortable with PostgreSQL, Redis and CI/CD pipelines.`

func TestContactInfo(t *testing.T) {
	c := ContactInfo(sampleResume)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane.doe@example.com", c.Email)
	assert.Equal(t, "+1 (555) 123-4567", c.Phone)
}

func TestContactInfoMissingFields(t *testing.T) {
	c := ContactInfo("just some text with no contacts")
	assert.Empty(t, c.Email)
	assert.Empty(t, c.Phone)
}

func TestSkillList(t *testing.T) {
	got := SkillList(sampleResume, DefaultVocabulary)
	assert.Subset(t, got, []string{"Go", "Python", "Docker", "AWS", "PostgreSQL", "Redis", "CI/CD"})
	assert.NotContains(t, got, "Java") // not a substring match on "JavaScript"
}

func TestSkillListWholePhraseOnly(t *testing.T) {
	// "go" must not be found inside "google"
	got := SkillList("worked at google on search infrastructure", []string{"Go"})
	assert.Empty(t, got)

	got = SkillList("rewrote the billing service in go", []string{"Go"})
	assert.Equal(t, []string{"Go"}, got)
}

func TestSkillListMultiWordAndDedup(t *testing.T) {
	text := "applied machine learning; strong Machine Learning background"
	got := SkillList(text, []string{"Machine Learning", "machine learning"})
	require.Len(t, got, 1)
	assert.Equal(t, "Machine Learning", got[0])
}

func TestTextRejectsUnknownFormat(t *testing.T) {
	_, err := Text("resume.txt", []byte("plain text"))
	assert.Error(t, err)
}

func TestCollapseWhitespace(t *testing.T) {
	in := "Jane Doe \t engineer\n\n\nGo   developer"
	assert.Equal(t, "Jane Doe engineer\nGo developer", collapseWhitespace(in))
}
