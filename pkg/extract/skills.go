package extract

import (
	"regexp"
	"strings"

	"github.com/vbncursed/skillscan/pkg/skills"
)

// DefaultVocabulary is the built-in skill dictionary used when scanning a
// resume. Callers extend it with the skills of every configured job role so
// role-specific requirements are always detectable.
var DefaultVocabulary = []string{
	"Go", "Python", "Java", "JavaScript", "TypeScript", "C", "C++", "C#",
	"Rust", "Ruby", "PHP", "Kotlin", "Swift", "Scala",
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Next.js",
	"SQL", "PostgreSQL", "MySQL", "SQLite", "MongoDB", "Redis", "Kafka",
	"Docker", "Kubernetes", "Terraform", "Ansible", "AWS", "GCP", "Azure",
	"Linux", "Git", "CI/CD", "REST", "gRPC", "GraphQL",
	"Machine Learning", "Deep Learning", "NLP", "Pandas", "NumPy",
}

var (
	reWordChar = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaceRun = regexp.MustCompile(`\s+`)
)

// foldText reduces text to lower-cased space-separated tokens so skill
// phrases can be matched as whole words.
func foldText(s string) string {
	s = strings.ToLower(s)
	s = reWordChar.ReplaceAllString(s, " ")
	s = reSpaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// containsPhrase reports whether a folded phrase occurs in folded text as
// whole words: "go" is found in "built in go" but not in "google".
func containsPhrase(foldedText, foldedPhrase string) bool {
	if foldedPhrase == "" {
		return false
	}
	return strings.Contains(" "+foldedText+" ", " "+foldedPhrase+" ")
}

// SkillList scans resume text for every vocabulary entry, whole-phrase and
// case-insensitively. Results keep the vocabulary's casing and order and
// are de-duplicated by normalized form.
func SkillList(text string, vocabulary []string) []string {
	folded := foldText(text)
	seen := make(map[string]struct{}, len(vocabulary))
	found := []string{}
	for _, v := range vocabulary {
		key := skills.Normalize(v)
		if _, dup := seen[key]; dup || key == "" {
			continue
		}
		if containsPhrase(folded, foldText(v)) {
			seen[key] = struct{}{}
			found = append(found, v)
		}
	}
	return found
}
