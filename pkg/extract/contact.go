package extract

import (
	"regexp"
	"strings"
)

// Contact holds the fields pulled from resume text. Any of them may be
// empty when the resume does not state them in a recognizable form.
type Contact struct {
	Name  string
	Email string
	Phone string
}

var (
	reEmail = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	rePhone = regexp.MustCompile(`\+?[0-9][0-9()\-. ]{7,}[0-9]`)
)

// ContactInfo extracts name, email and phone from plain resume text.
// Email and phone are regex matches; the name is taken from the first short
// line that is not an address or a number, which holds for the common
// "name on top" resume layout.
func ContactInfo(text string) Contact {
	c := Contact{
		Email: reEmail.FindString(text),
		Phone: strings.TrimSpace(rePhone.FindString(text)),
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 60 {
			continue
		}
		if strings.ContainsAny(line, "@:/") || strings.IndexFunc(line, isDigit) >= 0 {
			continue
		}
		c.Name = line
		break
	}
	return c
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
