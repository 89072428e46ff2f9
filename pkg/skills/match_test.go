package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JavaScript", "javascript"},
		{"  Python  ", "python"},
		{"\tGo\n", "go"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
		// idempotent
		assert.Equal(t, Normalize(tt.in), Normalize(Normalize(tt.in)))
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name        string
		applicant   []string
		required    []string
		wantMatched []string
		wantMissing []string
		wantPct     float64
	}{
		{
			name:        "backend engineer example",
			applicant:   []string{"go", "Python", "docker"},
			required:    []string{"Go", "SQL", "Docker"},
			wantMatched: []string{"Go", "Docker"},
			wantMissing: []string{"SQL"},
			wantPct:     200.0 / 3.0,
		},
		{
			name:        "case and whitespace insensitive",
			applicant:   []string{"Python"},
			required:    []string{"  python  "},
			wantMatched: []string{"  python  "},
			wantMissing: []string{},
			wantPct:     100,
		},
		{
			name:        "full match",
			applicant:   []string{"React", "CSS", "HTML"},
			required:    []string{"html", "css"},
			wantMatched: []string{"html", "css"},
			wantMissing: []string{},
			wantPct:     100,
		},
		{
			name:        "no match",
			applicant:   []string{"Rust"},
			required:    []string{"Go", "SQL"},
			wantMatched: []string{},
			wantMissing: []string{"Go", "SQL"},
			wantPct:     0,
		},
		{
			name:        "duplicate required entries kept per entry",
			applicant:   []string{"go"},
			required:    []string{"Go", "Go", "SQL"},
			wantMatched: []string{"Go", "Go"},
			wantMissing: []string{"SQL"},
			wantPct:     200.0 / 3.0,
		},
		{
			name:        "empty applicant list",
			applicant:   nil,
			required:    []string{"Go"},
			wantMatched: []string{},
			wantMissing: []string{"Go"},
			wantPct:     0,
		},
		{
			name:        "empty required list yields zero",
			applicant:   []string{"Go"},
			required:    nil,
			wantMatched: []string{},
			wantMissing: []string{},
			wantPct:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.applicant, tt.required)
			assert.Equal(t, tt.wantMatched, got.Matched)
			assert.Equal(t, tt.wantMissing, got.Missing)
			assert.InDelta(t, tt.wantPct, got.Percentage, 0.0001)
			// partition is exhaustive over the required list
			require.Equal(t, len(tt.required), len(got.Matched)+len(got.Missing))
		})
	}
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	applicant := []string{"  Go  ", "SQL"}
	required := []string{"go", "docker"}
	Compare(applicant, required)
	assert.Equal(t, []string{"  Go  ", "SQL"}, applicant)
	assert.Equal(t, []string{"go", "docker"}, required)
}
