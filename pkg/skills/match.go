package skills

// MatchResult partitions a required skill list against an applicant's skills.
// Matched and Missing keep the original casing and the input order of the
// required list; duplicate required entries produce duplicate output entries,
// so len(Matched)+len(Missing) always equals the required count.
type MatchResult struct {
	Matched    []string `json:"matchedSkills"`
	Missing    []string `json:"missingSkills"`
	Percentage float64  `json:"matchPercentage"`
}

// Compare matches an applicant's extracted skills against a role's required
// skills using normalized equality. Pure function, safe for concurrent use.
//
// Percentage is 100*|matched|/|required|. An empty required list yields 0;
// the job role store rejects such lists at creation, this is a guard for
// callers comparing against ad-hoc input.
func Compare(applicantSkills, requiredSkills []string) MatchResult {
	have := make(map[string]struct{}, len(applicantSkills))
	for _, s := range applicantSkills {
		have[Normalize(s)] = struct{}{}
	}
	res := MatchResult{Matched: []string{}, Missing: []string{}}
	for _, s := range requiredSkills {
		if _, ok := have[Normalize(s)]; ok {
			res.Matched = append(res.Matched, s)
		} else {
			res.Missing = append(res.Missing, s)
		}
	}
	if len(requiredSkills) > 0 {
		res.Percentage = 100 * float64(len(res.Matched)) / float64(len(requiredSkills))
	}
	return res
}
