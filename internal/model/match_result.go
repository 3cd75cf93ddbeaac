package model

// MatchResult is the scoring collaborator's verdict on one job-description /
// resume pair. Immutable once received; a new analysis replaces it wholesale.
type MatchResult struct {
	Score         float64  `json:"score"`
	Rating        string   `json:"rating"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Gaps          []string `json:"gaps"`
	Tip           string   `json:"tip"`
}
