package domain

// Match field names reported in CandidateMatch.MatchedOn. Each value names
// the identity field whose agreement contributed to the candidate.
const (
	MatchFieldEmail = "email"
	MatchFieldPhone = "phone"
	MatchFieldName  = "name"
	MatchFieldZip   = "zip"
)

// CandidateMatch is a scored pairing of an exported person with a live user,
// produced transiently during matching. Confidence is in [0,1] and is
// strictly ordered by match tier: exact identifier matches outrank fuzzy
// ones.
type CandidateMatch struct {
	PersonID PersonID `json:"person_id"`
	UserID   UserID   `json:"user_id"`
	// Confidence expresses match certainty in [0,1].
	Confidence float64 `json:"confidence"`
	// MatchedOn lists the identity fields that agreed for this candidate.
	MatchedOn []string `json:"matched_on"`
}

// MatchResult is the winning candidate for a person after one-to-one
// resolution. A person with no acceptable candidate has no MatchResult;
// absence is an expected outcome, not an error.
type MatchResult struct {
	UserID     UserID   `json:"user_id"`
	Confidence float64  `json:"confidence"`
	MatchedOn  []string `json:"matched_on"`
}
