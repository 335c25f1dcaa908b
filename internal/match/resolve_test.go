package match_test

import (
	"testing"

	"sttools/internal/match"
	"sttools/pkg/domain"

	"github.com/stretchr/testify/require"
)

func candidate(pid, uid int64, conf float64) domain.CandidateMatch {
	return domain.CandidateMatch{
		PersonID:   domain.PersonID(pid),
		UserID:     domain.UserID(uid),
		Confidence: conf,
		MatchedOn:  []string{domain.MatchFieldName, domain.MatchFieldZip},
	}
}

func TestResolveEveryPersonHasEntry(t *testing.T) {
	persons := []domain.Person{person(1, nil), person(2, nil)}
	got := match.Resolve(persons, match.Candidates{})

	require.Len(t, got, 2)
	require.Contains(t, got, domain.PersonID(1))
	require.Contains(t, got, domain.PersonID(2))
	require.Nil(t, got[1])
	require.Nil(t, got[2])
}

func TestResolveContestedUserGoesToHigherConfidence(t *testing.T) {
	persons := []domain.Person{person(1, nil), person(2, nil)}
	candidates := match.Candidates{
		1: {candidate(1, 10, 0.6), candidate(1, 20, 0.5)},
		2: {candidate(2, 10, 0.8)},
	}

	got := match.Resolve(persons, candidates)

	require.NotNil(t, got[2])
	require.Equal(t, domain.UserID(10), got[2].UserID, "higher-confidence person claims the contested user")
	require.NotNil(t, got[1])
	require.Equal(t, domain.UserID(20), got[1].UserID, "loser falls through to its next candidate")
}

func TestResolveLoserFallsThroughToNextCandidate(t *testing.T) {
	persons := []domain.Person{person(1, nil), person(2, nil)}
	candidates := match.Candidates{
		1: {candidate(1, 10, 0.8), candidate(1, 20, 0.4)},
		2: {candidate(2, 10, 0.6)},
	}

	got := match.Resolve(persons, candidates)

	require.Equal(t, domain.UserID(10), got[1].UserID)
	// person 2 loses user 10 and has no other candidate
	require.Nil(t, got[2])
}

func TestResolveUniqueness(t *testing.T) {
	persons := []domain.Person{person(1, nil), person(2, nil), person(3, nil)}
	candidates := match.Candidates{
		1: {candidate(1, 10, 0.8), candidate(1, 20, 0.7)},
		2: {candidate(2, 10, 0.75), candidate(2, 20, 0.7)},
		3: {candidate(3, 10, 0.7), candidate(3, 20, 0.65)},
	}

	got := match.Resolve(persons, candidates)

	claimed := map[domain.UserID]domain.PersonID{}
	for pid, res := range got {
		if res == nil {
			continue
		}
		prev, exists := claimed[res.UserID]
		require.False(t, exists, "user %d claimed by both %d and %d", res.UserID, prev, pid)
		claimed[res.UserID] = pid
	}

	require.Equal(t, domain.UserID(10), got[1].UserID)
	require.Equal(t, domain.UserID(20), got[2].UserID)
	require.Nil(t, got[3], "no unclaimed candidate remains")
}

func TestResolveTiesBrokenByInputOrder(t *testing.T) {
	persons := []domain.Person{person(2, nil), person(1, nil)}
	candidates := match.Candidates{
		1: {candidate(1, 10, 0.8)},
		2: {candidate(2, 10, 0.8)},
	}

	got := match.Resolve(persons, candidates)

	// person 2 comes first in input order, so the tie goes to it
	require.NotNil(t, got[2])
	require.Equal(t, domain.UserID(10), got[2].UserID)
	require.Nil(t, got[1])
}

func TestResolveDeterministic(t *testing.T) {
	persons := []domain.Person{person(1, nil), person(2, nil), person(3, nil)}
	candidates := match.Candidates{
		1: {candidate(1, 10, 0.8)},
		2: {candidate(2, 10, 0.8), candidate(2, 20, 0.6)},
		3: {candidate(3, 20, 0.6)},
	}

	first := match.Resolve(persons, candidates)
	second := match.Resolve(persons, candidates)
	require.Equal(t, first, second)
}
