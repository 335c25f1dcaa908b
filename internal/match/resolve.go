package match

import (
	"sort"

	"sttools/pkg/domain"
)

// Resolve turns per-person candidate lists into a one-to-one assignment.
// The returned map has an entry for every input person; nil means no user
// could be assigned. Absence is an expected result, not an error.
//
// Assignment is greedy and global: persons are processed in descending order
// of their best candidate's confidence (ties broken by input order), and each
// takes its highest-confidence candidate whose user is still unclaimed,
// skipping claimed users. A user is claimed by at most one person. The greedy
// pass never revisits an earlier assignment, so a later person can lose its
// only option to an earlier, lower-confidence claim. That trade of global
// optimality for determinism and simplicity is an accepted limitation.
//
// Resolve is sequential by contract: candidate generation must be complete
// before it runs.
func Resolve(persons []domain.Person, candidates Candidates) map[domain.PersonID]*domain.MatchResult {
	results := make(map[domain.PersonID]*domain.MatchResult, len(persons))
	for _, p := range persons {
		results[p.ID] = nil
	}

	// persons with candidates, ordered by best confidence descending; the
	// stable sort keeps input order for equal confidences
	var order []domain.PersonID
	for _, p := range persons {
		if len(candidates[p.ID]) > 0 {
			order = append(order, p.ID)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return candidates[order[i]][0].Confidence > candidates[order[j]][0].Confidence
	})

	claimed := make(map[domain.UserID]bool)
	for _, pid := range order {
		for _, cand := range candidates[pid] {
			if claimed[cand.UserID] {
				continue
			}
			claimed[cand.UserID] = true
			results[pid] = &domain.MatchResult{
				UserID:     cand.UserID,
				Confidence: cand.Confidence,
				MatchedOn:  cand.MatchedOn,
			}

			break
		}
	}

	return results
}
