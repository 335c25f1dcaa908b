package match

import (
	"context"

	"sttools/pkg/domain"
)

// PersonSource supplies the materialized set of exported persons. The export
// reader satisfies this; implementations surface their own I/O failures
// before matching begins.
type PersonSource interface {
	Persons(ctx context.Context) ([]domain.Person, error)
}

// UserSource supplies the fully materialized set of live users. The API
// client adapter satisfies this and is responsible for exhausting pagination
// before handing the set over.
type UserSource interface {
	Users(ctx context.Context) ([]domain.User, error)
}

// Matcher runs the contact-matching pipeline: fetch both record sets, score
// candidate pairs, and optionally resolve them to a one-to-one mapping.
type Matcher interface {
	// FindMatches returns the full ranked candidate lists per person.
	FindMatches(ctx context.Context) (Candidates, error)
	// FindBestMatches resolves candidates to a one-to-one assignment. The
	// returned map has an entry for every exported person; nil means no
	// acceptable match was found.
	FindBestMatches(ctx context.Context) (map[domain.PersonID]*domain.MatchResult, error)
}
