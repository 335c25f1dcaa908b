package match

import (
	"context"
	"fmt"

	"sttools/pkg/domain"
	"sttools/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// service is the concrete Matcher. It pulls the two record sets from its
// collaborators and runs the pure scoring and resolution steps over them.
// Beyond the two fetches it performs no I/O, so repeated runs against
// different inputs are independent.
type service struct {
	persons PersonSource
	users   UserSource
	cfg     Config
}

// New creates a Matcher reading persons and users from the given sources and
// scoring them with the provided configuration.
func New(persons PersonSource, users UserSource, cfg Config) Matcher {
	return &service{
		persons: persons,
		users:   users,
		cfg:     cfg,
	}
}

// fetch materializes both record sets. Each run is tagged with a fresh run ID
// for log correlation.
func (s *service) fetch(ctx context.Context) (context.Context, []domain.Person, []domain.User, error) {
	ctx = logger.WithFields(ctx, zap.String("run_id", uuid.NewString()))

	persons, err := s.persons.Persons(ctx)
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("could not load persons: %w", err)
	}
	users, err := s.users.Users(ctx)
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("could not fetch users: %w", err)
	}

	logger.Info(ctx, "matching records",
		zap.Int("persons", len(persons)),
		zap.Int("users", len(users)))

	return ctx, persons, users, nil
}

func (s *service) FindMatches(ctx context.Context) (Candidates, error) {
	ctx, persons, users, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	candidates := Match(persons, users, s.cfg)
	logger.Info(ctx, "candidate generation complete",
		zap.Int("persons_with_candidates", len(candidates)))

	return candidates, nil
}

func (s *service) FindBestMatches(ctx context.Context) (map[domain.PersonID]*domain.MatchResult, error) {
	ctx, persons, users, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	results := Resolve(persons, Match(persons, users, s.cfg))

	matched := 0
	for _, r := range results {
		if r != nil {
			matched++
		}
	}
	logger.Info(ctx, "resolution complete",
		zap.Int("matched", matched),
		zap.Int("unmatched", len(results)-matched))

	return results, nil
}
