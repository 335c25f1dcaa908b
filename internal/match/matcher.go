package match

import (
	"sort"

	"sttools/internal/config"
	"sttools/pkg/domain"
)

// Default confidence constants and thresholds. Tier confidences are strictly
// ordered: exact email > exact phone > the fuzzy ceiling.
const (
	defaultEmailConfidence = 1.0
	defaultPhoneConfidence = 0.95
	defaultFuzzyFloor      = 0.3
	defaultFuzzyCeiling    = 0.8
	defaultMinNameOverlap  = 0.5
)

// Config carries the confidence constants and fuzzy-matching thresholds used
// by a match run. It is passed explicitly so the engine stays a pure function
// of its inputs; there is no package-level mutable state.
type Config struct {
	// EmailConfidence is assigned to exact normalized-email matches (tier 1).
	EmailConfidence float64
	// PhoneConfidence is assigned to exact normalized-phone matches (tier 2).
	PhoneConfidence float64
	// FuzzyFloor and FuzzyCeiling bound the confidence of name+zip fuzzy
	// matches (tier 3). The ceiling must stay below PhoneConfidence.
	FuzzyFloor   float64
	FuzzyCeiling float64
	// MinNameOverlap is the minimum token-set overlap ratio below which a
	// pair produces no fuzzy candidate at all.
	MinNameOverlap float64
}

// DefaultConfig returns the standard tier confidences and thresholds.
func DefaultConfig() Config {
	return Config{
		EmailConfidence: defaultEmailConfidence,
		PhoneConfidence: defaultPhoneConfidence,
		FuzzyFloor:      defaultFuzzyFloor,
		FuzzyCeiling:    defaultFuzzyCeiling,
		MinNameOverlap:  defaultMinNameOverlap,
	}
}

// NewConfig constructs a Config from the application configuration, keeping
// the default tier confidences and taking the fuzzy thresholds from cfg.
func NewConfig(cfg *config.Config) Config {
	c := DefaultConfig()
	if cfg.Matcher.MinNameOverlap > 0 {
		c.MinNameOverlap = cfg.Matcher.MinNameOverlap
	}
	if cfg.Matcher.FuzzyFloor > 0 {
		c.FuzzyFloor = cfg.Matcher.FuzzyFloor
	}
	if cfg.Matcher.FuzzyCeiling > 0 {
		c.FuzzyCeiling = cfg.Matcher.FuzzyCeiling
	}

	return c
}

// Candidates maps each person to its candidate matches in descending
// confidence order. Persons without any candidate are not present.
type Candidates map[domain.PersonID][]domain.CandidateMatch

// Match scores all candidate person/user pairs using tiered comparison
// strategies and returns, per person, the candidates in descending confidence
// order (ties keep user input order).
//
// Tiers, in decreasing reliability:
//  1. exact normalized email equality
//  2. exact normalized phone equality
//  3. fuzzy name similarity gated on equal zip codes
//
// A person resolved exactly by tier 1 skips the later tiers; a person
// resolved by tier 2 skips tier 3. Tiers 1 and 2 use index maps over the
// user set; only tier 3 compares pairwise over the remaining persons.
//
// Empty inputs yield an empty result, never an error.
func Match(persons []domain.Person, users []domain.User, cfg Config) Candidates {
	userIdents := make([]Identity, len(users))
	emailIdx := make(map[string][]int)
	phoneIdx := make(map[string][]int)
	for i, u := range users {
		id := NormalizeUser(u)
		userIdents[i] = id
		if id.Email != "" {
			emailIdx[id.Email] = append(emailIdx[id.Email], i)
		}
		if id.Phone != "" {
			phoneIdx[id.Phone] = append(phoneIdx[id.Phone], i)
		}
	}

	results := make(Candidates)
	for _, p := range persons {
		ident := NormalizePerson(p)

		// tier 1: exact email
		if ident.Email != "" {
			if idxs := emailIdx[ident.Email]; len(idxs) > 0 {
				results[p.ID] = exactCandidates(p.ID, users, idxs, cfg.EmailConfidence, domain.MatchFieldEmail)

				continue
			}
		}

		// tier 2: exact phone, only when email found nothing
		if ident.Phone != "" {
			if idxs := phoneIdx[ident.Phone]; len(idxs) > 0 {
				results[p.ID] = exactCandidates(p.ID, users, idxs, cfg.PhoneConfidence, domain.MatchFieldPhone)

				continue
			}
		}

		// tier 3: fuzzy name gated on equal zip
		if ident.Zip == "" || len(ident.NameTokens) == 0 {
			continue
		}
		var fuzzy []domain.CandidateMatch
		for i, uid := range userIdents {
			if uid.Zip == "" || uid.Zip != ident.Zip {
				continue
			}
			overlap := nameOverlap(ident.NameTokens, uid.NameTokens)
			if overlap < cfg.MinNameOverlap {
				continue
			}
			fuzzy = append(fuzzy, domain.CandidateMatch{
				PersonID:   p.ID,
				UserID:     users[i].ID,
				Confidence: cfg.fuzzyConfidence(overlap),
				MatchedOn:  []string{domain.MatchFieldName, domain.MatchFieldZip},
			})
		}
		if len(fuzzy) > 0 {
			sort.SliceStable(fuzzy, func(i, j int) bool {
				return fuzzy[i].Confidence > fuzzy[j].Confidence
			})
			results[p.ID] = fuzzy
		}
	}

	return results
}

// exactCandidates builds same-confidence candidates for the users at the
// given indices, preserving user input order.
func exactCandidates(
	personID domain.PersonID,
	users []domain.User,
	idxs []int,
	confidence float64,
	field string) []domain.CandidateMatch {
	out := make([]domain.CandidateMatch, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, domain.CandidateMatch{
			PersonID:   personID,
			UserID:     users[i].ID,
			Confidence: confidence,
			MatchedOn:  []string{field},
		})
	}

	return out
}

// fuzzyConfidence maps a token overlap ratio in [MinNameOverlap, 1] linearly
// onto [FuzzyFloor, FuzzyCeiling].
func (c Config) fuzzyConfidence(overlap float64) float64 {
	if c.MinNameOverlap >= 1 {
		// only perfect overlaps pass the gate
		return c.FuzzyCeiling
	}
	scale := (overlap - c.MinNameOverlap) / (1 - c.MinNameOverlap)

	return c.FuzzyFloor + scale*(c.FuzzyCeiling-c.FuzzyFloor)
}
