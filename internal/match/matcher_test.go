package match_test

import (
	"testing"

	"sttools/internal/match"
	"sttools/pkg/domain"

	"github.com/stretchr/testify/require"
)

func person(id int64, mut func(*domain.Person)) domain.Person {
	p := domain.Person{ID: domain.PersonID(id), FirstName: "Jane", LastName: "Doe"}
	if mut != nil {
		mut(&p)
	}

	return p
}

func user(id int64, mut func(*domain.User)) domain.User {
	u := domain.User{ID: domain.UserID(id), FirstName: "Jane", LastName: "Doe"}
	if mut != nil {
		mut(&u)
	}

	return u
}

func TestMatchExactEmail(t *testing.T) {
	persons := []domain.Person{person(1, func(p *domain.Person) {
		p.Email = "A@Example.com"
	})}
	users := []domain.User{user(10, func(u *domain.User) {
		u.Email = "a@example.com"
	})}

	got := match.Match(persons, users, match.DefaultConfig())

	require.Len(t, got[1], 1)
	require.Equal(t, domain.UserID(10), got[1][0].UserID)
	require.Equal(t, 1.0, got[1][0].Confidence)
	require.Equal(t, []string{domain.MatchFieldEmail}, got[1][0].MatchedOn)
}

func TestMatchEmailShortCircuitsLaterTiers(t *testing.T) {
	// the person's email matches user 10 while its phone matches user 20;
	// only the email candidate must be produced
	persons := []domain.Person{person(1, func(p *domain.Person) {
		p.Email = "a@example.com"
		p.PhoneNumber = "4145551234"
	})}
	users := []domain.User{
		user(10, func(u *domain.User) { u.Email = "a@example.com" }),
		user(20, func(u *domain.User) { u.PhoneNumber = "4145551234" }),
	}

	got := match.Match(persons, users, match.DefaultConfig())

	require.Len(t, got[1], 1)
	require.Equal(t, domain.UserID(10), got[1][0].UserID)
	require.Equal(t, []string{domain.MatchFieldEmail}, got[1][0].MatchedOn)
}

func TestMatchExactPhone(t *testing.T) {
	persons := []domain.Person{person(1, func(p *domain.Person) {
		p.PhoneNumber = "+1 (414) 555-1234"
	})}
	users := []domain.User{user(10, func(u *domain.User) {
		u.PhoneNumber = "4145551234"
	})}

	got := match.Match(persons, users, match.DefaultConfig())

	require.Len(t, got[1], 1)
	require.Equal(t, 0.95, got[1][0].Confidence)
	require.Equal(t, []string{domain.MatchFieldPhone}, got[1][0].MatchedOn)
}

func TestMatchFuzzyNameAndZip(t *testing.T) {
	cfg := match.DefaultConfig()

	t.Run("full name overlap hits the ceiling", func(t *testing.T) {
		persons := []domain.Person{person(1, func(p *domain.Person) {
			p.PostalCode = "53202"
		})}
		users := []domain.User{user(10, func(u *domain.User) {
			u.Address = &domain.Address{ZipCode: "53202"}
		})}

		got := match.Match(persons, users, cfg)
		require.Len(t, got[1], 1)
		require.InDelta(t, cfg.FuzzyCeiling, got[1][0].Confidence, 1e-9)
		require.Equal(t, []string{domain.MatchFieldName, domain.MatchFieldZip}, got[1][0].MatchedOn)
	})

	t.Run("partial overlap scales between floor and ceiling", func(t *testing.T) {
		persons := []domain.Person{person(1, func(p *domain.Person) {
			p.FirstName = "Jane"
			p.LastName = "Doe"
			p.PostalCode = "53202"
		})}
		users := []domain.User{user(10, func(u *domain.User) {
			u.FirstName = "Jane"
			u.LastName = "Doe Jr"
			u.Address = &domain.Address{ZipCode: "53202"}
		})}

		got := match.Match(persons, users, cfg)
		require.Len(t, got[1], 1)
		// overlap 2/3: intersection {jane, doe}, union {jane, doe, jr}
		overlap := 2.0 / 3.0
		want := cfg.FuzzyFloor + (overlap-cfg.MinNameOverlap)/(1-cfg.MinNameOverlap)*(cfg.FuzzyCeiling-cfg.FuzzyFloor)
		require.InDelta(t, want, got[1][0].Confidence, 1e-9)
		require.Less(t, got[1][0].Confidence, cfg.PhoneConfidence)
	})

	t.Run("differing zip produces no candidate", func(t *testing.T) {
		persons := []domain.Person{person(1, func(p *domain.Person) {
			p.PostalCode = "53202"
		})}
		users := []domain.User{user(10, func(u *domain.User) {
			u.Address = &domain.Address{ZipCode: "60601"}
		})}

		got := match.Match(persons, users, cfg)
		require.Empty(t, got)
	})

	t.Run("overlap below the floor produces no candidate", func(t *testing.T) {
		persons := []domain.Person{person(1, func(p *domain.Person) {
			p.FirstName = "Alice"
			p.LastName = "Johnson"
			p.PostalCode = "53202"
		})}
		users := []domain.User{user(10, func(u *domain.User) {
			u.FirstName = "Bob"
			u.LastName = "Johnson"
			u.Address = &domain.Address{ZipCode: "53202"}
		})}

		// overlap 1/3 < 0.5
		got := match.Match(persons, users, cfg)
		require.Empty(t, got)
	})

	t.Run("multiple fuzzy candidates sorted by confidence", func(t *testing.T) {
		persons := []domain.Person{person(1, func(p *domain.Person) {
			p.PostalCode = "53202"
		})}
		users := []domain.User{
			user(10, func(u *domain.User) {
				u.LastName = "Doe Jr"
				u.Address = &domain.Address{ZipCode: "53202"}
			}),
			user(20, func(u *domain.User) {
				u.Address = &domain.Address{ZipCode: "53202"}
			}),
		}

		got := match.Match(persons, users, cfg)
		require.Len(t, got[1], 2)
		require.Equal(t, domain.UserID(20), got[1][0].UserID, "exact name user first")
		require.Greater(t, got[1][0].Confidence, got[1][1].Confidence)
	})
}

func TestMatchNameOnlyPersonNeverMatches(t *testing.T) {
	// no email, no phone, no zip: falls through every tier
	persons := []domain.Person{person(1, nil)}
	users := []domain.User{user(10, func(u *domain.User) {
		u.Email = "jane@example.com"
		u.PhoneNumber = "4145551234"
		u.Address = &domain.Address{ZipCode: "53202"}
	})}

	got := match.Match(persons, users, match.DefaultConfig())
	require.Empty(t, got)
}

func TestMatchEmptyInputs(t *testing.T) {
	cfg := match.DefaultConfig()
	require.Empty(t, match.Match(nil, nil, cfg))
	require.Empty(t, match.Match([]domain.Person{person(1, nil)}, nil, cfg))
	require.Empty(t, match.Match(nil, []domain.User{user(10, nil)}, cfg))
}

func TestMatchDeterministic(t *testing.T) {
	persons := []domain.Person{
		person(1, func(p *domain.Person) { p.Email = "a@example.com" }),
		person(2, func(p *domain.Person) { p.PostalCode = "53202" }),
		person(3, func(p *domain.Person) { p.PhoneNumber = "14145551234" }),
	}
	users := []domain.User{
		user(10, func(u *domain.User) { u.Email = "a@example.com" }),
		user(20, func(u *domain.User) { u.Address = &domain.Address{ZipCode: "53202"} }),
		user(30, func(u *domain.User) { u.PhoneNumber = "(414) 555-1234" }),
	}

	cfg := match.DefaultConfig()
	first := match.Match(persons, users, cfg)
	second := match.Match(persons, users, cfg)
	require.Equal(t, first, second)
}
