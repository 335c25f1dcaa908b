package match

import (
	"regexp"
	"strings"

	"sttools/pkg/domain"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`\D+`)
)

const (
	// localPhoneLength is the digit count of a domestic (US) phone number.
	localPhoneLength = 10
	// countryCodePrefix is the leading digit of an 11-digit number that
	// carries the domestic country code.
	countryCodePrefix = "1"
	// zipLength is the standard short US postal code length. Extended
	// ZIP+4 values are truncated to this length.
	zipLength = 5
)

// Identity holds the canonical comparison fields derived from a Person or
// User record. It is purely derived state: recomputed from the source record
// and never stored. An empty field means "absent" and is excluded from every
// matching tier.
type Identity struct {
	// Email is the lowercased, trimmed email address.
	Email string
	// Phone is the 10-digit local phone number.
	Phone string
	// NameTokens is the deduplicated set of lowercase name tokens.
	NameTokens []string
	// Zip is the postal code truncated to the standard short length.
	Zip string
}

// NormalizeEmail returns the canonical form of an email address: trimmed and
// lowercased. Empty input yields the empty string (absent).
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone returns the canonical 10-digit local form of a phone number.
//
// The normalization rules are intentionally strict to keep phone comparison
// exact:
//   - Strip every non-digit character
//   - An 11-digit number starting with the domestic country code drops the
//     leading digit (e.g. 14145551234 -> 4145551234)
//   - Any other length than 10 yields the empty string (absent)
//
// Malformed input never produces an error; it degrades to absent so the
// record as a whole still participates in the remaining tiers.
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) == localPhoneLength+1 && strings.HasPrefix(digits, countryCodePrefix) {
		digits = digits[1:]
	}
	if len(digits) != localPhoneLength {
		return ""
	}

	return digits
}

// NormalizeName returns the deduplicated token set of a name: lowercased,
// trimmed, with internal whitespace collapsed. An all-blank name yields nil
// (absent).
func NormalizeName(first, last string) []string {
	full := strings.TrimSpace(first + " " + last)
	full = strings.ToLower(whitespaceRegex.ReplaceAllString(full, " "))
	if full == "" {
		return nil
	}

	seen := make(map[string]bool)
	var tokens []string
	for _, tok := range strings.Split(full, " ") {
		if !seen[tok] {
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// NormalizeZip returns the canonical short form of a postal code: trimmed
// and truncated to the standard length (handles ZIP+4 extended formats).
// Empty input yields the empty string (absent).
func NormalizeZip(zip string) string {
	zip = strings.TrimSpace(zip)
	if len(zip) > zipLength {
		zip = zip[:zipLength]
	}

	return zip
}

// NormalizePerson derives the canonical identity of an exported person.
func NormalizePerson(p domain.Person) Identity {
	return Identity{
		Email:      NormalizeEmail(p.Email),
		Phone:      NormalizePhone(p.PhoneNumber),
		NameTokens: NormalizeName(p.FirstName, p.LastName),
		Zip:        NormalizeZip(p.PostalCode),
	}
}

// NormalizeUser derives the canonical identity of a live user record.
func NormalizeUser(u domain.User) Identity {
	var zip string
	if u.Address != nil {
		zip = u.Address.ZipCode
	}

	return Identity{
		Email:      NormalizeEmail(u.Email),
		Phone:      NormalizePhone(u.PhoneNumber),
		NameTokens: NormalizeName(u.FirstName, u.LastName),
		Zip:        NormalizeZip(zip),
	}
}

// nameOverlap computes the token-set overlap ratio (intersection over union)
// of two token sets. Either set being empty yields 0.
func nameOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	inA := make(map[string]bool, len(a))
	for _, tok := range a {
		inA[tok] = true
	}

	intersection := 0
	for _, tok := range b {
		if inA[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection

	return float64(intersection) / float64(union)
}
