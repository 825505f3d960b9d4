package rule

import (
	"errors"
	"fmt"
	"strings"
)

// Kind enumerates the scholarships in the catalog, in catalog order.
type Kind uint8

const (
	AcademicExcellence Kind = iota
	CommunityLeader
	FinancialNeed

	kindCount
)

var ErrUnknownKind = errors.New("unknown scholarship")

var kindNames = [kindCount]string{
	AcademicExcellence: "Academic Excellence",
	CommunityLeader:    "Community Leader",
	FinancialNeed:      "Financial Need",
}

// AllKinds returns every [Kind] in catalog order.
func AllKinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}

	return out
}

// String returns the display name.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", k)
	}

	return kindNames[k]
}

// Slug returns the kebab-case identifier, e.g. "community-leader".
func (k Kind) Slug() string {
	return strings.ReplaceAll(strings.ToLower(k.String()), " ", "-")
}

// ParseKind accepts a slug or a display name, ignoring case and surrounding
// whitespace.
func ParseKind(s string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, k := range AllKinds() {
		if needle == k.Slug() || needle == strings.ToLower(k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Slugs returns the slugs of every [Kind], for flag completion and help.
func Slugs() []string {
	out := make([]string, 0, kindCount)
	for _, k := range AllKinds() {
		out = append(out, k.Slug())
	}

	return out
}
