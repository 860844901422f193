package model

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultPopularityThreshold is the share of bytes a language must exceed to be the main language
const DefaultPopularityThreshold = 0.7

// MainLanguage is the payload returned by the main language route
// Language is nil when no language exceeds the threshold
type MainLanguage struct {
	FullName   string  `json:"fullName"`
	Owner      string  `json:"owner"`
	Repository string  `json:"repository"`
	Threshold  float64 `json:"threshold"`
	Language   *string `json:"language"`
}

func NewMainLanguage(r RepositoryIdentity, languages LanguageBreakdown, threshold float64) MainLanguage {
	mainLanguage := MainLanguage{
		FullName:   r.FullName(),
		Owner:      r.Owner,
		Repository: r.Name,
		Threshold:  threshold,
	}

	if language, found := languages.MostPopularLanguage(threshold); found {
		mainLanguage.Language = &language
	}

	return mainLanguage
}

// MostPopularLanguage returns the biggest language whose share of the total bytes is strictly above threshold
// an empty breakdown (or one with zero bytes) has no main language
func (l LanguageBreakdown) MostPopularLanguage(threshold float64) (string, bool) {
	total := l.TotalBytes()
	if total == 0 {
		return "", false
	}

	bestLanguage := ""
	bestSize := -1

	for language, size := range l {
		if float64(size)/float64(total) <= threshold {
			continue
		}

		// ties are broken by name so the result does not depend on map order
		if size > bestSize || (size == bestSize && language < bestLanguage) {
			bestLanguage = language
			bestSize = size
		}
	}

	return bestLanguage, bestSize >= 0
}

// ParseRepositoryURL extracts owner and name from a project url such as https://github.com/owner/repo.git
// the first two path segments are used, a trailing .git is removed from the name
func ParseRepositoryURL(rawURL string) (RepositoryIdentity, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return RepositoryIdentity{}, fmt.Errorf("%w: %s", ErrInvalidRepository, err.Error())
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 {
		return RepositoryIdentity{}, fmt.Errorf("%w: url %q must contain an owner and a repository", ErrInvalidRepository, rawURL)
	}

	repo := NewRepositoryIdentity(segments[0], strings.TrimSuffix(segments[1], ".git"))
	if err := repo.Validate(); err != nil {
		return RepositoryIdentity{}, err
	}

	return repo, nil
}
