package model

import (
	"fmt"
	"strings"
)

// RepositoryIdentity identifies a repository on github: the pair (Owner, Name)
// determines the remote resource queried
type RepositoryIdentity struct {
	Owner string
	Name  string
}

// LanguageBreakdown maps a language name to the number of bytes github attributes to it
// iteration order is meaningless
type LanguageBreakdown map[string]int

// RepositoryLanguages is the payload returned by our API
type RepositoryLanguages struct {
	FullName   string            `json:"fullName"`
	Owner      string            `json:"owner"`
	Repository string            `json:"repository"`
	Languages  LanguageBreakdown `json:"languages"`
}

func NewRepositoryIdentity(owner, name string) RepositoryIdentity {
	return RepositoryIdentity{Owner: owner, Name: name}
}

// Validate checks both fields are set, it must pass before any request is sent
func (r RepositoryIdentity) Validate() error {
	if strings.TrimSpace(r.Owner) == "" {
		return fmt.Errorf("%w: owner is required", ErrInvalidRepository)
	}

	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRepository)
	}

	return nil
}

func (r RepositoryIdentity) FullName() string {
	return r.Owner + "/" + r.Name
}

func (r RepositoryIdentity) String() string {
	return r.FullName()
}

// NewRepositoryLanguages associates a breakdown with the repository it was fetched for
func NewRepositoryLanguages(r RepositoryIdentity, languages LanguageBreakdown) RepositoryLanguages {
	return RepositoryLanguages{
		FullName:   r.FullName(),
		Owner:      r.Owner,
		Repository: r.Name,
		Languages:  languages,
	}
}

// TotalBytes sums the byte count of every language
func (l LanguageBreakdown) TotalBytes() int {
	total := 0
	for _, size := range l {
		total += size
	}

	return total
}
