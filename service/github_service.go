package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Scalingo/sclng-repo-languages/config"
	"github.com/Scalingo/sclng-repo-languages/logger"
	"github.com/Scalingo/sclng-repo-languages/model"
	"github.com/google/go-github/v66/github"
	log "github.com/sirupsen/logrus"
)

// AcceptHeader is the media type sent with every languages request
const AcceptHeader = "application/vnd.github.v3+json"

type GithubService interface {
	FetchLanguages(ctx context.Context, repo model.RepositoryIdentity) (model.LanguageBreakdown, error)
	FetchMainLanguage(ctx context.Context, repo model.RepositoryIdentity, threshold float64) (model.MainLanguage, error)

	HandleRequestErrors(repo model.RepositoryIdentity, resp *github.Response, err error) error
}

type githubService struct {
	githubClient *github.Client
	config       config.Config
}

// the github client is injected so tests can plug a mocked http client
// requests are anonymous: ListLanguages allows 60 calls per hour for non-authenticated clients
func NewGithubService(config config.Config, githubClient *github.Client) GithubService {
	return githubService{
		githubClient: githubClient,
		config:       config,
	}
}

// FetchLanguages sends a single GET /repos/{owner}/{name}/languages and returns the language breakdown
// nothing is retried nor cached, each call is one round trip
func (s githubService) FetchLanguages(ctx context.Context, repo model.RepositoryIdentity) (model.LanguageBreakdown, error) {
	if err := repo.Validate(); err != nil {
		return nil, err
	}

	if timeout := s.config.Github.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.ForRepository(repo).Debug("fetch languages for repository")

	req, err := s.githubClient.NewRequest(http.MethodGet, LanguagesPath(repo), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build languages request for %s: %w", repo, err)
	}

	req.Header.Set("Accept", AcceptHeader)

	// the body is buffered and decoded as a whole: trailing data after the object is rejected
	var body bytes.Buffer
	resp, err := s.githubClient.Do(ctx, req, &body)

	if err := s.HandleRequestErrors(repo, resp, err); err != nil {
		return nil, err
	}

	var languages model.LanguageBreakdown
	if err := json.Unmarshal(body.Bytes(), &languages); err != nil {
		logger.ForRepository(repo).WithError(err).Debug("unable to decode languages response")
		return nil, &model.ParseError{Err: err}
	}

	if err := validateBreakdown(languages); err != nil {
		logger.ForRepository(repo).WithError(err).Debug("github returned an invalid languages payload")
		return nil, &model.ParseError{Err: err}
	}

	logger.ForRepository(repo).WithField("numberOfLanguages", len(languages)).Debug("languages fetched for repository")

	return languages, nil
}

// FetchMainLanguage fetches the breakdown and keeps the language owning more than threshold of the bytes
// a repository without such a language is not an error: Language stays nil
func (s githubService) FetchMainLanguage(ctx context.Context, repo model.RepositoryIdentity, threshold float64) (model.MainLanguage, error) {
	languages, err := s.FetchLanguages(ctx, repo)
	if err != nil {
		return model.MainLanguage{}, err
	}

	mainLanguage := model.NewMainLanguage(repo, languages, threshold)

	logger.ForRepository(repo).WithFields(log.Fields{
		"threshold": threshold,
		"found":     mainLanguage.Language != nil,
	}).Debug("main language computed for repository")

	return mainLanguage, nil
}

// LanguagesPath builds the path relative to the github api base url
// owner and name are escaped as single path segments
func LanguagesPath(repo model.RepositoryIdentity) string {
	return fmt.Sprintf("repos/%s/%s/languages", url.PathEscape(repo.Owner), url.PathEscape(repo.Name))
}

// HandleRequestErrors sorts the outcome of the request in the three failure kinds
// no response means a transport error, a status other than 200 an api failure (body discarded)
// and an error on a 200 response a body that could not be decoded
func (s githubService) HandleRequestErrors(repo model.RepositoryIdentity, resp *github.Response, err error) error {
	if resp == nil || resp.Response == nil {
		if err == nil {
			return nil
		}

		logger.ForRepository(repo).WithError(err).Debug("no response received from github")
		return &model.TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		logger.ForRepository(repo).WithField("statusCode", resp.StatusCode).Debug("github responded with a failure status")

		if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
			logger.ForRepository(repo).WithField("statusCode", resp.StatusCode).Warning("the Github rate limit has been reached. wait until the limit reset")
		}

		return &model.APIFailure{StatusCode: resp.StatusCode}
	}

	if err != nil {
		logger.ForRepository(repo).WithError(err).Debug("unable to decode languages response")
		return &model.ParseError{Err: err}
	}

	return nil
}

func validateBreakdown(languages model.LanguageBreakdown) error {
	if languages == nil {
		return errors.New("empty languages document")
	}

	for language, size := range languages {
		if language == "" {
			return errors.New("empty language name")
		}

		if size < 0 {
			return fmt.Errorf("negative byte count %d for language %s", size, language)
		}
	}

	return nil
}
