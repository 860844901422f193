package controller

import (
	"net/http"

	"github.com/Scalingo/sclng-repo-languages/config"
	"github.com/Scalingo/sclng-repo-languages/model"
	"github.com/Scalingo/sclng-repo-languages/service"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIController interface {
	GetRepositoryLanguages(ctx *gin.Context)
	GetRepositoryMainLanguage(ctx *gin.Context)
	GetMainLanguageFromURL(ctx *gin.Context)
}

type apiController struct {
	githubService service.GithubService
	config        config.Config
}

func NewAPIController(config config.Config, service service.GithubService) APIController {
	return apiController{
		githubService: service,
		config:        config,
	}
}

// GetRepositoryLanguages handles GET /repos/:owner/:name/languages
func (s apiController) GetRepositoryLanguages(c *gin.Context) {
	var query model.LanguagesQuery
	if err := c.ShouldBindUri(&query); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	repo := query.ToRepositoryIdentity()

	// execute the request
	languages, err := s.githubService.FetchLanguages(c.Request.Context(), repo)
	if err != nil {
		respondFetchError(c, repo, err)
		return
	}

	c.JSON(http.StatusOK, model.NewRepositoryLanguages(repo, languages))
}

// GetRepositoryMainLanguage handles GET /repos/:owner/:name/languages/main?threshold=0.7
func (s apiController) GetRepositoryMainLanguage(c *gin.Context) {
	var uriQuery model.LanguagesQuery
	if err := c.ShouldBindUri(&uriQuery); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	var query model.MainLanguageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	s.fetchMainLanguage(c, uriQuery.ToRepositoryIdentity(), query.ThresholdOrDefault())
}

// GetMainLanguageFromURL handles GET /languages/main?url=https://github.com/owner/repo.git&threshold=0.7
func (s apiController) GetMainLanguageFromURL(c *gin.Context) {
	var query model.MainLanguageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	repo, err := model.ParseRepositoryURL(query.URL)
	if err != nil {
		respondInvalidRequest(c, err)
		return
	}

	s.fetchMainLanguage(c, repo, query.ThresholdOrDefault())
}

func (s apiController) fetchMainLanguage(c *gin.Context, repo model.RepositoryIdentity, threshold float64) {
	mainLanguage, err := s.githubService.FetchMainLanguage(c.Request.Context(), repo, threshold)
	if err != nil {
		respondFetchError(c, repo, err)
		return
	}

	c.JSON(http.StatusOK, mainLanguage)
}

func respondInvalidRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, model.APIError{
		Code:    "INVALID_REPOSITORY",
		Message: err.Error(),
	})
}

func respondFetchError(c *gin.Context, repo model.RepositoryIdentity, err error) {
	status, apiError := model.NewAPIError(err)

	log.WithError(err).WithFields(log.Fields{
		"owner":      repo.Owner,
		"repository": repo.Name,
		"code":       apiError.Code,
	}).Info("unable to fetch repository languages")

	c.JSON(status, apiError)
}
