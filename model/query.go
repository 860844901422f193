package model

// LanguagesQuery is bound from the route /repos/:owner/:name/languages
type LanguagesQuery struct {
	Owner string `uri:"owner" binding:"required"`
	Name  string `uri:"name" binding:"required"`
}

func (params LanguagesQuery) ToRepositoryIdentity() RepositoryIdentity {
	return NewRepositoryIdentity(params.Owner, params.Name)
}

// MainLanguageQuery holds the query string of the main language routes
// URL is only read by /languages/main, the repository routes take owner and name from the path
type MainLanguageQuery struct {
	URL       string   `form:"url"`
	Threshold *float64 `form:"threshold" binding:"omitempty,gte=0,lt=1"`
}

// ThresholdOrDefault returns the requested threshold or DefaultPopularityThreshold
func (params MainLanguageQuery) ThresholdOrDefault() float64 {
	if params.Threshold == nil {
		return DefaultPopularityThreshold
	}

	return *params.Threshold
}
