// ABOUTME: Research handler exposing multi-source search and question answering
// ABOUTME: Thin request/response wrappers around the research service, no business logic

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"taxresearch-api/core/domain"
	"taxresearch-api/core/research"
)

// ResearchHandler handles research endpoints.
type ResearchHandler struct {
	service *research.Service
}

// NewResearchHandler creates a research handler.
func NewResearchHandler(service *research.Service) *ResearchHandler {
	return &ResearchHandler{service: service}
}

// RegisterRoutes registers research routes.
func (h *ResearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Multi-source research search",
		Description: "Queries all configured tax and finance sources, ranks and deduplicates the results",
		Tags:        []string{"Research"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "answerQuestion",
		Method:      http.MethodPost,
		Path:        "/answer",
		Summary:     "Answer a tax question",
		Description: "Researches the question across all sources and synthesizes a short attributed answer",
		Tags:        []string{"Research"},
	}, h.AnswerQuestion)
}

// SearchInput defines the query parameters for the search endpoint.
type SearchInput struct {
	Query          string `query:"q" required:"true" doc:"Search query"`
	NumResults     int    `query:"num_results" default:"10" minimum:"1" maximum:"50" doc:"Maximum number of results"`
	UseCache       bool   `query:"use_cache" default:"true" doc:"Serve from cache when a live entry exists"`
	IncludeContent bool   `query:"include_content" default:"false" doc:"Fetch full text for the top results (slower)"`
}

// SearchOutput wraps the aggregated response.
type SearchOutput struct {
	Body domain.AggregatedResponse
}

// Search handles GET /search.
func (h *ResearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	response, err := h.service.Search(ctx, input.Query, research.SearchOptions{
		NumResults:     input.NumResults,
		UseCache:       input.UseCache,
		IncludeContent: input.IncludeContent,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: *response}, nil
}

// AnswerInput defines the request body for the answer endpoint.
type AnswerInput struct {
	Body struct {
		Question string                 `json:"question" required:"true" doc:"The tax question to answer"`
		Context  map[string]interface{} `json:"context,omitempty" doc:"Optional situational context (legal form, revenue, ...)"`
	}
}

// AnswerOutput wraps the synthesized answer.
type AnswerOutput struct {
	Body domain.Answer
}

// AnswerQuestion handles POST /answer.
func (h *ResearchHandler) AnswerQuestion(ctx context.Context, input *AnswerInput) (*AnswerOutput, error) {
	result, err := h.service.AnswerQuestion(ctx, input.Body.Question, input.Body.Context)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &AnswerOutput{Body: *result}, nil
}
