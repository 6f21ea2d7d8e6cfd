package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"coderev/internal/logger"
	"coderev/internal/model"
	"coderev/internal/ratelimit"
	"coderev/internal/service"
)

// ReviewHandler exposes the review orchestration over HTTP. The rate
// limiter is consulted after validation and before any collaborator
// call; rejected requests never reach GitHub or the AI provider.
type ReviewHandler struct {
	service service.ReviewService
	limiter *ratelimit.Limiter
	timeout time.Duration
	now     func() time.Time
}

func NewReviewHandler(svc service.ReviewService, limiter *ratelimit.Limiter, timeout time.Duration) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		limiter: limiter,
		timeout: timeout,
		now:     time.Now,
	}
}

func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/review", h.Review)
}

type reviewRequest struct {
	RepoOwner             string `json:"repoOwner"`
	RepoName              string `json:"repoName"`
	Branch                string `json:"branch"`
	CandidateLevel        string `json:"candidateLevel"`
	AssignmentDescription string `json:"assignmentDescription"`
}

type reviewResponse struct {
	ID         int64                 `json:"id"`
	FilesFound []string              `json:"filesFound"`
	Comments   []model.ReviewComment `json:"comments"`
	Rating     string                `json:"rating"`
	Conclusion string                `json:"conclusion"`
	CreatedAt  string                `json:"createdAt"`
}

// Review godoc
// @Summary Review a code submission
// @Description Fetches a GitHub repository and produces an AI review calibrated to the candidate level.
// @Accept json
// @Produce json
// @Param request body reviewRequest true "review request"
// @Success 200 {object} reviewResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /review [post]
func (h *ReviewHandler) Review(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}

	owner := strings.TrimSpace(req.RepoOwner)
	name := strings.TrimSpace(req.RepoName)
	level := model.CandidateLevel(strings.TrimSpace(req.CandidateLevel))
	if owner == "" || name == "" || !level.Valid() {
		return writeError(c, http.StatusBadRequest, "invalid request")
	}

	identity := clientIdentity(c)
	if !h.limiter.Allow(identity, h.now()) {
		logger.Info("request rejected by rate limiter", "identity", identity)
		return writeError(c, http.StatusTooManyRequests, "rate limit exceeded")
	}

	ctx := c.Request().Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	review, err := h.service.Review(ctx, service.ReviewInput{
		Owner:      owner,
		Repo:       name,
		Branch:     req.Branch,
		Level:      level,
		Assignment: req.AssignmentDescription,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toReviewResponse(review))
}

// clientIdentity derives the quota key for a request: the API key
// header when present, the source address otherwise.
func clientIdentity(c echo.Context) string {
	if key := strings.TrimSpace(c.Request().Header.Get("X-API-Key")); key != "" {
		return key
	}
	return c.RealIP()
}

func toReviewResponse(review model.Review) reviewResponse {
	comments := review.Comments
	if comments == nil {
		comments = []model.ReviewComment{}
	}
	return reviewResponse{
		ID:         review.ID,
		FilesFound: review.FilesFound,
		Comments:   comments,
		Rating:     review.Rating,
		Conclusion: review.Conclusion,
		CreatedAt:  review.CreatedAt.UTC().Format(time.RFC3339),
	}
}
