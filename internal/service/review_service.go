package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coderev/internal/cache"
	"coderev/internal/github"
	"coderev/internal/logger"
	"coderev/internal/model"
	"coderev/internal/service/ai"
	"coderev/pkg/snowflake"
)

// DefaultRef is reviewed when the request names no branch.
const DefaultRef = "HEAD"

// ReviewInput identifies a submission to review.
type ReviewInput struct {
	Owner      string
	Repo       string
	Branch     string
	Level      model.CandidateLevel
	Assignment string
}

// GitHubClient fetches repository contents. Defined here so the
// service can be tested against a mock.
type GitHubClient interface {
	FetchRepoFiles(ctx context.Context, owner, repo, ref string) ([]model.RepoFile, error)
}

// ReviewService orchestrates a review: fetch, prompt, analyze, parse.
type ReviewService interface {
	Review(ctx context.Context, in ReviewInput) (model.Review, error)
}

type reviewService struct {
	github   GitHubClient
	cache    *cache.RepoCache
	provider ai.Provider
	pacer    *ai.RateLimiter
}

func NewReviewService(gh GitHubClient, repoCache *cache.RepoCache, provider ai.Provider, pacer *ai.RateLimiter) ReviewService {
	return &reviewService{
		github:   gh,
		cache:    repoCache,
		provider: provider,
		pacer:    pacer,
	}
}

func (s *reviewService) Review(ctx context.Context, in ReviewInput) (model.Review, error) {
	owner := strings.TrimSpace(in.Owner)
	repo := strings.TrimSpace(in.Repo)
	if owner == "" || repo == "" || !in.Level.Valid() {
		return model.Review{}, ErrInvalid
	}
	ref := strings.TrimSpace(in.Branch)
	if ref == "" {
		ref = DefaultRef
	}

	files, err := s.repoFiles(ctx, owner, repo, ref)
	if err != nil {
		return model.Review{}, err
	}
	if len(files) == 0 {
		return model.Review{}, fmt.Errorf("%w: no reviewable files in %s/%s@%s", ErrFetchFailed, owner, repo, ref)
	}

	prompt := BuildReviewPrompt(files, in.Assignment)
	system := ReviewSystemPrompt(in.Level)

	if err := s.pacer.Wait(ctx); err != nil {
		return model.Review{}, fmt.Errorf("%w: %v", ErrAnalyzeFailed, err)
	}

	start := time.Now()
	reply, err := s.provider.Complete(ctx, system, prompt)
	if err != nil {
		logger.Error("inference call failed", "provider", s.provider.Name(), "error", err)
		return model.Review{}, fmt.Errorf("%w: %v", ErrAnalyzeFailed, err)
	}
	if strings.TrimSpace(reply) == "" {
		return model.Review{}, fmt.Errorf("%w: empty reply from %s", ErrAnalyzeFailed, s.provider.Name())
	}
	logger.Info("analysis complete",
		"repo", owner+"/"+repo,
		"level", in.Level,
		"files", len(files),
		"duration", time.Since(start))

	comments, rating, conclusion := ParseReview(reply)

	found := make([]string, len(files))
	for i, f := range files {
		found[i] = f.Path
	}

	return model.Review{
		ID:         snowflake.NextID(),
		FilesFound: found,
		Comments:   comments,
		Rating:     rating,
		Conclusion: conclusion,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (s *reviewService) repoFiles(ctx context.Context, owner, repo, ref string) ([]model.RepoFile, error) {
	key := cache.Key(owner, repo, ref)
	if files, ok := s.cache.Get(ctx, key); ok {
		return files, nil
	}

	files, err := s.github.FetchRepoFiles(ctx, owner, repo, ref)
	if err != nil {
		if errors.Is(err, github.ErrRepoNotFound) {
			return nil, ErrNotFound
		}
		logger.Error("repository fetch failed", "repo", owner+"/"+repo, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	s.cache.Set(ctx, key, files)
	return files, nil
}
