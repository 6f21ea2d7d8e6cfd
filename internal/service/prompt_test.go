package service_test

import (
	"strings"
	"testing"

	"coderev/internal/model"
	"coderev/internal/service"

	"github.com/stretchr/testify/require"
)

func TestReviewSystemPrompt_CalibratedPerLevel(t *testing.T) {
	junior := service.ReviewSystemPrompt(model.LevelJunior)
	require.Contains(t, junior, "Junior-level developer")
	require.Contains(t, junior, "fundamentals")

	senior := service.ReviewSystemPrompt(model.LevelSenior)
	require.Contains(t, senior, "Senior-level developer")
	require.Contains(t, senior, "architecture")

	require.NotEqual(t, junior, senior)
	// Both demand the same reply schema.
	require.Contains(t, junior, `"rating"`)
	require.Contains(t, senior, `"rating"`)
}

func TestBuildReviewPrompt(t *testing.T) {
	files := []model.RepoFile{
		{Path: "main.go", Content: "package main"},
		{Path: "README.md", Content: "# readme"},
	}

	prompt := service.BuildReviewPrompt(files, "Build a CLI tool.")
	require.Contains(t, prompt, "Assignment:\nBuild a CLI tool.")
	require.Contains(t, prompt, "File: main.go\npackage main")
	require.Contains(t, prompt, "File: README.md")
	// File order preserved.
	require.Less(t, strings.Index(prompt, "main.go"), strings.Index(prompt, "README.md"))
}

func TestBuildReviewPrompt_NoAssignment(t *testing.T) {
	prompt := service.BuildReviewPrompt([]model.RepoFile{{Path: "a.go", Content: "x"}}, "")
	require.NotContains(t, prompt, "Assignment:")
}

func TestBuildReviewPrompt_OmitsOverflowFiles(t *testing.T) {
	big := strings.Repeat("x", 150*1024)
	files := []model.RepoFile{
		{Path: "first.go", Content: big},
		{Path: "second.go", Content: big},
		{Path: "small.go", Content: "tiny"},
	}

	prompt := service.BuildReviewPrompt(files, "")
	require.Contains(t, prompt, "File: first.go")
	require.NotContains(t, prompt, "File: second.go")
	// Small file still fits after the oversized one was skipped.
	require.Contains(t, prompt, "File: small.go")
	require.Contains(t, prompt, "1 additional files omitted")
}
