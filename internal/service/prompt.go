package service

import (
	"fmt"
	"strings"

	"coderev/internal/model"
)

// Total file content bytes included in a prompt before the remainder
// is omitted.
const maxPromptBytes = 200 * 1024

const reviewSystemPrompt = `You are a strict, expert code reviewer evaluating a coding submission from a %s-level developer.

%s

You MUST respond with ONLY a JSON object in this exact structure. No markdown, no explanation, no preamble:
{
  "comments": [{"file": "relative/file/path", "comment": "What is wrong or could be improved, and why"}],
  "rating": "<n>/10",
  "conclusion": "Overall assessment of the submission"
}

Rate against expectations for the stated level. Be concise and actionable; every comment should name a concrete improvement.`

var levelGuidance = map[model.CandidateLevel]string{
	model.LevelJunior: "Focus on fundamentals: correctness, naming, readability, basic language idioms and obvious bugs. Do not penalize missing architecture work.",
	model.LevelMiddle: "Focus on design: decomposition, error handling, test coverage, API clarity and appropriate use of the standard library and dependencies.",
	model.LevelSenior: "Focus on engineering judgment: architecture, failure modes, concurrency, performance tradeoffs, operability and maintainability over time.",
}

// ReviewSystemPrompt returns the system prompt calibrated to the
// candidate level.
func ReviewSystemPrompt(level model.CandidateLevel) string {
	return fmt.Sprintf(reviewSystemPrompt, level, levelGuidance[level])
}

// BuildReviewPrompt assembles the user prompt from the fetched files
// and the optional assignment description.
func BuildReviewPrompt(files []model.RepoFile, assignment string) string {
	var b strings.Builder

	b.WriteString("Review the following code submission.\n\n")
	if assignment != "" {
		fmt.Fprintf(&b, "Assignment:\n%s\n\n", assignment)
	}

	b.WriteString("--- BEGIN SOURCE FILES ---\n")
	included := 0
	omitted := 0
	for _, f := range files {
		if included+len(f.Content) > maxPromptBytes {
			omitted++
			continue
		}
		included += len(f.Content)
		fmt.Fprintf(&b, "File: %s\n%s\n\n", f.Path, f.Content)
	}
	if omitted > 0 {
		fmt.Fprintf(&b, "(%d additional files omitted for length)\n", omitted)
	}
	b.WriteString("--- END SOURCE FILES ---\n")

	return b.String()
}
