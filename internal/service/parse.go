package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"coderev/internal/logger"
	"coderev/internal/model"
)

const fallbackConclusion = "The code review is complete based on the provided files."

type rawReview struct {
	Comments   json.RawMessage `json:"comments"`
	Rating     json.RawMessage `json:"rating"`
	Conclusion string          `json:"conclusion"`
}

// ParseReview turns the model's reply into structured review fields.
// Replies are expected to be the JSON object the prompt demands,
// possibly wrapped in a markdown code fence. Anything unparsable
// degrades to the raw text as a single comment rather than an error.
func ParseReview(reply string) ([]model.ReviewComment, string, string) {
	cleaned := stripFences(reply)

	var raw rawReview
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		logger.Warn("unstructured review reply, keeping raw text", "error", err)
		return []model.ReviewComment{{Comment: reply}}, "N/A", fallbackConclusion
	}

	comments := parseComments(raw.Comments)
	rating := parseRating(raw.Rating)
	conclusion := strings.TrimSpace(raw.Conclusion)
	if conclusion == "" {
		conclusion = fallbackConclusion
	}
	return comments, rating, conclusion
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func parseComments(raw json.RawMessage) []model.ReviewComment {
	if len(raw) == 0 {
		return nil
	}

	var structured []model.ReviewComment
	if err := json.Unmarshal(raw, &structured); err == nil {
		for i := range structured {
			structured[i].Comment = cleanText(structured[i].Comment)
		}
		return structured
	}

	// Some models reply with a single prose string instead of the
	// requested array.
	var text string
	if err := json.Unmarshal(raw, &text); err == nil && text != "" {
		return []model.ReviewComment{{Comment: cleanText(text)}}
	}
	return nil
}

func parseRating(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "N/A"
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("%g/10", n)
	}
	return "N/A"
}

// cleanText strips the markdown emphasis and double line breaks the
// models like to add.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\n\n", " ")
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}
