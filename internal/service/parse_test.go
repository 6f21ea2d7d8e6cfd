package service_test

import (
	"testing"

	"coderev/internal/service"

	"github.com/stretchr/testify/require"
)

func TestParseReview_StructuredReply(t *testing.T) {
	reply := `{
		"comments": [
			{"file": "main.go", "comment": "Unchecked error from **os.Open**"},
			{"file": "util.go", "comment": "Function too long"}
		],
		"rating": "7/10",
		"conclusion": "Solid submission with minor issues."
	}`

	comments, rating, conclusion := service.ParseReview(reply)
	require.Len(t, comments, 2)
	require.Equal(t, "main.go", comments[0].File)
	require.Equal(t, "Unchecked error from os.Open", comments[0].Comment)
	require.Equal(t, "7/10", rating)
	require.Equal(t, "Solid submission with minor issues.", conclusion)
}

func TestParseReview_FencedReply(t *testing.T) {
	reply := "```json\n{\"comments\": [{\"file\": \"a.go\", \"comment\": \"ok\"}], \"rating\": \"9/10\", \"conclusion\": \"Good.\"}\n```"

	comments, rating, conclusion := service.ParseReview(reply)
	require.Len(t, comments, 1)
	require.Equal(t, "9/10", rating)
	require.Equal(t, "Good.", conclusion)
}

func TestParseReview_StringComments(t *testing.T) {
	reply := `{"comments": "No major issues found.", "rating": "8/10", "conclusion": "Fine."}`

	comments, rating, _ := service.ParseReview(reply)
	require.Len(t, comments, 1)
	require.Empty(t, comments[0].File)
	require.Equal(t, "No major issues found.", comments[0].Comment)
	require.Equal(t, "8/10", rating)
}

func TestParseReview_NumericRating(t *testing.T) {
	reply := `{"comments": [], "rating": 6, "conclusion": "Average."}`

	_, rating, _ := service.ParseReview(reply)
	require.Equal(t, "6/10", rating)
}

func TestParseReview_UnparsableFallsBackToRawText(t *testing.T) {
	reply := "The code looks fine overall, nothing structured here."

	comments, rating, conclusion := service.ParseReview(reply)
	require.Len(t, comments, 1)
	require.Equal(t, reply, comments[0].Comment)
	require.Equal(t, "N/A", rating)
	require.Equal(t, "The code review is complete based on the provided files.", conclusion)
}

func TestParseReview_MissingFields(t *testing.T) {
	comments, rating, conclusion := service.ParseReview(`{}`)
	require.Empty(t, comments)
	require.Equal(t, "N/A", rating)
	require.NotEmpty(t, conclusion)
}
