package screening

import (
	"testing"

	"ats-backend/models"

	"github.com/stretchr/testify/require"
)

func TestParseAIResponse(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		result, err := ParseAIResponse("```json\n{\"score\": 78.456, \"rationale\": [\"Go\", \"SQL\"], \"red_flags\": \"job hopping\", \"recommend\": \"shortlisted\"}\n```")
		require.Nil(t, err)
		require.Equal(t, 78.46, result.Score)
		require.Equal(t, []string{"Go", "SQL"}, result.Rationale)
		require.Equal(t, []string{"job hopping"}, result.RedFlags)
		require.Equal(t, models.RecommendShortlisted, result.Recommend)
	})
	t.Run("reasoning prefix is dropped", func(t *testing.T) {
		result, err := ParseAIResponse("<think>hmm</think>{\"score\": \"55\"}")
		require.Nil(t, err)
		require.Equal(t, 55.0, result.Score)
		require.Equal(t, []string{}, result.Rationale)
		require.Equal(t, []string{}, result.RedFlags)
		require.Equal(t, models.RecommendNeedsInterview, result.Recommend)
	})
	t.Run("unknown recommendation", func(t *testing.T) {
		result, err := ParseAIResponse(`{"score": 10, "recommend": "HIRE"}`)
		require.Nil(t, err)
		require.Equal(t, models.RecommendNeedsInterview, result.Recommend)
	})
	t.Run("missing score is zero", func(t *testing.T) {
		result, err := ParseAIResponse(`{"rationale": 5}`)
		require.Nil(t, err)
		require.Equal(t, 0.0, result.Score)
		require.Equal(t, []string{"5"}, result.Rationale)
	})
	t.Run("non numeric score", func(t *testing.T) {
		_, err := ParseAIResponse(`{"score": "high"}`)
		require.NotNil(t, err)
		_, err = ParseAIResponse(`{"score": null}`)
		require.NotNil(t, err)
	})
	t.Run("model error", func(t *testing.T) {
		_, err := ParseAIResponse(`{"error": "quota exceeded"}`)
		require.EqualError(t, err, "quota exceeded")
	})
	t.Run("not json", func(t *testing.T) {
		_, err := ParseAIResponse("I think the candidate is fine")
		require.EqualError(t, err, "AI returned non-JSON output")
	})
}
