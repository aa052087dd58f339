package screening

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"ats-backend/models"
	screeningapimodels "ats-backend/models/api/screening"

	"github.com/pkg/errors"
)

// ParseAIResponse decodes the model answer and normalises it into a Result.
func ParseAIResponse(response string) (result screeningapimodels.Result, err error) {
	answer := extractAnswer(response)
	answer = replaceAnswerFormatTag(answer)

	raw := map[string]interface{}{}
	if err = json.Unmarshal([]byte(strings.TrimSpace(answer)), &raw); err != nil {
		return result, errors.New("AI returned non-JSON output")
	}
	return Normalize(raw)
}

func Normalize(raw map[string]interface{}) (result screeningapimodels.Result, err error) {
	if msg, ok := raw["error"]; ok && msg != nil && msg != "" && msg != false {
		return result, errors.Errorf("%v", msg)
	}
	scoreValue, ok := raw["score"]
	if !ok {
		scoreValue = float64(0)
	}
	score, err := toScore(scoreValue)
	if err != nil {
		return result, err
	}
	result.Score = score
	result.Rationale = toStringList(raw["rationale"])
	result.RedFlags = toStringList(raw["red_flags"])
	result.Recommend = toRecommendation(raw["recommend"])
	return result, nil
}

func toScore(value interface{}) (float64, error) {
	var score float64
	switch v := value.(type) {
	case float64:
		score = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.New("AI response missing numeric score")
		}
		score = parsed
	case bool:
		if v {
			score = 1
		}
	default:
		return 0, errors.New("AI response missing numeric score")
	}
	return math.Round(score*100) / 100, nil
}

func toStringList(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				list = append(list, s)
				continue
			}
			list = append(list, fmt.Sprint(item))
		}
		return list
	}
	return []string{fmt.Sprint(value)}
}

func toRecommendation(value interface{}) models.Recommendation {
	s, _ := value.(string)
	recommend := models.Recommendation(strings.ToUpper(strings.TrimSpace(s)))
	switch recommend {
	case models.RecommendShortlisted, models.RecommendRejected, models.RecommendNeedsInterview:
		return recommend
	}
	return models.RecommendNeedsInterview
}

func extractAnswer(response string) string {
	responseSlice := strings.Split(response, "</think>")
	if len(responseSlice) == 1 {
		return response
	}
	return responseSlice[1]
}

func replaceAnswerFormatTag(answer string) string {
	answer = strings.Replace(answer, "```json", "", 1)
	return strings.Replace(answer, "```", "", 1)
}
