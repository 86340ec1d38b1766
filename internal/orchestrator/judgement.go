package orchestrator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maumcare/counseling-backend/internal/model/chat"
)

// judgement is the evaluate node's structured verdict after coercion.
// The zero value is the safe degraded verdict.
type judgement struct {
	Crisis      bool
	EndSession  bool
	NeedSummary bool
	Scores      chat.Scores
}

// parseJudgement extracts the JSON object from the model output and
// coerces every field. Missing booleans become false, missing or
// malformed numbers become 0, out-of-range numbers are clamped.
func parseJudgement(content string) (judgement, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return judgement{}, fmt.Errorf("missing json object")
	}

	payload := map[string]any{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &payload); err != nil {
		return judgement{}, err
	}

	return judgement{
		Crisis:      coerceBool(payload["crisis"]),
		EndSession:  coerceBool(payload["endSession"]),
		NeedSummary: coerceBool(payload["needSummary"]),
		Scores: chat.Scores{
			Anxiety:    coerceScore(payload["anxiety"]),
			Depression: coerceScore(payload["depression"]),
			Stress:     coerceScore(payload["stress"]),
		},
	}, nil
}

func coerceBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	default:
		return false
	}
}

// coerceScore maps any provider-reported value onto the 0~100 scale.
func coerceScore(raw any) float64 {
	var val float64
	switch v := raw.(type) {
	case float64:
		val = v
	case int:
		val = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		val = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		val = parsed
	default:
		return 0
	}

	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0
	}
	if val < 0 {
		return 0
	}
	if val > 100 {
		return 100
	}
	return val
}
