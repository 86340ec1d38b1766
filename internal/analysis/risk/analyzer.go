package risk

import "strings"

// Decision 은 키워드 기반 위기 선별 결과다.
type Decision struct {
	Crisis bool
	Score  int
}

// 즉각적인 위험 신호로 간주하는 표현. 모델이 구성되지 않은 배포에서
// Evaluate 의 대체 수단으로만 쓰인다.
var crisisKeywords = []string{
	"자살", "죽고 싶", "죽고싶", "죽을래", "죽어버리", "살기 싫", "살기싫",
	"자해", "사라지고 싶", "사라지고싶", "끝내고 싶", "끝내버리", "유서",
	"뛰어내리", "목숨", "생을 마감",
	"suicide", "kill myself", "end my life", "self harm", "self-harm",
	"want to die", "better off dead",
}

// 고통을 나타내지만 즉각적 위험까지는 아닌 표현. 점수에만 기여한다.
var distressKeywords = []string{
	"우울", "불안", "공황", "무기력", "절망", "괴로", "힘들어", "버티기",
	"불면", "잠이 안", "숨이 막", "혼자", "외로",
	"depressed", "anxious", "hopeless", "panic", "can't sleep",
}

// Screen 은 대화 텍스트에서 위기 신호를 선별한다. 위기 키워드는 한 번의
// 일치만으로 위기로 판정한다.
func Screen(text string) Decision {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Decision{}
	}

	score := 0
	crisis := false
	for _, word := range crisisKeywords {
		if strings.Contains(normalized, word) {
			crisis = true
			score += 3
		}
	}
	for _, word := range distressKeywords {
		if strings.Contains(normalized, word) {
			score++
		}
	}

	return Decision{Crisis: crisis, Score: score}
}
