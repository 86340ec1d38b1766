package orchestrator

import (
	"strings"

	"github.com/maumcare/counseling-backend/internal/model/chat"
)

const counselSystemPrompt = "당신은 한국어로 상담하는 정신건강 상담사입니다. " +
	"위로에만 머무르지 말고 사용자가 실천할 수 있는 조언을 함께 제시하세요. " +
	"답변은 3~6문장으로 간결하게 유지하세요. " +
	"지원 기관 목록이 주어지면 기관명과 연락처를 구체적으로 안내하세요."

// 검색 이후 두 번째 상담 패스에서 쓰는 내부 지시문. 이때 마지막 메시지는
// 사용자 발화가 아니므로 질의를 따로 만든다.
const counselFollowUpQuery = "방금 확인한 지원 기관 정보를 바탕으로, 사용자가 바로 연락할 수 있도록 이어서 안내해 주세요."

const evaluateSystemPrompt = "당신은 상담 대화를 평가하는 분석가입니다. 전체 대화를 읽고 JSON 객체 하나만 반환하세요. " +
	"필드: crisis (자살이나 자해 등 즉각적 위험 신호가 있으면 true), " +
	"endSession (대화가 자연스럽게 마무리되었으면 true), " +
	"needSummary (대략 6턴마다 한 번 중간 요약이 필요하다고 판단되면 true), " +
	"anxiety, depression, stress (각각 0~100 사이의 숫자). " +
	"JSON 외의 텍스트를 출력하지 마세요."

const evaluateQuery = "위 대화를 평가하여 JSON만 출력하세요."

const summarizeSystemPrompt = "당신은 상담 기록을 정리하는 상담사입니다. 전체 대화를 바탕으로 아래 네 항목을 줄마다 하나씩 작성하세요.\n" +
	"주요 증상: ...\n" +
	"위험 요인: ...\n" +
	"보호 및 개선 요인: ...\n" +
	"상담사 개입: ..."

const summarizeQuery = "위 대화를 네 항목 형식으로 요약해 주세요."

// 원 시스템의 고정 안내 문구. 모델 호출이 실패해도 이 문구로 턴을 마친다.
const fallbackReply = "죄송합니다. 현재 상담 응답 생성에 문제가 발생했습니다. 잠시 후 다시 시도해 주세요."

const defaultSearchQuery = "정신건강 상담 기관 연락처"

// formatResources renders the searched institutions as a system prompt
// addition for the post-search counsel pass.
func formatResources(resources []chat.Resource) string {
	var sb strings.Builder
	sb.WriteString("\n\n안내 가능한 지원 기관:\n")
	for _, r := range resources {
		sb.WriteString("- ")
		sb.WriteString(r.Name)
		if r.Contact != "" {
			sb.WriteString(" (")
			sb.WriteString(r.Contact)
			sb.WriteString(")")
		}
		if r.Address != "" {
			sb.WriteString(", ")
			sb.WriteString(r.Address)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// fallbackSummary keeps the four-field format even when the model is
// unavailable.
func fallbackSummary(st chat.TurnState) string {
	riskLine := "기록되지 않음"
	if st.Crisis {
		riskLine = "즉각적 위험 신호 감지됨"
	}
	return strings.Join([]string{
		"주요 증상: 기록되지 않음",
		"위험 요인: " + riskLine,
		"보호 및 개선 요인: 기록되지 않음",
		"상담사 개입: 대화 지원 및 지원 기관 안내",
	}, "\n")
}
