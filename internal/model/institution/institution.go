package institution

// Institution is one mental-health support organization the service can
// recommend when a conversation shows immediate risk.
type Institution struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Website string `json:"website,omitempty"`
	Region  string `json:"region"`
	Notes   string `json:"notes,omitempty"`
}

// Seed provides the nationwide default directory used when no external
// search capability is configured. Hotlines come first: they are reachable
// from anywhere and staffed around the clock.
func Seed() []Institution {
	return []Institution{
		{
			ID:      "suicide-prevention-1393",
			Name:    "자살예방 상담전화",
			Address: "전국",
			Contact: "1393",
			Region:  "전국",
			Notes:   "24시간 전화 상담",
		},
		{
			ID:      "crisis-counsel-1577-0199",
			Name:    "정신건강 위기상담전화",
			Address: "전국",
			Contact: "1577-0199",
			Region:  "전국",
			Notes:   "24시간 정신건강 위기 상담",
		},
		{
			ID:      "lifeline-korea",
			Name:    "한국생명의전화",
			Address: "서울특별시 종로구",
			Contact: "1588-9191",
			Website: "https://www.lifeline.or.kr",
			Region:  "전국",
			Notes:   "24시간 전화 상담",
		},
		{
			ID:      "youth-counsel-1388",
			Name:    "청소년 상담전화",
			Address: "전국",
			Contact: "1388",
			Region:  "전국",
			Notes:   "청소년 및 보호자 상담",
		},
		{
			ID:      "seoul-mental-health-center",
			Name:    "서울시정신건강복지센터",
			Address: "서울특별시 중구 세종대로 110",
			Contact: "02-3444-9934",
			Website: "https://blutouch.net",
			Region:  "서울",
		},
		{
			ID:      "gyeonggi-mental-health-center",
			Name:    "경기도정신건강복지센터",
			Address: "경기도 수원시 장안구",
			Contact: "031-212-0435",
			Region:  "경기",
		},
		{
			ID:      "busan-mental-health-center",
			Name:    "부산광역정신건강복지센터",
			Address: "부산광역시 연제구",
			Contact: "051-242-2575",
			Region:  "부산",
		},
	}
}
