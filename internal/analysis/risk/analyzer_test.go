package risk

import "testing"

func TestScreenFlagsCrisisKeywords(t *testing.T) {
	decision := Screen("요즘 너무 힘들어서 죽고 싶다는 생각이 들어요")
	if !decision.Crisis {
		t.Fatal("expected crisis flagged")
	}
	if decision.Score < 3 {
		t.Fatalf("expected crisis-level score, got %d", decision.Score)
	}
}

func TestScreenDistressIsNotCrisis(t *testing.T) {
	decision := Screen("계속 우울하고 잠이 안 와요")
	if decision.Crisis {
		t.Fatal("distress keywords alone must not flag a crisis")
	}
	if decision.Score == 0 {
		t.Fatal("expected distress to contribute to the score")
	}
}

func TestScreenNeutralText(t *testing.T) {
	decision := Screen("오늘 날씨가 좋네요")
	if decision.Crisis || decision.Score != 0 {
		t.Fatalf("expected neutral decision, got %+v", decision)
	}
}

func TestScreenEnglishKeywords(t *testing.T) {
	decision := Screen("sometimes I just want to die")
	if !decision.Crisis {
		t.Fatal("expected english crisis phrase flagged")
	}
}

func TestScreenEmptyText(t *testing.T) {
	decision := Screen("   ")
	if decision.Crisis || decision.Score != 0 {
		t.Fatalf("expected zero decision for empty text, got %+v", decision)
	}
}
