package search

import "testing"

const sampleResultsPage = `
<html><body>
<div class="result results_links results_links_deep web-result">
  <h2 class="result__title">
    <a class="result__a" href="/l/?uddg=https%3A%2F%2Fcenter.example%2Fseoul">서울시정신건강복지센터</a>
  </h2>
  <a class="result__snippet">서울특별시 중구 세종대로 110, 상담전화 02-3444-9934</a>
</div>
<div class="result results_links results_links_deep web-result">
  <h2 class="result__title">
    <a class="result__a" href="https://lifeline.example">한국생명의전화</a>
  </h2>
</div>
</body></html>`

func TestParseResultsHTML(t *testing.T) {
	results, err := parseResultsHTML(sampleResultsPage, 5)
	if err != nil {
		t.Fatalf("parseResultsHTML err: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0]["name"] != "서울시정신건강복지센터" {
		t.Fatalf("unexpected first name: %v", results[0]["name"])
	}
	if results[0]["sourceUrl"] != "https://center.example/seoul" {
		t.Fatalf("expected redirect unwrapped, got %v", results[0]["sourceUrl"])
	}
	if results[0]["address"] == "" {
		t.Fatal("expected snippet captured as address")
	}
	if results[1]["name"] != "한국생명의전화" {
		t.Fatalf("unexpected second name: %v", results[1]["name"])
	}
}

func TestParseResultsHTMLHonorsLimit(t *testing.T) {
	results, err := parseResultsHTML(sampleResultsPage, 1)
	if err != nil {
		t.Fatalf("parseResultsHTML err: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestParseResultsHTMLNoResults(t *testing.T) {
	results, err := parseResultsHTML("<html><body><p>no hits</p></body></html>", 5)
	if err != nil {
		t.Fatalf("parseResultsHTML err: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestNormalizeWebPayload(t *testing.T) {
	results, err := parseResultsHTML(sampleResultsPage, 5)
	if err != nil {
		t.Fatalf("parseResultsHTML err: %v", err)
	}

	records := Normalize(results)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].SourceTitle != "서울시정신건강복지센터" {
		t.Fatalf("unexpected sourceTitle: %q", records[0].SourceTitle)
	}
}
