package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maumcare/counseling-backend/internal/session"
)

type fakeReporter struct {
	report session.DashboardReport
	calls  int
}

func (f *fakeReporter) Dashboard(_ time.Time) session.DashboardReport {
	f.calls++
	return f.report
}

func TestDashboardEndpoint(t *testing.T) {
	reporter := &fakeReporter{report: session.DashboardReport{
		Averages: session.Averages{Anxiety: 55, Depression: 35, Stress: 25, Wellbeing: 61.7},
		Weekly: []session.DayTrend{
			{Day: "일"}, {Day: "월"}, {Day: "화"}, {Day: "수"}, {Day: "목"}, {Day: "금"}, {Day: "토", Anxiety: 55},
		},
		Telemetry: session.Telemetry{CrisisCount7d: 2, ActiveSessions7d: 5, LastSummary: "주요 증상: 불안"},
	}}

	r := chi.NewRouter()
	New(reporter).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if reporter.calls != 1 {
		t.Fatalf("expected one report computation, got %d", reporter.calls)
	}

	var body session.DashboardReport
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Averages.Anxiety != 55 {
		t.Fatalf("unexpected averages: %+v", body.Averages)
	}
	if len(body.Weekly) != 7 {
		t.Fatalf("expected 7 weekly entries, got %d", len(body.Weekly))
	}
	if body.Telemetry.CrisisCount7d != 2 || body.Telemetry.ActiveSessions7d != 5 {
		t.Fatalf("unexpected telemetry: %+v", body.Telemetry)
	}
}

func TestDashboardEndToEndWithStore(t *testing.T) {
	store := session.NewStore()

	r := chi.NewRouter()
	New(store).RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body session.DashboardReport
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Averages.Wellbeing != 100 {
		t.Fatalf("expected wellbeing 100 for an empty store, got %f", body.Averages.Wellbeing)
	}
}
