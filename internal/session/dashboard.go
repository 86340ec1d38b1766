package session

import "time"

// DashboardReport aggregates the trailing 7-day window across sessions.
type DashboardReport struct {
	Averages  Averages   `json:"averages"`
	Weekly    []DayTrend `json:"weekly"`
	Telemetry Telemetry  `json:"telemetry"`
}

// Averages are arithmetic means over every sample in the window, 0~100.
type Averages struct {
	Anxiety    float64 `json:"anxiety"`
	Depression float64 `json:"depression"`
	Stress     float64 `json:"stress"`
	Wellbeing  float64 `json:"wellbeing"`
}

// DayTrend is one calendar day's averages, oldest first.
type DayTrend struct {
	Day        string  `json:"day"`
	Anxiety    float64 `json:"anxiety"`
	Depression float64 `json:"depression"`
}

// Telemetry counts session-level activity inside the window.
type Telemetry struct {
	CrisisCount7d    int    `json:"crisisCount7d"`
	ActiveSessions7d int    `json:"activeSessions7d"`
	LastSummary      string `json:"lastSummary"`
}

var koreanDays = []string{"일", "월", "화", "수", "목", "금", "토"}

const dashboardWindow = 7 * 24 * time.Hour

// Dashboard computes the report as of now. It snapshots the store under a
// read lock, then aggregates without blocking writers.
func (s *Store) Dashboard(now time.Time) DashboardReport {
	now = now.UTC()
	cutoff := now.Add(-dashboardWindow)

	type sessionSnapshot struct {
		crisisCount int
		lastSummary string
		updatedAt   time.Time
		samples     []Sample
	}

	s.mu.RLock()
	snapshots := make([]sessionSnapshot, 0, len(s.records))
	for _, record := range s.records {
		snap := sessionSnapshot{
			crisisCount: record.CrisisCount,
			lastSummary: record.LastSummary,
			updatedAt:   record.UpdatedAt,
		}
		snap.samples = make([]Sample, len(record.History))
		copy(snap.samples, record.History)
		snapshots = append(snapshots, snap)
	}
	s.mu.RUnlock()

	// Window filter across all sessions. Samples exactly at the cutoff
	// are included.
	var windowed []Sample
	for _, snap := range snapshots {
		for _, sample := range snap.samples {
			if !sample.Timestamp.Before(cutoff) {
				windowed = append(windowed, sample)
			}
		}
	}

	report := DashboardReport{}

	if n := len(windowed); n > 0 {
		var sumAnx, sumDep, sumStr float64
		for _, sample := range windowed {
			sumAnx += sample.Anxiety
			sumDep += sample.Depression
			sumStr += sample.Stress
		}
		report.Averages.Anxiety = sumAnx / float64(n)
		report.Averages.Depression = sumDep / float64(n)
		report.Averages.Stress = sumStr / float64(n)
	}
	mean := (report.Averages.Anxiety + report.Averages.Depression + report.Averages.Stress) / 3
	report.Averages.Wellbeing = clampScore(100 - mean)

	// Trailing 7 calendar days, oldest to newest, UTC day boundaries.
	report.Weekly = make([]DayTrend, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := now.AddDate(0, 0, -(6 - offset))
		dayY, dayM, dayD := day.Date()

		var sumAnx, sumDep float64
		count := 0
		for _, sample := range windowed {
			y, m, d := sample.Timestamp.UTC().Date()
			if y == dayY && m == dayM && d == dayD {
				sumAnx += sample.Anxiety
				sumDep += sample.Depression
				count++
			}
		}

		trend := DayTrend{Day: koreanDays[day.Weekday()]}
		if count > 0 {
			trend.Anxiety = sumAnx / float64(count)
			trend.Depression = sumDep / float64(count)
		}
		report.Weekly = append(report.Weekly, trend)
	}

	var latest time.Time
	for _, snap := range snapshots {
		if !snap.updatedAt.IsZero() && !snap.updatedAt.Before(cutoff) {
			report.Telemetry.ActiveSessions7d++
			if snap.crisisCount > 0 {
				report.Telemetry.CrisisCount7d++
			}
		}
		if snap.updatedAt.After(latest) {
			latest = snap.updatedAt
			report.Telemetry.LastSummary = snap.lastSummary
		}
	}

	return report
}
