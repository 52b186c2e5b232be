package service

import (
	"math"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/attendance/checkin/model"
)

// InsightsResult agregat footfall untuk dashboard admin. Dihitung in-memory
// dari rowset hasil filter (tidak ada pre-aggregation di DB).
type InsightsResult struct {
	TotalVisits   int `json:"total_visits"`
	MemberVisits  int `json:"member_visits"`
	StaffVisits   int `json:"staff_visits"`
	ExpiredVisits int `json:"expired_visits"` // check-in dengan membership kadaluarsa

	PeakHour       int     `json:"peak_hour"` // jam 0-23 dengan check-in terbanyak
	PeakHourVisits int     `json:"peak_hour_visits"`
	HourlyCounts   [24]int `json:"hourly_counts"`

	AvgDurationHours float64 `json:"avg_duration_hours"` // rata-rata kunjungan yang sudah checkout

	DailyCounts map[string]int `json:"daily_counts"` // "2025-03-15" → jumlah visit
}

func ComputeInsights(rows []model.AttendanceLogModel) InsightsResult {
	res := InsightsResult{DailyCounts: make(map[string]int)}

	var durSum float64
	var durCount int

	for i := range rows {
		row := &rows[i]
		res.TotalVisits++

		switch row.AttendanceLogUserType {
		case constants.UserTypeStaff:
			res.StaffVisits++
		default:
			res.MemberVisits++
		}
		if row.AttendanceLogStatus == model.AttendanceStatusExpired {
			res.ExpiredVisits++
		}

		res.HourlyCounts[row.AttendanceLogCheckInAt.Hour()]++
		res.DailyCounts[row.AttendanceLogDate.Format("2006-01-02")]++

		if row.AttendanceLogTotalHours != nil {
			durSum += *row.AttendanceLogTotalHours
			durCount++
		}
	}

	for hour, n := range res.HourlyCounts {
		if n > res.PeakHourVisits {
			res.PeakHour = hour
			res.PeakHourVisits = n
		}
	}

	if durCount > 0 {
		res.AvgDurationHours = math.Round(durSum/float64(durCount)*100) / 100
	}

	return res
}
