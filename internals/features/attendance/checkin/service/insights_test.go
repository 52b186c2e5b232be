package service

import (
	"testing"
	"time"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/attendance/checkin/model"
)

func visit(day string, hour int, userType, status string, hours *float64) model.AttendanceLogModel {
	date, _ := time.Parse("2006-01-02", day)
	return model.AttendanceLogModel{
		AttendanceLogUserType:   userType,
		AttendanceLogDate:       date,
		AttendanceLogCheckInAt:  date.Add(time.Duration(hour) * time.Hour),
		AttendanceLogStatus:     status,
		AttendanceLogTotalHours: hours,
	}
}

func fp(v float64) *float64 { return &v }

func TestComputeInsights(t *testing.T) {
	rows := []model.AttendanceLogModel{
		visit("2025-03-15", 7, constants.UserTypeMember, model.AttendanceStatusCheckedOut, fp(1.5)),
		visit("2025-03-15", 18, constants.UserTypeMember, model.AttendanceStatusCheckedOut, fp(2.5)),
		visit("2025-03-15", 18, constants.UserTypeMember, model.AttendanceStatusExpired, nil),
		visit("2025-03-16", 18, constants.UserTypeStaff, model.AttendanceStatusCheckedIn, nil),
	}

	res := ComputeInsights(rows)

	if res.TotalVisits != 4 || res.MemberVisits != 3 || res.StaffVisits != 1 {
		t.Fatalf("visit counts salah: %+v", res)
	}
	if res.ExpiredVisits != 1 {
		t.Fatalf("expired visits = %d, want 1", res.ExpiredVisits)
	}
	if res.PeakHour != 18 || res.PeakHourVisits != 3 {
		t.Fatalf("peak hour = %d (%d visits), want 18 (3)", res.PeakHour, res.PeakHourVisits)
	}
	// rata-rata hanya dari kunjungan yang sudah checkout: (1.5+2.5)/2
	if res.AvgDurationHours != 2.0 {
		t.Fatalf("avg duration = %v, want 2.0", res.AvgDurationHours)
	}
	if res.DailyCounts["2025-03-15"] != 3 || res.DailyCounts["2025-03-16"] != 1 {
		t.Fatalf("daily counts salah: %+v", res.DailyCounts)
	}
}

func TestComputeInsightsEmpty(t *testing.T) {
	res := ComputeInsights(nil)
	if res.TotalVisits != 0 || res.AvgDurationHours != 0 || res.PeakHourVisits != 0 {
		t.Fatalf("rowset kosong harus menghasilkan agregat nol: %+v", res)
	}
}
