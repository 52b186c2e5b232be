package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	"gymku_backend/internals/features/attendance/checkin/model"
	subservice "gymku_backend/internals/features/membership/subscriptions/service"
)

// Scan kedua dalam window ini TIDAK PERNAH jadi transisi state, walaupun
// kelihatannya checkout yang sah — supresi menang atas open/close.
const AntiPassbackWindow = 10 * time.Minute

type Decision int

const (
	DecisionOpen      Decision = iota // buka kunjungan baru
	DecisionClose                     // tutup kunjungan yang masih open
	DecisionDuplicate                 // scan ganda dalam window anti-passback
)

// UserRef identitas tunggal yang sudah di-resolve: tepat satu dari
// MemberID/StaffID terisi sesuai UserType.
type UserRef struct {
	UserType string
	MemberID *uuid.UUID
	StaffID  *uuid.UUID
}

// Outcome hasil satu scan, siap diserialisasi ke kiosk.
type Outcome struct {
	Code               string                    `json:"code"` // duplicate | checked_in | checked_out | expired
	Message            string                    `json:"message"`
	WaitMinutes        int                       `json:"wait_minutes,omitempty"`
	Redirect           string                    `json:"redirect,omitempty"`
	SubscriptionStatus subservice.SubscriptionStatus `json:"subscription_status,omitempty"`
	Log                *model.AttendanceLogModel `json:"log,omitempty"`
}

// Decide memutuskan nasib satu scan dari baris attendance terakhir hari ini.
// Pure function; dites tanpa DB. Balikan kedua = sisa menit tunggu saat duplicate.
func Decide(last *model.AttendanceLogModel, now time.Time) (Decision, int) {
	if last == nil {
		return DecisionOpen, 0
	}

	// Anti-passback dihitung dari scan TERAKHIR (check-in atau check-out,
	// mana yang lebih baru).
	elapsed := now.Sub(lastScanAt(last))
	if elapsed < AntiPassbackWindow {
		wait := int(math.Ceil((AntiPassbackWindow - elapsed).Minutes()))
		return DecisionDuplicate, wait
	}

	if last.AttendanceLogCheckOutAt == nil {
		return DecisionClose, 0
	}
	return DecisionOpen, 0
}

// EntryStatus status baris kunjungan baru dari status membership:
// status yang memblokir tetap dicatat, tapi sebagai "expired".
func EntryStatus(subStatus subservice.SubscriptionStatus) string {
	if subStatus.Blocks() {
		return model.AttendanceStatusExpired
	}
	return model.AttendanceStatusCheckedIn
}

// OpenOutcome respons untuk kunjungan yang baru dibuka. Pure; Reconcile
// memanggilnya setelah insert. Baris expired selalu membawa redirect renewal.
func OpenOutcome(row *model.AttendanceLogModel, subStatus subservice.SubscriptionStatus) *Outcome {
	if row.AttendanceLogStatus == model.AttendanceStatusExpired {
		return &Outcome{
			Code:               "expired",
			Message:            "Membership expired. Entry recorded, please renew at the front desk.",
			Redirect:           "/membership/renew",
			SubscriptionStatus: subStatus,
			Log:                row,
		}
	}
	return &Outcome{
		Code:               "checked_in",
		Message:            "Checked in. Have a good workout!",
		SubscriptionStatus: subStatus,
		Log:                row,
	}
}

// TotalHours durasi kunjungan dalam jam, 2 desimal (round half away from zero).
func TotalHours(checkIn, checkOut time.Time) float64 {
	return math.Round(checkOut.Sub(checkIn).Hours()*100) / 100
}

func lastScanAt(row *model.AttendanceLogModel) time.Time {
	if row.AttendanceLogCheckOutAt != nil && row.AttendanceLogCheckOutAt.After(row.AttendanceLogCheckInAt) {
		return *row.AttendanceLogCheckOutAt
	}
	return row.AttendanceLogCheckInAt
}

/* =====================================================
   Reconcile: baca fresh → putuskan → tulis
===================================================== */

type ReconcileService struct {
	DB *gorm.DB
}

func NewReconcileService(db *gorm.DB) *ReconcileService {
	return &ReconcileService{DB: db}
}

// Reconcile memproses satu scan untuk (user, branch). Stateless antar request:
// semua keputusan dari fresh read, konsistensi bersandar ke window anti-passback
// (pengganti lock kasar yang disengaja). Gagal tulis = fatal buat request ini;
// kiosk tinggal minta user scan ulang.
func (s *ReconcileService) Reconcile(ref UserRef, branchID uuid.UUID, now time.Time, subStatus subservice.SubscriptionStatus) (*Outcome, error) {
	today := atMidnight(now)

	// Kunjungan kemarin yang lupa checkout ditutup oleh scan hari berikutnya.
	if err := s.closeStaleOpenVisit(ref, branchID, today, now); err != nil {
		return nil, err
	}

	last, err := s.latestRowToday(ref, branchID, today)
	if err != nil {
		return nil, err
	}

	decision, wait := Decide(last, now)

	switch decision {
	case DecisionDuplicate:
		return &Outcome{
			Code:               "duplicate",
			Message:            fmt.Sprintf("Already scanned. Please wait %d more minutes.", wait),
			WaitMinutes:        wait,
			SubscriptionStatus: subStatus,
			Log:                last,
		}, nil

	case DecisionClose:
		hours := TotalHours(last.AttendanceLogCheckInAt, now)
		updates := map[string]interface{}{
			"attendance_log_check_out_at": now,
			"attendance_log_total_hours":  hours,
			"attendance_log_status":       model.AttendanceStatusCheckedOut,
		}
		if err := s.DB.Model(&model.AttendanceLogModel{}).
			Where("attendance_log_id = ?", last.AttendanceLogID).
			Updates(updates).Error; err != nil {
			return nil, err
		}
		last.AttendanceLogCheckOutAt = &now
		last.AttendanceLogTotalHours = &hours
		last.AttendanceLogStatus = model.AttendanceStatusCheckedOut
		return &Outcome{
			Code:               "checked_out",
			Message:            fmt.Sprintf("Checked out. Total %.2f hours. See you again!", hours),
			SubscriptionStatus: subStatus,
			Log:                last,
		}, nil

	default: // DecisionOpen
		row := model.AttendanceLogModel{
			AttendanceLogUserType:           ref.UserType,
			AttendanceLogMemberID:           ref.MemberID,
			AttendanceLogStaffID:            ref.StaffID,
			AttendanceLogBranchID:           branchID,
			AttendanceLogDate:               today,
			AttendanceLogCheckInAt:          now,
			AttendanceLogStatus:             EntryStatus(subStatus),
			AttendanceLogSubscriptionStatus: string(subStatus),
		}
		if err := s.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return OpenOutcome(&row, subStatus), nil
	}
}

func (s *ReconcileService) latestRowToday(ref UserRef, branchID uuid.UUID, today time.Time) (*model.AttendanceLogModel, error) {
	var row model.AttendanceLogModel
	q := s.scopeUser(s.DB, ref).
		Where("attendance_log_branch_id = ? AND attendance_log_date = ?", branchID, today).
		Order("attendance_log_check_in_at DESC")
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *ReconcileService) closeStaleOpenVisit(ref UserRef, branchID uuid.UUID, today, now time.Time) error {
	var stale model.AttendanceLogModel
	err := s.scopeUser(s.DB, ref).
		Where("attendance_log_branch_id = ? AND attendance_log_date < ? AND attendance_log_check_out_at IS NULL", branchID, today).
		Order("attendance_log_date DESC").
		First(&stale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	hours := TotalHours(stale.AttendanceLogCheckInAt, now)
	return s.DB.Model(&model.AttendanceLogModel{}).
		Where("attendance_log_id = ?", stale.AttendanceLogID).
		Updates(map[string]interface{}{
			"attendance_log_check_out_at": now,
			"attendance_log_total_hours":  hours,
			"attendance_log_status":       model.AttendanceStatusCheckedOut,
		}).Error
}

func (s *ReconcileService) scopeUser(db *gorm.DB, ref UserRef) *gorm.DB {
	q := db.Where("attendance_log_user_type = ?", ref.UserType)
	if ref.UserType == constants.UserTypeStaff {
		return q.Where("attendance_log_staff_id = ?", ref.StaffID)
	}
	return q.Where("attendance_log_member_id = ?", ref.MemberID)
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
