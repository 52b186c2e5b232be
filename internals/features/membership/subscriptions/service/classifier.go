package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/membership/subscriptions/model"
)

// Status membership yang dipakai gating check-in dan planner PT.
type SubscriptionStatus string

const (
	StatusActive         SubscriptionStatus = "active"
	StatusExpiringSoon   SubscriptionStatus = "expiring_soon"
	StatusExpired        SubscriptionStatus = "expired"
	StatusNoSubscription SubscriptionStatus = "no_subscription"
)

// berapa hari sebelum end_date member dianggap "expiring_soon"
const ExpiringSoonDays = 7

// Blocks melaporkan apakah status ini memblokir check-in normal
// (member tetap boleh masuk, tapi dicatat sebagai "expired" + notifikasi admin).
func (s SubscriptionStatus) Blocks() bool {
	return s == StatusExpired || s == StatusNoSubscription
}

// ClassifyWindow menghitung status dari tanggal. Tanggal adalah ground truth —
// status tersimpan di DB bisa basi — KECUALI "inactive" eksplisit, yang
// otoritatif apapun tanggalnya (kebijakan produk, jangan disatukan diam-diam).
func ClassifyWindow(endDate time.Time, storedStatus string, asOf time.Time) SubscriptionStatus {
	if storedStatus == model.SubscriptionStatusInactive {
		return StatusExpired
	}

	end := atMidnight(endDate)
	as := atMidnight(asOf)

	if end.Before(as) {
		return StatusExpired
	}
	// 0 <= end-asOf <= 7 hari
	if !end.After(as.AddDate(0, 0, ExpiringSoonDays)) {
		return StatusExpiringSoon
	}
	return StatusActive
}

type Classifier struct {
	DB *gorm.DB
}

func NewClassifier(db *gorm.DB) *Classifier {
	return &Classifier{DB: db}
}

// Classify ambil baris subscription dengan end_date paling akhir (yang
// otoritatif untuk "sekarang"), lalu klasifikasi berdasarkan tanggal.
func (s *Classifier) Classify(memberID uuid.UUID, asOf time.Time) (SubscriptionStatus, *model.SubscriptionModel, error) {
	var sub model.SubscriptionModel
	err := s.DB.
		Where("subscription_member_id = ?", memberID).
		Order("subscription_end_date DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusNoSubscription, nil, nil
		}
		return "", nil, err
	}

	return ClassifyWindow(sub.SubscriptionEndDate, sub.SubscriptionStatus, asOf), &sub, nil
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
