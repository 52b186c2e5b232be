package service

import (
	"fmt"
	"log"
	"time"
)

type Notification struct {
	Phone   string
	Message string
}

// Dispatcher antrian notifikasi fire-and-forget: Enqueue tidak pernah blocking
// dan kegagalan kirim hanya di-log — side effect notifikasi tidak boleh
// menggagalkan atau memperlambat response check-in.
type Dispatcher struct {
	messenger Messenger
	queue     chan Notification
	done      chan struct{}
}

func NewDispatcher(messenger Messenger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	return &Dispatcher{
		messenger: messenger,
		queue:     make(chan Notification, buffer),
		done:      make(chan struct{}),
	}
}

func (d *Dispatcher) Start() {
	go func() {
		defer close(d.done)
		for n := range d.queue {
			if err := d.messenger.Send(n.Phone, n.Message); err != nil {
				// log and continue — jangan pernah eskalasi ke response
				log.Printf("[NOTIFY ERROR] gagal kirim ke %s: %v", n.Phone, err)
			}
		}
	}()
}

// Enqueue non-blocking: kalau buffer penuh, notifikasi dibuang (dengan log).
func (d *Dispatcher) Enqueue(n Notification) {
	select {
	case d.queue <- n:
	default:
		log.Printf("[NOTIFY DROP] antrian penuh, buang notifikasi ke %s", n.Phone)
	}
}

// Stop tutup antrian dan tunggu worker selesai (dipanggil saat shutdown).
func (d *Dispatcher) Stop(timeout time.Duration) {
	close(d.queue)
	select {
	case <-d.done:
	case <-time.After(timeout):
		log.Println("[NOTIFY] timeout menunggu antrian kosong saat shutdown")
	}
}

// ExpiredCheckInMessage template laporan ke admin cabang saat ada member
// kadaluarsa yang scan masuk.
func ExpiredCheckInMessage(memberName, memberPhone, branchName string, at time.Time) string {
	return fmt.Sprintf(
		"⚠️ Expired member check-in\nName: %s\nPhone: %s\nBranch: %s\nTime: %s\nPlease follow up for renewal.",
		memberName, memberPhone, branchName, at.Format("2006-01-02 15:04"),
	)
}
