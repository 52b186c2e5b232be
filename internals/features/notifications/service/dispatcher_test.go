package service

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeMessenger struct {
	mu   sync.Mutex
	sent []Notification
	fail bool
}

func (f *fakeMessenger) Send(phone, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("gateway down")
	}
	f.sent = append(f.sent, Notification{Phone: phone, Message: message})
	return nil
}

func TestDispatcherDelivers(t *testing.T) {
	fm := &fakeMessenger{}
	d := NewDispatcher(fm, 4)
	d.Start()

	d.Enqueue(Notification{Phone: "81234", Message: "halo"})
	d.Stop(time.Second)

	fm.mu.Lock()
	defer fm.mu.Unlock()
	if len(fm.sent) != 1 || fm.sent[0].Phone != "81234" {
		t.Fatalf("terkirim: %+v, want 1 pesan ke 81234", fm.sent)
	}
}

// Kegagalan gateway ditelan (log-and-continue), worker tidak berhenti.
func TestDispatcherSwallowsFailure(t *testing.T) {
	fm := &fakeMessenger{fail: true}
	d := NewDispatcher(fm, 4)
	d.Start()

	d.Enqueue(Notification{Phone: "81234", Message: "halo"})
	d.Stop(time.Second) // tidak boleh hang/panic
}

func TestExpiredCheckInMessage(t *testing.T) {
	at := time.Date(2025, 3, 15, 7, 45, 0, 0, time.UTC)
	msg := ExpiredCheckInMessage("Budi", "81234567890", "Cabang Senayan", at)

	for _, want := range []string{"Budi", "81234567890", "Cabang Senayan", "2025-03-15 07:45"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("pesan tidak memuat %q:\n%s", want, msg)
		}
	}
}
