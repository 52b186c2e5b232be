package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gymku_backend/internals/configs"
)

// Gateway pesan keluar. Implementasi produksi: WATI (WhatsApp).
type Messenger interface {
	Send(phone, message string) error
}

type watiMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type WatiClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewWatiClient() *WatiClient {
	return &WatiClient{
		BaseURL: configs.WatiBaseURL,
		APIKey:  configs.WatiAPIKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *WatiClient) Send(phone, message string) error {
	if w.BaseURL == "" || w.APIKey == "" {
		return fmt.Errorf("wati gateway belum dikonfigurasi")
	}

	payload, err := json.Marshal(watiMessage{Phone: phone, Message: message})
	if err != nil {
		return fmt.Errorf("gagal marshal pesan: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, w.BaseURL+"/api/v1/sendSessionMessage", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("gagal membuat request WATI: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+w.APIKey)

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("gagal kirim WhatsApp: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("WATI balas status %d", resp.StatusCode)
	}
	return nil
}
