package services

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dhohnholt/davidhohnholt/internal/config"
	"github.com/dhohnholt/davidhohnholt/internal/models"
)

// Notifier posts a JSON envelope describing a new booking to the
// configured endpoint. Fire-and-forget: failures are logged, never
// surfaced, and nothing is retried.
type Notifier struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

func NewNotifier(cfg *config.Config) *Notifier {
	if cfg.NotifyURL == "" {
		return nil
	}
	return &Notifier{
		url:        cfg.NotifyURL,
		apiKey:     cfg.NotifyAPIKey,
		httpClient: &http.Client{Timeout: cfg.NotifyTimeout},
	}
}

type bookingNotification struct {
	Type    string          `json:"type"`
	Booking *models.Booking `json:"booking"`
	SentAt  time.Time       `json:"sent_at"`
}

func (n *Notifier) BookingCreated(booking *models.Booking) {
	payload := bookingNotification{
		Type:    "booking.created",
		Booking: booking,
		SentAt:  time.Now().UTC(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode booking notification", "error", err, "booking_id", booking.ID)
		return
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to build booking notification request", "error", err, "booking_id", booking.ID)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("apikey", n.apiKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		slog.Error("booking notification failed", "error", err, "booking_id", booking.ID)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Error("booking notification rejected", "status", resp.StatusCode, "booking_id", booking.ID)
		return
	}

	slog.Info("booking notification sent", "booking_id", booking.ID)
}
