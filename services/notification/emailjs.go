package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bot9palace/config"
	"bot9palace/models"
	"bot9palace/utils"

	"go.uber.org/zap"
)

// Package-level HTTP client for EmailJS calls.
var emailHTTPClient = &http.Client{Timeout: 5 * time.Second}

// EmailJSMailer delivers booking confirmations through the EmailJS REST API.
type EmailJSMailer struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	BaseURL    string
}

// NewEmailJSMailer builds a mailer from the application configuration.
func NewEmailJSMailer() *EmailJSMailer {
	return &EmailJSMailer{
		ServiceID:  config.AppConfig.EmailJSServiceID,
		TemplateID: config.AppConfig.EmailJSTemplateID,
		PublicKey:  config.AppConfig.EmailJSPublicKey,
		BaseURL:    config.AppConfig.EmailJSBaseURL,
	}
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// NotifyBooking sends the confirmation mail. Failures are logged and
// swallowed; the booking itself must never roll back because of mail.
func (m *EmailJSMailer) NotifyBooking(ctx context.Context, email string, details models.BookingDetails) bool {
	logger := utils.GetLogger()

	payload := emailJSRequest{
		ServiceID:  m.ServiceID,
		TemplateID: m.TemplateID,
		UserID:     m.PublicKey,
		TemplateParams: map[string]any{
			"to_email":   email,
			"room":       details.Room,
			"price":      details.Price,
			"nights":     details.Nights,
			"total":      details.Total,
			"booking_id": details.BookingID,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal booking confirmation payload", zap.Error(err))
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL, bytes.NewBuffer(body))
	if err != nil {
		logger.Error("Failed to build booking confirmation request", zap.Error(err))
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := emailHTTPClient.Do(req)
	if err != nil {
		logger.Error("Failed to send booking confirmation email", zap.Error(err))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("EmailJS returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("bookingId", details.BookingID))
		return false
	}

	logger.Info("Booking confirmation email sent successfully",
		zap.String("bookingId", details.BookingID))
	return true
}
