package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ============================================================================
// TRANSACTIONAL EMAIL CLIENT (Resend-style API)
// ============================================================================

// EmailSender delivers the finished plan. Failures never fail the request;
// the handler records them as status fields.
type EmailSender interface {
	SendPlan(ctx context.Context, to, address string, region Region, district WaterDistrict, pdf []byte) error
}

type emailAttachment struct {
	Filename    string `json:"filename"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Disposition string `json:"disposition"`
}

type emailRequest struct {
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html"`
	Attachments []emailAttachment `json:"attachments,omitempty"`
}

type emailErrorResponse struct {
	Message string `json:"message"`
}

// ResendClient sends plan emails through the Resend HTTP API.
type ResendClient struct {
	http   *resty.Client
	from   string
	logger *zap.Logger
	now    func() time.Time
}

func NewResendClient(baseURL, apiKey, from string, logger *zap.Logger) *ResendClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &ResendClient{http: client, from: from, logger: logger, now: time.Now}
}

func (c *ResendClient) SendPlan(ctx context.Context, to, address string, region Region, district WaterDistrict, pdf []byte) error {
	if c.from == "" {
		return fmt.Errorf("mail sender address not configured")
	}

	req := emailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: fmt.Sprintf("Your Marin Native Garden Plan - %s", address),
		HTML:    planEmailBody(address, region, district),
	}
	if len(pdf) > 0 {
		req.Attachments = []emailAttachment{{
			Filename:    fmt.Sprintf("marin-garden-plan-%d.pdf", c.now().UnixMilli()),
			Content:     base64.StdEncoding.EncodeToString(pdf),
			Type:        "application/pdf",
			Disposition: "attachment",
		}}
	}

	var apiErr emailErrorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return fmt.Errorf("send email: %s (status %d)", apiErr.Message, resp.StatusCode())
		}
		return fmt.Errorf("send email: status %d", resp.StatusCode())
	}

	c.logger.Info("plan email sent", zap.String("to", to))
	return nil
}

func planEmailBody(address string, region Region, district WaterDistrict) string {
	return fmt.Sprintf(`
<h2>Your Marin Native Garden Plan</h2>
<p>Thank you for using the Marin Native Garden Planner!</p>
<p><strong>Address:</strong> %s</p>
<p><strong>Plant Community:</strong> %s</p>
<p><strong>Water District:</strong> %s</p>
<p>Your personalized garden plan is attached as a PDF. This plan includes:</p>
<ul>
  <li>Native plants recommended for your location</li>
  <li>Seasonal photos of each plant</li>
  <li>Detailed plant information and growing requirements</li>
  <li>Water district rebate information</li>
</ul>
<p>Happy gardening!</p>
`, address, region, district)
}
