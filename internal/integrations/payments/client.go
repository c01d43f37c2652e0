package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного сервиса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitPayout передает распределение выручки платежному сервису
func (c *Client) SubmitPayout(ctx context.Context, req PayoutRequest) (*PayoutAck, error) {
	url := fmt.Sprintf("%s/internal/payouts", c.baseURL)

	var ack PayoutAck
	if err := c.postJSON(ctx, url, req, &ack); err != nil {
		return nil, err
	}

	c.log.Info("Payout submitted: booking=%s master=%.2f salon=%.2f payout_id=%s",
		req.BookingCode, req.MasterAmount, req.SalonAmount, ack.PayoutID)

	return &ack, nil
}

// SubmitRefund передает запрос на возврат средств платежному сервису
func (c *Client) SubmitRefund(ctx context.Context, req RefundRequest) (*RefundAck, error) {
	url := fmt.Sprintf("%s/internal/refunds", c.baseURL)

	var ack RefundAck
	if err := c.postJSON(ctx, url, req, &ack); err != nil {
		return nil, err
	}

	c.log.Info("Refund submitted: booking=%s amount=%.2f refund_id=%s",
		req.BookingCode, req.RefundAmount, ack.RefundID)

	return &ack, nil
}

func (c *Client) postJSON(ctx context.Context, url string, body interface{}, dst interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
