package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент справочного сервиса (мастера, салоны, услуги)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочного сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMaster получает профиль мастера по ID
func (c *Client) GetMaster(ctx context.Context, masterID int64) (*Master, error) {
	url := fmt.Sprintf("%s/internal/masters/%d", c.baseURL, masterID)

	var master Master
	if err := c.getJSON(ctx, url, &master, ErrMasterNotFound); err != nil {
		return nil, err
	}

	return &master, nil
}

// GetSalon получает профиль салона по ID
func (c *Client) GetSalon(ctx context.Context, salonID int64) (*Salon, error) {
	url := fmt.Sprintf("%s/internal/salons/%d", c.baseURL, salonID)

	var salon Salon
	if err := c.getJSON(ctx, url, &salon, ErrSalonNotFound); err != nil {
		return nil, err
	}

	return &salon, nil
}

// GetServices получает услуги по списку ID. Если хотя бы одна услуга
// не найдена, возвращается ErrServiceNotFound.
func (c *Client) GetServices(ctx context.Context, serviceIDs []int64) ([]Service, error) {
	ids := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	url := fmt.Sprintf("%s/internal/services?ids=%s", c.baseURL, strings.Join(ids, ","))

	var services []Service
	if err := c.getJSON(ctx, url, &services, ErrServiceNotFound); err != nil {
		return nil, err
	}

	if len(services) != len(serviceIDs) {
		return nil, fmt.Errorf("%w: requested %d services, got %d", ErrServiceNotFound, len(serviceIDs), len(services))
	}

	return services, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dst interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
