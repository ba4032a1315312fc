package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// Client клиент для работы с сервисом персонала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса персонала
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaff получает роль и филиал сотрудника
func (c *Client) GetStaff(ctx context.Context, userID int64) (*Staff, error) {
	url := fmt.Sprintf("%s/internal/staff/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("StaffService request failed for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrStaffNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var staff Staff
	if err := json.NewDecoder(resp.Body).Decode(&staff); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !domain.Role(staff.Role).IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidResponse, staff.Role)
	}
	if !staff.IsActive {
		return nil, ErrStaffInactive
	}

	return &staff, nil
}

// ResolveActor возвращает исполнителя для пользователя
func (c *Client) ResolveActor(ctx context.Context, userID int64) (domain.Actor, error) {
	staff, err := c.GetStaff(ctx, userID)
	if err != nil {
		return domain.Actor{}, err
	}
	c.log.Info("Resolved staff user_id=%d role=%s", userID, staff.Role)
	return staff.Actor(), nil
}
