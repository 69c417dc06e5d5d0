package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProfile получает профиль пользователя
func (c *Client) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/internal/users/%s/profile", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &profile, nil
}

// GetProfileWithGracefulDegradation получает профиль с graceful degradation.
// ErrUserNotFound пробрасывается как есть, любая другая ошибка превращается в ErrServiceDegraded.
func (c *Client) GetProfileWithGracefulDegradation(ctx context.Context, userID string) (*Profile, error) {
	c.log.Info("Fetching profile for user_id=%s", userID)

	profile, err := c.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("No profile found for user_id=%s", userID)
			return nil, err
		}

		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("UserService unavailable, applying graceful degradation for user_id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%s, error=%v", ErrServiceDegraded, userID, err)
	}

	return profile, nil
}
