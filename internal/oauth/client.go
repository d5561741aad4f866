package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SessionData - aserción de identidad devuelta por el proveedor externo.
type SessionData struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// Client intercambia un session id del flujo legacy por los datos de
// identidad del proveedor externo.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ExchangeSession llama GET <base>/session-data con el header X-Session-ID.
// Cualquier fallo acá es de infraestructura, no del cliente.
func (c *Client) ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/session-data", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session-data request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("auth provider returned status %d", resp.StatusCode)
	}

	var data SessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode auth provider response: %w", err)
	}

	if data.Email == "" || data.Name == "" {
		return nil, fmt.Errorf("auth provider response missing required user data")
	}
	if data.SessionToken == "" {
		return nil, fmt.Errorf("auth provider response missing session token")
	}

	return &data, nil
}
