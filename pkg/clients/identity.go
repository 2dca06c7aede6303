package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sorumat/sorumat-go/pkg/configs"
	_interface "github.com/sorumat/sorumat-go/pkg/interfaces"
	structure "github.com/sorumat/sorumat-go/pkg/types/structures"
	"github.com/sorumat/sorumat-go/pkg/utils"
)

// IdentityClient talks to the external identity provider. Account creation
// and credential verification are fully delegated; this client only owns the
// request/response contract.
type IdentityClient struct {
	_interface.Service
}

// NewIdentityClient creates a new identity provider client.
func NewIdentityClient(config *configs.EnvConfig) *IdentityClient {
	return &IdentityClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: 10 * time.Second,
			},
			Config: config,
		},
	}
}

// Signup creates an account with the identity provider.
func (c *IdentityClient) Signup(email, password string) (*structure.AuthSession, int, error) {
	return c.postCredentials("/auth/v1/signup", email, password)
}

// Signin exchanges credentials for a session.
func (c *IdentityClient) Signin(email, password string) (*structure.AuthSession, int, error) {
	return c.postCredentials("/auth/v1/token?grant_type=password", email, password)
}

func (c *IdentityClient) postCredentials(path, email, password string) (*structure.AuthSession, int, error) {
	if c.Config.Auth.BaseURL == "" {
		return nil, http.StatusServiceUnavailable, fmt.Errorf("identity provider is not configured")
	}

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.Config.Auth.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.Config.Auth.APIKey)

	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall("identity", http.StatusBadGateway, time.Since(start).Seconds())
		return nil, http.StatusBadGateway, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()
	utils.RecordApiCall("identity", resp.StatusCode, time.Since(start).Seconds())

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadGateway, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var provErr structure.AuthError
		if err := json.Unmarshal(payload, &provErr); err == nil {
			msg := provErr.ErrorDescription
			if msg == "" {
				msg = provErr.Message
			}
			if msg == "" {
				msg = provErr.Error
			}
			if msg != "" {
				return nil, resp.StatusCode, fmt.Errorf("%s", msg)
			}
		}
		return nil, resp.StatusCode, fmt.Errorf("identity provider returned HTTP %d", resp.StatusCode)
	}

	var session structure.AuthSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, http.StatusBadGateway, fmt.Errorf("failed to parse provider response: %w", err)
	}

	return &session, resp.StatusCode, nil
}
