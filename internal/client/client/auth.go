package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/farmchainx/internal/client/models"
)

// LoginReply is the normalised login response. Exactly one of Session and
// Rejection is set.
type LoginReply struct {
	Session *models.Session

	// Rejection is the backend's plain-string failure message.
	Rejection string
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm) (string, error) {
	type reply struct {
		Message string `json:"message"`
	}
	r, err := call[reply](ctx, c, http.MethodPost, "/auth/register", nil, form)
	if err != nil {
		return "", err
	}
	return r.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginReply, error) {
	return c.login(ctx, "/auth/login", email, password)
}

func (c *HTTPClient) AdminLogin(ctx context.Context, email, password string) (LoginReply, error) {
	return c.login(ctx, "/admin/login", email, password)
}

func (c *HTTPClient) login(ctx context.Context, path, email, password string) (LoginReply, error) {
	data, err := c.do(ctx, http.MethodPost, path, nil, credentials{Email: email, Password: password})
	if err != nil {
		return LoginReply{}, err
	}
	return parseLoginReply(data)
}

// parseLoginReply tells a session object apart from a bare string body.
// A JSON string literal and non-JSON text are both rejections.
func parseLoginReply(data []byte) (LoginReply, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return LoginReply{}, fmt.Errorf("%w: login: empty body", ErrBadResponse)
	}

	if !json.Valid(trimmed) {
		return LoginReply{Rejection: string(trimmed)}, nil
	}

	switch {
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return LoginReply{}, fmt.Errorf("%w: login: %v", ErrBadResponse, err)
		}
		return LoginReply{Rejection: s}, nil
	case trimmed[0] == '{':
		var s models.Session
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return LoginReply{}, fmt.Errorf("%w: login: %v", ErrBadResponse, err)
		}
		if err := s.Validate(); err != nil {
			return LoginReply{}, fmt.Errorf("%w: login: %v", ErrBadResponse, err)
		}
		return LoginReply{Session: &s}, nil
	default:
		return LoginReply{}, fmt.Errorf("%w: login: body is neither a string nor an object", ErrBadResponse)
	}
}

func (c *HTTPClient) AdminRegister(ctx context.Context, form models.RegisterForm) (*models.Session, error) {
	form.Role = models.RoleAdmin
	s, err := call[models.Session](ctx, c, http.MethodPost, "/admin/register", nil, form)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) CheckEmail(ctx context.Context, email string) (bool, error) {
	type reply struct {
		Exists bool `json:"exists"`
	}
	r, err := getJSON[reply](ctx, c, "/auth/check-email", url.Values{"email": {email}})
	if err != nil {
		return false, err
	}
	return r.Exists, nil
}
