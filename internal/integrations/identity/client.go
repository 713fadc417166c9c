package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const signUpPath = "/sign-up/email"

// Client клиент провайдера учетных записей
type Client struct {
	http *resty.Client
	log  Logger
}

// NewClient создает новый экземпляр клиента провайдера учетных записей
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}
	return &Client{http: c, log: log}
}

// SignUp регистрирует пользователя с email и паролем
func (c *Client) SignUp(ctx context.Context, req *SignUpRequest) (*Account, error) {
	var (
		body    signUpResponse
		errBody ErrorResponse
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		SetError(&errBody).
		Post(signUpPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	// Обработка статус-кодов
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict, http.StatusUnprocessableEntity:
		c.log.Warn("Identity sign-up rejected for %s: %s", req.Email, errBody.Message)
		return nil, ErrEmailTaken
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode(), resp.String())
	}

	account := body.account()
	if account == nil {
		return nil, fmt.Errorf("%w: user id missing in sign-up response", ErrInvalidResponse)
	}
	if account.Email == "" {
		account.Email = req.Email
	}

	c.log.Info("Identity account %s created for %s", account.ID, account.Email)
	return account, nil
}
