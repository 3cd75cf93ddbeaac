package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dinesh-manogaran/Career-Compass/internal/config"
	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// RemoteError is a non-2xx reply from the Career Compass API. Detail carries
// the server's own message when the body had one.
type RemoteError struct {
	StatusCode int
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("remote rejected request (%d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("remote rejected request (%d)", e.StatusCode)
}

// IsSessionLoss reports whether err is the protected endpoint refusing the
// bearer token. Callers treat this as session expiry, not a plain failure.
func IsSessionLoss(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == 401
}

// Detail extracts the server-supplied message from err, if it was a rejection
// that carried one.
func Detail(err error) string {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Detail
	}
	return ""
}

type CompassServiceInterface interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	AnalyzeMatch(ctx context.Context, token string, jd, resume *model.UploadedDocument) (*model.MatchResult, error)
	CareerQuery(ctx context.Context, question string) (string, error)
}

// CompassService talks to the remote Career Compass API. It owns no state
// beyond the resty client; session handling stays with the callers.
type CompassService struct {
	client *resty.Client
}

func NewCompassService() *CompassService {
	cfg := config.LoadCompassConfig()
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	return &CompassService{client: client}
}

// NewCompassServiceWithBaseURL is used by tests to point at a local stub.
func NewCompassServiceWithBaseURL(baseURL string) *CompassService {
	return &CompassService{client: resty.New().SetBaseURL(baseURL)}
}

func rejection(resp *resty.Response) *RemoteError {
	return &RemoteError{
		StatusCode: resp.StatusCode(),
		Detail:     gjson.Get(resp.String(), "detail").String(),
	}
}

func (s *CompassService) Register(ctx context.Context, email, password string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/register")
	if err != nil {
		log.Error().Err(err).Msg("register request failed")
		return err
	}
	if !resp.IsSuccess() {
		return rejection(resp)
	}
	return nil
}

func (s *CompassService) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/auth/login")
	if err != nil {
		log.Error().Err(err).Msg("login request failed")
		return "", err
	}
	if !resp.IsSuccess() {
		return "", rejection(resp)
	}

	token := gjson.Get(resp.String(), "access_token").String()
	if token == "" {
		return "", fmt.Errorf("login response missing access_token")
	}
	return token, nil
}

func (s *CompassService) AnalyzeMatch(ctx context.Context, token string, jd, resume *model.UploadedDocument) (*model.MatchResult, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetFileReader("jd_file", jd.Name, bytes.NewReader(jd.Data)).
		SetFileReader("resume_file", resume.Name, bytes.NewReader(resume.Data)).
		Post("/analyze_match_upload")
	if err != nil {
		log.Error().Err(err).Msg("analyze request failed")
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, rejection(resp)
	}

	var result model.MatchResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Error().Err(err).Msg("analyze response body malformed")
		return nil, fmt.Errorf("malformed analyze response: %w", err)
	}
	return &result, nil
}

func (s *CompassService) CareerQuery(ctx context.Context, question string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"question": question}).
		Post("/career_query")
	if err != nil {
		log.Error().Err(err).Msg("career query request failed")
		return "", err
	}
	if !resp.IsSuccess() {
		return "", rejection(resp)
	}

	return gjson.Get(resp.String(), "answer").String(), nil
}
