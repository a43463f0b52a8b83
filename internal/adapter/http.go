package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/store"
	"github.com/MKhiriev/go-note-share/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpServerAdapter struct {
	client   *resty.Client
	sessions store.SessionStore

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// apiCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Two client-wide hooks implement the token pipeline:
//   - before each request the bearer token is read from sessions and, when
//     present, attached as the Authorization header, along with a fresh
//     X-Request-Id for log correlation;
//   - after each response an HTTP 401 clears the persisted token, so the
//     next startup settles anonymous. The triggering call still sees its
//     own ErrUnauthorized from the per-call status mapping.
//
// Returns an error if apiCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(apiCfg config.ClientAPI, sessions store.SessionStore, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(apiCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	h := &httpServerAdapter{sessions: sessions, logger: logger}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())

		token, err := sessions.Load()
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				return nil
			}
			return fmt.Errorf("load session token: %w", err)
		}
		req.SetHeader("Authorization", "Bearer "+token)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			if err := sessions.Clear(); err != nil {
				logger.Error().Err(err).Msg("clear session after 401")
			}
		}
		return nil
	})

	h.client = client
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Me implements [ServerAdapter]. It GETs /auth/me and decodes the current
// user identity. Returns an error if the request fails or the server
// responds with a non-2xx status.
func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter]. It POSTs form-encoded credentials to
// POST /auth/login and decodes the returned token payload. The email is
// sent under the "username" form key per the backend's OAuth2 password
// flow. Returns an error if the request fails or the server rejects the
// credentials.
func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.Token, error) {
	var token models.Token

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": email,
			"password": password,
		}).
		SetResult(&token).
		Post("/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	if token.AccessToken == "" {
		return models.Token{}, fmt.Errorf("login response carries no access token")
	}

	return token, nil
}

// Register implements [ServerAdapter]. It POSTs the new account credentials
// as JSON to POST /auth/register and decodes the created user. No token is
// issued by this endpoint.
func (h *httpServerAdapter) Register(ctx context.Context, email, password string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RegisterRequest{Email: email, Password: password}).
		SetResult(&user).
		Post("/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListNotes implements [ServerAdapter]. It GETs /notes/ with the filter
// encoded as query parameters (status, q, limit); zero-valued fields are
// omitted.
func (h *httpServerAdapter) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, error) {
	var notes []models.Note

	req := h.client.R().
		SetContext(ctx).
		SetResult(&notes)

	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Query != "" {
		req.SetQueryParam("q", filter.Query)
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}

	resp, err := req.Get("/notes/")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

// GetNote implements [ServerAdapter].
func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&note).
		Get(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// GetPublicNote implements [ServerAdapter]. The endpoint requires no
// authentication; a persisted token is still attached by the client-wide
// hook and ignored by the backend.
func (h *httpServerAdapter) GetPublicNote(ctx context.Context, tokenOrID string) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&note).
		Get("/notes/public/" + url.PathEscape(tokenOrID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get public note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// CreateNote implements [ServerAdapter].
func (h *httpServerAdapter) CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&note).
		Post("/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// UpdateNote implements [ServerAdapter].
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id int64, draft models.NoteDraft) (models.Note, error) {
	var note models.Note

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(draft).
		SetResult(&note).
		Put(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// DeleteNote implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// ShareNote implements [ServerAdapter]. Returns [ErrBadRequest] (wrapped)
// when the note is already shared with userID or userID is the owner, and
// [ErrNotFound] when the note or the target user does not exist.
func (h *httpServerAdapter) ShareNote(ctx context.Context, id int64, userID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ShareRequest{UserID: userID}).
		Post(fmt.Sprintf("/notes/%d/share", id))
	if err != nil {
		return fmt.Errorf("share note request: %w", err)
	}

	return mapHTTPError(resp)
}

// FindUsersByEmail implements [ServerAdapter].
func (h *httpServerAdapter) FindUsersByEmail(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&users).
		Get("/auth/users")
	if err != nil {
		return nil, fmt.Errorf("find users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}
