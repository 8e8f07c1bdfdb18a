// clients — HTTP-клиент публичного эндпоинта /api/top10 для CLI.
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
)

// ErrRequestFailed — сервер ответил не-2xx или не ответил вовсе.
var ErrRequestFailed = errors.New("request failed")

// Top10 ходит в GET <base>/api/top10.
type Top10 struct {
	http     *http.Client
	endpoint string
}

// New создаёт клиента. base — адрес сервера вида http://localhost:50090.
func New(base string, client *http.Client) (*Top10, error) {
	const op = "clients/top10/New"

	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: invalid base url %q", op, base)
	}

	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &Top10{http: client, endpoint: u.String() + "/api/top10"}, nil
}

type errorBody struct {
	Error string `json:"error"`
}

// Top загружает текущий топ. При не-2xx возвращает ошибку с текстом из {"error": ...}.
func (c *Top10) Top(ctx context.Context) ([]models.Post, error) {
	const op = "clients/top10/Top"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.From(ctx).Warn("http_error",
			slog.String("op", op),
			slog.String("url", c.endpoint),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %v: %w", op, err, ErrRequestFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if json.Unmarshal(raw, &body) != nil || body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%s: status=%d: %s: %w", op, resp.StatusCode, body.Error, ErrRequestFailed)
	}

	var posts []models.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return posts, nil
}
