// producthunt — клиент Product Hunt API v2 (GraphQL) с OAuth2 client credentials.
package producthunt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/pribylovaa/producthunt-top10/internal/config"
	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
	"github.com/pribylovaa/producthunt-top10/internal/service"
)

const topPostsQuery = `query GetTopPosts($postedAfter: DateTime!, $postedBefore: DateTime!, $first: Int!) {
  posts(postedAfter: $postedAfter, postedBefore: $postedBefore, order: VOTES, first: $first) {
    edges {
      node {
        name
        tagline
        votesCount
        createdAt
        url
      }
    }
  }
}`

// Client реализует service.Source поверх GraphQL-эндпоинта Product Hunt.
//
// Токен получается и обновляется транспортом oauth2 автоматически;
// ошибка получения токена приходит как ошибка транспорта.
type Client struct {
	http     *http.Client
	endpoint string
}

// New создаёт клиента по конфигурации апстрима.
// base — транспорт для запросов за токеном и к API (nil = http.DefaultTransport).
//
// Запрос за токеном выполняется на ctx конструктора, а не на контексте
// вызова, поэтому он ограничен отдельно: клиентом с cfg.Timeout.
func New(ctx context.Context, cfg config.UpstreamConfig, base *http.Client) *Client {
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	tokenHTTP := &http.Client{Timeout: timeout}
	if base != nil {
		tokenHTTP.Transport = base.Transport
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, tokenHTTP)

	hc := cc.Client(ctx)
	hc.Timeout = timeout

	return &Client{http: hc, endpoint: cfg.GraphQLURL}
}

type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type gqlError struct {
	Message string `json:"message"`
}

type topPostsResponse struct {
	Data *struct {
		Posts *struct {
			Edges []struct {
				Node models.RawPost `json:"node"`
			} `json:"edges"`
		} `json:"posts"`
	} `json:"data"`
	Errors []gqlError `json:"errors"`
}

// TopPosts запрашивает до limit постов за окно [after, before] в порядке VOTES.
func (c *Client) TopPosts(ctx context.Context, after, before time.Time, limit int) ([]models.RawPost, error) {
	const op = "producthunt/client/TopPosts"

	lg := log.From(ctx)

	body, err := json.Marshal(gqlRequest{
		Query: topPostsQuery,
		Variables: map[string]any{
			"postedAfter":  after.UTC().Format(time.RFC3339),
			"postedBefore": before.UTC().Format(time.RFC3339),
			"first":        limit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: marshal: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", c.endpoint),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %v: %w", op, err, service.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		lg.Warn("upstream_bad_status",
			slog.String("op", op),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)
		return nil, fmt.Errorf("%s: status=%d: %w", op, resp.StatusCode, service.ErrUpstreamUnavailable)
	}

	var doc topPostsResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: decode: %v: %w", op, err, service.ErrMalformedPayload)
	}

	if len(doc.Errors) > 0 {
		lg.Warn("graphql_errors",
			slog.String("op", op),
			slog.String("first", doc.Errors[0].Message),
			slog.Int("count", len(doc.Errors)),
		)
	}

	if doc.Data == nil || doc.Data.Posts == nil || doc.Data.Posts.Edges == nil {
		return nil, fmt.Errorf("%s: missing data.posts.edges: %w", op, service.ErrMalformedPayload)
	}

	output := make([]models.RawPost, 0, len(doc.Data.Posts.Edges))
	for _, e := range doc.Data.Posts.Edges {
		output = append(output, e.Node)
	}

	return output, nil
}
