package service

import (
	"strings"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/models"
)

// finalizePost доводит запись апстрима до инвариантов домена:
//   - Name обязателен (после TrimSpace) — иначе запись отбрасывается;
//   - CreatedAt должен разбираться как RFC 3339 — иначе запись отбрасывается;
//   - VotesCount < 0 приводится к 0;
//   - ID := models.NewPostID(position, name, url).
//
// Возвращает (пост, ok=false если запись следует отбросить).
func finalizePost(raw models.RawPost, position int) (models.Post, bool) {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		return models.Post{}, false
	}

	createdAt, err := time.Parse(time.RFC3339, strings.TrimSpace(raw.CreatedAt))
	if err != nil {
		return models.Post{}, false
	}

	url := strings.TrimSpace(raw.URL)

	return models.Post{
		ID:         models.NewPostID(position, name, url),
		Name:       name,
		Tagline:    strings.TrimSpace(raw.Tagline),
		VotesCount: max(raw.VotesCount, 0),
		CreatedAt:  createdAt.UTC(),
		URL:        url,
	}, true
}
