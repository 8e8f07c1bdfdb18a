// service содержит бизнес-логику сервиса Product Hunt Top 10:
// загрузку топа из апстрима, его нормализацию и сборку экспорта.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/config"
	"github.com/pribylovaa/producthunt-top10/internal/models"
)

//go:generate mockgen -source=service.go -destination=../../mocks/mock_source.go -package=mocks

var (
	// ErrUpstreamUnavailable — апстрим недоступен или ответил не-2xx.
	// Транспорт: 502.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrMalformedPayload — ответ апстрима не той формы.
	// Транспорт: 502, для вызывающего неотличимо от ErrUpstreamUnavailable.
	ErrMalformedPayload = errors.New("malformed upstream payload")
	// ErrInvalidArgument — некорректные входные аргументы (сортировка и т.п.).
	// Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Source описывает апстрим, отдающий посты за окно [after, before].
//
// Требования к реализации:
//  1. вернуть не более limit постов, упорядочивание не требуется;
//  2. ошибки транспорта и не-2xx оборачивать в ErrUpstreamUnavailable,
//     ошибки формы ответа — в ErrMalformedPayload;
//  3. уважать ctx (отмена/таймауты).
type Source interface {
	TopPosts(ctx context.Context, after, before time.Time, limit int) ([]models.RawPost, error)
}

// Service — описывает бизнес-логику сервиса.
type Service struct {
	source Source
	cfg    config.Config
	now    func() time.Time
}

// New создает новый экземпляр Service.
func New(source Source, cfg config.Config) *Service {
	return &Service{
		source: source,
		cfg:    cfg,
		now:    time.Now,
	}
}
