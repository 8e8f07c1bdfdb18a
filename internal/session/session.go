// session — состояние одного пользовательского сеанса просмотра топа.
//
// Состояние меняется только именованными действиями: Fetch (запрос, успех,
// ошибка), ToggleSort, Export и Summary. Экспорт и сводка работают над уже
// загруженным набором и никогда не загружают данные заново.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/layout"
	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
	"github.com/pribylovaa/producthunt-top10/internal/ranking"
	"github.com/pribylovaa/producthunt-top10/internal/report"
	"github.com/pribylovaa/producthunt-top10/internal/stats"
)

//go:generate mockgen -source=session.go -destination=../../mocks/mock_fetcher.go -package=mocks

// ErrFetchInProgress — загрузка уже идёт, второй запрос не запускается.
var ErrFetchInProgress = errors.New("fetch already in progress")

// Fetcher — источник текущего топа.
type Fetcher interface {
	Top(ctx context.Context) ([]models.Post, error)
}

// Options — тексты отчёта и сводки.
type Options struct {
	Report       report.Options
	SummaryTitle string
	FilePrefix   string
}

// View — снимок состояния для отрисовки.
type View struct {
	Posts       []models.Post
	Stats       stats.Stats
	Sort        models.SortSpec
	Loading     bool
	Err         error
	LastUpdated time.Time
}

// Session — владелец состояния сеанса.
type Session struct {
	fetcher Fetcher
	opts    Options
	metrics layout.Metrics
	now     func() time.Time

	mu          sync.Mutex
	posts       []models.Post
	sort        models.SortSpec
	loading     bool
	err         error
	lastUpdated time.Time
}

// New создаёт сеанс с сортировкой по умолчанию (votes, desc).
func New(fetcher Fetcher, opts Options) *Session {
	return &Session{
		fetcher: fetcher,
		opts:    opts,
		metrics: report.NewPDFMetrics(),
		now:     time.Now,
		sort:    models.DefaultSortSpec(),
	}
}

// Fetch загружает топ и атомарно заменяет набор записей.
// При ошибке прежние записи остаются, ошибка видна в View().Err.
func (s *Session) Fetch(ctx context.Context) error {
	const op = "session/Fetch"

	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return ErrFetchInProgress
	}
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	posts, err := s.fetcher.Top(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = err
		log.From(ctx).Warn("fetch_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.posts = posts
	s.lastUpdated = s.now()
	log.From(ctx).Debug("fetch_succeeded",
		slog.String("op", op),
		slog.Int("count", len(posts)),
	)

	return nil
}

// ToggleSort — клик по заголовку колонки.
func (s *Session) ToggleSort(field models.SortField) (models.SortSpec, error) {
	if !field.Valid() {
		return s.Sort(), fmt.Errorf("%w: field %q", models.ErrInvalidSort, field)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = s.sort.Toggle(field)
	return s.sort, nil
}

// SortBy переключает сортировку кликами до нужной пары (поле, направление).
func (s *Session) SortBy(spec models.SortSpec) error {
	if !spec.Field.Valid() || !spec.Direction.Valid() {
		return fmt.Errorf("%w: %s", models.ErrInvalidSort, spec)
	}

	for i := 0; i < 2 && s.Sort() != spec; i++ {
		if _, err := s.ToggleSort(spec.Field); err != nil {
			return err
		}
	}

	return nil
}

// Sort — текущая сортировка.
func (s *Session) Sort() models.SortSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sort
}

// View возвращает записи в текущем порядке и статистику по ним.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	return View{
		Posts:       ranking.Rank(s.posts, s.sort),
		Stats:       stats.Summarize(s.posts),
		Sort:        s.sort,
		Loading:     s.loading,
		Err:         s.err,
		LastUpdated: s.lastUpdated,
	}
}

// Export рисует PDF по загруженным записям в текущем порядке.
// Возвращает имя файла вида <prefix>-<YYYY-MM-DD>.pdf.
func (s *Session) Export(w io.Writer) (string, error) {
	const op = "session/Export"

	s.mu.Lock()
	posts, spec := s.posts, s.sort
	s.mu.Unlock()

	exp := report.Export{Options: s.opts.Report, Metrics: s.metrics, FilePrefix: s.opts.FilePrefix}
	name, err := exp.WritePDF(w, posts, spec, s.now())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return name, nil
}

// Summary — текст для буфера обмена. Дата — время последней удачной загрузки,
// если она была, иначе текущее время.
func (s *Session) Summary() string {
	s.mu.Lock()
	posts, date := s.posts, s.lastUpdated
	s.mu.Unlock()

	if date.IsZero() {
		date = s.now()
	}

	return report.Summary(s.opts.SummaryTitle, posts, date)
}
