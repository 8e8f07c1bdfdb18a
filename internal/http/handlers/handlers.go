package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/models"
)

// TopService — то, что HTTP-слою нужно от сервиса.
type TopService interface {
	Top(ctx context.Context) ([]models.Post, error)
	ExportPDF(posts []models.Post, spec models.SortSpec, w io.Writer) (string, error)
	Summary(posts []models.Post, date time.Time) string
	Now() time.Time
}

// Handlers агрегирует зависимости HTTP-обработчиков.
type Handlers struct {
	Service TopService
}

func New(s TopService) *Handlers {
	return &Handlers{Service: s}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
