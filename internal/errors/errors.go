// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает доменную ошибку сервиса, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное сообщение без утечки деталей апстрима.
//
// Тело ответа плоское, поле error совместимо с клиентами, которые читают
// только {"error": "..."}.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// ErrorResponse — единый формат ошибки.
// Error — безопасное человекочитаемое описание.
// Code — короткий стабильный код для машиночитаемой обработки.
// RequestID — прокидывается из X-Request-Id, если есть.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// ToHTTP конвертирует ошибку сервиса в HTTP-статус и тело ответа.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - ErrUpstreamUnavailable и ErrMalformedPayload — 502, для клиента неразличимы;
//   - ErrInvalidArgument и models.ErrInvalidSort — 400;
//   - context.DeadlineExceeded — 504;
//   - context.Canceled — 499;
//   - прочее — 500/internal.
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := classify(err)
	return status, ErrorResponse{Error: msg, Code: code}
}

// WriteError — хелпер для HTTP-хендлеров.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func classify(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrUpstreamUnavailable),
		errors.Is(err, service.ErrMalformedPayload):
		return http.StatusBadGateway, "upstream_unavailable", "failed to fetch data from Product Hunt API"
	case errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, models.ErrInvalidSort):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "canceled", "canceled"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
