package models

import (
	"errors"
	"fmt"
)

// SortField — поле, по которому упорядочивается таблица.
type SortField string

const (
	SortByVotes     SortField = "votes"
	SortByCreatedAt SortField = "createdAt"
	SortByName      SortField = "name"
)

// SortDirection — направление сортировки.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ErrInvalidSort — неизвестное поле или направление.
var ErrInvalidSort = errors.New("invalid sort")

// SortSpec — пара (поле, направление), управляющая порядком таблицы и отчёта.
type SortSpec struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec — (votes, desc).
func DefaultSortSpec() SortSpec {
	return SortSpec{Field: SortByVotes, Direction: Descending}
}

// Toggle реализует клик по заголовку колонки: то же поле — смена направления,
// другое поле — новое поле и сброс на desc.
func (s SortSpec) Toggle(field SortField) SortSpec {
	if s.Field == field {
		return SortSpec{Field: field, Direction: s.Direction.Reverse()}
	}

	return SortSpec{Field: field, Direction: Descending}
}

// String — формат "votes (desc)" для подзаголовка отчёта.
func (s SortSpec) String() string {
	return fmt.Sprintf("%s (%s)", s.Field, s.Direction)
}

// Reverse возвращает противоположное направление.
func (d SortDirection) Reverse() SortDirection {
	if d == Ascending {
		return Descending
	}

	return Ascending
}

// Valid сообщает, известно ли поле.
func (f SortField) Valid() bool {
	switch f {
	case SortByVotes, SortByCreatedAt, SortByName:
		return true
	default:
		return false
	}
}

// Valid сообщает, известно ли направление.
func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

// ParseSortSpec разбирает пользовательский ввод (query-параметры, флаги CLI).
// Пустые значения заменяются значениями DefaultSortSpec.
func ParseSortSpec(field, direction string) (SortSpec, error) {
	spec := DefaultSortSpec()

	if field != "" {
		spec.Field = SortField(field)
	}

	if direction != "" {
		spec.Direction = SortDirection(direction)
	}

	if !spec.Field.Valid() {
		return SortSpec{}, fmt.Errorf("%w: field %q", ErrInvalidSort, field)
	}

	if !spec.Direction.Valid() {
		return SortSpec{}, fmt.Errorf("%w: direction %q", ErrInvalidSort, direction)
	}

	return spec, nil
}
