// models содержит доменные сущности сервиса Product Hunt Top 10.
// Эти типы используются слоями бизнес-логики, раскладки отчёта и транспорта.
package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// postNamespace — пространство имён для детерминированных идентификаторов постов.
var postNamespace = uuid.MustParse("6f1c2a52-3d4e-4b8a-9c1e-5a7d2f0b8e31")

// RawPost — пост в том виде, в котором его отдаёт апстрим.
// CreatedAt ещё не разобран: разбор и отбраковка выполняются сервисом.
type RawPost struct {
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	VotesCount int64  `json:"votesCount"`
	CreatedAt  string `json:"createdAt"`
	URL        string `json:"url"`
}

// Post — доменная сущность поста.
//
// Особенности:
//   - после создания не изменяется, сортировка и раскладка возвращают новые срезы;
//   - ID синтезируется при загрузке: апстрим не даёт идентификатора, а Name
//     не гарантированно уникален;
//   - CreatedAt — в UTC.
type Post struct {
	// ID — стабильный идентификатор, см. NewPostID.
	ID uuid.UUID `json:"id"`
	// Name — отображаемое имя продукта.
	Name string `json:"name"`
	// Tagline — произвольное описание, переносится по словам.
	Tagline string `json:"tagline"`
	// VotesCount — число голосов, неотрицательное.
	VotesCount int64 `json:"votesCount"`
	// CreatedAt — время публикации у источника.
	CreatedAt time.Time `json:"createdAt"`
	// URL — абсолютная ссылка на пост.
	URL string `json:"url"`
}

// NewPostID возвращает идентификатор, зависящий только от позиции в выдаче,
// имени и ссылки. Повторная загрузка той же выдачи даёт те же ID.
func NewPostID(position int, name, url string) uuid.UUID {
	return uuid.NewSHA1(postNamespace, []byte(strconv.Itoa(position)+"\x00"+name+"\x00"+url))
}
