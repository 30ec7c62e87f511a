package model

import (
	"github.com/google/uuid"
)

// SearchSessionは、1回の検索実行で得られたキーワードと求人一覧です。
type SearchSession struct {
	ID        uuid.UUID
	Keyword   string
	Vacancies []Vacancy
}

func NewSearchSession(keyword string) SearchSession {
	return SearchSession{
		ID:      uuid.New(),
		Keyword: keyword,
	}
}
