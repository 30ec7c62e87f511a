package repository

import (
	"context"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
)

type VacancyRepository interface {
	Save(ctx context.Context, keyword string, vacancies []model.Vacancy) error
	FindAll(ctx context.Context, keyword string) ([]model.Vacancy, error)
}
