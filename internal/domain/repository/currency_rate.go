package repository

import (
	"context"

	"github.com/nrad-K/go-vacancy-collector/internal/domain/model"
)

type CurrencyRateRepository interface {
	FetchRates(ctx context.Context) (model.RateTable, error)
}
