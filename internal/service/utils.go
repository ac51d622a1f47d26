package service

import (
	"context"
	"errors"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/fsdevblog/groph-points/internal/metrics"
	"github.com/shopspring/decimal"
)

// maxConflictAttempts - сколько раз повторяем атомарную секцию check-then-write,
// проигравшую конкурентную гонку, прежде чем отдать ErrConflict наверх.
const maxConflictAttempts = 3

// withConflictRetry выполняет fn, повторяя ее при domain.ErrConflict. Любая другая
// ошибка (и успех) возвращается сразу.
func withConflictRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxConflictAttempts; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr //nolint:wrapcheck
		}
		err = fn()
		if err == nil || !errors.Is(err, domain.ErrConflict) {
			return err
		}
		metrics.ConflictRetries.Inc()
	}
	return err
}

// pointsForSpent конвертирует потраченную сумму в баллы по курсу rate (баллов за единицу
// валюты), округляя к ближайшему целому.
func pointsForSpent(spent decimal.Decimal, rate decimal.Decimal) int64 {
	return spent.Mul(rate).Round(0).IntPart()
}
