package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionCreate struct {
	UserID     int64
	Type       domain.TransactionType
	Amount     int64
	Spent      decimal.Decimal
	RelatedID  *int64
	CreatedBy  int64
	Suspicious bool
	Remark     string
}

type AmountOperator string

const (
	AmountGTE AmountOperator = "gte"
	AmountLTE AmountOperator = "lte"
)

// TransactionFilter - условия выборки по журналу. Nil-поля не участвуют в фильтрации.
// RelatedIDNull - явный сентинел "related_id IS NULL"; взаимоисключающий с RelatedID.
type TransactionFilter struct {
	UserID        *int64
	Type          *domain.TransactionType
	Amount        *int64
	AmountOp      AmountOperator
	RelatedID     *int64
	RelatedIDNull bool
	Suspicious    *bool
	Processed     *bool
	CreatedBy     *int64
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}
