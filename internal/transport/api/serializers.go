package api

import (
	"time"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/shopspring/decimal"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

func serializeUser(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Verified:  u.Verified,
		CreatedAt: u.CreatedAt,
	}
}

type transactionResponse struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId"`
	Type        string           `json:"type"`
	Amount      int64            `json:"amount"`
	Spent       *decimal.Decimal `json:"spent,omitempty"`
	RelatedID   *int64           `json:"relatedId"`
	CreatedBy   int64            `json:"createdBy"`
	Processed   bool             `json:"processed"`
	ProcessedBy *int64           `json:"processedBy,omitempty"`
	Suspicious  bool             `json:"suspicious"`
	Remark      string           `json:"remark,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func serializeTransaction(t *domain.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		RelatedID:   t.RelatedID,
		CreatedBy:   t.CreatedBy,
		Processed:   t.Processed,
		ProcessedBy: t.ProcessedBy,
		Suspicious:  t.Suspicious,
		Remark:      t.Remark,
		CreatedAt:   t.CreatedAt,
	}
	if t.Type == domain.TransactionPurchase {
		spent := t.Spent
		resp.Spent = &spent
	}
	return resp
}

func serializeTransactions(items []domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(items))
	for i := range items {
		out = append(out, serializeTransaction(&items[i]))
	}
	return out
}

type eventResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	StartsAt      time.Time `json:"startsAt"`
	EndsAt        time.Time `json:"endsAt"`
	Capacity      int64     `json:"capacity"`
	PointsBudget  int64     `json:"pointsBudget"`
	PointsAwarded int64     `json:"pointsAwarded"`
	Published     bool      `json:"published"`
	Active        bool      `json:"active"`
	Organizers    []int64   `json:"organizers"`
	Guests        []int64   `json:"guests"`
}

func serializeEvent(e *domain.Event) eventResponse {
	return eventResponse{
		ID:            e.ID,
		Name:          e.Name,
		StartsAt:      e.StartsAt,
		EndsAt:        e.EndsAt,
		Capacity:      e.Capacity,
		PointsBudget:  e.PointsBudget,
		PointsAwarded: e.PointsAwarded,
		Published:     e.Published,
		Active:        e.Active,
		Organizers:    e.Organizers,
		Guests:        e.Guests,
	}
}

type pageResponse struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}
