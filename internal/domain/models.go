package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
	Role      RoleType
	Verified  bool
}

// Transaction - запись журнала баллов. После создания запись неизменна, за исключением
// флагов Suspicious и Processed/ProcessedBy (меняются только через сервисный слой).
type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Type        TransactionType
	Amount      int64
	Spent       decimal.Decimal
	RelatedID   *int64
	CreatedBy   int64
	Processed   bool
	ProcessedBy *int64
	Suspicious  bool
	Remark      string
}

type Event struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	StartsAt      time.Time
	EndsAt        time.Time
	Capacity      int64
	PointsBudget  int64
	PointsAwarded int64
	Published     bool
	Active        bool
	Organizers    []int64
	Guests        []int64
}

// IsOrganizer проверяет, является ли юзер организатором события.
func (e *Event) IsOrganizer(userID int64) bool {
	for _, id := range e.Organizers {
		if id == userID {
			return true
		}
	}
	return false
}

// IsGuest проверяет, присутствует ли юзер в списке гостей события.
func (e *Event) IsGuest(userID int64) bool {
	for _, id := range e.Guests {
		if id == userID {
			return true
		}
	}
	return false
}

// Actor - авторизованный инициатор операции. Заполняется транспортным слоем из токена,
// сервисный слой доверяет этим данным.
type Actor struct {
	ID   int64
	Role RoleType
}
