package domain

type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionAdjustment TransactionType = "adjustment"
	TransactionTransfer   TransactionType = "transfer"
	TransactionRedemption TransactionType = "redemption"
	TransactionEvent      TransactionType = "event"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionPurchase, TransactionAdjustment, TransactionTransfer,
		TransactionRedemption, TransactionEvent:
		return true
	}
	return false
}

type RoleType string

const (
	RoleRegular   RoleType = "regular"
	RoleCashier   RoleType = "cashier"
	RoleManager   RoleType = "manager"
	RoleSuperuser RoleType = "superuser"
)

// roleRank задает порядок старшинства ролей для сравнения "роль не ниже".
var roleRank = map[RoleType]int{
	RoleRegular:   0,
	RoleCashier:   1,
	RoleManager:   2,
	RoleSuperuser: 3,
}

func (r RoleType) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast возвращает true если роль r не ниже other.
func (r RoleType) AtLeast(other RoleType) bool {
	return roleRank[r] >= roleRank[other]
}
