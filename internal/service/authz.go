package service

import "github.com/fsdevblog/groph-points/internal/domain"

type Operation string

const (
	OpCreatePurchase    Operation = "transaction:create_purchase"
	OpCreateAdjustment  Operation = "transaction:create_adjustment"
	OpCreateTransfer    Operation = "transaction:create_transfer"
	OpTransferOnBehalf  Operation = "transaction:transfer_on_behalf"
	OpCreateRedemption  Operation = "transaction:create_redemption"
	OpProcessRedemption Operation = "transaction:process_redemption"
	OpLookupRedemption  Operation = "transaction:lookup_redemption"
	OpSetSuspicious     Operation = "transaction:set_suspicious"
	OpViewAnyRecord     Operation = "transaction:view_any"
	OpSearchAllRecords  Operation = "transaction:search_all"

	OpCreateUser Operation = "user:create"

	OpCreateEvent     Operation = "event:create"
	OpManageAnyEvent  Operation = "event:manage_any"
	OpAwardAnyEvent   Operation = "event:award_any"
	OpDeactivateEvent Operation = "event:deactivate"
)

// minRoleFor - таблица авторизации "операция -> минимальная роль". Правила принадлежности
// (самому себе, организатору события) накладываются сервисами поверх таблицы.
// Неизвестная операция запрещена для любой роли.
var minRoleFor = map[Operation]domain.RoleType{
	OpCreatePurchase:    domain.RoleCashier,
	OpCreateAdjustment:  domain.RoleManager,
	OpCreateTransfer:    domain.RoleRegular,
	OpTransferOnBehalf:  domain.RoleCashier,
	OpCreateRedemption:  domain.RoleRegular,
	OpProcessRedemption: domain.RoleCashier,
	OpLookupRedemption:  domain.RoleCashier,
	OpSetSuspicious:     domain.RoleManager,
	OpViewAnyRecord:     domain.RoleManager,
	OpSearchAllRecords:  domain.RoleManager,

	OpCreateUser: domain.RoleCashier,

	OpCreateEvent:     domain.RoleManager,
	OpManageAnyEvent:  domain.RoleManager,
	OpAwardAnyEvent:   domain.RoleManager,
	OpDeactivateEvent: domain.RoleManager,
}

// Allowed отвечает, разрешена ли операция роли.
func Allowed(role domain.RoleType, op Operation) bool {
	minRole, ok := minRoleFor[op]
	if !ok {
		return false
	}
	return role.AtLeast(minRole)
}
