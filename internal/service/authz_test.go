package service

import (
	"testing"

	"github.com/fsdevblog/groph-points/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		role domain.RoleType
		op   Operation
		want bool
	}{
		{"regular creates transfer", domain.RoleRegular, OpCreateTransfer, true},
		{"regular creates redemption", domain.RoleRegular, OpCreateRedemption, true},
		{"regular creates purchase", domain.RoleRegular, OpCreatePurchase, false},
		{"regular processes redemption", domain.RoleRegular, OpProcessRedemption, false},
		{"regular searches all records", domain.RoleRegular, OpSearchAllRecords, false},

		{"cashier creates purchase", domain.RoleCashier, OpCreatePurchase, true},
		{"cashier transfers on behalf", domain.RoleCashier, OpTransferOnBehalf, true},
		{"cashier processes redemption", domain.RoleCashier, OpProcessRedemption, true},
		{"cashier creates user", domain.RoleCashier, OpCreateUser, true},
		{"cashier creates adjustment", domain.RoleCashier, OpCreateAdjustment, false},
		{"cashier sets suspicious", domain.RoleCashier, OpSetSuspicious, false},
		{"cashier creates event", domain.RoleCashier, OpCreateEvent, false},

		{"manager creates adjustment", domain.RoleManager, OpCreateAdjustment, true},
		{"manager sets suspicious", domain.RoleManager, OpSetSuspicious, true},
		{"manager views any record", domain.RoleManager, OpViewAnyRecord, true},
		{"manager manages any event", domain.RoleManager, OpManageAnyEvent, true},

		{"superuser inherits everything", domain.RoleSuperuser, OpCreateAdjustment, true},
		{"superuser creates purchase", domain.RoleSuperuser, OpCreatePurchase, true},

		{"unknown operation is denied", domain.RoleSuperuser, Operation("unknown:op"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Allowed(c.role, c.op))
		})
	}
}
