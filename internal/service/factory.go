package service

import (
	"fmt"

	"github.com/fsdevblog/groph-points/pkg/uow"
	"github.com/shopspring/decimal"
)

type AppServices struct {
	UserService        *UserService
	TransactionService *TransactionService
	EventService       *EventService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, pointsRate decimal.Decimal) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	transactionService, transactionServiceErr := NewTransactionService(unitOfWork, pointsRate)
	if transactionServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", transactionServiceErr.Error())
	}

	eventService, eventServiceErr := NewEventService(unitOfWork)
	if eventServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", eventServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		TransactionService: transactionService,
		EventService:       eventService,
	}, nil
}
