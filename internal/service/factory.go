package service

import (
	"fmt"

	"github.com/paxosraft/quorumbot/pkg/uow"
)

type AppServices struct {
	Ledger *LedgerService
	Trader *TradeService
}

func Factory(unitOfWork uow.UOW, quoter Quoter) (*AppServices, error) {
	ledger, ledgerErr := NewLedgerService(unitOfWork)
	if ledgerErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerErr.Error())
	}

	trader := NewTradeService(ledger, quoter)

	return &AppServices{
		Ledger: ledger,
		Trader: trader,
	}, nil
}
