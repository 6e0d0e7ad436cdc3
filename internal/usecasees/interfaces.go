package usecasees

import "saxo/internal/usecasees/structs"

//go:generate mockery --case=snake --name=AuthUC
//go:generate mockery --case=snake --name=OrderUC
//go:generate mockery --case=snake --name=InstrumentUC

type AuthUC interface {
	RequestToken(tokenReq *structs.TokenRequest) ([]byte, error)
}

type OrderUC interface {
	SelectOrderType(token string, order *structs.Order, selected structs.OrderType, prices ShapePrices) error
	SelectOrderDuration(order *structs.Order, selected structs.DurationType) error
	PreCheck(token string, order *structs.Order) ([]byte, error)
	Place(token string, order *structs.Order, useRequestIDHeader bool) ([]byte, error)
	Modify(token string, order *structs.Order, useRequestIDHeader bool) ([]byte, error)
	Cancel(token string) ([]byte, error)
}

type InstrumentUC interface {
	GetSeries(token string, optionRootID int64) ([]byte, error)
	Validate(token string, order *structs.Order) ([]byte, []string, error)
	GetCosts(token string, optionRootID int64) ([]byte, error)
}
