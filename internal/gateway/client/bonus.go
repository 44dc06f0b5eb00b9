package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type PrivilegeShort struct {
	Balance int    `json:"balance"`
	Status  string `json:"status"`
}

type HistoryItem struct {
	Date          string    `json:"date"`
	TicketUID     uuid.UUID `json:"ticketUid"`
	BalanceDiff   int       `json:"balanceDiff"`
	OperationType string    `json:"operationType"`
}

type Privilege struct {
	Balance int           `json:"balance"`
	Status  string        `json:"status"`
	History []HistoryItem `json:"history"`
}

type OperationResult struct {
	PaidByBonuses int            `json:"paidByBonuses"`
	BalanceDiff   int            `json:"balanceDiff"`
	Privilege     PrivilegeShort `json:"privilege"`
}

type bonusOperationRequest struct {
	TicketUID       uuid.UUID `json:"ticketUid"`
	Price           int       `json:"price"`
	PaidFromBalance bool      `json:"paidFromBalance"`
}

type rollbackRequest struct {
	TicketUID uuid.UUID `json:"ticketUid"`
}

type BonusClient struct {
	httpCaller
}

func NewBonusClient(cfg Config) *BonusClient {
	return &BonusClient{httpCaller: newHTTPCaller(cfg)}
}

func (c *BonusClient) GetPrivilege(ctx context.Context, username string) (*Privilege, error) {
	var privilege Privilege
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/privilege", username, nil, &privilege); err != nil {
		return nil, err
	}
	return &privilege, nil
}

func (c *BonusClient) Calculate(ctx context.Context, username string, ticketUID uuid.UUID, price int, paidFromBalance bool) (*OperationResult, error) {
	var result OperationResult
	body := bonusOperationRequest{TicketUID: ticketUID, Price: price, PaidFromBalance: paidFromBalance}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/privilege/calculate", username, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *BonusClient) Rollback(ctx context.Context, username string, ticketUID uuid.UUID) error {
	body := rollbackRequest{TicketUID: ticketUID}
	return c.doJSON(ctx, http.MethodPost, "/api/v1/privilege/rollback", username, body, nil)
}
