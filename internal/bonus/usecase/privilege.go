package usecase

import (
	"context"
	"errors"
	"time"

	"avia-booking/internal/bonus/domain"
	"avia-booking/internal/infra"
	"avia-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPrivilegeNotFound = errors.New("privilege not found")
	ErrHistoryNotFound   = errors.New("no bonus history for ticket")
	ErrInvalidPrice      = errors.New("price must be positive")

	ErrStorageFailed = errors.New("storage operation failed")
)

type PrivilegeRM struct {
	Balance int
	Status  string
	History []HistoryEntryRM
}

type HistoryEntryRM struct {
	Date          time.Time
	TicketUID     uuid.UUID
	BalanceDiff   int
	OperationType string
}

type OperationResultRM struct {
	PaidByBonuses int
	BalanceDiff   int
	Balance       int
	Status        string
}

type PrivilegeRepository interface {
	// FindWithHistory is the strict read path: no lazy creation.
	FindWithHistory(ctx context.Context, username string) (*PrivilegeRM, error)
	// ApplyOperation provisions the privilege row when absent and runs the
	// read-modify-write plus history insert atomically, serialized per
	// username.
	ApplyOperation(ctx context.Context, username string, ticketUID uuid.UUID, price int, paidFromBalance bool) (*OperationResultRM, error)
	// ReverseOperation undoes the net effect of prior operations for the
	// ticket uid and appends a compensating entry.
	ReverseOperation(ctx context.Context, username string, ticketUID uuid.UUID) error
}

type PrivilegeUseCase interface {
	GetPrivilege(ctx context.Context, username string) (*PrivilegeRM, error)
	ApplyOperation(ctx context.Context, username string, ticketUID uuid.UUID, price int, paidFromBalance bool) (*OperationResultRM, error)
	Rollback(ctx context.Context, username string, ticketUID uuid.UUID) error
}

type privilegeUseCaseImpl struct {
	repo PrivilegeRepository
}

func NewPrivilegeUseCase(repo PrivilegeRepository) PrivilegeUseCase {
	return &privilegeUseCaseImpl{repo: repo}
}

func (u *privilegeUseCaseImpl) GetPrivilege(ctx context.Context, username string) (*PrivilegeRM, error) {
	privilege, err := u.repo.FindWithHistory(ctx, username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPrivilegeNotFound
		}
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	return privilege, nil
}

func (u *privilegeUseCaseImpl) ApplyOperation(ctx context.Context, username string, ticketUID uuid.UUID, price int, paidFromBalance bool) (*OperationResultRM, error) {
	result, err := u.repo.ApplyOperation(ctx, username, ticketUID, price, paidFromBalance)
	if err != nil {
		if errors.Is(err, domain.ErrNonPositivePrice) {
			return nil, ErrInvalidPrice
		}
		return nil, errs.Mark(err, ErrStorageFailed)
	}

	return result, nil
}

func (u *privilegeUseCaseImpl) Rollback(ctx context.Context, username string, ticketUID uuid.UUID) error {
	if err := u.repo.ReverseOperation(ctx, username, ticketUID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHistoryNotFound
		}
		return errs.Mark(err, ErrStorageFailed)
	}

	return nil
}
