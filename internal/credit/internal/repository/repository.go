// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/repository/dao"
)

var (
	ErrInvalidAmount         = dao.ErrInvalidAmount
	ErrCreditNotEnough       = dao.ErrCreditNotEnough
	ErrFrozenCreditNotEnough = dao.ErrFrozenCreditNotEnough
)

type CreditRepository interface {
	GetAccountByUID(ctx context.Context, uid int64) (domain.Account, error)
	AddCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	DeductCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	FreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	UnfreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	DeductFrozenCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	RefundCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	TransferCredits(ctx context.Context, t domain.Transfer) error
	ListLedgerLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.LedgerLog, error)
	TotalLedgerLogs(ctx context.Context, uid int64) (int64, error)
}

type creditRepository struct {
	dao dao.CreditDAO
}

func NewCreditRepository(dao dao.CreditDAO) CreditRepository {
	return &creditRepository{dao: dao}
}

// GetAccountByUID 账户在首次引用时惰性物化为零余额账户
func (r *creditRepository) GetAccountByUID(ctx context.Context, uid int64) (domain.Account, error) {
	acc, err := r.dao.FindAccountByUID(ctx, uid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Account{UID: uid}, nil
	}
	if err != nil {
		return domain.Account{}, err
	}
	return r.toDomainAccount(acc), nil
}

func (r *creditRepository) AddCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	return r.dao.Update(ctx, uid, r.toLogEntity(domain.KindIncome, amount, src),
		func(a *domain.Account) error { return a.Add(amount) })
}

func (r *creditRepository) DeductCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	return r.dao.Update(ctx, uid, r.toLogEntity(domain.KindExpense, amount, src),
		func(a *domain.Account) error { return a.Deduct(amount) })
}

func (r *creditRepository) FreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	return r.dao.Update(ctx, uid, r.toLogEntity(domain.KindFreeze, amount, src),
		func(a *domain.Account) error { return a.Freeze(amount) })
}

func (r *creditRepository) UnfreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	return r.dao.Update(ctx, uid, r.toLogEntity(domain.KindUnfreeze, amount, src),
		func(a *domain.Account) error { return a.Unfreeze(amount) })
}

func (r *creditRepository) DeductFrozenCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	return r.dao.Update(ctx, uid, r.toLogEntity(domain.KindExpense, amount, src),
		func(a *domain.Account) error { return a.DeductFrozen(amount) })
}

func (r *creditRepository) RefundCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	return r.dao.Update(ctx, uid, r.toLogEntity(domain.KindRefund, amount, src),
		func(a *domain.Account) error { return a.Refund(amount) })
}

func (r *creditRepository) TransferCredits(ctx context.Context, t domain.Transfer) error {
	payerMutate := func(a *domain.Account) error { return a.Deduct(t.Amount) }
	if t.FromFrozen {
		payerMutate = func(a *domain.Account) error { return a.DeductFrozen(t.Amount) }
	}
	return r.dao.Transfer(ctx, t.PayerUID, t.PayeeUID,
		r.toLogEntity(domain.KindExpense, t.Amount, t.Source),
		r.toLogEntity(domain.KindIncome, t.Amount, t.Source),
		payerMutate,
		func(a *domain.Account) error { return a.Add(t.Amount) })
}

func (r *creditRepository) ListLedgerLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.LedgerLog, error) {
	logs, err := r.dao.FindLogsByUID(ctx, uid, offset, limit)
	return r.toDomainLogs(logs), err
}

func (r *creditRepository) TotalLedgerLogs(ctx context.Context, uid int64) (int64, error) {
	return r.dao.TotalLogsByUID(ctx, uid)
}

func (r *creditRepository) toDomainAccount(d dao.CreditAccount) domain.Account {
	return domain.Account{
		UID:          d.Uid,
		Available:    d.Available,
		Frozen:       d.Frozen,
		TotalIncome:  d.TotalIncome,
		TotalExpense: d.TotalExpense,
	}
}

func (r *creditRepository) toLogEntity(kind domain.LogKind, amount int64, src domain.Source) dao.CreditLedgerLog {
	return dao.CreditLedgerLog{
		Kind:       kind.ToUint8(),
		Amount:     amount,
		SourceType: src.Type.ToUint8(),
		SourceId:   src.ID,
		Desc:       src.Desc,
	}
}

func (r *creditRepository) toDomainLogs(logs []dao.CreditLedgerLog) []domain.LedgerLog {
	return slice.Map(logs, func(idx int, src dao.CreditLedgerLog) domain.LedgerLog {
		return domain.LedgerLog{
			ID:            src.Id,
			UID:           src.Uid,
			Kind:          domain.LogKind(src.Kind),
			Amount:        src.Amount,
			BalanceBefore: src.BalanceBefore,
			BalanceAfter:  src.BalanceAfter,
			FrozenBefore:  src.FrozenBefore,
			FrozenAfter:   src.FrozenAfter,
			SourceType:    domain.SourceType(src.SourceType),
			SourceID:      src.SourceId,
			Desc:          src.Desc,
			Ctime:         src.Ctime,
		}
	})
}
