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

package service

import (
	"context"

	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidAmount         = repository.ErrInvalidAmount
	ErrCreditNotEnough       = repository.ErrCreditNotEnough
	ErrFrozenCreditNotEnough = repository.ErrFrozenCreditNotEnough
)

//go:generate mockgen -source=./service.go -destination=../../mocks/credit.mock.go -package=creditmocks -typed Service
type Service interface {
	GetBalance(ctx context.Context, uid int64) (domain.Account, error)
	AddCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	DeductCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	FreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	UnfreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	DeductFrozenCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	RefundCredits(ctx context.Context, uid, amount int64, src domain.Source) error
	TransferCredits(ctx context.Context, t domain.Transfer) error
	ListLedgerLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.LedgerLog, int64, error)
}

type service struct {
	repo repository.CreditRepository
}

func NewCreditService(repo repository.CreditRepository) Service {
	return &service{repo: repo}
}

func (s *service) GetBalance(ctx context.Context, uid int64) (domain.Account, error) {
	return s.repo.GetAccountByUID(ctx, uid)
}

func (s *service) AddCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.AddCredits(ctx, uid, amount, src)
}

func (s *service) DeductCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.DeductCredits(ctx, uid, amount, src)
}

func (s *service) FreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.FreezeCredits(ctx, uid, amount, src)
}

func (s *service) UnfreezeCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.UnfreezeCredits(ctx, uid, amount, src)
}

func (s *service) DeductFrozenCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.DeductFrozenCredits(ctx, uid, amount, src)
}

func (s *service) RefundCredits(ctx context.Context, uid, amount int64, src domain.Source) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.RefundCredits(ctx, uid, amount, src)
}

func (s *service) TransferCredits(ctx context.Context, t domain.Transfer) error {
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	return s.repo.TransferCredits(ctx, t)
}

func (s *service) ListLedgerLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.LedgerLog, int64, error) {
	var (
		eg    errgroup.Group
		logs  []domain.LedgerLog
		total int64
	)
	eg.Go(func() error {
		var err error
		logs, err = s.repo.ListLedgerLogs(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalLedgerLogs(ctx, uid)
		return err
	})
	return logs, total, eg.Wait()
}
