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

//go:build e2e

package integration

import (
	"context"
	"sort"
	"testing"

	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/integration/startup"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/service"
	testioc "github.com/ecodeclub/leadmarket/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc service.Service
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupTest() {
	s.db = testioc.InitDB()
	s.svc = startup.InitService(s.db)
}

func (s *ModuleTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `credit_accounts`").Error
	s.NoError(err)
	err = s.db.Exec("DROP TABLE `credit_ledger_logs`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `credit_accounts`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `credit_ledger_logs`").Error
	s.NoError(err)
}

func (s *ModuleTestSuite) systemSource() domain.Source {
	return domain.Source{Type: domain.SourceTypeSystem, Desc: "测试发放"}
}

func (s *ModuleTestSuite) TestAddAndGetBalance() {
	t := s.T()
	uid := int64(7001)
	err := s.svc.AddCredits(context.Background(), uid, 10, s.systemSource())
	require.NoError(t, err)

	account, err := s.svc.GetBalance(context.Background(), uid)
	require.NoError(t, err)
	s.Equal(int64(10), account.Available)
	s.Equal(int64(0), account.Frozen)
	s.Equal(int64(10), account.TotalIncome)
}

func (s *ModuleTestSuite) TestFreezeAndUnfreeze() {
	t := s.T()
	uid := int64(7002)
	ctx := context.Background()
	require.NoError(t, s.svc.AddCredits(ctx, uid, 10, s.systemSource()))

	require.NoError(t, s.svc.FreezeCredits(ctx, uid, 4, s.systemSource()))
	account, err := s.svc.GetBalance(ctx, uid)
	require.NoError(t, err)
	s.Equal(int64(6), account.Available)
	s.Equal(int64(4), account.Frozen)

	// 冻结只预留不扣减, 总量不变
	s.Equal(int64(10), account.Available+account.Frozen)

	require.NoError(t, s.svc.UnfreezeCredits(ctx, uid, 4, s.systemSource()))
	account, err = s.svc.GetBalance(ctx, uid)
	require.NoError(t, err)
	s.Equal(int64(10), account.Available)
	s.Equal(int64(0), account.Frozen)
}

func (s *ModuleTestSuite) TestFreezeNotEnough() {
	t := s.T()
	uid := int64(7003)
	ctx := context.Background()
	require.NoError(t, s.svc.AddCredits(ctx, uid, 3, s.systemSource()))

	err := s.svc.FreezeCredits(ctx, uid, 4, s.systemSource())
	s.ErrorIs(err, service.ErrCreditNotEnough)

	// 失败不留痕
	account, err := s.svc.GetBalance(ctx, uid)
	require.NoError(t, err)
	s.Equal(int64(3), account.Available)
	s.Equal(int64(0), account.Frozen)
}

func (s *ModuleTestSuite) TestUnfreezeMoreThanFrozen() {
	t := s.T()
	uid := int64(7004)
	ctx := context.Background()
	require.NoError(t, s.svc.AddCredits(ctx, uid, 10, s.systemSource()))
	require.NoError(t, s.svc.FreezeCredits(ctx, uid, 4, s.systemSource()))

	err := s.svc.UnfreezeCredits(ctx, uid, 5, s.systemSource())
	s.ErrorIs(err, service.ErrFrozenCreditNotEnough)
}

func (s *ModuleTestSuite) TestDeductFrozen() {
	t := s.T()
	uid := int64(7005)
	ctx := context.Background()
	require.NoError(t, s.svc.AddCredits(ctx, uid, 10, s.systemSource()))
	require.NoError(t, s.svc.FreezeCredits(ctx, uid, 4, s.systemSource()))

	require.NoError(t, s.svc.DeductFrozenCredits(ctx, uid, 4, s.systemSource()))
	account, err := s.svc.GetBalance(ctx, uid)
	require.NoError(t, err)
	s.Equal(int64(6), account.Available)
	s.Equal(int64(0), account.Frozen)
	s.Equal(int64(4), account.TotalExpense)
}

func (s *ModuleTestSuite) TestTransferFromFrozen() {
	t := s.T()
	payer, payee := int64(7006), int64(7007)
	ctx := context.Background()
	require.NoError(t, s.svc.AddCredits(ctx, payer, 10, s.systemSource()))
	require.NoError(t, s.svc.FreezeCredits(ctx, payer, 4, s.systemSource()))

	err := s.svc.TransferCredits(ctx, domain.Transfer{
		PayerUID:   payer,
		PayeeUID:   payee,
		Amount:     4,
		FromFrozen: true,
		Source:     s.systemSource(),
	})
	require.NoError(t, err)

	payerAccount, err := s.svc.GetBalance(ctx, payer)
	require.NoError(t, err)
	s.Equal(int64(6), payerAccount.Available)
	s.Equal(int64(0), payerAccount.Frozen)
	s.Equal(int64(4), payerAccount.TotalExpense)

	payeeAccount, err := s.svc.GetBalance(ctx, payee)
	require.NoError(t, err)
	s.Equal(int64(4), payeeAccount.Available)
	s.Equal(int64(4), payeeAccount.TotalIncome)
}

func (s *ModuleTestSuite) TestTransferFromAvailable() {
	t := s.T()
	payer, payee := int64(7008), int64(7009)
	ctx := context.Background()
	require.NoError(t, s.svc.AddCredits(ctx, payer, 10, s.systemSource()))

	err := s.svc.TransferCredits(ctx, domain.Transfer{
		PayerUID: payer,
		PayeeUID: payee,
		Amount:   3,
		Source:   s.systemSource(),
	})
	require.NoError(t, err)

	payerAccount, err := s.svc.GetBalance(ctx, payer)
	require.NoError(t, err)
	s.Equal(int64(7), payerAccount.Available)

	payeeAccount, err := s.svc.GetBalance(ctx, payee)
	require.NoError(t, err)
	s.Equal(int64(3), payeeAccount.Available)
}

// TestLedgerReplay 从零重放全部流水必须得到账户当前余额
func (s *ModuleTestSuite) TestLedgerReplay() {
	t := s.T()
	uid := int64(7010)
	ctx := context.Background()
	src := s.systemSource()
	require.NoError(t, s.svc.AddCredits(ctx, uid, 20, src))
	require.NoError(t, s.svc.FreezeCredits(ctx, uid, 8, src))
	require.NoError(t, s.svc.UnfreezeCredits(ctx, uid, 3, src))
	require.NoError(t, s.svc.DeductFrozenCredits(ctx, uid, 5, src))
	require.NoError(t, s.svc.DeductCredits(ctx, uid, 2, src))
	require.NoError(t, s.svc.RefundCredits(ctx, uid, 1, src))

	logs, total, err := s.svc.ListLedgerLogs(ctx, uid, 0, 100)
	require.NoError(t, err)
	s.Equal(int64(6), total)
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].ID < logs[j].ID
	})

	var available, frozen int64
	for _, l := range logs {
		s.Equal(available, l.BalanceBefore)
		s.Equal(frozen, l.FrozenBefore)
		available, frozen = l.BalanceAfter, l.FrozenAfter
	}

	account, err := s.svc.GetBalance(ctx, uid)
	require.NoError(t, err)
	s.Equal(account.Available, available)
	s.Equal(account.Frozen, frozen)
	s.Equal(int64(14), account.Available)
	s.Equal(int64(0), account.Frozen)
}
