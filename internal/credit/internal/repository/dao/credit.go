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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount         = domain.ErrInvalidAmount
	ErrCreditNotEnough       = domain.ErrCreditNotEnough
	ErrFrozenCreditNotEnough = domain.ErrFrozenCreditNotEnough
	ErrRecordNotFound        = gorm.ErrRecordNotFound
)

type CreditDAO interface {
	FindAccountByUID(ctx context.Context, uid int64) (CreditAccount, error)
	Update(ctx context.Context, uid int64, l CreditLedgerLog, mutate func(a *domain.Account) error) error
	Transfer(ctx context.Context, payer, payee int64, pl, el CreditLedgerLog,
		payerMutate, payeeMutate func(a *domain.Account) error) error
	FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]CreditLedgerLog, error)
	TotalLogsByUID(ctx context.Context, uid int64) (int64, error)
}

type creditDAO struct {
	db *egorm.Component
}

func NewCreditGORMDAO(db *egorm.Component) CreditDAO {
	return &creditDAO{db: db}
}

func (g *creditDAO) FindAccountByUID(ctx context.Context, uid int64) (CreditAccount, error) {
	var res CreditAccount
	err := g.db.WithContext(ctx).First(&res, "uid = ?", uid).Error
	return res, err
}

// Update 对单个账户的一次读-改-写, 持有行锁直到配套流水落库
func (g *creditDAO) Update(ctx context.Context, uid int64, l CreditLedgerLog, mutate func(a *domain.Account) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		acc, err := g.lockAccount(tx, uid)
		if err != nil {
			return err
		}
		return g.mutateAndLog(tx, acc, l, mutate)
	})
}

// Transfer 结算时移动两个账户的积分, 按 UID 升序加锁, 避免相互持锁死锁
func (g *creditDAO) Transfer(ctx context.Context, payer, payee int64, pl, el CreditLedgerLog,
	payerMutate, payeeMutate func(a *domain.Account) error) error {
	if payer == payee {
		return fmt.Errorf("转账双方不能是同一账户: uid = %d", payer)
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		first, second := payer, payee
		if first > second {
			first, second = second, first
		}
		accounts := make(map[int64]CreditAccount, 2)
		for _, uid := range [2]int64{first, second} {
			acc, err := g.lockAccount(tx, uid)
			if err != nil {
				return err
			}
			accounts[uid] = acc
		}
		if err := g.mutateAndLog(tx, accounts[payer], pl, payerMutate); err != nil {
			return err
		}
		return g.mutateAndLog(tx, accounts[payee], el, payeeMutate)
	})
}

// lockAccount 以 FOR UPDATE 锁定账户行, 账户不存在时先以零余额落库再锁定
func (g *creditDAO) lockAccount(tx *gorm.DB, uid int64) (CreditAccount, error) {
	var acc CreditAccount
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&acc, "uid = ?", uid).Error
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return CreditAccount{}, err
	}
	now := time.Now().UnixMilli()
	acc = CreditAccount{Uid: uid, Ctime: now, Utime: now}
	// 并发首次引用同一账户时靠唯一索引兜底, 冲突后重新锁定
	if err = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&acc).Error; err != nil {
		return CreditAccount{}, fmt.Errorf("创建积分账户失败: %w", err)
	}
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&acc, "uid = ?", uid).Error
	return acc, err
}

func (g *creditDAO) mutateAndLog(tx *gorm.DB, acc CreditAccount, l CreditLedgerLog, mutate func(a *domain.Account) error) error {
	account := domain.Account{
		UID:          acc.Uid,
		Available:    acc.Available,
		Frozen:       acc.Frozen,
		TotalIncome:  acc.TotalIncome,
		TotalExpense: acc.TotalExpense,
	}
	balanceBefore, frozenBefore := account.Available, account.Frozen
	if err := mutate(&account); err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	err := tx.Model(&CreditAccount{}).
		Where("uid = ?", acc.Uid).
		Updates(map[string]any{
			"available":     account.Available,
			"frozen":        account.Frozen,
			"total_income":  account.TotalIncome,
			"total_expense": account.TotalExpense,
			"utime":         now,
		}).Error
	if err != nil {
		return fmt.Errorf("更新积分账户失败: %w", err)
	}
	l.Uid = acc.Uid
	l.BalanceBefore = balanceBefore
	l.BalanceAfter = account.Available
	l.FrozenBefore = frozenBefore
	l.FrozenAfter = account.Frozen
	l.Ctime, l.Utime = now, now
	if err = tx.Create(&l).Error; err != nil {
		return fmt.Errorf("创建积分流水失败: %w", err)
	}
	return nil
}

func (g *creditDAO) FindLogsByUID(ctx context.Context, uid int64, offset, limit int) ([]CreditLedgerLog, error) {
	var res []CreditLedgerLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *creditDAO) TotalLogsByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&CreditLedgerLog{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

type CreditAccount struct {
	Id           int64 `gorm:"primaryKey;autoIncrement;comment:积分账户自增ID"`
	Uid          int64 `gorm:"not null;uniqueIndex:unq_user_id;comment:用户ID"`
	Available    int64 `gorm:"not null;default:0;comment:可用积分"`
	Frozen       int64 `gorm:"not null;default:0;comment:冻结积分"`
	TotalIncome  int64 `gorm:"not null;default:0;comment:累计收入"`
	TotalExpense int64 `gorm:"not null;default:0;comment:累计支出"`
	Ctime        int64
	Utime        int64
}

type CreditLedgerLog struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:积分流水自增ID"`
	Uid           int64  `gorm:"not null;index:idx_user_id;comment:用户ID"`
	Kind          uint8  `gorm:"type:tinyint unsigned;not null;comment:流水类型 1=收入 2=支出 3=冻结 4=解冻 5=退款"`
	Amount        int64  `gorm:"not null;comment:变动数量, 恒为正数"`
	BalanceBefore int64  `gorm:"not null;comment:变动前可用积分"`
	BalanceAfter  int64  `gorm:"not null;comment:变动后可用积分"`
	FrozenBefore  int64  `gorm:"not null;comment:变动前冻结积分"`
	FrozenAfter   int64  `gorm:"not null;comment:变动后冻结积分"`
	SourceType    uint8  `gorm:"type:tinyint unsigned;not null;comment:来源类型 1=交换 2=系统 3=人工"`
	SourceId      int64  `gorm:"comment:来源ID, 如交换申请ID, 可为空"`
	Desc          string `gorm:"type:varchar(255);not null;comment:流水描述"`
	Ctime         int64
	Utime         int64
}
