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

package domain

import "errors"

var (
	ErrInvalidAmount        = errors.New("积分变动数量非法")
	ErrCreditNotEnough      = errors.New("可用积分不足")
	ErrFrozenCreditNotEnough = errors.New("冻结积分不足")
)

type LogKind uint8

func (k LogKind) ToUint8() uint8 {
	return uint8(k)
}

const (
	KindIncome   LogKind = 1
	KindExpense  LogKind = 2
	KindFreeze   LogKind = 3
	KindUnfreeze LogKind = 4
	KindRefund   LogKind = 5
)

type SourceType uint8

func (s SourceType) ToUint8() uint8 {
	return uint8(s)
}

const (
	SourceTypeExchange SourceType = 1
	SourceTypeSystem   SourceType = 2
	SourceTypeManual   SourceType = 3
)

// Source 标识一次积分变动的来源, 比如某个线索交换申请
type Source struct {
	Type SourceType
	ID   int64
	Desc string
}

// Account 用户积分账户, 可用积分与冻结积分分开计数
type Account struct {
	UID          int64
	Available    int64
	Frozen       int64
	TotalIncome  int64
	TotalExpense int64
}

func (a *Account) Add(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.Available += amount
	a.TotalIncome += amount
	return nil
}

func (a *Account) Deduct(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Available < amount {
		return ErrCreditNotEnough
	}
	a.Available -= amount
	a.TotalExpense += amount
	return nil
}

// Freeze 预留可用积分, 总量不变
func (a *Account) Freeze(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Available < amount {
		return ErrCreditNotEnough
	}
	a.Available -= amount
	a.Frozen += amount
	return nil
}

func (a *Account) Unfreeze(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Frozen < amount {
		return ErrFrozenCreditNotEnough
	}
	a.Frozen -= amount
	a.Available += amount
	return nil
}

// DeductFrozen 从冻结积分中真实扣减, 只在结算时使用
func (a *Account) DeductFrozen(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if a.Frozen < amount {
		return ErrFrozenCreditNotEnough
	}
	a.Frozen -= amount
	a.TotalExpense += amount
	return nil
}

func (a *Account) Refund(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.Available += amount
	a.TotalIncome += amount
	return nil
}

// Transfer 两个账户之间的积分移动, 结算差价时使用
// FromFrozen 为 true 表示从付方的冻结积分中扣减, 否则从可用积分中扣减
type Transfer struct {
	PayerUID   int64
	PayeeUID   int64
	Amount     int64
	FromFrozen bool
	Source     Source
}

// LedgerLog 积分流水, 只追加不修改, 从零重放全部流水必须得到账户当前余额
type LedgerLog struct {
	ID            int64
	UID           int64
	Kind          LogKind
	Amount        int64
	BalanceBefore int64
	BalanceAfter  int64
	FrozenBefore  int64
	FrozenAfter   int64
	SourceType    SourceType
	SourceID      int64
	Desc          string
	Ctime         int64
}
