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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccount_Freeze(t *testing.T) {
	testCases := []struct {
		name        string
		account     Account
		amount      int64
		wantErr     error
		wantAccount Account
	}{
		{
			name:        "冻结成功",
			account:     Account{UID: 1, Available: 100},
			amount:      4,
			wantAccount: Account{UID: 1, Available: 96, Frozen: 4},
		},
		{
			name:        "可用积分不足",
			account:     Account{UID: 1, Available: 3},
			amount:      4,
			wantErr:     ErrCreditNotEnough,
			wantAccount: Account{UID: 1, Available: 3},
		},
		{
			name:        "冻结全部可用积分",
			account:     Account{UID: 1, Available: 4},
			amount:      4,
			wantAccount: Account{UID: 1, Available: 0, Frozen: 4},
		},
		{
			name:        "数量非法_零",
			account:     Account{UID: 1, Available: 100},
			amount:      0,
			wantErr:     ErrInvalidAmount,
			wantAccount: Account{UID: 1, Available: 100},
		},
		{
			name:        "数量非法_负数",
			account:     Account{UID: 1, Available: 100},
			amount:      -1,
			wantErr:     ErrInvalidAmount,
			wantAccount: Account{UID: 1, Available: 100},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.Freeze(tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAccount, tc.account)
		})
	}
}

func TestAccount_Unfreeze(t *testing.T) {
	testCases := []struct {
		name        string
		account     Account
		amount      int64
		wantErr     error
		wantAccount Account
	}{
		{
			name:        "解冻成功",
			account:     Account{UID: 1, Available: 96, Frozen: 4},
			amount:      4,
			wantAccount: Account{UID: 1, Available: 100, Frozen: 0},
		},
		{
			name:        "冻结积分不足",
			account:     Account{UID: 1, Available: 96, Frozen: 3},
			amount:      4,
			wantErr:     ErrFrozenCreditNotEnough,
			wantAccount: Account{UID: 1, Available: 96, Frozen: 3},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.Unfreeze(tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAccount, tc.account)
		})
	}
}

func TestAccount_Deduct(t *testing.T) {
	testCases := []struct {
		name        string
		account     Account
		amount      int64
		wantErr     error
		wantAccount Account
	}{
		{
			name:        "扣减成功",
			account:     Account{UID: 1, Available: 10},
			amount:      4,
			wantAccount: Account{UID: 1, Available: 6, TotalExpense: 4},
		},
		{
			name: "可用积分不足_余额保持不变",
			account: Account{
				UID:          1,
				Available:    3,
				Frozen:       2,
				TotalIncome:  5,
				TotalExpense: 0,
			},
			amount:  4,
			wantErr: ErrCreditNotEnough,
			wantAccount: Account{
				UID:          1,
				Available:    3,
				Frozen:       2,
				TotalIncome:  5,
				TotalExpense: 0,
			},
		},
		{
			name:        "冻结的积分不能用于普通扣减",
			account:     Account{UID: 1, Available: 3, Frozen: 100},
			amount:      4,
			wantErr:     ErrCreditNotEnough,
			wantAccount: Account{UID: 1, Available: 3, Frozen: 100},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.Deduct(tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAccount, tc.account)
		})
	}
}

func TestAccount_DeductFrozen(t *testing.T) {
	testCases := []struct {
		name        string
		account     Account
		amount      int64
		wantErr     error
		wantAccount Account
	}{
		{
			name:        "扣减冻结积分成功",
			account:     Account{UID: 1, Available: 96, Frozen: 4},
			amount:      4,
			wantAccount: Account{UID: 1, Available: 96, Frozen: 0, TotalExpense: 4},
		},
		{
			name:        "冻结积分不足",
			account:     Account{UID: 1, Available: 96, Frozen: 1},
			amount:      4,
			wantErr:     ErrFrozenCreditNotEnough,
			wantAccount: Account{UID: 1, Available: 96, Frozen: 1},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.account.DeductFrozen(tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAccount, tc.account)
		})
	}
}

func TestAccount_AddAndRefund(t *testing.T) {
	a := Account{UID: 1}
	err := a.Add(100)
	assert.NoError(t, err)
	assert.Equal(t, Account{UID: 1, Available: 100, TotalIncome: 100}, a)

	err = a.Refund(4)
	assert.NoError(t, err)
	assert.Equal(t, Account{UID: 1, Available: 104, TotalIncome: 104}, a)

	assert.ErrorIs(t, a.Add(0), ErrInvalidAmount)
	assert.ErrorIs(t, a.Refund(-4), ErrInvalidAmount)
}
