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

package web

type Account struct {
	Available    int64 `json:"available"`    // 可用积分
	Frozen       int64 `json:"frozen"`       // 冻结积分
	TotalIncome  int64 `json:"totalIncome"`  // 累计收入
	TotalExpense int64 `json:"totalExpense"` // 累计支出
}

type ListLedgerLogsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListLedgerLogsResp struct {
	Total int64       `json:"total"`
	Logs  []LedgerLog `json:"logs"`
}

type LedgerLog struct {
	Kind          uint8  `json:"kind"` // 1=收入 2=支出 3=冻结 4=解冻 5=退款
	Amount        int64  `json:"amount"`
	BalanceBefore int64  `json:"balanceBefore"`
	BalanceAfter  int64  `json:"balanceAfter"`
	FrozenBefore  int64  `json:"frozenBefore"`
	FrozenAfter   int64  `json:"frozenAfter"`
	Desc          string `json:"desc"`
	Ctime         int64  `json:"ctime"`
}
