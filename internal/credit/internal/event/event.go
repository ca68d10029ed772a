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

package event

const CreditAwardEventName = "credit_award_events"

// CreditAwardEvent 系统或运营发放积分, 比如注册奖励、人工补偿
type CreditAwardEvent struct {
	Key    string `json:"key"`
	Uid    int64  `json:"uid"`
	Amount int64  `json:"amount"`
	Biz    string `json:"biz"`    // user  operation
	BizId  int64  `json:"biz_id"` // user_id  工单ID
	Action string `json:"action"` // 首次注册  人工补偿
}
