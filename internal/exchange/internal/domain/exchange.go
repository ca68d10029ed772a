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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusPending 等待对方审批, 唯一存在出边的状态
	StatusPending Status = 1
	// StatusApproved 审批通过, 结算中的瞬时状态, 结算成功立刻进入 StatusCompleted
	StatusApproved  Status = 2
	StatusCompleted Status = 3
	StatusRejected  Status = 4
	StatusCancelled Status = 5
	StatusExpired   Status = 6
)

// Terminal 终态不再有任何出边
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// Proposal 线索交换申请
// CreditGap = TargetValue - OfferedValue, 正数表示申请人要补差价
type Proposal struct {
	ID              int64
	SN              string
	ApplicantID     int64
	TargetLeadID    int64
	TargetOwnerID   int64
	OfferedLeadIDs  []int64
	TargetValue     int64
	OfferedValue    int64
	CreditGap       int64
	Reason          string
	Status          Status
	ResponseMessage string
	ExpiresAt       int64
	ApprovedAt      int64
	CompletedAt     int64
	Ctime           int64
	Utime           int64
}

func (p Proposal) Expired(now int64) bool {
	return p.ExpiresAt > 0 && now > p.ExpiresAt
}

// NeedFreeze 申请人是否需要冻结差价
func (p Proposal) NeedFreeze() bool {
	return p.CreditGap > 0
}

// History 终态快照, 写入时固化昵称与线索标题, 之后用户与线索怎么改都不影响审计
type History struct {
	ID              int64
	ProposalID      int64
	SN              string
	ApplicantID     int64
	ApplicantName   string
	TargetOwnerID   int64
	TargetOwnerName string
	TargetLeadID    int64
	TargetLeadTitle string
	OfferedLeads    []HistoryLead
	TargetValue     int64
	OfferedValue    int64
	CreditGap       int64
	Reason          string
	ResponseMessage string
	Status          Status
	Ctime           int64
}

type HistoryLead struct {
	LeadID int64
	Title  string
}
