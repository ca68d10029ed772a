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

type ApplyReq struct {
	// RequestID 客户端生成, 用于防重复提交
	RequestID      string  `json:"requestId"`
	TargetLeadID   int64   `json:"targetLeadId"`
	OfferedLeadIDs []int64 `json:"offeredLeadIds"`
	Reason         string  `json:"reason"`
}

type ApplyResp struct {
	ID        int64  `json:"id"`
	SN        string `json:"sn"`
	CreditGap int64  `json:"creditGap"`
	ExpiresAt int64  `json:"expiresAt"`
}

type ReviewReq struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Proposal struct {
	ID              int64   `json:"id"`
	SN              string  `json:"sn"`
	ApplicantID     int64   `json:"applicantId"`
	TargetLeadID    int64   `json:"targetLeadId"`
	TargetOwnerID   int64   `json:"targetOwnerId"`
	OfferedLeadIDs  []int64 `json:"offeredLeadIds,omitempty"`
	TargetValue     int64   `json:"targetValue"`
	OfferedValue    int64   `json:"offeredValue"`
	CreditGap       int64   `json:"creditGap"`
	Reason          string  `json:"reason"`
	Status          uint8   `json:"status"` // 1=待审批 2=结算中 3=已完成 4=已拒绝 5=已取消 6=已过期
	ResponseMessage string  `json:"responseMessage"`
	ExpiresAt       int64   `json:"expiresAt"`
	Ctime           int64   `json:"ctime"`
}

type ListProposalsResp struct {
	Total     int64      `json:"total"`
	Proposals []Proposal `json:"proposals"`
}

type History struct {
	SN              string        `json:"sn"`
	ApplicantID     int64         `json:"applicantId"`
	ApplicantName   string        `json:"applicantName"`
	TargetOwnerID   int64         `json:"targetOwnerId"`
	TargetOwnerName string        `json:"targetOwnerName"`
	TargetLeadID    int64         `json:"targetLeadId"`
	TargetLeadTitle string        `json:"targetLeadTitle"`
	OfferedLeads    []HistoryLead `json:"offeredLeads"`
	TargetValue     int64         `json:"targetValue"`
	OfferedValue    int64         `json:"offeredValue"`
	CreditGap       int64         `json:"creditGap"`
	Reason          string        `json:"reason"`
	ResponseMessage string        `json:"responseMessage"`
	Status          uint8         `json:"status"`
	Ctime           int64         `json:"ctime"`
}

type HistoryLead struct {
	LeadID int64  `json:"leadId"`
	Title  string `json:"title"`
}

type ListHistoryResp struct {
	Total   int64     `json:"total"`
	Records []History `json:"records"`
}
