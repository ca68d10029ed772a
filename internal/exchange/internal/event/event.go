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

const exchangeEventName = "exchange_events"

const (
	ActionSubmitted = "SUBMITTED"
	ActionApproved  = "APPROVED"
	ActionRejected  = "REJECTED"
	ActionCancelled = "CANCELLED"
	ActionCompleted = "EXCHANGE_COMPLETED"
	ActionExpired   = "EXCHANGE_EXPIRED"
)

type ExchangeEvent struct {
	SN            string `json:"sn"`
	Action        string `json:"action"`
	ApplicantID   int64  `json:"applicantId"`
	TargetOwnerID int64  `json:"targetOwnerId"`
	TargetLeadID  int64  `json:"targetLeadId"`
	CreditGap     int64  `json:"creditGap"`
	Message       string `json:"message"`
}
