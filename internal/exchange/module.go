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

package exchange

import (
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/job"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/web"
)

type (
	Proposal    = domain.Proposal
	History     = domain.History
	HistoryLead = domain.HistoryLead
	Status      = domain.Status
	Service     = service.Service
	Handler     = web.Handler
)

const (
	StatusPending   = domain.StatusPending
	StatusApproved  = domain.StatusApproved
	StatusCompleted = domain.StatusCompleted
	StatusRejected  = domain.StatusRejected
	StatusCancelled = domain.StatusCancelled
	StatusExpired   = domain.StatusExpired
)

var (
	ErrInvalidProposal   = service.ErrInvalidProposal
	ErrDuplicateProposal = service.ErrDuplicateProposal
	ErrProposalNotFound  = service.ErrProposalNotFound
	ErrPermissionDenied  = service.ErrPermissionDenied
	ErrInvalidStatus     = service.ErrInvalidStatus
	ErrProposalExpired   = service.ErrProposalExpired
	ErrSettlementFailed  = service.ErrSettlementFailed
	ErrCreditNotEnough   = service.ErrCreditNotEnough
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	SweepJob *job.SweepExpiredProposalsJob
}
