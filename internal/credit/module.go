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

package credit

import (
	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/event"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/service"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/web"
)

type (
	Account   = domain.Account
	LedgerLog = domain.LedgerLog
	Source    = domain.Source
	Transfer  = domain.Transfer
	Service   = service.Service
	Handler   = web.Handler
)

const (
	SourceTypeExchange = domain.SourceTypeExchange
	SourceTypeSystem   = domain.SourceTypeSystem
	SourceTypeManual   = domain.SourceTypeManual
)

var (
	ErrInvalidAmount         = service.ErrInvalidAmount
	ErrCreditNotEnough       = service.ErrCreditNotEnough
	ErrFrozenCreditNotEnough = service.ErrFrozenCreditNotEnough
)

type Module struct {
	Svc           Service
	Hdl           *Handler
	AwardConsumer *event.CreditAwardConsumer
}
