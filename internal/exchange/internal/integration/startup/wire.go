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

//go:build wireinject

package startup

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/leadmarket/internal/credit"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/web"
	"github.com/ecodeclub/leadmarket/internal/lead"
	"github.com/ecodeclub/leadmarket/internal/pkg/sequencenumber"
	"github.com/ecodeclub/leadmarket/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitService(db *egorm.Component, q mq.MQ,
	leadSvc lead.Service, creditSvc credit.Service, userSvc user.Service) service.Service {
	wire.Build(
		initRepository,
		initHistoryRepository,
		initProducer,
		sequencenumber.NewGenerator,
		service.NewService,
	)
	return nil
}

func InitHandler(db *egorm.Component, q mq.MQ, ec ecache.Cache,
	leadSvc lead.Service, creditSvc credit.Service, userSvc user.Service) *web.Handler {
	wire.Build(
		initRepository,
		initHistoryRepository,
		initProducer,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
	)
	return nil
}
