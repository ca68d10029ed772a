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
	"sync"
	"time"

	"github.com/ecodeclub/leadmarket/internal/credit"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/event"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/job"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository/dao"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
	"github.com/ecodeclub/leadmarket/internal/lead"
	"github.com/ecodeclub/leadmarket/internal/pkg/sequencenumber"
	"github.com/ecodeclub/leadmarket/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ,
	leadSvc lead.Service, creditSvc credit.Service, userSvc user.Service) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		repo := repository.NewExchangeRepository(dao.NewExchangeGORMDAO(db))
		historyRepo := repository.NewHistoryRepository(dao.NewHistoryGORMDAO(db))
		producer, err := event.NewExchangeEventProducer(q)
		if err != nil {
			panic(err)
		}
		svc = service.NewService(repo, historyRepo, leadSvc, creditSvc, userSvc,
			producer, sequencenumber.NewGenerator())
	})
	return svc
}

func initSweepJob(svc service.Service) *job.SweepExpiredProposalsJob {
	return job.NewSweepExpiredProposalsJob(svc, 100, 10*time.Minute)
}
