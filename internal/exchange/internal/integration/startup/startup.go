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

package startup

import (
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/event"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository/dao"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

func initRepository(db *egorm.Component) repository.ExchangeRepository {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return repository.NewExchangeRepository(dao.NewExchangeGORMDAO(db))
}

func initHistoryRepository(db *egorm.Component) repository.HistoryRepository {
	return repository.NewHistoryRepository(dao.NewHistoryGORMDAO(db))
}

func initProducer(q mq.MQ) event.ExchangeEventProducer {
	producer, err := event.NewExchangeEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
