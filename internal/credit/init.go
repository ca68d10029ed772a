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
	"sync"

	"github.com/ecodeclub/leadmarket/internal/credit/internal/event"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/repository"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/repository/dao"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewCreditGORMDAO(db)
		r := repository.NewCreditRepository(d)
		svc = service.NewCreditService(r)
	})
	return svc
}

// initCreditAwardConsumer 只负责装配, 统一由应用入口启动消费
func initCreditAwardConsumer(svc service.Service, q mq.MQ) *event.CreditAwardConsumer {
	c, err := event.NewCreditAwardConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	return c
}
