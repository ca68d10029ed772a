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

package lead

import (
	"sync"

	"github.com/ecodeclub/leadmarket/internal/lead/internal/repository"
	"github.com/ecodeclub/leadmarket/internal/lead/internal/repository/dao"
	"github.com/ecodeclub/leadmarket/internal/lead/internal/service"
	"github.com/ego-component/egorm"
)

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewLeadGORMDAO(db)
		r := repository.NewLeadRepository(d)
		svc = service.NewLeadService(r)
	})
	return svc
}
