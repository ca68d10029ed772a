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

package exchange

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/leadmarket/internal/credit"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/web"
	"github.com/ecodeclub/leadmarket/internal/lead"
	"github.com/ecodeclub/leadmarket/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, ec ecache.Cache,
	leadModule *lead.Module, creditModule *credit.Module, userModule *user.Module) (*Module, error) {
	wire.Build(
		wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*lead.Module), "Svc"),
		wire.FieldsOf(new(*credit.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		InitService,
		web.NewHandler,
		initSweepJob,
	)
	return new(Module), nil
}
