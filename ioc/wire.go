//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/leadmarket/internal/credit"
	"github.com/ecodeclub/leadmarket/internal/exchange"
	"github.com/ecodeclub/leadmarket/internal/lead"
	"github.com/ecodeclub/leadmarket/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitMQ, InitRedis, InitCache)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		lead.InitModule,
		credit.InitModule,
		exchange.InitModule,
		wire.FieldsOf(new(*credit.Module), "Hdl"),
		wire.FieldsOf(new(*exchange.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
		initConsumers)
	return new(App), nil
}
