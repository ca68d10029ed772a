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

package web

import (
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/credit")
	g.POST("/detail", ginx.S(h.QueryBalance))
	g.POST("/logs", ginx.BS[ListLedgerLogsReq](h.ListLedgerLogs))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) QueryBalance(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.GetBalance(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取积分账户失败: %w", err)
	}
	return ginx.Result{
		Data: Account{
			Available:    a.Available,
			Frozen:       a.Frozen,
			TotalIncome:  a.TotalIncome,
			TotalExpense: a.TotalExpense,
		},
	}, nil
}

// ListLedgerLogs 分页查询当前用户的积分流水
func (h *Handler) ListLedgerLogs(ctx *ginx.Context, req ListLedgerLogsReq, sess session.Session) (ginx.Result, error) {
	logs, total, err := h.svc.ListLedgerLogs(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取积分流水失败: %w", err)
	}
	return ginx.Result{
		Data: ListLedgerLogsResp{
			Total: total,
			Logs: slice.Map(logs, func(idx int, src domain.LedgerLog) LedgerLog {
				return LedgerLog{
					Kind:          src.Kind.ToUint8(),
					Amount:        src.Amount,
					BalanceBefore: src.BalanceBefore,
					BalanceAfter:  src.BalanceAfter,
					FrozenBefore:  src.FrozenBefore,
					FrozenAfter:   src.FrozenAfter,
					Desc:          src.Desc,
					Ctime:         src.Ctime,
				}
			}),
		},
	}, nil
}
