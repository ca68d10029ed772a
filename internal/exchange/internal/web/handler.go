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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
	ec  ecache.Cache
}

func NewHandler(svc service.Service, ec ecache.Cache) *Handler {
	return &Handler{
		svc: svc,
		ec: &ecache.NamespaceCache{
			Namespace: "exchange:",
			C:         ec,
		},
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/exchange")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/approve", ginx.BS[ReviewReq](h.Approve))
	g.POST("/reject", ginx.BS[ReviewReq](h.Reject))
	g.POST("/cancel", ginx.BS[IDReq](h.Cancel))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list/applied", ginx.BS[Page](h.ListApplied))
	g.POST("/list/received", ginx.BS[Page](h.ListReceived))
	g.POST("/history", ginx.BS[Page](h.ListHistory))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if req.RequestID != "" {
		key := fmt.Sprintf("apply:%d:%s", uid, req.RequestID)
		ok, err := h.ec.SetNX(ctx.Request.Context(), key, 1, 24*time.Hour)
		if err != nil {
			return systemErrorResult, fmt.Errorf("防重检查失败: %w", err)
		}
		if !ok {
			return validationErrorResult, fmt.Errorf("重复提交交换申请: %s", req.RequestID)
		}
	}
	p, err := h.svc.Apply(ctx.Request.Context(), domain.Proposal{
		ApplicantID:    uid,
		TargetLeadID:   req.TargetLeadID,
		OfferedLeadIDs: req.OfferedLeadIDs,
		Reason:         req.Reason,
	})
	if err != nil {
		return errorResult(err), fmt.Errorf("提交交换申请失败: %w", err)
	}
	return ginx.Result{
		Data: ApplyResp{
			ID:        p.ID,
			SN:        p.SN,
			CreditGap: p.CreditGap,
			ExpiresAt: p.ExpiresAt,
		},
	}, nil
}

func (h *Handler) Approve(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Approve(ctx.Request.Context(), req.ID, sess.Claims().Uid, req.Message)
	if err != nil {
		return errorResult(err), fmt.Errorf("审批交换申请失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req ReviewReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx.Request.Context(), req.ID, sess.Claims().Uid, req.Message)
	if err != nil {
		return errorResult(err), fmt.Errorf("拒绝交换申请失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		return errorResult(err), fmt.Errorf("取消交换申请失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		return errorResult(err), fmt.Errorf("获取交换申请失败: %w", err)
	}
	return ginx.Result{Data: h.toProposalVO(p)}, nil
}

func (h *Handler) ListApplied(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	ps, total, err := h.svc.ListByApplicant(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取我发起的交换申请失败: %w", err)
	}
	return ginx.Result{Data: h.toListResp(ps, total)}, nil
}

func (h *Handler) ListReceived(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	ps, total, err := h.svc.ListByTargetOwner(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取我收到的交换申请失败: %w", err)
	}
	return ginx.Result{Data: h.toListResp(ps, total)}, nil
}

func (h *Handler) ListHistory(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	hs, total, err := h.svc.ListHistory(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取交换历史失败: %w", err)
	}
	return ginx.Result{
		Data: ListHistoryResp{
			Total: total,
			Records: slice.Map(hs, func(idx int, src domain.History) History {
				return History{
					SN:              src.SN,
					ApplicantID:     src.ApplicantID,
					ApplicantName:   src.ApplicantName,
					TargetOwnerID:   src.TargetOwnerID,
					TargetOwnerName: src.TargetOwnerName,
					TargetLeadID:    src.TargetLeadID,
					TargetLeadTitle: src.TargetLeadTitle,
					OfferedLeads: slice.Map(src.OfferedLeads, func(idx int, l domain.HistoryLead) HistoryLead {
						return HistoryLead{LeadID: l.LeadID, Title: l.Title}
					}),
					TargetValue:     src.TargetValue,
					OfferedValue:    src.OfferedValue,
					CreditGap:       src.CreditGap,
					Reason:          src.Reason,
					ResponseMessage: src.ResponseMessage,
					Status:          src.Status.ToUint8(),
					Ctime:           src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *Handler) toProposalVO(p domain.Proposal) Proposal {
	return Proposal{
		ID:              p.ID,
		SN:              p.SN,
		ApplicantID:     p.ApplicantID,
		TargetLeadID:    p.TargetLeadID,
		TargetOwnerID:   p.TargetOwnerID,
		OfferedLeadIDs:  p.OfferedLeadIDs,
		TargetValue:     p.TargetValue,
		OfferedValue:    p.OfferedValue,
		CreditGap:       p.CreditGap,
		Reason:          p.Reason,
		Status:          p.Status.ToUint8(),
		ResponseMessage: p.ResponseMessage,
		ExpiresAt:       p.ExpiresAt,
		Ctime:           p.Ctime,
	}
}

func (h *Handler) toListResp(ps []domain.Proposal, total int64) ListProposalsResp {
	return ListProposalsResp{
		Total: total,
		Proposals: slice.Map(ps, func(idx int, src domain.Proposal) Proposal {
			return h.toProposalVO(src)
		}),
	}
}
