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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository/dao"
)

var (
	ErrRecordNotFound = dao.ErrRecordNotFound
	ErrStatusConflict = dao.ErrStatusConflict
)

//go:generate mockgen -source=./repository.go -destination=../../mocks/repository.mock.go -package=exchangemocks ExchangeRepository,HistoryRepository
type ExchangeRepository interface {
	Create(ctx context.Context, p domain.Proposal) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Proposal, error)
	FindBySN(ctx context.Context, sn string) (domain.Proposal, error)
	HasPending(ctx context.Context, applicantID, targetLeadID int64) (bool, error)
	// MarkApproved 把 Pending 原子流转为 Approved 并记录审批时间
	MarkApproved(ctx context.Context, id int64, msg string) error
	// MarkCompleted 结算成功后把 Approved 原子流转为 Completed
	MarkCompleted(ctx context.Context, id int64) error
	// RevertApproved 结算失败补偿后把 Approved 回退为 Pending
	RevertApproved(ctx context.Context, id int64) error
	// MarkTerminal 把 Pending 原子流转为 Rejected/Cancelled/Expired 之一
	MarkTerminal(ctx context.Context, id int64, to domain.Status, msg string) error
	ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, error)
	TotalByApplicant(ctx context.Context, uid int64) (int64, error)
	ListByTargetOwner(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, error)
	TotalByTargetOwner(ctx context.Context, uid int64) (int64, error)
	ListExpired(ctx context.Context, offset, limit int, now int64) ([]domain.Proposal, error)
	TotalExpired(ctx context.Context, now int64) (int64, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, h domain.History) (int64, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.History, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
}

type exchangeRepository struct {
	dao dao.ExchangeDAO
}

func NewExchangeRepository(d dao.ExchangeDAO) ExchangeRepository {
	return &exchangeRepository{dao: d}
}

func (r *exchangeRepository) Create(ctx context.Context, p domain.Proposal) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(p), p.OfferedLeadIDs)
}

func (r *exchangeRepository) FindByID(ctx context.Context, id int64) (domain.Proposal, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Proposal{}, err
	}
	return r.fill(ctx, p)
}

func (r *exchangeRepository) FindBySN(ctx context.Context, sn string) (domain.Proposal, error) {
	p, err := r.dao.FindBySN(ctx, sn)
	if err != nil {
		return domain.Proposal{}, err
	}
	return r.fill(ctx, p)
}

func (r *exchangeRepository) fill(ctx context.Context, p dao.Proposal) (domain.Proposal, error) {
	ids, err := r.dao.FindLeadIDs(ctx, p.Id)
	if err != nil {
		return domain.Proposal{}, err
	}
	res := r.toDomain(p)
	res.OfferedLeadIDs = ids
	return res, nil
}

func (r *exchangeRepository) HasPending(ctx context.Context, applicantID, targetLeadID int64) (bool, error) {
	count, err := r.dao.CountPending(ctx, applicantID, targetLeadID)
	return count > 0, err
}

func (r *exchangeRepository) MarkApproved(ctx context.Context, id int64, msg string) error {
	return r.dao.UpdateStatus(ctx, id,
		domain.StatusPending.ToUint8(), domain.StatusApproved.ToUint8(),
		map[string]any{
			"response_message": msg,
			"approved_at":      time.Now().UnixMilli(),
		})
}

func (r *exchangeRepository) MarkCompleted(ctx context.Context, id int64) error {
	return r.dao.UpdateStatus(ctx, id,
		domain.StatusApproved.ToUint8(), domain.StatusCompleted.ToUint8(),
		map[string]any{
			"completed_at": time.Now().UnixMilli(),
		})
}

func (r *exchangeRepository) RevertApproved(ctx context.Context, id int64) error {
	return r.dao.UpdateStatus(ctx, id,
		domain.StatusApproved.ToUint8(), domain.StatusPending.ToUint8(),
		map[string]any{
			"approved_at": 0,
		})
}

func (r *exchangeRepository) MarkTerminal(ctx context.Context, id int64, to domain.Status, msg string) error {
	updates := map[string]any{}
	if msg != "" {
		updates["response_message"] = msg
	}
	return r.dao.UpdateStatus(ctx, id, domain.StatusPending.ToUint8(), to.ToUint8(), updates)
}

func (r *exchangeRepository) ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, error) {
	ps, err := r.dao.ListByApplicant(ctx, uid, offset, limit)
	return r.toDomainList(ps), err
}

func (r *exchangeRepository) TotalByApplicant(ctx context.Context, uid int64) (int64, error) {
	return r.dao.TotalByApplicant(ctx, uid)
}

func (r *exchangeRepository) ListByTargetOwner(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, error) {
	ps, err := r.dao.ListByTargetOwner(ctx, uid, offset, limit)
	return r.toDomainList(ps), err
}

func (r *exchangeRepository) TotalByTargetOwner(ctx context.Context, uid int64) (int64, error) {
	return r.dao.TotalByTargetOwner(ctx, uid)
}

func (r *exchangeRepository) ListExpired(ctx context.Context, offset, limit int, now int64) ([]domain.Proposal, error) {
	ps, err := r.dao.ListExpired(ctx, offset, limit, now)
	return r.toDomainList(ps), err
}

func (r *exchangeRepository) TotalExpired(ctx context.Context, now int64) (int64, error) {
	return r.dao.TotalExpired(ctx, now)
}

func (r *exchangeRepository) toEntity(p domain.Proposal) dao.Proposal {
	return dao.Proposal{
		Id:              p.ID,
		SN:              p.SN,
		ApplicantId:     p.ApplicantID,
		TargetLeadId:    p.TargetLeadID,
		TargetOwnerId:   p.TargetOwnerID,
		TargetValue:     p.TargetValue,
		OfferedValue:    p.OfferedValue,
		CreditGap:       p.CreditGap,
		Reason:          p.Reason,
		Status:          p.Status.ToUint8(),
		ResponseMessage: p.ResponseMessage,
		ExpiresAt:       p.ExpiresAt,
	}
}

func (r *exchangeRepository) toDomain(p dao.Proposal) domain.Proposal {
	return domain.Proposal{
		ID:              p.Id,
		SN:              p.SN,
		ApplicantID:     p.ApplicantId,
		TargetLeadID:    p.TargetLeadId,
		TargetOwnerID:   p.TargetOwnerId,
		TargetValue:     p.TargetValue,
		OfferedValue:    p.OfferedValue,
		CreditGap:       p.CreditGap,
		Reason:          p.Reason,
		Status:          domain.Status(p.Status),
		ResponseMessage: p.ResponseMessage,
		ExpiresAt:       p.ExpiresAt,
		ApprovedAt:      p.ApprovedAt,
		CompletedAt:     p.CompletedAt,
		Ctime:           p.Ctime,
		Utime:           p.Utime,
	}
}

// toDomainList 列表页不回填 OfferedLeadIDs, 详情页才需要
func (r *exchangeRepository) toDomainList(ps []dao.Proposal) []domain.Proposal {
	return slice.Map(ps, func(idx int, src dao.Proposal) domain.Proposal {
		return r.toDomain(src)
	})
}

type historyRepository struct {
	dao dao.HistoryDAO
}

func NewHistoryRepository(d dao.HistoryDAO) HistoryRepository {
	return &historyRepository{dao: d}
}

func (r *historyRepository) Create(ctx context.Context, h domain.History) (int64, error) {
	leads := make([]dao.HistoryLead, 0, len(h.OfferedLeads))
	for i, l := range h.OfferedLeads {
		leads = append(leads, dao.HistoryLead{
			LeadId:   l.LeadID,
			Title:    l.Title,
			Position: i,
		})
	}
	return r.dao.Create(ctx, dao.History{
		ProposalId:      h.ProposalID,
		SN:              h.SN,
		ApplicantId:     h.ApplicantID,
		ApplicantName:   h.ApplicantName,
		TargetOwnerId:   h.TargetOwnerID,
		TargetOwnerName: h.TargetOwnerName,
		TargetLeadId:    h.TargetLeadID,
		TargetLeadTitle: h.TargetLeadTitle,
		TargetValue:     h.TargetValue,
		OfferedValue:    h.OfferedValue,
		CreditGap:       h.CreditGap,
		Reason:          h.Reason,
		ResponseMessage: h.ResponseMessage,
		Status:          h.Status.ToUint8(),
	}, leads)
}

func (r *historyRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.History, error) {
	hs, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	res := make([]domain.History, 0, len(hs))
	for _, h := range hs {
		leads, err := r.dao.FindLeads(ctx, h.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, r.toDomain(h, leads))
	}
	return res, nil
}

func (r *historyRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.TotalByUID(ctx, uid)
}

func (r *historyRepository) toDomain(h dao.History, leads []dao.HistoryLead) domain.History {
	return domain.History{
		ID:              h.Id,
		ProposalID:      h.ProposalId,
		SN:              h.SN,
		ApplicantID:     h.ApplicantId,
		ApplicantName:   h.ApplicantName,
		TargetOwnerID:   h.TargetOwnerId,
		TargetOwnerName: h.TargetOwnerName,
		TargetLeadID:    h.TargetLeadId,
		TargetLeadTitle: h.TargetLeadTitle,
		OfferedLeads: slice.Map(leads, func(idx int, src dao.HistoryLead) domain.HistoryLead {
			return domain.HistoryLead{LeadID: src.LeadId, Title: src.Title}
		}),
		TargetValue:     h.TargetValue,
		OfferedValue:    h.OfferedValue,
		CreditGap:       h.CreditGap,
		Reason:          h.Reason,
		ResponseMessage: h.ResponseMessage,
		Status:          domain.Status(h.Status),
		Ctime:           h.Ctime,
	}
}
