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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/leadmarket/internal/credit"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/event"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository"
	"github.com/ecodeclub/leadmarket/internal/lead"
	"github.com/ecodeclub/leadmarket/internal/pkg/sequencenumber"
	"github.com/ecodeclub/leadmarket/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidProposal   = errors.New("交换申请参数非法")
	ErrDuplicateProposal = errors.New("存在待审批的重复申请")
	ErrProposalNotFound  = errors.New("交换申请不存在")
	ErrPermissionDenied  = errors.New("无权操作该交换申请")
	ErrInvalidStatus     = errors.New("交换申请状态非法")
	ErrProposalExpired   = errors.New("交换申请已过期")
	ErrSettlementFailed  = errors.New("交换结算失败")

	ErrCreditNotEnough = credit.ErrCreditNotEnough
)

// proposalTTL 申请从提交起的有效期
const proposalTTL = 72 * time.Hour

//go:generate mockgen -source=./service.go -destination=../../mocks/exchange.mock.go -package=exchangemocks -typed Service
type Service interface {
	// Apply 提交交换申请, 差价为正时冻结申请人的差价积分
	Apply(ctx context.Context, p domain.Proposal) (domain.Proposal, error)
	// Approve 目标线索所有者审批通过并立刻结算
	Approve(ctx context.Context, id, reviewerID int64, msg string) error
	Reject(ctx context.Context, id, reviewerID int64, msg string) error
	Cancel(ctx context.Context, id, applicantID int64) error
	// Expire 把过期的待审批申请置为已过期, 幂等, 已终态时直接返回 nil
	Expire(ctx context.Context, id int64) error
	Detail(ctx context.Context, id, uid int64) (domain.Proposal, error)
	ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, int64, error)
	ListByTargetOwner(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, int64, error)
	ListHistory(ctx context.Context, uid int64, offset, limit int) ([]domain.History, int64, error)
	ListExpired(ctx context.Context, offset, limit int, now int64) ([]domain.Proposal, error)
}

type service struct {
	repo        repository.ExchangeRepository
	historyRepo repository.HistoryRepository
	leadSvc     lead.Service
	creditSvc   credit.Service
	userSvc     user.Service
	producer    event.ExchangeEventProducer
	snGenerator *sequencenumber.Generator

	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32

	logger *elog.Component
}

func NewService(repo repository.ExchangeRepository,
	historyRepo repository.HistoryRepository,
	leadSvc lead.Service,
	creditSvc credit.Service,
	userSvc user.Service,
	producer event.ExchangeEventProducer,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:            repo,
		historyRepo:     historyRepo,
		leadSvc:         leadSvc,
		creditSvc:       creditSvc,
		userSvc:         userSvc,
		producer:        producer,
		snGenerator:     snGenerator,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     time.Second,
		maxRetries:      3,
		logger:          elog.DefaultLogger,
	}
}

func (s *service) Apply(ctx context.Context, p domain.Proposal) (domain.Proposal, error) {
	target, err := s.validateProposal(ctx, p)
	if err != nil {
		return domain.Proposal{}, err
	}
	p.TargetOwnerID = target.OwnerID

	dup, err := s.repo.HasPending(ctx, p.ApplicantID, p.TargetLeadID)
	if err != nil {
		return domain.Proposal{}, err
	}
	if dup {
		return domain.Proposal{}, ErrDuplicateProposal
	}

	offered, err := s.findOfferedLeads(ctx, p)
	if err != nil {
		return domain.Proposal{}, err
	}
	// 差价只在服务端重算, 不信任任何外部传入的值
	p.TargetValue = s.leadSvc.ValueOf(target)
	p.OfferedValue = s.leadSvc.TotalValueOf(offered)
	p.CreditGap = p.TargetValue - p.OfferedValue

	sn, err := s.snGenerator.Generate(p.ApplicantID)
	if err != nil {
		return domain.Proposal{}, fmt.Errorf("生成申请序列号失败: %w", err)
	}
	p.SN = sn
	p.Status = domain.StatusPending
	p.ExpiresAt = time.Now().Add(proposalTTL).UnixMilli()

	if p.NeedFreeze() {
		err = s.creditSvc.FreezeCredits(ctx, p.ApplicantID, p.CreditGap, credit.Source{
			Type: credit.SourceTypeExchange,
			Desc: "线索交换冻结差价 " + p.SN,
		})
		if err != nil {
			return domain.Proposal{}, err
		}
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		if p.NeedFreeze() {
			s.compensate(ctx, p, compensation{
				name: "回滚冻结差价",
				fn: func(ctx context.Context) error {
					return s.creditSvc.UnfreezeCredits(ctx, p.ApplicantID, p.CreditGap, s.source(p))
				},
			})
		}
		return domain.Proposal{}, fmt.Errorf("创建交换申请失败: %w", err)
	}
	p.ID = id

	s.produceEvent(ctx, p, event.ActionSubmitted)
	return p, nil
}

func (s *service) validateProposal(ctx context.Context, p domain.Proposal) (lead.Lead, error) {
	if p.ApplicantID <= 0 || p.TargetLeadID <= 0 || len(p.OfferedLeadIDs) == 0 {
		return lead.Lead{}, ErrInvalidProposal
	}
	seen := make(map[int64]struct{}, len(p.OfferedLeadIDs))
	for _, id := range p.OfferedLeadIDs {
		if id == p.TargetLeadID {
			return lead.Lead{}, ErrInvalidProposal
		}
		if _, ok := seen[id]; ok {
			return lead.Lead{}, ErrInvalidProposal
		}
		seen[id] = struct{}{}
	}
	target, err := s.leadSvc.FindByID(ctx, p.TargetLeadID)
	if err != nil {
		if errors.Is(err, lead.ErrLeadNotFound) {
			return lead.Lead{}, ErrInvalidProposal
		}
		return lead.Lead{}, err
	}
	if target.OwnerID == p.ApplicantID {
		return lead.Lead{}, ErrInvalidProposal
	}
	if target.Status != lead.StatusExchangeable {
		return lead.Lead{}, ErrInvalidProposal
	}
	return target, nil
}

func (s *service) findOfferedLeads(ctx context.Context, p domain.Proposal) ([]lead.Lead, error) {
	offered, err := s.leadSvc.FindByIDs(ctx, p.OfferedLeadIDs)
	if err != nil {
		return nil, err
	}
	if len(offered) != len(p.OfferedLeadIDs) {
		return nil, ErrInvalidProposal
	}
	for _, l := range offered {
		if l.OwnerID != p.ApplicantID || l.Status != lead.StatusExchangeable {
			return nil, ErrInvalidProposal
		}
	}
	return offered, nil
}

func (s *service) Approve(ctx context.Context, id, reviewerID int64, msg string) error {
	p, err := s.findProposal(ctx, id)
	if err != nil {
		return err
	}
	if p.TargetOwnerID != reviewerID {
		return ErrPermissionDenied
	}
	if p.Status != domain.StatusPending {
		return ErrInvalidStatus
	}
	if p.Expired(time.Now().UnixMilli()) {
		if err = s.Expire(ctx, id); err != nil {
			return err
		}
		return ErrProposalExpired
	}

	if err = s.repo.MarkApproved(ctx, id, msg); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return ErrInvalidStatus
		}
		return err
	}

	if err = s.settle(ctx, p); err != nil {
		s.revertApproval(ctx, p)
		s.logger.Error("交换结算失败, 申请回到待审批状态等待人工对账",
			elog.FieldErr(err),
			elog.Int64("proposal_id", p.ID),
			elog.String("sn", p.SN))
		return fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	if err = s.repo.MarkCompleted(ctx, id); err != nil {
		// 结算已经生效, 这里失败只能记日志人工修复状态
		s.logger.Error("标记交换申请完成失败",
			elog.FieldErr(err),
			elog.Int64("proposal_id", p.ID))
	}

	p.Status = domain.StatusCompleted
	p.ResponseMessage = msg
	s.recordHistory(ctx, p)
	s.produceEvent(ctx, p, event.ActionApproved)
	s.produceEvent(ctx, p, event.ActionCompleted)
	return nil
}

// revertApproval 结算补偿完成后把申请回退为待审批, 并按约定尝试解冻差价
func (s *service) revertApproval(ctx context.Context, p domain.Proposal) {
	if err := s.repo.RevertApproved(ctx, p.ID); err != nil {
		s.logger.Error("回退交换申请状态失败",
			elog.FieldErr(err),
			elog.Int64("proposal_id", p.ID))
	}
	if p.NeedFreeze() {
		if err := s.creditSvc.UnfreezeCredits(ctx, p.ApplicantID, p.CreditGap, s.source(p)); err != nil {
			s.logger.Error("结算失败后解冻差价积分失败",
				elog.FieldErr(err),
				elog.Int64("proposal_id", p.ID),
				elog.Int64("applicant_id", p.ApplicantID))
		}
	}
}

func (s *service) Reject(ctx context.Context, id, reviewerID int64, msg string) error {
	p, err := s.findProposal(ctx, id)
	if err != nil {
		return err
	}
	if p.TargetOwnerID != reviewerID {
		return ErrPermissionDenied
	}
	return s.terminate(ctx, p, domain.StatusRejected, msg)
}

func (s *service) Cancel(ctx context.Context, id, applicantID int64) error {
	p, err := s.findProposal(ctx, id)
	if err != nil {
		return err
	}
	if p.ApplicantID != applicantID {
		return ErrPermissionDenied
	}
	return s.terminate(ctx, p, domain.StatusCancelled, "")
}

func (s *service) Expire(ctx context.Context, id int64) error {
	p, err := s.findProposal(ctx, id)
	if err != nil {
		return err
	}
	if p.Status.Terminal() {
		return nil
	}
	err = s.terminate(ctx, p, domain.StatusExpired, "")
	if errors.Is(err, ErrInvalidStatus) {
		// 并发操作已经完成流转, 过期属于尽力而为
		return nil
	}
	return err
}

// terminate 先原子流转状态再解冻, CAS 保证解冻恰好发生一次
func (s *service) terminate(ctx context.Context, p domain.Proposal, to domain.Status, msg string) error {
	if p.Status != domain.StatusPending {
		return ErrInvalidStatus
	}
	if err := s.repo.MarkTerminal(ctx, p.ID, to, msg); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			return ErrInvalidStatus
		}
		return err
	}
	var unfreezeErr error
	if p.NeedFreeze() {
		unfreezeErr = s.creditSvc.UnfreezeCredits(ctx, p.ApplicantID, p.CreditGap, s.source(p))
		if unfreezeErr != nil {
			s.logger.Error("解冻差价积分失败, 需要人工对账",
				elog.FieldErr(unfreezeErr),
				elog.Int64("proposal_id", p.ID),
				elog.Int64("applicant_id", p.ApplicantID))
			unfreezeErr = fmt.Errorf("解冻差价积分失败: %w", unfreezeErr)
		}
	}
	p.Status = to
	if msg != "" {
		p.ResponseMessage = msg
	}
	s.recordHistory(ctx, p)
	s.produceEvent(ctx, p, s.actionOf(to))
	return unfreezeErr
}

func (s *service) actionOf(status domain.Status) string {
	switch status {
	case domain.StatusRejected:
		return event.ActionRejected
	case domain.StatusCancelled:
		return event.ActionCancelled
	case domain.StatusExpired:
		return event.ActionExpired
	default:
		return event.ActionCompleted
	}
}

func (s *service) Detail(ctx context.Context, id, uid int64) (domain.Proposal, error) {
	p, err := s.findProposal(ctx, id)
	if err != nil {
		return domain.Proposal{}, err
	}
	if p.ApplicantID != uid && p.TargetOwnerID != uid {
		return domain.Proposal{}, ErrPermissionDenied
	}
	return p, nil
}

func (s *service) ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Proposal
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.ListByApplicant(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByApplicant(ctx, uid)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) ListByTargetOwner(ctx context.Context, uid int64, offset, limit int) ([]domain.Proposal, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Proposal
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.ListByTargetOwner(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByTargetOwner(ctx, uid)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *service) ListHistory(ctx context.Context, uid int64, offset, limit int) ([]domain.History, int64, error) {
	var (
		eg    errgroup.Group
		hs    []domain.History
		total int64
	)
	eg.Go(func() error {
		var err error
		hs, err = s.historyRepo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.historyRepo.TotalByUID(ctx, uid)
		return err
	})
	return hs, total, eg.Wait()
}

func (s *service) ListExpired(ctx context.Context, offset, limit int, now int64) ([]domain.Proposal, error) {
	return s.repo.ListExpired(ctx, offset, limit, now)
}

func (s *service) findProposal(ctx context.Context, id int64) (domain.Proposal, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Proposal{}, ErrProposalNotFound
	}
	if err != nil {
		return domain.Proposal{}, err
	}
	return p, nil
}

func (s *service) source(p domain.Proposal) credit.Source {
	return credit.Source{
		Type: credit.SourceTypeExchange,
		ID:   p.ID,
		Desc: "线索交换 " + p.SN,
	}
}

func (s *service) recordHistory(ctx context.Context, p domain.Proposal) {
	h, err := s.buildHistory(ctx, p)
	if err != nil {
		s.logger.Error("构建交换历史快照失败",
			elog.FieldErr(err),
			elog.Int64("proposal_id", p.ID))
		return
	}
	if _, err = s.historyRepo.Create(ctx, h); err != nil {
		s.logger.Error("写入交换历史快照失败",
			elog.FieldErr(err),
			elog.Int64("proposal_id", p.ID))
	}
}

// buildHistory 在写入时固化昵称与线索标题
func (s *service) buildHistory(ctx context.Context, p domain.Proposal) (domain.History, error) {
	users, err := s.userSvc.FindByIDs(ctx, []int64{p.ApplicantID, p.TargetOwnerID})
	if err != nil {
		return domain.History{}, err
	}
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Nickname
	}
	leads, err := s.leadSvc.FindByIDs(ctx, append([]int64{p.TargetLeadID}, p.OfferedLeadIDs...))
	if err != nil {
		return domain.History{}, err
	}
	titles := make(map[int64]string, len(leads))
	for _, l := range leads {
		titles[l.ID] = l.Title
	}
	offered := make([]domain.HistoryLead, 0, len(p.OfferedLeadIDs))
	for _, id := range p.OfferedLeadIDs {
		offered = append(offered, domain.HistoryLead{LeadID: id, Title: titles[id]})
	}
	return domain.History{
		ProposalID:      p.ID,
		SN:              p.SN,
		ApplicantID:     p.ApplicantID,
		ApplicantName:   names[p.ApplicantID],
		TargetOwnerID:   p.TargetOwnerID,
		TargetOwnerName: names[p.TargetOwnerID],
		TargetLeadID:    p.TargetLeadID,
		TargetLeadTitle: titles[p.TargetLeadID],
		OfferedLeads:    offered,
		TargetValue:     p.TargetValue,
		OfferedValue:    p.OfferedValue,
		CreditGap:       p.CreditGap,
		Reason:          p.Reason,
		ResponseMessage: p.ResponseMessage,
		Status:          p.Status,
	}, nil
}

func (s *service) produceEvent(ctx context.Context, p domain.Proposal, action string) {
	evt := event.ExchangeEvent{
		SN:            p.SN,
		Action:        action,
		ApplicantID:   p.ApplicantID,
		TargetOwnerID: p.TargetOwnerID,
		TargetLeadID:  p.TargetLeadID,
		CreditGap:     p.CreditGap,
		Message:       p.ResponseMessage,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送交换事件失败",
			elog.FieldErr(err),
			elog.String("action", action),
			elog.String("sn", p.SN))
	}
}
