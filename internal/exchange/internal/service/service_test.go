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

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/leadmarket/internal/credit"
	creditmocks "github.com/ecodeclub/leadmarket/internal/credit/mocks"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/event"
	evtmocks "github.com/ecodeclub/leadmarket/internal/exchange/internal/event/mocks"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/repository"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
	exchangemocks "github.com/ecodeclub/leadmarket/internal/exchange/mocks"
	"github.com/ecodeclub/leadmarket/internal/lead"
	leadmocks "github.com/ecodeclub/leadmarket/internal/lead/mocks"
	"github.com/ecodeclub/leadmarket/internal/pkg/sequencenumber"
	"github.com/ecodeclub/leadmarket/internal/user"
	usermocks "github.com/ecodeclub/leadmarket/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	applicantID   = int64(100)
	targetOwnerID = int64(200)
	targetLeadID  = int64(2)
	offeredLeadID = int64(3)
)

type testMocks struct {
	repo        *exchangemocks.MockExchangeRepository
	historyRepo *exchangemocks.MockHistoryRepository
	leadSvc     *leadmocks.MockService
	creditSvc   *creditmocks.MockService
	userSvc     *usermocks.MockService
	producer    *evtmocks.MockExchangeEventProducer
}

func newTestService(ctrl *gomock.Controller) (service.Service, *testMocks) {
	m := &testMocks{
		repo:        exchangemocks.NewMockExchangeRepository(ctrl),
		historyRepo: exchangemocks.NewMockHistoryRepository(ctrl),
		leadSvc:     leadmocks.NewMockService(ctrl),
		creditSvc:   creditmocks.NewMockService(ctrl),
		userSvc:     usermocks.NewMockService(ctrl),
		producer:    evtmocks.NewMockExchangeEventProducer(ctrl),
	}
	svc := service.NewService(m.repo, m.historyRepo, m.leadSvc, m.creditSvc, m.userSvc,
		m.producer, sequencenumber.NewGenerator())
	return svc, m
}

func exchangeableLead(id, ownerID int64) lead.Lead {
	return lead.Lead{
		ID:      id,
		OwnerID: ownerID,
		Title:   "线索",
		Grade:   "A",
		Status:  lead.StatusExchangeable,
	}
}

// allowHistoryAndEvents 终态流转会写历史快照并发事件, 与被测路径无关时全部放行
func allowHistoryAndEvents(m *testMocks) {
	m.userSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return([]user.User{
			{ID: applicantID, Nickname: "申请人"},
			{ID: targetOwnerID, Nickname: "所有者"},
		}, nil).AnyTimes()
	m.leadSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
		Return([]lead.Lead{
			exchangeableLead(targetLeadID, targetOwnerID),
			exchangeableLead(offeredLeadID, applicantID),
		}, nil).AnyTimes()
	m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestService_Apply_Validation(t *testing.T) {
	testCases := []struct {
		name     string
		proposal domain.Proposal
		setup    func(m *testMocks)
	}{
		{
			name: "提供线索为空",
			proposal: domain.Proposal{
				ApplicantID:  applicantID,
				TargetLeadID: targetLeadID,
			},
			setup: func(m *testMocks) {},
		},
		{
			name: "提供线索包含目标线索",
			proposal: domain.Proposal{
				ApplicantID:    applicantID,
				TargetLeadID:   targetLeadID,
				OfferedLeadIDs: []int64{offeredLeadID, targetLeadID},
			},
			setup: func(m *testMocks) {},
		},
		{
			name: "提供线索重复",
			proposal: domain.Proposal{
				ApplicantID:    applicantID,
				TargetLeadID:   targetLeadID,
				OfferedLeadIDs: []int64{offeredLeadID, offeredLeadID},
			},
			setup: func(m *testMocks) {},
		},
		{
			name: "申请人就是目标线索所有者",
			proposal: domain.Proposal{
				ApplicantID:    applicantID,
				TargetLeadID:   targetLeadID,
				OfferedLeadIDs: []int64{offeredLeadID},
			},
			setup: func(m *testMocks) {
				m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).
					Return(exchangeableLead(targetLeadID, applicantID), nil)
			},
		},
		{
			name: "目标线索不可交换",
			proposal: domain.Proposal{
				ApplicantID:    applicantID,
				TargetLeadID:   targetLeadID,
				OfferedLeadIDs: []int64{offeredLeadID},
			},
			setup: func(m *testMocks) {
				l := exchangeableLead(targetLeadID, targetOwnerID)
				l.Status = lead.StatusOff
				m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).Return(l, nil)
			},
		},
		{
			name: "提供线索不归申请人所有",
			proposal: domain.Proposal{
				ApplicantID:    applicantID,
				TargetLeadID:   targetLeadID,
				OfferedLeadIDs: []int64{offeredLeadID},
			},
			setup: func(m *testMocks) {
				m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).
					Return(exchangeableLead(targetLeadID, targetOwnerID), nil)
				m.repo.EXPECT().HasPending(gomock.Any(), applicantID, targetLeadID).Return(false, nil)
				m.leadSvc.EXPECT().FindByIDs(gomock.Any(), []int64{offeredLeadID}).
					Return([]lead.Lead{exchangeableLead(offeredLeadID, targetOwnerID)}, nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newTestService(ctrl)
			tc.setup(m)

			_, err := svc.Apply(context.Background(), tc.proposal)
			assert.ErrorIs(t, err, service.ErrInvalidProposal)
		})
	}
}

func TestService_Apply(t *testing.T) {
	newProposal := func() domain.Proposal {
		return domain.Proposal{
			ApplicantID:    applicantID,
			TargetLeadID:   targetLeadID,
			OfferedLeadIDs: []int64{offeredLeadID},
			Reason:         "互补客户资源",
		}
	}

	t.Run("差价为正_冻结后创建成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).
			Return(exchangeableLead(targetLeadID, targetOwnerID), nil)
		m.repo.EXPECT().HasPending(gomock.Any(), applicantID, targetLeadID).Return(false, nil)
		offered := []lead.Lead{exchangeableLead(offeredLeadID, applicantID)}
		m.leadSvc.EXPECT().FindByIDs(gomock.Any(), []int64{offeredLeadID}).Return(offered, nil)
		m.leadSvc.EXPECT().ValueOf(gomock.Any()).Return(int64(8))
		m.leadSvc.EXPECT().TotalValueOf(offered).Return(int64(4))
		m.creditSvc.EXPECT().FreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, p domain.Proposal) (int64, error) {
				assert.Equal(t, domain.StatusPending, p.Status)
				assert.Equal(t, int64(4), p.CreditGap)
				assert.NotEmpty(t, p.SN)
				assert.True(t, p.ExpiresAt > time.Now().UnixMilli())
				return int64(10), nil
			})
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt event.ExchangeEvent) error {
				assert.Equal(t, event.ActionSubmitted, evt.Action)
				return nil
			})

		p, err := svc.Apply(context.Background(), newProposal())
		require.NoError(t, err)
		assert.Equal(t, int64(10), p.ID)
		assert.Equal(t, targetOwnerID, p.TargetOwnerID)
		assert.Equal(t, int64(4), p.CreditGap)
	})

	t.Run("可用积分不足_不创建申请", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).
			Return(exchangeableLead(targetLeadID, targetOwnerID), nil)
		m.repo.EXPECT().HasPending(gomock.Any(), applicantID, targetLeadID).Return(false, nil)
		offered := []lead.Lead{exchangeableLead(offeredLeadID, applicantID)}
		m.leadSvc.EXPECT().FindByIDs(gomock.Any(), []int64{offeredLeadID}).Return(offered, nil)
		m.leadSvc.EXPECT().ValueOf(gomock.Any()).Return(int64(8))
		m.leadSvc.EXPECT().TotalValueOf(offered).Return(int64(4))
		m.creditSvc.EXPECT().FreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).
			Return(credit.ErrCreditNotEnough)

		_, err := svc.Apply(context.Background(), newProposal())
		assert.ErrorIs(t, err, service.ErrCreditNotEnough)
	})

	t.Run("存在待审批的重复申请", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).
			Return(exchangeableLead(targetLeadID, targetOwnerID), nil)
		m.repo.EXPECT().HasPending(gomock.Any(), applicantID, targetLeadID).Return(true, nil)

		_, err := svc.Apply(context.Background(), newProposal())
		assert.ErrorIs(t, err, service.ErrDuplicateProposal)
	})

	t.Run("创建失败_回滚已冻结的差价", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.leadSvc.EXPECT().FindByID(gomock.Any(), targetLeadID).
			Return(exchangeableLead(targetLeadID, targetOwnerID), nil)
		m.repo.EXPECT().HasPending(gomock.Any(), applicantID, targetLeadID).Return(false, nil)
		offered := []lead.Lead{exchangeableLead(offeredLeadID, applicantID)}
		m.leadSvc.EXPECT().FindByIDs(gomock.Any(), []int64{offeredLeadID}).Return(offered, nil)
		m.leadSvc.EXPECT().ValueOf(gomock.Any()).Return(int64(8))
		m.leadSvc.EXPECT().TotalValueOf(offered).Return(int64(4))
		m.creditSvc.EXPECT().FreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db挂了"))
		m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)

		_, err := svc.Apply(context.Background(), newProposal())
		assert.Error(t, err)
	})
}

func pendingProposal() domain.Proposal {
	return domain.Proposal{
		ID:             10,
		SN:             "SN-10",
		ApplicantID:    applicantID,
		TargetLeadID:   targetLeadID,
		TargetOwnerID:  targetOwnerID,
		OfferedLeadIDs: []int64{offeredLeadID},
		TargetValue:    8,
		OfferedValue:   4,
		CreditGap:      4,
		Status:         domain.StatusPending,
		ExpiresAt:      time.Now().Add(time.Hour).UnixMilli(),
	}
}

func TestService_Approve(t *testing.T) {
	t.Run("审批人不是目标线索所有者", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)

		err := svc.Approve(context.Background(), 10, 999, "ok")
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("已是终态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()
		p.Status = domain.StatusCompleted
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil)

		err := svc.Approve(context.Background(), 10, targetOwnerID, "ok")
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})

	t.Run("已过期_置为过期并返回过期错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()
		p.ExpiresAt = time.Now().Add(-time.Hour).UnixMilli()
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil).Times(2)
		m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(10), domain.StatusExpired, "").Return(nil)
		m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)
		allowHistoryAndEvents(m)

		err := svc.Approve(context.Background(), 10, targetOwnerID, "ok")
		assert.ErrorIs(t, err, service.ErrProposalExpired)
	})

	t.Run("审批通过_结算完成", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()

		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil)
		m.repo.EXPECT().MarkApproved(gomock.Any(), int64(10), "成交").Return(nil)
		m.leadSvc.EXPECT().TransferOwnership(gomock.Any(), targetLeadID, targetOwnerID, applicantID).Return(nil)
		m.leadSvc.EXPECT().TransferOwnership(gomock.Any(), offeredLeadID, applicantID, targetOwnerID).Return(nil)
		m.creditSvc.EXPECT().TransferCredits(gomock.Any(), credit.Transfer{
			PayerUID:   applicantID,
			PayeeUID:   targetOwnerID,
			Amount:     4,
			FromFrozen: true,
			Source: credit.Source{
				Type: credit.SourceTypeExchange,
				ID:   10,
				Desc: "线索交换 SN-10",
			},
		}).Return(nil)
		m.repo.EXPECT().MarkCompleted(gomock.Any(), int64(10)).Return(nil)
		m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, h domain.History) (int64, error) {
				assert.Equal(t, domain.StatusCompleted, h.Status)
				assert.Equal(t, int64(10), h.ProposalID)
				assert.Equal(t, "申请人", h.ApplicantName)
				return int64(1), nil
			})
		m.userSvc.EXPECT().FindByIDs(gomock.Any(), []int64{applicantID, targetOwnerID}).
			Return([]user.User{
				{ID: applicantID, Nickname: "申请人"},
				{ID: targetOwnerID, Nickname: "所有者"},
			}, nil)
		m.leadSvc.EXPECT().FindByIDs(gomock.Any(), []int64{targetLeadID, offeredLeadID}).
			Return([]lead.Lead{
				exchangeableLead(targetLeadID, applicantID),
				exchangeableLead(offeredLeadID, targetOwnerID),
			}, nil)
		var actions []string
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt event.ExchangeEvent) error {
				actions = append(actions, evt.Action)
				return nil
			}).Times(2)

		err := svc.Approve(context.Background(), 10, targetOwnerID, "成交")
		require.NoError(t, err)
		assert.Equal(t, []string{event.ActionApproved, event.ActionCompleted}, actions)
	})

	t.Run("结算失败_补偿后回退状态", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()

		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil)
		m.repo.EXPECT().MarkApproved(gomock.Any(), int64(10), "成交").Return(nil)
		m.leadSvc.EXPECT().TransferOwnership(gomock.Any(), targetLeadID, targetOwnerID, applicantID).Return(nil)
		m.leadSvc.EXPECT().TransferOwnership(gomock.Any(), offeredLeadID, applicantID, targetOwnerID).
			Return(errors.New("线索库不可用"))
		// 补偿: 目标线索转回原所有者
		m.leadSvc.EXPECT().TransferOwnership(gomock.Any(), targetLeadID, applicantID, targetOwnerID).Return(nil)
		m.repo.EXPECT().RevertApproved(gomock.Any(), int64(10)).Return(nil)
		m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)

		err := svc.Approve(context.Background(), 10, targetOwnerID, "成交")
		assert.ErrorIs(t, err, service.ErrSettlementFailed)
	})

	t.Run("并发审批_CAS失败", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)
		m.repo.EXPECT().MarkApproved(gomock.Any(), int64(10), "ok").
			Return(repository.ErrStatusConflict)

		err := svc.Approve(context.Background(), 10, targetOwnerID, "ok")
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})
}

func TestService_Reject(t *testing.T) {
	t.Run("拒绝后解冻差价", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)
		m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(10), domain.StatusRejected, "不换").Return(nil)
		m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)
		m.userSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return([]user.User{
				{ID: applicantID, Nickname: "申请人"},
				{ID: targetOwnerID, Nickname: "所有者"},
			}, nil)
		m.leadSvc.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).
			Return([]lead.Lead{
				exchangeableLead(targetLeadID, targetOwnerID),
				exchangeableLead(offeredLeadID, applicantID),
			}, nil)
		m.historyRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, h domain.History) (int64, error) {
				assert.Equal(t, domain.StatusRejected, h.Status)
				assert.Equal(t, "不换", h.ResponseMessage)
				return int64(1), nil
			})
		m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt event.ExchangeEvent) error {
				assert.Equal(t, event.ActionRejected, evt.Action)
				return nil
			})

		err := svc.Reject(context.Background(), 10, targetOwnerID, "不换")
		require.NoError(t, err)
	})

	t.Run("非目标线索所有者拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)

		err := svc.Reject(context.Background(), 10, applicantID, "不换")
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("重复拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()
		p.Status = domain.StatusRejected
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil)

		err := svc.Reject(context.Background(), 10, targetOwnerID, "不换")
		assert.ErrorIs(t, err, service.ErrInvalidStatus)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("申请人取消", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)
		m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(10), domain.StatusCancelled, "").Return(nil)
		m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)
		allowHistoryAndEvents(m)

		err := svc.Cancel(context.Background(), 10, applicantID)
		require.NoError(t, err)
	})

	t.Run("其他人无权取消", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)

		err := svc.Cancel(context.Background(), 10, targetOwnerID)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})
}

func TestService_Expire(t *testing.T) {
	t.Run("过期待审批申请", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()
		p.ExpiresAt = time.Now().Add(-time.Hour).UnixMilli()

		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil)
		m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(10), domain.StatusExpired, "").Return(nil)
		m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), applicantID, int64(4), gomock.Any()).Return(nil)
		allowHistoryAndEvents(m)

		err := svc.Expire(context.Background(), 10)
		require.NoError(t, err)
	})

	t.Run("已是终态_幂等返回", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		p := pendingProposal()
		p.Status = domain.StatusExpired
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(p, nil)

		err := svc.Expire(context.Background(), 10)
		require.NoError(t, err)
	})

	t.Run("并发流转_视作已处理", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)

		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)
		m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(10), domain.StatusExpired, "").
			Return(repository.ErrStatusConflict)

		err := svc.Expire(context.Background(), 10)
		require.NoError(t, err)
	})
}

func TestService_Detail(t *testing.T) {
	t.Run("局外人无权查看", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(pendingProposal(), nil)

		_, err := svc.Detail(context.Background(), 10, 999)
		assert.ErrorIs(t, err, service.ErrPermissionDenied)
	})

	t.Run("不存在的申请", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newTestService(ctrl)
		m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).
			Return(domain.Proposal{}, repository.ErrRecordNotFound)

		_, err := svc.Detail(context.Background(), 10, applicantID)
		assert.ErrorIs(t, err, service.ErrProposalNotFound)
	})
}
