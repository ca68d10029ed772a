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
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/leadmarket/internal/credit"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// compensation 结算中某一步的逆操作, 失败时按入栈逆序执行
type compensation struct {
	name string
	fn   func(ctx context.Context) error
}

// settle 结算一笔已进入结算态的申请: 线索所有权双向转移加差价积分结算.
// 线索与积分各自独立提交, 任何一步失败都逆序补偿之前已生效的步骤,
// 保证不会出现只换了一半的交换.
func (s *service) settle(ctx context.Context, p domain.Proposal) error {
	comps := make([]compensation, 0, len(p.OfferedLeadIDs)+1)

	if err := s.leadSvc.TransferOwnership(ctx, p.TargetLeadID, p.TargetOwnerID, p.ApplicantID); err != nil {
		return fmt.Errorf("转移目标线索失败: %w", err)
	}
	comps = append(comps, compensation{
		name: "回转目标线索",
		fn: func(ctx context.Context) error {
			return s.leadSvc.TransferOwnership(ctx, p.TargetLeadID, p.ApplicantID, p.TargetOwnerID)
		},
	})

	for _, leadID := range p.OfferedLeadIDs {
		leadID := leadID
		if err := s.leadSvc.TransferOwnership(ctx, leadID, p.ApplicantID, p.TargetOwnerID); err != nil {
			s.compensate(ctx, p, comps...)
			return fmt.Errorf("转移提供线索 %d 失败: %w", leadID, err)
		}
		comps = append(comps, compensation{
			name: "回转提供线索",
			fn: func(ctx context.Context) error {
				return s.leadSvc.TransferOwnership(ctx, leadID, p.TargetOwnerID, p.ApplicantID)
			},
		})
	}

	if err := s.settleCreditGap(ctx, p); err != nil {
		s.compensate(ctx, p, comps...)
		return fmt.Errorf("结算差价积分失败: %w", err)
	}
	return nil
}

// settleCreditGap 差价为正时把申请人冻结的差价转给对方,
// 为负时从对方可用积分扣给申请人, 为零时不动积分
func (s *service) settleCreditGap(ctx context.Context, p domain.Proposal) error {
	if p.CreditGap == 0 {
		return nil
	}
	t := credit.Transfer{
		PayerUID:   p.ApplicantID,
		PayeeUID:   p.TargetOwnerID,
		Amount:     p.CreditGap,
		FromFrozen: true,
		Source:     s.source(p),
	}
	if p.CreditGap < 0 {
		t = credit.Transfer{
			PayerUID: p.TargetOwnerID,
			PayeeUID: p.ApplicantID,
			Amount:   -p.CreditGap,
			Source:   s.source(p),
		}
	}
	return s.creditSvc.TransferCredits(ctx, t)
}

// compensate 逆序执行补偿, 单步带指数退避重试, 重试耗尽只记日志等待人工对账
func (s *service) compensate(ctx context.Context, p domain.Proposal, comps ...compensation) {
	for i := len(comps) - 1; i >= 0; i-- {
		c := comps[i]
		strategy, _ := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
		for {
			err := c.fn(ctx)
			if err == nil {
				break
			}
			next, ok := strategy.Next()
			if !ok {
				s.logger.Error("结算补偿失败, 需要人工对账",
					elog.FieldErr(err),
					elog.String("step", c.name),
					elog.Int64("proposal_id", p.ID),
					elog.String("sn", p.SN))
				break
			}
			time.Sleep(next)
		}
	}
}
