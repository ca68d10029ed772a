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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/leadmarket/internal/exchange/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SweepExpiredProposalsJob)(nil)

// SweepExpiredProposalsJob 扫描过了有效期仍待审批的交换申请并逐个置为已过期.
// 单个申请失败只记日志跳过, 不中断整批扫描.
type SweepExpiredProposalsJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
	logger  *elog.Component
}

func NewSweepExpiredProposalsJob(svc service.Service, limit int, timeout time.Duration) *SweepExpiredProposalsJob {
	return &SweepExpiredProposalsJob{
		svc:     svc,
		limit:   limit,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (c *SweepExpiredProposalsJob) Name() string {
	return "SweepExpiredProposalsJob"
}

func (c *SweepExpiredProposalsJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, c.timeout)
	defer cancelFunc()
	now := time.Now().UnixMilli()

	// 成功过期的申请会离开待审批集合, 所以始终从失败数作为偏移量重新拉取
	failed := 0
	for {
		proposals, err := c.svc.ListExpired(ctx, failed, c.limit, now)
		if err != nil {
			return fmt.Errorf("获取过期交换申请失败: %w", err)
		}
		for _, p := range proposals {
			if er := c.svc.Expire(ctx, p.ID); er != nil {
				failed++
				c.logger.Error("过期交换申请失败",
					elog.FieldErr(er),
					elog.Int64("proposal_id", p.ID),
					elog.String("sn", p.SN))
			}
		}
		if len(proposals) < c.limit {
			break
		}
	}
	return nil
}
