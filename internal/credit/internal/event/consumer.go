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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/leadmarket/internal/credit/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/credit/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type CreditAwardConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCreditAwardConsumer(svc service.Service, q mq.MQ) (*CreditAwardConsumer, error) {
	groupID := "credit"
	consumer, err := q.Consumer(CreditAwardEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &CreditAwardConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *CreditAwardConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费积分发放事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *CreditAwardConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt CreditAwardEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	src := domain.Source{Type: domain.SourceTypeSystem, ID: evt.BizId, Desc: evt.Action}
	if evt.Biz == "operation" {
		src.Type = domain.SourceTypeManual
	}
	err = c.svc.AddCredits(ctx, evt.Uid, evt.Amount, src)
	if err != nil {
		c.logger.Error("发放积分失败",
			elog.FieldErr(err),
			elog.Any("消息体", evt),
		)
	}
	return nil
}

func (c *CreditAwardConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
