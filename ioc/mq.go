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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

type kafkaTopic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type kafkaConfig struct {
	Network   string       `yaml:"network"`
	Addresses []string     `yaml:"addresses"`
	Topics    []kafkaTopic `yaml:"topics"`
}

func InitMQ() mq.MQ {
	var cfg kafkaConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}

	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}

	// 事件主题在启动期一次性建好, 消费者拉起之前必须存在
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range cfg.Topics {
		if err := q.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
			panic(fmt.Errorf("创建 Topic %s 失败: %w", t.Name, err))
		}
	}
	return q
}
