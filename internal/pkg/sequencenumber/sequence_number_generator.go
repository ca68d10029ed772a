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

package sequencenumber

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const snLength = 32

// Generator 生成对外展示的申请序列号
type Generator struct {
	now      func() time.Time
	randPart func() string
}

// NewGeneratorWith 允许注入时间和随机串来源
func NewGeneratorWith(now func() time.Time, randPart func() string) *Generator {
	return &Generator{now: now, randPart: randPart}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

// Generate 生成固定 32 位的序列号: 毫秒时间戳的 36 进制 + 申请人ID末四位 + 随机串补足
func (g *Generator) Generate(uid int64) (string, error) {
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	tail := fmt.Sprintf("%04d", uid%10000)
	sn := ts + tail + g.randPart()
	if len(sn) < snLength {
		sn += strings.Repeat("0", snLength-len(sn))
	}
	return sn[:snLength], nil
}
