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

package domain

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusExchangeable 上架可交换
	StatusExchangeable Status = 1
	// StatusOff 下架, 不可交换
	StatusOff Status = 2
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Value 等级对应的价值分, 评级算法在评级服务内部, 这里只消费结果
func (g Grade) Value() int64 {
	switch g {
	case GradeA:
		return 8
	case GradeB:
		return 4
	case GradeC:
		return 2
	case GradeD:
		return 1
	default:
		return 0
	}
}

// Lead 线索, 可出售的商机记录
type Lead struct {
	ID      int64
	OwnerID int64
	Title   string
	Company string
	Grade   Grade
	Status  Status
	Ctime   int64
	Utime   int64
}

func (l Lead) Exchangeable() bool {
	return l.Status == StatusExchangeable
}

func (l Lead) Value() int64 {
	return l.Grade.Value()
}
