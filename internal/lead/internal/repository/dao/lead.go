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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrLeadNotTransferable 线索不存在、不归属期望的所有者或者不可交换
	ErrLeadNotTransferable = errors.New("线索不可转移")
)

type LeadDAO interface {
	FindByID(ctx context.Context, id int64) (Lead, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Lead, error)
	UpdateOwner(ctx context.Context, id, fromUID, toUID int64) error
}

type leadDAO struct {
	db *egorm.Component
}

func NewLeadGORMDAO(db *egorm.Component) LeadDAO {
	return &leadDAO{db: db}
}

func (g *leadDAO) FindByID(ctx context.Context, id int64) (Lead, error) {
	var res Lead
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *leadDAO) FindByIDs(ctx context.Context, ids []int64) ([]Lead, error) {
	var res []Lead
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

// UpdateOwner 条件更新, 只有可交换且归属 fromUID 的线索才会被转移
func (g *leadDAO) UpdateOwner(ctx context.Context, id, fromUID, toUID int64) error {
	res := g.db.WithContext(ctx).Model(&Lead{}).
		Where("id = ? AND owner_id = ? AND status = ?", id, fromUID, LeadStatusExchangeable).
		Updates(map[string]any{
			"owner_id": toUID,
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLeadNotTransferable
	}
	return nil
}

const (
	LeadStatusExchangeable = 1
	LeadStatusOff          = 2
)

type Lead struct {
	Id      int64  `gorm:"primaryKey;autoIncrement;comment:线索自增ID"`
	OwnerId int64  `gorm:"not null;index:idx_owner_id;comment:所有者ID"`
	Title   string `gorm:"type:varchar(255);not null;comment:线索标题"`
	Company string `gorm:"type:varchar(255);not null;comment:公司名称"`
	Grade   string `gorm:"type:varchar(8);not null;comment:评级 A/B/C/D"`
	Status  uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=可交换 2=已下架"`
	Ctime   int64
	Utime   int64
}
