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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type HistoryDAO interface {
	Create(ctx context.Context, h History, leads []HistoryLead) (int64, error)
	FindLeads(ctx context.Context, hid int64) ([]HistoryLead, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]History, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
}

type historyDAO struct {
	db *egorm.Component
}

func NewHistoryGORMDAO(db *egorm.Component) HistoryDAO {
	return &historyDAO{db: db}
}

func (g *historyDAO) Create(ctx context.Context, h History, leads []HistoryLead) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		h.Ctime, h.Utime = now, now
		if err := tx.Create(&h).Error; err != nil {
			return err
		}
		id = h.Id
		for i := range leads {
			leads[i].HistoryId = id
			leads[i].Ctime = now
			leads[i].Utime = now
			if err := tx.Create(&leads[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return id, err
}

func (g *historyDAO) FindLeads(ctx context.Context, hid int64) ([]HistoryLead, error) {
	var res []HistoryLead
	err := g.db.WithContext(ctx).
		Where("history_id = ?", hid).
		Order("position ASC").
		Find(&res).Error
	return res, err
}

func (g *historyDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]History, error) {
	var res []History
	err := g.db.WithContext(ctx).
		Where("applicant_id = ? OR target_owner_id = ?", uid, uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *historyDAO) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&History{}).
		Where("applicant_id = ? OR target_owner_id = ?", uid, uid).
		Count(&count).Error
	return count, err
}

// History 交换申请终态快照, 冗余昵称与标题字段, 写入后不再更新
type History struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:快照自增ID"`
	ProposalId      int64  `gorm:"not null;uniqueIndex:uniq_history_proposal_id;comment:交换申请ID"`
	SN              string `gorm:"type:varchar(255);not null;comment:交换申请序列号"`
	ApplicantId     int64  `gorm:"not null;index:idx_history_applicant_id;comment:申请人ID"`
	ApplicantName   string `gorm:"type:varchar(128);not null;comment:申请人昵称快照"`
	TargetOwnerId   int64  `gorm:"not null;index:idx_history_target_owner_id;comment:目标线索所有者ID"`
	TargetOwnerName string `gorm:"type:varchar(128);not null;comment:目标线索所有者昵称快照"`
	TargetLeadId    int64  `gorm:"not null;comment:目标线索ID"`
	TargetLeadTitle string `gorm:"type:varchar(255);not null;comment:目标线索标题快照"`
	TargetValue     int64  `gorm:"not null;comment:目标线索价值分"`
	OfferedValue    int64  `gorm:"not null;comment:提供线索价值分总和"`
	CreditGap       int64  `gorm:"not null;comment:积分差价"`
	Reason          string `gorm:"type:varchar(512);not null;comment:申请理由"`
	ResponseMessage string `gorm:"type:varchar(512);not null;default:'';comment:审批回复"`
	Status          uint8  `gorm:"type:tinyint unsigned;not null;comment:终态"`
	Ctime           int64
	Utime           int64
}

type HistoryLead struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:明细自增ID"`
	HistoryId int64  `gorm:"not null;index:idx_history_id;comment:快照ID"`
	LeadId    int64  `gorm:"not null;comment:提供的线索ID"`
	Title     string `gorm:"type:varchar(255);not null;comment:线索标题快照"`
	Position  int    `gorm:"not null;comment:在申请中的顺序, 从0开始"`
	Ctime     int64
	Utime     int64
}
