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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStatusConflict 状态压缩-交换(CAS)失败, 说明有并发操作抢先完成了状态流转
	ErrStatusConflict = errors.New("交换申请状态已被并发修改")
)

const (
	ProposalStatusPending   = 1
	ProposalStatusApproved  = 2
	ProposalStatusCompleted = 3
	ProposalStatusRejected  = 4
	ProposalStatusCancelled = 5
	ProposalStatusExpired   = 6
)

type ExchangeDAO interface {
	Create(ctx context.Context, p Proposal, leadIDs []int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Proposal, error)
	FindBySN(ctx context.Context, sn string) (Proposal, error)
	FindLeadIDs(ctx context.Context, pid int64) ([]int64, error)
	CountPending(ctx context.Context, applicantID, targetLeadID int64) (int64, error)
	// UpdateStatus 以 WHERE status = from 的条件更新实现状态流转的原子比较并交换
	UpdateStatus(ctx context.Context, id int64, from, to uint8, updates map[string]any) error
	ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]Proposal, error)
	TotalByApplicant(ctx context.Context, uid int64) (int64, error)
	ListByTargetOwner(ctx context.Context, uid int64, offset, limit int) ([]Proposal, error)
	TotalByTargetOwner(ctx context.Context, uid int64) (int64, error)
	ListExpired(ctx context.Context, offset, limit int, now int64) ([]Proposal, error)
	TotalExpired(ctx context.Context, now int64) (int64, error)
}

type exchangeDAO struct {
	db *egorm.Component
}

func NewExchangeGORMDAO(db *egorm.Component) ExchangeDAO {
	return &exchangeDAO{db: db}
}

func (g *exchangeDAO) Create(ctx context.Context, p Proposal, leadIDs []int64) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		p.Ctime, p.Utime = now, now
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		id = p.Id
		for i, leadID := range leadIDs {
			pl := ProposalLead{
				ProposalId: id,
				LeadId:     leadID,
				Position:   i,
				Ctime:      now,
				Utime:      now,
			}
			if err := tx.Create(&pl).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return id, err
}

func (g *exchangeDAO) FindByID(ctx context.Context, id int64) (Proposal, error) {
	var res Proposal
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *exchangeDAO) FindBySN(ctx context.Context, sn string) (Proposal, error) {
	var res Proposal
	err := g.db.WithContext(ctx).First(&res, "sn = ?", sn).Error
	return res, err
}

func (g *exchangeDAO) FindLeadIDs(ctx context.Context, pid int64) ([]int64, error) {
	var leads []ProposalLead
	err := g.db.WithContext(ctx).
		Where("proposal_id = ?", pid).
		Order("position ASC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(leads))
	for _, l := range leads {
		ids = append(ids, l.LeadId)
	}
	return ids, nil
}

func (g *exchangeDAO) CountPending(ctx context.Context, applicantID, targetLeadID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Proposal{}).
		Where("applicant_id = ? AND target_lead_id = ? AND status = ?",
			applicantID, targetLeadID, ProposalStatusPending).
		Count(&count).Error
	return count, err
}

func (g *exchangeDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8, updates map[string]any) error {
	if updates == nil {
		updates = make(map[string]any, 2)
	}
	updates["status"] = to
	updates["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Proposal{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("更新交换申请状态失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *exchangeDAO) ListByApplicant(ctx context.Context, uid int64, offset, limit int) ([]Proposal, error) {
	var res []Proposal
	err := g.db.WithContext(ctx).
		Where("applicant_id = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *exchangeDAO) TotalByApplicant(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Proposal{}).Where("applicant_id = ?", uid).Count(&count).Error
	return count, err
}

func (g *exchangeDAO) ListByTargetOwner(ctx context.Context, uid int64, offset, limit int) ([]Proposal, error) {
	var res []Proposal
	err := g.db.WithContext(ctx).
		Where("target_owner_id = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *exchangeDAO) TotalByTargetOwner(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Proposal{}).Where("target_owner_id = ?", uid).Count(&count).Error
	return count, err
}

func (g *exchangeDAO) ListExpired(ctx context.Context, offset, limit int, now int64) ([]Proposal, error) {
	var res []Proposal
	err := g.db.WithContext(ctx).
		Where("status = ? AND expires_at < ?", ProposalStatusPending, now).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *exchangeDAO) TotalExpired(ctx context.Context, now int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Proposal{}).
		Where("status = ? AND expires_at < ?", ProposalStatusPending, now).
		Count(&count).Error
	return count, err
}

type Proposal struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:交换申请自增ID"`
	SN              string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_proposal_sn;comment:交换申请序列号"`
	ApplicantId     int64  `gorm:"not null;index:idx_applicant_id;comment:申请人ID"`
	TargetLeadId    int64  `gorm:"not null;index:idx_target_lead_id;comment:目标线索ID"`
	TargetOwnerId   int64  `gorm:"not null;index:idx_target_owner_id;comment:目标线索所有者ID"`
	TargetValue     int64  `gorm:"not null;comment:目标线索价值分"`
	OfferedValue    int64  `gorm:"not null;comment:提供线索价值分总和"`
	CreditGap       int64  `gorm:"not null;comment:积分差价, 正数为申请人补差价"`
	Reason          string `gorm:"type:varchar(512);not null;comment:申请理由"`
	Status          uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=待审批 2=结算中 3=已完成 4=已拒绝 5=已取消 6=已过期"`
	ResponseMessage string `gorm:"type:varchar(512);not null;default:'';comment:审批回复"`
	ExpiresAt       int64  `gorm:"not null;index:idx_status_expires_at,priority:2;comment:过期时间"`
	ApprovedAt      int64  `gorm:"comment:审批通过时间"`
	CompletedAt     int64  `gorm:"comment:结算完成时间"`
	Ctime           int64
	Utime           int64
}

// ProposalLead 申请提供的线索, 有序明细行, 不做任何字符串序列化
type ProposalLead struct {
	Id         int64 `gorm:"primaryKey;autoIncrement;comment:明细自增ID"`
	ProposalId int64 `gorm:"not null;index:idx_proposal_id;comment:交换申请ID"`
	LeadId     int64 `gorm:"not null;comment:提供的线索ID"`
	Position   int   `gorm:"not null;comment:在申请中的顺序, 从0开始"`
	Ctime      int64
	Utime      int64
}
