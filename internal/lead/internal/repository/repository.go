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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/leadmarket/internal/lead/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/lead/internal/repository/dao"
)

var (
	ErrLeadNotFound        = dao.ErrRecordNotFound
	ErrLeadNotTransferable = dao.ErrLeadNotTransferable
)

type LeadRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Lead, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Lead, error)
	UpdateOwner(ctx context.Context, id, fromUID, toUID int64) error
}

type leadRepository struct {
	dao dao.LeadDAO
}

func NewLeadRepository(dao dao.LeadDAO) LeadRepository {
	return &leadRepository{dao: dao}
}

func (r *leadRepository) FindByID(ctx context.Context, id int64) (domain.Lead, error) {
	l, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Lead{}, err
	}
	return r.toDomain(l), nil
}

func (r *leadRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Lead, error) {
	ls, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(ls, func(idx int, src dao.Lead) domain.Lead {
		return r.toDomain(src)
	}), err
}

func (r *leadRepository) UpdateOwner(ctx context.Context, id, fromUID, toUID int64) error {
	return r.dao.UpdateOwner(ctx, id, fromUID, toUID)
}

func (r *leadRepository) toDomain(d dao.Lead) domain.Lead {
	return domain.Lead{
		ID:      d.Id,
		OwnerID: d.OwnerId,
		Title:   d.Title,
		Company: d.Company,
		Grade:   domain.Grade(d.Grade),
		Status:  domain.Status(d.Status),
		Ctime:   d.Ctime,
		Utime:   d.Utime,
	}
}
