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

	"github.com/ecodeclub/leadmarket/internal/lead/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/lead/internal/repository"
)

var (
	ErrLeadNotFound        = repository.ErrLeadNotFound
	ErrLeadNotTransferable = repository.ErrLeadNotTransferable
)

//go:generate mockgen -source=./service.go -destination=../../mocks/lead.mock.go -package=leadmocks Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.Lead, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Lead, error)
	// TransferOwnership 把归属 fromUID 且可交换的线索转移给 toUID
	TransferOwnership(ctx context.Context, leadID, fromUID, toUID int64) error
	ValueOf(lead domain.Lead) int64
	TotalValueOf(leads []domain.Lead) int64
}

type service struct {
	repo repository.LeadRepository
}

func NewLeadService(repo repository.LeadRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Lead, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.Lead, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) TransferOwnership(ctx context.Context, leadID, fromUID, toUID int64) error {
	return s.repo.UpdateOwner(ctx, leadID, fromUID, toUID)
}

func (s *service) ValueOf(lead domain.Lead) int64 {
	return lead.Value()
}

func (s *service) TotalValueOf(leads []domain.Lead) int64 {
	var total int64
	for _, l := range leads {
		total += l.Value()
	}
	return total
}
