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

	"github.com/ecodeclub/leadmarket/internal/user/internal/domain"
	"github.com/ecodeclub/leadmarket/internal/user/internal/repository"
)

var ErrUserNotFound = repository.ErrUserNotFound

//go:generate mockgen -source=./service.go -destination=../../mocks/user.mock.go -package=usermocks Service
type Service interface {
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

type service struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) Service {
	return &service{repo: repo}
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	return s.repo.FindByIDs(ctx, ids)
}
