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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type UserDAO interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]User, error)
}

type userDAO struct {
	db *egorm.Component
}

func NewUserGORMDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

func (g *userDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var res User
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *userDAO) FindByIDs(ctx context.Context, ids []int64) ([]User, error) {
	var res []User
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:用户自增ID"`
	Nickname string `gorm:"type:varchar(128);not null;comment:昵称"`
	Company  string `gorm:"type:varchar(255);not null;comment:所属公司"`
	Ctime    int64
	Utime    int64
}
