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

//go:build e2e

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	creditmocks "github.com/ecodeclub/leadmarket/internal/credit/mocks"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/errs"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/integration/startup"
	"github.com/ecodeclub/leadmarket/internal/exchange/internal/web"
	leadmocks "github.com/ecodeclub/leadmarket/internal/lead/mocks"
	"github.com/ecodeclub/leadmarket/internal/test"
	testioc "github.com/ecodeclub/leadmarket/internal/test/ioc"
	usermocks "github.com/ecodeclub/leadmarket/internal/user/mocks"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HandlerTestSuite 以申请人身份走完 HTTP 层, 审批侧语义在 ModuleTestSuite 里覆盖
type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	m := &svcMocks{
		leadSvc:   leadmocks.NewMockService(ctrl),
		creditSvc: creditmocks.NewMockService(ctrl),
		userSvc:   usermocks.NewMockService(ctrl),
	}
	m.stubFixtures()
	// 积分侧的精确断言在服务层测试里, 这里全部放行
	m.creditSvc.EXPECT().FreezeCredits(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()
	m.creditSvc.EXPECT().UnfreezeCredits(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).AnyTimes()

	s.db = testioc.InitDB()
	handler := startup.InitHandler(s.db, testioc.InitMQ(), testioc.InitCache(),
		m.leadSvc, m.creditSvc, m.userSvc)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: applicantID,
		}))
	})
	handler.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"proposals", "proposal_leads", "histories", "history_leads"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *HandlerTestSuite) applyReq(requestID string) web.ApplyReq {
	return web.ApplyReq{
		RequestID:      requestID,
		TargetLeadID:   targetLeadID,
		OfferedLeadIDs: []int64{3, 5},
		Reason:         "互补客户资源",
	}
}

func (s *HandlerTestSuite) TestApply() {
	t := s.T()
	requestID := fmt.Sprintf("req-%d", time.Now().UnixNano())

	req, err := http.NewRequest(http.MethodPost, "/exchange/apply", iox.NewJSONReader(s.applyReq(requestID)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ApplyResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := recorder.MustScan()
	assert.NotZero(t, resp.Data.ID)
	assert.NotEmpty(t, resp.Data.SN)
	assert.Equal(t, int64(2), resp.Data.CreditGap)

	// 同一个 requestId 再次提交被防重拦截
	req, err = http.NewRequest(http.MethodPost, "/exchange/apply", iox.NewJSONReader(s.applyReq(requestID)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, http.StatusInternalServerError, recorder2.Code)
	assert.Equal(t, errs.ValidationError.Code, recorder2.MustScan().Code)

	// 换 requestId 也不行, 对同一目标线索已有待审批申请
	newID := fmt.Sprintf("req-%d", time.Now().UnixNano())
	req, err = http.NewRequest(http.MethodPost, "/exchange/apply", iox.NewJSONReader(s.applyReq(newID)))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder3 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder3, req)
	require.Equal(t, http.StatusInternalServerError, recorder3.Code)
	assert.Equal(t, errs.ValidationError.Code, recorder3.MustScan().Code)
}

func (s *HandlerTestSuite) TestApplyUnknownTarget() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/exchange/apply", iox.NewJSONReader(web.ApplyReq{
		TargetLeadID:   999,
		OfferedLeadIDs: []int64{3},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, errs.ValidationError.Code, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestCancelAndDetail() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/exchange/apply",
		iox.NewJSONReader(s.applyReq(fmt.Sprintf("req-%d", time.Now().UnixNano()))))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	applyRecorder := test.NewJSONResponseRecorder[web.ApplyResp]()
	s.server.ServeHTTP(applyRecorder, req)
	require.Equal(t, http.StatusOK, applyRecorder.Code)
	id := applyRecorder.MustScan().Data.ID

	req, err = http.NewRequest(http.MethodPost, "/exchange/detail", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.Proposal]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, http.StatusOK, detailRecorder.Code)
	detail := detailRecorder.MustScan().Data
	assert.Equal(t, uint8(1), detail.Status)
	assert.Equal(t, []int64{3, 5}, detail.OfferedLeadIDs)

	req, err = http.NewRequest(http.MethodPost, "/exchange/cancel", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	cancelRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(cancelRecorder, req)
	require.Equal(t, http.StatusOK, cancelRecorder.Code)

	// 取消后重复取消, 状态冲突
	req, err = http.NewRequest(http.MethodPost, "/exchange/cancel", iox.NewJSONReader(web.IDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	againRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(againRecorder, req)
	require.Equal(t, http.StatusInternalServerError, againRecorder.Code)
	assert.Equal(t, errs.InvalidState.Code, againRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestListApplied() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost, "/exchange/apply",
		iox.NewJSONReader(s.applyReq(fmt.Sprintf("req-%d", time.Now().UnixNano()))))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	applyRecorder := test.NewJSONResponseRecorder[web.ApplyResp]()
	s.server.ServeHTTP(applyRecorder, req)
	require.Equal(t, http.StatusOK, applyRecorder.Code)

	req, err = http.NewRequest(http.MethodPost, "/exchange/list/applied",
		iox.NewJSONReader(web.Page{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ListProposalsResp]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(t, http.StatusOK, listRecorder.Code)
	list := listRecorder.MustScan().Data
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Proposals, 1)
	assert.Equal(t, targetLeadID, list.Proposals[0].TargetLeadID)
	// 列表页不回填提供线索明细
	assert.Empty(t, list.Proposals[0].OfferedLeadIDs)
}
