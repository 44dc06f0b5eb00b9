//go:build unit

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"avia-booking/internal/bonus/handler"
	"avia-booking/internal/bonus/usecase"
	"avia-booking/internal/httpx/middleware"
	bonusmock "avia-booking/tests/mock/bonus"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PrivilegeHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockPrivilege *bonusmock.MockPrivilegeUseCase
}

func (s *PrivilegeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPrivilege = bonusmock.NewMockPrivilegeUseCase(s.mockCtrl)
	h := handler.NewPrivilegeHandler(s.mockPrivilege)

	group := s.router.Group("/api/v1/privilege")
	group.Use(middleware.RequireUser())
	{
		group.GET("", h.GetPrivilege)
		group.POST("/calculate", h.Calculate)
		group.POST("/rollback", h.Rollback)
	}
}

func (s *PrivilegeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPrivilegeHandlerSuite(t *testing.T) {
	suite.Run(t, new(PrivilegeHandlerTestSuite))
}

func (s *PrivilegeHandlerTestSuite) do(method, path, username, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set(middleware.UserNameHeader, username)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PrivilegeHandlerTestSuite) TestGetPrivilege() {
	ticketUID := uuid.New()
	s.mockPrivilege.EXPECT().
		GetPrivilege(gomock.Any(), "Test Max").
		Return(&usecase.PrivilegeRM{
			Balance: 1500,
			Status:  "GOLD",
			History: []usecase.HistoryEntryRM{
				{Date: time.Date(2021, 10, 8, 19, 59, 19, 0, time.UTC), TicketUID: ticketUID, BalanceDiff: 150, OperationType: "FILL_IN_BALANCE"},
			},
		}, nil)

	w := s.do(http.MethodGet, "/api/v1/privilege", "Test Max", "")

	s.Require().Equal(http.StatusOK, w.Code)

	var resp handler.PrivilegeInfoResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(1500, resp.Balance)
	s.Equal("GOLD", resp.Status)
	s.Require().Len(resp.History, 1)
	s.Equal(ticketUID, resp.History[0].TicketUID)
	s.Equal("FILL_IN_BALANCE", resp.History[0].OperationType)
}

func (s *PrivilegeHandlerTestSuite) TestGetPrivilege_UnknownUserIs404() {
	s.mockPrivilege.EXPECT().
		GetPrivilege(gomock.Any(), "Nobody").
		Return(nil, usecase.ErrPrivilegeNotFound)

	w := s.do(http.MethodGet, "/api/v1/privilege", "Nobody", "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PrivilegeHandlerTestSuite) TestGetPrivilege_MissingHeaderIs400() {
	w := s.do(http.MethodGet, "/api/v1/privilege", "", "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "X-User-Name")
}

func (s *PrivilegeHandlerTestSuite) TestCalculate_Debit() {
	s.mockPrivilege.EXPECT().
		ApplyOperation(gomock.Any(), "Test Max", uuid.Nil, 1500, true).
		Return(&usecase.OperationResultRM{
			PaidByBonuses: 100,
			BalanceDiff:   -100,
			Balance:       0,
			Status:        "BRONZE",
		}, nil)

	// The all-zero uid is a legal key: purchase-time operations are applied
	// before the ticket exists.
	w := s.do(http.MethodPost, "/api/v1/privilege/calculate", "Test Max",
		`{"ticketUid":"00000000-0000-0000-0000-000000000000","price":1500,"paidFromBalance":true}`)

	s.Require().Equal(http.StatusOK, w.Code)

	var resp handler.BonusOperationResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(100, resp.PaidByBonuses)
	s.Equal(-100, resp.BalanceDiff)
	s.Equal(0, resp.Privilege.Balance)
}

func (s *PrivilegeHandlerTestSuite) TestCalculate_FalsePaidFromBalancePassesBinding() {
	s.mockPrivilege.EXPECT().
		ApplyOperation(gomock.Any(), "Test Max", uuid.Nil, 1500, false).
		Return(&usecase.OperationResultRM{
			PaidByBonuses: 0,
			BalanceDiff:   150,
			Balance:       150,
			Status:        "BRONZE",
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/privilege/calculate", "Test Max",
		`{"ticketUid":"00000000-0000-0000-0000-000000000000","price":1500,"paidFromBalance":false}`)

	s.Require().Equal(http.StatusOK, w.Code)
}

func (s *PrivilegeHandlerTestSuite) TestCalculate_ValidationFailures() {
	cases := []struct {
		name string
		body string
	}{
		{"missing price", `{"paidFromBalance":true}`},
		{"missing paidFromBalance", `{"price":1500}`},
		{"malformed json", `{"price":`},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(http.MethodPost, "/api/v1/privilege/calculate", "Test Max", tc.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *PrivilegeHandlerTestSuite) TestCalculate_NonPositivePriceIs400() {
	s.mockPrivilege.EXPECT().
		ApplyOperation(gomock.Any(), "Test Max", uuid.Nil, -5, true).
		Return(nil, usecase.ErrInvalidPrice)

	w := s.do(http.MethodPost, "/api/v1/privilege/calculate", "Test Max",
		`{"ticketUid":"00000000-0000-0000-0000-000000000000","price":-5,"paidFromBalance":true}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PrivilegeHandlerTestSuite) TestRollback() {
	ticketUID := uuid.New()
	s.mockPrivilege.EXPECT().
		Rollback(gomock.Any(), "Test Max", ticketUID).
		Return(nil)

	w := s.do(http.MethodPost, "/api/v1/privilege/rollback", "Test Max",
		`{"ticketUid":"`+ticketUID.String()+`"}`)

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *PrivilegeHandlerTestSuite) TestRollback_NoHistoryIs404() {
	ticketUID := uuid.New()
	s.mockPrivilege.EXPECT().
		Rollback(gomock.Any(), "Test Max", ticketUID).
		Return(usecase.ErrHistoryNotFound)

	w := s.do(http.MethodPost, "/api/v1/privilege/rollback", "Test Max",
		`{"ticketUid":"`+ticketUID.String()+`"}`)

	s.Equal(http.StatusNotFound, w.Code)
}
