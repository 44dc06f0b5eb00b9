//go:build unit

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"avia-booking/internal/gateway/handler"
	"avia-booking/internal/gateway/usecase"
	"avia-booking/internal/httpx/middleware"
	gatewaymock "avia-booking/tests/mock/gateway"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *gatewaymock.MockBookingUseCase
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = gatewaymock.NewMockBookingUseCase(s.mockCtrl)
	h := handler.NewBookingHandler(s.mockBooking)

	s.router.GET("/api/v1/flights", h.GetFlights)
	protected := s.router.Group("/api/v1")
	protected.Use(middleware.RequireUser())
	{
		protected.GET("/tickets", h.GetUserTickets)
		protected.POST("/tickets", h.PurchaseTicket)
		protected.GET("/tickets/:ticketUid", h.GetTicket)
		protected.DELETE("/tickets/:ticketUid", h.RefundTicket)
		protected.GET("/me", h.GetUserInfo)
	}
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) do(method, path, username, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if username != "" {
		req.Header.Set(middleware.UserNameHeader, username)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestMissingUserNameHeaderIsRejected() {
	w := s.do(http.MethodGet, "/api/v1/tickets", "", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestPurchaseTicket() {
	ticketUID := uuid.New()
	s.mockBooking.EXPECT().
		PurchaseTicket(gomock.Any(), "Test Max", "AFL031", 1500, true).
		Return(&usecase.PurchaseView{
			TicketUID:     ticketUID,
			FlightNumber:  "AFL031",
			Price:         1500,
			Status:        "PAID",
			PaidByMoney:   1400,
			PaidByBonuses: 100,
			Privilege:     usecase.PrivilegeView{Balance: 0, Status: "BRONZE"},
		}, nil)
	s.mockBooking.EXPECT().
		GetTicketInfo(gomock.Any(), "Test Max", ticketUID).
		Return(&usecase.TicketView{
			TicketUID:    ticketUID,
			FlightNumber: "AFL031",
			FromAirport:  "Пулково Санкт-Петербург",
			ToAirport:    "Шереметьево Москва",
			Date:         "2021-10-08 20:00",
			Status:       "PAID",
			Price:        1500,
		}, nil)

	w := s.do(http.MethodPost, "/api/v1/tickets", "Test Max",
		`{"flightNumber":"AFL031","price":1500,"paidFromBalance":true}`)

	s.Require().Equal(http.StatusOK, w.Code)

	var resp handler.PurchaseTicketResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(ticketUID, resp.TicketUID)
	s.Equal(1400, resp.PaidByMoney)
	s.Equal(100, resp.PaidByBonuses)
	s.Equal("Пулково Санкт-Петербург", resp.FromAirport)
}

func (s *BookingHandlerTestSuite) TestPurchaseTicket_ValidationFailures() {
	cases := []struct {
		name string
		body string
	}{
		{"missing flightNumber", `{"price":1500,"paidFromBalance":true}`},
		{"zero price", `{"flightNumber":"AFL031","price":0,"paidFromBalance":true}`},
		{"negative price", `{"flightNumber":"AFL031","price":-10,"paidFromBalance":true}`},
		{"missing paidFromBalance", `{"flightNumber":"AFL031","price":1500}`},
		{"malformed json", `{"flightNumber":`},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			w := s.do(http.MethodPost, "/api/v1/tickets", "Test Max", tc.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *BookingHandlerTestSuite) TestPurchaseTicket_UnknownFlightIs400() {
	s.mockBooking.EXPECT().
		PurchaseTicket(gomock.Any(), "Test Max", "NOPE01", 1500, false).
		Return(nil, usecase.ErrFlightNotFound)

	w := s.do(http.MethodPost, "/api/v1/tickets", "Test Max",
		`{"flightNumber":"NOPE01","price":1500,"paidFromBalance":false}`)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Flight not found")
}

func (s *BookingHandlerTestSuite) TestPurchaseTicket_TicketServiceDownIs503() {
	s.mockBooking.EXPECT().
		PurchaseTicket(gomock.Any(), "Test Max", "AFL031", 1500, false).
		Return(nil, usecase.ErrTicketUnavailable)

	w := s.do(http.MethodPost, "/api/v1/tickets", "Test Max",
		`{"flightNumber":"AFL031","price":1500,"paidFromBalance":false}`)

	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetTicket_NotFound() {
	ticketUID := uuid.New()
	s.mockBooking.EXPECT().
		GetTicketInfo(gomock.Any(), "Test Max", ticketUID).
		Return(nil, usecase.ErrTicketNotFound)

	w := s.do(http.MethodGet, "/api/v1/tickets/"+ticketUID.String(), "Test Max", "")

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetTicket_MalformedUID() {
	w := s.do(http.MethodGet, "/api/v1/tickets/not-a-uuid", "Test Max", "")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestRefundTicket() {
	ticketUID := uuid.New()
	s.mockBooking.EXPECT().
		RefundTicket(gomock.Any(), "Test Max", ticketUID).
		Return(nil)

	w := s.do(http.MethodDelete, "/api/v1/tickets/"+ticketUID.String(), "Test Max", "")

	s.Equal(http.StatusNoContent, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetUserInfo() {
	s.mockBooking.EXPECT().
		GetUserInfo(gomock.Any(), "Test Max").
		Return(&usecase.UserInfoView{
			Tickets:   []*usecase.TicketView{},
			Privilege: usecase.PrivilegeView{Balance: 150, Status: "BRONZE"},
		}, nil)

	w := s.do(http.MethodGet, "/api/v1/me", "Test Max", "")

	s.Require().Equal(http.StatusOK, w.Code)

	var resp handler.UserInfoResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(150, resp.Privilege.Balance)
	s.NotNil(resp.Tickets)
}
