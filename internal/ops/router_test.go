package ops

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/paxosraft/quorumbot/internal/domain"
	"github.com/paxosraft/quorumbot/internal/ops/mocks"
)

type RouterTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockDB    *mocks.MockPinger
	mockStats *mocks.MockStatsProvider
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())
	s.mockDB = mocks.NewMockPinger(mockCtrl)
	s.mockStats = mocks.NewMockStatsProvider(mockCtrl)

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.router = New(RouterArgs{
		Logger: l,
		DB:     s.mockDB,
		Stats:  s.mockStats,
	})
}

func (s *RouterTestSuite) get(route string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, route, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestHealth() {
	s.Run("ok", func() {
		s.mockDB.EXPECT().Ping(gomock.Any()).Return(nil)

		rec := s.get(HealthRoute)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("database unreachable", func() {
		s.mockDB.EXPECT().Ping(gomock.Any()).Return(errors.New("dial timeout"))

		rec := s.get(HealthRoute)
		s.Equal(http.StatusServiceUnavailable, rec.Code)
	})
}

func (s *RouterTestSuite) TestStats() {
	s.Run("ok", func() {
		stats := &domain.Stats{
			Users:  int64(gofakeit.Number(1, 1000)),
			Trades: int64(gofakeit.Number(1, 10000)),
		}
		s.mockStats.EXPECT().Stats(gomock.Any()).Return(stats, nil)

		rec := s.get(StatsRoute)
		s.Require().Equal(http.StatusOK, rec.Code)

		var body struct {
			Users  int64 `json:"users"`
			Trades int64 `json:"trades"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(stats.Users, body.Users)
		s.Equal(stats.Trades, body.Trades)
	})

	s.Run("provider failure", func() {
		s.mockStats.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("db down"))

		rec := s.get(StatsRoute)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
