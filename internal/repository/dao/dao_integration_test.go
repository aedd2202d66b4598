package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/bolaohub/bolao-api/pkg/dockertester"
)

type DAOTestSuite struct {
	suite.Suite

	tester *dockertester.Tester
}

func TestDAOTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(DAOTestSuite))
}

func (s *DAOTestSuite) SetupSuite() {
	tester, err := dockertester.New()
	require.NoError(s.T(), err)

	s.tester = tester
	require.NoError(s.T(), InitTables(tester.DB))
}

func (s *DAOTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.tester.Close())
}

func (s *DAOTestSuite) TestUserDAO_UniqueEmail() {
	ctx := context.Background()
	userDAO := NewUserDAO(s.tester.DB)

	created, err := userDAO.Insert(ctx, User{
		Email:    "ana@example.com",
		Password: "hash",
		Name:     "Ana",
		Role:     "user",
	})
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), created.ID)

	_, err = userDAO.Insert(ctx, User{
		Email:    "ana@example.com",
		Password: "hash",
		Name:     "Ana Again",
		Role:     "user",
	})
	assert.ErrorIs(s.T(), err, ErrUserEmailExists)

	found, err := userDAO.FindByEmail(ctx, "ana@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, found.ID)
}

func (s *DAOTestSuite) TestDrawDAO_OrderAndNumbers() {
	ctx := context.Background()
	drawDAO := NewDrawDAO(s.tester.DB)

	day := func(d int) time.Time {
		return time.Date(2025, time.March, d, 20, 0, 0, 0, time.UTC)
	}

	later, err := drawDAO.Insert(ctx, Draw{
		ContestID: 42,
		Code:      "DRW-20250312-AAAAAA",
		Numbers:   IntList{4, 5, 9},
		DrawDate:  day(12),
		CreatedBy: 1,
	})
	require.NoError(s.T(), err)

	earlier, err := drawDAO.Insert(ctx, Draw{
		ContestID: 42,
		Code:      "DRW-20250310-BBBBBB",
		Numbers:   IntList{1, 2, 3},
		DrawDate:  day(10),
		CreatedBy: 1,
	})
	require.NoError(s.T(), err)

	draws, err := drawDAO.ListByContestID(ctx, 42)
	require.NoError(s.T(), err)
	require.Len(s.T(), draws, 2)

	assert.Equal(s.T(), earlier.ID, draws[0].ID)
	assert.Equal(s.T(), later.ID, draws[1].ID)
	assert.Equal(s.T(), IntList{1, 2, 3}, draws[0].Numbers)

	count, err := drawDAO.CountByContestID(ctx, 42)
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 2, count)
}

func (s *DAOTestSuite) TestPaymentDAO_SumPaid() {
	ctx := context.Background()
	paymentDAO := NewPaymentDAO(s.tester.DB)

	now := time.Now()
	_, err := paymentDAO.Insert(ctx, Payment{
		ParticipationID: 1, ContestID: 7, UserID: 1,
		ExternalID: "pay_a", Amount: 50, Status: "paid", PaidAt: &now,
	})
	require.NoError(s.T(), err)

	_, err = paymentDAO.Insert(ctx, Payment{
		ParticipationID: 2, ContestID: 7, UserID: 2,
		ExternalID: "pay_b", Amount: 45, Status: "paid", PaidAt: &now,
	})
	require.NoError(s.T(), err)

	_, err = paymentDAO.Insert(ctx, Payment{
		ParticipationID: 3, ContestID: 7, UserID: 3,
		ExternalID: "pay_c", Amount: 50, Status: "pending",
	})
	require.NoError(s.T(), err)

	total, err := paymentDAO.SumPaidByContestID(ctx, 7)
	require.NoError(s.T(), err)
	assert.InDelta(s.T(), 95, total, 1e-9)

	total, err = paymentDAO.SumPaidByContestID(ctx, 999)
	require.NoError(s.T(), err)
	assert.Zero(s.T(), total)
}
