package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	platformdomain "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/domain"
	platformmocks "github.com/vfg2006/growth-dashboard-api/infrastructure/integrator/platform/mocks"
	"github.com/vfg2006/growth-dashboard-api/internal/domain"
	"github.com/vfg2006/growth-dashboard-api/internal/usecases/loading"
	loadingmocks "github.com/vfg2006/growth-dashboard-api/internal/usecases/loading/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *platformmocks.MockPlatformIntegrator, *loadingmocks.MockSessioner) {
	t.Helper()

	ctrl := gomock.NewController(t)
	platformMock := platformmocks.NewMockPlatformIntegrator(ctrl)
	sessionsMock := loadingmocks.NewMockSessioner(ctrl)

	service := NewService(platformMock, sessionsMock).(*Service)
	service.WithClock(func() time.Time {
		return time.Date(2024, 2, 11, 0, 0, 0, 0, time.UTC)
	})

	return service, platformMock, sessionsMock
}

func testSession() *domain.DatasetSession {
	return &domain.DatasetSession{
		ID:       "abc123XYZ0",
		Source:   "customers.csv",
		LoadedAt: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		Customers: []domain.Customer{
			{Date: date(2024, 1, 1), CustomerID: "CUST001", CustomerName: "Ana", Plan: "Basic"},
			{Date: date(2024, 1, 15), CustomerID: "CUST002", CustomerName: "Bruno", Plan: "Premium"},
			{Date: date(2024, 2, 1), CustomerID: "CUST003", CustomerName: "Carla", Plan: "Basic"},
		},
	}
}

func TestGetPerformanceSnapshot(t *testing.T) {
	service, platformMock, _ := newTestService(t)

	snapshot := &domain.PerformanceSnapshot{
		TotalUsers:    100,
		ActiveUsers:   80,
		InactiveUsers: 20,
		NewUsers: domain.NewUserCounts{
			Last24h: 5,
			Last7d:  20,
			Last30d: 50,
		},
	}

	platformMock.EXPECT().GetPerformanceSnapshot().Return(snapshot, nil)

	got, err := service.GetPerformanceSnapshot()
	require.NoError(t, err)

	// Os valores do panorama são repassados sem recálculo
	assert.Equal(t, 100, got.TotalUsers)
	assert.Equal(t, 80, got.ActiveUsers)
	assert.Equal(t, 20, got.InactiveUsers)
	assert.Equal(t, 5, got.NewUsers.Last24h)
}

func TestGetPerformanceSnapshot_PlataformaInacessivel(t *testing.T) {
	service, platformMock, _ := newTestService(t)

	platformMock.EXPECT().
		GetPerformanceSnapshot().
		Return(nil, platformdomain.ErrUnreachable)

	got, err := service.GetPerformanceSnapshot()

	// Falha de transporte não produz dado parcial
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, platformdomain.ErrUnreachable))
}

func TestGetSessionSummary(t *testing.T) {
	service, _, sessionsMock := newTestService(t)

	sessionsMock.EXPECT().Get("abc123XYZ0").Return(testSession(), nil)

	response, err := service.GetSessionSummary("abc123XYZ0", &domain.DashboardFilters{})
	require.NoError(t, err)

	assert.Equal(t, 3, response.Summary.TotalCustomers)
	assert.Equal(t, "Basic", response.Summary.MostPopularPlan)
	require.Len(t, response.PlanBreakdown, 2)
	assert.Equal(t, "Basic", response.PlanBreakdown[0].Plan)
	assert.Equal(t, 2, response.PlanBreakdown[0].Count)
	assert.Equal(t, 1, response.NewCustomers.Last30d)
}

func TestGetSessionSummary_FiltroSemCorrespondencia(t *testing.T) {
	service, _, sessionsMock := newTestService(t)

	sessionsMock.EXPECT().Get("abc123XYZ0").Return(testSession(), nil)

	response, err := service.GetSessionSummary("abc123XYZ0", &domain.DashboardFilters{Plan: "Enterprise"})
	require.NoError(t, err)

	// Conjunto vazio responde com valores zerados, nunca erro
	assert.Equal(t, 0, response.Summary.TotalCustomers)
	assert.Empty(t, response.PlanBreakdown)
	assert.Equal(t, &domain.SignupWindows{}, response.NewCustomers)
}

func TestGetSessionSummary_SessaoInexistente(t *testing.T) {
	service, _, sessionsMock := newTestService(t)

	sessionsMock.EXPECT().
		Get("nao-existe").
		Return(nil, loading.ErrSessionNotFound)

	_, err := service.GetSessionSummary("nao-existe", nil)
	assert.True(t, errors.Is(err, loading.ErrSessionNotFound))
}

func TestGetSessionGrowth(t *testing.T) {
	service, _, sessionsMock := newTestService(t)

	sessionsMock.EXPECT().Get("abc123XYZ0").Return(testSession(), nil)

	response, err := service.GetSessionGrowth("abc123XYZ0", &domain.DashboardFilters{})
	require.NoError(t, err)

	require.Len(t, response.Cumulative, 3)
	assert.Equal(t, 3, response.Cumulative[2].Cumulative)

	require.Len(t, response.Monthly, 2)
	assert.Equal(t, "01-2024", response.Monthly[0].Month)
	assert.Equal(t, 2, response.Monthly[0].Signups)
}

func TestGetSessionCustomers(t *testing.T) {
	service, _, sessionsMock := newTestService(t)

	sessionsMock.EXPECT().Get("abc123XYZ0").Return(testSession(), nil)

	customers, err := service.GetSessionCustomers("abc123XYZ0", nil)
	require.NoError(t, err)

	// Do mais recente para o mais antigo
	require.Len(t, customers, 3)
	assert.Equal(t, "CUST003", customers[0].CustomerID)
	assert.Equal(t, "CUST002", customers[1].CustomerID)
	assert.Equal(t, "CUST001", customers[2].CustomerID)
}
