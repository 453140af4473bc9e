package well

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/de-tools/decline-curve/pkg/models/api"
	"github.com/de-tools/decline-curve/pkg/models/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) ListWells(ctx context.Context) ([]domain.Well, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Well), args.Error(1)
}

func (m *mockExplorer) GetProfile(ctx context.Context, well domain.Well) (domain.WellProfile, error) {
	args := m.Called(ctx, well)
	return args.Get(0).(domain.WellProfile), args.Error(1)
}

var testProfile = domain.WellProfile{
	Well:   domain.Well{Name: "well-a"},
	Params: domain.DeclineParameters{Qi: 10000, D: 0.7, B: 1.4, Dlim: 0.1},
	Years:  40,
}

func setupRouter(explorer *mockExplorer) *chi.Mux {
	h := NewHandler(explorer)
	r := chi.NewRouter()
	r.Get("/wells", h.ListWells)
	r.Get("/wells/{well}/forecast", h.GetForecast)
	r.Get("/wells/{well}/cumulative", h.GetCumulative)
	r.Get("/wells/{well}/chart", h.GetChart)
	return r
}

func TestListWells(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListWells", mock.Anything).Return([]domain.Well{{Name: "well-a"}, {Name: "well-b"}}, nil)

	rec := httptest.NewRecorder()
	setupRouter(explorer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wells", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got []api.Well
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []api.Well{{Name: "well-a"}, {Name: "well-b"}}, got)
	explorer.AssertExpectations(t)
}

func TestGetForecast(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(*mockExplorer)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "full horizon from profile",
			path: "/wells/well-a/forecast",
			setupMock: func(m *mockExplorer) {
				m.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(testProfile, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got api.ForecastResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "well-a", got.Well)
				assert.Len(t, got.Daily, 40*365+1)
				assert.Len(t, got.Monthly, 40*12)
				assert.Equal(t, 10000.0, got.Daily[0])
				assert.Equal(t, 7*365, got.TlimDays)
			},
		},
		{
			name: "years override",
			path: "/wells/well-a/forecast?years=2",
			setupMock: func(m *mockExplorer) {
				m.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(testProfile, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got api.ForecastResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Len(t, got.Daily, 2*365+1)
				assert.Len(t, got.Monthly, 24)
			},
		},
		{
			name: "non-numeric years",
			path: "/wells/well-a/forecast?years=soon",
			setupMock: func(m *mockExplorer) {
				m.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(testProfile, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative years",
			path: "/wells/well-a/forecast?years=-3",
			setupMock: func(m *mockExplorer) {
				m.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(testProfile, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid decline parameters",
			path: "/wells/broken/forecast",
			setupMock: func(m *mockExplorer) {
				broken := testProfile
				broken.Params.D = 1.0
				m.On("GetProfile", mock.Anything, domain.Well{Name: "broken"}).Return(broken, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown well",
			path: "/wells/nonsuch/forecast",
			setupMock: func(m *mockExplorer) {
				m.On("GetProfile", mock.Anything, domain.Well{Name: "nonsuch"}).
					Return(domain.WellProfile{}, assert.AnError)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explorer := new(mockExplorer)
			tt.setupMock(explorer)

			rec := httptest.NewRecorder()
			setupRouter(explorer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.expectedStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec)
			}
			explorer.AssertExpectations(t)
		})
	}
}

func TestGetCumulative(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(testProfile, nil)

	rec := httptest.NewRecorder()
	setupRouter(explorer).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/wells/well-a/cumulative?month=480", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got api.CumulativeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 480, got.Month)
	assert.InDelta(t, 7872357.1268, got.Volume, 1.0)
}

func TestGetCumulative_HarmonicRejected(t *testing.T) {
	harmonic := testProfile
	harmonic.Params.B = 1.0

	explorer := new(mockExplorer)
	explorer.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(harmonic, nil)

	rec := httptest.NewRecorder()
	setupRouter(explorer).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/wells/well-a/cumulative", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetChart(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("GetProfile", mock.Anything, domain.Well{Name: "well-a"}).Return(testProfile, nil)

	rec := httptest.NewRecorder()
	setupRouter(explorer).ServeHTTP(rec,
		httptest.NewRequest(http.MethodGet, "/wells/well-a/chart?years=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Monthly rate")
}
