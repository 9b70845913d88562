package spin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/dto"
	"github.com/rgalimov/fortuna/internal/service/ledgerservice"
	"github.com/rgalimov/fortuna/internal/service/spinservice"
	"github.com/rgalimov/fortuna/internal/wheel"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SpinHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestSpin(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.SpinResponseDTO
	}{
		{
			name: "Winning spin",
			body: `{"user_id":100500}`,
			prepareMock: func() {
				service.EXPECT().Spin(gomock.Any(), int64(100500)).Return(&spinservice.Result{
					Prize: wheel.Sector{
						Segment: "⭐",
						Label:   "5 free attempts",
						Kind:    domain.PrizeAttempt,
						Value:   "5",
					},
					Remaining: 4,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SpinResponseDTO{
				Segment:   "⭐",
				Prize:     "5 free attempts",
				Kind:      "attempt",
				Value:     "5",
				Remaining: 4,
			},
		},
		{
			name: "No attempts left",
			body: `{"user_id":100500}`,
			prepareMock: func() {
				service.EXPECT().Spin(gomock.Any(), int64(100500)).
					Return(nil, ledgerservice.ErrInsufficientAttempts)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Malformed body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage error",
			body: `{"user_id":100500}`,
			prepareMock: func() {
				service.EXPECT().Spin(gomock.Any(), int64(100500)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/spin", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Spin(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.SpinResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestGetPrizes(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Prizes returned",
			target: "/api/user/prizes?user_id=100500",
			prepareMock: func() {
				service.EXPECT().Prizes(gomock.Any(), int64(100500)).Return([]domain.Prize{
					{ID: 1, UserID: 100500, Kind: domain.PrizeMoney, Value: "100", CreatedAt: time.Now()},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "No prizes",
			target: "/api/user/prizes?user_id=100500",
			prepareMock: func() {
				service.EXPECT().Prizes(gomock.Any(), int64(100500)).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Missing user_id",
			target:       "/api/user/prizes",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.GetPrizes(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestClaimPrize(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Prize claimed",
			body: `{"user_id":100500,"prize_id":1}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), int64(100500), int64(1)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown or foreign prize",
			body: `{"user_id":100500,"prize_id":404}`,
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), int64(100500), int64(404)).
					Return(spinservice.ErrPrizeNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed body",
			body:         `nope`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/user/prizes/claim", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ClaimPrize(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
