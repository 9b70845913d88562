package attempts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rgalimov/fortuna/internal/domain"
	"github.com/rgalimov/fortuna/internal/dto"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AttemptsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetAttempts(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedBody dto.AttemptsResponseDTO
	}{
		{
			name:   "Known user",
			target: "/api/user/attempts?user_id=1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), int64(1)).Return(&domain.Attempts{UserID: 1, Paid: 5, Used: 2}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AttemptsResponseDTO{Paid: 5, Used: 2, Remaining: 3},
		},
		{
			name:   "Unknown user reads zeros",
			target: "/api/user/attempts?user_id=99",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), int64(99)).Return(&domain.Attempts{UserID: 99}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.AttemptsResponseDTO{},
		},
		{
			name:         "Missing user_id",
			target:       "/api/user/attempts",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Storage error",
			target: "/api/user/attempts?user_id=1",
			prepareMock: func() {
				service.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.GetAttempts(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.AttemptsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
