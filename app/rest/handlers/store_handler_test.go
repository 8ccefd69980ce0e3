package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"store-service/app/domain"
	mock_port "store-service/app/mocks"
	"store-service/app/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStoreHandler(t *testing.T, ctrl *gomock.Controller) (*StoreHandler, *mock_port.MockHandleValidator) {
	t.Helper()

	mockValidator := mock_port.NewMockHandleValidator(ctrl)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	handler := NewStoreHandler(mockValidator, testLogger)

	return handler, mockValidator
}

func newAvailabilityContext(handle string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	target := "/v1/stores/availability"
	if handle != "" {
		target += "?handle=" + url.QueryEscape(handle)
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestStoreHandler_CheckAvailability(t *testing.T) {
	tests := []struct {
		name          string
		handle        string
		setupMocks    func(*mock_port.MockHandleValidator)
		wantStatus    int
		wantHandle    string
		wantAvailable bool
	}{
		{
			name:   "available handle",
			handle: "@my-shop",
			setupMocks: func(m *mock_port.MockHandleValidator) {
				m.EXPECT().
					Validate(gomock.Any(), domain.StoreHandle("@my-shop")).
					Return(true, nil)
			},
			wantStatus:    http.StatusOK,
			wantHandle:    "@my-shop",
			wantAvailable: true,
		},
		{
			name:   "taken handle",
			handle: "@my-shop",
			setupMocks: func(m *mock_port.MockHandleValidator) {
				m.EXPECT().
					Validate(gomock.Any(), domain.StoreHandle("@my-shop")).
					Return(false, nil)
			},
			wantStatus:    http.StatusOK,
			wantHandle:    "@my-shop",
			wantAvailable: false,
		},
		{
			name:   "mixed case reported in normalized form",
			handle: "@My-Shop",
			setupMocks: func(m *mock_port.MockHandleValidator) {
				m.EXPECT().
					Validate(gomock.Any(), domain.StoreHandle("@My-Shop")).
					Return(true, nil)
			},
			wantStatus:    http.StatusOK,
			wantHandle:    "@my-shop",
			wantAvailable: true,
		},
		{
			name:   "registry failure reports unavailable",
			handle: "@my-shop",
			setupMocks: func(m *mock_port.MockHandleValidator) {
				m.EXPECT().
					Validate(gomock.Any(), domain.StoreHandle("@my-shop")).
					Return(false, domain.ErrInternal)
			},
			wantStatus:    http.StatusOK,
			wantHandle:    "@my-shop",
			wantAvailable: false,
		},
		{
			name:   "malformed handle reports unavailable",
			handle: "my-shop",
			setupMocks: func(m *mock_port.MockHandleValidator) {
				m.EXPECT().
					Validate(gomock.Any(), domain.StoreHandle("my-shop")).
					Return(false, nil)
			},
			wantStatus:    http.StatusOK,
			wantHandle:    "my-shop",
			wantAvailable: false,
		},
		{
			name:       "missing handle parameter",
			handle:     "",
			setupMocks: func(m *mock_port.MockHandleValidator) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler, mockValidator := newTestStoreHandler(t, ctrl)
			tt.setupMocks(mockValidator)

			c, rec := newAvailabilityContext(tt.handle)

			err := handler.CheckAvailability(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var resp AvailabilityResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantHandle, resp.Handle)
				assert.Equal(t, tt.wantAvailable, resp.Available)
			}
		})
	}
}
