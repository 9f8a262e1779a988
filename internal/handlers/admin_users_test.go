package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mytenu/zaktwi/internal/models"
)

func TestAdminUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.User{
		{Name: "Abena Mensah", Username: "abena", Email: "abena@example.com"},
		{Name: "Kofi Owusu", Username: "kofi"},
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockAdminUsersLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "success",
			mockSetup: func(m *MockAdminUsersLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return(users, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty worksheet",
			mockSetup: func(m *MockAdminUsersLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockAdminUsersLister) {
				m.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("sheets unavailable"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAdminUsersLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewAdminUsersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp AdminUsersResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedLen, resp.Count)
				assert.Len(t, resp.Users, tt.expectedLen)
			}
		})
	}
}

func TestAdminUsersHandlerHidesPasswordHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockAdminUsersLister(ctrl)
	mockSvc.EXPECT().ListUsers(gomock.Any()).Return([]models.User{
		{Username: "abena", PasswordHash: "$2a$10$secret"},
	}, nil)

	handler := NewAdminUsersHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "$2a$10$secret")
}
