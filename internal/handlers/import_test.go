package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mytenu/zaktwi/internal/services"
	"github.com/mytenu/zaktwi/internal/session"
)

func buildMultipart(t *testing.T, fileContent []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if fileContent != nil {
		fw, err := mw.CreateFormFile("file", "upload.xlsx")
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestImportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		withSession  bool
		withFile     bool
		fields       map[string]string
		mockSetup    func(m *MockEntryImporter)
		expectedCode int
		expectedMsg  string
	}{
		{
			name:        "success",
			withSession: true,
			withFile:    true,
			fields:      map[string]string{"twi_column": "Twi", "english_column": "English"},
			mockSetup: func(m *MockEntryImporter) {
				m.EXPECT().
					Import(gomock.Any(), "abena", gomock.Any(), services.ImportOptions{
						TwiColumn:     "Twi",
						EnglishColumn: "English",
					}).
					Return(services.ImportResult{Inserted: 3, SkippedDuplicates: 1}, nil)
			},
			expectedCode: 200,
			expectedMsg:  "Import successful",
		},
		{
			name:        "nothing inserted",
			withSession: true,
			withFile:    true,
			mockSetup: func(m *MockEntryImporter) {
				m.EXPECT().
					Import(gomock.Any(), "abena", gomock.Any(), services.ImportOptions{}).
					Return(services.ImportResult{SkippedDuplicates: 2}, nil)
			},
			expectedCode: 200,
			expectedMsg:  "No new rows inserted",
		},
		{
			name:        "unreadable file",
			withSession: true,
			withFile:    true,
			mockSetup: func(m *MockEntryImporter) {
				m.EXPECT().
					Import(gomock.Any(), "abena", gomock.Any(), services.ImportOptions{}).
					Return(services.ImportResult{}, services.ErrImportUnreadable)
			},
			expectedCode: 400,
		},
		{
			name:        "named column not found",
			withSession: true,
			withFile:    true,
			fields:      map[string]string{"twi_column": "Nope"},
			mockSetup: func(m *MockEntryImporter) {
				m.EXPECT().
					Import(gomock.Any(), "abena", gomock.Any(), services.ImportOptions{TwiColumn: "Nope"}).
					Return(services.ImportResult{}, services.ErrImportColumnNotFound)
			},
			expectedCode: 400,
		},
		{
			name:         "missing file field",
			withSession:  true,
			withFile:     false,
			expectedCode: 400,
		},
		{
			name:         "no session",
			withSession:  false,
			withFile:     true,
			expectedCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockEntryImporter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewImportHandler(mockSvc)

			var fileContent []byte
			if tt.withFile {
				fileContent = []byte("not a real spreadsheet, the service is mocked")
			}
			body, contentType := buildMultipart(t, fileContent, tt.fields)

			req := httptest.NewRequest(http.MethodPost, "/entries/import", body)
			req.Header.Set("Content-Type", contentType)
			if tt.withSession {
				ctx := session.NewContext(req.Context(), session.Session{Username: "abena"})
				req = req.WithContext(ctx)
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedMsg != "" {
				var resp ImportResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Message)
			}
		})
	}
}
