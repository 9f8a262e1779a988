package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/services"
	"github.com/mytenu/zaktwi/internal/session"
)

// EntryImporter defines the interface that the service must implement.
type EntryImporter interface {
	Import(ctx context.Context, username string, file io.Reader, opts services.ImportOptions) (services.ImportResult, error)
}

// maxImportSize caps the multipart form held in memory.
const maxImportSize = 16 << 20

// ImportResponse represents a successful bulk import response
// swagger:model ImportResponse
type ImportResponse struct {
	// Success message
	// example: Inserted 12 new rows
	Message string `json:"message"`

	// Per-row outcome counts
	Result services.ImportResult `json:"result"`
}

// ImportErrorResponse represents an error response for bulk import
// swagger:model ImportErrorResponse
type ImportErrorResponse struct {
	// Error message
	// example: could not read import file
	Error string `json:"error"`
}

// NewImportHandler returns an HTTP handler for .xlsx bulk import. The file
// is the multipart field "file"; optional fields "twi_column",
// "english_column" and "date_column" name header columns, defaulting to the
// first two columns and today's date.
// @Summary Bulk-import sentence pairs from a spreadsheet
// @Description Inserts every valid, non-duplicate row of an uploaded .xlsx file as entries owned by the logged-in user. Invalid and duplicate rows are skipped and counted.
// @Tags dataset
// @Accept mpfd
// @Produce json
// @Param file formData file true "Spreadsheet file (.xlsx)"
// @Param twi_column formData string false "Header name of the Twi column"
// @Param english_column formData string false "Header name of the English column"
// @Param date_column formData string false "Header name of the date column"
// @Success 200 {object} handlers.ImportResponse "Import summary"
// @Failure 400 {object} handlers.ImportErrorResponse "Unreadable file or missing column"
// @Failure 401 {object} handlers.ImportErrorResponse "Unauthorized"
// @Router /entries/import [post]
// @Security BearerAuth
func NewImportHandler(svc EntryImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		s, ok := session.FromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ImportErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ImportErrorResponse{Error: "invalid multipart form"})
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ImportErrorResponse{Error: "missing file field"})
			return
		}
		defer file.Close()

		opts := services.ImportOptions{
			TwiColumn:     r.FormValue("twi_column"),
			EnglishColumn: r.FormValue("english_column"),
			DateColumn:    r.FormValue("date_column"),
		}

		result, err := svc.Import(ctx, s.Username, file, opts)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrImportUnreadable),
				errors.Is(err, services.ErrImportTooFewColumns),
				errors.Is(err, services.ErrImportColumnNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ImportErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ImportErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		msg := "No new rows inserted"
		if result.Inserted > 0 {
			msg = "Import successful"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ImportResponse{
			Message: msg,
			Result:  result,
		})
	}
}
