package http

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/bizdash/bizops-backend-go/internal/domain/settings"
	"github.com/bizdash/bizops-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	StorageStatus(w http.ResponseWriter, r *http.Request)
	TestConnection(w http.ResponseWriter, r *http.Request)
	ExportBackup(w http.ResponseWriter, r *http.Request)
	CheckForUpdates(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// StorageStatus implements SettingsHandler.
func (h *settingsHandlerImpl) StorageStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.StorageStatus(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TestConnection implements SettingsHandler.
func (h *settingsHandlerImpl) TestConnection(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.settingsService.TestConnection(r.Context()))
}

// ExportBackup implements SettingsHandler. The workbook is written to the
// backup directory and streamed back as a download.
func (h *settingsHandlerImpl) ExportBackup(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.ExportBackup(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(result.Path)))
	http.ServeFile(w, r, result.Path)
}

// CheckForUpdates implements SettingsHandler.
func (h *settingsHandlerImpl) CheckForUpdates(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.CheckForUpdates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
