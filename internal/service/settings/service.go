package settings

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bizdash/bizops-backend-go/internal/domain/settings"
	"github.com/bizdash/bizops-backend-go/internal/pkg/backup"
	"github.com/bizdash/bizops-backend-go/internal/pkg/github"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

// freeTierLimitMB mirrors the storage allowance shown on the settings page
// for a hosted database free tier.
const freeTierLimitMB = 512.0

type SettingsServiceImpl struct {
	store      store.Store
	github     github.Client
	driver     string
	backupDir  string
	updateRepo string
	currentVer string
}

func NewSettingsService(recordStore store.Store, githubClient github.Client, driver, backupDir, updateRepo, currentVersion string) settings.SettingsService {
	return &SettingsServiceImpl{
		store:      recordStore,
		github:     githubClient,
		driver:     driver,
		backupDir:  backupDir,
		updateRepo: updateRepo,
		currentVer: currentVersion,
	}
}

// StorageStatus implements settings.SettingsService.
func (s *SettingsServiceImpl) StorageStatus(ctx context.Context) (settings.StorageStatus, error) {
	status := settings.StorageStatus{Driver: s.driver}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		return status, fmt.Errorf("failed to read store stats: %w", err)
	}

	status.Connected = true
	status.DataSizeMB = roundMB(stats.DataSizeBytes)
	status.Collections = stats.Collections
	status.Objects = stats.Objects

	if s.driver == "mongo" {
		status.StorageLimit = freeTierLimitMB
		status.UsedPercent = math.Round(status.DataSizeMB/freeTierLimitMB*10000) / 100
	}

	return status, nil
}

// TestConnection implements settings.SettingsService.
func (s *SettingsServiceImpl) TestConnection(ctx context.Context) settings.ConnectionTestResult {
	start := time.Now()
	if err := s.store.Ping(ctx); err != nil {
		return settings.ConnectionTestResult{
			Connected: false,
			Message:   err.Error(),
			LatencyMS: time.Since(start).Milliseconds(),
		}
	}
	return settings.ConnectionTestResult{
		Connected: true,
		Message:   "Connection successful",
		LatencyMS: time.Since(start).Milliseconds(),
	}
}

// ExportBackup implements settings.SettingsService.
func (s *SettingsServiceImpl) ExportBackup(ctx context.Context) (settings.BackupResult, error) {
	path, size, err := backup.Export(ctx, s.store, s.backupDir)
	if err != nil {
		return settings.BackupResult{}, err
	}
	return settings.BackupResult{
		Path:      path,
		SizeBytes: size,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// CheckForUpdates implements settings.SettingsService.
func (s *SettingsServiceImpl) CheckForUpdates(ctx context.Context) (settings.UpdateInfo, error) {
	release, err := s.github.LatestRelease(ctx, s.updateRepo)
	if err != nil {
		return settings.UpdateInfo{}, fmt.Errorf("failed to check for updates: %w", err)
	}

	return settings.UpdateInfo{
		CurrentVersion:  s.currentVer,
		LatestVersion:   release.TagName,
		UpdateAvailable: github.IsNewer(release.TagName, s.currentVer),
		ReleaseURL:      release.HTMLURL,
		ReleaseNotes:    release.Body,
	}, nil
}

func roundMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}
