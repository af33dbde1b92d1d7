package settings

import "context"

type SettingsService interface {
	StorageStatus(ctx context.Context) (StorageStatus, error)
	TestConnection(ctx context.Context) ConnectionTestResult
	ExportBackup(ctx context.Context) (BackupResult, error)
	CheckForUpdates(ctx context.Context) (UpdateInfo, error)
}
