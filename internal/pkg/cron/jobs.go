package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/settings"
)

// NewBackupJob writes a full backup workbook once a day.
func NewBackupJob(settingsService settings.SettingsService) Job {
	return Job{
		Name:     "nightly-backup",
		Interval: 24 * time.Hour,
		Fn: func(ctx context.Context) error {
			result, err := settingsService.ExportBackup(ctx)
			if err != nil {
				return fmt.Errorf("failed to export backup: %w", err)
			}
			slog.Info("Backup written", "path", result.Path, "size_bytes", result.SizeBytes)
			return nil
		},
	}
}

// NewLowStockJob scans stock hourly and logs items at or below their minimum
// stock level.
func NewLowStockJob(stockRepo inventory.StockRepository) Job {
	return Job{
		Name:       "low-stock-scan",
		Interval:   time.Hour,
		RunOnStart: true,
		Fn: func(ctx context.Context) error {
			items, err := stockRepo.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list stock: %w", err)
			}
			for _, item := range items {
				if item.MinimumStock.IsPositive() && item.CurrentQuantity.LessThanOrEqual(item.MinimumStock) {
					slog.Warn("Stock at or below minimum level",
						"item", item.ItemName,
						"quantity", item.CurrentQuantity.String(),
						"minimum", item.MinimumStock.String())
				}
			}
			return nil
		},
	}
}
