package settings

// StorageStatus reports how much space the record store is using. For the
// document store the numbers come from the server's database stats; for the
// spreadsheet store they come from the workbook file.
type StorageStatus struct {
	Driver       string  `json:"driver"`
	Connected    bool    `json:"connected"`
	DataSizeMB   float64 `json:"data_size_mb"`
	StorageLimit float64 `json:"storage_limit_mb,omitempty"`
	UsedPercent  float64 `json:"used_percent,omitempty"`
	Collections  int64   `json:"collections,omitempty"`
	Objects      int64   `json:"objects,omitempty"`
}

type ConnectionTestResult struct {
	Connected bool   `json:"connected"`
	Message   string `json:"message"`
	LatencyMS int64  `json:"latency_ms"`
}

type BackupResult struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	CreatedAt string `json:"created_at"`
}

// UpdateInfo is the result of comparing the running version against the
// latest published release.
type UpdateInfo struct {
	CurrentVersion  string `json:"current_version"`
	LatestVersion   string `json:"latest_version"`
	UpdateAvailable bool   `json:"update_available"`
	ReleaseURL      string `json:"release_url,omitempty"`
	ReleaseNotes    string `json:"release_notes,omitempty"`
}
