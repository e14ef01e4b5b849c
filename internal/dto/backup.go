package dto

// --- Backup DTOs ---

// ImportBackupResponse acknowledges a restored backup document.
type ImportBackupResponse struct {
	Restored bool `json:"restored"`
}
