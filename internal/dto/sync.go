package dto

// SyncStatusDTO Sync status snapshot returned to clients.
// LastSyncTime is epoch milliseconds, zero when no backup exists.
// SyncStatusDTO 返回给客户端的同步状态快照。
// LastSyncTime 为毫秒时间戳，无备份时为零。
type SyncStatusDTO struct {
	Provider     string `json:"provider"`
	Account      string `json:"account"`
	SignedIn     bool   `json:"signedIn"`
	AutoSync     bool   `json:"autoSync"`
	LastSyncTime int64  `json:"lastSyncTime"`
}

// SyncResultDTO 备份/恢复操作的结果
type SyncResultDTO struct {
	Notes      int   `json:"notes"`
	Categories int   `json:"categories"`
	SyncTime   int64 `json:"syncTime"`
}

// AutoSyncRequest 开关自动同步的请求参数
type AutoSyncRequest struct {
	Enabled *bool `json:"enabled" form:"enabled" binding:"required"`
}
