package domain

// Snapshot is the full in-memory export of all notes (regardless of bucket)
// and all categories at one instant. It exists only as the backup transport
// payload and is never persisted locally.
// Snapshot 是某一时刻全部笔记（不分视图桶）和全部分类的内存导出。
// 它仅作为备份传输载荷存在，从不在本地持久化。
type Snapshot struct {
	Notes      []*Note
	Categories []*Category
}

// IsEmpty 判断快照是否为空
func (s *Snapshot) IsEmpty() bool {
	return len(s.Notes) == 0 && len(s.Categories) == 0
}
