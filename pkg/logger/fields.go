package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldCategory 分类名称字段
	FieldCategory = "category"

	// FieldBucket 笔记所属视图桶字段
	FieldBucket = "bucket"

	// FieldProvider 远端存储提供方字段
	FieldProvider = "provider"

	// FieldFolderID 远端文件夹 ID 字段
	FieldFolderID = "folderId"

	// FieldFileID 远端文件 ID 字段
	FieldFileID = "fileId"

	// FieldAccount 同步账号标识字段
	FieldAccount = "account"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldSize 内容大小字段
	FieldSize = "size"

	// FieldCount 记录数量字段
	FieldCount = "count"
)
