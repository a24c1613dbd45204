package code

// Success codes // 成功码
var (
	Success = NewSuss(0, lang{en: "Success", zh_cn: "成功"})
)

// Common error codes // 通用错误码
var (
	ErrorInvalidParams    = NewError(10001, lang{en: "Invalid request parameters", zh_cn: "请求参数错误"})
	ErrorServerInternal   = NewError(10002, lang{en: "Internal server error", zh_cn: "服务器内部错误"})
	ErrorNotFoundAPI      = NewError(10003, lang{en: "API not found", zh_cn: "接口不存在"})
	ErrorInvalidAuthToken = NewError(10004, lang{en: "Invalid auth token", zh_cn: "认证 Token 无效"})
	ErrorRequestTimeout   = NewError(10005, lang{en: "Request timeout", zh_cn: "请求超时"})
)

// Note and category error codes // 笔记与分类错误码
var (
	ErrorNoteNotFound        = NewError(20001, lang{en: "Note not found", zh_cn: "笔记不存在"})
	ErrorCategoryNotFound    = NewError(20002, lang{en: "Category not found", zh_cn: "分类不存在"})
	ErrorCategoryExists      = NewError(20003, lang{en: "Category already exists", zh_cn: "分类已存在"})
	ErrorCategoryNameEmpty   = NewError(20004, lang{en: "Category name must not be empty", zh_cn: "分类名称不能为空"})
	ErrorDefaultCategory     = NewError(20005, lang{en: "The default category cannot be deleted", zh_cn: "默认分类不能删除"})
	ErrorNoteContentConflict = NewError(20006, lang{en: "A note holds either text or a checklist, not both", zh_cn: "笔记内容只能是文本或清单之一"})
)

// Sync error codes // 同步错误码
var (
	ErrorNotSignedIn     = NewError(30001, lang{en: "Not signed in to a sync account", zh_cn: "未登录同步账号"})
	ErrorRemoteAuth      = NewError(30002, lang{en: "Sync session expired or unauthorized", zh_cn: "同步会话失效或无权限"})
	ErrorSyncTransport   = NewError(30003, lang{en: "Sync transfer failed", zh_cn: "同步传输失败"})
	ErrorBackupDecode    = NewError(30004, lang{en: "Backup document is malformed", zh_cn: "备份文档格式错误"})
	ErrorBackupNotFound  = NewError(30005, lang{en: "No remote backup found", zh_cn: "远端不存在备份"})
	ErrorInvalidProvider = NewError(30006, lang{en: "Invalid sync provider type", zh_cn: "同步存储类型无效"})
)
