package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldFilter 列表过滤条件字段
	FieldFilter = "filter"

	// FieldCount 结果数量字段
	FieldCount = "count"

	// FieldDriver 存储驱动字段
	FieldDriver = "driver"

	// FieldDatabase 数据库名称字段
	FieldDatabase = "database"

	// FieldCollection 集合名称字段
	FieldCollection = "collection"

	// FieldState 连接状态字段
	FieldState = "state"
)
