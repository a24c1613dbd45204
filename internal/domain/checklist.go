package domain

import (
	"strings"

	"github.com/bytedance/sonic"
)

// checklistRecord 清单条目的嵌入式编码结构
type checklistRecord struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsChecked bool   `json:"isChecked"`
}

// EncodeChecklist encodes checklist items to the embedded JSON payload.
// An empty checklist encodes to the empty string, not "[]".
// EncodeChecklist 将清单条目编码为嵌入式 JSON 负载。
// 空清单编码为空字符串而不是 "[]"。
func EncodeChecklist(items []ChecklistItem) string {
	if len(items) == 0 {
		return ""
	}
	records := make([]checklistRecord, 0, len(items))
	for _, item := range items {
		records = append(records, checklistRecord(item))
	}
	encoded, err := sonic.MarshalString(records)
	if err != nil {
		return ""
	}
	return encoded
}

// DecodeChecklist decodes the embedded payload. Corruption is isolated to the
// checklist: an unparsable payload degrades to an empty checklist instead of
// failing the whole note.
// DecodeChecklist 解码嵌入式负载。损坏被隔离在清单层面：
// 无法解析的负载退化为空清单，而不是让整条笔记失败。
func DecodeChecklist(encoded string) []ChecklistItem {
	if strings.TrimSpace(encoded) == "" {
		return nil
	}
	var records []checklistRecord
	if err := sonic.UnmarshalString(encoded, &records); err != nil {
		return nil
	}
	items := make([]ChecklistItem, 0, len(records))
	for _, r := range records {
		items = append(items, ChecklistItem(r))
	}
	return items
}

// JoinImagePaths 将图片路径列表编码为逗号分隔字符串
func JoinImagePaths(paths []string) string {
	return strings.Join(paths, ",")
}

// SplitImagePaths 解析逗号分隔的图片路径字符串，空串解析为空列表
func SplitImagePaths(encoded string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, ",")
}
