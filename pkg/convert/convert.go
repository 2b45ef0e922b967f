// Package convert 提供结构体与请求参数的转换工具
package convert

import (
	"net/url"

	"github.com/jinzhu/copier"
)

// StructAssign copies the fields of src into dst by name, embedded structs included
// StructAssign 按字段名将 src 复制到 dst，包括嵌入结构体的字段
func StructAssign(src any, dst any) error {
	return copier.Copy(dst, src)
}

// FirstValues flattens query values, a repeated key keeps its first value
// FirstValues 展开查询参数，重复的 key 取第一个值
func FirstValues(values url.Values) map[string]string {
	m := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) == 0 {
			continue
		}
		m[k] = v[0]
	}
	return m
}
