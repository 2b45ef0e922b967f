// Package util 通用工具函数
package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ParseDuration parses a duration string, a 'd' suffix means days and a bare number means seconds
// ParseDuration 解析时间字符串，'d' 后缀表示天，纯数字默认为秒
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, errors.Errorf("invalid duration %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}
	return time.ParseDuration(s)
}
