package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// nextID 生成 <PREFIX>-<year>-<NNN>。序号 = 现存 id 中含当前年份的条数 + 1，
// 每次调用重新扫描，不单独持久化计数器。
// 注意：删除后再新建，同年序号会重复发放（沿用既有行为，见 ids_test）。
func nextID(prefix string, now time.Time, existing []string) string {
	year := strconv.Itoa(now.Year())
	count := 1
	for _, id := range existing {
		if strings.Contains(id, year) {
			count++
		}
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, year, count)
}
