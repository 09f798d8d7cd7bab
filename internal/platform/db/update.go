package db

import (
	"fmt"
	"strings"
)

// BuildUpdate assembles an UPDATE statement covering the allow-listed
// columns present in updates. Columns outside the allow list are ignored.
// The returned bool is false when no allowed column matched.
func BuildUpdate(table string, allowed []string, updates map[string]interface{}, id interface{}) (string, []interface{}, bool) {
	sets := make([]string, 0, len(allowed))
	args := make([]interface{}, 0, len(allowed)+1)
	for _, col := range allowed {
		if v, ok := updates[col]; ok {
			args = append(args, v)
			sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
		}
	}
	if len(sets) == 0 {
		return "", nil, false
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(args))
	return query, args, true
}
