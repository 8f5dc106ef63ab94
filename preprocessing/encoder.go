package preprocessing

import (
	"fmt"
	"sort"

	"github.com/YuminosukeSato/catenc/dataset"
	"github.com/YuminosukeSato/catenc/pkg/errors"
)

// uniqueSorted は値の重複を除き、dataset.Compare の順序で並べて返す
// 空入力と欠損値はエラーになる
func uniqueSorted(op string, values []dataset.Value) ([]dataset.Value, map[dataset.Value]int, error) {
	if len(values) == 0 {
		return nil, nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	seen := make(map[dataset.Value]struct{})
	classes := make([]dataset.Value, 0)
	for i, v := range values {
		if v.IsMissing() {
			return nil, nil, errors.NewMissingValueError(op, i)
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		classes = append(classes, v)
	}

	sort.Slice(classes, func(i, j int) bool {
		return dataset.Compare(classes[i], classes[j]) < 0
	})

	index := make(map[dataset.Value]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	return classes, index, nil
}

// lookup は各値のクラス番号を返す
func lookup(op string, index map[dataset.Value]int, values []dataset.Value) ([]int, error) {
	if len(values) == 0 {
		return nil, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	codes := make([]int, len(values))
	for i, v := range values {
		if v.IsMissing() {
			return nil, errors.NewMissingValueError(op, i)
		}
		code, ok := index[v]
		if !ok {
			return nil, errors.NewUnknownCategoryError("", v.String(), i)
		}
		codes[i] = code
	}
	return codes, nil
}

func copyClasses(classes []dataset.Value) []dataset.Value {
	out := make([]dataset.Value, len(classes))
	copy(out, classes)
	return out
}

func formatClasses(classes []dataset.Value) string {
	s := make([]string, len(classes))
	for i, c := range classes {
		s[i] = c.String()
	}
	return fmt.Sprintf("%v", s)
}
