package util

import (
	"github.com/oliveagle/jsonpath"
	"github.com/sukh8282/exconsole/model"
)

// SelectColumns shapes a raw remote payload into display rows. Each
// column is a jsonpath expression evaluated against one payload element;
// a path that resolves to nothing simply leaves the column out of that
// row, elements are never reordered or dropped.
func SelectColumns(payload []any, columns map[string]string) []model.Row {
	rows := make([]model.Row, 0, len(payload))
	for _, element := range payload {
		row := model.Row{}
		for name, path := range columns {
			value, err := jsonpath.JsonPathLookup(element, path)
			if err != nil {
				continue
			}
			row[name] = value
		}
		rows = append(rows, row)
	}
	return rows
}
