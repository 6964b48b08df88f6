package normalize

import "github.com/sukh8282/exconsole/model"

// NoResultsRow is what an absent or empty handler result flattens to.
const NoResultsRow = "no results"

// Rows flattens whatever a handler returned into the canonical display
// form. Handlers intentionally return heterogeneous shapes; the display
// sink must never special-case handler identity. Rules, in priority
// order: absent input yields one informational row, a record passes
// through as a single row, a sequence is flattened element-wise in
// original order, anything else is wrapped as a single value row.
// Re-applying Rows to its own output yields the same sequence.
func Rows(raw any) []model.Row {
	switch v := raw.(type) {
	case nil:
		return []model.Row{{"info": NoResultsRow}}
	case model.Row:
		return []model.Row{v}
	case map[string]any:
		return []model.Row{model.Row(v)}
	case []model.Row:
		if len(v) == 0 {
			return []model.Row{{"info": NoResultsRow}}
		}
		out := make([]model.Row, 0, len(v))
		out = append(out, v...)
		return out
	case []map[string]any:
		return fromSequence(len(v), func(i int) any { return v[i] })
	case []any:
		return fromSequence(len(v), func(i int) any { return v[i] })
	default:
		return []model.Row{{"value": v}}
	}
}

func fromSequence(n int, element func(int) any) []model.Row {
	if n == 0 {
		return []model.Row{{"info": NoResultsRow}}
	}
	out := make([]model.Row, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Rows(element(i))...)
	}
	return out
}

// ErrorRows is the single error row shape shared by every failure class.
func ErrorRows(err error) []model.Row {
	return []model.Row{{"error": err.Error()}}
}
