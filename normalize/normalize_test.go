package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sukh8282/exconsole/model"
)

func TestRows(t *testing.T) {
	for scenario, fn := range map[string]func(t *testing.T){
		"test absent result":          testAbsentResult,
		"test scalar result":          testScalarResult,
		"test single record":          testSingleRecord,
		"test empty sequence":         testEmptySequence,
		"test heterogeneous sequence": testHeterogeneousSequence,
		"test order preserved":        testOrderPreserved,
		"test idempotence":            testIdempotence,
		"test error rows":             testErrorRows,
	} {
		t.Run(scenario, func(t *testing.T) {
			fn(t)
		})
	}
}

func testAbsentResult(t *testing.T) {
	rows := Rows(nil)
	require.Len(t, rows, 1)
	require.Equal(t, NoResultsRow, rows[0]["info"])
}

func testScalarResult(t *testing.T) {
	rows := Rows("3 mailboxes updated")
	require.Len(t, rows, 1)
	require.Equal(t, "3 mailboxes updated", rows[0]["value"])

	rows = Rows(42)
	require.Len(t, rows, 1)
	require.Equal(t, 42, rows[0]["value"])
}

func testSingleRecord(t *testing.T) {
	rows := Rows(map[string]any{"mailbox": "a@x.com", "status": "updated"})
	require.Len(t, rows, 1)
	require.Equal(t, "a@x.com", rows[0]["mailbox"])

	rows = Rows(model.Row{"mailbox": "b@x.com"})
	require.Len(t, rows, 1)
	require.Equal(t, "b@x.com", rows[0]["mailbox"])
}

func testEmptySequence(t *testing.T) {
	rows := Rows([]any{})
	require.Len(t, rows, 1)
	require.Equal(t, NoResultsRow, rows[0]["info"])

	rows = Rows([]model.Row{})
	require.Len(t, rows, 1)
	require.Equal(t, NoResultsRow, rows[0]["info"])
}

func testHeterogeneousSequence(t *testing.T) {
	raw := []any{
		map[string]any{"mailbox": "a@x.com", "size": 100},
		"warning: b@x.com skipped",
		map[string]any{"error": "c@x.com not found"},
		map[string]any{"mailbox": "d@x.com"},
		99,
	}
	rows := Rows(raw)
	require.Len(t, rows, 5)
	require.Equal(t, "a@x.com", rows[0]["mailbox"])
	require.Equal(t, "warning: b@x.com skipped", rows[1]["value"])
	require.Equal(t, "c@x.com not found", rows[2]["error"])
	require.Equal(t, "d@x.com", rows[3]["mailbox"])
	require.Equal(t, 99, rows[4]["value"])
}

func testOrderPreserved(t *testing.T) {
	raw := make([]any, 0, 20)
	for i := 0; i < 20; i++ {
		raw = append(raw, map[string]any{"index": i})
	}
	rows := Rows(raw)
	require.Len(t, rows, 20)
	for i, row := range rows {
		require.Equal(t, i, row["index"])
	}
}

func testIdempotence(t *testing.T) {
	inputs := []any{
		nil,
		"scalar",
		[]any{},
		map[string]any{"a": 1},
		[]any{map[string]any{"a": 1}, "text", 7},
	}
	for _, input := range inputs {
		once := Rows(input)
		twice := Rows(once)
		require.Equal(t, once, twice)
	}
}

func testErrorRows(t *testing.T) {
	rows := ErrorRows(model.HandlerError{Action: "test", Cause: model.EngineError{Message: "boom"}})
	require.Len(t, rows, 1)
	require.Contains(t, rows[0]["error"], "boom")
	require.Equal(t, rows, Rows(rows))
}
