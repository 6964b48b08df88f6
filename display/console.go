package display

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"text/tabwriter"

	"github.com/sukh8282/exconsole/logger"
	"github.com/sukh8282/exconsole/model"
	"go.uber.org/zap"
)

// ConsoleSink renders result sets as a plain table on stdout. Columns
// are the union of the columns across all rows; a row missing a column
// leaves the cell empty.
type ConsoleSink struct {
	mu  sync.Mutex
	out io.Writer
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{out: os.Stdout}
}

func NewConsoleSinkWithWriter(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) SetBusy(busy bool) {
	logger.Debug("busy indicator", zap.Bool("busy", busy))
}

func (s *ConsoleSink) Present(rows []model.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	columns := unionColumns(rows)
	w := tabwriter.NewWriter(s.out, 2, 4, 2, ' ', 0)
	for i, column := range columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, column)
	}
	fmt.Fprintln(w)
	for _, row := range rows {
		for i, column := range columns {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			if value, ok := row[column]; ok {
				fmt.Fprintf(w, "%v", value)
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func unionColumns(rows []model.Row) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, row := range rows {
		for column := range row {
			if !seen[column] {
				seen[column] = true
				columns = append(columns, column)
			}
		}
	}
	sort.Strings(columns)
	return columns
}
