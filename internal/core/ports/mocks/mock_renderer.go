package mocks

import (
	"fmt"
	"io"

	"github.com/kamal-hamza/fsviz/internal/core/domain"
)

// ChartRenderer captures the last report it was asked to render
type ChartRenderer struct {
	Last    *domain.Report
	Renders int
	Err     error
}

// Render stores the report and writes a short marker
func (m *ChartRenderer) Render(w io.Writer, report *domain.Report) error {
	if m.Err != nil {
		return m.Err
	}
	m.Last = report
	m.Renders++
	_, err := fmt.Fprintf(w, "report:%s types:%d", report.Root, report.Types.Len())
	return err
}
