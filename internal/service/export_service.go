package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/yatraflow/yatraflow/internal/domain"
)

// csvHeader is the fixed export shape consumed by the dashboard.
const csvHeader = "ID,Zone,Location,Type,Severity,Description,Reported At,Status"

// ExportCSV renders the given (already filtered) view as CSV. The
// description column is always double-quoted with embedded quotes doubled.
func ExportCSV(reports []domain.Report) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	for _, r := range reports {
		fields := []string{
			r.ID,
			r.Zone,
			r.LocationName,
			string(r.Type),
			string(r.Severity),
			`"` + strings.ReplaceAll(r.Description, `"`, `""`) + `"`,
			r.ReportedAt.Format(time.RFC3339),
			string(r.Status),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}

// ExportFileName returns the dated attachment name.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("yatraflow-reports-%s.csv", now.Format("2006-01-02"))
}
