package validate

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// String renders the report as a table, one row per issue, in the
// order checks ran. An empty report renders a table with no rows
// rather than an empty string, so callers can always print it.
func (r Report) String() string {
	t := table.NewWriter()
	t.SetTitle("Validation Report")
	t.AppendHeader(table.Row{"Severity", "Code", "Face", "Edge", "Shell", "Message"})
	for _, iss := range r.Issues {
		t.AppendRow(table.Row{
			iss.Severity.String(),
			string(iss.Code),
			idOrDash(int32(iss.FaceID)),
			idOrDash(int32(iss.EdgeID)),
			idOrDash(int32(iss.ShellID)),
			iss.Message,
		})
	}
	return t.Render()
}

func idOrDash(id int32) string {
	if id < 0 {
		return "-"
	}
	return fmt.Sprintf("%d", id)
}
