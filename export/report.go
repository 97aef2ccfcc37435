package export

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/linesmerrill/haemo-report-api/models"
)

// ReportTitle heads the printable report
const ReportTitle = "HAEMODIALYSIS PATIENT RECORDS REPORT"

const generatedLayout = "2006-01-02 15:04:05"

// writeReport writes the printable text report: title, generation time and a
// fixed width table with an "=" rule under the header.
func writeReport(w io.Writer, cases []models.PatientCase, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, ReportTitle)
	fmt.Fprintf(bw, "Generated on: %s\n\n", generatedAt.Format(generatedLayout))

	table := tablewriter.NewWriter(bw)
	table.SetHeader(Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetColumnSeparator("|")
	table.SetCenterSeparator("=")
	table.SetRowSeparator("=")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	for _, c := range cases {
		table.Append(row(c))
	}
	table.Render()

	return bw.Flush()
}
