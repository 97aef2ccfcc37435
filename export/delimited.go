package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/linesmerrill/haemo-report-api/models"
)

// writeCSV writes a bare header line followed by one line per case with every
// field double quoted.
func writeCSV(w io.Writer, cases []models.PatientCase) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(Columns, ","))
	bw.WriteByte('\n')
	for _, c := range cases {
		fields := row(c)
		for i, f := range fields {
			fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		}
		bw.WriteString(strings.Join(fields, ","))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

var tabCleaner = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// writeExcel writes the same columns tab separated, one line per case
func writeExcel(w io.Writer, cases []models.PatientCase) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(Columns, "\t"))
	bw.WriteByte('\n')
	for _, c := range cases {
		fields := row(c)
		for i, f := range fields {
			fields[i] = tabCleaner.Replace(f)
		}
		bw.WriteString(strings.Join(fields, "\t"))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
