// Package export serializes a filtered view of patient cases into the
// download formats offered by the patient table.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/linesmerrill/haemo-report-api/models"
)

// Format is a download format tag
type Format string

// Supported download formats
const (
	CSV   Format = "csv"
	Excel Format = "excel"
	PDF   Format = "pdf"
)

// ErrUnknownFormat is returned for a format tag other than csv, excel or pdf
var ErrUnknownFormat = errors.New("unknown export format")

// Columns is the fixed column order of every export
var Columns = []string{"ID", "Name", "DOB", "Age", "Gender", "Address", "Diagnosis", "Date Registered"}

// ParseFormat turns a format tag into a Format
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, Excel, PDF:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension the download is saved with
func (f Format) Extension() string {
	switch f {
	case Excel:
		return "xlsx"
	default:
		return string(f)
	}
}

// ContentType returns the MIME type of the download. Only CSV is typed as
// such; the excel and pdf downloads are plain text.
func (f Format) ContentType() string {
	if f == CSV {
		return "text/csv"
	}
	return "text/plain"
}

// Filename returns the download name for an export taken on day
func Filename(f Format, day time.Time) string {
	return fmt.Sprintf("patient-report-%s.%s", day.Format(models.DateLayout), f.Extension())
}

// Write serializes cases to w in format f. An empty list still produces the header.
func Write(w io.Writer, f Format, cases []models.PatientCase, generatedAt time.Time) error {
	switch f {
	case CSV:
		return writeCSV(w, cases)
	case Excel:
		return writeExcel(w, cases)
	case PDF:
		return writeReport(w, cases, generatedAt)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Render is Write into a byte slice
func Render(f Format, cases []models.PatientCase, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, cases, generatedAt); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func row(c models.PatientCase) []string {
	return []string{
		c.ID,
		c.Name,
		c.DateOfBirth,
		strconv.Itoa(c.Age),
		string(c.Gender),
		c.Address,
		c.Diagnosis.DisplayName(),
		c.DateRegistered,
	}
}
