package templates

import (
	"fmt"
	"html"
	"strings"
)

// ReportEmailData holds data for the scheduled report email
type ReportEmailData struct {
	GeneratedAt string
	TotalCases  int
	AverageAge  float64
	ThisMonth   int
	Filename    string
	// Diagnoses are display name / count pairs, in form order
	Diagnoses [][2]string
}

// RenderReportEmail generates the HTML for the scheduled patient report email.
// Every value is HTML-escaped.
func RenderReportEmail(d ReportEmailData) string {
	var rows strings.Builder
	for _, dx := range d.Diagnoses {
		fmt.Fprintf(&rows, "        <tr><td>%s</td><td>%s</td></tr>\n", html.EscapeString(dx[0]), html.EscapeString(dx[1]))
	}

	return fmt.Sprintf(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
  <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1, minimum-scale=1, maximum-scale=1">
  <title>Haemodialysis Patient Report</title>
  <style type="text/css">
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 0; background-color: #f4f7fb; }
    .container { max-width: 600px; margin: 0 auto; background-color: #ffffff; }
    .header { background: linear-gradient(135deg, #0ea5e9 0%%, #2563eb 100%%); padding: 40px 30px; text-align: center; }
    .header h1 { color: #fff; margin: 0; font-size: 24px; font-weight: 700; }
    .content { padding: 40px 30px; color: #1f2937; line-height: 1.6; font-size: 15px; }
    .cards td { padding: 12px 16px; border: 1px solid #e5e7eb; }
    .cards strong { display: block; font-size: 22px; color: #2563eb; }
    table.diagnoses { border-collapse: collapse; width: 100%%; margin-top: 20px; }
    table.diagnoses td { padding: 6px 8px; border-bottom: 1px solid #e5e7eb; }
    .footer { padding: 30px; text-align: center; color: #6b7280; font-size: 12px; border-top: 1px solid #e5e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Haemodialysis Patient Report</h1>
    </div>
    <div class="content">
      <p>Report generated on %s.</p>
      <table class="cards">
        <tr>
          <td><strong>%d</strong>Total Cases</td>
          <td><strong>%.1f</strong>Average Age</td>
          <td><strong>%d</strong>This Month</td>
        </tr>
      </table>
      <table class="diagnoses">
%s      </table>
      <p>The full patient list is attached as %s.</p>
    </div>
    <div class="footer">
      <p>Sent by the haemodialysis reporting service.</p>
    </div>
  </div>
</body>
</html>`, html.EscapeString(d.GeneratedAt), d.TotalCases, d.AverageAge, d.ThisMonth, rows.String(), html.EscapeString(d.Filename))
}
