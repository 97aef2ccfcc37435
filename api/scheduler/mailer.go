package scheduler

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/export"
	"github.com/linesmerrill/haemo-report-api/models"
	templates "github.com/linesmerrill/haemo-report-api/templates/html"
)

// Mailer delivers a finished report
type Mailer interface {
	Send(ctx context.Context, report models.ReportSnapshot, recipients []string) error
}

// LogMailer writes the report summary to the log instead of sending it
type LogMailer struct{}

// Send logs the report
func (LogMailer) Send(_ context.Context, report models.ReportSnapshot, recipients []string) error {
	zap.S().Infow("patient report ready, no mail delivery configured",
		"reportId", report.ID,
		"filename", report.Filename,
		"totalCases", report.Statistics.TotalCases,
		"averageAge", report.Statistics.AverageAge,
		"thisMonth", report.Statistics.ThisMonth,
		"bytes", len(report.Content),
	)
	return nil
}

// SendgridMailer e-mails the report with the CSV export attached
type SendgridMailer struct {
	APIKey string
}

// Send delivers report to every recipient in a single message
func (m SendgridMailer) Send(_ context.Context, report models.ReportSnapshot, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("no report recipients")
	}

	client := sendgrid.NewSendClient(m.APIKey)
	response, err := client.Send(reportMessage(report, recipients))
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

func reportMessage(report models.ReportSnapshot, recipients []string) *mail.SGMailV3 {
	day := report.GeneratedAt.Format(models.DateLayout)

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("Haemodialysis Reports", "no-reply@haemo-report.app"))
	message.Subject = "Haemodialysis patient report " + day

	p := mail.NewPersonalization()
	for _, r := range recipients {
		p.AddTos(mail.NewEmail("", r))
	}
	message.AddPersonalizations(p)

	message.AddContent(
		mail.NewContent("text/plain", plainReport(report)),
		mail.NewContent("text/html", templates.RenderReportEmail(emailData(report))),
	)

	a := mail.NewAttachment()
	a.SetContent(base64.StdEncoding.EncodeToString(report.Content))
	a.SetType(export.CSV.ContentType())
	a.SetFilename(report.Filename)
	a.SetDisposition("attachment")
	message.AddAttachment(a)

	return message
}

func emailData(report models.ReportSnapshot) templates.ReportEmailData {
	d := templates.ReportEmailData{
		GeneratedAt: report.GeneratedAt.Format("2006-01-02 15:04:05"),
		TotalCases:  report.Statistics.TotalCases,
		AverageAge:  report.Statistics.AverageAge,
		ThisMonth:   report.Statistics.ThisMonth,
		Filename:    report.Filename,
	}
	for _, o := range models.Diagnoses {
		if n := report.Statistics.Diagnoses[o.Code]; n > 0 {
			d.Diagnoses = append(d.Diagnoses, [2]string{o.DisplayName, strconv.Itoa(n)})
		}
	}
	return d
}

func plainReport(report models.ReportSnapshot) string {
	return fmt.Sprintf(`Haemodialysis patient report

Generated on: %s
Total cases: %d
Average age: %.1f
This month: %d

The full patient list is attached as %s.
`, report.GeneratedAt.Format("2006-01-02 15:04:05"), report.Statistics.TotalCases,
		report.Statistics.AverageAge, report.Statistics.ThisMonth, report.Filename)
}
