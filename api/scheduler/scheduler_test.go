package scheduler

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

var reportDay = time.Date(2024, 6, 3, 6, 0, 0, 0, time.UTC)

type fakeMailer struct {
	sent       []models.ReportSnapshot
	recipients []string
	err        error
}

func (f *fakeMailer) Send(_ context.Context, report models.ReportSnapshot, recipients []string) error {
	f.sent = append(f.sent, report)
	f.recipients = recipients
	return f.err
}

type failingStore struct{}

func (failingStore) Append(context.Context, models.PatientCase) (models.PatientCase, error) {
	return models.PatientCase{}, errors.New("mocked-error")
}

func (failingStore) All(context.Context) ([]models.PatientCase, error) {
	return nil, errors.New("mocked-error")
}

func newTestScheduler(store records.Store, m Mailer) *Scheduler {
	s := NewScheduler(store, config.Config{ReportSchedule: "0 6 * * 1", ReportRecipients: []string{"moh@example.com"}})
	s.Mailer = m
	s.Now = func() time.Time { return reportDay }
	return s
}

func TestNewSchedulerPicksMailer(t *testing.T) {
	s := NewScheduler(records.NewMemoryStore(), config.Config{})
	assert.IsType(t, LogMailer{}, s.Mailer)

	s = NewScheduler(records.NewMemoryStore(), config.Config{SendgridAPIKey: "key"})
	assert.IsType(t, LogMailer{}, s.Mailer)

	s = NewScheduler(records.NewMemoryStore(), config.Config{SendgridAPIKey: "key", ReportRecipients: []string{"a@b.c"}})
	assert.Equal(t, SendgridMailer{APIKey: "key"}, s.Mailer)
}

func TestBuildReport(t *testing.T) {
	s := newTestScheduler(records.NewMemoryStore(records.DemoCases()...), &fakeMailer{})

	report, err := s.BuildReport(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, reportDay, report.GeneratedAt)
	assert.Equal(t, "patient-report-2024-06-03.csv", report.Filename)
	assert.Equal(t, 3, report.Statistics.TotalCases)
	assert.Equal(t, 53.7, report.Statistics.AverageAge)

	lines := strings.Split(strings.TrimRight(string(report.Content), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID,Name,DOB,Age,Gender,Address,Diagnosis,Date Registered", lines[0])
}

func TestBuildReportStoreError(t *testing.T) {
	s := newTestScheduler(failingStore{}, &fakeMailer{})
	_, err := s.BuildReport(context.Background())
	assert.EqualError(t, err, "failed to get patients: mocked-error")
}

func TestSendReport(t *testing.T) {
	m := &fakeMailer{}
	s := newTestScheduler(records.NewMemoryStore(records.DemoCases()...), m)

	report, err := s.SendReport(context.Background())
	require.NoError(t, err)
	require.Len(t, m.sent, 1)
	assert.Equal(t, report.ID, m.sent[0].ID)
	assert.Equal(t, []string{"moh@example.com"}, m.recipients)
}

func TestSendReportMailerError(t *testing.T) {
	m := &fakeMailer{err: errors.New("mocked-error")}
	s := newTestScheduler(records.NewMemoryStore(), m)

	_, err := s.SendReport(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mocked-error")
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := newTestScheduler(records.NewMemoryStore(), &fakeMailer{})
	s.Schedule = "every tuesday"
	assert.Error(t, s.Start())
}

func TestStartAndStop(t *testing.T) {
	s := newTestScheduler(records.NewMemoryStore(), &fakeMailer{})
	require.NoError(t, s.Start())
	s.Stop()
}

func TestLogMailer(t *testing.T) {
	assert.NoError(t, LogMailer{}.Send(context.Background(), models.ReportSnapshot{ID: "r1"}, nil))
}

func TestSendgridMailerNeedsRecipients(t *testing.T) {
	assert.Error(t, SendgridMailer{APIKey: "key"}.Send(context.Background(), models.ReportSnapshot{}, nil))
}

func TestReportMessage(t *testing.T) {
	s := newTestScheduler(records.NewMemoryStore(records.DemoCases()...), &fakeMailer{})
	report, err := s.BuildReport(context.Background())
	require.NoError(t, err)

	msg := reportMessage(report, []string{"a@example.com", "b@example.com"})

	assert.Equal(t, "Haemodialysis patient report 2024-06-03", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	assert.Len(t, msg.Personalizations[0].To, 2)

	require.Len(t, msg.Content, 2)
	assert.Equal(t, "text/plain", msg.Content[0].Type)
	assert.Contains(t, msg.Content[0].Value, "Total cases: 3")
	assert.Contains(t, msg.Content[1].Value, "Chronic Kidney Disease")

	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "patient-report-2024-06-03.csv", msg.Attachments[0].Filename)
	decoded, err := base64.StdEncoding.DecodeString(msg.Attachments[0].Content)
	require.NoError(t, err)
	assert.Equal(t, report.Content, decoded)
}
