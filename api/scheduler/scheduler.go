package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/export"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
	"github.com/linesmerrill/haemo-report-api/stats"
)

// reportTimeout bounds a single scheduled report run
const reportTimeout = 5 * time.Minute

// Scheduler sends the periodic patient report
type Scheduler struct {
	cron       *cron.Cron
	Store      records.Store
	Mailer     Mailer
	Recipients []string
	Schedule   string
	Now        func() time.Time
}

// NewScheduler creates a new scheduler instance. Reports are e-mailed through
// SendGrid when an API key and recipients are configured, otherwise logged.
func NewScheduler(store records.Store, conf config.Config) *Scheduler {
	var mailer Mailer = LogMailer{}
	if conf.SendgridAPIKey != "" && len(conf.ReportRecipients) > 0 {
		mailer = SendgridMailer{APIKey: conf.SendgridAPIKey}
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		Store:      store,
		Mailer:     mailer,
		Recipients: conf.ReportRecipients,
		Schedule:   conf.ReportSchedule,
		Now:        time.Now,
	}
}

// Start registers the report job and begins the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.Schedule, s.runReport); err != nil {
		return fmt.Errorf("failed to register report job %q: %w", s.Schedule, err)
	}
	s.cron.Start()
	zap.S().Infow("Report scheduler started", "schedule", s.Schedule)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Report scheduler stopped")
}

func (s *Scheduler) runReport() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	if _, err := s.SendReport(ctx); err != nil {
		zap.S().Errorw("scheduled report failed", "error", err)
	}
}

// BuildReport snapshots the statistics and a CSV export of every registered case
func (s *Scheduler) BuildReport(ctx context.Context) (models.ReportSnapshot, error) {
	all, err := s.Store.All(ctx)
	if err != nil {
		return models.ReportSnapshot{}, fmt.Errorf("failed to get patients: %w", err)
	}

	now := s.Now()
	content, err := export.Render(export.CSV, all, now)
	if err != nil {
		return models.ReportSnapshot{}, fmt.Errorf("failed to export patients: %w", err)
	}

	return models.ReportSnapshot{
		ID:          uuid.New().String(),
		GeneratedAt: now,
		Statistics:  stats.Summarize(all),
		Filename:    export.Filename(export.CSV, now),
		Content:     content,
	}, nil
}

// SendReport builds a report and hands it to the mailer
func (s *Scheduler) SendReport(ctx context.Context) (models.ReportSnapshot, error) {
	report, err := s.BuildReport(ctx)
	if err != nil {
		return models.ReportSnapshot{}, err
	}

	if err := s.Mailer.Send(ctx, report, s.Recipients); err != nil {
		return report, fmt.Errorf("failed to send report %s: %w", report.ID, err)
	}

	zap.S().Infow("Scheduled report sent",
		"reportId", report.ID,
		"filename", report.Filename,
		"totalCases", report.Statistics.TotalCases,
		"recipients", len(s.Recipients),
	)
	return report, nil
}
