package service

import (
	"context"
	"fmt"

	"civicflow/backend/metrics"
	"civicflow/backend/models"
	"civicflow/backend/scoring"

	"github.com/apex/log"
	"github.com/jonboulle/clockwork"
)

// IntakeService scores incoming reports and stores them as Pending.
type IntakeService struct {
	store     ReportWriter
	publisher ReportPublisher
	clock     clockwork.Clock
}

// NewIntakeService wires the intake pipeline. publisher may be nil; clock defaults to wall time.
func NewIntakeService(store ReportWriter, publisher ReportPublisher, clock clockwork.Clock) *IntakeService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &IntakeService{
		store:     store,
		publisher: publisher,
		clock:     clock,
	}
}

// Submit scores in, writes exactly one Pending row and returns the saved report.
// A storage failure is returned as is; nothing is retried.
func (s *IntakeService) Submit(ctx context.Context, in *models.ReportInput) (*models.Report, error) {
	logger := log.WithFields(log.Fields{
		"location": in.Location,
		"issue":    in.Issue,
	})
	logger.Info("Incoming report")

	res := scoring.Evaluate(in.Location, in.Issue, in.Description, in.SentimentScore)
	for _, adj := range res.Adjustments {
		logger.WithFields(log.Fields{
			"layer":   adj.Layer,
			"delta":   adj.Delta,
			"running": adj.Running,
			"reason":  adj.Reason,
		}).Debug("Scoring layer")
		if adj.Delta != 0 {
			metrics.LayerTriggeredTotal.WithLabelValues(string(adj.Layer)).Inc()
		}
	}

	r := &models.Report{
		Location:       in.Location,
		Issue:          in.Issue,
		Description:    in.Description,
		SentimentScore: in.SentimentScore,
		PriorityScore:  res.Score,
		Status:         models.StatusPending,
		Timestamp:      s.clock.Now().Format(models.TimestampLayout),
	}

	id, err := s.store.SaveReport(ctx, r)
	if err != nil {
		metrics.ReportsSubmittedTotal.WithLabelValues("store_error").Inc()
		return nil, fmt.Errorf("save report: %w", err)
	}
	r.Id = id

	metrics.ReportsSubmittedTotal.WithLabelValues("ok").Inc()
	metrics.PriorityScore.Observe(float64(r.PriorityScore))
	if scoring.IsCritical(r.PriorityScore) {
		metrics.CriticalReportsTotal.Inc()
	}
	logger.WithFields(log.Fields{
		"id":       r.Id,
		"priority": r.PriorityScore,
		"raw":      res.Raw,
	}).Info("Report stored")

	s.publish(r)
	return r, nil
}

// publish forwards the stored report to the analysis feed. The report is already
// committed, so a feed failure is only logged.
func (s *IntakeService) publish(r *models.Report) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishReport(r); err != nil {
		metrics.PublishErrorTotal.Inc()
		log.Errorf("Failed to publish report %d to RabbitMQ: %v", r.Id, err)
	}
}
