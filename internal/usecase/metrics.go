package usecase

import "context"

// MetricsSummary represents aggregated detection insights.
type MetricsSummary struct {
	TotalRequests             int64   `json:"total_requests"`
	AcceptedRequests          int64   `json:"accepted_requests"`
	AcceptanceRate            float64 `json:"acceptance_rate"`
	AverageConfidence         float64 `json:"average_confidence"`
	AverageEstimatorLatencyMs float64 `json:"average_estimator_latency_ms"`
}

// GetMetricsSummary aggregates detection metrics from persisted judgment logs.
func (uc *DetectionUseCase) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	aggregation, err := uc.repo.AggregateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &MetricsSummary{
		TotalRequests:             aggregation.TotalCount,
		AcceptedRequests:          aggregation.AcceptedCount,
		AverageConfidence:         aggregation.AverageConfidence,
		AverageEstimatorLatencyMs: aggregation.AverageEstimatorMs,
	}

	if aggregation.TotalCount > 0 {
		summary.AcceptanceRate = float64(aggregation.AcceptedCount) / float64(aggregation.TotalCount)
	}

	return summary, nil
}
