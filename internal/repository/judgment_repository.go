package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/pose-check/internal/logging"
)

// JudgmentLog represents a persisted hand-raise detection request.
type JudgmentLog struct {
	ID              uint      `gorm:"primaryKey"`
	RequestID       string    `gorm:"column:request_id;uniqueIndex;size:64"`
	UserID          string    `gorm:"column:user_id;size:64"`
	ClosestHand     string    `gorm:"column:closest_hand;size:16"`
	Distance        float64   `gorm:"column:distance"`
	Confidence      float64   `gorm:"column:confidence"`
	Accepted        bool      `gorm:"column:accepted"`
	RejectionReason string    `gorm:"column:rejection_reason;size:32"`
	SHA1Hash        string    `gorm:"column:sha1_hash;index;size:40"`
	EstimatorMs     float64   `gorm:"column:estimator_ms"`
	Details         string    `gorm:"column:details;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (JudgmentLog) TableName() string {
	return "judgment_logs"
}

// MetricsAggregation holds the raw aggregates computed over judgment logs.
type MetricsAggregation struct {
	TotalCount         int64
	AcceptedCount      int64
	AverageConfidence  float64
	AverageEstimatorMs float64
}

// JudgmentRepository provides persistence APIs for judgment logs.
type JudgmentRepository struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewJudgmentRepository creates a new repository instance.
func NewJudgmentRepository(db *gorm.DB, logger *zap.Logger) *JudgmentRepository {
	return &JudgmentRepository{
		db:             db,
		logger:         logger.Named("judgment_repository"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (r *JudgmentRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&JudgmentLog{})
}

// SaveLog persists a judgment log entry.
func (r *JudgmentRepository) SaveLog(ctx context.Context, log *JudgmentLog) error {
	return r.executeWithRetry(ctx, "repository.save_log", log.RequestID, func() error {
		return r.db.WithContext(ctx).Create(log).Error
	})
}

// FindByRequestIDAndUser retrieves a judgment log matching the request and owner.
func (r *JudgmentRepository) FindByRequestIDAndUser(ctx context.Context, requestID, userID string) (*JudgmentLog, error) {
	var log JudgmentLog
	err := r.executeWithRetry(ctx, "repository.find_by_request_id", requestID, func() error {
		return r.db.WithContext(ctx).First(&log, "request_id = ? AND user_id = ?", requestID, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindDuplicatesByHash returns other logs of the same user carrying the same
// image hash, excluding the request the report is built for.
func (r *JudgmentRepository) FindDuplicatesByHash(ctx context.Context, userID, hash, excludeRequestID string) ([]*JudgmentLog, error) {
	var logs []*JudgmentLog
	err := r.executeWithRetry(ctx, "repository.find_duplicates_by_hash", excludeRequestID, func() error {
		return r.db.WithContext(ctx).
			Where("user_id = ? AND sha1_hash = ? AND request_id <> ?", userID, hash, excludeRequestID).
			Order("created_at DESC").
			Find(&logs).Error
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// AggregateMetrics computes counts and averages over all judgment logs.
func (r *JudgmentRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation
	err := r.executeWithRetry(ctx, "repository.aggregate_metrics", "", func() error {
		return r.db.WithContext(ctx).
			Model(&JudgmentLog{}).
			Select(
				"COUNT(*) AS total_count, " +
					"COALESCE(SUM(CASE WHEN accepted THEN 1 ELSE 0 END), 0) AS accepted_count, " +
					"COALESCE(AVG(confidence), 0) AS average_confidence, " +
					"COALESCE(AVG(estimator_ms), 0) AS average_estimator_ms",
			).
			Scan(&agg).Error
	})
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *JudgmentRepository) executeWithRetry(ctx context.Context, operation, requestID string, fn func() error) error {
	if r.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := r.initialBackoff
	opLogger := logging.WithOperation(r.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= r.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("database operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransient(err) || attempt == r.retryAttempts-1 {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				opLogger.Error("database operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			}
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient database error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
