package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/pose-check/internal/engine"
	"github.com/example/pose-check/internal/logging"
	"github.com/example/pose-check/internal/poseestimator"
	"github.com/example/pose-check/internal/repository"
	"github.com/example/pose-check/internal/upload"
)

// JudgmentRepository defines the persistence operations needed by the use case.
type JudgmentRepository interface {
	SaveLog(ctx context.Context, log *repository.JudgmentLog) error
	FindByRequestIDAndUser(ctx context.Context, requestID, userID string) (*repository.JudgmentLog, error)
	FindDuplicatesByHash(ctx context.Context, userID, hash, excludeRequestID string) ([]*repository.JudgmentLog, error)
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// DetectionUseCase encapsulates business logic for the hand-raise detection flow.
type DetectionUseCase struct {
	repo            JudgmentRepository
	cache           Cache
	estimator       poseestimator.Client
	logger          *zap.Logger
	spoolDir        string
	minPartScore    float64
	estimateTimeout time.Duration
	retryAttempts   int
	initialBackoff  time.Duration
	maxBackoff      time.Duration
}

type cachedJudgment struct {
	RequestID       string    `json:"request_id"`
	UserID          string    `json:"user_id"`
	ClosestHand     string    `json:"closest_hand"`
	Distance        float64   `json:"distance"`
	Confidence      float64   `json:"confidence"`
	Accepted        bool      `json:"accepted"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	Hash            string    `json:"sha1_hash"`
	CreatedAt       time.Time `json:"created_at"`
}

// DuplicateReport represents prior uploads of the same image by one user.
type DuplicateReport struct {
	Request    *repository.JudgmentLog
	Duplicates []*repository.JudgmentLog
}

// NewDetectionUseCase constructs a new use case instance.
func NewDetectionUseCase(repo JudgmentRepository, cache Cache, estimator poseestimator.Client, logger *zap.Logger) *DetectionUseCase {
	return &DetectionUseCase{
		repo:            repo,
		cache:           cache,
		estimator:       estimator,
		logger:          logger.Named("detection_usecase"),
		minPartScore:    engine.MinPartScore,
		estimateTimeout: 10 * time.Second,
		retryAttempts:   3,
		initialBackoff:  50 * time.Millisecond,
		maxBackoff:      time.Second,
	}
}

// DetectHandRaise runs one image through the estimator and the decision
// engine, persisting and caching the outcome.
//
// Domain rejections (engine.ErrNoseNotDetected, engine.ErrNoWristDetected)
// are returned unwrapped so the transport layer can map them to client
// errors; everything else comes back as an *logging.OperationError.
func (uc *DetectionUseCase) DetectHandRaise(ctx context.Context, userID string, imageBytes []byte) (string, *engine.Judgment, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.detect_hand_raise", requestID)

	cacheKey := judgmentCacheKey(requestID)
	if err := uc.withRedisRetry(ctx, requestID, "cache.set.processing", func() error {
		return uc.cache.Set(ctx, cacheKey, "processing", time.Minute)
	}); err != nil {
		opLogger.Error("failed to set processing flag", zap.Error(err))
		return "", nil, err
	}

	// The upload lives on disk only for the duration of the estimator
	// call; WithTempFile removes it on every exit path.
	var raw []poseestimator.RawKeypoint
	var estimatorLatency time.Duration
	err := upload.WithTempFile(uc.spoolDir, imageBytes, func(path string) error {
		spooled, readErr := os.ReadFile(path)
		if readErr != nil {
			return readErr
		}

		estimateCtx, cancel := context.WithTimeout(ctx, uc.estimateTimeout)
		defer cancel()

		started := time.Now()
		var estimateErr error
		raw, estimateErr = uc.estimator.EstimatePose(estimateCtx, spooled)
		estimatorLatency = time.Since(started)
		if estimateErr != nil {
			return estimateErr
		}
		opLogger.Debug("pose estimated",
			zap.Int("keypoints", len(raw)),
			zap.Duration("latency", estimatorLatency),
		)
		return nil
	})
	if err != nil {
		wrapped := logging.NewOperationError("usecase.estimate_pose", requestID, err)
		opLogger.Error("pose estimation failed", zap.Error(wrapped))
		return "", nil, wrapped
	}

	hash := sha1.Sum(imageBytes)
	hashHex := hex.EncodeToString(hash[:])

	set := engine.FilterKeypoints(raw, uc.minPartScore)
	judgment, decideErr := engine.Decide(set)
	if decideErr != nil && !isDomainRejection(decideErr) {
		wrapped := logging.NewOperationError("usecase.decide", requestID, decideErr)
		opLogger.Error("decision failed", zap.Error(wrapped))
		return "", nil, wrapped
	}

	log := buildJudgmentLog(requestID, userID, hashHex, estimatorLatency, judgment, decideErr)
	if err := uc.repo.SaveLog(ctx, log); err != nil {
		wrapped := logging.NewOperationError("usecase.save_log", requestID, err)
		opLogger.Error("failed to persist judgment log", zap.Error(wrapped))
		return "", nil, wrapped
	}

	cached := cachedJudgment{
		RequestID:       log.RequestID,
		UserID:          log.UserID,
		ClosestHand:     log.ClosestHand,
		Distance:        log.Distance,
		Confidence:      log.Confidence,
		Accepted:        log.Accepted,
		RejectionReason: log.RejectionReason,
		Hash:            log.SHA1Hash,
		CreatedAt:       log.CreatedAt,
	}

	serialized, err := json.Marshal(cached)
	if err != nil {
		opLogger.Error("failed to serialize judgment", zap.Error(err))
		return "", nil, err
	}

	if err := uc.withRedisRetry(ctx, requestID, "cache.set.result", func() error {
		return uc.cache.Set(ctx, cacheKey, string(serialized), 5*time.Minute)
	}); err != nil {
		opLogger.Error("failed to cache judgment", zap.Error(err))
		return "", nil, err
	}

	if decideErr != nil {
		return requestID, nil, decideErr
	}
	return requestID, &judgment, nil
}

// GetResult retrieves a cached judgment or loads it from persistence.
func (uc *DetectionUseCase) GetResult(ctx context.Context, userID, requestID string) (*repository.JudgmentLog, error) {
	cacheKey := judgmentCacheKey(requestID)
	if cached, err := uc.withRedisGet(ctx, requestID, "cache.get.result", cacheKey); err == nil {
		var payload cachedJudgment
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to decode cached judgment", zap.Error(err))
		} else if payload.RequestID != "" {
			return &repository.JudgmentLog{
				RequestID:       payload.RequestID,
				UserID:          payload.UserID,
				ClosestHand:     payload.ClosestHand,
				Distance:        payload.Distance,
				Confidence:      payload.Confidence,
				Accepted:        payload.Accepted,
				RejectionReason: payload.RejectionReason,
				SHA1Hash:        payload.Hash,
				CreatedAt:       payload.CreatedAt,
			}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to read cache", zap.Error(err))
	}

	return uc.repo.FindByRequestIDAndUser(ctx, requestID, userID)
}

// GetDuplicateReport builds a duplicate detection report for a request.
func (uc *DetectionUseCase) GetDuplicateReport(ctx context.Context, userID, requestID string) (*DuplicateReport, error) {
	log, err := uc.repo.FindByRequestIDAndUser(ctx, requestID, userID)
	if err != nil {
		return nil, err
	}

	duplicates, err := uc.repo.FindDuplicatesByHash(ctx, userID, log.SHA1Hash, log.RequestID)
	if err != nil {
		return nil, err
	}

	return &DuplicateReport{
		Request:    log,
		Duplicates: duplicates,
	}, nil
}

func buildJudgmentLog(requestID, userID, hashHex string, latency time.Duration, judgment engine.Judgment, decideErr error) *repository.JudgmentLog {
	log := &repository.JudgmentLog{
		RequestID:   requestID,
		UserID:      userID,
		SHA1Hash:    hashHex,
		EstimatorMs: float64(latency.Microseconds()) / 1000,
		CreatedAt:   time.Now().UTC(),
	}
	if decideErr != nil {
		log.RejectionReason = RejectionKind(decideErr)
		log.Details = fmt.Sprintf("rejected:%s hash:%s", log.RejectionReason, hashHex)
		return log
	}
	log.ClosestHand = judgment.ClosestHand
	log.Distance = judgment.Distance
	log.Confidence = judgment.Confidence
	log.Accepted = judgment.Accepted
	log.Details = fmt.Sprintf("accepted:%t hand:%s distance:%.2f confidence:%.3f hash:%s",
		judgment.Accepted, judgment.ClosestHand, judgment.Distance, judgment.Confidence, hashHex)
	return log
}

// RejectionKind maps a domain rejection to its stable wire identifier.
func RejectionKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrNoseNotDetected):
		return "nose_not_detected"
	case errors.Is(err, engine.ErrNoWristDetected):
		return "no_wrist_detected"
	default:
		return ""
	}
}

func isDomainRejection(err error) bool {
	return errors.Is(err, engine.ErrNoseNotDetected) || errors.Is(err, engine.ErrNoWristDetected)
}

func judgmentCacheKey(requestID string) string {
	return fmt.Sprintf("judgment:%s", requestID)
}

func (uc *DetectionUseCase) withRedisRetry(ctx context.Context, requestID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		err := fn()
		return logging.NewOperationError(operation, requestID, err)
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			opLogger.Error("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func (uc *DetectionUseCase) withRedisGet(ctx context.Context, requestID, operation, cacheKey string) (string, error) {
	var result string
	err := uc.withRedisRetry(ctx, requestID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
