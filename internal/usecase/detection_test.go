package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/pose-check/internal/engine"
	"github.com/example/pose-check/internal/logging"
	"github.com/example/pose-check/internal/poseestimator"
	"github.com/example/pose-check/internal/repository"
)

type stubRepository struct {
	savedLogs []*repository.JudgmentLog
	saveErr   error
	findLog   *repository.JudgmentLog
	findErr   error
	findCalls int
	agg       *repository.MetricsAggregation
	aggErr    error
}

func (s *stubRepository) SaveLog(ctx context.Context, log *repository.JudgmentLog) error {
	s.savedLogs = append(s.savedLogs, log)
	return s.saveErr
}

func (s *stubRepository) FindByRequestIDAndUser(ctx context.Context, requestID, userID string) (*repository.JudgmentLog, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.findLog != nil {
		return s.findLog, nil
	}
	return nil, errors.New("not found")
}

func (s *stubRepository) FindDuplicatesByHash(ctx context.Context, userID, hash, excludeRequestID string) ([]*repository.JudgmentLog, error) {
	return nil, nil
}

func (s *stubRepository) AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error) {
	if s.aggErr != nil {
		return nil, s.aggErr
	}
	if s.agg != nil {
		return s.agg, nil
	}
	return &repository.MetricsAggregation{}, nil
}

type stubCache struct {
	setErrs   []error
	getErrs   []error
	getValues []string
	setKeys   []string
	getKeys   []string
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	if len(s.setErrs) == 0 {
		return nil
	}
	err := s.setErrs[0]
	s.setErrs = s.setErrs[1:]
	return err
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	var value string
	if len(s.getValues) > 0 {
		value = s.getValues[0]
		s.getValues = s.getValues[1:]
	}
	var err error
	if len(s.getErrs) > 0 {
		err = s.getErrs[0]
		s.getErrs = s.getErrs[1:]
	}
	return value, err
}

type stubEstimator struct {
	keypoints []poseestimator.RawKeypoint
	err       error
}

func (s *stubEstimator) EstimatePose(ctx context.Context, imageBytes []byte) ([]poseestimator.RawKeypoint, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.keypoints, nil
}

type transientRedisError struct{}

func (transientRedisError) Error() string   { return "redis transient" }
func (transientRedisError) Timeout() bool   { return true }
func (transientRedisError) Temporary() bool { return true }

func raisedHandKeypoints() []poseestimator.RawKeypoint {
	return []poseestimator.RawKeypoint{
		{Part: engine.PartNose, X: 0, Y: 0, Score: 0.95},
		{Part: engine.PartLeftWrist, X: 3, Y: 4, Score: 0.9},
		{Part: engine.PartRightWrist, X: 6, Y: 8, Score: 0.85},
	}
}

func newTestUseCase(repo *stubRepository, cache *stubCache, estimator *stubEstimator, t *testing.T) *DetectionUseCase {
	t.Helper()
	uc := NewDetectionUseCase(repo, cache, estimator, zap.NewNop())
	uc.spoolDir = t.TempDir()
	return uc
}

func TestDetectHandRaiseAcceptsNearbyWrist(t *testing.T) {
	repo := &stubRepository{}
	cache := &stubCache{}
	uc := newTestUseCase(repo, cache, &stubEstimator{keypoints: raisedHandKeypoints()}, t)

	requestID, judgment, err := uc.DetectHandRaise(context.Background(), "user-1", []byte("image"))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if requestID == "" {
		t.Fatal("expected a request id")
	}
	if judgment.ClosestHand != engine.PartLeftWrist {
		t.Fatalf("expected left wrist, got %s", judgment.ClosestHand)
	}
	if judgment.Distance != 5.00 || judgment.Confidence != 0.991 || !judgment.Accepted {
		t.Fatalf("unexpected judgment: %+v", judgment)
	}

	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected 1 saved log, got %d", len(repo.savedLogs))
	}
	log := repo.savedLogs[0]
	if !log.Accepted || log.ClosestHand != engine.PartLeftWrist || log.RejectionReason != "" {
		t.Fatalf("unexpected persisted log: %+v", log)
	}
	if log.SHA1Hash == "" {
		t.Fatal("expected image hash to be persisted")
	}
}

func TestDetectHandRaiseRejectsWhenNoseMissing(t *testing.T) {
	repo := &stubRepository{}
	estimator := &stubEstimator{keypoints: []poseestimator.RawKeypoint{
		{Part: engine.PartLeftWrist, X: 3, Y: 4, Score: 0.9},
	}}
	uc := newTestUseCase(repo, &stubCache{}, estimator, t)

	requestID, judgment, err := uc.DetectHandRaise(context.Background(), "user-1", []byte("image"))
	if !errors.Is(err, engine.ErrNoseNotDetected) {
		t.Fatalf("expected ErrNoseNotDetected, got %v", err)
	}
	if judgment != nil {
		t.Fatalf("expected no judgment, got %+v", judgment)
	}
	if requestID == "" {
		t.Fatal("expected the rejection to carry a request id")
	}

	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected rejection to be logged, got %d entries", len(repo.savedLogs))
	}
	if repo.savedLogs[0].RejectionReason != "nose_not_detected" {
		t.Fatalf("unexpected rejection reason: %s", repo.savedLogs[0].RejectionReason)
	}
}

func TestDetectHandRaiseFiltersLowScoreKeypoints(t *testing.T) {
	repo := &stubRepository{}
	estimator := &stubEstimator{keypoints: []poseestimator.RawKeypoint{
		{Part: engine.PartNose, X: 0, Y: 0, Score: 0.95},
		{Part: engine.PartLeftWrist, X: 3, Y: 4, Score: 0.3},
		{Part: engine.PartRightWrist, X: 6, Y: 8, Score: 0.2},
	}}
	uc := newTestUseCase(repo, &stubCache{}, estimator, t)

	_, _, err := uc.DetectHandRaise(context.Background(), "user-1", []byte("image"))
	if !errors.Is(err, engine.ErrNoWristDetected) {
		t.Fatalf("expected ErrNoWristDetected after filtering, got %v", err)
	}
	if len(repo.savedLogs) != 1 || repo.savedLogs[0].RejectionReason != "no_wrist_detected" {
		t.Fatalf("unexpected persisted logs: %+v", repo.savedLogs)
	}
}

func TestDetectHandRaiseWrapsEstimatorFailure(t *testing.T) {
	estimator := &stubEstimator{err: errors.New("model crashed")}
	uc := newTestUseCase(&stubRepository{}, &stubCache{}, estimator, t)

	_, _, err := uc.DetectHandRaise(context.Background(), "user-1", []byte("image"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "usecase.estimate_pose" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
	if errors.Is(err, engine.ErrNoseNotDetected) || errors.Is(err, engine.ErrNoWristDetected) {
		t.Fatal("estimator failure must not look like a domain rejection")
	}
}

func TestDetectHandRaiseRetriesRedisSet(t *testing.T) {
	cache := &stubCache{setErrs: []error{transientRedisError{}}}
	repo := &stubRepository{}
	uc := newTestUseCase(repo, cache, &stubEstimator{keypoints: raisedHandKeypoints()}, t)

	_, judgment, err := uc.DetectHandRaise(context.Background(), "user-1", []byte("image"))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !judgment.Accepted {
		t.Fatalf("expected accepted judgment, got %+v", judgment)
	}
	if len(cache.setKeys) < 3 {
		t.Fatalf("expected at least 3 cache set calls (retry + result), got %d", len(cache.setKeys))
	}
	if cache.setKeys[0] != cache.setKeys[1] {
		t.Fatalf("expected retry to target same key, got %s and %s", cache.setKeys[0], cache.setKeys[1])
	}
	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected log to be saved, got %d entries", len(repo.savedLogs))
	}
}

func TestDetectHandRaiseReturnsOperationErrorOnCacheFailure(t *testing.T) {
	cache := &stubCache{setErrs: []error{errors.New("boom")}}
	uc := newTestUseCase(&stubRepository{}, cache, &stubEstimator{keypoints: raisedHandKeypoints()}, t)

	_, _, err := uc.DetectHandRaise(context.Background(), "user-1", []byte("image"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "cache.set.processing" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
}

func TestGetResultFallsBackToRepositoryWhenCacheMiss(t *testing.T) {
	cache := &stubCache{getErrs: []error{redis.Nil}}
	expected := &repository.JudgmentLog{RequestID: "req", UserID: "user", Accepted: true}
	repo := &stubRepository{findLog: expected}
	uc := newTestUseCase(repo, cache, &stubEstimator{}, t)

	log, err := uc.GetResult(context.Background(), "user", "req")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if log != expected {
		t.Fatalf("expected %+v, got %+v", expected, log)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected repository to be queried once, got %d", repo.findCalls)
	}
}

func TestGetMetricsSummaryComputesAcceptanceRate(t *testing.T) {
	repo := &stubRepository{agg: &repository.MetricsAggregation{
		TotalCount:         8,
		AcceptedCount:      6,
		AverageConfidence:  0.7,
		AverageEstimatorMs: 120,
	}}
	uc := newTestUseCase(repo, &stubCache{}, &stubEstimator{}, t)

	summary, err := uc.GetMetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if summary.TotalRequests != 8 || summary.AcceptedRequests != 6 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.AcceptanceRate != 0.75 {
		t.Fatalf("expected acceptance rate 0.75, got %v", summary.AcceptanceRate)
	}
	if summary.AverageEstimatorLatencyMs != 120 {
		t.Fatalf("expected latency 120ms, got %v", summary.AverageEstimatorLatencyMs)
	}
}
