package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/pose-check/internal/logging"
	"github.com/example/pose-check/internal/poseestimator"
	proto "github.com/example/pose-check/proto"
)

// DialPoseEstimator returns a ready-to-use gRPC client for the pose
// estimation sidecar. The connection is established once at startup and
// shared by all requests.
func DialPoseEstimator(ctx context.Context, addr string, logger *zap.Logger) (poseestimator.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_pose_estimator", "", err)
		logger.Error("failed to dial pose estimator", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewPoseEstimatorClient(conn)
	return &grpcPoseEstimator{client: client, logger: logger}, conn, nil
}

type grpcPoseEstimator struct {
	client proto.PoseEstimatorClient
	logger *zap.Logger
}

func (g *grpcPoseEstimator) EstimatePose(ctx context.Context, imageBytes []byte) ([]poseestimator.RawKeypoint, error) {
	resp, err := g.client.EstimatePose(ctx, &proto.EstimateRequest{ImageData: imageBytes})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.estimate_pose", "", err)
		g.logger.Error("pose estimator call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	keypoints := make([]poseestimator.RawKeypoint, 0, len(resp.GetKeypoints()))
	for _, kp := range resp.GetKeypoints() {
		keypoints = append(keypoints, poseestimator.RawKeypoint{
			Part:  kp.GetPart(),
			X:     float64(kp.GetX()),
			Y:     float64(kp.GetY()),
			Score: float64(kp.GetScore()),
		})
	}
	return keypoints, nil
}
