// Package engine turns a set of detected body keypoints into an
// accept/reject judgment about whether a hand is raised near the face.
package engine

import (
	"errors"
	"math"

	"github.com/example/pose-check/internal/poseestimator"
)

// Body part names used by the decision, matching the estimator's vocabulary.
const (
	PartNose       = "nose"
	PartLeftWrist  = "leftWrist"
	PartRightWrist = "rightWrist"
)

const (
	// ThresholdDistance is the pixel distance at which confidence reaches zero.
	ThresholdDistance = 550.0

	// AcceptanceThreshold is the minimum confidence for an accepted judgment.
	AcceptanceThreshold = 0.1

	// MinPartScore is the detection score below which a keypoint is discarded
	// before the decision runs. Applied by FilterKeypoints, not by Decide.
	MinPartScore = 0.5
)

var (
	// ErrNoseNotDetected is returned when the nose keypoint is missing.
	// No distance can be computed without the reference point.
	ErrNoseNotDetected = errors.New("nose not detected")

	// ErrNoWristDetected is returned when neither wrist keypoint is present.
	ErrNoWristDetected = errors.New("no wrist detected")
)

// Keypoint is a named body-part position with its detection score.
type Keypoint struct {
	Part  string
	X     float64
	Y     float64
	Score float64
}

// KeypointSet maps part name to the keypoint detected for it.
type KeypointSet map[string]Keypoint

// Judgment is the outcome of a decision: which wrist was closest to the
// nose, how far away it was, and whether that counts as a raised hand.
type Judgment struct {
	ClosestHand string
	Distance    float64
	Confidence  float64
	Accepted    bool
}

// FilterKeypoints builds a KeypointSet from raw estimator output, dropping
// every keypoint whose score is below minScore. When the estimator reports
// the same part twice the higher-scoring detection wins.
func FilterKeypoints(raw []poseestimator.RawKeypoint, minScore float64) KeypointSet {
	set := make(KeypointSet, len(raw))
	for _, kp := range raw {
		if kp.Score < minScore {
			continue
		}
		if existing, ok := set[kp.Part]; ok && existing.Score >= kp.Score {
			continue
		}
		set[kp.Part] = Keypoint{Part: kp.Part, X: kp.X, Y: kp.Y, Score: kp.Score}
	}
	return set
}

// Decide computes the judgment for one keypoint set. It is a pure function:
// no state is kept between calls and the input is never mutated.
//
// The hand-selection policy is nearest-of-both: when both wrists are
// present the one closer to the nose wins, with exact ties going to the
// left wrist. A missing wrist is treated as infinitely far, so it can
// never be selected while the other is present.
func Decide(set KeypointSet) (Judgment, error) {
	nose, ok := set[PartNose]
	if !ok {
		return Judgment{}, ErrNoseNotDetected
	}

	left, hasLeft := set[PartLeftWrist]
	right, hasRight := set[PartRightWrist]
	if !hasLeft && !hasRight {
		return Judgment{}, ErrNoWristDetected
	}

	leftDist := math.Inf(1)
	if hasLeft {
		leftDist = euclidean(nose, left)
	}
	rightDist := math.Inf(1)
	if hasRight {
		rightDist = euclidean(nose, right)
	}

	hand, dist := PartLeftWrist, leftDist
	if rightDist < leftDist {
		hand, dist = PartRightWrist, rightDist
	}

	confidence := 1 - dist/ThresholdDistance
	if confidence < 0 {
		confidence = 0
	}
	confidence = round(confidence, 3)

	return Judgment{
		ClosestHand: hand,
		Distance:    round(dist, 2),
		Confidence:  confidence,
		Accepted:    confidence >= AcceptanceThreshold,
	}, nil
}

func euclidean(a, b Keypoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
