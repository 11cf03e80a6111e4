package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/pose-check/internal/auth"
	"github.com/example/pose-check/internal/engine"
	"github.com/example/pose-check/internal/usecase"
)

// MaxUploadSize caps accepted image uploads at 10 MiB.
const MaxUploadSize = 10 << 20

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, uc *usecase.DetectionUseCase, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authorized := router.Group("/", authMiddleware)

	authorized.POST("/detect", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		if file.Size > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
			return
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
			return
		}
		if len(data) > MaxUploadSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
			return
		}
		if !isSupportedImage(data) {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported image format"})
			return
		}

		requestID, judgment, err := uc.DetectHandRaise(c.Request.Context(), userID, data)
		if err != nil {
			if kind := usecase.RejectionKind(err); kind != "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"request_id": requestID,
					"error":      rejectionMessage(err),
					"kind":       kind,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "detection failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id":   requestID,
			"closest_hand": judgment.ClosestHand,
			"distance":     judgment.Distance,
			"confidence":   judgment.Confidence,
			"accepted":     judgment.Accepted,
		})
	})

	authorized.GET("/result/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}

		requestID := c.Param("id")
		log, err := uc.GetResult(c.Request.Context(), userID, requestID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id":       log.RequestID,
			"user_id":          log.UserID,
			"closest_hand":     log.ClosestHand,
			"distance":         log.Distance,
			"confidence":       log.Confidence,
			"accepted":         log.Accepted,
			"rejection_reason": log.RejectionReason,
			"created_at":       log.CreatedAt,
		})
	})

	authorized.GET("/duplicates/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user identity"})
			return
		}

		report, err := uc.GetDuplicateReport(c.Request.Context(), userID, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}

		duplicates := make([]gin.H, 0, len(report.Duplicates))
		for _, dup := range report.Duplicates {
			duplicates = append(duplicates, gin.H{
				"request_id": dup.RequestID,
				"accepted":   dup.Accepted,
				"created_at": dup.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id": report.Request.RequestID,
			"sha1_hash":  report.Request.SHA1Hash,
			"duplicates": duplicates,
		})
	})

	authorized.GET("/metrics/summary", func(c *gin.Context) {
		summary, err := uc.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

func isSupportedImage(data []byte) bool {
	switch http.DetectContentType(data) {
	case "image/png", "image/jpeg", "image/webp":
		return true
	default:
		return false
	}
}

func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrNoseNotDetected):
		return "nose not detected in image"
	case errors.Is(err, engine.ErrNoWristDetected):
		return "no wrist detected in image"
	default:
		return err.Error()
	}
}
