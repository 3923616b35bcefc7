package usecase

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/breedsense/breedsense/pkg/domain/interfaces"
	"github.com/breedsense/breedsense/pkg/domain/model"
	"github.com/breedsense/breedsense/pkg/domain/model/config"
	"github.com/breedsense/breedsense/pkg/domain/types"
	"github.com/breedsense/breedsense/pkg/service/classifier"
	"github.com/breedsense/breedsense/pkg/service/telemetry"
	"github.com/breedsense/breedsense/pkg/utils/logging"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// PredictionUseCase runs the classification pipeline: gate, classify,
// persist, prune.
type PredictionUseCase struct {
	repo       interfaces.Repository
	cfg        *config.ClassifierConfig
	gate       *classifier.Gate
	classifier interfaces.BreedClassifier
	scratchDir string
	metrics    *telemetry.Metrics
}

// Predict classifies an uploaded image and records the result. Gate
// rejections return ErrMissingContentType or ErrNotCow without persisting
// anything; once the record is committed, pruning and scratch cleanup
// failures no longer affect the outcome.
func (uc *PredictionUseCase) Predict(ctx context.Context, filename, contentType string, data []byte) (types.Breed, error) {
	if contentType == "" {
		return "", ErrMissingContentType
	}

	if !uc.gate.Accept(filename, contentType) {
		if uc.metrics != nil {
			uc.metrics.IncrementRejection()
		}
		return "", ErrNotCow
	}

	// Transient scratch copy of the upload. Optional: a failure here is
	// logged and the pipeline continues.
	scratchPath := uc.writeScratch(ctx, filename, data)

	breed, err := uc.classifier.Classify(ctx, filename, data)
	if err != nil {
		uc.removeScratch(ctx, scratchPath)
		return "", goerr.Wrap(err, "classification failed", goerr.V("filename", filename))
	}

	pred := model.NewPrediction(filename, contentType, breed)
	if err := uc.repo.Prediction().Create(ctx, pred); err != nil {
		uc.removeScratch(ctx, scratchPath)
		return "", goerr.Wrap(err, "failed to persist prediction", goerr.V("id", pred.ID))
	}

	// The record is committed. Everything below is best-effort maintenance.
	if uc.metrics != nil {
		uc.metrics.IncrementPrediction(breed.String())
	}

	if err := uc.pruneRetention(ctx); err != nil {
		logging.From(ctx).Warn("retention pruning failed", "error", err)
	}

	uc.removeScratch(ctx, scratchPath)

	return breed, nil
}

// pruneRetention deletes the oldest records beyond the retention bound.
// Count-then-delete is not atomic with concurrent inserts, so the bound is
// eventual; overlapping prune batches are safe because deletes are
// idempotent.
func (uc *PredictionUseCase) pruneRetention(ctx context.Context) error {
	count, err := uc.repo.Prediction().Count(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to count predictions")
	}

	excess := count - uc.cfg.RetentionBound
	if excess <= 0 {
		return nil
	}

	oldest, err := uc.repo.Prediction().ListOldest(ctx, excess)
	if err != nil {
		return goerr.Wrap(err, "failed to list prune candidates", goerr.V("excess", excess))
	}

	ids := make([]types.PredictionID, len(oldest))
	for i, p := range oldest {
		ids[i] = p.ID
	}

	if err := uc.repo.Prediction().DeleteByIDs(ctx, ids); err != nil {
		return goerr.Wrap(err, "failed to delete pruned predictions", goerr.V("count", len(ids)))
	}

	return nil
}

func (uc *PredictionUseCase) writeScratch(ctx context.Context, filename string, data []byte) string {
	if uc.scratchDir == "" {
		return ""
	}

	if err := os.MkdirAll(uc.scratchDir, 0750); err != nil {
		logging.From(ctx).Warn("failed to create scratch dir", "dir", uc.scratchDir, "error", err)
		return ""
	}

	scratchPath := filepath.Join(uc.scratchDir, uuid.New().String()+path.Ext(filename))
	if err := os.WriteFile(scratchPath, data, 0600); err != nil {
		logging.From(ctx).Warn("failed to write scratch file", "path", scratchPath, "error", err)
		return ""
	}

	return scratchPath
}

func (uc *PredictionUseCase) removeScratch(ctx context.Context, scratchPath string) {
	if scratchPath == "" {
		return
	}
	if err := os.Remove(scratchPath); err != nil && !os.IsNotExist(err) {
		logging.From(ctx).Warn("failed to remove scratch file", "path", scratchPath, "error", err)
	}
}
