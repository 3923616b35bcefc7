package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/breedsense/breedsense/pkg/usecase"
	"github.com/breedsense/breedsense/pkg/utils/errutil"
	"github.com/breedsense/breedsense/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// maxUploadSize caps multipart parsing memory for image uploads
const maxUploadSize = 32 << 20

func predictHandler(uc *usecase.PredictionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid multipart request"), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "file field is required"), http.StatusBadRequest)
			return
		}
		defer safe.Close(ctx, file)

		data, err := io.ReadAll(file)
		if err != nil {
			errutil.HandleHTTPOpaque(ctx, w, goerr.Wrap(err, "failed to read upload"),
				"Prediction failed", http.StatusInternalServerError)
			return
		}

		contentType := header.Header.Get("Content-Type")

		breed, err := uc.Predict(ctx, header.Filename, contentType, data)
		if err != nil {
			if usecase.IsInvalidUpload(err) {
				errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
				return
			}
			errutil.HandleHTTPOpaque(ctx, w, err, "Prediction failed", http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, map[string]string{"breed": breed.String()})
	}
}

func predictionsHandler(uc *usecase.AnalyticsUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := usecase.DefaultRecentLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid limit parameter"), http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		preds, err := uc.Recent(ctx, limit)
		if err != nil {
			errutil.HandleHTTPOpaque(ctx, w, err, "Failed to list predictions", http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, preds)
	}
}

func summaryHandler(uc *usecase.AnalyticsUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		summary, err := uc.Summary(ctx)
		if err != nil {
			errutil.HandleHTTPOpaque(ctx, w, err, "Failed to compute summary", http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, summary)
	}
}

func createStatusHandler(uc *usecase.StatusUseCase) http.HandlerFunc {
	type request struct {
		ClientName string `json:"client_name"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}

		check, err := uc.Create(ctx, req.ClientName)
		if err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		respondJSON(w, r, check)
	}
}

func listStatusHandler(uc *usecase.StatusUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		checks, err := uc.List(ctx)
		if err != nil {
			errutil.HandleHTTPOpaque(ctx, w, err, "Failed to list status checks", http.StatusInternalServerError)
			return
		}

		respondJSON(w, r, checks)
	}
}
