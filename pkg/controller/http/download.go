package http

import (
	"net/http"

	"github.com/breedsense/breedsense/pkg/service/export"
	"github.com/breedsense/breedsense/pkg/utils/logging"
)

func downloadSourceHandler(archiver *export.Archiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variant := export.ParseVariant(r.URL.Query().Get("variant"))

		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="breedsense_source.zip"`)

		// The archive is streamed; by the time a write fails the status line
		// is already committed, so failures can only be logged.
		if err := archiver.WriteZip(w, variant); err != nil {
			logging.From(r.Context()).Error("failed to stream source archive",
				"variant", variant, "error", err)
		}
	}
}
