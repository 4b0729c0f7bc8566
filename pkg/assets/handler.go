package assets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"

	"github.com/pulse-ui/pulse/internal/config"
)

// Handler returns the HTTP surface of a store: POST / uploads a multipart
// "file" field and returns the asset as JSON, GET /{id} streams it back.
func Handler(store Store, maxUploadBytes int64) http.Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}

	r := chi.NewRouter()

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		req.Body = http.MaxBytesReader(w, req.Body, maxUploadBytes)
		if err := req.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "upload too large or malformed", http.StatusBadRequest)
			return
		}
		file, header, err := req.FormFile("file")
		if err != nil {
			http.Error(w, "missing file field", http.StatusBadRequest)
			return
		}
		defer file.Close()

		a, err := store.Put(req.Context(), Asset{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}, file)
		if err != nil {
			if errors.Is(err, ErrTooLarge) {
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "upload failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(a)
	})

	r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
		a, body, err := store.Open(req.Context(), chi.URLParam(req, "id"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.NotFound(w, req)
				return
			}
			http.Error(w, "asset read failed", http.StatusInternalServerError)
			return
		}
		defer body.Close()

		if a.ContentType != "" {
			w.Header().Set("Content-Type", a.ContentType)
		}
		if a.Size > 0 {
			w.Header().Set("Content-Length", strconv.FormatInt(a.Size, 10))
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		io.Copy(w, body)
	})

	r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
		if err := store.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
			http.Error(w, "delete failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

// FromConfig builds the store described by the assets configuration:
// S3 when a bucket is set, local disk otherwise. The S3 client resolves
// credentials from the environment; use NewS3Store directly to supply a
// fully configured client.
func FromConfig(cfg config.AssetsConfig) (Store, error) {
	if cfg.Bucket != "" {
		client := s3.New(s3.Options{Region: cfg.Region})
		return NewS3Store(client, cfg.Bucket, cfg.Prefix, cfg.MaxUploadBytes), nil
	}
	return NewDiskStore(cfg.Dir, cfg.MaxUploadBytes)
}
