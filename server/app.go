package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/lewtec/comparador/internal/compare"
	"github.com/lewtec/comparador/internal/domain"
)

// App wires the comparison engine, the image store and the configuration
// into an HTTP handler.
type App struct {
	Config *Config
	Store  domain.ImageStore
}

// GetHTTPHandler returns the service's HTTP handler.
func (a *App) GetHTTPHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/compare-image", a.handleCompareImage)
	mux.HandleFunc("/upload-image", a.handleUploadImage)
	mux.HandleFunc("/health", a.handleHealth)
	mux.HandleFunc("/help", a.handleHelp)
	return HTTPLogger(mux)
}

type compareResponse struct {
	Success         bool     `json:"success"`
	IsSame          bool     `json:"is_same"`
	Method          string   `json:"comparison_method"`
	Message         string   `json:"message"`
	Note            string   `json:"note"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
	HammingDistance *int     `json:"hamming_distance,omitempty"`
	Correlation     *float64 `json:"correlation,omitempty"`
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ImageID string `json:"image_id"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("http: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

// readUpload extracts and validates the uploaded file from a multipart
// form. The extension allow-list is checked here, before the engine ever
// sees the bytes.
func (a *App) readUpload(r *http.Request) ([]byte, *multipart.FileHeader, int, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("No file provided")
	}
	if err != nil {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %v", err)
	}
	defer file.Close()

	if header.Filename == "" {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("No file selected")
	}
	if !a.Config.ExtensionAllowed(header.Filename) {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("File type not allowed")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("failed to read upload: %v", err)
	}
	return data, header, 0, nil
}

func (a *App) handleCompareImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)

	imageID := r.FormValue("image_id")
	if imageID == "" {
		writeError(w, http.StatusBadRequest, "image_id is required")
		return
	}

	candidate, _, status, err := a.readUpload(r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	methodToken := r.FormValue("comparison_method")
	if methodToken == "" {
		methodToken = a.Config.DefaultMethod
	}
	method, err := compare.ParseMethod(methodToken)
	if err != nil {
		writeError(w, http.StatusBadRequest,
			`Invalid comparison method. Use "hash", "normalized_hash", "perceptual", or "content"`)
		return
	}

	reference, err := a.Store.Get(r.Context(), imageID)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Image not found in database")
		return
	}
	if err != nil {
		log.Printf("compare: store lookup failed for %s: %v", imageID, err)
		writeError(w, http.StatusInternalServerError, "Image store unavailable")
		return
	}

	result, err := compare.Compare(method, reference.Data, candidate)
	if err != nil {
		var decodeErr *compare.DecodeError
		if errors.As(err, &decodeErr) {
			writeError(w, http.StatusBadRequest, decodeErr.Error())
			return
		}
		log.Printf("compare: method %s failed: %v", method, err)
		writeError(w, http.StatusInternalServerError, "Comparison failed")
		return
	}

	message := "not same"
	if result.Same {
		message = "same"
	}
	writeJSON(w, http.StatusOK, compareResponse{
		Success:         true,
		IsSame:          result.Same,
		Method:          string(result.Method),
		Message:         message,
		Note:            result.Note,
		SimilarityScore: result.SimilarityScore,
		HammingDistance: result.HammingDistance,
		Correlation:     result.Correlation,
	})
}

func (a *App) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)

	data, header, status, err := a.readUpload(r)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	// Uploaded filenames are untrusted; keep the base name only.
	filename := filepath.Base(strings.ReplaceAll(header.Filename, "\\", "/"))
	name := r.FormValue("name")
	if name == "" {
		name = filename
	}

	img, err := a.Store.Save(r.Context(), name, filename, data)
	if err != nil {
		log.Printf("upload: failed to store image: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Success: true,
		Message: "Image uploaded successfully",
		ImageID: img.ID,
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (a *App) handleHelp(w http.ResponseWriter, r *http.Request) {
	var markdownBuilder strings.Builder
	fmt.Fprintf(&markdownBuilder, "# Image comparison methods\n\n")
	fmt.Fprintf(&markdownBuilder, "`POST /compare-image` compares an uploaded image against a stored one. ")
	fmt.Fprintf(&markdownBuilder, "Form fields: `image_id`, `file` and optionally `comparison_method`.\n\n")
	for _, method := range []compare.Method{
		compare.MethodDigest,
		compare.MethodNormalizedDigest,
		compare.MethodPerceptual,
		compare.MethodContent,
	} {
		fmt.Fprintf(&markdownBuilder, "## %s\n", method)
		fmt.Fprintf(&markdownBuilder, "> %s\n\n", method.Note())
		if method == a.defaultMethod() {
			fmt.Fprintf(&markdownBuilder, "This is the default when `comparison_method` is omitted.\n\n")
		}
	}
	if err := ExecTemplate(w, PageContent{Title: "Help", Content: markdownBuilder.String()}); err != nil {
		log.Printf("help: failed to render page: %v", err)
	}
}

func (a *App) defaultMethod() compare.Method {
	method, err := compare.ParseMethod(a.Config.DefaultMethod)
	if err != nil {
		return compare.DefaultMethod
	}
	return method
}
