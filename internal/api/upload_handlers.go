package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path"
	"strings"

	"droply/internal/database"
	"droply/internal/models"
)

// @Summary      Issue upload credentials
// @Description  Returns a one-time token, expiry and signature for a direct browser upload to the media host.
// @Tags         upload
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  imagekit.UploadCredentials
// @Failure      401  {string}  string "Unauthorized"
// @Router       /upload/credentials [get]
func (s *Server) GetUploadCredentialsHandler(w http.ResponseWriter, r *http.Request) {
	creds := s.media.SignUpload()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(creds)
}

// ImageKitResult is the upload response the browser relays from the media
// host. It is persisted as reported: the host is the source of truth for the
// bytes it stores, and this service does not re-fetch the object to verify it.
type ImageKitResult struct {
	URL          string  `json:"url"`
	FileID       *string `json:"fileId"`
	Name         string  `json:"name"`
	FilePath     string  `json:"filePath"`
	Size         int64   `json:"size"`
	FileType     string  `json:"fileType"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

type RecordUploadRequest struct {
	UserID   string         `json:"userId"`
	ParentID *string        `json:"parentId"`
	ImageKit ImageKitResult `json:"imagekit"`
}

// @Summary      Record an uploaded file
// @Description  Persists the metadata of a file the browser has already uploaded to the media host and returns the created node.
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        recordUploadRequest  body      RecordUploadRequest  true  "Upload result"
// @Success      201  {object}  models.Node
// @Failure      400  {string}  string "Missing storage URL"
// @Failure      401  {string}  string "User ID does not match the authenticated session"
// @Failure      404  {string}  string "Parent folder not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files [post]
func (s *Server) RecordUploadHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req RecordUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !matchesCaller(claims, req.UserID) {
		http.Error(w, "User ID does not match the authenticated session", http.StatusUnauthorized)
		return
	}

	if strings.TrimSpace(req.ImageKit.URL) == "" {
		http.Error(w, "Upload result is missing a storage URL", http.StatusBadRequest)
		return
	}

	if req.ParentID != nil {
		parent, err := s.store.GetFolder(r.Context(), *req.ParentID, claims.UserID)
		if err != nil {
			http.Error(w, "Failed to verify parent folder", http.StatusInternalServerError)
			return
		}
		if parent == nil {
			http.Error(w, "Parent folder not found", http.StatusNotFound)
			return
		}
	}

	name := strings.TrimSpace(req.ImageKit.Name)
	if name == "" {
		name = path.Base(req.ImageKit.FilePath)
	}
	if name == "" || name == "." || name == "/" {
		name = "Untitled"
	}

	mimeType := req.ImageKit.FileType
	if mimeType == "" {
		mimeType = "image"
	}

	nodeID, err := s.generateUniqueID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	params := database.CreateNodeParams{
		ID:            nodeID,
		UserID:        claims.UserID,
		ParentID:      req.ParentID,
		Name:          name,
		Path:          req.ImageKit.FilePath,
		SizeBytes:     req.ImageKit.Size,
		MimeType:      mimeType,
		StorageURL:    req.ImageKit.URL,
		StorageFileID: req.ImageKit.FileID,
		ThumbnailURL:  req.ImageKit.ThumbnailURL,
		IsFolder:      false,
	}

	var node *models.Node
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		node, err = q.CreateNode(r.Context(), params)
		if err != nil {
			return err
		}
		return q.LogEvent(r.Context(), claims.UserID, "file.uploaded", node)
	})

	if txErr != nil {
		if errors.Is(txErr, database.ErrParentNotFound) {
			http.Error(w, "Parent folder not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: Failed to record uploaded file for user %s: %v", claims.UserID, txErr)
		http.Error(w, "Failed to record uploaded file", http.StatusInternalServerError)
		return
	}

	s.publishEvent(claims.UserID, "file.uploaded", node)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(node)
}
