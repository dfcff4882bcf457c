package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"droply/internal/database"
	"droply/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/jaevor/go-nanoid"
)

func (s *Server) generateUniqueID(ctx context.Context) (string, error) {
	maxRetries := 10

	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		id := generateID()
		exists, err := s.store.NodeExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for node existence: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

type CreateFolderRequest struct {
	Name     string  `json:"name"`
	UserID   string  `json:"userId"`
	ParentID *string `json:"parentId"`
}

type CreateFolderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Folder  *models.Node `json:"folder"`
}

// @Summary      Create a folder
// @Description  Creates a folder, optionally inside an existing folder owned by the caller.
// @Tags         folders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        createFolderRequest  body      CreateFolderRequest  true  "Folder to create"
// @Success      201  {object}  CreateFolderResponse
// @Failure      400  {string}  string "Folder name cannot be empty"
// @Failure      401  {string}  string "User ID does not match the authenticated session"
// @Failure      404  {string}  string "Parent folder not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /folders [post]
func (s *Server) CreateFolderHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !matchesCaller(claims, req.UserID) {
		http.Error(w, "User ID does not match the authenticated session", http.StatusUnauthorized)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "Folder name cannot be empty", http.StatusBadRequest)
		return
	}

	folderPath := "/" + name
	if req.ParentID != nil {
		parent, err := s.store.GetFolder(r.Context(), *req.ParentID, claims.UserID)
		if err != nil {
			http.Error(w, "Failed to verify parent folder", http.StatusInternalServerError)
			return
		}
		if parent == nil {
			// A file, a foreign node and a missing id are indistinguishable here.
			http.Error(w, "Parent folder not found", http.StatusNotFound)
			return
		}
		folderPath = parent.Path + "/" + name
	}

	nodeID, err := s.generateUniqueID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	params := database.CreateNodeParams{
		ID:       nodeID,
		UserID:   claims.UserID,
		ParentID: req.ParentID,
		Name:     name,
		Path:     folderPath,
		MimeType: models.FolderMimeType,
		IsFolder: true,
	}

	var folder *models.Node
	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		folder, err = q.CreateNode(r.Context(), params)
		if err != nil {
			return err
		}
		return q.LogEvent(r.Context(), claims.UserID, "folder.created", folder)
	})

	if txErr != nil {
		if errors.Is(txErr, database.ErrParentNotFound) {
			http.Error(w, "Parent folder not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: Failed to create folder for user %s: %v", claims.UserID, txErr)
		http.Error(w, "Failed to create folder", http.StatusInternalServerError)
		return
	}

	s.publishEvent(claims.UserID, "folder.created", folder)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateFolderResponse{
		Success: true,
		Message: "Folder created successfully",
		Folder:  folder,
	})
}

// @Summary      List nodes
// @Description  Lists the caller's files and folders under a parent. Omit parentId for the root level. starred=true and trash=true narrow the listing.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        userId    query     string  true   "Owner id, must match the session"
// @Param        parentId  query     string  false  "Parent folder id"
// @Param        starred   query     bool    false  "Only starred nodes"
// @Param        trash     query     bool    false  "Only trashed nodes"
// @Success      200  {array}   models.Node
// @Failure      401  {string}  string "User ID does not match the authenticated session"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files [get]
func (s *Server) ListNodesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	if !matchesCaller(claims, r.URL.Query().Get("userId")) {
		http.Error(w, "User ID does not match the authenticated session", http.StatusUnauthorized)
		return
	}

	parentIDStr := r.URL.Query().Get("parentId")
	var parentID *string
	if parentIDStr != "" {
		parentID = &parentIDStr
	}

	nodes, err := s.store.ListNodes(r.Context(), database.ListNodesParams{
		UserID:      claims.UserID,
		ParentID:    parentID,
		StarredOnly: r.URL.Query().Get("starred") == "true",
		TrashOnly:   r.URL.Query().Get("trash") == "true",
	})
	if err != nil {
		log.Printf("ERROR: Failed to list nodes for user %s: %v", claims.UserID, err)
		http.Error(w, "Failed to list nodes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nodes)
}

// @Summary      Toggle the star flag
// @Description  Stars an unstarred node and unstars a starred one, returning the updated node.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "Node ID"
// @Success      200  {object}  models.Node
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "Node not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files/{fileId}/star [patch]
func (s *Server) ToggleStarHandler(w http.ResponseWriter, r *http.Request) {
	s.toggleFlagHandler(w, r, "star")
}

// @Summary      Toggle the trash flag
// @Description  Moves a node to trash or restores it, returning the updated node.
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Param        fileId  path      string  true  "Node ID"
// @Success      200  {object}  models.Node
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "Node not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files/{fileId}/trash [patch]
func (s *Server) ToggleTrashHandler(w http.ResponseWriter, r *http.Request) {
	s.toggleFlagHandler(w, r, "trash")
}

func (s *Server) toggleFlagHandler(w http.ResponseWriter, r *http.Request, flag string) {
	claims := GetUserFromContext(r.Context())
	nodeID := chi.URLParam(r, "fileId")

	if nodeID == "" {
		http.Error(w, "Node ID is required", http.StatusBadRequest)
		return
	}

	var node *models.Node
	var eventType string

	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		switch flag {
		case "star":
			node, err = q.ToggleStar(r.Context(), nodeID, claims.UserID)
		case "trash":
			node, err = q.ToggleTrash(r.Context(), nodeID, claims.UserID)
		}
		if err != nil {
			return err
		}
		if node == nil {
			return database.ErrNodeNotFound
		}

		switch {
		case flag == "star" && node.IsStarred:
			eventType = "node.starred"
		case flag == "star":
			eventType = "node.unstarred"
		case node.IsTrash:
			eventType = "node.trashed"
		default:
			eventType = "node.restored"
		}
		return q.LogEvent(r.Context(), claims.UserID, eventType, node)
	})

	if txErr != nil {
		if errors.Is(txErr, database.ErrNodeNotFound) {
			http.Error(w, "Node not found or you do not have permission to access it", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update node", http.StatusInternalServerError)
		return
	}

	s.publishEvent(claims.UserID, eventType, node)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(node)
}

// @Summary      Permanently delete a node
// @Description  Removes a file, or a folder with its whole subtree, and deletes the stored objects from the media host.
// @Tags         files
// @Security     BearerAuth
// @Param        fileId  path      string  true  "Node ID"
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      404  {string}  string "Node not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files/{fileId} [delete]
func (s *Server) DeleteNodeHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	nodeID := chi.URLParam(r, "fileId")

	if nodeID == "" {
		http.Error(w, "Node ID is required", http.StatusBadRequest)
		return
	}

	var storageFileIDs []string

	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var found bool
		var err error
		storageFileIDs, found, err = q.DeleteNode(r.Context(), nodeID, claims.UserID)
		if err != nil {
			return err
		}
		if !found {
			return database.ErrNodeNotFound
		}
		return q.LogEvent(r.Context(), claims.UserID, "node.deleted", map[string]string{"id": nodeID})
	})

	if txErr != nil {
		if errors.Is(txErr, database.ErrNodeNotFound) {
			http.Error(w, "Node not found or you do not have permission to delete it", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete node", http.StatusInternalServerError)
		return
	}

	// Media-host cleanup is best effort; the rows are already gone.
	for _, fileID := range storageFileIDs {
		if err := s.media.DeleteFile(r.Context(), fileID); err != nil {
			log.Printf("WARN: Failed to delete file %s from media host: %v", fileID, err)
		}
	}

	s.publishEvent(claims.UserID, "node.deleted", map[string]string{"id": nodeID})

	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Empty the trash
// @Description  Permanently deletes every trashed node the caller owns. This action cannot be undone.
// @Tags         trash
// @Security     BearerAuth
// @Success      204  {null}    nil "No Content"
// @Failure      401  {string}  string "Unauthorized"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /files/trash/empty [delete]
func (s *Server) EmptyTrashHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var storageFileIDs []string

	txErr := s.store.ExecTx(r.Context(), func(q *database.Queries) error {
		var err error
		storageFileIDs, err = q.EmptyTrash(r.Context(), claims.UserID)
		if err != nil {
			return err
		}
		return q.LogEvent(r.Context(), claims.UserID, "trash.emptied", map[string]int{"deleted": len(storageFileIDs)})
	})

	if txErr != nil {
		http.Error(w, "Failed to empty trash", http.StatusInternalServerError)
		return
	}

	for _, fileID := range storageFileIDs {
		if err := s.media.DeleteFile(r.Context(), fileID); err != nil {
			log.Printf("WARN: Failed to delete file %s from media host: %v", fileID, err)
		}
	}

	s.publishEvent(claims.UserID, "trash.emptied", map[string]int{"deleted": len(storageFileIDs)})

	w.WriteHeader(http.StatusNoContent)
}
