package models

import "time"

// FolderMimeType is the sentinel stored in mime_type for folder nodes.
const FolderMimeType = "folder"

// Node is a single row in the unified file/folder hierarchy. Folders carry the
// "folder" mime type sentinel, a zero size and an empty storage URL.
type Node struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ParentID      *string   `json:"parent_id"`
	Name          string    `json:"name"`
	Path          string    `json:"path"`
	SizeBytes     int64     `json:"size_bytes"`
	MimeType      string    `json:"mime_type"`
	StorageURL    string    `json:"storage_url"`
	StorageFileID *string   `json:"storage_file_id,omitempty"`
	ThumbnailURL  *string   `json:"thumbnail_url,omitempty"`
	IsFolder      bool      `json:"is_folder"`
	IsStarred     bool      `json:"is_starred"`
	IsTrash       bool      `json:"is_trash"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
