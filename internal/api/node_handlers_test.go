package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"droply/internal/auth"
	"droply/internal/database"
	"droply/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// Helper for creating nodes directly through the store in API tests.
func createTestNodeAPI(t *testing.T, name string, isFolder bool, parentID *string, userID string) *models.Node {
	t.Helper()
	id, err := testServer.generateUniqueID(context.Background())
	require.NoError(t, err)

	params := database.CreateNodeParams{
		ID:       id,
		UserID:   userID,
		ParentID: parentID,
		Name:     name,
		IsFolder: isFolder,
	}
	if isFolder {
		params.MimeType = models.FolderMimeType
		params.Path = "/" + name
	} else {
		params.MimeType = "image"
		params.SizeBytes = 1234
		params.StorageURL = "https://cdn.example.com/" + name
	}

	node, err := testServer.store.CreateNode(context.Background(), params)
	require.NoError(t, err)
	return node
}

func authedRequest(req *http.Request, claims *auth.AppClaims) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), userContextKey, claims))
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAPI_CreateFolder_Success(t *testing.T) {
	// Arrange
	payload := CreateFolderRequest{Name: "Vacation_Success", UserID: testUserClaims.UserID}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	// Act
	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	// Assert
	require.Equal(t, http.StatusCreated, rr.Code)
	var resp CreateFolderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotNil(t, resp.Folder)
	require.Equal(t, "Vacation_Success", resp.Folder.Name)
	require.Equal(t, testUserClaims.UserID, resp.Folder.UserID)
	require.True(t, resp.Folder.IsFolder)
	require.Nil(t, resp.Folder.ParentID)
	require.Zero(t, resp.Folder.SizeBytes)
	require.Empty(t, resp.Folder.StorageURL)
}

func TestAPI_CreateFolder_WhitespaceName(t *testing.T) {
	payload := CreateFolderRequest{Name: "   ", UserID: testUserClaims.UserID}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_CreateFolder_UserMismatch(t *testing.T) {
	payload := CreateFolderRequest{Name: "Sneaky", UserID: "someone_else"}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPI_CreateFolder_ParentNotFound(t *testing.T) {
	missing := "missing_parent_00001a"
	payload := CreateFolderRequest{Name: "Child", UserID: testUserClaims.UserID, ParentID: &missing}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_CreateFolder_ParentIsFile(t *testing.T) {
	file := createTestNodeAPI(t, "not-a-folder.jpg", false, nil, testUserClaims.UserID)

	payload := CreateFolderRequest{Name: "Child", UserID: testUserClaims.UserID, ParentID: &file.ID}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_CreateFolder_ForeignParentIsNotFound(t *testing.T) {
	// The parent exists but belongs to another user; the handler must answer
	// 404, not 401.
	foreignFolder := createTestNodeAPI(t, "Foreign", true, nil, "user_other_owner")

	payload := CreateFolderRequest{Name: "Child", UserID: testUserClaims.UserID, ParentID: &foreignFolder.ID}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_CreateFolder_InParent(t *testing.T) {
	parent := createTestNodeAPI(t, "Albums", true, nil, testUserClaims.UserID)

	payload := CreateFolderRequest{Name: "2024", UserID: testUserClaims.UserID, ParentID: &parent.ID}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp CreateFolderResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Folder.ParentID)
	require.Equal(t, parent.ID, *resp.Folder.ParentID)
	require.Equal(t, parent.Path+"/2024", resp.Folder.Path)
}

func TestAPI_ListNodes(t *testing.T) {
	userID := "user_api_list"
	claims := &auth.AppClaims{UserID: userID}
	folder := createTestNodeAPI(t, "Vacation", true, nil, userID)
	createTestNodeAPI(t, "x.jpg", false, nil, userID)
	// Another owner's node under an equally-named root must never leak in.
	createTestNodeAPI(t, "leak.jpg", false, nil, "user_api_list_other")

	req := httptest.NewRequest("GET", "/api/v1/files?userId="+userID, nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.ListNodesHandler).ServeHTTP(rr, authedRequest(req, claims))

	require.Equal(t, http.StatusOK, rr.Code)
	var nodes []models.Node
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nodes))
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		require.Equal(t, userID, n.UserID)
	}

	// Listing inside the empty folder returns nothing.
	req = httptest.NewRequest("GET", "/api/v1/files?userId="+userID+"&parentId="+folder.ID, nil)
	rr = httptest.NewRecorder()
	http.HandlerFunc(testServer.ListNodesHandler).ServeHTTP(rr, authedRequest(req, claims))

	require.Equal(t, http.StatusOK, rr.Code)
	nodes = nil
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &nodes))
	require.Len(t, nodes, 0)
}

func TestAPI_ListNodes_UserMismatch(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/files?userId=someone_else", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.ListNodesHandler).ServeHTTP(rr, authedRequest(req, testUserClaims))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPI_ToggleStar(t *testing.T) {
	node := createTestNodeAPI(t, "star-me.jpg", false, nil, testUserClaims.UserID)

	req := httptest.NewRequest("PATCH", "/api/v1/files/"+node.ID+"/star", nil)
	req = withURLParam(authedRequest(req, testUserClaims), "fileId", node.ID)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.ToggleStarHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var updated models.Node
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	require.True(t, updated.IsStarred)
}

func TestAPI_ToggleTrash_ForeignNode(t *testing.T) {
	node := createTestNodeAPI(t, "not-yours.jpg", false, nil, "user_api_trash_owner")

	req := httptest.NewRequest("PATCH", "/api/v1/files/"+node.ID+"/trash", nil)
	req = withURLParam(authedRequest(req, testUserClaims), "fileId", node.ID)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.ToggleTrashHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_DeleteNode(t *testing.T) {
	folder := createTestNodeAPI(t, "DeleteMe", true, nil, testUserClaims.UserID)
	child := createTestNodeAPI(t, "inside.jpg", false, &folder.ID, testUserClaims.UserID)

	req := httptest.NewRequest("DELETE", "/api/v1/files/"+folder.ID, nil)
	req = withURLParam(authedRequest(req, testUserClaims), "fileId", folder.ID)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.DeleteNodeHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)

	exists, err := testServer.store.NodeExists(context.Background(), folder.ID)
	require.NoError(t, err)
	require.False(t, exists)
	exists, err = testServer.store.NodeExists(context.Background(), child.ID)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestAPI_DeleteNode_NotFound(t *testing.T) {
	req := httptest.NewRequest("DELETE", "/api/v1/files/missing_node_000000a", nil)
	req = withURLParam(authedRequest(req, testUserClaims), "fileId", "missing_node_000000a")
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.DeleteNodeHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_EmptyTrash(t *testing.T) {
	userID := "user_api_empty_trash"
	claims := &auth.AppClaims{UserID: userID}
	trashed := createTestNodeAPI(t, "bin.jpg", false, nil, userID)
	kept := createTestNodeAPI(t, "keep.jpg", false, nil, userID)

	_, err := testServer.store.ToggleTrash(context.Background(), trashed.ID, userID)
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/v1/files/trash/empty", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.EmptyTrashHandler).ServeHTTP(rr, authedRequest(req, claims))

	require.Equal(t, http.StatusNoContent, rr.Code)

	exists, err := testServer.store.NodeExists(context.Background(), trashed.ID)
	require.NoError(t, err)
	require.False(t, exists)
	exists, err = testServer.store.NodeExists(context.Background(), kept.ID)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestAPI_GetEvents(t *testing.T) {
	userID := "user_api_events"
	claims := &auth.AppClaims{UserID: userID}

	payload := CreateFolderRequest{Name: "EventFolder", UserID: userID}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", "/api/v1/folders", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(testServer.CreateFolderHandler).ServeHTTP(rr, authedRequest(req, claims))
	require.Equal(t, http.StatusCreated, rr.Code)

	req = httptest.NewRequest("GET", "/api/v1/events?since=0", nil)
	rr = httptest.NewRecorder()
	http.HandlerFunc(testServer.GetEventsHandler).ServeHTTP(rr, authedRequest(req, claims))

	require.Equal(t, http.StatusOK, rr.Code)
	var events []database.Event
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 1)
	require.Equal(t, "folder.created", events[0].EventType)
}
