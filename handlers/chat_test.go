package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bot9palace/models"
	"bot9palace/services/hotel"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssistant struct {
	reply     string
	err       error
	sessionID string
	message   string
}

func (f *fakeAssistant) HandleMessage(_ context.Context, sessionID, message string) (string, error) {
	f.sessionID = sessionID
	f.message = message
	return f.reply, f.err
}

func newChatRouter(svc *fakeAssistant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc, zap.NewNop())
	r.POST("/chat", h.HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleChatSuccess(t *testing.T) {
	svc := &fakeAssistant{reply: "Welcome to Bot9 Palace!"}
	rec := postChat(t, newChatRouter(svc), models.ChatRequest{Message: "hi", SessionID: "s1"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome to Bot9 Palace!", resp.Reply)
	assert.Equal(t, "s1", svc.sessionID)
	assert.Equal(t, "hi", svc.message)
}

func TestHandleChatMissingFields(t *testing.T) {
	rec := postChat(t, newChatRouter(&fakeAssistant{}), map[string]string{"message": "hi"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleChatInternalErrorIsOpaque(t *testing.T) {
	svc := &fakeAssistant{err: errors.New("completion call failed: upstream timeout")}
	rec := postChat(t, newChatRouter(svc), models.ChatRequest{Message: "hi", SessionID: "s1"})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Internal detail never leaks to the caller.
	assert.Equal(t, "An error occurred", resp["error"])
}

type fakeHotelService struct {
	rooms []models.Room
	err   error
}

func (f *fakeHotelService) ListAvailableRooms(_ context.Context) ([]models.Room, error) {
	return f.rooms, f.err
}

func (f *fakeHotelService) ReserveRoom(_ context.Context, _ int, _, _ string, _ int) (*models.BookingDetails, error) {
	return nil, hotel.NewUnavailableError(0)
}

func TestListRoomsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRoomsHandler(&fakeHotelService{rooms: []models.Room{
		{ID: 1, Type: "Standard", Price: 100, Available: true},
	}}, zap.NewNop())
	r.GET("/api/rooms", h.ListRoomsHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Rooms []models.Room `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "Standard", resp.Rooms[0].Type)
}
