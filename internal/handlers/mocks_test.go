package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/VIT-EcoTrack/EcoTrack/internal/apperror"
	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/classifier"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/event"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/forum"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/task"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/waste"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
)

// MockUserRepository is a mock implementation of postgres.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(u *user.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*user.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*user.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]*user.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByRole(role user.Role) ([]*user.User, error) {
	args := m.Called(role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(id string, role user.Role) error {
	args := m.Called(id, role)
	return args.Error(0)
}

// MockTaskRepository is a mock implementation of postgres.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(t *task.Task) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(id string) (*task.Task, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAll() ([]*task.Task, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetByAssignee(workerID string) ([]*task.Task, error) {
	args := m.Called(workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateStatus(id string, status task.Status) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of postgres.EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(e *event.Event) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(id string) (*event.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*event.Event), args.Error(1)
}

func (m *MockEventRepository) GetAll() ([]*event.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*event.Event), args.Error(1)
}

func (m *MockEventRepository) AddParticipant(eventID, userID string) error {
	args := m.Called(eventID, userID)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateStatus(id string, status event.Status) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockForumRepository is a mock implementation of postgres.ForumRepository.
type MockForumRepository struct {
	mock.Mock
}

func (m *MockForumRepository) CreatePost(p *forum.Post) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockForumRepository) GetPostByID(id string) (*forum.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Post), args.Error(1)
}

func (m *MockForumRepository) GetAllPosts() ([]*forum.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*forum.Post), args.Error(1)
}

func (m *MockForumRepository) AddComment(c *forum.Comment) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockForumRepository) AddLike(l *forum.Like) error {
	args := m.Called(l)
	return args.Error(0)
}

func (m *MockForumRepository) RemoveLike(postID, userID string) error {
	args := m.Called(postID, userID)
	return args.Error(0)
}

// MockWasteRepository is a mock implementation of postgres.WasteRepository.
type MockWasteRepository struct {
	mock.Mock
}

func (m *MockWasteRepository) Create(w *waste.Waste) error {
	args := m.Called(w)
	return args.Error(0)
}

func (m *MockWasteRepository) GetByID(id string) (*waste.Waste, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*waste.Waste), args.Error(1)
}

func (m *MockWasteRepository) GetAll() ([]*waste.Waste, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*waste.Waste), args.Error(1)
}

func (m *MockWasteRepository) GetByAssignee(workerID string) ([]*waste.Waste, error) {
	args := m.Called(workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*waste.Waste), args.Error(1)
}

func (m *MockWasteRepository) Update(w *waste.Waste) error {
	args := m.Called(w)
	return args.Error(0)
}

// MockImageStore is a mock implementation of ImageStore.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

// MockClassifier is a mock implementation of Classifier.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, filename string, image io.Reader) (*classifier.Result, error) {
	args := m.Called(ctx, filename, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classifier.Result), args.Error(1)
}

func notFoundErr(what string) error {
	return fmt.Errorf("%w: %s", apperror.ErrNotFound, what)
}

// asCaller is a test middleware that seeds the request context the same way
// Protect does.
func asCaller(caller auth.CurrentUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCaller(c, caller)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doMultipart posts a single file part named "file" with the given content
// type.
func doMultipart(t *testing.T, router *gin.Engine, method, path, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, w.Body.String())
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("decode data: %v (body: %s)", err, w.Body.String())
	}
}
