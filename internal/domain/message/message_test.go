package message

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"boolbnb/internal/domain"
	"boolbnb/internal/mailer"
	"boolbnb/internal/testutil"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []mailer.Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, e mailer.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, e)
	return nil
}

func setupRouter(t *testing.T, m mailer.Mailer) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	router := gin.New()
	NewHandler(NewService(db, m)).RegisterRoutes(&router.RouterGroup)
	return router, db
}

func post(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func countMessages(t *testing.T, db *gorm.DB) int64 {
	var n int64
	require.NoError(t, db.Model(&domain.Message{}).Count(&n).Error)
	return n
}

func TestContactOwner(t *testing.T) {
	m := &recordingMailer{}
	router, db := setupRouter(t, m)
	testutil.SeedProperty(t, db, "my-flat", func(p *domain.Property) { p.UserEmail = "host@example.com" })

	resp := post(router, "/properties/my-flat/contact", ContactRequest{SenderEmail: "guest@example.com", MessageText: "Is it free in May?"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	require.Len(t, m.sent, 1)
	assert.Equal(t, "host@example.com", m.sent[0].To)
	assert.Contains(t, m.sent[0].Body, "guest@example.com")
	assert.Equal(t, int64(1), countMessages(t, db))
}

func TestContactOwner_Errors(t *testing.T) {
	router, db := setupRouter(t, &recordingMailer{})
	testutil.SeedProperty(t, db, "my-flat", nil)

	resp := post(router, "/properties/ghost/contact", ContactRequest{SenderEmail: "guest@example.com", MessageText: "Hello there"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = post(router, "/properties/my-flat/contact", ContactRequest{SenderEmail: "guest", MessageText: "Hello there"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"status":400,"error":"sender_email must be a valid email address"}`, resp.Body.String())

	resp = post(router, "/properties/my-flat/contact", ContactRequest{SenderEmail: "guest@example.com", MessageText: "Hi"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, countMessages(t, db))
}

func TestContactOwner_MailFailureRollsBack(t *testing.T) {
	router, db := setupRouter(t, &recordingMailer{err: errors.New("relay refused")})
	testutil.SeedProperty(t, db, "my-flat", nil)

	resp := post(router, "/properties/my-flat/contact", ContactRequest{SenderEmail: "guest@example.com", MessageText: "Hello there"})
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"status":500,"error":"Internal server error"}`, resp.Body.String())
	assert.Zero(t, countMessages(t, db))
}

func TestContactOwner_BodyKeepsLineBreaks(t *testing.T) {
	m := &recordingMailer{}
	router, db := setupRouter(t, m)
	testutil.SeedProperty(t, db, "my-flat", nil)

	resp := post(router, "/properties/my-flat/contact", ContactRequest{SenderEmail: "guest@example.com", MessageText: "Hello,\nis it free?"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	require.Len(t, m.sent, 1)
	assert.Contains(t, m.sent[0].Body, "\"Hello,\nis it free?\"")
	assert.NotContains(t, m.sent[0].Body, `\n`)
}

// observingMailer reads the messages table while the email is being sent.
type observingMailer struct {
	db      *gorm.DB
	seen    int64
	readErr error
}

func (m *observingMailer) Send(ctx context.Context, _ mailer.Email) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	m.readErr = m.db.WithContext(ctx).Model(&domain.Message{}).Count(&m.seen).Error
	return nil
}

func TestContactOwner_SendsAfterCommit(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedProperty(t, db, "my-flat", nil)

	// the test database has a single connection, so a transaction still
	// open during Send would make this read time out
	m := &observingMailer{db: db}
	msg, err := NewService(db, m).Contact(context.Background(), "my-flat",
		&ContactRequest{SenderEmail: "guest@example.com", MessageText: "Hello there"})
	require.NoError(t, err)
	require.NoError(t, m.readErr)
	assert.Equal(t, int64(1), m.seen)
	assert.NotZero(t, msg.ID)
}
