package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/config"
	"github.com/skamga/accounts-api/internal/handlers"
	"github.com/skamga/accounts-api/internal/mailer"
	"github.com/skamga/accounts-api/internal/models"
	"github.com/skamga/accounts-api/internal/routes"
	"github.com/skamga/accounts-api/internal/services"
	"github.com/skamga/accounts-api/internal/storage"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	lastTo   string
	lastData map[string]string
}

func (f *fakeMailer) Send(_ context.Context, to string, _ mailer.Template, data map[string]string) error {
	f.lastTo = to
	f.lastData = data
	return nil
}

type fakeImageStore struct {
	refs int
}

func (f *fakeImageStore) Save(_ context.Context, _ []byte, name string) (string, error) {
	f.refs++
	return fmt.Sprintf("ref-%d-%s", f.refs, name), nil
}

func (f *fakeImageStore) Delete(context.Context, string) error { return nil }

type testEnv struct {
	app  *fiber.App
	db   *gorm.DB
	mail *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithImages(t, &fakeImageStore{})
}

// newTestEnvWithImages wires the full route table over sqlite, with the given
// image store behind the account service.
func newTestEnvWithImages(t *testing.T, images storage.ImageStore) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.AuthToken{}, &models.PasswordReset{}))

	cfg := &config.Config{ResetTokenTTL: 10 * time.Minute}
	mail := &fakeMailer{}

	userService := services.NewUserService(db)
	tokenService := services.NewTokenService(db, cfg)
	accountService := services.NewAccountService(db, userService, tokenService, images)
	resetService := services.NewResetService(db, userService, mail, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routes.Setup(app,
		tokenService,
		handlers.NewAuthHandler(accountService, resetService),
		handlers.NewUserHandler(accountService),
		handlers.NewHealthHandler(),
	)

	return &testEnv{app: app, db: db, mail: mail}
}

type envelope struct {
	ErrorCode string                 `json:"errorCode"`
	Token     string                 `json:"token"`
	Message   string                 `json:"message"`
	Data      json.RawMessage        `json:"data"`
	DataMap   map[string]interface{} `json:"-"`
}

func (e *envelope) dataMap(t *testing.T) map[string]interface{} {
	t.Helper()
	if e.DataMap == nil {
		require.NoError(t, json.Unmarshal(e.Data, &e.DataMap))
	}
	return e.DataMap
}

func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) (int, *envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	return env.do(t, req)
}

// multipartRequest sends the fields plus an optional "image" file part.
func (env *testEnv) multipartRequest(t *testing.T, method, path, token string, fields map[string]string, imageName string, image []byte) (int, *envelope) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		fw, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	return env.do(t, req)
}

func (env *testEnv) do(t *testing.T, req *http.Request) (int, *envelope) {
	t.Helper()

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, &out
}

// pngBytes encodes a small solid PNG for upload tests.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func registerBody(email string) map[string]string {
	return map[string]string{
		"lastname":              "Doe",
		"firstname":             "Jane",
		"middlename":            "Q",
		"email":                 email,
		"password":              "secret12",
		"password_confirmation": "secret12",
	}
}

// register creates an account over HTTP and returns its token and id.
func (env *testEnv) register(t *testing.T, email string) (token string, id string) {
	t.Helper()
	status, out := env.request(t, http.MethodPost, "/register", "", registerBody(email))
	require.Equal(t, http.StatusCreated, status)
	return out.Token, out.dataMap(t)["id"].(string)
}

func (env *testEnv) makeAdmin(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, env.db.Model(&models.User{}).Where("email = ?", email).Update("admin", true).Error)
}
