package api_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/IbrahimMurad/alx-files-manager/config"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api"
	apimiddleware "github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/middleware"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/router"
	"github.com/IbrahimMurad/alx-files-manager/internal/delivery/api/router/handler"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/access"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/constants"
	"github.com/IbrahimMurad/alx-files-manager/internal/domain/service"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/auth"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/persistence"
	"github.com/IbrahimMurad/alx-files-manager/internal/infra/storage"
	"github.com/IbrahimMurad/alx-files-manager/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

type recordingJobs struct {
	mu   sync.Mutex
	jobs []service.Job
}

func (r *recordingJobs) Submit(_ context.Context, job *service.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, *job)

	return nil
}

func (r *recordingJobs) Close() error { return nil }

func (r *recordingJobs) types() []service.JobType {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]service.JobType, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job.Type)
	}

	return out
}

type apiFixture struct {
	echo *echo.Echo
	jobs *recordingJobs
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		Auth:   &config.AuthConfig{BcryptCost: 4, SessionTTL: 24 * time.Hour},
		Worker: &config.WorkerConfig{ThumbnailWidths: []int{500, 250, 100}},
	}
	cfg.HTTP.MaxRequestBodySize = "10M"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := persistence.NewMemory()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	blobs := storage.NewWithBucket(bucket)
	jobs := &recordingJobs{}

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:    repos.Users,
		SessionRepo: repos.Sessions,
		Hasher:      auth.NewBcryptHasherWithCost(4),
		Tokens:      auth.NewTokenGenerator(),
		Config:      cfg,
		Logger:      logger,
	})
	userUsecase := impl.NewUserService(impl.UserServiceParams{
		UserRepo: repos.Users,
		Hasher:   auth.NewBcryptHasherWithCost(4),
		Jobs:     jobs,
		Logger:   logger,
	})
	fileUsecase := impl.NewFileService(impl.FileServiceParams{
		FileRepo: repos.Files,
		Engine:   access.NewEngine(repos.Files),
		Storage:  blobs,
		Jobs:     jobs,
		Config:   cfg,
		Logger:   logger,
	})
	appUsecase := impl.NewAppService(impl.AppServiceParams{
		Health:   repos.Health,
		UserRepo: repos.Users,
		FileRepo: repos.Files,
		Storage:  blobs,
		Logger:   logger,
	})

	e := api.NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger), router.RouterParams{
		AppHandler:     handler.NewAppHandler(appUsecase),
		AuthHandler:    handler.NewAuthHandler(authUsecase),
		UserHandler:    handler.NewUserHandler(userUsecase),
		FileHandler:    handler.NewFileHandler(fileUsecase),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(authUsecase),
	})

	return &apiFixture{echo: e, jobs: jobs}
}

type call struct {
	method string
	path   string
	body   string
	token  string
	basic  string
}

func (f *apiFixture) do(t *testing.T, c call) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.path, body)
	if c.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if c.token != "" {
		req.Header.Set(constants.HeaderXToken, c.token)
	}
	if c.basic != "" {
		req.Header.Set(echo.HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte(c.basic)))
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func (f *apiFixture) signIn(t *testing.T, email, password string) string {
	t.Helper()

	rec := f.do(t, call{method: http.MethodPost, path: "/users", body: fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, call{method: http.MethodGet, path: "/connect", basic: email + ":" + password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token := decode[map[string]string](t, rec)["token"]
	require.NotEmpty(t, token)

	return token
}

type fileBody struct {
	ID       string  `json:"id"`
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	IsPublic bool    `json:"isPublic"`
	ParentID *string `json:"parentId"`
}

func TestAPI_FullScenario(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, call{method: http.MethodPost, path: "/users", body: `{"email":"bob@x.io","password":"pw"}`})
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decode[map[string]string](t, rec)
	assert.Equal(t, "bob@x.io", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.Equal(t, []service.JobType{service.JobTypeWelcome}, f.jobs.types())

	rec = f.do(t, call{method: http.MethodGet, path: "/connect", basic: "bob@x.io:pw"})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[map[string]string](t, rec)["token"]

	rec = f.do(t, call{method: http.MethodGet, path: "/users/me", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, decode[map[string]string](t, rec))

	rec = f.do(t, call{method: http.MethodPost, path: "/files", token: token, body: `{"name":"docs","type":"folder"}`})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	folder := decode[fileBody](t, rec)
	assert.Equal(t, "folder", folder.Type)
	assert.Nil(t, folder.ParentID)
	assert.Equal(t, user["id"], folder.UserID)

	data := base64.StdEncoding.EncodeToString([]byte("hi"))
	rec = f.do(t, call{method: http.MethodPost, path: "/files", token: token,
		body: fmt.Sprintf(`{"name":"a.txt","type":"file","parentId":%q,"data":%q}`, folder.ID, data)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	file := decode[fileBody](t, rec)
	require.NotNil(t, file.ParentID)
	assert.Equal(t, folder.ID, *file.ParentID)
	assert.False(t, file.IsPublic)

	rec = f.do(t, call{method: http.MethodGet, path: "/files?parentId=" + folder.ID, token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decode[[]fileBody](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, file.ID, listed[0].ID)

	rec = f.do(t, call{method: http.MethodGet, path: "/files/" + file.ID + "/data"})
	assert.Equal(t, http.StatusNotFound, rec.Code, "private content is hidden from anonymous callers")

	rec = f.do(t, call{method: http.MethodPut, path: "/files/" + file.ID + "/publish", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[fileBody](t, rec).IsPublic)

	rec = f.do(t, call{method: http.MethodGet, path: "/files/" + file.ID + "/data"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hi", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")

	rec = f.do(t, call{method: http.MethodPut, path: "/files/" + file.ID + "/unpublish", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[fileBody](t, rec).IsPublic)

	rec = f.do(t, call{method: http.MethodGet, path: "/files/" + file.ID + "/data", token: token})
	require.Equal(t, http.StatusOK, rec.Code, "owners read private content")

	rec = f.do(t, call{method: http.MethodGet, path: "/stats"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":1,"files":2}`, rec.Body.String())

	rec = f.do(t, call{method: http.MethodGet, path: "/disconnect", token: token})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(t, call{method: http.MethodGet, path: "/users/me", token: token})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAPI_Status(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, call{method: http.MethodGet, path: "/status"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"db":true,"storage":true}`, rec.Body.String())
}

func TestAPI_RegistrationErrors(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(t, "bob@x.io", "pw")

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing email", body: `{"password":"pw"}`, want: `{"error":"Missing email"}`},
		{name: "missing password", body: `{"email":"a@x.io"}`, want: `{"error":"Missing password"}`},
		{name: "duplicate", body: `{"email":"bob@x.io","password":"other"}`, want: `{"error":"Already exist"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, call{method: http.MethodPost, path: "/users", body: tt.body})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestAPI_ConnectRejectsBadCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.signIn(t, "bob@x.io", "pw")

	for _, basic := range []string{"bob@x.io:wrong", "nobody@x.io:pw", ""} {
		rec := f.do(t, call{method: http.MethodGet, path: "/connect", basic: basic})
		assert.Equal(t, http.StatusUnauthorized, rec.Code, basic)
	}
}

func TestAPI_UploadErrors(t *testing.T) {
	f := newAPIFixture(t)
	token := f.signIn(t, "bob@x.io", "pw")

	rec := f.do(t, call{method: http.MethodPost, path: "/files", token: token,
		body: `{"name":"a.txt","type":"file","data":"aGk="}`})
	require.Equal(t, http.StatusCreated, rec.Code)
	leaf := decode[fileBody](t, rec)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing name", body: `{"type":"folder"}`, want: "Missing name"},
		{name: "missing type", body: `{"name":"x"}`, want: "Missing type"},
		{name: "unknown type", body: `{"name":"x","type":"video"}`, want: "Missing type"},
		{name: "missing data", body: `{"name":"x","type":"file"}`, want: "Missing data"},
		{name: "unknown parent", body: `{"name":"x","type":"folder","parentId":"6f1c1a6e-0000-4000-8000-000000000000"}`, want: "Parent not found"},
		{name: "malformed parent", body: `{"name":"x","type":"folder","parentId":"nope"}`, want: "Parent not found"},
		{name: "parent is a file", body: fmt.Sprintf(`{"name":"x","type":"folder","parentId":%q}`, leaf.ID), want: "Parent is not a folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, call{method: http.MethodPost, path: "/files", token: token, body: tt.body})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decode[map[string]string](t, rec)["error"])
		})
	}

	rec = f.do(t, call{method: http.MethodPost, path: "/files", body: `{"name":"x","type":"folder"}`})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_RootParentSpellings(t *testing.T) {
	f := newAPIFixture(t)
	token := f.signIn(t, "bob@x.io", "pw")

	for i, parent := range []string{`0`, `"0"`, `""`, `null`} {
		rec := f.do(t, call{method: http.MethodPost, path: "/files", token: token,
			body: fmt.Sprintf(`{"name":"d%d","type":"folder","parentId":%s}`, i, parent)})
		require.Equal(t, http.StatusCreated, rec.Code, parent)
		assert.Nil(t, decode[fileBody](t, rec).ParentID, parent)
	}

	rec := f.do(t, call{method: http.MethodGet, path: "/files?parentId=0", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]fileBody](t, rec), 4)
}

func TestAPI_ListPagination(t *testing.T) {
	f := newAPIFixture(t)
	token := f.signIn(t, "bob@x.io", "pw")

	total := access.PageSize + 5
	for i := range total {
		rec := f.do(t, call{method: http.MethodPost, path: "/files", token: token,
			body: fmt.Sprintf(`{"name":"d%02d","type":"folder"}`, i)})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	first := decode[[]fileBody](t, f.do(t, call{method: http.MethodGet, path: "/files", token: token}))
	second := decode[[]fileBody](t, f.do(t, call{method: http.MethodGet, path: "/files?page=1", token: token}))
	third := decode[[]fileBody](t, f.do(t, call{method: http.MethodGet, path: "/files?page=2", token: token}))
	junk := decode[[]fileBody](t, f.do(t, call{method: http.MethodGet, path: "/files?page=abc", token: token}))
	negative := decode[[]fileBody](t, f.do(t, call{method: http.MethodGet, path: "/files?page=-1", token: token}))

	require.Len(t, first, access.PageSize)
	assert.Equal(t, "d00", first[0].Name)
	require.Len(t, second, 5)
	assert.Equal(t, fmt.Sprintf("d%02d", access.PageSize), second[0].Name)
	assert.Empty(t, third)
	assert.Equal(t, first, junk)
	assert.Equal(t, first, negative)

	for _, page := range []string{"461168601842738791", fmt.Sprint(math.MaxInt), "99999999999999999999999"} {
		rec := f.do(t, call{method: http.MethodGet, path: "/files?page=" + page, token: token})
		require.Equal(t, http.StatusOK, rec.Code, page)
		assert.JSONEq(t, `[]`, rec.Body.String(), "page %s lies past every listing", page)
	}

	rec := f.do(t, call{method: http.MethodGet, path: "/files?parentId=not-a-uuid", token: token})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_OtherUsersFilesAreHidden(t *testing.T) {
	f := newAPIFixture(t)
	owner := f.signIn(t, "bob@x.io", "pw")
	other := f.signIn(t, "eve@x.io", "pw")

	rec := f.do(t, call{method: http.MethodPost, path: "/files", token: owner,
		body: `{"name":"a.txt","type":"file","data":"aGk=","isPublic":true}`})
	require.Equal(t, http.StatusCreated, rec.Code)
	file := decode[fileBody](t, rec)

	for _, c := range []call{
		{method: http.MethodGet, path: "/files/" + file.ID},
		{method: http.MethodPut, path: "/files/" + file.ID + "/publish"},
		{method: http.MethodPut, path: "/files/" + file.ID + "/unpublish"},
		{method: http.MethodGet, path: "/files/not-a-uuid"},
	} {
		c.token = other
		rec := f.do(t, c)
		assert.Equal(t, http.StatusNotFound, rec.Code, c.path)
		assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
	}

	rec = f.do(t, call{method: http.MethodGet, path: "/files/" + file.ID + "/data", token: other})
	assert.Equal(t, http.StatusOK, rec.Code, "public content is readable by anyone")

	rec = f.do(t, call{method: http.MethodGet, path: "/files?parentId=0", token: other})
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAPI_ContentErrors(t *testing.T) {
	f := newAPIFixture(t)
	token := f.signIn(t, "bob@x.io", "pw")

	rec := f.do(t, call{method: http.MethodPost, path: "/files", token: token, body: `{"name":"d","type":"folder","isPublic":true}`})
	require.Equal(t, http.StatusCreated, rec.Code)
	folder := decode[fileBody](t, rec)

	rec = f.do(t, call{method: http.MethodGet, path: "/files/" + folder.ID + "/data", token: token})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"A folder doesn't have content"}`, rec.Body.String())

	rec = f.do(t, call{method: http.MethodPost, path: "/files", token: token,
		body: `{"name":"pic.png","type":"image","data":"aGk=","isPublic":true}`})
	require.Equal(t, http.StatusCreated, rec.Code)
	image := decode[fileBody](t, rec)
	assert.Contains(t, f.jobs.types(), service.JobTypeThumbnail)

	for _, size := range []string{"250", "123", "abc", "-1"} {
		rec = f.do(t, call{method: http.MethodGet, path: "/files/" + image.ID + "/data?size=" + size})
		assert.Equal(t, http.StatusNotFound, rec.Code, "size %s has no stored thumbnail", size)
	}

	rec = f.do(t, call{method: http.MethodGet, path: "/files/does-not-exist/data"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_UnknownRoute(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, call{method: http.MethodGet, path: "/nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
