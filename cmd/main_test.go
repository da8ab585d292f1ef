package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-book-exchange/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

var configKeys = []string{
	"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_CORS_ORIGINS", "APP_MAX_BODY_MB",
	"STORAGE_DRIVER",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_OPEN_CONNS", "POSTGRES_MAX_IDLE_CONNS",
	"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD", "REDIS_POOL_SIZE",
	"REDIS_MIN_IDLE_CONNS", "REDIS_EXP_SECOND",
	"KAFKA_BROKERS", "KAFKA_TOPIC",
	"IMAGE_STORAGE", "UPLOAD_DIR",
	"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET", "MINIO_USE_SSL",
}

// clearConfigEnv unsets every config key for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	assert.Equal(t, "Starting service version v1.0.0, commit abcd1234, build 2025-09-26\n", buf.String())
}

func TestParseConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, int64(10), cfg.MaxBodyMB)
	assert.Equal(t, driverMemory, cfg.StorageDriver)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Empty(t, cfg.RedisHost)
	assert.Equal(t, 60, cfg.RedisExpSecond)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "book-events", cfg.KafkaTopic)
	assert.Equal(t, imagesDisk, cfg.ImageStorage)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.False(t, cfg.MinioUseSSL)
}

func TestParseConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)

	path := t.TempDir() + "/test.env"
	content := strings.Join([]string{
		"APP_HOST=127.0.0.1",
		"APP_PORT=9090",
		"APP_LOG_LEVEL=debug",
		"APP_CORS_ORIGINS=https://books.example, https://admin.example",
		"APP_MAX_BODY_MB=2",
		"STORAGE_DRIVER=postgres",
		"POSTGRES_HOST=pg.example.com",
		"POSTGRES_PORT=5433",
		"REDIS_HOST=redis.example.com",
		"REDIS_PORT=6380",
		"REDIS_EXP_SECOND=120",
		"KAFKA_BROKERS=k1:9092,k2:9092",
		"KAFKA_TOPIC=listings",
		"IMAGE_STORAGE=minio",
		"MINIO_BUCKET=covers",
		"MINIO_USE_SSL=true",
	}, "\n")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseConfig(path)
	assert.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://books.example", "https://admin.example"}, cfg.CORSOrigins)
	assert.Equal(t, int64(2), cfg.MaxBodyMB)
	assert.Equal(t, driverPostgres, cfg.StorageDriver)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 120, cfg.RedisExpSecond)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "listings", cfg.KafkaTopic)
	assert.Equal(t, imagesMinio, cfg.ImageStorage)
	assert.Equal(t, "covers", cfg.MinioBucket)
	assert.True(t, cfg.MinioUseSSL)
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"APP_MAX_BODY_MB", "ten"},
		{"STORAGE_DRIVER", "mongo"},
		{"POSTGRES_PORT", "abc"},
		{"REDIS_DB", "x"},
		{"IMAGE_STORAGE", "s3"},
		{"MINIO_USE_SSL", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

// ------------------ In-memory router ------------------

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	images, err := storage.NewFileImageStore(t.TempDir())
	assert.NoError(t, err)

	cfg := config{
		CORSOrigins: []string{"http://localhost:5173"},
		MaxBodyMB:   1,
	}
	srv := httptest.NewServer(newRouter(cfg, dependencies{
		repos:  memoryRepos(),
		images: images,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func getBooks(t *testing.T, url string) []map[string]any {
	t.Helper()

	resp, err := http.Get(url)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var books []map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&books))
	return books
}

func postBook(t *testing.T, url string, fields map[string]string, image []byte) (int, map[string]any) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		part, err := mw.CreateFormFile("image", "cover.png")
		assert.NoError(t, err)
		_, _ = part.Write(image)
	}
	assert.NoError(t, mw.Close())

	resp, err := http.Post(url, mw.FormDataContentType(), body)
	assert.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestRouter_BookExchangeFlow(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api"

	owner := map[string]string{
		"name": "Olivia", "mobile": "9876543210", "email": "olivia@example.com",
		"password": "secret", "role": "owner",
	}
	seeker := map[string]string{
		"name": "Sam", "mobile": "9123456780", "email": "sam@example.com",
		"password": "secret", "role": "seeker",
	}

	// Registration
	code, body := doJSON(t, http.MethodPost, api+"/register", owner)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "User registered", body["message"])
	assert.NotContains(t, body["user"], "password")

	code, body = doJSON(t, http.MethodPost, api+"/register", owner)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email already exists", body["error"])

	short := map[string]string{
		"name": "Nina", "mobile": "987654321", "email": "nina@example.com",
		"password": "secret", "role": "seeker",
	}
	code, body = doJSON(t, http.MethodPost, api+"/register", short)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid mobile number (10 digits required)", body["error"])

	code, _ = doJSON(t, http.MethodPost, api+"/register", seeker)
	assert.Equal(t, http.StatusCreated, code)

	// Login
	code, body = doJSON(t, http.MethodPost, api+"/login", map[string]string{"email": "olivia@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", body["error"])

	code, body = doJSON(t, http.MethodPost, api+"/login", map[string]string{"email": "olivia@example.com", "password": "secret"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Login successful", body["message"])

	// Listing
	listing := map[string]string{
		"title": "Dune", "author": "Frank Herbert", "category": "Sci-Fi",
		"city": "Pune", "ownerUsername": "sam@example.com",
	}
	code, body = postBook(t, api+"/books", listing, nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "Only owners can list books", body["error"])

	listing["ownerUsername"] = "olivia@example.com"
	code, body = postBook(t, api+"/books", listing, []byte("png-bytes"))
	assert.Equal(t, http.StatusCreated, code)
	book := body["book"].(map[string]any)
	assert.Equal(t, "available", book["status"])
	assert.Equal(t, "9876543210", book["phone"])
	image := book["image"].(string)
	assert.True(t, strings.HasPrefix(image, "/uploads/"))

	resp, err := http.Get(srv.URL + image)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	code, _ = postBook(t, api+"/books", map[string]string{
		"title": "Emma", "author": "Jane Austen", "category": "Classic",
		"city": "Mumbai", "ownerUsername": "olivia@example.com",
	}, nil)
	assert.Equal(t, http.StatusCreated, code)

	// Filtering
	books := getBooks(t, api+"/books?city=pune")
	if assert.Len(t, books, 1) {
		assert.Equal(t, "Pune", books[0]["city"])
	}
	assert.Len(t, getBooks(t, api+"/books"), 2)
	assert.Len(t, getBooks(t, api+"/books?ownerUsername=olivia@example.com&genre=CLASS"), 1)

	// Updates
	code, body = doJSON(t, http.MethodPut, api+"/books/does-not-exist", map[string]string{"status": "unavailable"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Book not found", body["error"])

	id := book["id"].(string)
	code, body = doJSON(t, http.MethodPut, api+"/books/"+id, map[string]string{"status": "unavailable"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "unavailable", body["book"].(map[string]any)["status"])

	// Profile
	code, body = doJSON(t, http.MethodPut, api+"/users", map[string]string{"name": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email is required in the request body", body["error"])

	code, body = doJSON(t, http.MethodPut, api+"/users", map[string]string{"email": "ghost@example.com"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized: User not found", body["error"])

	code, body = doJSON(t, http.MethodPut, api+"/users", map[string]string{"email": "sam@example.com", "lastName": "Smith"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Smith", body["user"].(map[string]any)["lastName"])

	// Delete
	code, body = doJSON(t, http.MethodDelete, api+"/books/"+id, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Book deleted", body["message"])

	code, _ = doJSON(t, http.MethodDelete, api+"/books/"+id, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRouter_Preflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/books", nil)
	assert.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")

	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}

// ------------------ Full integration test ------------------

func freePort(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	defer lis.Close()
	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	cfg := config{
		AppHost:        "127.0.0.1",
		AppPort:        freePort(t),
		LogLevel:       "debug",
		MaxBodyMB:      1,
		StorageDriver:  driverPostgres,
		PGHost:         pgHost,
		PGPort:         pgPort.Int(),
		PGUser:         "user",
		PGPassword:     "password",
		PGDB:           "testdb",
		PGMaxOpenConns: 5,
		PGMaxIdleConns: 2,
		ImageStorage:   imagesDisk,
		UploadDir:      t.TempDir(),
	}

	testCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	api := fmt.Sprintf("http://%s:%s/api", cfg.AppHost, cfg.AppPort)
	assert.Eventually(t, func() bool {
		resp, err := http.Get(api + "/books")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 15*time.Second, 200*time.Millisecond)

	owner := map[string]string{
		"name": "Olivia", "mobile": "9876543210", "email": "olivia@example.com",
		"password": "secret", "role": "owner",
	}
	code, _ := doJSON(t, http.MethodPost, api+"/register", owner)
	assert.Equal(t, http.StatusCreated, code)
	code, _ = doJSON(t, http.MethodPost, api+"/register", owner)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = postBook(t, api+"/books", map[string]string{
		"title": "Dune", "author": "Frank Herbert", "city": "Pune", "ownerUsername": "olivia@example.com",
	}, nil)
	assert.Equal(t, http.StatusCreated, code)
	assert.Len(t, getBooks(t, api+"/books?city=PUNE"), 1)

	cancel()
	select {
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
