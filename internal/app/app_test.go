package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"grad-match/internal/config"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "grad-match", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: time.Hour},
		Matching: config.MatchingConfig{
			DefaultAlgorithm: "hierarchical",
			Staging:          "stack",
		},
		Catalog: config.CatalogConfig{Driver: config.CatalogMemory, BcryptCost: 4},
	}
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, a *App, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(b, &env))
	return resp.StatusCode, env
}

func login(t *testing.T, a *App, nationalID, record string) string {
	t.Helper()
	body := `{"national_id":"` + nationalID + `","record_number":"` + record + `"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	status, env := do(t, a, req)
	require.Equal(t, fiber.StatusOK, status, env.Message)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

type rankedJobs struct {
	Jobs []struct {
		ID            int    `json:"id"`
		AffinityScore int    `json:"affinity_score"`
		Algorithm     string `json:"algorithm"`
	} `json:"jobs"`
	Total     int    `json:"total"`
	Algorithm string `json:"algorithm"`
}

func jobs(t *testing.T, a *App, token, query string) (int, rankedJobs) {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/v1/jobs"+query, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	status, env := do(t, a, req)

	var out rankedJobs
	if status == fiber.StatusOK {
		require.NoError(t, json.Unmarshal(env.Data, &out))
	}
	return status, out
}

func TestApp_LoginThenRank(t *testing.T) {
	a, cleanup, err := Bootstrap(testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	token := login(t, a, "123", "456")

	status, ranked := jobs(t, a, token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "hierarchical", ranked.Algorithm)
	require.NotEmpty(t, ranked.Jobs)
	assert.Equal(t, len(ranked.Jobs), ranked.Total)
	assert.Equal(t, 1, ranked.Jobs[0].ID)
	for i, j := range ranked.Jobs {
		assert.Positive(t, j.AffinityScore)
		assert.LessOrEqual(t, j.AffinityScore, 1000)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked.Jobs[i-1].AffinityScore, j.AffinityScore)
		}
	}

	status, lexical := jobs(t, a, token, "?algorithm=lexical")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "lexical", lexical.Algorithm)
	// 20 exact category matches plus the irrigation posting, whose
	// description shares "sistemas" with the profile.
	require.Equal(t, 21, lexical.Total)
	for _, j := range lexical.Jobs[:20] {
		assert.Equal(t, 100, j.AffinityScore)
	}
	assert.Equal(t, 24, lexical.Jobs[20].ID)
	assert.Equal(t, 10, lexical.Jobs[20].AffinityScore)

	status, _ = jobs(t, a, token, "?algorithm=semantic")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestApp_CategoryGraduate(t *testing.T) {
	a, cleanup, err := Bootstrap(testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	token := login(t, a, "135", "468")

	status, ranked := jobs(t, a, token, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Zero(t, ranked.Total)
	assert.NotNil(t, ranked.Jobs)

	status, lexical := jobs(t, a, token, "?algorithm=lexical")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 4, lexical.Total)
}

func TestApp_RejectsBadLoginAndMissingToken(t *testing.T) {
	a, cleanup, err := Bootstrap(testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{"national_id":"123","record_number":"000"}`))
	req.Header.Set("Content-Type", "application/json")
	status, _ := do(t, a, req)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = do(t, a, httptest.NewRequest("GET", "/api/v1/jobs", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestApp_PublicEndpoints(t *testing.T) {
	a, cleanup, err := Bootstrap(testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	status, env := do(t, a, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"default_algorithm":"hierarchical"`)

	status, env = do(t, a, httptest.NewRequest("GET", "/api/v1/taxonomy", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(env.Data), `"total_nodes":47`)
}

func TestNewEngine_WeightsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lexical:\n  description: 0\n"), 0o600))

	engine, err := NewEngine(config.MatchingConfig{Staging: "queue", WeightsFile: path}, zapNop())
	require.NoError(t, err)
	assert.Equal(t, 0, engine.Weights().Lexical.Description)
	assert.Equal(t, 40, engine.Weights().Lexical.Category)

	_, err = NewEngine(config.MatchingConfig{WeightsFile: filepath.Join(dir, "missing.yaml")}, zapNop())
	assert.Error(t, err)

	_, err = NewEngine(config.MatchingConfig{Staging: "heap"}, zapNop())
	assert.Error(t, err)
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	addr, err = ListenAddr(":9090")
	require.NoError(t, err)
	assert.Equal(t, ":9090", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}

func zapNop() *zap.Logger { return zap.NewNop() }
