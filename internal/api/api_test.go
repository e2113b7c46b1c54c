package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hangman-solver/internal/api"
	"github.com/mcoot/hangman-solver/internal/api/apierr"
	"github.com/mcoot/hangman-solver/internal/api/response"
	"github.com/mcoot/hangman-solver/internal/factory"
	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.DictionaryService.LoadWords(model.FallbackWords))

	return newTestServerWithApp(app)
}

func newTestServerWithApp(app *factory.TestApp) *testServer {
	router := api.NewRouter(api.RouterConfig{
		Logger:            testutil.NopLogger(),
		DictionaryService: app.DictionaryService,
		Strategies:        app.Strategies,
		SessionController: app.SessionController,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Message)
}

func guessBody(pattern string, guessed ...string) map[string]any {
	return map[string]any{
		"pattern":           pattern,
		"guessed_letters":   guessed,
		"guesses_remaining": 6,
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.Health](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.DictionaryLoaded)
	assert.Equal(t, len(model.FallbackWords), resp.WordCount)
	assert.Equal(t, string(model.DictionarySourceWords), resp.DictionarySource)
	assert.Len(t, resp.Fingerprint, 64)
}

func TestHealthCheckDegradedWithoutDictionary(t *testing.T) {
	ts := newTestServerWithApp(factory.NewTestApp())

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.Health](t, rr)
	assert.Equal(t, "degraded", resp.Status)
	assert.False(t, resp.DictionaryLoaded)
}

func TestGuessSingleCandidate(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/guess", guessBody("f __ i __ h t", "f", "i", "h", "t"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[response.Decision](t, rr)
	assert.Equal(t, "l", resp.NextGuess)
	assert.Equal(t, model.StrategyFrequency, resp.Strategy)
	assert.Equal(t, string(model.RuleSingleCandidate), resp.Rule)
	assert.Equal(t, 1, resp.CandidateCount)
	assert.Equal(t, []string{"flight"}, resp.Candidates)
}

func TestGuessAllBlanks(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/guess", guessBody("__ __ __ __ __ __"))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.Decision](t, rr)
	assert.Equal(t, "t", resp.NextGuess)
	assert.Equal(t, 2, resp.CandidateCount)
	assert.InDelta(t, 1.7, resp.Score, 1e-9)
	require.NotEmpty(t, resp.Ranking)
	assert.Equal(t, "t", resp.Ranking[0].Letter)
}

func TestGuessNoCandidates(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/guess", guessBody("__ __ __"))
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.Decision](t, rr)
	assert.Equal(t, "e", resp.NextGuess)
	assert.Equal(t, 0, resp.CandidateCount)
	assert.Equal(t, []string{}, resp.Candidates)
}

func TestGuessRandomStrategy(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueIntn(0)

	body := guessBody("__ __ __", "a")
	body["strategy"] = model.StrategyRandom
	rr := ts.request(http.MethodPost, "/api/v1/guess", body)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.Decision](t, rr)
	assert.Equal(t, "b", resp.NextGuess)
	assert.Equal(t, model.StrategyRandom, resp.Strategy)
}

func TestGuessErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"malformed json", "{", http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"empty pattern", guessBody(""), http.StatusBadRequest, apierr.CodeInvalidPattern},
		{"bad pattern token", guessBody("a 1 __"), http.StatusBadRequest, apierr.CodeInvalidPattern},
		{"bad letter", guessBody("__ __", "ab"), http.StatusBadRequest, apierr.CodeInvalidLetter},
		{"unknown strategy", map[string]any{"pattern": "__", "strategy": "oracle"}, http.StatusBadRequest, apierr.CodeUnknownStrategy},
		{"negative guesses", map[string]any{"pattern": "__", "guesses_remaining": -1}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"alphabet exhausted", guessBody("__", model.NewLetterSet([]rune(model.Alphabet)...).Strings()...), http.StatusConflict, apierr.CodeAlphabetExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/guess", tt.body)
			assertErrorCode(t, rr, tt.status, tt.code)
		})
	}
}

func TestGuessWithoutDictionary(t *testing.T) {
	ts := newTestServerWithApp(factory.NewTestApp())

	rr := ts.request(http.MethodPost, "/api/v1/guess", guessBody("__ __"))
	assertErrorCode(t, rr, http.StatusServiceUnavailable, apierr.CodeDictionaryNotLoaded)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("sess00000001")

	// Create
	rr := ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"word_length": 6})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[response.Session](t, rr)
	assert.Equal(t, "sess00000001", created.ID)
	assert.Equal(t, model.StrategyFrequency, created.Strategy)
	assert.Equal(t, string(model.SessionStateReset), created.State)
	assert.Empty(t, created.History)

	// Guess
	rr = ts.request(http.MethodPost, "/api/v1/sessions/sess00000001/guess", guessBody("f __ i __ h t", "f", "i", "h", "t"))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	guessed := decode[response.SessionGuess](t, rr)
	assert.Equal(t, "l", guessed.Decision.NextGuess)
	assert.Equal(t, string(model.SessionStateActive), guessed.Session.State)
	assert.Equal(t, []string{"f", "h", "i", "t"}, guessed.Session.GuessedLetters)
	require.Len(t, guessed.Session.History, 1)
	assert.Equal(t, "l", guessed.Session.History[0].Letter)

	// Get
	rr = ts.request(http.MethodGet, "/api/v1/sessions/sess00000001", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := decode[response.Session](t, rr)
	assert.Equal(t, "f __ i __ h t", fetched.Pattern)
	assert.Len(t, fetched.History, 1)

	// Reset
	rr = ts.request(http.MethodPost, "/api/v1/sessions/sess00000001/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	reset := decode[response.Session](t, rr)
	assert.Equal(t, string(model.SessionStateReset), reset.State)
	assert.Empty(t, reset.History)
	assert.Empty(t, reset.GuessedLetters)

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/sessions/sess00000001", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/sess00000001", nil)
	assertErrorCode(t, rr, http.StatusNotFound, apierr.CodeSessionNotFound)
}

func TestCreateSessionWithoutBody(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("empty")

	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "empty", decode[response.Session](t, rr).ID)
}

func TestCreateSessionErrors(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"strategy": "oracle"})
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeUnknownStrategy)

	rr = ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"word_length": -1})
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestSessionNotFound(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/v1/sessions/missing", nil},
		{http.MethodDelete, "/api/v1/sessions/missing", nil},
		{http.MethodPost, "/api/v1/sessions/missing/guess", guessBody("__")},
		{http.MethodPost, "/api/v1/sessions/missing/reset", nil},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := ts.request(tt.method, tt.path, tt.body)
			assertErrorCode(t, rr, http.StatusNotFound, apierr.CodeSessionNotFound)
		})
	}
}

func TestSessionGuessInvalidPattern(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("s1")

	rr := ts.request(http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/s1/guess", guessBody("f ?? t"))
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidPattern)
}

func TestSessionGuessWrongWordLength(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("s6")

	rr := ts.request(http.MethodPost, "/api/v1/sessions", map[string]any{"word_length": 6})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/sessions/s6/guess", guessBody("a i r __ o r t"))
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidPattern)
}

func TestLegacyGuess(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/guess", map[string]any{
		"currentWordState": "a i r __ o r t",
		"guessedLetters":   []string{"a", "i", "r", "o", "t"},
		"guessesRemaining": 6,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "p", decode[response.LegacyGuess](t, rr).NextGuess)

	// The default session records the decision
	rr = ts.request(http.MethodGet, "/api/v1/sessions/default", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[response.Session](t, rr).History, 1)
}

func TestLegacyGuessInvalid(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/guess", map[string]any{"currentWordState": "a_b"})
	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidPattern)
}

func TestLegacyReset(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/guess", map[string]any{"currentWordState": "__ __ __ __ __ __"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "AI state reset", decode[response.LegacyMessage](t, rr).Message)

	rr = ts.request(http.MethodGet, "/api/v1/sessions/default", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[response.Session](t, rr).History)
}

func TestLegacyHealth(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rr.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/guess", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
