package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wordplay/analyzer"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/graphmaker"
	"github.com/domino14/wordplay/tilemapping"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	g, err := graphmaker.MakeGraph([]string{
		"HELLO", "HELLOS", "ZIT", "ZITS", "REST", "RESIN", "RINSE", "SIREN",
		"INSERT", "INTERS", "SINTER", "ESTRIN", "NITERS", "INERTS", "TRINES",
		"LO", "LI", "EH", "OE", "TIE", "TIES", "SIT", "STIR",
	}, false)
	require.NoError(t, err)
	an := analyzer.NewAnalyzerWithGraph(config.DefaultConfig(), g, tilemapping.EnglishLetterDistribution())
	return New(an)
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	is := is.New(t)
	s := testServer(t)
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("/healthz", "200"))
	rec := do(t, s, http.MethodGet, "/healthz", "")
	is.Equal(rec.Code, http.StatusOK)
	is.Equal(rec.Body.String(), `{"ok":true}`)
	is.True(strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
	is.Equal(testutil.ToFloat64(RequestsTotal.WithLabelValues("/healthz", "200")), before+1)
}

func TestMoves(t *testing.T) {
	s := testServer(t)
	rec := do(t, s, http.MethodPost, "/moves", string(analyzer.SampleJson))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ms []analyzer.JsonMove
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ms))
	require.NotEmpty(t, ms)
	words := map[string]bool{}
	for i, m := range ms {
		words[m.Word] = true
		if i > 0 {
			assert.GreaterOrEqual(t, ms[i-1].Score, m.Score)
		}
	}
	assert.True(t, words["HELLOS"])
}

func TestWords(t *testing.T) {
	s := testServer(t)
	// the board is ignored
	rec := do(t, s, http.MethodPost, "/words",
		`{"rack": "einrstz", "board": ["...HELLO"], "constraint": {"exact": 6}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var ms []analyzer.JsonMove
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ms))
	words := []string{}
	for _, m := range ms {
		words = append(words, m.Word)
	}
	assert.ElementsMatch(t, []string{"INSERT", "INTERS", "SINTER", "ESTRIN", "NITERS", "INERTS", "TRINES"}, words)
}

func TestMovesErrors(t *testing.T) {
	s := testServer(t)
	for _, body := range []string{
		`not json`,
		`{"rack": ""}`,
		`{"rack": "ABC", "mode": "sideways"}`,
	} {
		rec := do(t, s, http.MethodPost, "/moves", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		var res map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.NotEmpty(t, res["error"])
	}
	rec := do(t, s, http.MethodGet, "/moves", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	rec = do(t, s, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWordCheck(t *testing.T) {
	is := is.New(t)
	s := testServer(t)

	rec := do(t, s, http.MethodGet, "/wordcheck?word=hellos", "")
	is.Equal(rec.Code, http.StatusOK)
	var res wordCheckRes
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &res))
	is.Equal(res.Word, "HELLOS")
	is.True(res.Valid)

	rec = do(t, s, http.MethodGet, "/wordcheck?word=HELL", "")
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &res))
	is.True(!res.Valid)

	rec = do(t, s, http.MethodGet, "/wordcheck", "")
	is.Equal(rec.Code, http.StatusBadRequest)
}

func TestValidate(t *testing.T) {
	s := testServer(t)
	type testcase struct {
		name string
		body string
		code int
		word string
		sc   int
	}
	testCases := []testcase{
		{"hook", `{"board": ["", "", "", "", "", "", "", "...HELLO"], "coords": "8D", "tiles": "S"}`,
			http.StatusOK, "HELLOS", 9},
		{"blank with rack", `{"board": ["", "", "", "", "", "", "", "...HELLO"], "coords": "8I", "tiles": "s", "rack": "?AB"}`,
			http.StatusOK, "HELLOS", 8},
		{"not a word", `{"board": ["", "", "", "", "", "", "", "...HELLO"], "coords": "8D", "tiles": "Z"}`,
			http.StatusUnprocessableEntity, "", 0},
		{"not on the rack", `{"board": ["", "", "", "", "", "", "", "...HELLO"], "coords": "8D", "tiles": "S", "rack": "AB"}`,
			http.StatusUnprocessableEntity, "", 0},
		{"bad coords", `{"board": [], "coords": "middle", "tiles": "S"}`,
			http.StatusBadRequest, "", 0},
		{"off the board", `{"board": [], "coords": "Q99", "tiles": "S"}`,
			http.StatusUnprocessableEntity, "", 0},
		{"bad tiles", `{"board": [], "coords": "8H", "tiles": "S3"}`,
			http.StatusBadRequest, "", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/validate", tc.body)
			require.Equal(t, tc.code, rec.Code, rec.Body.String())
			if tc.code != http.StatusOK {
				return
			}
			var m analyzer.JsonMove
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
			assert.Equal(t, tc.word, m.Word)
			assert.Equal(t, tc.sc, m.Score)
			assert.Equal(t, "8D", m.DisplayCoordinates)
		})
	}
}

func TestBatch(t *testing.T) {
	s := testServer(t)
	body := `{"positions": [{"rack": "EINRSTZ", "mode": "rack", "limit": 3}, {"rack": ""}]}`

	rec := do(t, s, http.MethodPost, "/batch", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var results []analyzer.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Len(t, results[0].Moves, 3)
	assert.NotEmpty(t, results[1].Error)

	rec = do(t, s, http.MethodPost, "/batch?format=yaml", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	var back []analyzer.Result
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &back))
	assert.Equal(t, results[0], back[0])
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(t)
	do(t, s, http.MethodPost, "/words", `{"rack": "TIES"}`)
	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.Bytes()
	assert.True(t, bytes.Contains(body, []byte("wordplay_requests_total")))
	assert.True(t, bytes.Contains(body, []byte(`wordplay_generation_seconds_count{mode="rack"}`)))
}
