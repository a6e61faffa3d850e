package server

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/history"
)

func setupTestServer(t *testing.T) (*Server, *history.Store) {
	t.Helper()
	h := history.Open("")
	return New(h, calc.Degrees), h
}

func do(t *testing.T, s *Server, method, target, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.App().Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	if len(b) == 0 {
		return resp.StatusCode, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("response %q is not a JSON object: %v", b, err)
	}
	return resp.StatusCode, m
}

func errKind(m map[string]any) string {
	e, _ := m["error"].(map[string]any)
	k, _ := e["kind"].(string)
	return k
}

func TestEval(t *testing.T) {
	s, h := setupTestServer(t)
	code, m := do(t, s, "POST", "/v1/eval", `{"expr":"2+3*4"}`)
	if code != 200 {
		t.Fatalf("expected 200, got %d: %v", code, m)
	}
	if m["value"] != 14.0 || m["display"] != "14" {
		t.Errorf("wrong result %v", m)
	}
	hist := h.List()
	if len(hist) != 1 || hist[0].Line != "2+3*4 = 14" {
		t.Errorf("wrong history %v", hist)
	}
}

func TestEvalAngle(t *testing.T) {
	s, _ := setupTestServer(t)
	_, deg := do(t, s, "POST", "/v1/eval", `{"expr":"cos(180)"}`)
	if deg["display"] != "-1" {
		t.Errorf("degrees: %v", deg)
	}
	_, rad := do(t, s, "POST", "/v1/eval", `{"expr":"cos(pi)","angle":"rad"}`)
	if rad["display"] != "-1" {
		t.Errorf("radians: %v", rad)
	}
	code, m := do(t, s, "POST", "/v1/eval", `{"expr":"1","angle":"grad"}`)
	if code != 400 || errKind(m) != "angle" {
		t.Errorf("bad angle: %d %v", code, m)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		body string
		kind string
	}{
		{`{"expr":""}`, "empty"},
		{`{"expr":"2$3"}`, "lex"},
		{`{"expr":"(1+2"}`, "syntax"},
		{`{"expr":"foo"}`, "syntax"},
		{`{"expr":"2+"}`, "eval"},
		{`{"expr":"3.5!"}`, "factorial"},
		{`{"expr":"1/0"}`, "not-finite"},
		{`{"expr":`, "request"},
	}
	s, h := setupTestServer(t)
	for _, c := range cases {
		code, m := do(t, s, "POST", "/v1/eval", c.body)
		if code != 400 {
			t.Errorf("%s: expected 400, got %d", c.body, code)
		}
		if k := errKind(m); k != c.kind {
			t.Errorf("%s: want kind %q, got %q (%v)", c.body, c.kind, k, m)
		}
	}
	if hist := h.List(); len(hist) != 0 {
		t.Errorf("failed evaluations were recorded: %v", hist)
	}
}

func TestFormat(t *testing.T) {
	s, _ := setupTestServer(t)
	code, m := do(t, s, "GET", "/v1/format?x=1e12", "")
	if code != 200 || m["display"] != "1e+12" {
		t.Errorf("format: %d %v", code, m)
	}
	code, m = do(t, s, "GET", "/v1/format?x=abc", "")
	if code != 400 || errKind(m) != "request" {
		t.Errorf("bad number: %d %v", code, m)
	}
}

func TestHistory(t *testing.T) {
	s, h := setupTestServer(t)
	do(t, s, "POST", "/v1/eval", `{"expr":"1+1"}`)
	do(t, s, "POST", "/v1/eval", `{"expr":"5!"}`)
	code, m := do(t, s, "GET", "/v1/history", "")
	if code != 200 {
		t.Fatalf("list: %d", code)
	}
	entries, _ := m["entries"].([]any)
	if len(entries) != 2 {
		t.Fatalf("want 2 entries, got %v", m)
	}
	newest := h.List()[0]
	ts := strconv.FormatInt(newest.Time, 10)

	code, m = do(t, s, "GET", "/v1/history/"+ts, "")
	if code != 200 || m["input"] != "5!" {
		t.Errorf("get: %d %v", code, m)
	}
	if code, _ := do(t, s, "DELETE", "/v1/history/"+ts, ""); code != 204 {
		t.Errorf("delete: %d", code)
	}
	if code, m := do(t, s, "DELETE", "/v1/history/"+ts, ""); code != 404 || errKind(m) != "history" {
		t.Errorf("delete again: %d %v", code, m)
	}
	if code, _ := do(t, s, "GET", "/v1/history/x", ""); code != 400 {
		t.Errorf("bad time: %d", code)
	}
	if len(h.List()) != 1 {
		t.Errorf("wrong history after delete: %v", h.List())
	}
	if code, _ := do(t, s, "DELETE", "/v1/history", ""); code != 204 {
		t.Errorf("clear: %d", code)
	}
	_, m = do(t, s, "GET", "/v1/history", "")
	if entries, ok := m["entries"].([]any); !ok || len(entries) != 0 {
		t.Errorf("cleared history lists %v", m)
	}
}

func TestPlot(t *testing.T) {
	s, _ := setupTestServer(t)
	code, m := do(t, s, "GET", "/v1/plot?f=1/x&w=100&h=50&scale=50", "")
	if code != 200 {
		t.Fatalf("plot: %d %v", code, m)
	}
	segs, _ := m["segments"].([]any)
	if len(segs) != 2 {
		t.Errorf("want 2 segments, got %d", len(segs))
	}
	view, _ := m["view"].(map[string]any)
	if view["func"] != "1/x" {
		t.Errorf("wrong view %v", view)
	}
	bad := []string{
		"/v1/plot?w=0",
		"/v1/plot?h=100000",
		"/v1/plot?scale=1",
		"/v1/plot?scale=nan",
		"/v1/plot?offx=inf",
		"/v1/plot?angle=turns",
	}
	for _, target := range bad {
		if code, _ := do(t, s, "GET", target, ""); code != 400 {
			t.Errorf("%s: expected 400, got %d", target, code)
		}
	}
	code, m = do(t, s, "GET", "/v1/plot?f=foo", "")
	if segs, ok := m["segments"].([]any); code != 200 || !ok || len(segs) != 0 {
		t.Errorf("invalid function: %d %v", code, m)
	}
}

func TestErrorKind(t *testing.T) {
	_, err := calc.EvalString("(1")
	if k := errorKind(err); k != "syntax" {
		t.Errorf("bracket error is %q", k)
	}
}
