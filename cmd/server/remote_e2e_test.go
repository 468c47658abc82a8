//go:build e2e

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestRemoteAPI_MainEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	client := &http.Client{Timeout: 60 * time.Second}
	saveName := "e2e-" + time.Now().UTC().Format("20060102150405")

	t.Run("generate small world", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/world/generate", map[string]any{
			"name":   "e2e",
			"seed":   4,
			"width":  40,
			"height": 40,
		})
		if status != http.StatusOK {
			t.Fatalf("generate status=%d body=%s", status, string(body))
		}
	})

	t.Run("observe action path", func(t *testing.T) {
		status, observeBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/world/observe", map[string]any{"radius": 3})
		if status != http.StatusOK {
			t.Fatalf("observe status=%d body=%s", status, string(observeBody))
		}
		var observed map[string]any
		if err := json.Unmarshal(observeBody, &observed); err != nil {
			t.Fatalf("unmarshal observe: %v body=%s", err, string(observeBody))
		}
		if len(asSlice(observed["tiles"])) == 0 {
			t.Fatalf("observe returned no tiles: %s", string(observeBody))
		}
		player := asMap(observed["player"])

		status, actionBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/world/action", map[string]any{
			"intent": map[string]any{"type": "craft", "item": "axe"},
		})
		if status != http.StatusOK {
			t.Fatalf("action status=%d body=%s", status, string(actionBody))
		}
		var acted map[string]any
		if err := json.Unmarshal(actionBody, &acted); err != nil {
			t.Fatalf("unmarshal action: %v", err)
		}
		if acted["result_code"] != "REJECTED" || acted["reason"] != "MISSING_INGREDIENTS" {
			t.Fatalf("expected missing ingredients on a fresh inventory, got %s", string(actionBody))
		}

		status, pathBody := mustJSON(t, client, http.MethodPost, baseURL+"/api/world/path", map[string]any{
			"from": player,
			"to":   player,
		})
		if status != http.StatusOK {
			t.Fatalf("path status=%d body=%s", status, string(pathBody))
		}

		status, replayBody := mustJSON(t, client, http.MethodGet, baseURL+"/api/world/replay?limit=5", nil)
		if status != http.StatusOK || !strings.Contains(string(replayBody), "action_rejected") {
			t.Fatalf("replay status=%d body=%s", status, string(replayBody))
		}
	})

	t.Run("save list load delete", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/saves/"+saveName, nil)
		if status != http.StatusCreated {
			t.Fatalf("save status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/saves", nil)
		if status != http.StatusOK || !strings.Contains(string(body), saveName) {
			t.Fatalf("list status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/saves/"+saveName+"/load", nil)
		if status != http.StatusOK {
			t.Fatalf("load status=%d body=%s", status, string(body))
		}
		status, body = mustJSON(t, client, http.MethodDelete, baseURL+"/api/saves/"+saveName, nil)
		if status != http.StatusOK {
			t.Fatalf("delete status=%d body=%s", status, string(body))
		}
	})

	t.Run("ops kpi", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/ops/kpi", nil)
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url string, body map[string]any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, body)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url string, body map[string]any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
