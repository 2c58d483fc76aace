package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"harvestduel/internal/app/ports"
)

func TestClient_Decide(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var view ports.PlayerView
		if err := json.NewDecoder(r.Body).Decode(&view); err != nil {
			t.Errorf("decode view: %v", err)
		}
		if view.Player != "Player 1" {
			t.Errorf("view player = %q", view.Player)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"name":       "Plant",
			"parameters": []string{"Wheat", "1"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	req, err := client.Decide(context.Background(), ports.PlayerView{Player: "Player 1"})
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if req.Name != "Plant" || len(req.Parameters) != 2 || req.Parameters[0] != "Wheat" {
		t.Fatalf("request = %+v", req)
	}
}

func TestClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "policy offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Decide(context.Background(), ports.PlayerView{}); err == nil {
		t.Fatalf("expected error on 503")
	}
}

func TestClient_EmptyDecision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Decide(context.Background(), ports.PlayerView{}); err == nil {
		t.Fatalf("expected error on empty decision")
	}
}
