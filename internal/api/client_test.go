package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, func() string { return token }, nil)
	return c, srv
}

func TestLoginReturnsToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "user@example.com" {
			t.Fatalf("unexpected email %q", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-1", "message": "Login successful"})
	}), "")

	res, err := c.Login(context.Background(), "user@example.com", "Abcdef1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token != "tok-1" {
		t.Fatalf("expected token tok-1, got %q", res.Token)
	}
}

func TestLoginRejectsMissingToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}), "")

	if _, err := c.Login(context.Background(), "a@b.c", "pw"); err == nil {
		t.Fatal("expected error for token-less login response")
	}
}

func TestHistoryMapsWireFields(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Fatalf("unexpected auth header %q", got)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{
				"filename":      "note_1",
				"title":         "Todo",
				"filecontent":   "buy milk",
				"drive_file_id": "drv-9",
				"updated_at":    "Mon, 02 Jan 2006 15:04:05 GMT",
			},
		})
	}), "tok")

	list, err := c.History(context.Background())
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 note, got %d", len(list))
	}

	n := list[0]
	if n.ID != "note_1" || n.Title != "Todo" || n.Content != "buy milk" {
		t.Fatalf("unexpected note %+v", n)
	}
	if !n.Linked() {
		t.Fatal("expected drive-linked note")
	}
	if n.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to parse")
	}
}

func TestUnauthorizedMapsToAuthRejected(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Authorization required"})
	}), "expired")

	_, err := c.History(context.Background())
	if !IsAuthRejected(err) {
		t.Fatalf("expected auth rejection, got %v", err)
	}
}

func TestAuthedCallWithoutTokenShortCircuits(t *testing.T) {
	requests := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}), "")

	_, err := c.History(context.Background())
	if !IsAuthRejected(err) {
		t.Fatalf("expected auth rejection, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("expected no request to be sent, got %d", requests)
	}
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Title required"})
	}), "tok")

	_, err := c.Save(context.Background(), "", "", "content")
	if err == nil {
		t.Fatal("expected error")
	}
	if IsAuthRejected(err) {
		t.Fatalf("expected a plain request error, got auth rejection: %v", err)
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T", err)
	}
	if reqErr.Status != http.StatusBadRequest || reqErr.Message != "Title required" {
		t.Fatalf("unexpected error %+v", reqErr)
	}
}

func TestSaveOmitsFilenameOnCreate(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if _, present := body["filename"]; present {
			t.Fatal("expected filename to be omitted on create")
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Note saved", "filename": "note_1"})
	}), "tok")

	res, err := c.Save(context.Background(), "", "Todo", "buy milk")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if res.Filename != "note_1" {
		t.Fatalf("expected server-assigned id, got %q", res.Filename)
	}
}

func TestDeleteBatchesIDs(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body["filenames"]) != 2 {
			t.Fatalf("expected 2 filenames, got %v", body["filenames"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "2 note(s) deleted"})
	}), "tok")

	msg, err := c.Delete(context.Background(), []string{"note_1", "note_2"})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if msg == "" {
		t.Fatal("expected a server message")
	}
}

func TestDriveLinkStartRequiresAuthURL(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"redirect_uri": "https://example.com/cb"})
	}), "tok")

	if _, err := c.DriveLinkStart(context.Background()); err == nil {
		t.Fatal("expected error when auth_url is missing")
	}
}
