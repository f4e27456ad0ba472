package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"schedulepro-backend/controllers"
	"schedulepro-backend/docstore"
	"schedulepro-backend/scheduling"
	"schedulepro-backend/storage"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	store := storage.NewMemoryStore()
	docs, err := docstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("docstore.New: %v", err)
	}
	sys, err := scheduling.NewSystem(store, docs)
	if err != nil {
		t.Fatalf("NewSystem: %v", err)
	}
	return SetupRouter(controllers.NewAPI(sys, docs, store))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func setupAndLogin(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/setup", "", gin.H{
		"name": "Dr. Example", "email": "dr@example.com", "password": "correct-horse",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("setup: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "dr@example.com", "password": "correct-horse",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func TestAuth_SetupOnceAndGuardedRoutes(t *testing.T) {
	r := newTestServer(t)

	// Protected routes refuse without a token.
	if w := doJSON(t, r, http.MethodGet, "/api/schedule", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated /api/schedule: %d", w.Code)
	}

	token := setupAndLogin(t, r)

	// A second setup is refused; this is a one-seat system.
	w := doJSON(t, r, http.MethodPost, "/auth/setup", "", gin.H{
		"name": "Mallory", "email": "m@example.com", "password": "letmein-please",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("second setup: %d %s", w.Code, w.Body.String())
	}

	// Wrong password is rejected.
	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "dr@example.com", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
	var me struct {
		Email string `json:"email"`
	}
	decode(t, w, &me)
	if me.Email != "dr@example.com" {
		t.Fatalf("me.email = %q", me.Email)
	}
}

func TestBookingFlow(t *testing.T) {
	r := newTestServer(t)
	token := setupAndLogin(t, r)

	for _, label := range []string{"09:00", "10:00"} {
		w := doJSON(t, r, http.MethodPost, "/api/schedule/slots", token, gin.H{"label": label})
		if w.Code != http.StatusCreated {
			t.Fatalf("define slot %s: %d %s", label, w.Code, w.Body.String())
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{
		"name": "Alice", "email": "alice@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d %s", w.Code, w.Body.String())
	}
	var client struct {
		ID string `json:"id"`
	}
	decode(t, w, &client)

	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"date": "2024-05-01", "time_slot": "09:00", "client_id": client.ID, "fee": 50,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("book: %d %s", w.Code, w.Body.String())
	}
	var appt struct {
		ID string `json:"id"`
	}
	decode(t, w, &appt)

	// Double booking the same (date, slot) is a conflict.
	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"date": "2024-05-01", "time_slot": "09:00", "client_id": client.ID,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("double book: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/availability?date=2024-05-01", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availability: %d %s", w.Code, w.Body.String())
	}
	var avail struct {
		FreeSlots   []string `json:"free_slots"`
		FullyBooked bool     `json:"fully_booked"`
		Booked      int      `json:"booked"`
		Total       int      `json:"total"`
	}
	decode(t, w, &avail)
	if len(avail.FreeSlots) != 1 || avail.FreeSlots[0] != "10:00" {
		t.Fatalf("free_slots = %v", avail.FreeSlots)
	}
	if avail.FullyBooked || avail.Booked != 1 || avail.Total != 2 {
		t.Fatalf("availability = %+v", avail)
	}

	// Check-in: mark paid, which also drops a note on the client record.
	w = doJSON(t, r, http.MethodPut, "/api/appointments/"+appt.ID+"/payment", token, gin.H{"paid": true})
	if w.Code != http.StatusOK {
		t.Fatalf("set payment: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/reports?start=2024-05-01&end=2024-05-31", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report: %d %s", w.Code, w.Body.String())
	}
	var report struct {
		TotalRevenue  float64 `json:"total_revenue"`
		PaidTotal     float64 `json:"total_paid"`
		UnpaidTotal   float64 `json:"total_unpaid"`
		TotalBookings int     `json:"total_bookings"`
	}
	decode(t, w, &report)
	if report.TotalRevenue != 50 || report.PaidTotal != 50 || report.UnpaidTotal != 0 || report.TotalBookings != 1 {
		t.Fatalf("report = %+v", report)
	}

	// Deleting a client with an appointment on the books is refused.
	w = doJSON(t, r, http.MethodDelete, "/api/clients/"+client.ID, token, nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("delete booked client: %d %s", w.Code, w.Body.String())
	}

	// Cancel frees the slot and the client can then be removed.
	w = doJSON(t, r, http.MethodDelete, "/api/appointments/"+appt.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("cancel: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodDelete, "/api/clients/"+client.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete client: %d %s", w.Code, w.Body.String())
	}
}

// Read handlers must not observe the core mid-mutation. Run with -race to
// verify: availability reads are served concurrently with a book/cancel loop.
func TestConcurrentReadsDuringMutation(t *testing.T) {
	r := newTestServer(t)
	token := setupAndLogin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/schedule/slots", token, gin.H{"label": "09:00"})
	if w.Code != http.StatusCreated {
		t.Fatalf("define slot: %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{"name": "Alice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d", w.Code)
	}
	var client struct {
		ID string `json:"id"`
	}
	decode(t, w, &client)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			w := doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
				"date": "2024-05-01", "time_slot": "09:00", "client_id": client.ID,
			})
			if w.Code != http.StatusCreated {
				continue
			}
			var appt struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &appt); err != nil {
				return
			}
			doJSON(t, r, http.MethodDelete, "/api/appointments/"+appt.ID, token, nil)
		}
	}()

	for i := 0; i < 50; i++ {
		w := doJSON(t, r, http.MethodGet, "/api/availability?date=2024-05-01", token, nil)
		if w.Code != http.StatusOK {
			t.Errorf("availability during mutation: %d %s", w.Code, w.Body.String())
			break
		}
	}
	close(done)
	wg.Wait()
}

func TestErrorMapping(t *testing.T) {
	r := newTestServer(t)
	token := setupAndLogin(t, r)

	// Unknown slot on booking maps to 404.
	w := doJSON(t, r, http.MethodPost, "/api/clients", token, gin.H{"name": "Alice"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create client: %d", w.Code)
	}
	var client struct {
		ID string `json:"id"`
	}
	decode(t, w, &client)

	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"date": "2024-05-01", "time_slot": "09:00", "client_id": client.ID,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("book on undefined slot: %d %s", w.Code, w.Body.String())
	}

	// Malformed date maps to 400.
	w = doJSON(t, r, http.MethodPost, "/api/schedule/slots", token, gin.H{"label": "09:00"})
	if w.Code != http.StatusCreated {
		t.Fatalf("define slot: %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/api/appointments", token, gin.H{
		"date": "01/05/2024", "time_slot": "09:00", "client_id": client.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("book with bad date: %d %s", w.Code, w.Body.String())
	}

	// Duplicate slot label maps to 409.
	w = doJSON(t, r, http.MethodPost, "/api/schedule/slots", token, gin.H{"label": "09:00"})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate slot: %d %s", w.Code, w.Body.String())
	}

	// Inverted report range maps to 400.
	w = doJSON(t, r, http.MethodGet, "/api/reports?start=2024-05-31&end=2024-05-01", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("inverted range: %d %s", w.Code, w.Body.String())
	}
}
