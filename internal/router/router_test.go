package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	mem "dog-adoption-api/internal/adapters/storage/memory"
	"dog-adoption-api/internal/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_SeededDataset(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/dogs", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing dogs, got %d body=%s", st, string(body))
	}

	var resp struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	if resp.Pagination.Total != 5 || len(resp.Data) != 5 {
		t.Fatalf("expected 5 seeded dogs, got total=%d len=%d", resp.Pagination.Total, len(resp.Data))
	}
	if resp.Pagination.Page != 1 || resp.Pagination.Limit != 10 || resp.Pagination.TotalPages != 1 {
		t.Fatalf("unexpected pagination defaults: %+v", resp.Pagination)
	}
}

func TestHTTP_DogLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// 1) crear perro
	dogID := createDog(t, ts.URL, map[string]any{
		"name":   "Nina",
		"breed":  "Beagle",
		"age":    2,
		"weight": 9.5,
		"gender": "female",
		"color":  "tricolor",
		"size":   "small",
	})

	// 2) leerlo
	{
		st, body := doReq(t, ts.URL, "GET", "/dogs/"+dogID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get dog, got %d body=%s", st, string(body))
		}
	}

	// 3) PATCH parcial: solo el peso cambia
	{
		st, body := doReq(t, ts.URL, "PATCH", "/dogs/"+dogID, map[string]any{
			"weight": 10.2,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch dog, got %d body=%s", st, string(body))
		}
		var d struct {
			Name   string  `json:"name"`
			Weight float64 `json:"weight"`
		}
		_ = json.Unmarshal(body, &d)
		if d.Name != "Nina" || d.Weight != 10.2 {
			t.Fatalf("unexpected patched dog: %+v", d)
		}
	}

	// 4) borrar: 204 y luego 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/dogs/"+dogID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete dog, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/dogs/"+dogID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 on second delete, got %d", st)
		}
	}
}

func TestHTTP_ForeignKeyGuard(t *testing.T) {
	ts := newTestServer(t)

	// uuid4 con formato válido pero inexistente
	ghost := "9e1c3a5b-7d2f-4b8a-8c4e-6f1a3d5b7c9e"

	st, body := doReq(t, ts.URL, "POST", "/health-records", map[string]any{
		"dogId":        ghost,
		"type":         "checkup",
		"date":         "2026-06-01",
		"veterinarian": "Dra. Soto",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown dog, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "POST", "/adoptions", map[string]any{
		"dogId":         ghost,
		"applicantName": "Test",
		"email":         "test@example.com",
		"phone":         "+51 900 000 000",
		"address": map[string]any{
			"street": "Calle 1", "city": "Lima", "state": "Lima", "zipCode": "15001",
		},
		"housingType": "house",
		"experience":  "first-time",
	})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown dog in adoption, got %d body=%s", st, string(body))
	}
}

func TestHTTP_DeleteDogDoesNotCascade(t *testing.T) {
	ts := newTestServer(t)

	// Rocky tiene registros de salud y entrenamientos sembrados
	st, _ := doReq(t, ts.URL, "DELETE", "/dogs/"+mem.SeedDogRocky, nil)
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 delete seeded dog, got %d", st)
	}

	// sus registros siguen listables tras el borrado
	st, body := doReq(t, ts.URL, "GET", "/health-records?dog_id="+mem.SeedDogRocky, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing orphan records, got %d body=%s", st, string(body))
	}
	var resp struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Pagination.Total == 0 {
		t.Fatalf("expected orphan health records to survive, got none")
	}
}

func TestHTTP_AdoptionStats(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/adoptions/stats", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 stats, got %d body=%s", st, string(body))
	}

	var stats struct {
		TotalApplications int     `json:"totalApplications"`
		Pending           int     `json:"pending"`
		Approved          int     `json:"approved"`
		Rejected          int     `json:"rejected"`
		TotalDogs         int     `json:"totalDogs"`
		AdoptionRate      float64 `json:"adoptionRate"`
	}
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	// seed: 3 solicitudes (1 approved, 1 pending, 1 rejected) sobre 5 perros
	if stats.TotalApplications != 3 || stats.Approved != 1 || stats.Pending != 1 || stats.Rejected != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.TotalDogs != 5 || stats.AdoptionRate != 20 {
		t.Fatalf("unexpected adoption rate: %+v", stats)
	}
}

func TestHTTP_BreedGroups(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/breeds/groups", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 groups, got %d body=%s", st, string(body))
	}

	var groups []struct {
		Group  string   `json:"group"`
		Count  int      `json:"count"`
		Breeds []string `json:"breeds"`
	}
	if err := json.Unmarshal(body, &groups); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	// seed: 8 razas, una por grupo
	if len(groups) != 8 {
		t.Fatalf("expected 8 groups, got %d", len(groups))
	}
	for _, g := range groups {
		if g.Count != 1 || len(g.Breeds) != 1 {
			t.Fatalf("expected one breed per group, got %+v", g)
		}
	}
}

func TestHTTP_TrainingProgress(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/training-records/dogs/"+mem.SeedDogRocky+"/progress", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 progress, got %d body=%s", st, string(body))
	}

	var p struct {
		TotalTrainings  int      `json:"totalTrainings"`
		Completed       int      `json:"completed"`
		InProgress      int      `json:"inProgress"`
		Skills          []string `json:"skills"`
		OverallProgress string   `json:"overallProgress"`
	}
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, string(body))
	}
	// seed de Rocky: obediencia completada (excellent) + agility en curso (good)
	if p.TotalTrainings != 2 || p.Completed != 1 || p.InProgress != 1 {
		t.Fatalf("unexpected progress: %+v", p)
	}
	// (4+3)/2 = 3.5, umbral inclusivo
	if p.OverallProgress != "good" {
		t.Fatalf("expected overall good, got %q", p.OverallProgress)
	}
}

func TestHTTP_InvalidPagination(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/dogs?page=0",
		"/dogs?limit=0",
		"/dogs?limit=101",
		"/breeds?page=abc",
	} {
		st, _ := doReq(t, ts.URL, "GET", path, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", path, st)
		}
	}
}

func TestHTTP_ValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	// falta name y gender fuera del enum
	st, body := doReq(t, ts.URL, "POST", "/dogs", map[string]any{
		"breed":  "Beagle",
		"age":    2,
		"weight": 9.5,
		"gender": "unknown",
		"color":  "brown",
		"size":   "small",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload, got %d body=%s", st, string(body))
	}

	var e struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &e)
	if e.Error != "validation_error" {
		t.Fatalf("expected validation_error kind, got %q", e.Error)
	}
}

func createDog(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/dogs", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create dog, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create dog: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
