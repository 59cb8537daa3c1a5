package table

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupTableTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(repo)
	r.GET("/tables", handler.List)
	r.POST("/tables", handler.Create)
	r.PATCH("/tables/:id/status", handler.UpdateStatus)
	r.DELETE("/tables/:id", handler.Delete)

	return r
}

func TestCreateTable(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupTableTestRouter(repo)

	body, _ := json.Marshal(map[string]any{"name": "T1", "capacity": 4})
	req := httptest.NewRequest(http.MethodPost, "/tables", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var created Table
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Status != StatusAvailable {
		t.Fatalf("new table should default to AVAILABLE, got %s", created.Status)
	}
}

func TestCreateTableRejectsBadCapacity(t *testing.T) {
	router := setupTableTestRouter(NewInMemoryRepository())

	body, _ := json.Marshal(map[string]any{"name": "T1", "capacity": 0})
	req := httptest.NewRequest(http.MethodPost, "/tables", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateTableStatus(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupTableTestRouter(repo)

	tbl := &Table{Name: "T2", Capacity: 2}
	_ = repo.Create(context.Background(), tbl)

	body, _ := json.Marshal(map[string]string{"status": StatusOccupied})
	req := httptest.NewRequest(http.MethodPatch, "/tables/"+tbl.ID+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	updated, _ := repo.GetByID(context.Background(), tbl.ID)
	if updated.Status != StatusOccupied {
		t.Fatalf("expected OCCUPIED, got %s", updated.Status)
	}
}

func TestUpdateTableStatusRejectsUnknown(t *testing.T) {
	repo := NewInMemoryRepository()
	router := setupTableTestRouter(repo)

	tbl := &Table{Name: "T3", Capacity: 2}
	_ = repo.Create(context.Background(), tbl)

	body, _ := json.Marshal(map[string]string{"status": "BROKEN"})
	req := httptest.NewRequest(http.MethodPatch, "/tables/"+tbl.ID+"/status", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
