package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	analysisrepo "greenur-backend/internal/analysis/repository"
	analysisusecase "greenur-backend/internal/analysis/usecase"
	"greenur-backend/internal/auth/verifier"
	plantrepo "greenur-backend/internal/plant/repository"
	plantusecase "greenur-backend/internal/plant/usecase"
	taskrepo "greenur-backend/internal/task/repository"
	taskusecase "greenur-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "integration-test-secret"

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	plantUc := plantusecase.NewPlantUsecase(plantrepo.NewMemoryPlantRepository())
	taskRepository := taskrepo.NewMemoryTaskRepository()
	analysisUc := analysisusecase.NewAnalysisUsecase(analysisrepo.NewMemoryAnalysisRepository(), taskRepository, plantUc)
	taskUc := taskusecase.NewTaskUsecase(taskRepository, plantUc)
	taskUc.SetAnalysisGuard(analysisUc)

	r := gin.New()
	r.Use(CORSMiddleware())
	// Catalog endpoints are backed by Postgres only and are not part of
	// these scenarios.
	SetupRoutes(r, verifier.NewJWTVerifier(testSecret), plantUc, nil, analysisUc, taskUc)
	return r
}

func mintToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPreflightAlwaysNoContent(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodOptions, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r := newTestServer(t)

	for _, path := range []string{"/api/tasks", "/api/plants", "/api/analyses/some-id"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "path %s", path)
	}
}

func TestTaskLifecycleScenario(t *testing.T) {
	r := newTestServer(t)
	tokenA := mintToken(t, "user-a")
	tokenB := mintToken(t, "user-b")

	// Track a plant.
	w := doJSON(t, r, http.MethodPost, "/api/plants", tokenA, gin.H{
		"plant_type_id": "type-tomato",
		"nickname":      "Balcony Tomato",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	plantID := decode(t, w)["id"].(string)

	// Submit an analysis with two recommended tasks: high priority due
	// yesterday, low priority due next week.
	yesterday := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)
	nextWeek := time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339)
	w = doJSON(t, r, http.MethodPost, "/api/analyses", tokenA, gin.H{
		"plant_id":      plantID,
		"plant_type_id": "type-tomato",
		"current_stage": gin.H{"stage": "flowering", "progress": 0.6},
		"care_instructions": gin.H{
			"watering": "keep soil moist",
		},
		"next_checkup_date": nextWeek,
		"action_items": []gin.H{
			{"description": "water now", "priority": "high", "category": "watering", "due_date": yesterday},
			{"description": "add fertilizer", "priority": "low", "category": "fertilizing", "due_date": nextWeek},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	analysisID := created["analysis_id"].(string)
	actionItemIDs := created["action_item_ids"].([]interface{})
	require.Len(t, actionItemIDs, 2)

	// The overdue high-priority task lists first.
	w = doJSON(t, r, http.MethodGet, "/api/tasks?plant_id="+plantID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks := decode(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 2)
	first := tasks[0].(map[string]interface{})
	assert.Equal(t, "water now", first["description"])
	firstID := first["task_id"].(string)

	// Another user cannot see or touch any of it.
	w = doJSON(t, r, http.MethodGet, "/api/plants/"+plantID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/tasks?plant_id="+plantID, tokenB, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodPut, "/api/tasks/"+firstID, tokenB, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Complete the overdue task.
	w = doJSON(t, r, http.MethodPut, "/api/tasks/"+firstID, tokenA, gin.H{
		"status":  "completed",
		"comment": "gave it a full can",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)
	assert.NotNil(t, updated["completed_date"])
	assert.Equal(t, "gave it a full can", updated["comment"])

	// It now sorts after the remaining pending task.
	w = doJSON(t, r, http.MethodGet, "/api/tasks?plant_id="+plantID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	tasks = decode(t, w)["tasks"].([]interface{})
	require.Len(t, tasks, 2)
	assert.Equal(t, "add fertilizer", tasks[0].(map[string]interface{})["description"])
	assert.Equal(t, "water now", tasks[1].(map[string]interface{})["description"])

	// Delete the completed task; the analysis record keeps its identifier
	// but task resolution drops it.
	w = doJSON(t, r, http.MethodDelete, "/api/tasks/"+firstID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/analyses/"+analysisID, tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["action_item_ids"].([]interface{}), 2)

	w = doJSON(t, r, http.MethodGet, "/api/analyses/"+analysisID+"/tasks", tokenA, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resolved := decode(t, w)["tasks"].([]interface{})
	require.Len(t, resolved, 1)
	assert.Equal(t, "add fertilizer", resolved[0].(map[string]interface{})["description"])
}

func TestAnalysisValidation(t *testing.T) {
	r := newTestServer(t)
	token := mintToken(t, "user-a")

	w := doJSON(t, r, http.MethodPost, "/api/plants", token, gin.H{"plant_type_id": "type-rose"})
	require.Equal(t, http.StatusCreated, w.Code)
	plantID := decode(t, w)["id"].(string)

	// Missing stage snapshot names the field.
	w = doJSON(t, r, http.MethodPost, "/api/analyses", token, gin.H{
		"plant_id":      plantID,
		"plant_type_id": "type-rose",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "current_stage")

	// Unowned plant reads as absent.
	w = doJSON(t, r, http.MethodPost, "/api/analyses", mintToken(t, "user-b"), gin.H{
		"plant_id":      plantID,
		"plant_type_id": "type-rose",
		"current_stage": gin.H{"stage": "seedling"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIdentifierlessTaskMutations(t *testing.T) {
	r := newTestServer(t)
	token := mintToken(t, "user-a")

	w := doJSON(t, r, http.MethodPut, "/api/tasks", token, gin.H{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "task id is required")

	w = doJSON(t, r, http.MethodDelete, "/api/tasks", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDirectTaskCreation(t *testing.T) {
	r := newTestServer(t)
	token := mintToken(t, "user-a")

	w := doJSON(t, r, http.MethodPost, "/api/plants", token, gin.H{"plant_type_id": "type-mint"})
	require.Equal(t, http.StatusCreated, w.Code)
	plantID := decode(t, w)["id"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/tasks", token, gin.H{
		"plant_id": plantID,
		"tasks": []gin.H{
			{"description": "pinch growing tips"},
			{"description": "move to partial shade", "priority": "low"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, float64(2), decode(t, w)["count"])

	w = doJSON(t, r, http.MethodPost, "/api/tasks", token, gin.H{
		"plant_id": "not-yours",
		"tasks":    []gin.H{{"description": "water"}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksUnknownScopeTarget(t *testing.T) {
	r := newTestServer(t)
	token := mintToken(t, "user-a")

	w := doJSON(t, r, http.MethodGet, "/api/tasks?analysis_id=missing", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tasks?plant_id=%s", "missing"), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
