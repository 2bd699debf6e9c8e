package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"later-reminder/internal/middleware"
	"later-reminder/internal/scheduling"
	deliveryHTTP "later-reminder/internal/scheduling/delivery/http"
	pkgLog "later-reminder/pkg/log"
)

type fakeUseCase struct {
	plan     scheduling.Plan
	planErr  error
	applyErr error
	lastIn   scheduling.PlanInput
}

func (f *fakeUseCase) Plan(ctx context.Context, input scheduling.PlanInput) (scheduling.Plan, error) {
	f.lastIn = input
	return f.plan, f.planErr
}

func (f *fakeUseCase) Apply(ctx context.Context, input scheduling.PlanInput) (scheduling.Plan, error) {
	f.lastIn = input
	if f.applyErr != nil {
		return scheduling.Plan{}, f.applyErr
	}
	committed := f.plan
	committed.Committed = true
	return committed, nil
}

func newServer(uc *fakeUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := deliveryHTTP.New(pkgLog.NewNop(), uc)
	mw := middleware.New(pkgLog.NewNop(), 600)
	deliveryHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPlanEndpoint(t *testing.T) {
	uc := &fakeUseCase{
		plan: scheduling.Plan{
			RunID:            "run-1",
			Title:            "レポートを書く",
			FreeDay:          "2025-06-10",
			DueDateTime:      "2025-06-10 14:00",
			EstimatedMinutes: 60,
			GapMinutes:       30,
		},
	}
	r := newServer(uc)

	w := doJSON(t, r, "/api/v1/schedule/plan", `{"input":"あとで レポートを書く","list":"仕事"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	if uc.lastIn.Input != "あとで レポートを書く" || uc.lastIn.List != "仕事" {
		t.Errorf("input not forwarded: %+v", uc.lastIn)
	}

	var body struct {
		Data struct {
			RunID     string `json:"run_id"`
			FreeDay   string `json:"free_day"`
			Committed bool   `json:"committed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if body.Data.RunID != "run-1" || body.Data.FreeDay != "2025-06-10" {
		t.Errorf("unexpected payload: %+v", body.Data)
	}
	if body.Data.Committed {
		t.Errorf("plan endpoint must not commit")
	}
}

func TestApplyEndpoint(t *testing.T) {
	uc := &fakeUseCase{
		plan: scheduling.Plan{RunID: "run-2", Title: "掃除", FreeDay: "2025-06-10", DueDateTime: "2025-06-10 14:00"},
	}
	r := newServer(uc)

	w := doJSON(t, r, "/api/v1/schedule/apply", `{"input":"あとで 掃除"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var body struct {
		Data struct {
			Committed bool `json:"committed"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if !body.Data.Committed {
		t.Errorf("expected committed plan")
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "empty input", err: scheduling.ErrEmptyInput, want: http.StatusBadRequest},
		{name: "invalid range", err: scheduling.ErrInvalidRange, want: http.StatusBadRequest},
		{name: "list not found", err: scheduling.ErrListNotFound, want: http.StatusNotFound},
		{name: "no free day", err: scheduling.ErrNoFreeDay, want: http.StatusConflict},
		{name: "not authorized", err: scheduling.ErrNotAuthorized, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newServer(&fakeUseCase{planErr: tt.err})
			w := doJSON(t, r, "/api/v1/schedule/plan", `{"input":"あとで 掃除"}`)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestMalformedBody(t *testing.T) {
	r := newServer(&fakeUseCase{})
	w := doJSON(t, r, "/api/v1/schedule/plan", `{"input":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
