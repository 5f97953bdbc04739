package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"talenthub/internal/app/server"
	"talenthub/internal/domain/auth"
	"talenthub/internal/platform/config"
)

// The journey tests exercise the full HTTP surface against a real
// database. They are skipped unless TEST_DATABASE_URL is set.

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func startApp(t *testing.T) (*httptest.Server, *pgxpool.Pool) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		Addr:               ":0",
		DatabaseURL:        url,
		JWTSecret:          "journey-secret",
		Environment:        "test",
		MigrationsDir:      "../../../../migrations",
		RunMigrations:      true,
		RunSeed:            true,
		MaxBodyBytes:       1 << 20,
		RateLimitPerMinute: 10000,
		PassingThreshold:   175,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("startup failed: %v", err)
	}
	t.Cleanup(app.DB.Close)

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv, app.DB
}

func createUser(t *testing.T, pool *pgxpool.Pool, email, password, role string) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	_, err = pool.Exec(context.Background(), `
		INSERT INTO users (email, password_hash, role_id)
		SELECT $1, $2, id FROM roles WHERE name = $3
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash, role_id = EXCLUDED.role_id`,
		email, hash, role)
	if err != nil {
		t.Fatalf("create %s user: %v", role, err)
	}
}

func createVacancy(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()
	var id string
	err := pool.QueryRow(context.Background(), `
		INSERT INTO vacancies (title, position, college)
		VALUES ('Instructor, Engineering', 'Instructor I', 'Engineering')
		RETURNING id`).Scan(&id)
	if err != nil {
		t.Fatalf("create vacancy: %v", err)
	}
	return id
}

func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func login(t *testing.T, srv *httptest.Server, email, password string) string {
	t.Helper()
	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d", email, status)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("login %s: no token in %s", email, env.Data)
	}
	return data.Token
}

func createApplication(t *testing.T, srv *httptest.Server, token, vacancyID, email string) string {
	t.Helper()
	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/applications", token, map[string]any{
		"vacancyId":     vacancyID,
		"firstName":     "Maria",
		"lastName":      "Santos",
		"email":         email,
		"position":      "Instructor I",
		"college":       "Engineering",
		"pdsUrl":        "https://files.example.com/pds.pdf",
		"transcriptUrl": "https://files.example.com/tor.pdf",
		"trainingsUrl":  "https://files.example.com/trainings.pdf",
		"employmentUrl": "https://files.example.com/coe.pdf",
	})
	if status != http.StatusCreated {
		t.Fatalf("create application: status %d body %s", status, env.Data)
	}
	var app struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &app); err != nil || app.ID == "" {
		t.Fatalf("create application: bad body %s", env.Data)
	}
	return app.ID
}

func TestHiringJourneyAutoQualification(t *testing.T) {
	srv, pool := startApp(t)
	run := fmt.Sprintf("%d", time.Now().UnixNano())

	hrEmail := "hr+" + run + "@test.local"
	deanEmail := "dean+" + run + "@test.local"
	evalEmail := "eval+" + run + "@test.local"
	createUser(t, pool, hrEmail, "pw-hr", auth.RoleHR)
	createUser(t, pool, deanEmail, "pw-dean", auth.RoleDean)
	createUser(t, pool, evalEmail, "pw-eval", auth.RoleEvaluator)
	vacancyID := createVacancy(t, pool)

	hrToken := login(t, srv, hrEmail, "pw-hr")
	deanToken := login(t, srv, deanEmail, "pw-dean")
	evalToken := login(t, srv, evalEmail, "pw-eval")

	appID := createApplication(t, srv, hrToken, vacancyID, "maria+"+run+"@test.local")

	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+"/endorse", hrToken, nil)
	if status != http.StatusOK {
		t.Fatalf("endorse: status %d, error %+v", status, env.Error)
	}

	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+"/dean-decision", deanToken,
		map[string]string{"decision": "approve"})
	if status != http.StatusOK {
		t.Fatalf("dean approve: status %d, error %+v", status, env.Error)
	}

	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+"/interview", hrToken,
		map[string]string{"interviewDate": "2026-09-07", "teachingDemoDate": "2026-09-08"})
	if status != http.StatusOK {
		t.Fatalf("schedule interview: status %d, error %+v", status, env.Error)
	}

	// 85 education + 25 experience + 65 professional development = 175.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/evaluations", evalToken, map[string]any{
		"applicationId": appID,
		"education":     map[string]any{"highestDegreePoints": 85},
		"experience":    map[string]any{"stateYears": 25},
		"professionalDevelopment": []map[string]any{
			{"code": "training_international", "units": 13},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("submit evaluation: status %d, error %+v", status, env.Error)
	}
	var submitted struct {
		Hired      bool   `json:"hired"`
		EmployeeNo string `json:"employeeId"`
		Evaluation struct {
			TotalScore     float64 `json:"totalScore"`
			Qualified      bool    `json:"qualified"`
			ContractStatus string  `json:"contractStatus"`
		} `json:"evaluation"`
	}
	if err := json.Unmarshal(env.Data, &submitted); err != nil {
		t.Fatalf("decode submit result: %v", err)
	}
	if submitted.Evaluation.TotalScore != 175 || !submitted.Evaluation.Qualified {
		t.Fatalf("evaluation = %+v", submitted.Evaluation)
	}
	if !submitted.Hired {
		t.Fatal("a qualifying evaluation hires the applicant")
	}
	if !strings.HasPrefix(submitted.EmployeeNo, "EMP-") {
		t.Fatalf("employee no = %q", submitted.EmployeeNo)
	}
	if submitted.Evaluation.ContractStatus != "approved" {
		t.Fatalf("contract status = %q, want approved", submitted.Evaluation.ContractStatus)
	}

	status, env = doJSON(t, srv, http.MethodGet, "/api/v1/applications/"+appID, hrToken, nil)
	if status != http.StatusOK {
		t.Fatalf("get application: status %d", status)
	}
	var app struct {
		Stage      string `json:"stage"`
		Status     string `json:"status"`
		EmployeeNo string `json:"employeeId"`
	}
	if err := json.Unmarshal(env.Data, &app); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if app.Stage != "HIRED" || app.Status != "HIRED" {
		t.Fatalf("application = %+v", app)
	}
	if app.EmployeeNo != submitted.EmployeeNo {
		t.Fatalf("employee no mismatch: %q vs %q", app.EmployeeNo, submitted.EmployeeNo)
	}

	status, env = doJSON(t, srv, http.MethodGet, "/api/v1/faculty/"+appID, hrToken, nil)
	if status != http.StatusOK {
		t.Fatalf("get faculty: status %d, error %+v", status, env.Error)
	}
	var faculty struct {
		EmployeeNo string `json:"employeeId"`
		FirstName  string `json:"firstName"`
	}
	if err := json.Unmarshal(env.Data, &faculty); err != nil {
		t.Fatalf("decode faculty: %v", err)
	}
	if faculty.EmployeeNo != submitted.EmployeeNo || faculty.FirstName != "Maria" {
		t.Fatalf("faculty = %+v", faculty)
	}
}

func TestHiringJourneyManualDecision(t *testing.T) {
	srv, pool := startApp(t)
	run := fmt.Sprintf("%d", time.Now().UnixNano())

	hrEmail := "hr2+" + run + "@test.local"
	deanEmail := "dean2+" + run + "@test.local"
	evalEmail := "eval2+" + run + "@test.local"
	createUser(t, pool, hrEmail, "pw-hr", auth.RoleHR)
	createUser(t, pool, deanEmail, "pw-dean", auth.RoleDean)
	createUser(t, pool, evalEmail, "pw-eval", auth.RoleEvaluator)
	vacancyID := createVacancy(t, pool)

	hrToken := login(t, srv, hrEmail, "pw-hr")
	deanToken := login(t, srv, deanEmail, "pw-dean")
	evalToken := login(t, srv, evalEmail, "pw-eval")

	appID := createApplication(t, srv, hrToken, vacancyID, "jun+"+run+"@test.local")

	for _, step := range []struct {
		path  string
		token string
		body  any
	}{
		{"/endorse", hrToken, nil},
		{"/dean-decision", deanToken, map[string]string{"decision": "approve"}},
		{"/interview", hrToken, map[string]string{"interviewDate": "2026-09-07"}},
	} {
		status, env := doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+step.path, step.token, step.body)
		if status != http.StatusOK {
			t.Fatalf("%s: status %d, error %+v", step.path, status, env.Error)
		}
	}

	// A below-threshold evaluation leaves the decision to HR.
	status, env := doJSON(t, srv, http.MethodPost, "/api/v1/evaluations", evalToken, map[string]any{
		"applicationId": appID,
		"education":     map[string]any{"highestDegreePoints": 60},
	})
	if status != http.StatusCreated {
		t.Fatalf("submit evaluation: status %d, error %+v", status, env.Error)
	}
	var submitted struct {
		Hired      bool `json:"hired"`
		Evaluation struct {
			ID        string `json:"id"`
			Qualified bool   `json:"qualified"`
		} `json:"evaluation"`
	}
	if err := json.Unmarshal(env.Data, &submitted); err != nil {
		t.Fatalf("decode submit result: %v", err)
	}
	if submitted.Hired || submitted.Evaluation.Qualified {
		t.Fatalf("below-threshold evaluation must not hire: %+v", submitted)
	}

	status, env = doJSON(t, srv, http.MethodGet, "/api/v1/applications/"+appID, hrToken, nil)
	if status != http.StatusOK {
		t.Fatalf("get application: status %d", status)
	}
	var app struct {
		Stage string `json:"stage"`
	}
	if err := json.Unmarshal(env.Data, &app); err != nil {
		t.Fatalf("decode application: %v", err)
	}
	if app.Stage != "EVALUATED" {
		t.Fatalf("stage = %q, want EVALUATED", app.Stage)
	}

	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+"/transition", hrToken,
		map[string]string{"target": "for_hiring"})
	if status != http.StatusOK {
		t.Fatalf("move to FOR_HIRING: status %d, error %+v", status, env.Error)
	}

	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+"/hire", hrToken, nil)
	if status != http.StatusOK {
		t.Fatalf("hire: status %d, error %+v", status, env.Error)
	}
	var hired struct {
		EmployeeNo string `json:"employeeId"`
	}
	if err := json.Unmarshal(env.Data, &hired); err != nil {
		t.Fatalf("decode hire result: %v", err)
	}
	if !strings.HasPrefix(hired.EmployeeNo, "EMP-") {
		t.Fatalf("employee no = %q", hired.EmployeeNo)
	}

	// HIRED is terminal; a second hire request is a conflict.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+appID+"/hire", hrToken, nil)
	if status != http.StatusConflict || env.Error == nil || env.Error.Code != "invalid_transition" {
		t.Fatalf("repeat hire: status %d, error %+v", status, env.Error)
	}

	// The pending contract is approved explicitly, backdated to the
	// committee meeting.
	status, env = doJSON(t, srv, http.MethodPost,
		"/api/v1/evaluations/"+submitted.Evaluation.ID+"/contract-decision", hrToken,
		map[string]string{"decision": "approve", "actionDate": "2026-09-10"})
	if status != http.StatusOK {
		t.Fatalf("contract decision: status %d, error %+v", status, env.Error)
	}
	var decided struct {
		ContractStatus string `json:"contractStatus"`
		ActionDate     string `json:"contractActionDate"`
		Contract       *struct {
			ContractNo string `json:"contractNo"`
		} `json:"contract"`
	}
	if err := json.Unmarshal(env.Data, &decided); err != nil {
		t.Fatalf("decode decision: %v", err)
	}
	if decided.ContractStatus != "approved" {
		t.Fatalf("contract status = %q", decided.ContractStatus)
	}
	if !strings.HasPrefix(decided.ActionDate, "2026-09-10") {
		t.Fatalf("contract action date = %q", decided.ActionDate)
	}
	if decided.Contract == nil || !strings.HasPrefix(decided.Contract.ContractNo, "C-") {
		t.Fatalf("contract = %+v", decided.Contract)
	}
}

func TestJourneyGuardRails(t *testing.T) {
	srv, pool := startApp(t)
	run := fmt.Sprintf("%d", time.Now().UnixNano())

	hrEmail := "hr3+" + run + "@test.local"
	deanEmail := "dean3+" + run + "@test.local"
	createUser(t, pool, hrEmail, "pw-hr", auth.RoleHR)
	createUser(t, pool, deanEmail, "pw-dean", auth.RoleDean)
	vacancyID := createVacancy(t, pool)

	hrToken := login(t, srv, hrEmail, "pw-hr")
	deanToken := login(t, srv, deanEmail, "pw-dean")

	// Unauthenticated requests are rejected at the permission gate.
	status, env := doJSON(t, srv, http.MethodGet, "/api/v1/applications", "", nil)
	if status != http.StatusUnauthorized || env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("anonymous list: status %d, error %+v", status, env.Error)
	}

	// Endorsement requires the document set.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications", hrToken, map[string]any{
		"vacancyId": vacancyID,
		"firstName": "Noel",
		"lastName":  "Cruz",
		"email":     "noel+" + run + "@test.local",
		"position":  "Instructor I",
		"college":   "Engineering",
		"pdsUrl":    "https://files.example.com/pds.pdf",
	})
	if status != http.StatusCreated {
		t.Fatalf("create application: status %d", status)
	}
	var app struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &app); err != nil {
		t.Fatalf("decode application: %v", err)
	}

	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+app.ID+"/endorse", hrToken, nil)
	if status != http.StatusUnprocessableEntity || env.Error == nil || env.Error.Code != "precondition_failed" {
		t.Fatalf("endorse without documents: status %d, error %+v", status, env.Error)
	}

	// A dean may never hire.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+app.ID+"/transition", deanToken,
		map[string]string{"target": "hired"})
	if status != http.StatusForbidden || env.Error == nil || env.Error.Code != "forbidden" {
		t.Fatalf("dean hire: status %d, error %+v", status, env.Error)
	}

	// Dean rejection requires remarks.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+app.ID+"/dean-decision", deanToken,
		map[string]string{"decision": "reject"})
	if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("dean reject without remarks: status %d, error %+v", status, env.Error)
	}

	// Out-of-order transitions surface as conflicts.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+app.ID+"/hire", hrToken, nil)
	if status != http.StatusConflict || env.Error == nil || env.Error.Code != "invalid_transition" {
		t.Fatalf("hire from APPLIED: status %d, error %+v", status, env.Error)
	}

	// A rejected application no longer accepts evaluations.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/applications/"+app.ID+"/transition", hrToken,
		map[string]string{"target": "rejected", "reason": "position withdrawn"})
	if status != http.StatusOK {
		t.Fatalf("reject application: status %d, error %+v", status, env.Error)
	}
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/evaluations", hrToken, map[string]any{
		"applicationId":       app.ID,
		"highestDegreePoints": 60,
	})
	if status != http.StatusConflict || env.Error == nil || env.Error.Code != "invalid_transition" {
		t.Fatalf("evaluate rejected application: status %d, error %+v", status, env.Error)
	}

	// Logout needs an authenticated session.
	status, env = doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", "", nil)
	if status != http.StatusUnauthorized || env.Error == nil || env.Error.Code != "unauthorized" {
		t.Fatalf("anonymous logout: status %d, error %+v", status, env.Error)
	}
	status, _ = doJSON(t, srv, http.MethodPost, "/api/v1/auth/logout", hrToken, nil)
	if status != http.StatusOK {
		t.Fatalf("logout: status %d", status)
	}
}
