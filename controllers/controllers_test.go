package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Norne9/pravda-server/controllers"
	"github.com/Norne9/pravda-server/middlewares"
	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testEnv struct {
	router *gin.Engine
	store  *store.GormStore
	auth   *services.AuthService
	admin  *models.User
	worker *models.User
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ScheduleEntry{},
		&models.RevenueEntry{},
		&models.PayoutRecord{},
	))

	st := store.NewGormStore(db)
	auth := services.NewAuthService(st)
	salary := services.NewSalaryService(st)

	admin := &models.User{Login: "admin", Name: "Admin", IsAdmin: true}
	require.NoError(t, auth.AddUser(admin))
	worker := &models.User{Login: "worker", Name: "Worker", IsWorker: true, Pay: 100, Percent: 50}
	require.NoError(t, auth.AddUser(worker))

	authCtrl := controllers.NewAuthController(auth)
	userCtrl := controllers.NewUserController(st, auth)
	scheduleCtrl := controllers.NewScheduleController(st)
	revenueCtrl := controllers.NewRevenueController(st)
	payoutCtrl := controllers.NewPayoutController(st)
	salaryCtrl := controllers.NewSalaryController(salary)

	r := gin.New()
	r.POST("/login", authCtrl.Login)
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(auth))
	{
		api.GET("/user", userCtrl.GetUserInfo)
		api.POST("/user/password", userCtrl.ChangePassword)
		api.POST("/user/names", userCtrl.GetUserNames)
		api.GET("/schedule/:year/:month", scheduleCtrl.GetSchedule)
		api.POST("/schedule/workday", scheduleCtrl.SetWorkday)

		adminGroup := api.Group("/admin")
		adminGroup.Use(middlewares.AdminCheck())
		{
			adminGroup.GET("/users", userCtrl.GetUsers)
			adminGroup.POST("/users", userCtrl.AddUser)
			adminGroup.PATCH("/users", userCtrl.UpdateUser)
			adminGroup.POST("/users/reset-password", userCtrl.ResetPassword)
			adminGroup.GET("/revenue/:year/:month", revenueCtrl.GetRevenue)
			adminGroup.POST("/revenue", revenueCtrl.SetRevenue)
			adminGroup.GET("/payouts/:year/:month", payoutCtrl.GetPayouts)
			adminGroup.POST("/payouts", payoutCtrl.SetPayout)
			adminGroup.GET("/salary/:year/:month", salaryCtrl.GetSalaryCalculation)
		}
	}

	return &testEnv{router: r, store: st, auth: auth, admin: admin, worker: worker}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func (e *testEnv) login(t *testing.T, login, password string) string {
	t.Helper()
	w, resp := e.do(t, http.MethodPost, "/login", "", map[string]string{
		"login": login, "password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())
	data := resp["data"].(map[string]interface{})
	return data["token"].(string)
}

func TestLoginEndpoint(t *testing.T) {
	env := setupTestEnv(t)

	w, resp := env.do(t, http.MethodPost, "/login", "", map[string]string{
		"login": "worker", "password": services.DefaultPassword,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["status"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, float64(env.worker.ID), data["user_id"])

	w, resp = env.do(t, http.MethodPost, "/login", "", map[string]string{
		"login": "worker", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "login_failed", resp["code"])
}

func TestAuthGate(t *testing.T) {
	env := setupTestEnv(t)

	// No token at all.
	w, resp := env.do(t, http.MethodGet, "/api/user", "", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", resp["code"])

	// A token nobody holds.
	w, resp = env.do(t, http.MethodGet, "/api/user", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unknown_token", resp["code"])

	// A real one.
	token := env.login(t, "worker", services.DefaultPassword)
	w, resp = env.do(t, http.MethodGet, "/api/user", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "worker", data["login"])
	// Credentials must never appear in the profile payload.
	body := w.Body.String()
	assert.NotContains(t, body, "pwd")
	assert.NotContains(t, body, "salt")
}

func TestAdminGate(t *testing.T) {
	env := setupTestEnv(t)

	workerToken := env.login(t, "worker", services.DefaultPassword)
	w, resp := env.do(t, http.MethodGet, "/api/admin/users", workerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", resp["code"])

	adminToken := env.login(t, "admin", services.DefaultPassword)
	w, resp = env.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp["data"], 2)
}

func TestWorkdayToggleRoundTrip(t *testing.T) {
	env := setupTestEnv(t)
	token := env.login(t, "worker", services.DefaultPassword)

	w, resp := env.do(t, http.MethodPost, "/api/schedule/workday", token, map[string]interface{}{
		"year": 2024, "month": 3, "day": 5, "is_working": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	schedule := resp["data"].(map[string]interface{})["schedule"].(map[string]interface{})
	days := schedule[fmt.Sprint(env.worker.ID)].([]interface{})
	assert.Equal(t, true, days[5])

	w, resp = env.do(t, http.MethodPost, "/api/schedule/workday", token, map[string]interface{}{
		"year": 2024, "month": 3, "day": 5, "is_working": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	schedule = resp["data"].(map[string]interface{})["schedule"].(map[string]interface{})
	assert.Empty(t, schedule, "toggling off must leave no trace of the day")
}

func TestAddUserDuplicate(t *testing.T) {
	env := setupTestEnv(t)
	adminToken := env.login(t, "admin", services.DefaultPassword)

	w, _ := env.do(t, http.MethodPost, "/api/admin/users", adminToken, map[string]interface{}{
		"login": "newbie", "name": "Newbie", "is_worker": true, "pay": 80, "percent": 10,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, resp := env.do(t, http.MethodPost, "/api/admin/users", adminToken, map[string]interface{}{
		"login": "newbie", "name": "Imposter",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "user_exist", resp["code"])

	users, err := env.store.GetUsers(nil)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestResetPasswordInvalidatesToken(t *testing.T) {
	env := setupTestEnv(t)
	workerToken := env.login(t, "worker", services.DefaultPassword)
	adminToken := env.login(t, "admin", services.DefaultPassword)

	w, _ := env.do(t, http.MethodPost, "/api/admin/users/reset-password", adminToken, map[string]interface{}{
		"id": env.worker.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := env.do(t, http.MethodGet, "/api/user", workerToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unknown_token", resp["code"])
}

func TestRevenueUpsertEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	adminToken := env.login(t, "admin", services.DefaultPassword)

	w, _ := env.do(t, http.MethodPost, "/api/admin/revenue", adminToken, map[string]interface{}{
		"year": 2024, "month": 3, "day": 5, "with_percent": 100, "without_percent": 40,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := env.do(t, http.MethodPost, "/api/admin/revenue", adminToken, map[string]interface{}{
		"year": 2024, "month": 3, "day": 5, "with_percent": 250, "without_percent": 60,
	})
	require.Equal(t, http.StatusOK, w.Code)
	revenue := resp["data"].(map[string]interface{})["revenue"].([]interface{})
	require.Len(t, revenue, 1)
	entry := revenue[0].(map[string]interface{})
	assert.Equal(t, 250.0, entry["with_percent"])
}

func TestUpdateUserKeepsCredentials(t *testing.T) {
	env := setupTestEnv(t)
	adminToken := env.login(t, "admin", services.DefaultPassword)

	w, _ := env.do(t, http.MethodPatch, "/api/admin/users", adminToken, map[string]interface{}{
		"id": env.worker.ID, "name": "Renamed", "is_worker": true, "pay": 120, "percent": 30,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Worker can still log in with the unchanged password.
	token := env.login(t, "worker", services.DefaultPassword)
	w, resp := env.do(t, http.MethodGet, "/api/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Renamed", data["name"])
	assert.Equal(t, 120.0, data["pay"])
}
