package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/r3labs/sse/v2"
	"github.com/stretchr/testify/suite"

	"remindu/internal/app/deps"
	"remindu/internal/app/services"
	"remindu/internal/config"
	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/storage"
	dbcategory "remindu/internal/db/category"
	"remindu/internal/db/kv"
	dbreminder "remindu/internal/db/reminder"
	eventpublisher "remindu/internal/implementations/event_publisher"
	formstate "remindu/internal/implementations/form_state"
	"remindu/internal/implementations/identity"
)

type testSuite struct {
	suite.Suite
	store     *kv.MemoryStore
	sseServer *sse.Server
	router    http.Handler
}

func (s *testSuite) SetupTest() {
	s.store = kv.NewMemoryStore()
	s.sseServer = sse.New()
	log := logging.NewFakeLogger()
	uuid := identity.NewUUID()

	d := &deps.Deps{
		Config:                    &config.Config{Port: 8080, AllowedOrigins: []string{"*"}},
		Logger:                    log,
		SseServer:                 s.sseServer,
		Now:                       func() time.Time { return time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC) },
		Store:                     s.store,
		CategoryStore:             s.store,
		ReminderRepository:        dbreminder.NewKVReminderRepository(context.Background(), s.store, uuid, log),
		CategoryRepository:        dbcategory.NewKVCategoryRepository(s.store),
		Form:                      formstate.New(form.NewState(category.Registry{})),
		ReminderIdentityGenerator: uuid,
		CategoryIdentityGenerator: uuid,
		EventPublisher:            eventpublisher.NewSSE(s.sseServer),
	}
	s.router = NewRouter(d, services.InitServices(d))
}

func (s *testSuite) TearDownTest() {
	s.sseServer.Close()
}

func TestApp(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) do(method, url, body string) (int, map[string]any) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	result := map[string]any{}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &result), rr.Body.String())
	return rr.Code, result
}

func (s *testSuite) TestCreateAndListReminders() {
	status, _ := s.do(http.MethodPost, "/reminders", `{"description": "Buy milk", "dateTime": "2024-01-10T18:00"}`)
	s.Equal(http.StatusCreated, status)
	status, _ = s.do(http.MethodPost, "/reminders", `{"description": "Gym", "dateTime": "2024-01-11T09:00"}`)
	s.Equal(http.StatusCreated, status)

	status, body := s.do(http.MethodGet, "/reminders?date=2024-01-10", "")
	s.Equal(http.StatusOK, status)
	s.Equal(float64(1), body["totalCount"])
	reminders := body["reminders"].([]any)
	s.Equal("Buy milk", reminders[0].(map[string]any)["description"])

	status, body = s.do(http.MethodGet, "/reminders", "")
	s.Equal(http.StatusOK, status)
	s.Equal(float64(2), body["totalCount"])

	_, err := s.store.Get(context.Background(), storage.REMINDERS_KEY)
	s.NoError(err)
}

func (s *testSuite) TestCreateReminderWithoutDescription() {
	status, body := s.do(http.MethodPost, "/reminders", `{"description": "", "dateTime": "2024-01-10T18:00"}`)

	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("Please enter a reminder description", body["error"])
	_, body = s.do(http.MethodGet, "/reminders", "")
	s.Equal(float64(0), body["totalCount"])
}

func (s *testSuite) TestSuggestions() {
	status, body := s.do(http.MethodGet, "/suggestions", "")

	s.Equal(http.StatusOK, status)
	s.Equal("2024-01-10T14:00:00", body["now"])
	suggestions := body["suggestions"].([]any)
	s.Len(suggestions, 5)
	s.Equal("2024-01-10T18:00:00", suggestions[0].(map[string]any)["at"])
}

func (s *testSuite) TestFormFlow() {
	status, body := s.do(
		http.MethodPost,
		"/categories",
		`{"name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"}`,
	)
	s.Require().Equal(http.StatusCreated, status)
	categoryID := body["category"].(map[string]any)["id"].(string)

	status, _ = s.do(http.MethodPut, "/categories/"+categoryID+"/selection", "")
	s.Require().Equal(http.StatusOK, status)

	for _, event := range []string{
		`{"type": "description_changed", "description": "Leg day"}`,
		`{"type": "date_time_selected", "dateTime": "2024-01-11T09:00"}`,
		`{"type": "repeat_toggled", "enabled": true}`,
		`{"type": "repeat_day_toggled", "day": 4}`,
		`{"type": "repeat_dialog_confirmed"}`,
	} {
		status, _ = s.do(http.MethodPost, "/form/events", event)
		s.Require().Equal(http.StatusOK, status, event)
	}

	status, body = s.do(http.MethodGet, "/form", "")
	s.Equal(http.StatusOK, status)
	s.Equal("editing", body["phase"])
	s.Equal("Thu", body["repeatSummary"])
	s.Empty(body["suggestions"])

	status, body = s.do(http.MethodPost, "/form/submit", "")
	s.Require().Equal(http.StatusCreated, status)
	created := body["reminder"].(map[string]any)
	s.Equal("Leg day", created["description"])
	s.Equal([]any{float64(4)}, created["repeatDays"])
	s.Equal(categoryID, created["category"].(map[string]any)["id"])
	s.Equal(true, body["persisted"])
	s.Equal("idle", body["form"].(map[string]any)["phase"])
}

func (s *testSuite) TestSubmitEmptyForm() {
	status, body := s.do(http.MethodPost, "/form/submit", "")

	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("Please enter a reminder description", body["error"])
}

func (s *testSuite) TestCategoryEditing() {
	status, body := s.do(
		http.MethodPost,
		"/categories",
		`{"name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"}`,
	)
	s.Require().Equal(http.StatusCreated, status)
	categoryID := body["category"].(map[string]any)["id"].(string)

	status, body = s.do(
		http.MethodPut,
		"/categories/"+categoryID,
		`{"name": "Swimming", "icon": "book", "color": "#E3F2FD"}`,
	)
	s.Equal(http.StatusOK, status)
	s.Equal("Swimming", body["category"].(map[string]any)["name"])

	status, _ = s.do(http.MethodPut, "/categories/unknown", `{"name": "X", "icon": "book", "color": "#E3F2FD"}`)
	s.Equal(http.StatusNotFound, status)

	status, body = s.do(http.MethodDelete, "/categories/"+categoryID, "")
	s.Equal(http.StatusOK, status)
	s.Empty(body["categories"].(map[string]any)["categories"])

	status, body = s.do(http.MethodGet, "/categories", "")
	s.Equal(http.StatusOK, status)
	s.Empty(body["categories"])
	s.Nil(body["selected"])

	_, err := s.store.Get(context.Background(), storage.CATEGORIES_KEY)
	s.NoError(err)
}
