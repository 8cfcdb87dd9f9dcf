package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"remindu/internal/app/deps"
	"remindu/internal/app/services"
	addcategory "remindu/internal/http/handlers/categories/add_category"
	listcategories "remindu/internal/http/handlers/categories/list_categories"
	removecategory "remindu/internal/http/handlers/categories/remove_category"
	selectcategory "remindu/internal/http/handlers/categories/select_category"
	updatecategory "remindu/internal/http/handlers/categories/update_category"
	"remindu/internal/http/handlers/events"
	getform "remindu/internal/http/handlers/form/get_form"
	submitform "remindu/internal/http/handlers/form/submit_form"
	updateform "remindu/internal/http/handlers/form/update_form"
	createreminder "remindu/internal/http/handlers/reminders/create_reminder"
	listreminders "remindu/internal/http/handlers/reminders/list_reminders"
	suggestdates "remindu/internal/http/handlers/suggestions/suggest_dates"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	return &http.Server{
		Handler: NewRouter(deps, s),
		Addr:    fmt.Sprintf("0.0.0.0:%d", deps.Config.Port),
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) http.Handler {
	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodGet, "/", listreminders.New(s.ListReminders))
	reminderRouter.Method(http.MethodPost, "/", createreminder.New(s.CreateReminder))

	formRouter := chi.NewRouter()
	formRouter.Method(http.MethodGet, "/", getform.New(s.GetForm))
	formRouter.Method(http.MethodPost, "/events", updateform.New(s.UpdateForm, deps.Now))
	formRouter.Method(http.MethodPost, "/submit", submitform.New(s.SubmitForm, deps.Now))

	selectCategory := selectcategory.New(s.SelectCategory)
	categoryRouter := chi.NewRouter()
	categoryRouter.Method(http.MethodGet, "/", listcategories.New(s.ListCategories))
	categoryRouter.Method(http.MethodPost, "/", addcategory.New(s.AddCategory))
	categoryRouter.Method(http.MethodDelete, "/selection", selectCategory)
	categoryRouter.Method(http.MethodPut, "/{categoryID}", updatecategory.New(s.UpdateCategory))
	categoryRouter.Method(http.MethodDelete, "/{categoryID}", removecategory.New(s.RemoveCategory))
	categoryRouter.Method(http.MethodPut, "/{categoryID}/selection", selectCategory)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/reminders", reminderRouter)
	router.Mount("/form", formRouter)
	router.Mount("/categories", categoryRouter)
	router.Method(http.MethodGet, "/suggestions", suggestdates.New(s.SuggestDates))
	router.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer))

	return router
}
