package services

import (
	"remindu/internal/app/deps"
	"remindu/internal/core/services"
	addcategory "remindu/internal/core/services/add_category"
	createreminder "remindu/internal/core/services/create_reminder"
	getform "remindu/internal/core/services/get_form"
	listcategories "remindu/internal/core/services/list_categories"
	listreminders "remindu/internal/core/services/list_reminders"
	removecategory "remindu/internal/core/services/remove_category"
	selectcategory "remindu/internal/core/services/select_category"
	submitform "remindu/internal/core/services/submit_form"
	suggestdates "remindu/internal/core/services/suggest_dates"
	updatecategory "remindu/internal/core/services/update_category"
	updateform "remindu/internal/core/services/update_form"
)

type Services struct {
	CreateReminder services.Service[createreminder.Input, createreminder.Result]
	ListReminders  services.Service[listreminders.Input, listreminders.Result]
	SuggestDates   services.Service[suggestdates.Input, suggestdates.Result]

	GetForm    services.Service[getform.Input, getform.Result]
	UpdateForm services.Service[updateform.Input, updateform.Result]
	SubmitForm services.Service[submitform.Input, submitform.Result]

	ListCategories services.Service[listcategories.Input, listcategories.Result]
	AddCategory    services.Service[addcategory.Input, addcategory.Result]
	UpdateCategory services.Service[updatecategory.Input, updatecategory.Result]
	RemoveCategory services.Service[removecategory.Input, removecategory.Result]
	SelectCategory services.Service[selectcategory.Input, selectcategory.Result]
}

func InitServices(deps *deps.Deps) *Services {
	createReminder := createreminder.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Form,
		deps.EventPublisher,
	)
	return &Services{
		CreateReminder: createReminder,
		ListReminders:  listreminders.New(deps.Logger, deps.ReminderRepository),
		SuggestDates:   suggestdates.New(deps.Now),

		GetForm:    getform.New(deps.Form, deps.Now),
		UpdateForm: updateform.New(deps.Logger, deps.Form, deps.EventPublisher, deps.Now),
		SubmitForm: submitform.New(
			deps.Logger,
			deps.Form,
			deps.CategoryRepository,
			createReminder,
			deps.EventPublisher,
			deps.Now,
		),

		ListCategories: listcategories.New(deps.Form),
		AddCategory: addcategory.New(
			deps.Logger,
			deps.Form,
			deps.CategoryRepository,
			deps.CategoryIdentityGenerator,
			deps.EventPublisher,
		),
		UpdateCategory: updatecategory.New(deps.Logger, deps.Form, deps.CategoryRepository, deps.EventPublisher),
		RemoveCategory: removecategory.New(deps.Logger, deps.Form, deps.CategoryRepository, deps.EventPublisher),
		SelectCategory: selectcategory.New(deps.Logger, deps.Form, deps.CategoryRepository, deps.EventPublisher),
	}
}
