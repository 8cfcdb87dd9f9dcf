package updateform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"remindu/internal/core/domain/category"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/domain/reminder"
	"remindu/internal/core/services"
)

var Now = time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	container *form.FakeContainer
	publisher *events.FakePublisher
	service   services.Service[Input, Result]
}

func (s *testSuite) SetupTest() {
	s.container = form.NewFakeContainer(form.NewState(category.Registry{}))
	s.publisher = events.NewFakePublisher()
	s.service = New(logging.NewFakeLogger(), s.container, s.publisher, func() time.Time { return Now })
}

func TestUpdateFormService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestAppliesEventAndPublishes() {
	result, err := s.service.Run(context.Background(), Input{Event: form.DescriptionChanged{Description: "Buy milk"}})

	s.Require().NoError(err)
	s.Equal("Buy milk", result.State.Description)
	s.Equal("Buy milk", s.container.State.Description)
	s.Equal([]string{events.FORM_CHANGED}, s.publisher.Names())
}

func (s *testSuite) TestRepeatFlow() {
	for _, ev := range []form.Event{
		form.RepeatToggled{Enabled: true},
		form.RepeatDayToggled{Day: reminder.Saturday},
		form.RepeatDayToggled{Day: reminder.Sunday},
		form.RepeatDialogConfirmed{},
	} {
		_, err := s.service.Run(context.Background(), Input{Event: ev})
		s.Require().NoError(err)
	}

	s.True(s.container.State.RepeatEnabled)
	s.Equal("Sat, Sun", s.container.State.RepeatSummary())
}

func (s *testSuite) TestRejectsInvalidInput() {
	cases := []struct {
		id    string
		event form.Event
		err   error
	}{
		{id: "nil", event: nil, err: form.ErrUnknownEvent},
		{id: "category-added", event: form.CategoryAdded{}, err: form.ErrCategoryEventNotAllowed},
		{id: "category-selected", event: form.CategorySelected{ID: "gym"}, err: form.ErrCategoryEventNotAllowed},
		{id: "category-deselected", event: form.CategoryDeselected{}, err: form.ErrCategoryEventNotAllowed},
		{id: "closed-dialog", event: form.RepeatAllSelected{}, err: form.ErrRepeatDialogClosed},
		{id: "unknown-type", event: form.TypeSelected{}, err: reminder.ErrParseType},
	}

	for _, tc := range cases {
		s.Run(tc.id, func() {
			_, err := s.service.Run(context.Background(), Input{Event: tc.event})
			s.ErrorIs(err, tc.err)
		})
	}
	s.Empty(s.publisher.Published)
	s.Equal(form.PhaseIdle, s.container.State.Phase())
}
