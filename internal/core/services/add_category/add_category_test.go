package addcategory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
	"remindu/internal/core/domain/events"
	"remindu/internal/core/domain/form"
	"remindu/internal/core/domain/logging"
	"remindu/internal/core/services"
)

type testSuite struct {
	suite.Suite
	container  *form.FakeContainer
	repository *category.FakeRepository
	publisher  *events.FakePublisher
	logger     *logging.FakeLogger
	service    services.Service[Input, Result]
}

func (s *testSuite) SetupTest() {
	s.container = form.NewFakeContainer(form.NewState(category.Registry{}))
	s.repository = category.NewFakeRepository()
	s.publisher = events.NewFakePublisher()
	s.logger = logging.NewFakeLogger()
	s.service = New(s.logger, s.container, s.repository, category.NewFakeIdentityGenerator(), s.publisher)
}

func TestAddCategoryService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestAddAppendsInOrder() {
	for _, name := range []string{"Gym", "Work"} {
		_, err := s.service.Run(context.Background(), Input{Fields: category.Fields{
			Name:  name,
			Icon:  category.IconWork,
			Color: c.NewOptional(category.MatteBlue, true),
		}})
		s.Require().NoError(err)
	}

	list := s.container.State.Categories.List()
	s.Require().Len(list, 2)
	s.Equal("Gym", list[0].Name)
	s.Equal(category.ID("category-1"), list[0].ID)
	s.Equal("Work", list[1].Name)
	s.Equal(2, s.repository.Registry.Len())
	s.Equal([]string{events.CATEGORIES_CHANGED, events.CATEGORIES_CHANGED}, s.publisher.Names())
}

func (s *testSuite) TestValidationOrder() {
	cases := []struct {
		id     string
		fields category.Fields
		err    error
	}{
		{id: "nothing", fields: category.Fields{}, err: category.ErrCategoryNameRequired},
		{id: "no-icon-no-color", fields: category.Fields{Name: "Gym"}, err: category.ErrCategoryIconRequired},
		{id: "no-color", fields: category.Fields{Name: "Gym", Icon: category.IconSpa}, err: category.ErrCategoryColorRequired},
		{id: "no-name", fields: category.Fields{Icon: category.IconSpa, Color: c.NewOptional(category.MatteMint, true)}, err: category.ErrCategoryNameRequired},
	}

	for _, tc := range cases {
		s.Run(tc.id, func() {
			_, err := s.service.Run(context.Background(), Input{Fields: tc.fields})
			s.ErrorIs(err, tc.err)
		})
	}
	s.Equal(0, s.container.State.Categories.Len())
	s.Empty(s.repository.Saved)
}

func (s *testSuite) TestSaveFailureKeepsCategory() {
	s.repository.SaveError = errors.New("disk full")

	result, err := s.service.Run(context.Background(), Input{Fields: category.Fields{
		Name:  "Gym",
		Icon:  category.IconFitnessCenter,
		Color: c.NewOptional(category.MatteMint, true),
	}})

	s.Require().NoError(err)
	s.False(result.Persisted)
	s.Equal(1, s.container.State.Categories.Len())
	s.Contains(s.logger.Levels(), logging.WARNING)
}
