package categories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindu/internal/core/domain/category"
	c "remindu/internal/core/domain/common"
)

func TestToFields(t *testing.T) {
	cases := []struct {
		id          string
		body        string
		expected    category.Fields
		expectedErr error
	}{
		{
			id:   "complete",
			body: `{"name": "Gym", "icon": "fitness_center", "color": "#E0F2F1"}`,
			expected: category.Fields{
				Name:  "Gym",
				Icon:  category.IconFitnessCenter,
				Color: c.NewOptional(category.MatteMint, true),
			},
		},
		{
			id:       "missing-icon-and-color",
			body:     `{"name": "Gym"}`,
			expected: category.Fields{Name: "Gym"},
		},
		{
			id:          "unknown-icon",
			body:        `{"name": "Gym", "icon": "rocket"}`,
			expectedErr: category.ErrParseIcon,
		},
		{
			id:          "invalid-color",
			body:        `{"name": "Gym", "icon": "fitness_center", "color": "mint"}`,
			expectedErr: category.ErrParseColor,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			input := FieldsInput{}
			require.NoError(t, input.FromJSON(strings.NewReader(testcase.body)))

			fields, err := input.ToFields()

			if testcase.expectedErr != nil {
				assert.ErrorIs(t, err, testcase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testcase.expected, fields)
		})
	}
}
