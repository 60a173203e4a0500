package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	From  string   `query:"from" validate:"omitempty,datetime=2006-01-02"`
	Slugs []string `json:"slugs" validate:"required,min=1,dive,required"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{From: "2024-01-31", Slugs: []string{"listings-by-city"}}))
	require.NoError(t, v.Validate(&sample{Slugs: []string{"a"}}))

	err := v.Validate(&sample{From: "31/01/2024"})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "from: datetime=2006-01-02")
	assert.Contains(t, msg, "slugs: required")
}

func TestDescribe_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
