package validation_test

import (
	"testing"

	"marketing-site-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmailShape(t *testing.T) {
	valid := []string{
		"jane@example.com",
		"a@b.c",
		"first.last+tag@sub.example.co.uk",
		"x@localhost.localdomain",
	}
	for _, s := range valid {
		assert.True(t, validation.IsEmailShape(s), s)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"jane@",
		"jane@example",
		"jane@@example.com",
		"ja ne@example.com",
		"jane@exa mple.com",
		"jane@example.com ",
		"jane@example.\tcom",
		"jane @example.com",
		"jane@example.com\n",
	}
	for _, s := range invalid {
		assert.False(t, validation.IsEmailShape(s), "%q", s)
	}
}

type contactForm struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email_shape"`
	Phone string `validate:"email_shape"`
}

func TestRegisteredTags(t *testing.T) {
	v := validation.New()

	t.Run("Should pass a well formed struct", func(t *testing.T) {
		err := v.Struct(contactForm{Name: "Jane", Email: "jane@example.com"})
		assert.NoError(t, err)
	})

	t.Run("Should report required before shape", func(t *testing.T) {
		err := v.Struct(contactForm{Email: "nope"})
		require.Error(t, err)
		assert.True(t, validation.HasTag(err, "required"))
		assert.True(t, validation.HasTag(err, validation.TagEmailShape))
		assert.Equal(t, []string{
			"Name: is required",
			"Email: invalid email format",
		}, validation.FormatValidationErrors(err))
	})

	t.Run("Should not fire shape on an empty optional field", func(t *testing.T) {
		err := v.Struct(contactForm{Name: "Jane", Email: "jane@example.com", Phone: ""})
		assert.NoError(t, err)
	})
}
