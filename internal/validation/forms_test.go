package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMenu() MenuInput {
	return MenuInput{
		CategoryID:  1,
		Name:        "Americano",
		Price:       4500,
		Description: "Classic espresso with water",
		Status:      "ACTIVE",
	}
}

func TestMenuInputDiscountRules(t *testing.T) {
	i := validMenu()
	require.NoError(t, i.Validate())

	d := int64(5000)
	i.DiscountPrice = &d
	err := i.Validate()
	require.Error(t, err)
	fields := FieldErrors(err)
	require.NotNil(t, fields)
	assert.Contains(t, fields["discountPrice"][0], "less than price")

	d = 4000
	assert.NoError(t, i.Validate())

	// Equal to the regular price is not a discount.
	d = 4500
	err = i.Validate()
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err)["discountPrice"][0], "less than price")

	d = 0
	err = i.Validate()
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err)["discountPrice"][0], "greater than zero")
}

func TestMenuInputEnumMembership(t *testing.T) {
	i := validMenu()
	i.MarketingTags = []string{"NEW", "BEST"}
	i.TempOptions = []string{"HOT"}
	assert.NoError(t, i.Validate())

	i.MarketingTags = []string{"SHINY"}
	assert.Error(t, i.Validate())

	i.MarketingTags = nil
	i.TempOptions = []string{"LUKEWARM"}
	assert.Error(t, i.Validate())
}

func TestInquiryInputMessageBounds(t *testing.T) {
	i := InquiryInput{
		Name:    "Kim",
		Phone:   "010-1234-5678",
		Email:   "kim@example.com",
		Message: "too short",
	}
	err := i.Validate()
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err)["message"][0], "between 10 and 2000")

	i.Message = "I would like to open a franchise location downtown."
	assert.NoError(t, i.Validate())

	i.Message = strings.Repeat("a", 2001)
	assert.Error(t, i.Validate())
}

func TestInquiryInputPhoneFormat(t *testing.T) {
	i := InquiryInput{
		Name:    "Kim",
		Phone:   "call me maybe",
		Email:   "kim@example.com",
		Message: "I would like to open a franchise location downtown.",
	}
	err := i.Validate()
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err)["phone"][0], "digits and dashes")
}

func TestApplicantInputParticipantBounds(t *testing.T) {
	i := ApplicantInput{
		SessionID:    3,
		Name:         "Lee",
		Phone:        "010-9999-0000",
		Email:        "lee@example.com",
		Participants: 1,
	}
	assert.NoError(t, i.Validate())

	i.Participants = 11
	assert.Error(t, i.Validate())

	i.Participants = 0
	assert.Error(t, i.Validate())
}

func TestNewMenuInputDateOrdering(t *testing.T) {
	i := NewMenuInput{
		Title:     "Spring Latte",
		StartDate: "2026-04-01",
		EndDate:   "2026-03-01",
		ImageURL:  "https://cdn.example.com/latte.jpg",
	}
	err := i.Validate()
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err)["endDate"][0], "must not precede")

	i.EndDate = "2026-04-30"
	assert.NoError(t, i.Validate())

	i.EndDate = "not a date"
	assert.Error(t, i.Validate())
}

func TestStoreInputEnums(t *testing.T) {
	i := StoreInput{
		Name:            "Gangnam Branch",
		Region:          "SEOUL",
		Address:         "123 Teheran-ro",
		Phone:           "02-555-1234",
		OperatingStatus: "OPEN",
		StoreType:       "FRANCHISE",
		Options:         []string{"PARKING", "WIFI"},
	}
	assert.NoError(t, i.Validate())

	i.Region = "JEJU"
	assert.Error(t, i.Validate())

	i.Region = "SEOUL"
	i.Options = []string{"HELIPAD"}
	assert.Error(t, i.Validate())
}

func TestFieldErrorsNonValidation(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}
