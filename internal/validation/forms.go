// Package validation declares the request payloads accepted by the API and
// their schemas. Each input type carries a Validate method returning
// field-level errors, which handlers convert to the uniform errors map with
// FieldErrors. Business rules that span fields (discount below price, date
// ordering) live here too, so they are rejected before any DB work.
package validation

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/yoonsol/coffee-franchise-site/internal/model"
)

var phoneRx = regexp.MustCompile(`^[0-9-]+$`)

// FieldErrors flattens an ozzo validation.Errors into the {field: [messages]}
// shape the admin UI expects. A non-validation error yields nil so callers
// can fall back to a generic message.
func FieldErrors(err error) map[string][]string {
	var ve validation.Errors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for field, ferr := range ve {
		out[field] = append(out[field], ferr.Error())
	}
	return out
}

// ParseDate accepts the date formats the admin and public forms send:
// date-only or RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func dateRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required handles empties
	}
	if _, err := ParseDate(s); err != nil {
		return errors.New("must be a valid date")
	}
	return nil
}

func in(values []string) validation.Rule {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return validation.In(args...)
}

// ---- Categories ----

type CategoryInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (i CategoryInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required.Error("category name is required"), validation.RuneLength(1, 50)),
		validation.Field(&i.Status, validation.Required, in([]string{model.StatusActive, model.StatusInactive})),
	)
}

// ---- Menus ----

type MenuInput struct {
	CategoryID    uint64   `json:"categoryId"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	DiscountPrice *int64   `json:"discountPrice"`
	MarketingTags []string `json:"marketingTags"`
	TempOptions   []string `json:"temperatureOptions"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Status        string   `json:"status"`
}

func (i MenuInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.CategoryID, validation.Required.Error("category is required")),
		validation.Field(&i.Name, validation.Required.Error("menu name is required"), validation.RuneLength(1, 100)),
		validation.Field(&i.Price, validation.Required.Error("price is required"),
			validation.Min(int64(1)).Error("price must be greater than zero")),
		validation.Field(&i.DiscountPrice, validation.By(i.discountBelowPrice)),
		validation.Field(&i.MarketingTags, validation.Each(in([]string{model.TagNew, model.TagBest, model.TagEvent}))),
		validation.Field(&i.TempOptions, validation.Each(in([]string{model.TempHot, model.TempCold}))),
		validation.Field(&i.Description, validation.Required.Error("description is required")),
		validation.Field(&i.Status, validation.Required, in([]string{model.StatusActive, model.StatusInactive})),
	)
}

// discountBelowPrice enforces the menu invariant: a discount price, when
// present, is positive and strictly below the regular price.
func (i MenuInput) discountBelowPrice(value interface{}) error {
	p, _ := value.(*int64)
	if p == nil {
		return nil
	}
	if *p <= 0 {
		return errors.New("discount price must be greater than zero")
	}
	if *p >= i.Price {
		return errors.New("discount price must be less than price")
	}
	return nil
}

// ---- New-menu posters ----

type NewMenuInput struct {
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ImageURL  string `json:"imageUrl"`
}

func (i NewMenuInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required.Error("title is required"), validation.RuneLength(1, 200)),
		validation.Field(&i.StartDate, validation.Required.Error("start date is required"), validation.By(dateRule)),
		validation.Field(&i.EndDate, validation.Required.Error("end date is required"), validation.By(dateRule),
			validation.By(dateAfter(i.StartDate, "end date must not precede start date"))),
		validation.Field(&i.ImageURL, validation.Required.Error("image is required")),
	)
}

// dateAfter validates that the field date is >= the other date. Both must
// already be parseable; unparseable values are left to dateRule.
func dateAfter(other, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s == "" || other == "" {
			return nil
		}
		end, err1 := ParseDate(s)
		start, err2 := ParseDate(other)
		if err1 != nil || err2 != nil {
			return nil
		}
		if end.Before(start) {
			return errors.New(msg)
		}
		return nil
	}
}

// ---- Stores ----

type StoreInput struct {
	Name              string   `json:"name"`
	Region            string   `json:"region"`
	Address           string   `json:"address"`
	AdditionalAddress string   `json:"additionalAddress"`
	Phone             string   `json:"phone"`
	OperatingStatus   string   `json:"operatingStatus"`
	StoreType         string   `json:"storeType"`
	Options           []string `json:"options"`
	Images            []string `json:"images"`
}

func (i StoreInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required.Error("store name is required")),
		validation.Field(&i.Region, validation.Required, in(model.StoreRegions)),
		validation.Field(&i.Address, validation.Required.Error("address is required")),
		validation.Field(&i.Phone, validation.Required.Error("phone is required"),
			validation.Match(phoneRx).Error("phone may only contain digits and dashes")),
		validation.Field(&i.OperatingStatus, validation.Required,
			in([]string{model.StoreOpen, model.StoreClosed, model.StorePreparing, model.StoreVacation})),
		validation.Field(&i.StoreType, validation.Required, in([]string{model.StoreDirect, model.StoreFranchise})),
		validation.Field(&i.Options, validation.Each(in(model.StoreOptions))),
	)
}

// ---- Events ----

type EventInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"imageUrl"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	EventType    string   `json:"eventType"`
	TargetStores []string `json:"targetStores"`
	IsActive     *bool    `json:"isActive"`
}

func (i EventInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required.Error("title is required"), validation.RuneLength(1, 200)),
		validation.Field(&i.Description, validation.Required.Error("description is required")),
		validation.Field(&i.ImageURL, validation.Required.Error("image is required")),
		validation.Field(&i.StartDate, validation.Required.Error("start date is required"), validation.By(dateRule)),
		validation.Field(&i.EndDate, validation.Required.Error("end date is required"), validation.By(dateRule),
			validation.By(dateAfter(i.StartDate, "end date must not precede start date"))),
		validation.Field(&i.EventType, validation.Required, in(model.EventTypes)),
	)
}

// Active returns the isActive flag, defaulting to true when omitted.
func (i EventInput) Active() bool {
	if i.IsActive == nil {
		return true
	}
	return *i.IsActive
}

// ---- FAQs ----

type FAQInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Status   string `json:"status"`
}

func (i FAQInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Category, validation.Required, in(model.FAQCategories)),
		validation.Field(&i.Title, validation.Required.Error("title is required"), validation.RuneLength(1, 200)),
		validation.Field(&i.Content, validation.Required.Error("content is required")),
		validation.Field(&i.Status, validation.Required, in([]string{model.StatusActive, model.StatusInactive})),
	)
}

// ---- Public franchise inquiry ----

type InquiryInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Region  string `json:"region"`
	Message string `json:"message"`
}

func (i InquiryInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required.Error("name is required"), validation.RuneLength(1, 50)),
		validation.Field(&i.Phone, validation.Required.Error("phone is required"),
			validation.Match(phoneRx).Error("phone may only contain digits and dashes")),
		validation.Field(&i.Email, validation.Required.Error("email is required"), is.Email),
		validation.Field(&i.Message, validation.Required.Error("message is required"),
			validation.RuneLength(10, 2000).Error("message must be between 10 and 2000 characters")),
	)
}

// ---- Admin inquiry update ----

type InquiryUpdateInput struct {
	Status   string  `json:"status"`
	Response *string `json:"response"`
}

func (i InquiryUpdateInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Status, validation.Required, in([]string{model.InquiryPending, model.InquiryCompleted})),
	)
}

// ---- Startup sessions ----

type SessionInput struct {
	Round              int    `json:"round"`
	SessionDate        string `json:"sessionDate"`
	SessionTime        string `json:"sessionTime"`
	Location           string `json:"location"`
	AdditionalLocation string `json:"additionalLocation"`
	RegistrationStart  string `json:"registrationStart"`
	RegistrationEnd    string `json:"registrationEnd"`
	Status             string `json:"status"`
}

func (i SessionInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Round, validation.Required.Error("round is required"),
			validation.Min(1).Error("round must be positive")),
		validation.Field(&i.SessionDate, validation.Required.Error("session date is required"), validation.By(dateRule)),
		validation.Field(&i.SessionTime, validation.Required.Error("session time is required")),
		validation.Field(&i.Location, validation.Required, in(model.SessionLocations)),
		validation.Field(&i.RegistrationStart, validation.Required.Error("registration start is required"), validation.By(dateRule)),
		validation.Field(&i.RegistrationEnd, validation.Required.Error("registration end is required"), validation.By(dateRule),
			validation.By(dateAfter(i.RegistrationStart, "registration end must not precede registration start"))),
		validation.Field(&i.Status, in([]string{model.SessionWaiting, model.SessionAccepting, model.SessionClosed})),
	)
}

// ---- Public session signup ----

type ApplicantInput struct {
	SessionID    uint64 `json:"sessionId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Participants int    `json:"participants"`
}

func (i ApplicantInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.SessionID, validation.Required.Error("session is required")),
		validation.Field(&i.Name, validation.Required.Error("name is required"), validation.RuneLength(1, 50)),
		validation.Field(&i.Phone, validation.Required.Error("phone is required"),
			validation.Match(phoneRx).Error("phone may only contain digits and dashes")),
		validation.Field(&i.Email, validation.Required.Error("email is required"), is.Email),
		validation.Field(&i.Participants, validation.Required.Error("participant count is required"),
			validation.Min(1).Error("at least one participant"),
			validation.Max(10).Error("at most ten participants")),
	)
}

// ---- Auth ----

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (i LoginInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required.Error("username is required")),
		validation.Field(&i.Password, validation.Required.Error("password is required")),
	)
}

type PasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (i PasswordInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.CurrentPassword, validation.Required.Error("current password is required")),
		validation.Field(&i.NewPassword, validation.Required.Error("new password is required"),
			validation.RuneLength(8, 72).Error("new password must be between 8 and 72 characters")),
	)
}
