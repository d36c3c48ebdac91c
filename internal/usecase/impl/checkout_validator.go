package impl

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"coffissimo/config"
	"coffissimo/internal/errors"
	"coffissimo/internal/usecase"

	"github.com/go-playground/validator/v10"
)

const slotLayout = "15:04"

var phonePattern = regexp.MustCompile(`^[\d\s\-+()]+$`)

// newCheckoutValidator registers the checkout form tags against the configured rules.
func newCheckoutValidator(cfg *config.CheckoutConfig, slots []usecase.PickupSlot) (*validator.Validate, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	rules := map[string]validator.Func{
		"customer_name": func(fl validator.FieldLevel) bool {
			return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= cfg.MinNameLength
		},
		"customer_phone": func(fl validator.FieldLevel) bool {
			phone := fl.Field().String()

			return utf8.RuneCountInString(phone) >= cfg.MinPhoneLength && phonePattern.MatchString(phone)
		},
		"pickup_slot": func(fl validator.FieldLevel) bool {
			value := fl.Field().String()

			return slices.ContainsFunc(slots, func(slot usecase.PickupSlot) bool { return slot.Value == value })
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, errors.Wrapf(err, "failed to register %s validation", tag)
		}
	}

	return validate, nil
}

// describeValidationErrors turns validator output into the form messages shown to the customer.
func describeValidationErrors(err error, cfg *config.CheckoutConfig) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		switch fieldErr.Tag() {
		case "customer_name":
			messages = append(messages, fmt.Sprintf("name must be at least %d characters", cfg.MinNameLength))
		case "customer_phone":
			messages = append(messages, "please enter a valid phone number")
		case "pickup_slot":
			messages = append(messages, fmt.Sprintf("pickup time %q is not an available slot", fieldErr.Value()))
		default:
			messages = append(messages, fieldErr.Error())
		}
	}

	return strings.Join(messages, "; ")
}

// buildPickupSlots lists HH:MM values from start to end inclusive, every interval.
func buildPickupSlots(cfg *config.CheckoutConfig) ([]usecase.PickupSlot, error) {
	start, err := time.Parse(slotLayout, cfg.SlotStart)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid checkout.slotStart %q", cfg.SlotStart)
	}
	end, err := time.Parse(slotLayout, cfg.SlotEnd)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid checkout.slotEnd %q", cfg.SlotEnd)
	}
	if cfg.SlotInterval <= 0 {
		return nil, errors.Errorf("invalid checkout.slotInterval %s", cfg.SlotInterval)
	}

	slots := []usecase.PickupSlot{}
	for t := start; !t.After(end); t = t.Add(cfg.SlotInterval) {
		slots = append(slots, usecase.PickupSlot{
			Value: t.Format(slotLayout),
			Label: t.Format("3:04 PM"),
		})
	}

	return slots, nil
}
