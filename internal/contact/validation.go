// internal/contact/validation.go
package contact

import (
	"errors"
	"strings"

	"dental-site/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	msgNameRequired    = "لطفاً نام خود را وارد کنید."
	msgEmailRequired   = "لطفاً ایمیل خود را وارد کنید."
	msgEmailInvalid    = "ایمیل وارد شده معتبر نیست."
	msgMessageRequired = "لطفاً متن پیام را بنویسید."
	msgPhoneTooLong    = "شماره تلفن بیش از حد طولانی است."
	msgMessageTooLong  = "متن پیام بیش از حد طولانی است."
	msgInvalidForm     = "اطلاعات فرم نامعتبر است."
)

// fieldOrder fixes the order messages are reported in.
var fieldOrder = []string{"name", "email", "phone", "message"}

func normalize(sub models.ContactSubmission) models.ContactSubmission {
	return models.ContactSubmission{
		Name:    strings.TrimSpace(sub.Name),
		Email:   strings.TrimSpace(sub.Email),
		Phone:   strings.TrimSpace(sub.Phone),
		Message: strings.TrimSpace(sub.Message),
	}
}

// Validate returns human-readable messages, one per failing field.
func Validate(sub models.ContactSubmission) []string {
	err := validation.ValidateStruct(&sub,
		validation.Field(&sub.Name, validation.Required.Error(msgNameRequired)),
		validation.Field(&sub.Email,
			validation.Required.Error(msgEmailRequired),
			is.EmailFormat.Error(msgEmailInvalid),
		),
		validation.Field(&sub.Phone, validation.Length(0, 32).Error(msgPhoneTooLong)),
		validation.Field(&sub.Message,
			validation.Required.Error(msgMessageRequired),
			validation.RuneLength(0, 5000).Error(msgMessageTooLong),
		),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return []string{msgInvalidForm}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, field := range fieldOrder {
		if fe, ok := fieldErrs[field]; ok && fe != nil {
			messages = append(messages, fe.Error())
		}
	}
	return messages
}
