// internal/contact/intake.go
package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "dental-site/internal/common/errors"
	"dental-site/internal/common/logger"
	"dental-site/internal/common/metrics"
	"dental-site/internal/models"
)

const msgNotRecorded = "متأسفانه پیام شما ثبت نشد. لطفاً بعداً دوباره تلاش کنید یا تماس بگیرید."

// DefaultSendTimeout bounds one delivery attempt; on expiry the submission is stored.
const DefaultSendTimeout = 15 * time.Second

// Intake resolves every submission to success, stored or a list of errors.
type Intake struct {
	sender        Sender // nil when no transport is configured
	store         Store
	alerter       Alerter // optional
	recipient     string
	subjectPrefix string
	sendTimeout   time.Duration
	logger        logger.Logger
	now           func() time.Time
}

type Option func(*Intake)

func WithSender(s Sender) Option {
	return func(i *Intake) { i.sender = s }
}

func WithAlerter(a Alerter) Option {
	return func(i *Intake) { i.alerter = a }
}

func WithClock(now func() time.Time) Option {
	return func(i *Intake) { i.now = now }
}

func WithSendTimeout(d time.Duration) Option {
	return func(i *Intake) {
		if d > 0 {
			i.sendTimeout = d
		}
	}
}

func NewIntake(store Store, recipient, subjectPrefix string, log logger.Logger, opts ...Option) *Intake {
	i := &Intake{
		store:         store,
		recipient:     strings.TrimSpace(recipient),
		subjectPrefix: subjectPrefix,
		sendTimeout:   DefaultSendTimeout,
		logger:        log.WithFields(map[string]interface{}{"component": "contact-intake"}),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Handle validates, then tries the sender, then the store. Submissions are
// not deduplicated.
func (i *Intake) Handle(ctx context.Context, sub models.ContactSubmission, fallbackRecipient string) Result {
	sub = normalize(sub)

	if messages := Validate(sub); len(messages) > 0 {
		stdErr := apperrors.NewContactValidationError(messages)
		i.logger.Info("contact submission rejected", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"errors":    len(messages),
		})
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		return Result{Status: StatusNone, Errors: messages}
	}

	at := i.now()
	body := BuildBody(sub, at)
	result := i.deliver(ctx, sub, body, at, fallbackRecipient)

	label := string(result.Status)
	if result.Status == StatusNone {
		label = "failed"
	}
	metrics.ContactSubmissions.WithLabelValues(label).Inc()

	if result.Status != StatusNone {
		i.alert(ctx, sub)
	}
	return result
}

func (i *Intake) deliver(ctx context.Context, sub models.ContactSubmission, body string, at time.Time, fallbackRecipient string) Result {
	to := i.recipient
	if to == "" {
		to = strings.TrimSpace(fallbackRecipient)
	}

	if i.sender != nil && to != "" {
		n := models.Notification{
			To:      to,
			ReplyTo: sub.Email,
			Subject: i.subject(sub),
			Body:    body,
		}
		sendCtx, cancel := context.WithTimeout(ctx, i.sendTimeout)
		err := i.sender.Send(sendCtx, n)
		cancel()
		if err == nil {
			i.logger.Info("contact submission delivered", map[string]interface{}{
				"transport": i.sender.Name(),
			})
			return Result{Status: StatusSuccess, Errors: []string{}}
		}
		stdErr := apperrors.NewNotificationSendFailedError(i.sender.Name(), err)
		i.logger.Warn("delivery failed, storing submission", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"details":   stdErr.Details,
		})
	}

	path, err := i.store.Save(body, at)
	if err != nil {
		stdErr := apperrors.NewMessageStoreFailedError(err)
		i.logger.Error("contact submission lost", map[string]interface{}{
			"errorCode": string(stdErr.Code),
			"details":   stdErr.Details,
		})
		return Result{Status: StatusNone, Errors: []string{msgNotRecorded}}
	}

	i.logger.Info("contact submission stored", map[string]interface{}{"path": path})
	return Result{Status: StatusStored, Errors: []string{}}
}

func (i *Intake) alert(ctx context.Context, sub models.ContactSubmission) {
	if i.alerter == nil {
		return
	}
	text := fmt.Sprintf("پیام جدید از %s (%s)", sub.Name, sub.Email)
	if err := i.alerter.Alert(ctx, text); err != nil {
		i.logger.Warn("sms alert failed", map[string]interface{}{"error": err.Error()})
	}
}

func (i *Intake) subject(sub models.ContactSubmission) string {
	if i.subjectPrefix == "" {
		return sub.Name
	}
	return i.subjectPrefix + ": " + sub.Name
}

// BuildBody renders the plain-text notification.
func BuildBody(sub models.ContactSubmission, at time.Time) string {
	phone := sub.Phone
	if phone == "" {
		phone = "-"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "نام: %s\n", sub.Name)
	fmt.Fprintf(&b, "ایمیل: %s\n", sub.Email)
	fmt.Fprintf(&b, "تلفن: %s\n", phone)
	fmt.Fprintf(&b, "زمان: %s\n", at.Format(time.RFC3339))
	b.WriteString("\nپیام:\n")
	b.WriteString(sub.Message)
	b.WriteString("\n")
	return b.String()
}
