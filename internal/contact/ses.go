// internal/contact/ses.go
package contact

import (
	"context"
	"fmt"

	"dental-site/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESAPI is the part of the SES client we use; tests substitute it.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESSender struct {
	client SESAPI
	from   string
}

func NewSESSender(client SESAPI, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

func (s *SESSender) Name() string { return "ses" }

func (s *SESSender) Send(ctx context.Context, n models.Notification) error {
	input := &ses.SendEmailInput{
		Source:      aws.String(s.from),
		Destination: &types.Destination{ToAddresses: []string{n.To}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(n.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(n.Body), Charset: aws.String("UTF-8")},
			},
		},
	}
	if n.ReplyTo != "" {
		input.ReplyToAddresses = []string{n.ReplyTo}
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
