// internal/contact/sms.go
package contact

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMSAlerter texts the clinic's phone through SNS.
type SMSAlerter struct {
	client SNSAPI
	phone  string
}

func NewSMSAlerter(client SNSAPI, phone string) *SMSAlerter {
	return &SMSAlerter{client: client, phone: phone}
}

func (a *SMSAlerter) Alert(ctx context.Context, text string) error {
	_, err := a.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(a.phone),
		Message:     aws.String(text),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
