// Package notify sends operational email through AWS SES. Used to alert the
// franchise team when a new inquiry or session signup arrives.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type Mailer struct {
	client *ses.Client
	from   string
	to     string
}

// NewMailer builds an SES-backed mailer. Returns an error when AWS
// credentials cannot be resolved from the environment.
func NewMailer(ctx context.Context, region, from, to string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Mailer{client: ses.NewFromConfig(cfg), from: from, to: to}, nil
}

// Send delivers a plain-text notification to the configured recipient.
func (m *Mailer) Send(ctx context.Context, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(m.from),
		Destination: &types.Destination{ToAddresses: []string{m.to}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body:    &types.Body{Text: &types.Content{Data: aws.String(body)}},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
