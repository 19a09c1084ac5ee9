// internal/application/notifier.go
package application

import (
	"context"
	"fmt"

	"grant-portal/internal/common/config"
	apperrors "grant-portal/internal/common/errors"
	"grant-portal/internal/common/logger"
	"grant-portal/internal/common/metrics"
	"grant-portal/internal/models"

	commonaws "grant-portal/internal/common/aws"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Interfaces for mocking the AWS clients in tests.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// OperatorNotifier emails a fixed operator address after each persisted
// submission, with an optional SMS channel. Delivery is best-effort: the
// caller logs failures and never rolls back the persisted record.
type OperatorNotifier struct {
	cfg       config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewOperatorNotifier(ctx context.Context, cfg config.NotificationConfig, region string, log logger.Logger) (*OperatorNotifier, error) {
	sesClient, err := commonaws.NewSESClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("init SES client: %w", err)
	}
	snsClient, err := commonaws.NewSNSClient(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("init SNS client: %w", err)
	}

	return &OperatorNotifier{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "operator-notifier"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}, nil
}

// NewOperatorNotifierWithClients wires pre-built clients, used by tests.
func NewOperatorNotifierWithClients(cfg config.NotificationConfig, sesClient SESService, snsClient SNSService, log logger.Logger) *OperatorNotifier {
	return &OperatorNotifier{
		cfg:       cfg,
		logger:    log.WithFields(map[string]interface{}{"component": "operator-notifier"}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

// NotifySubmission sends the operator summary for one persisted application.
func (n *OperatorNotifier) NotifySubmission(ctx context.Context, app *models.Application) error {
	subject := fmt.Sprintf("New Grant Application: %s", app.FullName)
	body := fmt.Sprintf(
		"New Application Received.\nName: %s\nID: %s\nSigned: %s\nReference: %s",
		app.FullName, app.GrantID, app.Signature, app.ID,
	)

	emailSent := false
	smsSent := false

	if n.cfg.Email.Enabled {
		if err := n.sendEmail(ctx, n.cfg.Email.OperatorEmail, subject, body); err != nil {
			metrics.NotificationsSent.WithLabelValues("email", "failed").Inc()
			return apperrors.NewNotificationSendFailedError("email", err)
		}
		metrics.NotificationsSent.WithLabelValues("email", "sent").Inc()
		emailSent = true
	}

	if n.cfg.SMS.Enabled && n.cfg.SMS.OperatorPhone != "" {
		if err := n.sendSMS(ctx, n.cfg.SMS.OperatorPhone, body); err != nil {
			metrics.NotificationsSent.WithLabelValues("sms", "failed").Inc()
			return apperrors.NewNotificationSendFailedError("sms", err)
		}
		metrics.NotificationsSent.WithLabelValues("sms", "sent").Inc()
		smsSent = true
	}

	if !emailSent && !smsSent {
		n.logger.Debug("operator notification disabled", map[string]interface{}{
			"applicationId": app.ID,
		})
	}
	return nil
}

func (n *OperatorNotifier) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.cfg.Email.FromEmail),
	})
	return err
}

func (n *OperatorNotifier) sendSMS(ctx context.Context, to, message string) error {
	_, err := n.snsClient.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	})
	return err
}
