package notice

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/paatthya/console/core"
)

type (
	Repository interface {
		CreateNotice(ctx context.Context, n Notice) (Notice, error)
		// QueryNotices returns notices newest first.
		QueryNotices(ctx context.Context) ([]Notice, error)
		CreateMessage(ctx context.Context, m Message) (Message, error)
		// QueryMessages returns messages oldest first.
		QueryMessages(ctx context.Context) ([]Message, error)
	}

	// Recipients lists who gets notified of new notices.
	Recipients func(ctx context.Context) ([]mail.Address, error)

	Service struct {
		repo       Repository
		validate   *validator.Validate
		mailSvc    core.EmailService
		recipients Recipients
		logger     core.Logger
		nowFunc    func() time.Time
	}
)

// NewService returns the notice Service. New notices are mailed to recipients
// when both mailSvc and recipients are set.
func NewService(repo Repository, validate *validator.Validate, mailSvc core.EmailService, recipients Recipients, logger core.Logger) *Service {
	return &Service{
		repo:       repo,
		validate:   validate,
		mailSvc:    mailSvc,
		recipients: recipients,
		logger:     logger,
		nowFunc:    time.Now,
	}
}

func (svc *Service) Create(ctx context.Context, nn NewNotice, by core.CurrentUser) (Notice, error) {
	if err := nn.Validate(svc.validate); err != nil {
		return Notice{}, err
	}
	n, err := svc.repo.CreateNotice(ctx, Notice{
		Title:       nn.Title,
		Description: nn.Description,
		FileURL:     nn.FileURL,
		FileType:    nn.FileType,
		CreatedBy:   by.DisplayName(),
		CreatorUID:  by.UID(),
		Timestamp:   svc.nowFunc().UTC(),
	})
	if err != nil {
		return Notice{}, errors.Wrap(err, "creating notice")
	}
	svc.notify(ctx, n)
	return n, nil
}

func (svc *Service) Query(ctx context.Context) ([]Notice, error) {
	notices, err := svc.repo.QueryNotices(ctx)
	return notices, errors.Wrap(err, "querying notices")
}

func (svc *Service) SendMessage(ctx context.Context, nm NewMessage, by core.CurrentUser) (Message, error) {
	if err := nm.Validate(svc.validate); err != nil {
		return Message{}, err
	}
	m, err := svc.repo.CreateMessage(ctx, Message{
		Text:      nm.Text,
		Sender:    by.DisplayName(),
		SenderUID: by.UID(),
		Timestamp: svc.nowFunc().UTC(),
	})
	return m, errors.Wrap(err, "sending message")
}

func (svc *Service) Messages(ctx context.Context) ([]Message, error) {
	msgs, err := svc.repo.QueryMessages(ctx)
	return msgs, errors.Wrap(err, "querying messages")
}

func (svc *Service) notify(ctx context.Context, n Notice) {
	if svc.mailSvc == nil || svc.recipients == nil {
		return
	}
	to, err := svc.recipients(ctx)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("listing notice recipients: %v", err), err)
		return
	}
	if len(to) == 0 {
		return
	}
	data := map[string]interface{}{
		"Title":       n.Title,
		"Description": n.Description,
		"FileURL":     n.FileURL,
		"CreatedBy":   n.CreatedBy,
	}
	msgs := make([]*core.EmailMessage, 0, len(to))
	for _, addr := range to {
		msgs = append(msgs, &core.EmailMessage{
			To:           []mail.Address{addr},
			Subject:      "New notice: " + n.Title,
			TemplateName: "notice_posted",
			TemplateData: data,
		})
	}
	svc.mailSvc.SendMessages(msgs...)
}
