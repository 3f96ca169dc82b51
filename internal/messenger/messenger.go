package messenger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// Slack delivers bot output as direct messages
type Slack struct {
	client contract.SlackClient
}

func New(client contract.SlackClient) *Slack {
	return &Slack{client: client}
}

var (
	_ contract.Messenger   = (*Slack)(nil)
	_ contract.SlackClient = (*slack.Client)(nil)
)

func (s *Slack) SendText(ctx context.Context, chatUserID string, reply entity.Reply) error {
	_, _, err := s.client.PostMessageContext(ctx,
		chatUserID,
		slack.MsgOptionText(Render(reply), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	return nil
}

// SendFile uploads into the DM with the user; files cannot be shared to a bare user ID
func (s *Slack) SendFile(ctx context.Context, chatUserID string, file entity.Attachment) error {
	channel, _, _, err := s.client.OpenConversationContext(ctx, &slack.OpenConversationParameters{
		Users: []string{chatUserID},
	})
	if err != nil {
		return fmt.Errorf("failed to open conversation with %s: %w", chatUserID, err)
	}

	_, err = s.client.UploadFileV2Context(ctx, slack.UploadFileV2Parameters{
		Reader:         file.Content,
		FileSize:       file.Size,
		Filename:       file.Filename,
		Title:          file.Filename,
		InitialComment: file.Caption,
		Channel:        channel.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", file.Filename, err)
	}

	return nil
}

func (s *Slack) DownloadFile(ctx context.Context, file entity.SharedFile, w io.Writer) error {
	if file.DownloadURL == "" {
		return fmt.Errorf("file %s has no download URL", file.Name)
	}

	if err := s.client.GetFileContext(ctx, file.DownloadURL, w); err != nil {
		return fmt.Errorf("failed to download %s: %w", file.Name, err)
	}

	return nil
}

// Render turns a reply and its menu into Slack mrkdwn
func Render(reply entity.Reply) string {
	if len(reply.Options) == 0 {
		return reply.Text
	}

	options := make([]string, len(reply.Options))
	for i, option := range reply.Options {
		options[i] = "`" + option + "`"
	}

	return reply.Text + "\n\nReply with one of: " + strings.Join(options, " · ")
}
