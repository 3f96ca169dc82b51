package contract

import (
	"context"
	"io"

	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// SlackClient defines the subset of the Slack Web API the bot relies on
// This allows mocking in tests while keeping the real implementation simple
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	OpenConversationContext(ctx context.Context, params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)
	UploadFileV2Context(ctx context.Context, params slack.UploadFileV2Parameters) (*slack.FileSummary, error)
	GetFileContext(ctx context.Context, downloadURL string, writer io.Writer) error
}

// Messenger delivers replies and files to chat users
type Messenger interface {
	SendText(ctx context.Context, chatUserID string, reply entity.Reply) error
	SendFile(ctx context.Context, chatUserID string, file entity.Attachment) error
	DownloadFile(ctx context.Context, file entity.SharedFile, w io.Writer) error
}
