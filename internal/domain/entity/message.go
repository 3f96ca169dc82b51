package entity

import "io"

// InboundMessage is a chat event addressed to the bot
type InboundMessage struct {
	ChatUserID string
	ChannelID  string
	Text       string
	Files      []SharedFile
}

// SharedFile is a file attached to an inbound message
type SharedFile struct {
	ID          string
	Name        string
	DownloadURL string
}

// Reply is a text answer to the sender of an inbound message
type Reply struct {
	Text    string
	Options []string
}

// Attachment is a file sent to a chat user
type Attachment struct {
	Filename string
	Caption  string
	Content  io.Reader
	Size     int
}
