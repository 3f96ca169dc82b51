package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/staff-desk-bot/internal/domain/slack"
	"github.com/diegoclair/staff-desk-bot/internal/messenger"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

type SlackHandler struct {
	bot           contract.BotService
	signingSecret string
}

func New(bot contract.BotService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		bot:           bot,
		signingSecret: signingSecret,
	}
}

// verify checks the Slack signature and hands back the request body
func (h *SlackHandler) verify(r *http.Request) ([]byte, int) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, http.StatusBadRequest
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		return nil, http.StatusUnauthorized
	}

	if _, err := verifier.Write(body); err != nil {
		return nil, http.StatusInternalServerError
	}

	if err := verifier.Ensure(); err != nil {
		return nil, http.StatusUnauthorized
	}

	return body, http.StatusOK
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, status := h.verify(r); status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	if cmd.Type == slackcmd.CmdHelp {
		h.respond(w, &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         slackcmd.GetHelpText(),
		})
		return
	}

	replies, err := h.bot.Submit(r.Context(), entity.InboundMessage{
		ChatUserID: s.UserID,
		ChannelID:  s.ChannelID,
		Text:       cmd.Text(),
	})
	if err != nil {
		log.Printf("Failed to process /staff %s from %s: %v", cmd.Type, s.UserID, err)
		h.respond(w, h.createErrorResponse("The bot is busy, please try again."))
		return
	}

	rendered := make([]string, len(replies))
	for i, reply := range replies {
		rendered[i] = messenger.Render(reply)
	}

	h.respond(w, &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.Join(rendered, "\n\n"),
	})
}

// HandleEvents acknowledges Events API callbacks at once and queues direct messages for the bot
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, status := h.verify(r)
	if status != http.StatusOK {
		w.WriteHeader(status)
		return
	}

	// Slack retries when the ack is late; the first delivery is already queued
	if r.Header.Get("X-Slack-Retry-Num") != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, challenge.Challenge)
		return

	case slackevents.CallbackEvent:
		if message, ok := event.InnerEvent.Data.(*slackevents.MessageEvent); ok {
			h.enqueueMessage(r, message)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) enqueueMessage(r *http.Request, ev *slackevents.MessageEvent) {
	if ev.BotID != "" || ev.User == "" || ev.ChannelType != "im" {
		return
	}
	if ev.SubType != "" && ev.SubType != "file_share" {
		return
	}

	msg := entity.InboundMessage{
		ChatUserID: ev.User,
		ChannelID:  ev.Channel,
		Text:       ev.Text,
	}

	if ev.Message != nil {
		for _, file := range ev.Message.Files {
			msg.Files = append(msg.Files, entity.SharedFile{
				ID:          file.ID,
				Name:        file.Name,
				DownloadURL: file.URLPrivateDownload,
			})
		}
	}

	if err := h.bot.Enqueue(r.Context(), msg); err != nil {
		log.Printf("Failed to queue message from %s: %v", ev.User, err)
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Printf("Failed to write Slack response: %v", err)
	}
}
