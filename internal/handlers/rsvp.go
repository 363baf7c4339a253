package handlers

import (
	"context"
	"net/url"
	"sort"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/hy-wedding/rsvp-api/internal/config"
	"github.com/hy-wedding/rsvp-api/internal/models"
	"github.com/hy-wedding/rsvp-api/internal/notifier"
	"github.com/hy-wedding/rsvp-api/internal/redirect"
	"github.com/hy-wedding/rsvp-api/internal/store"
	"github.com/hy-wedding/rsvp-api/internal/validate"
)

type RSVPHandler struct {
	store    store.RSVPStore
	notifier notifier.Notifier
	cfg      *config.Config
}

// NewRSVPHandler wires the submission pipeline. notifier may be nil
// when no announcement channel is configured.
func NewRSVPHandler(s store.RSVPStore, n notifier.Notifier, cfg *config.Config) *RSVPHandler {
	return &RSVPHandler{store: s, notifier: n, cfg: cfg}
}

// SubmitRequest carries the raw form state as the browser sent it:
// an untyped key/value map whose values are strings or string lists.
// No structural trust is placed in it; the validator owns coercion.
type SubmitRequest struct {
	Body map[string]any `doc:"Raw RSVP form fields"`
}

type SubmitResponse struct {
	Body struct {
		ID                  string `json:"id" doc:"Identifier of the stored RSVP record"`
		DuplicateSubmission bool   `json:"duplicate_submission" doc:"An earlier RSVP with the same email already exists"`
		RedirectURL         string `json:"redirect_url" doc:"Confirmation page the form should navigate to"`
	}
}

// HandleSubmit runs the whole intake pipeline: validate, advisory
// duplicate check, single durable write, redirect handoff. On any
// validation failure the store is never touched and every violated
// field is reported at once.
func (h *RSVPHandler) HandleSubmit(ctx context.Context, input *SubmitRequest) (*SubmitResponse, error) {
	fields, ferrs := validate.Submission(input.Body)
	if len(ferrs) > 0 {
		names := make([]string, 0, len(ferrs))
		for name := range ferrs {
			names = append(names, name)
		}
		sort.Strings(names)
		details := make([]error, 0, len(names))
		for _, name := range names {
			details = append(details, &huma.ErrorDetail{
				Message:  ferrs[name],
				Location: "body." + name,
			})
		}
		return nil, huma.Error422UnprocessableEntity("入力内容をご確認ください", details...)
	}

	// Advisory only: two near-simultaneous submissions can both pass
	// this check, and a failed check never blocks the write.
	duplicate := false
	if exists, err := h.store.HasSubmission(ctx, fields.Email); err != nil {
		log.Warn().Err(err).Msg("duplicate check failed")
	} else {
		duplicate = exists
	}

	rsvp, err := h.store.Create(ctx, fields)
	if err != nil {
		log.Error().Err(err).Msg("failed to store RSVP")
		return nil, huma.Error502BadGateway("出欠確認の送信に失敗しました。再度お試しください。")
	}

	log.Info().
		Str("id", rsvp.ID).
		Int("status", int(rsvp.Status)).
		Bool("duplicate", duplicate).
		Msg("RSVP stored")

	if h.notifier != nil {
		if err := h.notifier.NotifyRSVP(*rsvp); err != nil {
			log.Warn().Err(err).Str("id", rsvp.ID).Msg("RSVP notification failed")
		}
	}

	resp := &SubmitResponse{}
	resp.Body.ID = rsvp.ID
	resp.Body.DuplicateSubmission = duplicate
	resp.Body.RedirectURL = redirect.Encode(rsvp.RSVPFields).URL(h.cfg.ConfirmationURL)
	return resp, nil
}

type ConfirmationRequest struct {
	Name   string `query:"name" doc:"Guest display name"`
	Status string `query:"status" doc:"Attendance code: 1 attending, 2 not attending"`
}

type ConfirmationResponse struct {
	Body struct {
		GuestName string `json:"guest_name,omitempty"`
		Status    int    `json:"status" doc:"0 when unknown"`
		Message   string `json:"message"`
	}
}

// HandleConfirmation renders the post-submission thank-you content.
// Absent or malformed parameters fall back to the generic message;
// this endpoint never fails.
func (h *RSVPHandler) HandleConfirmation(ctx context.Context, input *ConfirmationRequest) (*ConfirmationResponse, error) {
	v := url.Values{}
	v.Set(redirect.ParamName, input.Name)
	v.Set(redirect.ParamStatus, input.Status)
	payload := redirect.Decode(v)

	resp := &ConfirmationResponse{}
	resp.Body.GuestName = payload.Name
	resp.Body.Status = int(payload.Status)
	resp.Body.Message = confirmationMessage(payload.Status)
	return resp, nil
}

func confirmationMessage(status models.AttendanceStatus) string {
	switch status {
	case models.Attending:
		return "ご出席のお返事をいただき誠にありがとうございます 結婚式でお会いできることを心より楽しみにしております"
	case models.NotAttending:
		return "ご連絡をいただき誠にありがとうございます またの機会にお会いできることを楽しみにしております"
	default:
		return "出欠のご連絡をいただき誠にありがとうございます 当日にお会いできることを楽しみにしております"
	}
}

type StatsResponse struct {
	Body models.RSVPStats
}

// HandleStats returns the aggregate attendance counts.
func (h *RSVPHandler) HandleStats(ctx context.Context, input *struct{}) (*StatsResponse, error) {
	stats, err := h.store.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load RSVP stats")
		return nil, huma.Error502BadGateway("Failed to load RSVP stats")
	}
	resp := &StatsResponse{}
	resp.Body = *stats
	return resp, nil
}
