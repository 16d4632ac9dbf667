package entity

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	VerdictApprove = "approve"
	VerdictReject  = "reject"
)

// PremiumDecision is the correlation token embedded in the approve/reject
// buttons shown to an approver. Telegram caps callback data at 64 bytes, so
// the wire form is a compact "verdict.chat.base64url(ticketID)" triple. The
// id is encoded so arbitrary characters, separators included, cannot split
// the token apart.
type PremiumDecision struct {
	Verdict  string
	TicketID string
	Chat     int64
}

func (d PremiumDecision) Encode() string {
	code := d.Verdict
	switch d.Verdict {
	case VerdictApprove:
		code = "a"
	case VerdictReject:
		code = "r"
	}
	id := base64.RawURLEncoding.EncodeToString([]byte(d.TicketID))
	return fmt.Sprintf("%s.%d.%s", code, d.Chat, id)
}

func DecodePremiumDecision(raw string) (PremiumDecision, error) {
	var d PremiumDecision

	parts := strings.SplitN(raw, ".", 3)
	if len(parts) != 3 {
		return d, fmt.Errorf("malformed decision token %q", raw)
	}

	switch parts[0] {
	case "a":
		d.Verdict = VerdictApprove
	case "r":
		d.Verdict = VerdictReject
	default:
		return d, fmt.Errorf("unknown verdict %q", parts[0])
	}

	chat, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return d, fmt.Errorf("parse chat id: %w", err)
	}
	d.Chat = chat

	id, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return d, fmt.Errorf("decode ticket id: %w", err)
	}
	if len(id) == 0 {
		return d, fmt.Errorf("empty ticket id")
	}
	d.TicketID = string(id)

	return d, nil
}
