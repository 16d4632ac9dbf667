package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremiumDecisionRoundTrip(t *testing.T) {
	cases := []PremiumDecision{
		{Verdict: VerdictApprove, TicketID: "abc123", Chat: 111},
		{Verdict: VerdictReject, TicketID: "abc123", Chat: 111},
		// Ids with underscores and dashes must survive the encoding.
		{Verdict: VerdictApprove, TicketID: "a_b-c_d", Chat: -42},
		{Verdict: VerdictApprove, TicketID: "web_request", Chat: 0},
	}

	for _, want := range cases {
		got, err := DecodePremiumDecision(want.Encode())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestPremiumDecisionStaysWithinCallbackDataLimit(t *testing.T) {
	// Telegram rejects callback data over 64 bytes.
	token := PremiumDecision{Verdict: VerdictApprove, TicketID: "Jx9dJ2kQw8RtYpLm4Zs0", Chat: 123456789012}.Encode()
	assert.LessOrEqual(t, len(token), 64)
}

func TestDecodePremiumDecisionRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not base64 !!", "bm90IGpzb24"} {
		_, err := DecodePremiumDecision(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestDecodePremiumDecisionRejectsUnknownVerdict(t *testing.T) {
	token := PremiumDecision{Verdict: "maybe", TicketID: "abc", Chat: 1}.Encode()
	_, err := DecodePremiumDecision(token)
	assert.Error(t, err)
}
