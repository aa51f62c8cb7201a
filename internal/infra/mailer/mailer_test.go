//go:build unit

package mailer_test

import (
	"bytes"
	"strings"
	"testing"

	"hotel-backoffice/internal/infra/mailer"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func TestInvoiceIssuedMessage(t *testing.T) {
	p := shared.InvoiceIssuedPayload{
		InvoiceID:  uuid.New(),
		BookingID:  uuid.New(),
		Number:     "INV-2024-000042",
		ClientName: "Ada Lovelace",
		Email:      "ada@example.com",
		Total:      "399.30",
		IssuedOn:   "2024-03-10",
	}

	t.Run("addresses and body", func(t *testing.T) {
		msg, err := mailer.InvoiceIssuedMessage("frontdesk@hotel.local", "Front Desk", p)
		require.NoError(t, err)

		rcpts, err := msg.GetRecipients()
		require.NoError(t, err)
		assert.Equal(t, []string{"ada@example.com"}, rcpts)
		assert.Equal(t, []string{"Invoice INV-2024-000042"}, msg.GetGenHeader(mail.HeaderSubject))

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		body := decodedBody(t, buf.String())
		assert.Contains(t, body, "Dear Ada Lovelace")
		assert.Contains(t, body, "Total charged: 399.30")
		assert.Contains(t, body, "Invoice INV-2024-000042 was issued on 2024-03-10.")
	})

	t.Run("bad recipient", func(t *testing.T) {
		bad := p
		bad.Email = "not an address"
		_, err := mailer.InvoiceIssuedMessage("frontdesk@hotel.local", "Front Desk", bad)
		assert.Error(t, err)
	})
}

// decodedBody joins quoted-printable soft line breaks so assertions can match
// whole lines of the plain-text body.
func decodedBody(t *testing.T, raw string) string {
	t.Helper()
	require.Contains(t, raw, "Content-Transfer-Encoding: quoted-printable")
	return strings.NewReplacer("=\r\n", "", "=3D", "=").Replace(raw)
}
