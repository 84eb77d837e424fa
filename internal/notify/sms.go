package notify

import (
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SmsSender delivers short messages through Twilio. Constructed once at
// process start and shared read-only.
type SmsSender struct {
	client *twilio.RestClient
	from   string
}

func NewSmsSender(accountSID, authToken, from string) *SmsSender {
	return &SmsSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *SmsSender) send(to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)
	_, err := s.client.Api.CreateMessage(params)
	return err
}
