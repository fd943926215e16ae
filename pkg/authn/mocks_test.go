package authn_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/wishbay/wishbay/pkg/email"
)

// MockEmailSender records every outbound message and can be told to fail.
type MockEmailSender struct {
	mock.Mock

	mu   sync.Mutex
	sent []email.SendEmailParams
}

func (m *MockEmailSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	args := m.Called(ctx, params)
	if args.Error(0) == nil {
		m.mu.Lock()
		m.sent = append(m.sent, params)
		m.mu.Unlock()
	}
	return args.Error(0)
}

// Sent returns a snapshot of successfully delivered messages.
func (m *MockEmailSender) Sent() []email.SendEmailParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]email.SendEmailParams(nil), m.sent...)
}

// LastSent returns the most recent delivered message.
func (m *MockEmailSender) LastSent() (email.SendEmailParams, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return email.SendEmailParams{}, false
	}
	return m.sent[len(m.sent)-1], true
}
