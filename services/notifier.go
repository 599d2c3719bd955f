// Package services holds the outbound ports of the server. The only one in
// scope is notification dispatch, used by password recovery and reminders.
package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/VersaceXcodes/todo-app/utils"
)

// Notification is one outbound message.
type Notification struct {
	Recipient string
	Method    string // email or push
	Subject   string
	Body      string
}

// Receipt acknowledges a dispatched notification.
type Receipt struct {
	ID          string
	DeliveredAt time.Time
}

// Notifier delivers notifications. The production implementation plugs in a
// real provider; tests record calls instead.
type Notifier interface {
	Send(ctx context.Context, n Notification) (Receipt, error)
}

// LogNotifier writes notifications to the log instead of delivering them.
// It stands in until a real provider is wired up.
type LogNotifier struct {
	Logger *zap.SugaredLogger
}

func (l *LogNotifier) Send(_ context.Context, n Notification) (Receipt, error) {
	receipt := Receipt{ID: utils.GenerateID(), DeliveredAt: time.Now().UTC()}
	l.Logger.Infow("notification dispatched",
		"receiptID", receipt.ID,
		"recipient", n.Recipient,
		"method", n.Method,
		"subject", n.Subject,
	)
	return receipt, nil
}

// RecorderNotifier captures every notification for assertions in tests.
type RecorderNotifier struct {
	mu   sync.Mutex
	Sent []Notification
}

func (r *RecorderNotifier) Send(_ context.Context, n Notification) (Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Sent = append(r.Sent, n)
	return Receipt{ID: utils.GenerateID(), DeliveredAt: time.Now().UTC()}, nil
}

// Count returns how many notifications were recorded.
func (r *RecorderNotifier) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Sent)
}
