package services

import (
	"context"
	"log"
	"sync"
	"time"
)

// Notifier delivers a text message without blocking the caller.
type Notifier interface {
	Notify(ctx context.Context, to, message string)
}

// AsyncNotifier sends through an SMSService on a background goroutine.
type AsyncNotifier struct {
	sms     SMSService
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewAsyncNotifier(sms SMSService, timeout time.Duration) *AsyncNotifier {
	return &AsyncNotifier{sms: sms, timeout: timeout}
}

// Notify outlives the request that triggered it; only the timeout bounds it.
func (n *AsyncNotifier) Notify(ctx context.Context, to, message string) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		if _, err := n.sms.Send(sendCtx, to, message); err != nil {
			log.Printf("WARN: failed to send SMS to %s: %v", to, err)
		}
	}()
}

// Wait blocks until every pending send has finished.
func (n *AsyncNotifier) Wait() {
	n.wg.Wait()
}
