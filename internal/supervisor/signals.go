package supervisor

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-bot-launcher/internal/unit"
)

// SignalSource delivers stop requests to the supervisor. Subscribe returns
// the delivery channel and a function that ends the subscription.
type SignalSource interface {
	Subscribe() (<-chan unit.Signal, func())
}

// OSSignals subscribes to SIGINT and SIGTERM of the current process.
type OSSignals struct{}

func (OSSignals) Subscribe() (<-chan unit.Signal, func()) {
	raw := make(chan os.Signal, 2)
	signal.Notify(raw, syscall.SIGINT, syscall.SIGTERM)

	out := make(chan unit.Signal, 2)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case sig := <-raw:
				s, ok := unit.FromOS(sig)
				if !ok {
					continue
				}
				select {
				case out <- s:
				default:
				}
			}
		}
	}()

	var once sync.Once
	return out, func() {
		once.Do(func() {
			signal.Stop(raw)
			close(done)
		})
	}
}

// SignalChan is a SignalSource backed by a caller-owned channel.
type SignalChan chan unit.Signal

func (c SignalChan) Subscribe() (<-chan unit.Signal, func()) {
	return c, func() {}
}
