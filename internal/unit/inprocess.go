package unit

import (
	"context"
	"sync"
	"time"
)

const (
	inProcessName = "in-process bot"
	stopTimeout   = 10 * time.Second
)

// InProcessUnit runs a Bot inside the supervisor for a bounded window
// measured from its successful start. When the window elapses the bot is
// stopped exactly once. A forwarded signal ends the run at once with exit
// code 0 and leaves the bot to the process exit.
type InProcessUnit struct {
	bot    Bot
	window time.Duration

	mu      sync.Mutex
	started bool
	timer   *time.Timer

	once    sync.Once
	done    chan struct{}
	outcome Outcome
}

func NewInProcessUnit(bot Bot, window time.Duration) *InProcessUnit {
	return &InProcessUnit{
		bot:    bot,
		window: window,
		done:   make(chan struct{}),
	}
}

// Start runs bot.Start without holding the unit lock, so Signal stays
// available while the bot is starting. If ctx is cancelled first, Start
// returns a *LaunchError wrapping ctx.Err() and the outcome is 0, the same
// as a forwarded signal; the bot is left to the process exit.
func (u *InProcessUnit) Start(ctx context.Context) error {
	u.mu.Lock()
	if u.started {
		u.mu.Unlock()
		return ErrAlreadyStarted
	}
	u.started = true
	u.mu.Unlock()

	errc := make(chan error, 1)
	go func() {
		errc <- u.bot.Start(ctx)
	}()

	var err error
	select {
	case err = <-errc:
	case <-ctx.Done():
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		u.resolve(Outcome{Code: ExitSuccess})
		return &LaunchError{Unit: inProcessName, Err: ctxErr}
	}
	if err != nil {
		launchErr := &LaunchError{Unit: inProcessName, Err: err}
		u.resolve(Outcome{Code: ExitFailure, Err: launchErr})
		return launchErr
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Signalled while starting: the outcome is already final.
	select {
	case <-u.done:
		return nil
	default:
	}
	u.timer = time.AfterFunc(u.window, u.expire)
	return nil
}

func (u *InProcessUnit) expire() {
	ctx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()

	if err := u.bot.Stop(ctx); err != nil {
		u.resolve(Outcome{Code: ExitFailure, Err: &RuntimeError{Unit: inProcessName, Err: err}})
		return
	}
	u.resolve(Outcome{Code: ExitSuccess})
}

func (u *InProcessUnit) resolve(o Outcome) {
	u.once.Do(func() {
		u.outcome = o
		close(u.done)
	})
}

// Signal cancels the pending window and resolves the outcome with code 0.
// Stop is not called.
func (u *InProcessUnit) Signal(Signal) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.started {
		return ErrNotStarted
	}
	if u.timer != nil {
		u.timer.Stop()
	}

	u.resolve(Outcome{Code: ExitSuccess})
	return nil
}

func (u *InProcessUnit) Wait() Outcome {
	u.mu.Lock()
	started := u.started
	u.mu.Unlock()

	if !started {
		return Outcome{Code: ExitFailure, Err: ErrNotStarted}
	}

	<-u.done
	return u.outcome
}
