package speech

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const minUtteranceDuration = 200 * time.Millisecond

// SimulatedEngine fakes a device synthesizer: each utterance "plays" for a
// duration derived from its word count, the configured speaking pace and
// the requested rate. Lifecycle callbacks fire exactly as a real engine's
// would, which is what the feedback controller cares about.
type SimulatedEngine struct {
	wordsPerMinute int
	logger         *zap.Logger

	mu      sync.Mutex
	queue   []*simUtterance
	playing *simUtterance
}

type simUtterance struct {
	text     string
	duration time.Duration
	cb       Callbacks
	ctx      context.Context
	cancel   context.CancelFunc
}

// Cancel aborts this utterance whether queued or in flight.
func (u *simUtterance) Cancel() {
	u.cancel()
}

// NewSimulatedEngine constructs the engine. wordsPerMinute <= 0 defaults
// to 150.
func NewSimulatedEngine(wordsPerMinute int, logger *zap.Logger) *SimulatedEngine {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 150
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedEngine{wordsPerMinute: wordsPerMinute, logger: logger}
}

// Speak queues the utterance and starts playback when idle.
func (e *SimulatedEngine) Speak(text string, rate, pitch float64, locale string, cb Callbacks) (Handle, error) {
	if rate <= 0 {
		rate = 1.0
	}

	words := len(strings.Fields(text))
	duration := time.Duration(float64(words) / (float64(e.wordsPerMinute) * rate) * float64(time.Minute))
	if duration < minUtteranceDuration {
		duration = minUtteranceDuration
	}

	ctx, cancel := context.WithCancel(context.Background())
	u := &simUtterance{text: text, duration: duration, cb: cb, ctx: ctx, cancel: cancel}

	e.logger.Debug("utterance queued",
		zap.Int("words", words),
		zap.Duration("duration", duration),
		zap.String("locale", locale),
		zap.Float64("pitch", pitch),
	)

	e.mu.Lock()
	e.queue = append(e.queue, u)
	if e.playing == nil {
		e.advance()
	}
	e.mu.Unlock()

	return u, nil
}

// CancelAll drops the queue and cancels the in-flight utterance.
func (e *SimulatedEngine) CancelAll() {
	e.mu.Lock()
	queued := e.queue
	e.queue = nil
	playing := e.playing
	e.mu.Unlock()

	for _, u := range queued {
		u.cancel()
	}
	if playing != nil {
		playing.cancel()
	}
}

// advance pops the next utterance and plays it. Caller holds e.mu.
func (e *SimulatedEngine) advance() {
	if len(e.queue) == 0 {
		e.playing = nil
		return
	}
	u := e.queue[0]
	e.queue = e.queue[1:]
	e.playing = u
	go e.play(u)
}

func (e *SimulatedEngine) play(u *simUtterance) {
	if u.cb.OnStart != nil {
		u.cb.OnStart()
	}

	timer := time.NewTimer(u.duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		if u.cb.OnEnd != nil {
			u.cb.OnEnd()
		}
	case <-u.ctx.Done():
		if u.cb.OnError != nil {
			u.cb.OnError(u.ctx.Err())
		}
	}

	e.mu.Lock()
	e.advance()
	e.mu.Unlock()
}
