package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
	"github.com/inclusivo-app/campus-api/internal/speech"
)

// voiceSource provides the voice settings current at call time.
type voiceSource interface {
	Voice() models.VoiceSettings
}

// SpeechService serializes text-to-speech requests against one underlying
// voice engine. At most one utterance is audibly active; new requests
// queue behind it unless they interrupt. A nil engine means the host has
// no speech capability: requests are logged and dropped, never surfaced
// as errors.
type SpeechService struct {
	engine speech.Engine
	voice  voiceSource
	locale string
	logger *zap.Logger

	mu       sync.Mutex
	current  speech.Handle
	speaking bool
}

// NewSpeechService constructs the controller.
func NewSpeechService(engine speech.Engine, voice voiceSource, locale string, logger *zap.Logger) *SpeechService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SpeechService{engine: engine, voice: voice, locale: locale, logger: logger}
}

// Available reports whether the host has a speech engine.
func (s *SpeechService) Available() bool {
	return s.engine != nil
}

// Speak submits an utterance. With interrupt, anything in flight or queued
// is cancelled first; otherwise the engine queues it behind the current
// utterance. Rate and pitch come from the voice settings as they are at
// call time, not captured earlier.
func (s *SpeechService) Speak(text string, interrupt bool) {
	if s.engine == nil {
		s.logger.Debug("speech synthesis not supported, utterance dropped")
		return
	}

	if interrupt {
		s.engine.CancelAll()
	}

	voice := s.voice.Voice()
	handle, err := s.engine.Speak(text, voice.Speed, voice.Pitch, s.locale, speech.Callbacks{
		OnStart: func() { s.setSpeaking(true) },
		OnEnd:   func() { s.setSpeaking(false) },
		OnError: func(err error) {
			s.logger.Debug("utterance ended with error", zap.Error(err))
			s.setSpeaking(false)
		},
	})
	if err != nil {
		s.logger.Warn("speech engine rejected utterance", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.current = handle
	s.mu.Unlock()
}

// Stop cancels all pending and in-flight speech and clears the flag.
func (s *SpeechService) Stop() {
	if s.engine == nil {
		return
	}
	s.engine.CancelAll()
	s.setSpeaking(false)
}

// IsSpeaking reports whether an utterance is audibly active. The flag is
// toggled by the engine's start/end/error callbacks.
func (s *SpeechService) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

func (s *SpeechService) setSpeaking(value bool) {
	s.mu.Lock()
	s.speaking = value
	s.mu.Unlock()
}
