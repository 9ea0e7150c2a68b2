package climate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/sezir/internal/ir"
	"github.com/muurk/sezir/internal/logging"
	"github.com/muurk/sezir/internal/protocol"
)

// ErrNoTransmitter is returned by TransmitState when no Transmitter is set
var ErrNoTransmitter = errors.New("no transmitter configured")

// Transmitter emits a pulse train on a modulated carrier
type Transmitter interface {
	Transmit(ctx context.Context, carrierHz int, seq ir.Sequence) error
}

// Publisher receives states decoded from captured signals
type Publisher interface {
	Publish(ctx context.Context, state protocol.ClimateState) error
}

// Option configures a Controller
type Option func(*Controller)

// WithTransmitter sets where TransmitState sends frames
func WithTransmitter(t Transmitter) Option {
	return func(c *Controller) { c.transmitter = t }
}

// WithPublisher sets where OnReceive reports decoded states
func WithPublisher(p Publisher) Option {
	return func(c *Controller) { c.publisher = p }
}

// WithLogger sets the trace logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithTarget sets the initial target state
func WithTarget(s protocol.ClimateState) Option {
	return func(c *Controller) { c.target = s }
}

// Controller ties the codec to the host: it keeps the current target, sends
// it through a Transmitter and turns captured signals into published states.
type Controller struct {
	traits      Traits
	decoder     *ir.Decoder
	transmitter Transmitter
	publisher   Publisher
	log         *zap.Logger

	mu     sync.Mutex
	target protocol.ClimateState
}

// New creates a controller. A nil decoder uses ir.DefaultTolerance.
func New(traits Traits, decoder *ir.Decoder, opts ...Option) (*Controller, error) {
	if err := traits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid traits: %w", err)
	}
	if decoder == nil {
		decoder = ir.NewDecoder(ir.DefaultTolerance)
	}

	c := &Controller{
		traits:  traits,
		decoder: decoder,
		log:     logging.GetLogger(),
		target: protocol.ClimateState{
			Power:       false,
			Mode:        protocol.ModeOff,
			Temperature: traits.MinTemperature,
			Fan:         protocol.FanAuto,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}

	return c, nil
}

// Traits returns the traits the controller was built with
func (c *Controller) Traits() Traits {
	return c.traits
}

// Target returns the current target state
func (c *Controller) Target() protocol.ClimateState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// SetTarget replaces the target after checking it against the traits
func (c *Controller) SetTarget(s protocol.ClimateState) error {
	if err := c.traits.Check(s); err != nil {
		return fmt.Errorf("invalid target: %w", err)
	}

	c.mu.Lock()
	c.target = s
	c.mu.Unlock()

	c.log.Debug("Target updated", zap.Stringer("state", s))
	return nil
}

// Frame encodes a state into its payload and pulse train
func (c *Controller) Frame(s protocol.ClimateState) (protocol.Payload, ir.Sequence, error) {
	payload, err := protocol.Encode(s)
	if err != nil {
		return protocol.Payload{}, nil, fmt.Errorf("failed to encode %s: %w", s, err)
	}
	seq := ir.Encode(payload)

	c.log.Debug("Encoded frame",
		append(logging.PayloadFields(payload.Bytes()),
			logging.SequenceFields(len(seq), seq.Duration())...)...,
	)
	return payload, seq, nil
}

// TransmitState encodes the current target and hands it to the Transmitter
func (c *Controller) TransmitState(ctx context.Context) error {
	if c.transmitter == nil {
		return ErrNoTransmitter
	}

	target := c.Target()
	_, seq, err := c.Frame(target)
	if err != nil {
		return err
	}

	if err := c.transmitter.Transmit(ctx, ir.CarrierFrequency, seq); err != nil {
		c.log.Error("Transmit failed", zap.Stringer("state", target), zap.Error(err))
		return fmt.Errorf("transmit failed: %w", err)
	}

	c.log.Info("Frame sent", zap.Stringer("state", target))
	return nil
}

// Receive decodes a captured signal into a state without side effects
func (c *Controller) Receive(seq ir.Sequence) (protocol.ClimateState, error) {
	payload, err := c.decoder.Decode(seq)
	if err != nil {
		return protocol.ClimateState{}, err
	}

	c.log.Debug("Received payload", logging.PayloadFields(payload.Bytes())...)

	state, err := protocol.DecodePayload(payload)
	if err != nil {
		return protocol.ClimateState{}, fmt.Errorf("payload %s: %w", payload, err)
	}
	return state, nil
}

// OnReceive handles a captured signal. It returns false with a nil error when
// the signal belongs to another protocol, false with an error when it was a
// SEZ frame that failed validation, and true once the decoded state has been
// stored as the current target and published.
func (c *Controller) OnReceive(ctx context.Context, seq ir.Sequence) (bool, error) {
	state, err := c.Receive(seq)
	if err != nil {
		if ir.IsFramingError(err) {
			c.log.Debug("Signal ignored", zap.Int("pulses", len(seq)), zap.Error(err))
			return false, nil
		}
		c.log.Warn("Malformed frame dropped", zap.Error(err))
		return false, err
	}

	c.mu.Lock()
	c.target = state
	c.mu.Unlock()

	c.log.Info("State received", zap.Stringer("state", state))

	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, state); err != nil {
			c.log.Error("Publish failed", zap.Stringer("state", state), zap.Error(err))
			return true, fmt.Errorf("publish failed: %w", err)
		}
	}
	return true, nil
}
