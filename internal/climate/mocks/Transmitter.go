package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/muurk/sezir/internal/ir"
)

type Transmitter struct {
	mock.Mock
}

// Transmit provides a mock function with given fields: ctx, carrierHz, seq
func (_m *Transmitter) Transmit(ctx context.Context, carrierHz int, seq ir.Sequence) error {
	ret := _m.Called(ctx, carrierHz, seq)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int, ir.Sequence) error); ok {
		r0 = rf(ctx, carrierHz, seq)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
