package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/muurk/sezir/internal/protocol"
)

type Publisher struct {
	mock.Mock
}

// Publish provides a mock function with given fields: ctx, state
func (_m *Publisher) Publish(ctx context.Context, state protocol.ClimateState) error {
	ret := _m.Called(ctx, state)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, protocol.ClimateState) error); ok {
		r0 = rf(ctx, state)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
