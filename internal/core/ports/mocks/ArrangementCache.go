package mocks

import (
	context "context"

	domain "github.com/srgjo27/openspace/internal/core/domain"
	mock "github.com/stretchr/testify/mock"

	uuid "github.com/google/uuid"
)

// ArrangementCache is a mock type for the ArrangementCache type
type ArrangementCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, id
func (_m *ArrangementCache) Get(ctx context.Context, id uuid.UUID) (*domain.Arrangement, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Arrangement
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *domain.Arrangement); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Arrangement)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Set provides a mock function with given fields: ctx, arrangement
func (_m *ArrangementCache) Set(ctx context.Context, arrangement *domain.Arrangement) error {
	ret := _m.Called(ctx, arrangement)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Arrangement) error); ok {
		r0 = rf(ctx, arrangement)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewArrangementCache creates a new instance of ArrangementCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewArrangementCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *ArrangementCache {
	m := &ArrangementCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
