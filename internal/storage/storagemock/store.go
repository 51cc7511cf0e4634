package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/slok/todo/internal/storage"
)

var _ storage.Store = &MockStore{}

// MockStore is a mock implementation of storage.Store.
type MockStore struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, key
func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	ret := m.Called(ctx, key)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, string) []byte); ok {
		r0 = rf(ctx, key)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Set provides a mock function with given fields: ctx, key, value
func (m *MockStore) Set(ctx context.Context, key string, value []byte) error {
	ret := m.Called(ctx, key, value)

	if rf, ok := ret.Get(0).(func(context.Context, string, []byte) error); ok {
		return rf(ctx, key, value)
	}
	return ret.Error(0)
}
