package remove_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/app/remove"
	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/storagemock"
)

func TestNewService(t *testing.T) {
	tests := map[string]struct {
		config remove.ServiceConfig
		expErr bool
	}{
		"valid config": {
			config: remove.ServiceConfig{Store: &storagemock.MockStore{}},
			expErr: false,
		},
		"missing store": {
			config: remove.ServiceConfig{},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			svc, err := remove.NewService(test.config)
			if test.expErr {
				require.Error(err)
			} else {
				require.NoError(err)
				require.NotNil(svc)
			}
		})
	}
}

func TestService_Run(t *testing.T) {
	stored := []byte(`[{"id":1,"text":"a","completed":false},{"id":2,"text":"b","completed":true}]`)

	tests := map[string]struct {
		mock    func(m *storagemock.MockStore)
		req     remove.Request
		expTask *model.Task
		expErr  bool
	}{
		"remove existing task": {
			mock: func(m *storagemock.MockStore) {
				m.On("Get", mock.Anything, "tasks").Once().Return(stored, nil)
				m.On("Set", mock.Anything, "tasks", []byte(`[{"id":2,"text":"b","completed":true}]`)).Once().Return(nil)
			},
			req:     remove.Request{ID: 1},
			expTask: &model.Task{ID: 1, Text: "a"},
		},
		"missing task is a no-op": {
			mock: func(m *storagemock.MockStore) {
				m.On("Get", mock.Anything, "tasks").Once().Return(stored, nil)
			},
			req:     remove.Request{ID: 42},
			expTask: nil,
		},
		"store error propagates": {
			mock: func(m *storagemock.MockStore) {
				m.On("Get", mock.Anything, "tasks").Once().Return(stored, nil)
				m.On("Set", mock.Anything, "tasks", mock.Anything).Once().Return(fmt.Errorf("store error"))
			},
			req:    remove.Request{ID: 2},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			mStore := &storagemock.MockStore{}
			test.mock(mStore)

			svc, err := remove.NewService(remove.ServiceConfig{
				Store:  mStore,
				Logger: log.Noop,
			})
			require.NoError(err)

			result, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(err)
			} else {
				assert.NoError(err)
				assert.Equal(test.expTask, result)
			}

			mStore.AssertExpectations(t)
		})
	}
}
