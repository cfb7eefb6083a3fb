// Code generated by MockGen. DO NOT EDIT.
// Source: ./handlers.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./handlers.go
//

// Package status is a generated GoMock package.
package status

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockPingerInterface is a mock of PingerInterface interface.
type MockPingerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockPingerInterfaceMockRecorder
	isgomock struct{}
}

// MockPingerInterfaceMockRecorder is the mock recorder for MockPingerInterface.
type MockPingerInterfaceMockRecorder struct {
	mock *MockPingerInterface
}

// NewMockPingerInterface creates a new mock instance.
func NewMockPingerInterface(ctrl *gomock.Controller) *MockPingerInterface {
	mock := &MockPingerInterface{ctrl: ctrl}
	mock.recorder = &MockPingerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPingerInterface) EXPECT() *MockPingerInterfaceMockRecorder {
	return m.recorder
}

// Ping mocks base method.
func (m *MockPingerInterface) Ping(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ping", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Ping indicates an expected call of Ping.
func (mr *MockPingerInterfaceMockRecorder) Ping(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ping", reflect.TypeOf((*MockPingerInterface)(nil).Ping), ctx)
}
