// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package shopinfo -destination ./mock_shopinfo.go -source=./interfaces.go
//

// Package shopinfo is a generated GoMock package.
package shopinfo

import (
	context "context"
	reflect "reflect"

	types "github.com/barbersoft/account-service/internal/types"
	gomock "go.uber.org/mock/gomock"
)

// MockStorageInterface is a mock of StorageInterface interface.
type MockStorageInterface struct {
	ctrl     *gomock.Controller
	recorder *MockStorageInterfaceMockRecorder
	isgomock struct{}
}

// MockStorageInterfaceMockRecorder is the mock recorder for MockStorageInterface.
type MockStorageInterfaceMockRecorder struct {
	mock *MockStorageInterface
}

// NewMockStorageInterface creates a new mock instance.
func NewMockStorageInterface(ctrl *gomock.Controller) *MockStorageInterface {
	mock := &MockStorageInterface{ctrl: ctrl}
	mock.recorder = &MockStorageInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStorageInterface) EXPECT() *MockStorageInterfaceMockRecorder {
	return m.recorder
}

// GetUnitByInstanceName mocks base method.
func (m *MockStorageInterface) GetUnitByInstanceName(ctx context.Context, instance string) (*types.Unit, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUnitByInstanceName", ctx, instance)
	ret0, _ := ret[0].(*types.Unit)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUnitByInstanceName indicates an expected call of GetUnitByInstanceName.
func (mr *MockStorageInterfaceMockRecorder) GetUnitByInstanceName(ctx, instance any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUnitByInstanceName", reflect.TypeOf((*MockStorageInterface)(nil).GetUnitByInstanceName), ctx, instance)
}

// GetWhatsappAgentEnabled mocks base method.
func (m *MockStorageInterface) GetWhatsappAgentEnabled(ctx context.Context, userID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetWhatsappAgentEnabled", ctx, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetWhatsappAgentEnabled indicates an expected call of GetWhatsappAgentEnabled.
func (mr *MockStorageInterfaceMockRecorder) GetWhatsappAgentEnabled(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetWhatsappAgentEnabled", reflect.TypeOf((*MockStorageInterface)(nil).GetWhatsappAgentEnabled), ctx, userID)
}

// ListActiveBarbersByUnit mocks base method.
func (m *MockStorageInterface) ListActiveBarbersByUnit(ctx context.Context, unitID string) ([]*types.Barber, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveBarbersByUnit", ctx, unitID)
	ret0, _ := ret[0].([]*types.Barber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveBarbersByUnit indicates an expected call of ListActiveBarbersByUnit.
func (mr *MockStorageInterfaceMockRecorder) ListActiveBarbersByUnit(ctx, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveBarbersByUnit", reflect.TypeOf((*MockStorageInterface)(nil).ListActiveBarbersByUnit), ctx, unitID)
}

// ListActiveServicesByUnit mocks base method.
func (m *MockStorageInterface) ListActiveServicesByUnit(ctx context.Context, unitID string) ([]*types.Service, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveServicesByUnit", ctx, unitID)
	ret0, _ := ret[0].([]*types.Service)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveServicesByUnit indicates an expected call of ListActiveServicesByUnit.
func (mr *MockStorageInterfaceMockRecorder) ListActiveServicesByUnit(ctx, unitID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveServicesByUnit", reflect.TypeOf((*MockStorageInterface)(nil).ListActiveServicesByUnit), ctx, unitID)
}

// MockServiceInterface is a mock of ServiceInterface interface.
type MockServiceInterface struct {
	ctrl     *gomock.Controller
	recorder *MockServiceInterfaceMockRecorder
	isgomock struct{}
}

// MockServiceInterfaceMockRecorder is the mock recorder for MockServiceInterface.
type MockServiceInterfaceMockRecorder struct {
	mock *MockServiceInterface
}

// NewMockServiceInterface creates a new mock instance.
func NewMockServiceInterface(ctrl *gomock.Controller) *MockServiceInterface {
	mock := &MockServiceInterface{ctrl: ctrl}
	mock.recorder = &MockServiceInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockServiceInterface) EXPECT() *MockServiceInterfaceMockRecorder {
	return m.recorder
}

// Lookup mocks base method.
func (m *MockServiceInterface) Lookup(ctx context.Context, instanceID string) (*ShopInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lookup", ctx, instanceID)
	ret0, _ := ret[0].(*ShopInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Lookup indicates an expected call of Lookup.
func (mr *MockServiceInterfaceMockRecorder) Lookup(ctx, instanceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockServiceInterface)(nil).Lookup), ctx, instanceID)
}
