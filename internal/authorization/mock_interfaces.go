// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//

// Package authorization is a generated GoMock package.
package authorization

import (
	context "context"
	reflect "reflect"

	openfga "github.com/barbersoft/account-service/internal/openfga"
	openfga0 "github.com/openfga/go-sdk"
	client "github.com/openfga/go-sdk/client"
	gomock "go.uber.org/mock/gomock"
)

// MockAuthorizerInterface is a mock of AuthorizerInterface interface.
type MockAuthorizerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthorizerInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthorizerInterfaceMockRecorder is the mock recorder for MockAuthorizerInterface.
type MockAuthorizerInterfaceMockRecorder struct {
	mock *MockAuthorizerInterface
}

// NewMockAuthorizerInterface creates a new mock instance.
func NewMockAuthorizerInterface(ctrl *gomock.Controller) *MockAuthorizerInterface {
	mock := &MockAuthorizerInterface{ctrl: ctrl}
	mock.recorder = &MockAuthorizerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthorizerInterface) EXPECT() *MockAuthorizerInterfaceMockRecorder {
	return m.recorder
}

// AssignSuperAdmin mocks base method.
func (m *MockAuthorizerInterface) AssignSuperAdmin(arg0 context.Context, arg1 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AssignSuperAdmin", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// AssignSuperAdmin indicates an expected call of AssignSuperAdmin.
func (mr *MockAuthorizerInterfaceMockRecorder) AssignSuperAdmin(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AssignSuperAdmin", reflect.TypeOf((*MockAuthorizerInterface)(nil).AssignSuperAdmin), arg0, arg1)
}

// Check mocks base method.
func (m *MockAuthorizerInterface) Check(arg0 context.Context, arg1, arg2, arg3 string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAuthorizerInterfaceMockRecorder) Check(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAuthorizerInterface)(nil).Check), arg0, arg1, arg2, arg3)
}

// DeleteCompany mocks base method.
func (m *MockAuthorizerInterface) DeleteCompany(arg0 context.Context, arg1 string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCompany", arg0, arg1)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCompany indicates an expected call of DeleteCompany.
func (mr *MockAuthorizerInterfaceMockRecorder) DeleteCompany(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCompany", reflect.TypeOf((*MockAuthorizerInterface)(nil).DeleteCompany), arg0, arg1)
}

// IsSuperAdmin mocks base method.
func (m *MockAuthorizerInterface) IsSuperAdmin(arg0 context.Context, arg1 string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSuperAdmin", arg0, arg1)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSuperAdmin indicates an expected call of IsSuperAdmin.
func (mr *MockAuthorizerInterfaceMockRecorder) IsSuperAdmin(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSuperAdmin", reflect.TypeOf((*MockAuthorizerInterface)(nil).IsSuperAdmin), arg0, arg1)
}

// ValidateModel mocks base method.
func (m *MockAuthorizerInterface) ValidateModel(arg0 context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ValidateModel", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// ValidateModel indicates an expected call of ValidateModel.
func (mr *MockAuthorizerInterfaceMockRecorder) ValidateModel(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ValidateModel", reflect.TypeOf((*MockAuthorizerInterface)(nil).ValidateModel), arg0)
}

// MockAuthzClientInterface is a mock of AuthzClientInterface interface.
type MockAuthzClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthzClientInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthzClientInterfaceMockRecorder is the mock recorder for MockAuthzClientInterface.
type MockAuthzClientInterfaceMockRecorder struct {
	mock *MockAuthzClientInterface
}

// NewMockAuthzClientInterface creates a new mock instance.
func NewMockAuthzClientInterface(ctrl *gomock.Controller) *MockAuthzClientInterface {
	mock := &MockAuthzClientInterface{ctrl: ctrl}
	mock.recorder = &MockAuthzClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthzClientInterface) EXPECT() *MockAuthzClientInterfaceMockRecorder {
	return m.recorder
}

// Check mocks base method.
func (m *MockAuthzClientInterface) Check(arg0 context.Context, arg1, arg2, arg3 string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Check", arg0, arg1, arg2, arg3)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Check indicates an expected call of Check.
func (mr *MockAuthzClientInterfaceMockRecorder) Check(arg0, arg1, arg2, arg3 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Check", reflect.TypeOf((*MockAuthzClientInterface)(nil).Check), arg0, arg1, arg2, arg3)
}

// CompareModel mocks base method.
func (m *MockAuthzClientInterface) CompareModel(arg0 context.Context, arg1 openfga0.AuthorizationModel) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CompareModel", arg0, arg1)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CompareModel indicates an expected call of CompareModel.
func (mr *MockAuthzClientInterfaceMockRecorder) CompareModel(arg0, arg1 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CompareModel", reflect.TypeOf((*MockAuthzClientInterface)(nil).CompareModel), arg0, arg1)
}

// DeleteTuples mocks base method.
func (m *MockAuthzClientInterface) DeleteTuples(arg0 context.Context, arg1 ...openfga.Tuple) error {
	m.ctrl.T.Helper()
	varargs := []any{arg0}
	for _, a := range arg1 {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "DeleteTuples", varargs...)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteTuples indicates an expected call of DeleteTuples.
func (mr *MockAuthzClientInterfaceMockRecorder) DeleteTuples(arg0 any, arg1 ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{arg0}, arg1...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTuples", reflect.TypeOf((*MockAuthzClientInterface)(nil).DeleteTuples), varargs...)
}

// ReadModel mocks base method.
func (m *MockAuthzClientInterface) ReadModel(arg0 context.Context) (*openfga0.AuthorizationModel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadModel", arg0)
	ret0, _ := ret[0].(*openfga0.AuthorizationModel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadModel indicates an expected call of ReadModel.
func (mr *MockAuthzClientInterfaceMockRecorder) ReadModel(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadModel", reflect.TypeOf((*MockAuthzClientInterface)(nil).ReadModel), arg0)
}

// ReadTuples mocks base method.
func (m *MockAuthzClientInterface) ReadTuples(arg0 context.Context, arg1, arg2, arg3, arg4 string) (*client.ClientReadResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReadTuples", arg0, arg1, arg2, arg3, arg4)
	ret0, _ := ret[0].(*client.ClientReadResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReadTuples indicates an expected call of ReadTuples.
func (mr *MockAuthzClientInterfaceMockRecorder) ReadTuples(arg0, arg1, arg2, arg3, arg4 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReadTuples", reflect.TypeOf((*MockAuthzClientInterface)(nil).ReadTuples), arg0, arg1, arg2, arg3, arg4)
}

// WriteTuple mocks base method.
func (m *MockAuthzClientInterface) WriteTuple(ctx context.Context, user, relation, object string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WriteTuple", ctx, user, relation, object)
	ret0, _ := ret[0].(error)
	return ret0
}

// WriteTuple indicates an expected call of WriteTuple.
func (mr *MockAuthzClientInterfaceMockRecorder) WriteTuple(ctx, user, relation, object any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WriteTuple", reflect.TypeOf((*MockAuthzClientInterface)(nil).WriteTuple), ctx, user, relation, object)
}
