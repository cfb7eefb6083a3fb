// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package account -destination ./mock_account.go -source=./interfaces.go
//

// Package account is a generated GoMock package.
package account

import (
	context "context"
	reflect "reflect"

	billing "github.com/barbersoft/account-service/internal/billing"
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

// DeleteCompany mocks base method.
func (m *MockStorageInterface) DeleteCompany(ctx context.Context, id string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCompany", ctx, id)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteCompany indicates an expected call of DeleteCompany.
func (mr *MockStorageInterfaceMockRecorder) DeleteCompany(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCompany", reflect.TypeOf((*MockStorageInterface)(nil).DeleteCompany), ctx, id)
}

// DeleteWhereIn mocks base method.
func (m *MockStorageInterface) DeleteWhereIn(ctx context.Context, table, column string, values []string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteWhereIn", ctx, table, column, values)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteWhereIn indicates an expected call of DeleteWhereIn.
func (mr *MockStorageInterfaceMockRecorder) DeleteWhereIn(ctx, table, column, values any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteWhereIn", reflect.TypeOf((*MockStorageInterface)(nil).DeleteWhereIn), ctx, table, column, values)
}

// GetCompanyByBillingCustomer mocks base method.
func (m *MockStorageInterface) GetCompanyByBillingCustomer(ctx context.Context, customerID string) (*types.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCompanyByBillingCustomer", ctx, customerID)
	ret0, _ := ret[0].(*types.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCompanyByBillingCustomer indicates an expected call of GetCompanyByBillingCustomer.
func (mr *MockStorageInterfaceMockRecorder) GetCompanyByBillingCustomer(ctx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCompanyByBillingCustomer", reflect.TypeOf((*MockStorageInterface)(nil).GetCompanyByBillingCustomer), ctx, customerID)
}

// GetCompanyByID mocks base method.
func (m *MockStorageInterface) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCompanyByID", ctx, id)
	ret0, _ := ret[0].(*types.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCompanyByID indicates an expected call of GetCompanyByID.
func (mr *MockStorageInterfaceMockRecorder) GetCompanyByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCompanyByID", reflect.TypeOf((*MockStorageInterface)(nil).GetCompanyByID), ctx, id)
}

// HasRole mocks base method.
func (m *MockStorageInterface) HasRole(ctx context.Context, userID, role string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasRole", ctx, userID, role)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasRole indicates an expected call of HasRole.
func (mr *MockStorageInterfaceMockRecorder) HasRole(ctx, userID, role any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasRole", reflect.TypeOf((*MockStorageInterface)(nil).HasRole), ctx, userID, role)
}

// ListCompaniesByOwner mocks base method.
func (m *MockStorageInterface) ListCompaniesByOwner(ctx context.Context, userID string) ([]*types.Company, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCompaniesByOwner", ctx, userID)
	ret0, _ := ret[0].([]*types.Company)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCompaniesByOwner indicates an expected call of ListCompaniesByOwner.
func (mr *MockStorageInterfaceMockRecorder) ListCompaniesByOwner(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCompaniesByOwner", reflect.TypeOf((*MockStorageInterface)(nil).ListCompaniesByOwner), ctx, userID)
}

// ListIDs mocks base method.
func (m *MockStorageInterface) ListIDs(ctx context.Context, table, column string, values []string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListIDs", ctx, table, column, values)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListIDs indicates an expected call of ListIDs.
func (mr *MockStorageInterfaceMockRecorder) ListIDs(ctx, table, column, values any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListIDs", reflect.TypeOf((*MockStorageInterface)(nil).ListIDs), ctx, table, column, values)
}

// SetCompanyPlanStatus mocks base method.
func (m *MockStorageInterface) SetCompanyPlanStatus(ctx context.Context, id string, status types.PlanStatus) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetCompanyPlanStatus", ctx, id, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetCompanyPlanStatus indicates an expected call of SetCompanyPlanStatus.
func (mr *MockStorageInterfaceMockRecorder) SetCompanyPlanStatus(ctx, id, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetCompanyPlanStatus", reflect.TypeOf((*MockStorageInterface)(nil).SetCompanyPlanStatus), ctx, id, status)
}

// MockAuthzInterface is a mock of AuthzInterface interface.
type MockAuthzInterface struct {
	ctrl     *gomock.Controller
	recorder *MockAuthzInterfaceMockRecorder
	isgomock struct{}
}

// MockAuthzInterfaceMockRecorder is the mock recorder for MockAuthzInterface.
type MockAuthzInterfaceMockRecorder struct {
	mock *MockAuthzInterface
}

// NewMockAuthzInterface creates a new mock instance.
func NewMockAuthzInterface(ctrl *gomock.Controller) *MockAuthzInterface {
	mock := &MockAuthzInterface{ctrl: ctrl}
	mock.recorder = &MockAuthzInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuthzInterface) EXPECT() *MockAuthzInterfaceMockRecorder {
	return m.recorder
}

// DeleteCompany mocks base method.
func (m *MockAuthzInterface) DeleteCompany(ctx context.Context, companyID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCompany", ctx, companyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCompany indicates an expected call of DeleteCompany.
func (mr *MockAuthzInterfaceMockRecorder) DeleteCompany(ctx, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCompany", reflect.TypeOf((*MockAuthzInterface)(nil).DeleteCompany), ctx, companyID)
}

// IsSuperAdmin mocks base method.
func (m *MockAuthzInterface) IsSuperAdmin(ctx context.Context, userID string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSuperAdmin", ctx, userID)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSuperAdmin indicates an expected call of IsSuperAdmin.
func (mr *MockAuthzInterfaceMockRecorder) IsSuperAdmin(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSuperAdmin", reflect.TypeOf((*MockAuthzInterface)(nil).IsSuperAdmin), ctx, userID)
}

// MockKratosClientInterface is a mock of KratosClientInterface interface.
type MockKratosClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockKratosClientInterfaceMockRecorder
	isgomock struct{}
}

// MockKratosClientInterfaceMockRecorder is the mock recorder for MockKratosClientInterface.
type MockKratosClientInterfaceMockRecorder struct {
	mock *MockKratosClientInterface
}

// NewMockKratosClientInterface creates a new mock instance.
func NewMockKratosClientInterface(ctrl *gomock.Controller) *MockKratosClientInterface {
	mock := &MockKratosClientInterface{ctrl: ctrl}
	mock.recorder = &MockKratosClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKratosClientInterface) EXPECT() *MockKratosClientInterfaceMockRecorder {
	return m.recorder
}

// DeleteIdentity mocks base method.
func (m *MockKratosClientInterface) DeleteIdentity(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteIdentity", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteIdentity indicates an expected call of DeleteIdentity.
func (mr *MockKratosClientInterfaceMockRecorder) DeleteIdentity(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteIdentity", reflect.TypeOf((*MockKratosClientInterface)(nil).DeleteIdentity), ctx, id)
}

// MockBillingClientInterface is a mock of BillingClientInterface interface.
type MockBillingClientInterface struct {
	ctrl     *gomock.Controller
	recorder *MockBillingClientInterfaceMockRecorder
	isgomock struct{}
}

// MockBillingClientInterfaceMockRecorder is the mock recorder for MockBillingClientInterface.
type MockBillingClientInterfaceMockRecorder struct {
	mock *MockBillingClientInterface
}

// NewMockBillingClientInterface creates a new mock instance.
func NewMockBillingClientInterface(ctrl *gomock.Controller) *MockBillingClientInterface {
	mock := &MockBillingClientInterface{ctrl: ctrl}
	mock.recorder = &MockBillingClientInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBillingClientInterface) EXPECT() *MockBillingClientInterfaceMockRecorder {
	return m.recorder
}

// CancelAllSubscriptions mocks base method.
func (m *MockBillingClientInterface) CancelAllSubscriptions(ctx context.Context, customerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelAllSubscriptions", ctx, customerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelAllSubscriptions indicates an expected call of CancelAllSubscriptions.
func (mr *MockBillingClientInterfaceMockRecorder) CancelAllSubscriptions(ctx, customerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelAllSubscriptions", reflect.TypeOf((*MockBillingClientInterface)(nil).CancelAllSubscriptions), ctx, customerID)
}

// CreatePortalSession mocks base method.
func (m *MockBillingClientInterface) CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePortalSession", ctx, customerID, returnURL)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePortalSession indicates an expected call of CreatePortalSession.
func (mr *MockBillingClientInterfaceMockRecorder) CreatePortalSession(ctx, customerID, returnURL any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePortalSession", reflect.TypeOf((*MockBillingClientInterface)(nil).CreatePortalSession), ctx, customerID, returnURL)
}

// ParseWebhook mocks base method.
func (m *MockBillingClientInterface) ParseWebhook(payload []byte, signature string) (*billing.SubscriptionEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ParseWebhook", payload, signature)
	ret0, _ := ret[0].(*billing.SubscriptionEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ParseWebhook indicates an expected call of ParseWebhook.
func (mr *MockBillingClientInterfaceMockRecorder) ParseWebhook(payload, signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ParseWebhook", reflect.TypeOf((*MockBillingClientInterface)(nil).ParseWebhook), payload, signature)
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

// CreatePortalSession mocks base method.
func (m *MockServiceInterface) CreatePortalSession(ctx context.Context, callerID, returnURL string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePortalSession", ctx, callerID, returnURL)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePortalSession indicates an expected call of CreatePortalSession.
func (mr *MockServiceInterfaceMockRecorder) CreatePortalSession(ctx, callerID, returnURL any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePortalSession", reflect.TypeOf((*MockServiceInterface)(nil).CreatePortalSession), ctx, callerID, returnURL)
}

// DeleteCompany mocks base method.
func (m *MockServiceInterface) DeleteCompany(ctx context.Context, callerID, companyID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteCompany", ctx, callerID, companyID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteCompany indicates an expected call of DeleteCompany.
func (mr *MockServiceInterfaceMockRecorder) DeleteCompany(ctx, callerID, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteCompany", reflect.TypeOf((*MockServiceInterface)(nil).DeleteCompany), ctx, callerID, companyID)
}

// DeleteMyAccount mocks base method.
func (m *MockServiceInterface) DeleteMyAccount(ctx context.Context, callerID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteMyAccount", ctx, callerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteMyAccount indicates an expected call of DeleteMyAccount.
func (mr *MockServiceInterfaceMockRecorder) DeleteMyAccount(ctx, callerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteMyAccount", reflect.TypeOf((*MockServiceInterface)(nil).DeleteMyAccount), ctx, callerID)
}

// HandleBillingWebhook mocks base method.
func (m *MockServiceInterface) HandleBillingWebhook(ctx context.Context, payload []byte, signature string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HandleBillingWebhook", ctx, payload, signature)
	ret0, _ := ret[0].(error)
	return ret0
}

// HandleBillingWebhook indicates an expected call of HandleBillingWebhook.
func (mr *MockServiceInterfaceMockRecorder) HandleBillingWebhook(ctx, payload, signature any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HandleBillingWebhook", reflect.TypeOf((*MockServiceInterface)(nil).HandleBillingWebhook), ctx, payload, signature)
}
