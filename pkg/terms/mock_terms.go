// Code generated by MockGen. DO NOT EDIT.
// Source: ./interfaces.go
//
// Generated by this command:
//
//	mockgen -build_flags=--mod=mod -package terms -destination ./mock_terms.go -source=./interfaces.go
//

// Package terms is a generated GoMock package.
package terms

import (
	context "context"
	reflect "reflect"

	mail "github.com/barbersoft/account-service/internal/mail"
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

// ConsumeTermToken mocks base method.
func (m *MockStorageInterface) ConsumeTermToken(ctx context.Context, token string) (*types.Barber, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConsumeTermToken", ctx, token)
	ret0, _ := ret[0].(*types.Barber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConsumeTermToken indicates an expected call of ConsumeTermToken.
func (mr *MockStorageInterfaceMockRecorder) ConsumeTermToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumeTermToken", reflect.TypeOf((*MockStorageInterface)(nil).ConsumeTermToken), ctx, token)
}

// CreateTermAcceptance mocks base method.
func (m *MockStorageInterface) CreateTermAcceptance(ctx context.Context, a *types.TermAcceptance) (*types.TermAcceptance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTermAcceptance", ctx, a)
	ret0, _ := ret[0].(*types.TermAcceptance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateTermAcceptance indicates an expected call of CreateTermAcceptance.
func (mr *MockStorageInterfaceMockRecorder) CreateTermAcceptance(ctx, a any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTermAcceptance", reflect.TypeOf((*MockStorageInterface)(nil).CreateTermAcceptance), ctx, a)
}

// GetBarber mocks base method.
func (m *MockStorageInterface) GetBarber(ctx context.Context, id string) (*types.Barber, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBarber", ctx, id)
	ret0, _ := ret[0].(*types.Barber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBarber indicates an expected call of GetBarber.
func (mr *MockStorageInterfaceMockRecorder) GetBarber(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBarber", reflect.TypeOf((*MockStorageInterface)(nil).GetBarber), ctx, id)
}

// GetBarberByTermToken mocks base method.
func (m *MockStorageInterface) GetBarberByTermToken(ctx context.Context, token string) (*types.Barber, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBarberByTermToken", ctx, token)
	ret0, _ := ret[0].(*types.Barber)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBarberByTermToken indicates an expected call of GetBarberByTermToken.
func (mr *MockStorageInterfaceMockRecorder) GetBarberByTermToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBarberByTermToken", reflect.TypeOf((*MockStorageInterface)(nil).GetBarberByTermToken), ctx, token)
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

// GetTerm mocks base method.
func (m *MockStorageInterface) GetTerm(ctx context.Context, id string) (*types.PartnershipTerm, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTerm", ctx, id)
	ret0, _ := ret[0].(*types.PartnershipTerm)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTerm indicates an expected call of GetTerm.
func (mr *MockStorageInterfaceMockRecorder) GetTerm(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTerm", reflect.TypeOf((*MockStorageInterface)(nil).GetTerm), ctx, id)
}

// GetTermAcceptance mocks base method.
func (m *MockStorageInterface) GetTermAcceptance(ctx context.Context, barberID, termID string) (*types.TermAcceptance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTermAcceptance", ctx, barberID, termID)
	ret0, _ := ret[0].(*types.TermAcceptance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTermAcceptance indicates an expected call of GetTermAcceptance.
func (mr *MockStorageInterfaceMockRecorder) GetTermAcceptance(ctx, barberID, termID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTermAcceptance", reflect.TypeOf((*MockStorageInterface)(nil).GetTermAcceptance), ctx, barberID, termID)
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

// ListActiveTerms mocks base method.
func (m *MockStorageInterface) ListActiveTerms(ctx context.Context, companyID string) ([]*types.PartnershipTerm, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveTerms", ctx, companyID)
	ret0, _ := ret[0].([]*types.PartnershipTerm)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveTerms indicates an expected call of ListActiveTerms.
func (mr *MockStorageInterfaceMockRecorder) ListActiveTerms(ctx, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveTerms", reflect.TypeOf((*MockStorageInterface)(nil).ListActiveTerms), ctx, companyID)
}

// SetBarberActive mocks base method.
func (m *MockStorageInterface) SetBarberActive(ctx context.Context, barberID string, active bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBarberActive", ctx, barberID, active)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBarberActive indicates an expected call of SetBarberActive.
func (mr *MockStorageInterfaceMockRecorder) SetBarberActive(ctx, barberID, active any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBarberActive", reflect.TypeOf((*MockStorageInterface)(nil).SetBarberActive), ctx, barberID, active)
}

// SetBarberTermToken mocks base method.
func (m *MockStorageInterface) SetBarberTermToken(ctx context.Context, barberID, token string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBarberTermToken", ctx, barberID, token)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBarberTermToken indicates an expected call of SetBarberTermToken.
func (mr *MockStorageInterfaceMockRecorder) SetBarberTermToken(ctx, barberID, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBarberTermToken", reflect.TypeOf((*MockStorageInterface)(nil).SetBarberTermToken), ctx, barberID, token)
}

// MockTxInterface is a mock of TxInterface interface.
type MockTxInterface struct {
	ctrl     *gomock.Controller
	recorder *MockTxInterfaceMockRecorder
	isgomock struct{}
}

// MockTxInterfaceMockRecorder is the mock recorder for MockTxInterface.
type MockTxInterfaceMockRecorder struct {
	mock *MockTxInterface
}

// NewMockTxInterface creates a new mock instance.
func NewMockTxInterface(ctrl *gomock.Controller) *MockTxInterface {
	mock := &MockTxInterface{ctrl: ctrl}
	mock.recorder = &MockTxInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxInterface) EXPECT() *MockTxInterfaceMockRecorder {
	return m.recorder
}

// WithTx mocks base method.
func (m *MockTxInterface) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTx", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTx indicates an expected call of WithTx.
func (mr *MockTxInterfaceMockRecorder) WithTx(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTx", reflect.TypeOf((*MockTxInterface)(nil).WithTx), ctx, fn)
}

// MockMailerInterface is a mock of MailerInterface interface.
type MockMailerInterface struct {
	ctrl     *gomock.Controller
	recorder *MockMailerInterfaceMockRecorder
	isgomock struct{}
}

// MockMailerInterfaceMockRecorder is the mock recorder for MockMailerInterface.
type MockMailerInterfaceMockRecorder struct {
	mock *MockMailerInterface
}

// NewMockMailerInterface creates a new mock instance.
func NewMockMailerInterface(ctrl *gomock.Controller) *MockMailerInterface {
	mock := &MockMailerInterface{ctrl: ctrl}
	mock.recorder = &MockMailerInterfaceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMailerInterface) EXPECT() *MockMailerInterfaceMockRecorder {
	return m.recorder
}

// Send mocks base method.
func (m *MockMailerInterface) Send(ctx context.Context, msg mail.Message) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Send", ctx, msg)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Send indicates an expected call of Send.
func (mr *MockMailerInterfaceMockRecorder) Send(ctx, msg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Send", reflect.TypeOf((*MockMailerInterface)(nil).Send), ctx, msg)
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

// Accept mocks base method.
func (m *MockServiceInterface) Accept(ctx context.Context, req AcceptRequest) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Accept", ctx, req)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Accept indicates an expected call of Accept.
func (mr *MockServiceInterfaceMockRecorder) Accept(ctx, req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Accept", reflect.TypeOf((*MockServiceInterface)(nil).Accept), ctx, req)
}

// ActiveTerm mocks base method.
func (m *MockServiceInterface) ActiveTerm(ctx context.Context, companyID string) (*types.PartnershipTerm, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveTerm", ctx, companyID)
	ret0, _ := ret[0].(*types.PartnershipTerm)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ActiveTerm indicates an expected call of ActiveTerm.
func (mr *MockServiceInterfaceMockRecorder) ActiveTerm(ctx, companyID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveTerm", reflect.TypeOf((*MockServiceInterface)(nil).ActiveTerm), ctx, companyID)
}

// IssueToken mocks base method.
func (m *MockServiceInterface) IssueToken(ctx context.Context, barberID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IssueToken", ctx, barberID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IssueToken indicates an expected call of IssueToken.
func (mr *MockServiceInterfaceMockRecorder) IssueToken(ctx, barberID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IssueToken", reflect.TypeOf((*MockServiceInterface)(nil).IssueToken), ctx, barberID)
}

// LoadAcceptance mocks base method.
func (m *MockServiceInterface) LoadAcceptance(ctx context.Context, token string) (*Acceptance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadAcceptance", ctx, token)
	ret0, _ := ret[0].(*Acceptance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LoadAcceptance indicates an expected call of LoadAcceptance.
func (mr *MockServiceInterfaceMockRecorder) LoadAcceptance(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadAcceptance", reflect.TypeOf((*MockServiceInterface)(nil).LoadAcceptance), ctx, token)
}

// LookupByToken mocks base method.
func (m *MockServiceInterface) LookupByToken(ctx context.Context, token string) (*BarberView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LookupByToken", ctx, token)
	ret0, _ := ret[0].(*BarberView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LookupByToken indicates an expected call of LookupByToken.
func (mr *MockServiceInterfaceMockRecorder) LookupByToken(ctx, token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LookupByToken", reflect.TypeOf((*MockServiceInterface)(nil).LookupByToken), ctx, token)
}

// SendByEmail mocks base method.
func (m *MockServiceInterface) SendByEmail(ctx context.Context, callerID, barberID, termID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendByEmail", ctx, callerID, barberID, termID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendByEmail indicates an expected call of SendByEmail.
func (mr *MockServiceInterfaceMockRecorder) SendByEmail(ctx, callerID, barberID, termID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendByEmail", reflect.TypeOf((*MockServiceInterface)(nil).SendByEmail), ctx, callerID, barberID, termID)
}

// SetBarberActive mocks base method.
func (m *MockServiceInterface) SetBarberActive(ctx context.Context, callerID, barberID string, active bool) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBarberActive", ctx, callerID, barberID, active)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBarberActive indicates an expected call of SetBarberActive.
func (mr *MockServiceInterfaceMockRecorder) SetBarberActive(ctx, callerID, barberID, active any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBarberActive", reflect.TypeOf((*MockServiceInterface)(nil).SetBarberActive), ctx, callerID, barberID, active)
}

// TermStatus mocks base method.
func (m *MockServiceInterface) TermStatus(ctx context.Context, callerID, barberID string) (*Status, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TermStatus", ctx, callerID, barberID)
	ret0, _ := ret[0].(*Status)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TermStatus indicates an expected call of TermStatus.
func (mr *MockServiceInterfaceMockRecorder) TermStatus(ctx, callerID, barberID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TermStatus", reflect.TypeOf((*MockServiceInterface)(nil).TermStatus), ctx, callerID, barberID)
}
