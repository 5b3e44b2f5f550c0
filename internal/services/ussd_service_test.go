package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"renti/internal/models"
	"renti/internal/repositories"
)

type USSDServiceTestSuite struct {
	suite.Suite
	repos    *repositories.Repositories
	notifier *MockNotifier
	service  USSDService
	ctx      context.Context
}

func (suite *USSDServiceTestSuite) SetupTest() {
	suite.repos = newTestRepositories()
	suite.notifier = new(MockNotifier)
	activity := new(MockActivityService)
	activity.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	maintenance := NewMaintenanceService(suite.repos.Maintenance, activity, newTestClock())
	suite.service = NewUSSDService(suite.repos.Tenants, maintenance, suite.notifier)
	suite.ctx = context.Background()
}

func (suite *USSDServiceTestSuite) handle(phone, text string) string {
	return suite.service.Handle(suite.ctx, &models.USSDRequest{
		SessionID:   "ATUid_1",
		ServiceCode: "*384*1234#",
		PhoneNumber: phone,
		Text:        text,
	})
}

func (suite *USSDServiceTestSuite) TestMenus() {
	suite.Equal("CON Karibu Renti\n1. Check Rent Balance\n2. Report Maintenance", suite.handle("+254712345678", ""))
	suite.Equal("CON Select Issue Type\n1. Plumbing\n2. Electricity\n3. Other", suite.handle("+254712345678", "2"))
	suite.Equal(USSDInvalidChoice, suite.handle("+254712345678", "2*1*1"))
	suite.Equal(USSDInvalidOption, suite.handle("+254712345678", "3"))
}

func (suite *USSDServiceTestSuite) TestRentBalance() {
	// Bob is Due
	suite.Equal("END Your rent balance is KES 45,000", suite.handle("254723456789", "1"))
	// Alice is Paid
	suite.Equal("END Your rent balance is KES 0", suite.handle("0712345678", "1"))
	suite.Equal(USSDUnregistered, suite.handle("+254700000000", "1"))
}

func (suite *USSDServiceTestSuite) TestReportMaintenance() {
	suite.notifier.On("Notify", mock.Anything, "+254745678901", "Renti: your electricity request MR-005 has been received.").Once()

	reply := suite.handle("+254745678901", "2*2")
	suite.Equal("END Maintenance request for Electricity submitted successfully.", reply)

	request, err := suite.repos.Maintenance.GetByID(suite.ctx, 5)
	suite.Require().NoError(err)
	suite.Equal("David Kipchoge", request.Tenant)
	suite.Equal("3A", request.Room)
	suite.Equal(models.MaintenanceTypeElectrical, request.Type)
	suite.Equal(models.MaintenanceStatusPending, request.Status)
	suite.notifier.AssertExpectations(suite.T())
}

func (suite *USSDServiceTestSuite) TestReportMaintenance_UnknownChoiceAndCaller() {
	suite.notifier.On("Notify", mock.Anything, "+254700000000", mock.Anything).Once()

	reply := suite.handle("+254700000000", "2*9")
	suite.Equal("END Maintenance request for Other submitted successfully.", reply)

	request, err := suite.repos.Maintenance.GetByID(suite.ctx, 5)
	suite.Require().NoError(err)
	suite.Equal("+254700000000", request.Tenant)
	suite.Equal(models.MaintenanceTypeOther, request.Type)
}

func TestUSSDServiceTestSuite(t *testing.T) {
	suite.Run(t, new(USSDServiceTestSuite))
}

func TestUSSDService_FailureReply(t *testing.T) {
	repo := new(MockTenantRepository)
	repo.On("FindByPhone", mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable"))

	service := NewUSSDService(repo, nil, new(MockNotifier))
	reply := service.Handle(context.Background(), &models.USSDRequest{PhoneNumber: "+254712345678", Text: "1"})
	assert.Equal(t, USSDFailure, reply)
}

func TestAsyncNotifier(t *testing.T) {
	sms := new(MockSMSService)
	sms.On("Send", mock.Anything, "+254712345678", "hello").Return(&models.SMSResult{Status: "Success"}, nil).Once()
	sms.On("Send", mock.Anything, "+254723456789", "hello").Return(nil, errors.New("gateway down")).Once()

	notifier := NewAsyncNotifier(sms, testTimeout)
	ctx, cancel := context.WithCancel(context.Background())
	notifier.Notify(ctx, "+254712345678", "hello")
	notifier.Notify(ctx, "+254723456789", "hello")
	cancel()
	notifier.Wait()

	sms.AssertExpectations(t)
	assert.ElementsMatch(t, []string{"+254712345678", "+254723456789"}, sms.sent)
}
