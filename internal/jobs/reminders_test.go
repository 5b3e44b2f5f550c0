package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"renti/internal/models"
	"renti/internal/repositories"
	"renti/internal/services"
)

var testNow = time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)

type MockSMSService struct {
	mock.Mock
}

func (m *MockSMSService) Send(ctx context.Context, to, message string) (*models.SMSResult, error) {
	args := m.Called(ctx, to, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SMSResult), args.Error(1)
}

func (m *MockSMSService) Stubbed() bool {
	return m.Called().Bool(0)
}

type ReminderServiceTestSuite struct {
	suite.Suite
	repos    *repositories.Repositories
	sms      *MockSMSService
	settings services.SettingsService
	service  *ReminderService
	ctx      context.Context
}

func (suite *ReminderServiceTestSuite) SetupTest() {
	suite.repos = repositories.NewRepositories(repositories.SeedDataset(testNow))
	clock := clockwork.NewFakeClockAt(testNow)
	suite.sms = new(MockSMSService)
	suite.settings = services.NewSettingsService(suite.repos.Settings)
	activity := services.NewActivityService(suite.repos.Activity, clock)
	suite.service = NewReminderService(suite.repos, suite.settings, suite.sms, activity, clock)
	suite.ctx = context.Background()
}

func (suite *ReminderServiceTestSuite) TestLeaseExpiryReminders() {
	reminders, err := suite.service.LeaseExpiryReminders(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(reminders, 2)

	suite.Equal("Bob Kamau", reminders[0].Tenant)
	suite.Equal("Renti: your lease for room 1B expires on 2024-02-19. Please contact your landlord to renew.", reminders[0].Message)
	suite.Equal("David Kipchoge", reminders[1].Tenant)
	suite.Equal("Renti: your lease for room 3A expired on 2024-02-04. Please contact your landlord to renew.", reminders[1].Message)
}

func (suite *ReminderServiceTestSuite) TestOverdueRentReminders() {
	reminders, err := suite.service.OverdueRentReminders(suite.ctx)
	suite.NoError(err)
	suite.Require().Len(reminders, 2)
	suite.Equal("Renti: rent of KES 48,000 for room 3A is 25 days overdue. Please pay as soon as possible.", reminders[0].Message)
	suite.Equal("Frank Kipchoge", reminders[1].Tenant)
}

func (suite *ReminderServiceTestSuite) TestRunOverdueRent_SendsOncePerPayment() {
	suite.sms.On("Send", mock.Anything, "+254 745 678 901", mock.Anything).Return(&models.SMSResult{Status: "Success"}, nil).Once()
	suite.sms.On("Send", mock.Anything, "+254 767 890 123", mock.Anything).Return(&models.SMSResult{Status: "Success"}, nil).Once()

	sent, err := suite.service.RunOverdueRent(suite.ctx)
	suite.NoError(err)
	suite.Equal(2, sent)

	sent, err = suite.service.RunOverdueRent(suite.ctx)
	suite.NoError(err)
	suite.Equal(0, sent)
	suite.sms.AssertExpectations(suite.T())

	recent, err := suite.repos.Activity.Recent(suite.ctx, 1)
	suite.NoError(err)
	suite.Equal(models.ActivityReminder, recent[0].Type)
	suite.Equal("Rent Reminder", recent[0].Title)
}

func (suite *ReminderServiceTestSuite) TestSend_FailedSendIsRetried() {
	suite.sms.On("Send", mock.Anything, "+254 723 456 789", mock.Anything).Return(nil, errors.New("gateway down")).Once()
	suite.sms.On("Send", mock.Anything, "+254 745 678 901", mock.Anything).Return(&models.SMSResult{}, nil).Once()

	sent, err := suite.service.RunLeaseExpiry(suite.ctx)
	suite.NoError(err)
	suite.Equal(1, sent)

	suite.sms.On("Send", mock.Anything, "+254 723 456 789", mock.Anything).Return(&models.SMSResult{}, nil).Once()
	sent, err = suite.service.RunLeaseExpiry(suite.ctx)
	suite.NoError(err)
	suite.Equal(1, sent)
	suite.sms.AssertExpectations(suite.T())
}

func (suite *ReminderServiceTestSuite) TestSend_SkipsWhenNotificationsDisabled() {
	_, err := suite.settings.SetNotifications(suite.ctx, false)
	suite.Require().NoError(err)

	sent, err := suite.service.RunOverdueRent(suite.ctx)
	suite.NoError(err)
	suite.Equal(0, sent)
	suite.sms.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestSend_SkipsUnknownTenant() {
	sent := suite.service.Send(suite.ctx, []Reminder{{Kind: ReminderOverdueRent, Key: "x", Tenant: "Nobody", Message: "hi"}})
	suite.Equal(0, sent)
	suite.sms.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReminderServiceTestSuite) TestReset_AllowsResend() {
	suite.sms.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(&models.SMSResult{}, nil)

	sent, _ := suite.service.RunOverdueRent(suite.ctx)
	suite.Equal(2, sent)
	suite.service.Reset()
	sent, _ = suite.service.RunOverdueRent(suite.ctx)
	suite.Equal(2, sent)
}

func TestReminderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReminderServiceTestSuite))
}
