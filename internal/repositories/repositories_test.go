package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"renti/internal/common"
	"renti/internal/models"
)

var testNow = time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)

type RepositoriesTestSuite struct {
	suite.Suite
	repos   *Repositories
	context context.Context
}

func (suite *RepositoriesTestSuite) SetupTest() {
	suite.repos = NewRepositories(SeedDataset(testNow))
	suite.context = context.Background()
}

func TestRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}

func (suite *RepositoriesTestSuite) TestCreate_AssignsNextID() {
	tenant := &models.Tenant{Name: "Grace Wanjiru", Room: "2A"}
	suite.NoError(suite.repos.Tenants.Create(suite.context, tenant))
	suite.Equal(7, tenant.ID)

	suite.NoError(suite.repos.Tenants.Delete(suite.context, 7))

	again := &models.Tenant{Name: "Hassan Omondi", Room: "4B"}
	suite.NoError(suite.repos.Tenants.Create(suite.context, again))
	suite.Equal(8, again.ID, "ids are never reused")
}

func (suite *RepositoriesTestSuite) TestCreate_MaintenanceCode() {
	request := &models.MaintenanceRequest{Tenant: "Bob Kamau", Room: "1B", Issue: "Broken window"}
	suite.NoError(suite.repos.Maintenance.Create(suite.context, request))
	suite.Equal(5, request.ID)
	suite.Equal("MR-005", request.Code)
}

func (suite *RepositoriesTestSuite) TestGetByID_ReturnsCopy() {
	tenant, err := suite.repos.Tenants.GetByID(suite.context, 1)
	suite.NoError(err)
	tenant.Name = "Changed"

	stored, err := suite.repos.Tenants.GetByID(suite.context, 1)
	suite.NoError(err)
	suite.Equal("Alice Kipchoge", stored.Name)
}

func (suite *RepositoriesTestSuite) TestNotFound() {
	_, err := suite.repos.Tenants.GetByID(suite.context, 99)
	suite.True(errors.Is(err, ErrNotFound))

	_, err = suite.repos.Rooms.GetByNumber(suite.context, "9Z")
	suite.True(errors.Is(err, ErrNotFound))

	err = suite.repos.Maintenance.Delete(suite.context, 42)
	suite.True(errors.Is(err, ErrNotFound))

	_, err = suite.repos.Conversations.GetByID(suite.context, uuid.New())
	suite.True(errors.Is(err, ErrNotFound))
}

func (suite *RepositoriesTestSuite) TestFindByPhone() {
	tenant, err := suite.repos.Tenants.FindByPhone(suite.context, func(phone string) bool {
		return common.SamePhone(phone, "0723456789")
	})
	suite.NoError(err)
	suite.Equal("Bob Kamau", tenant.Name)
}

func (suite *RepositoriesTestSuite) TestRevisionBumpsOnWrite() {
	before := suite.repos.Tenants.Revision()

	_, err := suite.repos.Tenants.SetStatus(suite.context, 2, models.PaymentStatus.Toggled)
	suite.NoError(err)
	suite.Greater(suite.repos.Tenants.Revision(), before)

	reads := suite.repos.Tenants.Revision()
	_, err = suite.repos.Tenants.List(suite.context)
	suite.NoError(err)
	suite.Equal(reads, suite.repos.Tenants.Revision())
}

func (suite *RepositoriesTestSuite) TestReload_DiscardsChanges() {
	suite.NoError(suite.repos.Rooms.Delete(suite.context, 3))
	conversation := &models.Conversation{ID: uuid.New(), CreatedAt: testNow}
	suite.NoError(suite.repos.Conversations.Create(suite.context, conversation))

	suite.repos.Reload(SeedDataset(testNow))

	rooms, err := suite.repos.Rooms.List(suite.context)
	suite.NoError(err)
	suite.Len(rooms, 8)
	_, err = suite.repos.Conversations.GetByID(suite.context, conversation.ID)
	suite.True(errors.Is(err, ErrNotFound))
}

func (suite *RepositoriesTestSuite) TestActivityRecent_NewestFirst() {
	entries, err := suite.repos.Activity.Recent(suite.context, 2)
	suite.NoError(err)
	suite.Len(entries, 2)
	suite.Equal("KES 45,000 from Alice Kipchoge", entries[0].Description)
	suite.True(entries[0].Timestamp.After(entries[1].Timestamp))
}

func TestCollection_ConcurrentInserts(t *testing.T) {
	repo := NewPaymentRepository(nil)
	const writers = 20
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				assert.NoError(t, repo.Create(context.Background(), &models.Payment{Tenant: "Load", Amount: 1000}))
			}
		}()
	}
	wg.Wait()

	payments, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, payments, writers*perWriter)

	seen := make(map[int]bool, len(payments))
	for _, p := range payments {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
}

func TestSeedDataset_RelativeDates(t *testing.T) {
	data := SeedDataset(testNow)

	assert.Len(t, data.Tenants, 6)
	assert.Len(t, data.Rooms, 8)
	assert.Equal(t, "2024-02-19", data.Tenants[1].LeaseExpiry.String())
	assert.Equal(t, "2024-01-20", data.Payments[3].DueDate.String())
	assert.True(t, data.Settings.Notifications)
}
