package technicianrepo_test

import (
	"context"
	"testing"
	"time"

	"fieldops/internal/adapters/out/postgres/technicianrepo"
	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TechnicianRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *technicianrepo.GormTechnicianRepository
}

func (suite *TechnicianRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&technicianrepo.TechnicianDTO{}))
}

func (suite *TechnicianRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE technicians").Error)
	suite.repository = technicianrepo.NewGormTechnicianRepository(suite.db)
}

func (suite *TechnicianRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TechnicianRepositoryIntegrationTestSuite) seedTechnician(name, phone string) kernel.UUID {
	id := kernel.NewUUID()
	dto := technicianrepo.TechnicianDTO{
		ID:    id.Bytes(),
		Name:  name,
		Phone: phone,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *TechnicianRepositoryIntegrationTestSuite) TestGetContact_Found() {
	id := suite.seedTechnician("Alex Moreno", "+15550100")

	contact, err := suite.repository.GetContact(context.Background(), id)
	suite.Require().NoError(err)
	suite.Equal(id, contact.ID())
	suite.Equal("Alex Moreno", contact.Name())
	suite.Equal("+15550100", contact.Phone())
	suite.True(contact.HasPhone())
}

func (suite *TechnicianRepositoryIntegrationTestSuite) TestGetContact_NoPhone() {
	id := suite.seedTechnician("Sam Qureshi", "")

	contact, err := suite.repository.GetContact(context.Background(), id)
	suite.Require().NoError(err)
	suite.False(contact.HasPhone())
}

func (suite *TechnicianRepositoryIntegrationTestSuite) TestGetContact_Missing_ReturnsNotFound() {
	_, err := suite.repository.GetContact(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestTechnicianRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TechnicianRepositoryIntegrationTestSuite))
}
