package repository

import (
	"testing"
	"time"

	"ai-roadmap-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RoadmapRepositoryTestSuite tests the RoadmapRepository
type RoadmapRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RoadmapRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RoadmapRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewRoadmapRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RoadmapRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RoadmapRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RoadmapRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new roadmap
func (suite *RoadmapRepositoryTestSuite) TestCreate() {
	roadmap := suite.factories.Roadmap.Create()
	roadmap.ID = uuid.Nil

	err := suite.repo.Create(roadmap)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, roadmap.ID)
	suite.NotZero(roadmap.CreatedAt)
}

// TestGetByID tests that a stored roadmap round-trips unchanged
func (suite *RoadmapRepositoryTestSuite) TestGetByID() {
	roadmap := suite.factories.Roadmap.Create()
	err := suite.repo.Create(roadmap)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(roadmap.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(roadmap.ID, retrieved.ID)
	suite.Equal(roadmap.OrganizationName, retrieved.OrganizationName)
	suite.Equal(roadmap.OrganizationSize, retrieved.OrganizationSize)
	suite.Equal(roadmap.Industry, retrieved.Industry)
	suite.Equal(roadmap.AIMaturity, retrieved.AIMaturity)
	suite.Equal(roadmap.Goals, retrieved.Goals)
	suite.Equal(roadmap.Phases, retrieved.Phases)
	suite.Equal(roadmap.MermaidChart, retrieved.MermaidChart)
}

// TestGetByIDNotFound tests retrieving a non-existent roadmap
func (suite *RoadmapRepositoryTestSuite) TestGetByIDNotFound() {
	nonExistentID := uuid.New()

	roadmap, err := suite.repo.GetByID(nonExistentID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(roadmap)
}

// TestGetAllOrdering tests that listing returns newest roadmaps first
func (suite *RoadmapRepositoryTestSuite) TestGetAllOrdering() {
	first := suite.factories.Roadmap.WithOrganization("First Org")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Roadmap.WithOrganization("Second Org")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.NoError(suite.repo.Create(second))

	roadmaps, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(roadmaps, 2)
	suite.Equal("Second Org", roadmaps[0].OrganizationName)
	suite.Equal("First Org", roadmaps[1].OrganizationName)
}

// TestGetAllPagination tests limit and offset behavior
func (suite *RoadmapRepositoryTestSuite) TestGetAllPagination() {
	for i := 0; i < 3; i++ {
		roadmap := suite.factories.Roadmap.Create()
		suite.NoError(suite.repo.Create(roadmap))
	}

	page, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(page, 2)

	rest, total, err := suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(rest, 1)
}

// TestGetAllEmpty tests listing with no stored roadmaps
func (suite *RoadmapRepositoryTestSuite) TestGetAllEmpty() {
	roadmaps, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(roadmaps)
}

func TestRoadmapRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RoadmapRepositoryTestSuite))
}
