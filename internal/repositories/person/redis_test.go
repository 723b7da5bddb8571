package person

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPerson() {
	err := s.repo.SavePerson(context.Background(), &SavePersonInput{
		Person: &models.Person{
			ID:        "person-1",
			Name:      "Pablo",
			Status:    models.PersonStatusActive,
			CreatedAt: s.testNow,
		},
	})
	s.Require().NoError(err)

	person, err := s.repo.GetPerson(context.Background(), &GetPersonInput{PersonID: "person-1"})
	s.Require().NoError(err)
	s.Equal("Pablo", person.Name)
	s.Equal(models.PersonStatusActive, person.Status)
	s.Equal(s.testNow.Unix(), person.CreatedAt.Unix())

	byName, err := s.repo.GetPersonByName(context.Background(), &GetPersonByNameInput{Name: "pablo"})
	s.Require().NoError(err)
	s.Equal("person-1", byName.ID)
}

func (s *RedisRepositoryTestSuite) TestNameIsUnique() {
	ctx := context.Background()
	s.Require().NoError(s.repo.SavePerson(ctx, &SavePersonInput{
		Person: &models.Person{ID: "person-1", Name: "Javi", Status: models.PersonStatusNew},
	}))

	err := s.repo.SavePerson(ctx, &SavePersonInput{
		Person: &models.Person{ID: "person-2", Name: "Javi", Status: models.PersonStatusNew},
	})
	s.ErrorIs(err, ErrNameTaken)

	// Renaming releases the old name
	s.Require().NoError(s.repo.SavePerson(ctx, &SavePersonInput{
		Person: &models.Person{ID: "person-1", Name: "Javier", Status: models.PersonStatusActive},
	}))
	s.Require().NoError(s.repo.SavePerson(ctx, &SavePersonInput{
		Person: &models.Person{ID: "person-2", Name: "Javi", Status: models.PersonStatusNew},
	}))
}

func (s *RedisRepositoryTestSuite) TestListEligiblePersons() {
	ctx := context.Background()
	roster := []*models.Person{
		{ID: "p-fer", Name: "Fer", Status: models.PersonStatusActive},
		{ID: "p-cuco", Name: "Cuco", Status: models.PersonStatusActive},
		{ID: "p-oli", Name: "Oli", Status: models.PersonStatusInactive},
		{ID: "p-emilio", Name: "Emilio", Status: models.PersonStatusNew},
		{ID: "p-jesus", Name: "Jesus", Status: models.PersonStatusActive, Deleted: true},
	}
	for _, p := range roster {
		s.Require().NoError(s.repo.SavePerson(ctx, &SavePersonInput{Person: p}))
	}

	all, err := s.repo.ListPersons(ctx, &ListPersonsInput{})
	s.Require().NoError(err)
	s.Len(all.Persons, 5)

	eligible, err := s.repo.ListPersons(ctx, &ListPersonsInput{EligibleOnly: true})
	s.Require().NoError(err)
	s.Require().Len(eligible.Persons, 2)
	s.Equal("Cuco", eligible.Persons[0].Name)
	s.Equal("Fer", eligible.Persons[1].Name)
}

func (s *RedisRepositoryTestSuite) TestGetMissingPerson() {
	_, err := s.repo.GetPerson(context.Background(), &GetPersonInput{PersonID: "nobody"})
	s.Equal(ErrPersonNotFound, err)

	_, err = s.repo.GetPersonByName(context.Background(), &GetPersonByNameInput{Name: "Nobody"})
	s.Equal(ErrPersonNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestEmptyRoster() {
	output, err := s.repo.ListPersons(context.Background(), &ListPersonsInput{EligibleOnly: true})
	s.Require().NoError(err)
	s.Empty(output.Persons)
}
