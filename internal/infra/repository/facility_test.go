//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-parking/internal/domain/facility"
	"smart-parking/internal/infra"
	"smart-parking/internal/infra/repository"
	sqlc "smart-parking/internal/infra/sqlc/generated"
	"smart-parking/tests/common/builder"
	repositorymock "smart-parking/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Load Facility Tests
// =============================================================================

func TestFacilityRepository_Load(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("success: facility reconstructed from spot rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		rows := builder.NewFacilityBuilder().WithOccupied("F2S3", "CAR-1", since).BuildInfraSpots()
		mockQueries.EXPECT().GetFacility(ctx, mockDB).Return(sqlc.Facilities{ID: 1, Name: "Test Facility"}, nil)
		mockQueries.EXPECT().ListSpots(ctx, mockDB).Return(rows, nil)

		f, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Test Facility", f.Name())
		assert.Equal(t, len(rows), f.SpotCount())
		s, ok := f.Spot("F2S3")
		require.True(t, ok)
		assert.True(t, s.HeldBy("CAR-1"))
	})

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockFacilityQueries, *mockDBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "error: facility row missing",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX) {
				mock.EXPECT().GetFacility(ctx, db).Return(sqlc.Facilities{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: listing spots fails",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX) {
				mock.EXPECT().GetFacility(ctx, db).Return(sqlc.Facilities{ID: 1, Name: "Test Facility"}, nil)
				mock.EXPECT().ListSpots(ctx, db).Return(nil, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: occupied row without vehicle id",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX) {
				mock.EXPECT().GetFacility(ctx, db).Return(sqlc.Facilities{ID: 1, Name: "Test Facility"}, nil)
				mock.EXPECT().ListSpots(ctx, db).Return([]sqlc.Spots{{
					SpotID: "F1S1", FloorNumber: 1, Position: 1, SpotClass: "car", IsOccupied: true,
				}}, nil)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: unknown spot class",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX) {
				mock.EXPECT().GetFacility(ctx, db).Return(sqlc.Facilities{ID: 1, Name: "Test Facility"}, nil)
				mock.EXPECT().ListSpots(ctx, db).Return([]sqlc.Spots{{
					SpotID: "F1S1", FloorNumber: 1, Position: 1, SpotClass: "truck",
				}}, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewFacilityRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			f, err := repo.Load(ctx)

			assert.Nil(t, f)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
		})
	}
}

// =============================================================================
// Create Facility Tests
// =============================================================================

func TestFacilityRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockFacilityQueries, *mockDBTX, *facility.Facility)
		expectCreated bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: facility and spots inserted",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX, f *facility.Facility) {
				mock.EXPECT().CreateFacility(ctx, db, f.Name()).Return(int64(1), nil)
				mock.EXPECT().CreateSpots(ctx, db, gomock.Len(f.SpotCount())).Return(int64(f.SpotCount()), nil)
			},
			expectCreated: true,
		},
		{
			name: "success: existing facility is kept",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX, f *facility.Facility) {
				mock.EXPECT().CreateFacility(ctx, db, f.Name()).Return(int64(0), nil)
			},
			expectCreated: false,
		},
		{
			name: "error: spot copy short",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX, f *facility.Facility) {
				mock.EXPECT().CreateFacility(ctx, db, f.Name()).Return(int64(1), nil)
				mock.EXPECT().CreateSpots(ctx, db, gomock.Any()).Return(int64(f.SpotCount()-1), nil)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: duplicate spot id",
			setupMock: func(mock *repositorymock.MockFacilityQueries, db *mockDBTX, f *facility.Facility) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateFacility(ctx, db, f.Name()).Return(int64(1), nil)
				mock.EXPECT().CreateSpots(ctx, db, gomock.Any()).Return(int64(0), dup)
			},
			expectKind: infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewFacilityRepository(mockQueries, mockDB)

			f, err := builder.NewFacilityBuilder().BuildDomain()
			require.NoError(t, err)
			tc.setupMock(mockQueries, mockDB, f)

			created, err := repo.Create(ctx, f)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectCreated, created)
		})
	}
}

// =============================================================================
// Spot Tests
// =============================================================================

func TestFacilityRepository_SaveSpot(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("success: occupancy written together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		s := facility.NewSpot("F1S3", 1, 3, facility.ClassCar)
		require.NoError(t, s.Occupy("CAR-1", since))

		mockQueries.EXPECT().UpdateSpotOccupancy(ctx, mockDB, sqlc.UpdateSpotOccupancyParams{
			SpotID:        "F1S3",
			IsOccupied:    true,
			VehicleID:     pgtype.Text{String: "CAR-1", Valid: true},
			OccupiedSince: pgtype.Timestamptz{Time: since, Valid: true},
		}).Return(int64(1), nil)

		assert.NoError(t, repo.SaveSpot(ctx, s))
	})

	t.Run("success: released spot clears every occupancy column", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSpotOccupancy(ctx, mockDB, sqlc.UpdateSpotOccupancyParams{SpotID: "F1S3"}).
			Return(int64(1), nil)

		assert.NoError(t, repo.SaveSpot(ctx, facility.NewSpot("F1S3", 1, 3, facility.ClassCar)))
	})

	t.Run("error: spot row missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		mockQueries.EXPECT().UpdateSpotOccupancy(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

		err := repo.SaveSpot(ctx, facility.NewSpot("F9S9", 9, 9, facility.ClassCar))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: check constraint violated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		check := &pgconn.PgError{Code: "23514", Message: "violates check constraint"}
		mockQueries.EXPECT().UpdateSpotOccupancy(ctx, mockDB, gomock.Any()).Return(int64(0), check)

		err := repo.SaveSpot(ctx, facility.NewSpot("F1S3", 1, 3, facility.ClassCar))
		assert.True(t, infra.IsKind(err, infra.KindConstraintViolated))
	})
}

func TestFacilityRepository_FindSpot(t *testing.T) {
	ctx := context.Background()

	t.Run("error: spot not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetSpot(ctx, mockDB, "F9S9").Return(sqlc.Spots{}, pgx.ErrNoRows)

		s, err := repo.FindSpot(ctx, "F9S9")
		assert.Nil(t, s)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success: free spot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockFacilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewFacilityRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetSpot(ctx, mockDB, "F1S1").
			Return(sqlc.Spots{SpotID: "F1S1", FloorNumber: 1, Position: 1, SpotClass: "bus"}, nil)

		s, err := repo.FindSpot(ctx, "F1S1")
		require.NoError(t, err)
		assert.Equal(t, facility.ClassBus, s.Class())
		assert.True(t, s.IsFree())
	})
}
