package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

func seedFestival(t *testing.T, d *FestivalDAO, name, university, region string) Festival {
	t.Helper()

	start := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	created, err := d.Insert(context.Background(), Festival{
		Name:       name,
		University: university,
		Region:     region,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		Location:   "캠퍼스",
		CreatedBy:  1,
	})
	require.NoError(t, err)

	return created
}

func TestFestivalDAO_JSONColumnsRoundTrip(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	description := "대학 축제"
	created, err := d.Insert(ctx, Festival{
		Name:        "녹색지대",
		University:  "건국대학교",
		Region:      "서울",
		StartDate:   time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 5, 22, 0, 0, 0, 0, time.UTC),
		Location:    "서울특별시 광진구",
		Description: &description,
		Lineup: LineupJSON{
			{Artist: "아이유", Time: "19:00", Stage: "메인무대"},
			{Artist: "싸이", Time: "21:00", Stage: "메인무대"},
		},
		Booths: BoothsJSON{
			{Name: "주점", Category: "음식", Location: "노천극장 앞", OperatingHours: "17:00-23:00"},
		},
		Transportation: TransportationJSON{&domain.Transportation{Parking: "불가", PublicTransport: "2호선 건대입구역"}},
		Admission:      AdmissionJSON{&domain.Admission{Fee: 0, Currency: "KRW", Notes: "무료"}},
		CreatedBy:      1,
	})
	require.NoError(t, err)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)

	require.Len(t, found.Lineup, 2)
	assert.Equal(t, "싸이", found.Lineup[1].Artist)
	require.Len(t, found.Booths, 1)
	assert.Equal(t, "17:00-23:00", found.Booths[0].OperatingHours)
	require.NotNil(t, found.Transportation.Transportation)
	assert.Equal(t, "2호선 건대입구역", found.Transportation.PublicTransport)
	require.NotNil(t, found.Admission.Admission)
	assert.Equal(t, "KRW", found.Admission.Currency)
}

func TestFestivalDAO_EmptyJSONColumnsStayEmpty(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	created := seedFestival(t, d, "녹색지대", "건국대학교", "서울")

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Empty(t, found.Lineup)
	assert.Empty(t, found.Booths)
	assert.Nil(t, found.Transportation.Transportation)
	assert.Nil(t, found.Admission.Admission)
}

func TestFestivalDAO_FindForAdmin(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	seedFestival(t, d, "녹색지대", "건국대학교", "서울")
	seedFestival(t, d, "대동제", "홍익대학교", "서울")

	t.Run("scoped to one university", func(t *testing.T) {
		festivals, err := d.FindForAdmin(ctx, "건국대학교")

		require.NoError(t, err)
		require.Len(t, festivals, 1)
		assert.Equal(t, "녹색지대", festivals[0].Name)
	})

	t.Run("empty scope lists everything", func(t *testing.T) {
		festivals, err := d.FindForAdmin(ctx, "")

		require.NoError(t, err)
		assert.Len(t, festivals, 2)
	})
}

func TestFestivalDAO_FindPublic(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	seedFestival(t, d, "녹색지대", "건국대학교", "서울")
	seedFestival(t, d, "대동제", "홍익대학교", "서울")
	seedFestival(t, d, "해오름식", "부산대학교", "부산")

	t.Run("region filter", func(t *testing.T) {
		festivals, total, err := d.FindPublic(ctx, domain.FestivalFilters{Region: "서울"}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, festivals, 2)
	})

	t.Run("keyword search matches the name", func(t *testing.T) {
		festivals, total, err := d.FindPublic(ctx, domain.FestivalFilters{Search: "녹색"}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, festivals, 1)
		assert.Equal(t, "녹색지대", festivals[0].Name)
	})

	t.Run("keyword search matches the university", func(t *testing.T) {
		_, total, err := d.FindPublic(ctx, domain.FestivalFilters{Search: "홍익"}, 0, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("pagination returns the full count", func(t *testing.T) {
		festivals, total, err := d.FindPublic(ctx, domain.FestivalFilters{}, 0, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, festivals, 2)
	})
}

func TestFestivalDAO_UpdateFields(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	created := seedFestival(t, d, "녹색지대", "건국대학교", "서울")

	updated, err := d.UpdateFields(ctx, created.ID, map[string]interface{}{
		"name":   "새 이름",
		"region": "경기",
	})
	require.NoError(t, err)
	assert.Equal(t, "새 이름", updated.Name)
	assert.Equal(t, "경기", updated.Region)
	assert.Equal(t, "건국대학교", updated.University)

	_, err = d.UpdateFields(ctx, 999, map[string]interface{}{"name": "새 이름"})
	assert.ErrorIs(t, err, ErrFestivalNotFound)
}

func TestFestivalDAO_Delete(t *testing.T) {
	d := NewFestivalDAO(newTestDB(t))
	ctx := context.Background()

	created := seedFestival(t, d, "녹색지대", "건국대학교", "서울")

	require.NoError(t, d.Delete(ctx, created.ID))

	_, err := d.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrFestivalNotFound)

	assert.ErrorIs(t, d.Delete(ctx, created.ID), ErrFestivalNotFound)
}
