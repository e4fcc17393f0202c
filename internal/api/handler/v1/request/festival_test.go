package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFestivalRequest_Validate(t *testing.T) {
	valid := CreateFestivalRequest{
		Name:       "녹색지대",
		University: "건국대학교",
		Region:     "서울",
		StartDate:  "2026-05-20",
		EndDate:    "2026-05-22",
		Location:   "서울특별시 광진구",
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	tests := []struct {
		name   string
		mutate func(r *CreateFestivalRequest)
	}{
		{"missing name", func(r *CreateFestivalRequest) { r.Name = "" }},
		{"missing university", func(r *CreateFestivalRequest) { r.University = "" }},
		{"missing region", func(r *CreateFestivalRequest) { r.Region = "" }},
		{"missing location", func(r *CreateFestivalRequest) { r.Location = "" }},
		{"slash date format", func(r *CreateFestivalRequest) { r.StartDate = "2026/05/20" }},
		{"datetime instead of date", func(r *CreateFestivalRequest) { r.EndDate = "2026-05-22T10:00:00Z" }},
		{"nonsense date", func(r *CreateFestivalRequest) { r.StartDate = "2026-13-40" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			assert.Error(t, req.Validate())
		})
	}
}

func TestCreateFestivalRequest_ToDomain(t *testing.T) {
	req := CreateFestivalRequest{
		Name:       "녹색지대",
		University: "건국대학교",
		Region:     "서울",
		StartDate:  "2026-05-20",
		EndDate:    "2026-05-22",
		Location:   "서울특별시 광진구",
		Lineup: []LineupEntry{
			{Artist: "아이유", Time: "19:00", Stage: "메인무대"},
		},
		Admission: &Admission{Fee: 0, Currency: "KRW", Notes: "무료"},
	}

	festival := req.ToDomain()

	assert.Equal(t, time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC), festival.StartDate)
	assert.Equal(t, time.Date(2026, 5, 22, 0, 0, 0, 0, time.UTC), festival.EndDate)
	require.Len(t, festival.Lineup, 1)
	assert.Equal(t, "아이유", festival.Lineup[0].Artist)
	require.NotNil(t, festival.Admission)
	assert.Equal(t, "KRW", festival.Admission.Currency)
	assert.Nil(t, festival.Transportation)
}

func TestUpdateFestivalRequest_ToDomain(t *testing.T) {
	name := "새 이름"
	startDate := "2026-06-01"

	req := UpdateFestivalRequest{
		Name:      &name,
		StartDate: &startDate,
	}

	require.NoError(t, req.Validate())

	update := req.ToDomain()

	require.NotNil(t, update.Name)
	assert.Equal(t, name, *update.Name)
	require.NotNil(t, update.StartDate)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *update.StartDate)
	assert.Nil(t, update.EndDate)
	assert.Nil(t, update.University)
	assert.Nil(t, update.Lineup)
}

func TestUpdateFestivalRequest_Validate(t *testing.T) {
	badDate := "soon"

	assert.Error(t, UpdateFestivalRequest{StartDate: &badDate}.Validate())
	assert.NoError(t, UpdateFestivalRequest{}.Validate())
}
