package service

import (
	"testing"

	"fund-directory/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func managerSnapshot() *entity.Snapshot {
	return newSnapshot(
		newFund("Sequoia Fund XX", "Sequoia Capital", withAmount(1500), withCity("Menlo Park", "US")),
		newFund("Accel Leaders V", "Accel", withAmount(650), withCity("", "US")),
		newFund("Sequoia Growth", "Sequoia Capital", withCategory("Growth Equity"), withCity("San Francisco", "")),
		newFund("Sequoia Seed", "Sequoia Capital", withAmount(200)),
		newFund("Accel India", "Accel", withAmount(300), withCity("Bangalore", "India")),
	)
}

func TestFindManagerProfile_Derived(t *testing.T) {
	snap := managerSnapshot()

	profile, err := FindManagerProfile(snap, "sequoia-capital")
	require.NoError(t, err)

	assert.Equal(t, "Sequoia Capital", profile.Firm)
	assert.Equal(t, "sequoia-capital", profile.FirmSlug)
	assert.Equal(t, 3, profile.FundCount)
	assert.Equal(t, 1700.0, profile.TotalAUMMillions)
	assert.Equal(t, "Menlo Park", profile.City)
	assert.Equal(t, "US", profile.Country)
	assert.Equal(t, []string{"Venture Capital", "Growth Equity"}, profile.Categories)
}

func TestFindManagerProfile_FirstNonNullLocation(t *testing.T) {
	profile, err := FindManagerProfile(managerSnapshot(), "accel")
	require.NoError(t, err)

	assert.Equal(t, "Bangalore", profile.City)
	assert.Equal(t, "US", profile.Country)
	assert.Equal(t, 950.0, profile.TotalAUMMillions)
}

func TestFindManagerProfile_NormalizesInput(t *testing.T) {
	profile, err := FindManagerProfile(managerSnapshot(), "  Sequoia Capital ")
	require.NoError(t, err)
	assert.Equal(t, "sequoia-capital", profile.FirmSlug)
}

func TestFindManagerProfile_NotFound(t *testing.T) {
	snap := managerSnapshot()

	for _, input := range []string{"benchmark", "", "!!!"} {
		_, err := FindManagerProfile(snap, input)
		assert.ErrorIs(t, err, ErrManagerNotFound, "input %q", input)
	}
}

func TestFindManagerProfile_PrecomputedWins(t *testing.T) {
	snap := managerSnapshot()
	snap.Managers = []entity.ManagerProfile{{
		Firm:             "Sequoia Capital",
		FirmSlug:         "sequoia-capital",
		City:             "Menlo Park",
		Country:          "United States",
		Categories:       []string{"Venture Capital"},
		TotalAUMMillions: 85000,
		FundCount:        42,
	}}

	profile, err := FindManagerProfile(snap, "sequoia-capital")
	require.NoError(t, err)
	assert.Equal(t, 42, profile.FundCount)
	assert.Equal(t, 85000.0, profile.TotalAUMMillions)

	profile.Categories[0] = "mutated"
	assert.Equal(t, "Venture Capital", snap.Managers[0].Categories[0])
}

func TestListFirmSlugs(t *testing.T) {
	snap := managerSnapshot()
	snap.Funds = append(snap.Funds, entity.FundRecord{FundName: "Orphan", Firm: "???"})

	assert.Equal(t, []string{"sequoia-capital", "accel"}, ListFirmSlugs(snap))
	assert.Equal(t, []string{}, ListFirmSlugs(newSnapshot()))
}

func TestListManagerProfiles(t *testing.T) {
	snap := managerSnapshot()
	snap.Managers = []entity.ManagerProfile{{Firm: "Accel", FirmSlug: "accel", FundCount: 99, Categories: []string{}}}

	profiles := ListManagerProfiles(snap)

	require.Len(t, profiles, 2)
	assert.Equal(t, "sequoia-capital", profiles[0].FirmSlug)
	assert.Equal(t, 3, profiles[0].FundCount)
	assert.Equal(t, "accel", profiles[1].FirmSlug)
	assert.Equal(t, 99, profiles[1].FundCount)
}
