package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairy/internal/domain/models"
)

func sampleFarm() *models.Farm {
	farm := models.NewFarm(
		models.Cow{Breed: "Holstein", FeedType: models.Corn, MilkYield: 10.0, GHGEmission: 5.0},
		models.Cow{Breed: "Jersey", FeedType: models.Grass, MilkYield: 7.0, GHGEmission: 4.0},
		models.Cow{Breed: "Guernsey", FeedType: models.Grain, MilkYield: 8.0, GHGEmission: 4.5},
		models.Cow{Breed: "Ayrshire", FeedType: models.Grass, MilkYield: 6.0, GHGEmission: 3.5},
	)
	farm.AddPen(models.Pen{Breed: "Holstein", CowCount: 3})
	farm.AddPen(models.Pen{Breed: "Jersey", CowCount: 2})
	farm.AddPen(models.Pen{Breed: "Guernsey", CowCount: 4})
	farm.AddPen(models.Pen{Breed: "Ayrshire", CowCount: 5})
	return farm
}

func newService() *Service {
	return NewService(models.DefaultTables(), zap.NewNop())
}

func TestPenAllocation(t *testing.T) {
	got := newService().PenAllocation(sampleFarm())

	assert.Equal(t, []models.Pen{
		{Breed: "Holstein", CowCount: 3},
		{Breed: "Jersey", CowCount: 2},
		{Breed: "Guernsey", CowCount: 4},
		{Breed: "Ayrshire", CowCount: 5},
	}, got.Pens)
}

func TestMilkYield(t *testing.T) {
	got := newService().MilkYield(sampleFarm())
	assert.Equal(t, 31.0, got.Total)
}

func TestEmissions(t *testing.T) {
	got, err := newService().Emissions(sampleFarm())
	require.NoError(t, err)

	perCow := make([]float64, 0, len(got.Cows))
	for _, c := range got.Cows {
		perCow = append(perCow, c.Emissions)
	}
	assert.Equal(t, []float64{10.0, 7.0, 10.5, 6.5}, perCow)
	assert.Equal(t, 34.0, got.Total)
	assert.Equal(t, models.CowEmission{Breed: "Guernsey", FeedType: models.Grain, Emissions: 10.5}, got.Cows[2])
}

func TestEmissions_UnknownFeedType(t *testing.T) {
	farm := sampleFarm()
	farm.AddCow(models.Cow{Breed: "Angus", FeedType: "Hay", MilkYield: 1, GHGEmission: 1})

	_, err := newService().Emissions(farm)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownFeedType)
	assert.Contains(t, err.Error(), "Angus")
}

func TestCostEstimate(t *testing.T) {
	got, err := newService().CostEstimate(sampleFarm())
	require.NoError(t, err)

	assert.Equal(t, 12.5, got.Total)
	require.Len(t, got.Cows, 4)
	assert.Equal(t, 4.0, got.Cows[2].Cost)
}

func TestCostEstimate_UnknownFeedType(t *testing.T) {
	farm := models.NewFarm(models.Cow{Breed: "Angus", FeedType: "Silage"})

	_, err := newService().CostEstimate(farm)
	assert.ErrorIs(t, err, models.ErrUnknownFeedType)
}

func TestInjectedTables(t *testing.T) {
	tables := models.DefaultTables()
	tables.Emissions = models.FeedTable{models.Corn: 1, models.Grass: 1, models.Grain: 1}
	tables.FeedCosts = models.FeedTable{models.Corn: 1, models.Grass: 1, models.Grain: 1}
	svc := NewService(tables, nil)

	emissions, err := svc.Emissions(sampleFarm())
	require.NoError(t, err)
	assert.Equal(t, 21.0, emissions.Total)

	cost, err := svc.CostEstimate(sampleFarm())
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost.Total)
}

func TestEmptyFarm(t *testing.T) {
	svc := newService()
	farm := models.NewFarm()

	assert.Empty(t, svc.PenAllocation(farm).Pens)
	assert.Zero(t, svc.MilkYield(farm).Total)

	emissions, err := svc.Emissions(farm)
	require.NoError(t, err)
	assert.Empty(t, emissions.Cows)
	assert.Zero(t, emissions.Total)

	cost, err := svc.CostEstimate(farm)
	require.NoError(t, err)
	assert.Zero(t, cost.Total)
}

func TestReport_Idempotent(t *testing.T) {
	svc := newService()
	farm := sampleFarm()

	first, err := svc.Report(farm)
	require.NoError(t, err)
	second, err := svc.Report(farm)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, sampleFarm().Cows(), farm.Cows(), "aggregation must not mutate the farm")
}

func TestChartSeries(t *testing.T) {
	farm := sampleFarm()
	emissions, err := newService().Emissions(farm)
	require.NoError(t, err)

	assert.Equal(t, models.Point{Label: "Jersey", Value: 7.0}, MilkYieldByBreed(farm)[1])
	assert.Equal(t, models.Point{Label: "Ayrshire", Value: 6.5}, EmissionsByBreed(emissions)[3])
}
