package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
)

func testDirectory() []models.Location {
	return []models.Location{
		{ID: "a101", Name: "Aula 101", Building: "Edificio A", Floor: 1, Room: "101", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true}},
		{ID: "a201", Name: "Aula 201", Building: "Edificio A", Floor: 2, Room: "201", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true}},
		{ID: "b301", Name: "Laboratorio 301", Building: "Edificio B", Floor: 3, Room: "301", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: false, HasElevator: false}},
		{ID: "biblio", Name: "Biblioteca Central", Building: "Edificio C", Floor: 1, Type: models.LocationLibrary,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true, HasBrailleSignage: true}},
		{ID: "cafe", Name: "Cafetería", Building: "Edificio C", Floor: 1, Type: models.LocationCafeteria,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true}},
	}
}

func TestNavigationSearch(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	results := svc.Search("biblioteca")
	require.Len(t, results, 1)
	assert.Equal(t, "biblio", results[0].ID)

	results = svc.Search("edificio a")
	assert.Len(t, results, 2)

	assert.Empty(t, svc.Search("gimnasio"))
}

func TestNavigationRouteSameBuildingSameFloor(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	route := svc.Route("a101", "a101")
	require.NotNil(t, route)
	// Leave, corridor, arrive.
	require.Len(t, route.Steps, 3)
	assert.Equal(t, "Sal de Aula 101", route.Steps[0].Instruction)
	assert.Equal(t, "Camina por el pasillo hasta 101", route.Steps[1].Instruction)
	assert.Equal(t, "Has llegado a Aula 101", route.Steps[2].Instruction)
	assert.Equal(t, 50, route.Distance)
	assert.Equal(t, 1, route.EstimatedTime)
}

func TestNavigationRouteElevatorWhenAvailable(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	route := svc.Route("a101", "a201")
	require.NotNil(t, route)
	require.Len(t, route.Steps, 4)
	assert.Equal(t, "Toma el elevador al piso 2", route.Steps[1].Instruction)
	assert.Equal(t, "El elevador está a tu izquierda", route.Steps[1].Landmark)
	assert.Equal(t, models.DirectionUp, route.Steps[1].Direction)
	assert.Equal(t, 10+20+40, route.Distance)
}

func TestNavigationRouteStairsWithoutElevator(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	route := svc.Route("biblio", "b301")
	require.NotNil(t, route)
	// Leave, cross buildings (2 steps), stairs, corridor, arrive.
	require.Len(t, route.Steps, 6)
	assert.Equal(t, "Sube por las escaleras al piso 3", route.Steps[3].Instruction)
	assert.Equal(t, 25, route.Steps[3].Distance)

	total := 0
	for _, step := range route.Steps {
		total += step.Distance
	}
	assert.Equal(t, total, route.Distance)
	assert.Equal(t, 10+120+15+25+40, route.Distance)
	// 210m at 50 m/min rounds up to 5 minutes.
	assert.Equal(t, 5, route.EstimatedTime)
}

func TestNavigationRouteUnknownEndpoint(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	assert.Nil(t, svc.Route("a101", "nope"))
	assert.Nil(t, svc.Route("nope", "a101"))
}

func TestNavigationIsAccessible(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	assert.True(t, svc.IsAccessible("a101"))
	assert.False(t, svc.IsAccessible("b301"))
	assert.False(t, svc.IsAccessible("nope"))
}

func TestNavigationFavorites(t *testing.T) {
	svc := NewNavigationService(testDirectory(), nil)

	favorites := svc.Favorites()
	require.Len(t, favorites, 4)
	for _, loc := range favorites {
		assert.Contains(t, []models.LocationType{models.LocationClassroom, models.LocationLibrary}, loc.Type)
	}
	// Directory order preserved.
	assert.Equal(t, "a101", favorites[0].ID)
	assert.Equal(t, "biblio", favorites[3].ID)
}
