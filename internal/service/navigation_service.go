package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
)

// Step distances in meters for the fixed route template, and the walking
// speed used to estimate travel time.
const (
	distanceLeave       = 10
	distanceToBuilding  = 120
	distanceAtEntrance  = 15
	distanceElevator    = 20
	distanceStairs      = 25
	distanceCorridor    = 40
	walkingMetersPerMin = 50
)

// NavigationService answers directory queries and generates step-by-step
// routes between named campus locations. Routing is a fixed template over
// building/floor/room differences, not a graph search; it cannot dead-end
// once both endpoints resolve.
type NavigationService struct {
	directory []models.Location
	byID      map[string]models.Location
	logger    *zap.Logger
}

// NewNavigationService instantiates NavigationService over a static
// directory. Directory order is preserved for favorites.
func NewNavigationService(directory []models.Location, logger *zap.Logger) *NavigationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := make(map[string]models.Location, len(directory))
	for _, loc := range directory {
		byID[loc.ID] = loc
	}
	return &NavigationService{directory: directory, byID: byID, logger: logger}
}

// All returns the full directory in directory order.
func (s *NavigationService) All() []models.Location {
	out := make([]models.Location, len(s.directory))
	copy(out, s.directory)
	return out
}

// ByID resolves a location, nil when unknown.
func (s *NavigationService) ByID(id string) *models.Location {
	if loc, ok := s.byID[id]; ok {
		return &loc
	}
	return nil
}

// Search matches the query case-insensitively against name, building and
// room.
func (s *NavigationService) Search(query string) []models.Location {
	q := strings.ToLower(query)
	var matches []models.Location
	for _, loc := range s.directory {
		if strings.Contains(strings.ToLower(loc.Name), q) ||
			strings.Contains(strings.ToLower(loc.Building), q) ||
			(loc.Room != "" && strings.Contains(strings.ToLower(loc.Room), q)) {
			matches = append(matches, loc)
		}
	}
	return matches
}

// Route computes a route between two directory entries. Nil when either
// endpoint is unknown. Routes are generated fresh per call.
func (s *NavigationService) Route(fromID, toID string) *models.Route {
	from := s.ByID(fromID)
	to := s.ByID(toID)
	if from == nil || to == nil {
		return nil
	}

	steps := generateSteps(*from, *to)
	distance := 0
	for _, step := range steps {
		distance += step.Distance
	}
	estimated := (distance + walkingMetersPerMin - 1) / walkingMetersPerMin

	return &models.Route{
		From:          *from,
		To:            *to,
		Distance:      distance,
		EstimatedTime: estimated,
		Steps:         steps,
	}
}

// IsAccessible reports the wheelchair flag of a location, false when the
// id is unknown.
func (s *NavigationService) IsAccessible(id string) bool {
	loc := s.ByID(id)
	return loc != nil && loc.Accessibility.WheelchairAccessible
}

// Favorites returns the first five classroom or library entries in
// directory order. Not personalised.
func (s *NavigationService) Favorites() []models.Location {
	var favorites []models.Location
	for _, loc := range s.directory {
		if loc.Type == models.LocationClassroom || loc.Type == models.LocationLibrary {
			favorites = append(favorites, loc)
			if len(favorites) == 5 {
				break
			}
		}
	}
	return favorites
}

func generateSteps(from, to models.Location) []models.NavigationStep {
	steps := []models.NavigationStep{{
		Instruction: fmt.Sprintf("Sal de %s", from.Name),
		Distance:    distanceLeave,
		Direction:   models.DirectionStraight,
	}}

	if from.Building != to.Building {
		steps = append(steps,
			models.NavigationStep{
				Instruction: fmt.Sprintf("Dirígete hacia %s", to.Building),
				Distance:    distanceToBuilding,
				Direction:   models.DirectionStraight,
				Landmark:    "Sigue el pasillo principal",
			},
			models.NavigationStep{
				Instruction: fmt.Sprintf("Gira a la derecha en la entrada de %s", to.Building),
				Distance:    distanceAtEntrance,
				Direction:   models.DirectionRight,
			},
		)
	}

	if from.Floor != to.Floor {
		if to.Accessibility.HasElevator {
			steps = append(steps, models.NavigationStep{
				Instruction: fmt.Sprintf("Toma el elevador al piso %d", to.Floor),
				Distance:    distanceElevator,
				Direction:   models.DirectionUp,
				Landmark:    "El elevador está a tu izquierda",
			})
		} else {
			steps = append(steps, models.NavigationStep{
				Instruction: fmt.Sprintf("Sube por las escaleras al piso %d", to.Floor),
				Distance:    distanceStairs,
				Direction:   models.DirectionUp,
			})
		}
	}

	if to.Room != "" {
		steps = append(steps, models.NavigationStep{
			Instruction: fmt.Sprintf("Camina por el pasillo hasta %s", to.Room),
			Distance:    distanceCorridor,
			Direction:   models.DirectionStraight,
		})
	}

	steps = append(steps, models.NavigationStep{
		Instruction: fmt.Sprintf("Has llegado a %s", to.Name),
		Distance:    0,
		Direction:   models.DirectionStraight,
	})

	return steps
}
