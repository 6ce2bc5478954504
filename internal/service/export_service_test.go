package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusivo-app/campus-api/internal/models"
)

type fakeSchedule struct {
	weekly models.WeeklySchedule
}

func (f *fakeSchedule) Weekly() models.WeeklySchedule { return f.weekly }

type fakePresentation struct {
	state models.PresentationState
}

func (f *fakePresentation) Presentation() models.PresentationState { return f.state }

func exportWeekly() models.WeeklySchedule {
	return models.WeeklySchedule{
		models.Monday: {
			{ID: "1", Subject: "Programación Web", Professor: "Dra. García", Room: "A-201", Building: "Edificio A", StartTime: "08:00", EndTime: "10:00", Day: models.Monday, Type: "lecture"},
		},
		models.Wednesday: {
			{ID: "2", Subject: "Bases de Datos", Professor: "Mtro. Ramírez", Room: "B-105", Building: "Edificio B", StartTime: "10:00", EndTime: "12:00", Day: models.Wednesday, Type: "lab"},
		},
	}
}

func TestExportScheduleCSV(t *testing.T) {
	svc := NewExportService(&fakeSchedule{weekly: exportWeekly()}, &fakePresentation{state: models.PresentationState{FontScale: 1.0}}, nil)

	data, err := svc.ScheduleCSV()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Materia")
	assert.Contains(t, lines[1], "Programación Web")
	assert.Contains(t, lines[2], "Bases de Datos")
}

func TestExportSchedulePDF(t *testing.T) {
	svc := NewExportService(&fakeSchedule{weekly: exportWeekly()}, &fakePresentation{state: models.PresentationState{FontScale: 2.0}}, nil)

	data, err := svc.SchedulePDF()
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportSchedulePDFWithoutPresentation(t *testing.T) {
	svc := NewExportService(&fakeSchedule{weekly: exportWeekly()}, nil, nil)

	data, err := svc.SchedulePDF()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
