// Package seed holds the demo dataset the mobile app ships with. It backs
// the engines whenever Postgres is unavailable or its tables are empty.
package seed

import (
	"time"

	"github.com/inclusivo-app/campus-api/internal/models"
)

// Roster returns the demo class sessions.
func Roster() []models.ClassSession {
	return []models.ClassSession{
		{ID: "1", Subject: "Algoritmos y Estructuras de Datos", Professor: "Prof. María García", Room: "301", Building: "Edificio A", StartTime: "14:00", EndTime: "16:00", Day: models.Monday, Type: "lecture"},
		{ID: "2", Subject: "Bases de Datos", Professor: "Prof. Carlos Ruiz", Room: "205", Building: "Edificio B", StartTime: "08:00", EndTime: "10:00", Day: models.Monday, Type: "lecture"},
		{ID: "3", Subject: "Ingeniería de Software", Professor: "Prof. Ana López", Room: "Lab 102", Building: "Edificio C", StartTime: "10:00", EndTime: "12:00", Day: models.Tuesday, Type: "lab"},
		{ID: "4", Subject: "Programación Web", Professor: "Prof. Juan Méndez", Room: "401", Building: "Edificio A", StartTime: "14:00", EndTime: "16:00", Day: models.Wednesday, Type: "lecture"},
		{ID: "5", Subject: "Redes de Computadoras", Professor: "Prof. Laura Torres", Room: "Lab 201", Building: "Edificio B", StartTime: "08:00", EndTime: "10:00", Day: models.Thursday, Type: "lab"},
		{ID: "6", Subject: "Inteligencia Artificial", Professor: "Prof. Roberto Sánchez", Room: "302", Building: "Edificio A", StartTime: "16:00", EndTime: "18:00", Day: models.Friday, Type: "lecture"},
	}
}

// Directory returns the demo campus locations in directory order.
func Directory() []models.Location {
	return []models.Location{
		{ID: "1", Name: "Aula 301", Building: "Edificio A", Floor: 3, Room: "301", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true, HasBrailleSignage: true}},
		{ID: "2", Name: "Laboratorio de Computación 102", Building: "Edificio C", Floor: 1, Room: "Lab 102", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: false, HasBrailleSignage: true}},
		{ID: "3", Name: "Biblioteca Central", Building: "Edificio B", Floor: 2, Type: models.LocationLibrary,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true, HasBrailleSignage: true}},
		{ID: "4", Name: "Cafetería Estudiantil", Building: "Edificio Principal", Floor: 1, Type: models.LocationCafeteria,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: false, HasBrailleSignage: true}},
		{ID: "5", Name: "Aula 205", Building: "Edificio B", Floor: 2, Room: "205", Type: models.LocationClassroom,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: true, HasBrailleSignage: true}},
		{ID: "6", Name: "Oficina de Registro", Building: "Edificio Principal", Floor: 1, Type: models.LocationOffice,
			Accessibility: models.AccessibilityInfo{WheelchairAccessible: true, HasElevator: false, HasBrailleSignage: true}},
	}
}

// Notifications returns the demo notification collection. Timestamps are
// offsets from now so the feed always looks recent.
func Notifications(now time.Time) []models.Notification {
	return []models.Notification{
		{ID: "1", Type: models.NotificationGrade, Priority: models.PriorityHigh, Title: "Nueva calificación",
			Message: "Tu calificación del examen parcial de Algoritmos ha sido publicada: 18/20", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "2", Type: models.NotificationReminder, Priority: models.PriorityMedium, Title: "Recordatorio de clase",
			Message: "Tu clase de Algoritmos comenzará en 45 minutos en el Aula 301", Timestamp: now.Add(-5 * time.Minute)},
		{ID: "3", Type: models.NotificationMaterial, Priority: models.PriorityLow, Title: "Material disponible",
			Message: "Se han publicado las diapositivas de la clase anterior de Bases de Datos", Timestamp: now.Add(-24 * time.Hour)},
		{ID: "4", Type: models.NotificationAcademic, Priority: models.PriorityHigh, Title: "Cambio de horario",
			Message: "La clase de Programación Web del viernes se ha movido al Aula 502", Timestamp: now.Add(-3 * time.Hour), Read: true},
		{ID: "5", Type: models.NotificationEmergency, Priority: models.PriorityCritical, Title: "Alerta de seguridad",
			Message: "Se ha programado un simulacro de evacuación para mañana a las 10:00 AM", Timestamp: now.Add(-6 * time.Hour), Read: true},
		{ID: "6", Type: models.NotificationAcademic, Priority: models.PriorityMedium, Title: "Entrega de trabajo",
			Message: "Recuerda entregar el proyecto de Ingeniería de Software antes del viernes", Timestamp: now.Add(-12 * time.Hour), Read: true},
	}
}

// Documents returns the demo scanned documents.
func Documents(now time.Time) []models.ScannedDocument {
	return []models.ScannedDocument{
		{ID: "1", Title: "Apuntes de Algoritmos - Clase 5",
			Content:   "Introducción a árboles binarios. Un árbol binario es una estructura de datos...",
			CreatedAt: now.Add(-24 * time.Hour), Subject: "Algoritmos",
			Tags: []string{"algoritmos", "árboles", "estructuras de datos"}, Language: "es"},
		{ID: "2", Title: "Ejercicios de Bases de Datos",
			Content:   "Normalización de bases de datos. Primera forma normal (1FN)...",
			CreatedAt: now.Add(-48 * time.Hour), Subject: "Bases de Datos",
			Tags: []string{"bases de datos", "normalización"}, Language: "es"},
	}
}
