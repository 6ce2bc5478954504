package service

import (
	"go.uber.org/zap"

	"github.com/inclusivo-app/campus-api/internal/models"
	appErrors "github.com/inclusivo-app/campus-api/pkg/errors"
	"github.com/inclusivo-app/campus-api/pkg/export"
)

// scheduleSource provides the weekly roster for export.
type scheduleSource interface {
	Weekly() models.WeeklySchedule
}

// presentationSource exposes the current visual presentation state so
// printed output can follow the reader's font scale.
type presentationSource interface {
	Presentation() models.PresentationState
}

// ExportService renders the weekly schedule as CSV or PDF.
type ExportService struct {
	schedule     scheduleSource
	presentation presentationSource
	csv          *export.CSVExporter
	pdf          *export.PDFExporter
	logger       *zap.Logger
}

// NewExportService wires the exporters to the schedule and settings state.
func NewExportService(schedule scheduleSource, presentation presentationSource, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		schedule:     schedule,
		presentation: presentation,
		csv:          export.NewCSVExporter(),
		pdf:          export.NewPDFExporter(),
		logger:       logger,
	}
}

// ScheduleCSV renders the full weekly schedule as CSV bytes.
func (s *ExportService) ScheduleCSV() ([]byte, error) {
	data, err := s.csv.Render(s.dataset())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export schedule csv")
	}
	return data, nil
}

// SchedulePDF renders the weekly schedule as a PDF, scaled by the
// reader's configured font size.
func (s *ExportService) SchedulePDF() ([]byte, error) {
	fontScale := 1.0
	if s.presentation != nil {
		fontScale = s.presentation.Presentation().FontScale
	}
	data, err := s.pdf.Render(s.dataset(), "Horario Semanal", fontScale)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to export schedule pdf")
	}
	return data, nil
}

func (s *ExportService) dataset() export.Dataset {
	headers := []string{"Día", "Inicio", "Fin", "Materia", "Profesor", "Salón", "Edificio", "Tipo"}
	var rows []map[string]string

	weekly := s.schedule.Weekly()
	for _, day := range models.WeekDays {
		for _, session := range weekly[day] {
			rows = append(rows, map[string]string{
				"Día":      string(day),
				"Inicio":   session.StartTime,
				"Fin":      session.EndTime,
				"Materia":  session.Subject,
				"Profesor": session.Professor,
				"Salón":    session.Room,
				"Edificio": session.Building,
				"Tipo":     session.Type,
			})
		}
	}

	return export.Dataset{Headers: headers, Rows: rows}
}
