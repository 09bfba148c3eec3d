package handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// ExportCSV aplica o filtro recebido no corpo e entrega o subconjunto em
// texto delimitado, como anexo para download.
func ExportCSV(analyzer analyzing.Analyzer, exporter exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec domain.FilterSpec

		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de filtro inválido", nil)
			return
		}

		records := analyzer.FilteredRecords(spec)

		data, filename, err := exporter.RenderCSV(records)
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar exportação CSV")
			apiErrors.WriteError(w, apiErrors.ErrExportGeneration, "Erro ao gerar exportação", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"arquivo":   filename,
			"registros": len(records),
		}).Info("Exportação CSV gerada")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(data); err != nil {
			logrus.WithError(err).Error("Erro ao enviar exportação CSV")
		}
	}
}

// ExportWorkbook aplica o filtro recebido no corpo e entrega a pasta de
// trabalho estruturada (abas "Filtered Data" e "Summary") em JSON.
func ExportWorkbook(analyzer analyzing.Analyzer, exporter exporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec domain.FilterSpec

		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de filtro inválido", nil)
			return
		}

		records := analyzer.FilteredRecords(spec)
		kpis := analyzer.Snapshot(spec).KPIs

		workbook, err := exporter.BuildWorkbook(records, kpis)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar pasta de trabalho")
			apiErrors.WriteError(w, apiErrors.ErrExportGeneration, "Erro ao gerar exportação", nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"arquivo":   workbook.Name,
			"registros": len(records),
		}).Info("Pasta de trabalho gerada")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(workbook); err != nil {
			logrus.WithError(err).Error("Erro ao enviar pasta de trabalho")
		}
	}
}
