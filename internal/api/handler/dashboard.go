package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// ComputeDashboard computa o painel completo para a especificação de filtro
// recebida no corpo e o publica como resultado corrente. Requisições
// concorrentes são resolvidas pela política de "última vence": respostas de
// computações obsoletas ainda são devolvidas ao chamador, mas não sobrescrevem
// o resultado publicado.
func ComputeDashboard(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec domain.FilterSpec

		if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de filtro inválido", nil)
			return
		}

		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			logrus.Debugf("Especificação de filtro recebida: %s", utils.PrettyJson(spec))
		}

		snapshot := service.Recompute(spec)

		logrus.WithFields(logrus.Fields{
			"filtro":    spec.Fingerprint(),
			"registros": snapshot.DatasetInfo.RecordCount,
			"vazio":     snapshot.EmptyResult,
		}).Debug("Painel computado")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do painel")
		}
	}
}

// GetCurrentDashboard retorna o último painel publicado, sem recomputar.
func GetCurrentDashboard(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := service.Current()
		if snapshot == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoCurrentResult, "Nenhum painel publicado ainda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta do painel corrente")
		}
	}
}
