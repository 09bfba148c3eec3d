package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
)

// GetDatasetInfo resume o dataset corrente completo (contagem de registros,
// intervalo de datas e vendas totais).
func GetDatasetInfo(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info := service.Info()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(info); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de informações do dataset")
		}
	}
}

// GetDatasetDimensions retorna os valores observados de cada dimensão
// filtrável, com os quais a apresentação monta as opções de seleção.
func GetDatasetDimensions(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		domains := service.Domains()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(domains); err != nil {
			logrus.WithError(err).Error("Erro ao enviar resposta de dimensões do dataset")
		}
	}
}
