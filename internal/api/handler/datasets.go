package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/seller-metrics-api/infrastructure/ingestion"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/seller-metrics-api/pkg/log"
)

// Campos do formulário multipart de upload
const (
	formFieldEarlier = "earlier"
	formFieldLater   = "later"
)

// multipartMemory é quanto do upload fica em memória antes de ir para arquivos temporários
const multipartMemory = 8 << 20

// GetDatasets retorna as informações do snapshot carregado
func GetDatasets(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := service.Snapshot()
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, info)
	}
}

// UploadDatasets recebe os dois arquivos e substitui o snapshot atual.
// Se qualquer um falhar, o snapshot anterior continua em uso.
func UploadDatasets(loader reporting.DatasetLoader, reader ingestion.TableReader, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if maxUploadSize > 0 {
			// Dois arquivos mais a sobrecarga do multipart
			r.Body = http.MaxBytesReader(w, r.Body, 2*maxUploadSize+multipartMemory)
		}

		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var sizeErr *http.MaxBytesError
			if errors.As(err, &sizeErr) {
				writeServiceError(w, r, err)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", nil)
			return
		}
		defer r.MultipartForm.RemoveAll()

		earlier, ok := readFormTable(w, r, reader, formFieldEarlier, domain.PeriodEarlier)
		if !ok {
			return
		}
		later, ok := readFormTable(w, r, reader, formFieldLater, domain.PeriodLater)
		if !ok {
			return
		}

		info, err := loader.Load("upload", earlier, later)
		if err != nil {
			logger.WithError(err).Warn("Upload de conjuntos de dados rejeitado")
			writeServiceError(w, r, err)
			return
		}

		logger.WithField("snapshot_id", info.ID).Info("Conjuntos de dados enviados com sucesso")
		writeJSON(w, r, http.StatusCreated, info)
	}
}

func readFormTable(w http.ResponseWriter, r *http.Request, reader ingestion.TableReader, field string, period domain.Period) (*domain.Table, bool) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo obrigatório ausente", map[string]string{"field": field})
			return nil, false
		}
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler arquivo enviado", map[string]string{"field": field})
		return nil, false
	}
	defer file.Close()

	table, err := reader.ReadTable(header.Filename, file, period)
	if err != nil {
		log.ForContext(r.Context()).WithFields(log.Fields{
			"dataset": period,
			"error":   err.Error(),
		}).Warn("Erro ao ler conjunto de dados enviado")
		writeServiceError(w, r, err)
		return nil, false
	}

	return table, true
}
