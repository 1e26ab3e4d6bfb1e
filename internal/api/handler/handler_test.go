package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seller-metrics-api/infrastructure/ingestion"
	"github.com/vfg2006/seller-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/seller-metrics-api/internal/domain"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/metrics"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting"
	"github.com/vfg2006/seller-metrics-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/seller-metrics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeSyncer struct {
	triggered int
	err       error
}

func (f *fakeSyncer) TriggerManualSync() error {
	f.triggered++
	return f.err
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "triggered": f.triggered}
}

func newTestRouter(service reporting.SnapshotService, syncer ManualSyncer) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Datasets(service, ingestion.New(1<<20), 1<<20)...),
		router.WithRoutes(Reports(service)...),
		router.WithRoutes(CronJobs(CronJobServices{DatasetReloadSyncService: syncer})...),
	)
}

func serve(rt http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthcheck(t *testing.T) {
	rt := newTestRouter(nil, nil)
	rec := serve(rt, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := time.Parse(time.RFC3339, rec.Body.String())
	assert.NoError(t, err)
}

func TestReports_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Sem snapshot",
			err:            reporting.ErrNoSnapshot,
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNoSnapshot,
		},
		{
			name:           "Colunas ausentes",
			err:            &metrics.SchemaError{Dataset: domain.PeriodLater, Missing: []string{"GMV"}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   apiErrors.ErrMissingColumns,
		},
		{
			name:           "Valor inválido",
			err:            &metrics.ValueError{Dataset: domain.PeriodEarlier, Row: 3, Column: "GMV", Value: "abc", Reason: "não numérico"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:           "Erro inesperado",
			err:            errors.New("falha"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockSnapshotService(ctrl)
			service.EXPECT().Attrition().Return(nil, tt.err)

			rec := serve(newTestRouter(service, nil), httptest.NewRequest(http.MethodGet, "/v1/reports/attrition", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestReports_SchemaErrorDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockSnapshotService(ctrl)
	service.EXPECT().Delta().Return(nil, &metrics.SchemaError{Dataset: domain.PeriodEarlier, Missing: []string{"Seller", "GMV"}})

	rec := serve(newTestRouter(service, nil), httptest.NewRequest(http.MethodGet, "/v1/reports/delta", nil))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details, ok := decodeAPIError(t, rec).Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "earlier", details["dataset"])
	assert.Equal(t, []any{"Seller", "GMV"}, details["missing_columns"])
}

func TestGetEfficiencyReport(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedPeriod domain.Period
		expectedStatus int
	}{
		{name: "Período padrão", query: "", expectedPeriod: domain.PeriodLater, expectedStatus: http.StatusOK},
		{name: "Período anterior", query: "?period=earlier", expectedPeriod: domain.PeriodEarlier, expectedStatus: http.StatusOK},
		{name: "Período em maiúsculas", query: "?period=LATER", expectedPeriod: domain.PeriodLater, expectedStatus: http.StatusOK},
		{name: "Período inválido", query: "?period=q3", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockSnapshotService(ctrl)
			if tt.expectedPeriod != "" {
				service.EXPECT().
					Efficiency(tt.expectedPeriod).
					Return(&domain.EfficiencyReport{Period: tt.expectedPeriod}, nil)
			}

			rec := serve(newTestRouter(service, nil), httptest.NewRequest(http.MethodGet, "/v1/reports/efficiency"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetDragSummary_EncodesDecimalsAsStrings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockSnapshotService(ctrl)
	service.EXPECT().Drag().Return(&domain.DragSummary{
		Components: []domain.DragComponent{
			{Component: domain.DragComponentLostSellers, GMVImpact: decimal.NewFromInt(-2358000)},
			{Component: domain.DragComponentActiveSellers, GMVImpact: decimal.NewFromInt(-220000)},
		},
		TotalDrag: decimal.NewFromInt(-2578000),
	}, nil)

	rec := serve(newTestRouter(service, nil), httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"-2578000"`)
	assert.Contains(t, rec.Body.String(), domain.DragComponentLostSellers)
}

func TestGetDatasets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockSnapshotService(ctrl)
	service.EXPECT().Snapshot().Return(&domain.SnapshotInfo{ID: "abc123"}, nil)

	rec := serve(newTestRouter(service, nil), httptest.NewRequest(http.MethodGet, "/v1/datasets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info domain.SnapshotInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "abc123", info.ID)
}

type uploadFile struct {
	field    string
	filename string
	content  string
}

func newUploadRequest(t *testing.T, files ...uploadFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadDatasets(t *testing.T) {
	earlierCSV := uploadFile{field: "earlier", filename: "q1.csv", content: "Seller,GMV,Clicks\nA,100,10\n"}
	laterCSV := uploadFile{field: "later", filename: "q2.csv", content: "Seller,GMV,Clicks\nA,50,10\n"}

	tests := []struct {
		name           string
		files          []uploadFile
		setup          func(service *mocks.MockSnapshotService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:  "Upload válido",
			files: []uploadFile{earlierCSV, laterCSV},
			setup: func(service *mocks.MockSnapshotService) {
				service.EXPECT().
					Load("upload", gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ string, earlier, later *domain.Table) (*domain.SnapshotInfo, error) {
						assert.Equal(t, domain.PeriodEarlier, earlier.Label)
						assert.Equal(t, "q1.csv", earlier.FileName)
						assert.Equal(t, domain.PeriodLater, later.Label)
						assert.Len(t, later.Rows, 1)
						return &domain.SnapshotInfo{ID: "novo"}, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Arquivo posterior ausente",
			files:          []uploadFile{earlierCSV},
			setup:          func(service *mocks.MockSnapshotService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Formato não suportado",
			files:          []uploadFile{earlierCSV, {field: "later", filename: "q2.json", content: "{}"}},
			setup:          func(service *mocks.MockSnapshotService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:  "Colunas ausentes no carregamento",
			files: []uploadFile{earlierCSV, laterCSV},
			setup: func(service *mocks.MockSnapshotService) {
				service.EXPECT().
					Load(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &metrics.SchemaError{Dataset: domain.PeriodLater, Missing: []string{"GMV"}})
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   apiErrors.ErrMissingColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockSnapshotService(ctrl)
			tt.setup(service)

			rec := serve(newTestRouter(service, nil), newUploadRequest(t, tt.files...))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestUploadDatasets_RequiresMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/v1/datasets", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(newTestRouter(mocks.NewMockSnapshotService(ctrl), nil), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name           string
		cronType       string
		syncer         *fakeSyncer
		expectedStatus int
		expectedCalls  int
	}{
		{name: "Recarga de arquivos", cronType: "dataset-reload", syncer: &fakeSyncer{}, expectedStatus: http.StatusAccepted, expectedCalls: 1},
		{name: "Tipo inválido", cronType: "meta", syncer: &fakeSyncer{}, expectedStatus: http.StatusBadRequest},
		{name: "Falha ao iniciar", cronType: "dataset-reload", syncer: &fakeSyncer{err: errors.New("caminhos não configurados")}, expectedStatus: http.StatusInternalServerError, expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestRouter(nil, tt.syncer)
			rec := serve(rt, httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCalls, tt.syncer.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	rt := newTestRouter(nil, &fakeSyncer{})
	rec := serve(rt, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status["dataset-reload"]["sync_enabled"])
}
