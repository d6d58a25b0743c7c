package transport

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gdreport/internal/config"
	"gdreport/internal/pipeline"
	"gdreport/pkg/contracts/domain"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			MaxUploadBytes: 10 << 20,
			RateLimit:      config.RateLimitConfig{Enabled: false},
		},
		Processing: config.ProcessingConfig{MaxHeaderScan: 50},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := pipeline.New(logger)
	return NewRouter(cfg, logger, processor)
}

// billingFixture builds a workbook with one processable row per project code.
func billingFixture(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)

	header := []interface{}{
		"Projeto", "Instalação", "Nome", "Mês de Referência",
		"Data de Emissão", "Vencimento", "Valor Final R$",
		"Custo com GD R$", "Custo sem GD R$", "Status",
	}
	require.NoError(t, f.SetSheetRow(sheetName, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheetName, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, url string, fileBytes []byte, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if fileBytes != nil {
		part, err := mw.CreateFormFile("file", "upload.xlsx")
		require.NoError(t, err)
		_, err = part.Write(fileBytes)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProcessEndpoint(t *testing.T) {
	fixture := billingFixture(t, [][]interface{}{
		{"LNV", "10/530195-7", "ACME LTDA", "01/03/2024", "05/03/2024", "20/03/2024", "1.234,56", "100,00", "150,00", "Pago"},
		{"LNV", "123", "BETA LTDA", "01/03/2024", "05/03/2024", "20/03/2024", "500,00", "80,00", "90,00", "Cancelada"},
	})

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", fixture, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Columns []string               `json:"columns"`
		Rows    [][]string             `json:"rows"`
		Stats   domain.ProcessingStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, domain.BillingColumns(), resp.Columns)
	assert.Equal(t, 2, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Processed)
	assert.Equal(t, 1, resp.Stats.SkippedCancelled)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "LNV", resp.Rows[0][0])
	assert.Equal(t, "upload.xlsx", resp.Rows[0][len(resp.Rows[0])-1])
}

func TestProcessEndpointMissingFile(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", nil, nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_FILE")
}

func TestProcessEndpointValidation(t *testing.T) {
	fixture := billingFixture(t, [][]interface{}{
		{"LNV", "123", "ACME", "01/03/2024", "05/03/2024", "20/03/2024", "100", "10", "20", "Pago"},
	})

	tests := []struct {
		name   string
		fields map[string]string
	}{
		{name: "bad target project", fields: map[string]string{"target_project": "XYZ"}},
		{name: "bad cutoff date", fields: map[string]string{"cutoff_date": "03/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", fixture, tt.fields))
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
		})
	}
}

func TestProcessEndpointUnprocessable(t *testing.T) {
	t.Run("not a spreadsheet", func(t *testing.T) {
		rec := httptest.NewRecorder()
		testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", []byte("garbage"), nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("no billing sheet", func(t *testing.T) {
		f := excelize.NewFile()
		header := []interface{}{"Nome", "Endereço"}
		require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &header))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		require.NoError(t, f.Close())

		rec := httptest.NewRecorder()
		testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", buf.Bytes(), nil))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestProcessEndpointManualCode(t *testing.T) {
	f := excelize.NewFile()
	header := []interface{}{"Instalação", "Nome", "Valor Final R$", "Data de Emissão"}
	data := []interface{}{"123", "ACME", "100,00", "05/03/2024"}
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A1", &header))
	require.NoError(t, f.SetSheetRow(f.GetSheetName(0), "A2", &data))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Without a manual code the file is unresolvable.
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", buf.Bytes(), nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/process", buf.Bytes(),
		map[string]string{"manual_code": "MTX"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rows [][]string `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "MTX", resp.Rows[0][0])
}

func TestAnalyzeEndpoint(t *testing.T) {
	fixture := billingFixture(t, [][]interface{}{
		{"LNV", "111", "ACME", "01/03/2024", "05/03/2024", "20/03/2024", "100", "10", "20", "Pago"},
		{"MTX", "222", "BETA", "01/03/2024", "05/03/2024", "20/03/2024", "200", "10", "20", "Pago"},
		{"", "333", "GAMA", "01/03/2024", "05/03/2024", "20/03/2024", "300", "10", "20", "Pago"},
	})

	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, uploadRequest(t, "/api/v1/reports/analyze", fixture, nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var analysis pipeline.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, []domain.ProjectCode{domain.ProjectLNV, domain.ProjectMTX, domain.ProjectTBD}, analysis.Projects)
	assert.Equal(t, 1, analysis.ProjectCounts[domain.ProjectTBD])
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	testRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := testRouter(t)

	// Generate one request so the counters carry a sample.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, "http_request_duration_seconds")
	assert.Contains(t, body, `route="/healthz"`)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			MaxUploadBytes: 10 << 20,
			RateLimit:      config.RateLimitConfig{Enabled: true, RPS: 0, Burst: 1},
		},
		Processing: config.ProcessingConfig{MaxHeaderScan: 50},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(cfg, logger, pipeline.New(logger))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
