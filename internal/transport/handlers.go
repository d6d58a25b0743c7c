package transport

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"gdreport/internal/config"
	apierrors "gdreport/internal/errors"
	"gdreport/internal/pipeline"
	"gdreport/internal/workbook"
	"gdreport/pkg/contracts/domain"
)

var validate = validator.New()

type handler struct {
	cfg       *config.Config
	logger    *slog.Logger
	processor *pipeline.Processor
}

// processRequest carries the form fields of a process call.
type processRequest struct {
	ManualCode    string `validate:"omitempty,max=64"`
	CutoffDate    string `validate:"omitempty,datetime=2006-01-02"`
	TargetProject string `validate:"omitempty,oneof=LNV ALA EGS MTX EMG ESP"`
}

// analyze reports which project codes a file contains so the operator can
// pick a manual code before the full pass.
func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	buf, _, apiErr := h.readUpload(r)
	if apiErr != nil {
		render.Render(w, r, apiErr)
		return
	}

	reader, err := workbook.OpenBuffer(buf)
	if err != nil {
		render.Render(w, r, apierrors.UnprocessableFileWithError(err))
		return
	}

	analysis, err := h.processor.Analyze(reader, r.FormValue("manual_code"))
	if err != nil {
		render.Render(w, r, apierrors.UnprocessableFileWithError(err))
		return
	}

	render.JSON(w, r, analysis)
}

// processResponse is the JSON shape of a successful process call. Rows are
// rendered in the stable canonical column order.
type processResponse struct {
	Columns []string               `json:"columns"`
	Rows    [][]string             `json:"rows"`
	Stats   domain.ProcessingStats `json:"stats"`
}

// process runs the full classification pass on an uploaded file.
func (h *handler) process(w http.ResponseWriter, r *http.Request) {
	buf, fileName, apiErr := h.readUpload(r)
	if apiErr != nil {
		render.Render(w, r, apiErr)
		return
	}

	req := processRequest{
		ManualCode:    r.FormValue("manual_code"),
		CutoffDate:    r.FormValue("cutoff_date"),
		TargetProject: r.FormValue("target_project"),
	}
	if err := validate.Struct(req); err != nil {
		render.Render(w, r, apierrors.ValidationFailedWithError(err))
		return
	}

	reader, err := workbook.OpenBuffer(buf)
	if err != nil {
		render.Render(w, r, apierrors.UnprocessableFileWithError(err))
		return
	}

	ctx := domain.Context{
		ManualCode:    req.ManualCode,
		CutoffDate:    req.CutoffDate,
		FileName:      fileName,
		TargetProject: domain.ProjectCode(req.TargetProject),
	}
	if ctx.CutoffDate == "" && req.ManualCode != "" {
		ctx.CutoffDate = h.cfg.Processing.CutoffFor(req.ManualCode)
	}

	result, err := h.processor.Process(reader, ctx)
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoBillingSheet),
			errors.Is(err, pipeline.ErrManualCodeRequired):
			render.Render(w, r, apierrors.UnprocessableFileWithError(err))
		default:
			h.logger.Error("processing failed",
				slog.String("request_id", RequestIDFromContext(r.Context())),
				slog.String("file", fileName),
				slog.String("error", err.Error()))
			render.Render(w, r, apierrors.ErrInternalServer)
		}
		return
	}

	resp := processResponse{
		Columns: domain.BillingColumns(),
		Rows:    make([][]string, 0, len(result.Rows)),
		Stats:   result.Stats,
	}
	for _, row := range result.Rows {
		resp.Rows = append(resp.Rows, row.Record())
	}

	render.JSON(w, r, resp)
}

// readUpload extracts the spreadsheet from the multipart body, bounded by
// the configured size limit.
func (h *handler) readUpload(r *http.Request) ([]byte, string, *apierrors.APIError) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.Server.MaxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, "", apierrors.ErrFileTooLarge
		}
		return nil, "", apierrors.InvalidRequestWithError(err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", apierrors.ErrMissingFile
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, "", apierrors.InvalidRequestWithError(err)
	}
	return buf, header.Filename, nil
}
