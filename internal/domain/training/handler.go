package training

import (
	"errors"
	"net/http"
	"time"

	"dog-adoption-api/internal/platform/web"
	"dog-adoption-api/internal/query"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/training-records", func(tr chi.Router) {
		tr.Get("/", listRecordsHandler(svc))
		tr.Post("/", createRecordHandler(svc))

		// Rutas fijas antes de {recordID} para que chi no las capture.
		tr.Get("/trainers", trainerDirectoryHandler(svc))
		tr.Get("/dogs/{dogID}/progress", dogProgressHandler(svc))

		tr.Get("/{recordID}", getRecordHandler(svc))
		tr.Patch("/{recordID}", updateRecordHandler(svc))
	})
}

type createRecordRequest struct {
	DogID        string   `json:"dogId" validate:"required,uuid4"`
	Type         string   `json:"type" validate:"required,oneof=basic-obedience advanced-obedience agility behavioral-correction socialization service-training therapy-training"`
	Trainer      string   `json:"trainer" validate:"required,max=100"`
	Facility     string   `json:"facility" validate:"omitempty,max=100"`
	StartDate    string   `json:"startDate" validate:"required"` // YYYY-MM-DD
	EndDate      string   `json:"endDate"`                       // YYYY-MM-DD opcional
	Status       string   `json:"status" validate:"omitempty,oneof=in-progress completed discontinued"`
	Skills       []string `json:"skills" validate:"omitempty,max=20"`
	Progress     string   `json:"progress" validate:"omitempty,oneof=poor fair good excellent"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	Notes        string   `json:"notes" validate:"omitempty,max=1000"`
	Certificates []string `json:"certificates" validate:"omitempty,max=10"`
}

type updateRecordRequest struct {
	Type         *string   `json:"type" validate:"omitempty,oneof=basic-obedience advanced-obedience agility behavioral-correction socialization service-training therapy-training"`
	Trainer      *string   `json:"trainer" validate:"omitempty,max=100"`
	Facility     *string   `json:"facility" validate:"omitempty,max=100"`
	StartDate    *string   `json:"startDate"` // YYYY-MM-DD
	EndDate      *string   `json:"endDate"`   // YYYY-MM-DD
	Status       *string   `json:"status" validate:"omitempty,oneof=in-progress completed discontinued"`
	Skills       *[]string `json:"skills" validate:"omitempty,max=20"`
	Progress     *string   `json:"progress" validate:"omitempty,oneof=poor fair good excellent"`
	Cost         *float64  `json:"cost" validate:"omitempty,gte=0"`
	Notes        *string   `json:"notes" validate:"omitempty,max=1000"`
	Certificates *[]string `json:"certificates" validate:"omitempty,max=10"`
}

type trainingResponse struct {
	ID           string     `json:"id"`
	DogID        string     `json:"dogId"`
	Type         string     `json:"type"`
	Trainer      string     `json:"trainer"`
	Facility     string     `json:"facility,omitempty"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Status       string     `json:"status"`
	Skills       []string   `json:"skills"`
	Progress     string     `json:"progress"`
	Cost         *float64   `json:"cost,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Certificates []string   `json:"certificates,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type dogProgressResponse struct {
	DogID           string             `json:"dogId"`
	TotalTrainings  int                `json:"totalTrainings"`
	Completed       int                `json:"completed"`
	InProgress      int                `json:"inProgress"`
	Discontinued    int                `json:"discontinued"`
	Skills          []string           `json:"skills"`
	OverallProgress string             `json:"overallProgress"`
	Records         []trainingResponse `json:"records"`
}

type trainerResponse struct {
	Trainer         string   `json:"trainer"`
	Specialties     []string `json:"specialties"`
	TotalRecords    int      `json:"totalRecords"`
	AverageProgress string   `json:"averageProgress"`
}

// listRecordsHandler godoc
// @Summary Listar entrenamientos
// @Tags training-records
// @Produce json
// @Param dog_id query string false "Filtra por perro"
// @Param type query string false "Tipo de entrenamiento"
// @Param status query string false "in-progress | completed | discontinued"
// @Param trainer query string false "Subcadena del entrenador"
// @Param page query int false "Página (base 1)"
// @Param limit query int false "Tamaño de página (1..100)"
// @Success 200 {object} web.ListResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /training-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := web.PageParams(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		filter := ListFilter{
			DogID:   web.QueryString(r, "dog_id"),
			Type:    web.QueryString(r, "type"),
			Status:  web.QueryString(r, "status"),
			Trainer: web.QueryString(r, "trainer"),
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		window, meta := query.Paginate(items, page, limit)

		out := make([]trainingResponse, 0, len(window))
		for _, rec := range window {
			out = append(out, toTrainingResponse(rec))
		}

		web.WriteJSON(w, http.StatusOK, web.ListResponse{Data: out, Pagination: meta})
	}
}

// dogProgressHandler godoc
// @Summary Progreso de entrenamiento de un perro
// @Description Particiona por estado, une habilidades deduplicadas y promedia el progreso sobre la escala poor/fair/good/excellent.
// @Tags training-records
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogProgressResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /training-records/dogs/{dogID}/progress [get]
func dogProgressHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.ProgressByDog(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "dog not found")
			return
		}

		out := dogProgressResponse{
			DogID:           p.DogID,
			TotalTrainings:  p.TotalTrainings,
			Completed:       p.Completed,
			InProgress:      p.InProgress,
			Discontinued:    p.Discontinued,
			Skills:          p.Skills,
			OverallProgress: string(p.Overall),
			Records:         make([]trainingResponse, 0, len(p.Records)),
		}
		for _, rec := range p.Records {
			out.Records = append(out.Records, toTrainingResponse(rec))
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}

// trainerDirectoryHandler godoc
// @Summary Directorio de entrenadores
// @Description Agrupa por nombre exacto de entrenador, con especialidades y progreso promedio.
// @Tags training-records
// @Produce json
// @Success 200 {array} trainerResponse
// @Router /training-records/trainers [get]
func trainerDirectoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trainers, err := svc.TrainerDirectory(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		out := make([]trainerResponse, 0, len(trainers))
		for _, t := range trainers {
			specs := make([]string, 0, len(t.Specialties))
			for _, sp := range t.Specialties {
				specs = append(specs, string(sp))
			}
			out = append(out, trainerResponse{
				Trainer:         t.Trainer,
				Specialties:     specs,
				TotalRecords:    t.TotalRecords,
				AverageProgress: string(t.AvgProgress),
			})
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}

// getRecordHandler godoc
// @Summary Obtener entrenamiento
// @Tags training-records
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} trainingResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /training-records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "training record not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, toTrainingResponse(rec))
	}
}

// createRecordHandler godoc
// @Summary Crear entrenamiento
// @Description El dogId debe referenciar un perro existente; si no existe responde 404.
// @Tags training-records
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Datos del entrenamiento; fechas en YYYY-MM-DD"
// @Success 201 {object} trainingResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /training-records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		start, err := web.ParseDate(req.StartDate)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, "startDate must be YYYY-MM-DD")
			return
		}
		end, err := web.ParseOptionalDate(req.EndDate)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, "endDate must be YYYY-MM-DD")
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			DogID:        req.DogID,
			Type:         req.Type,
			Trainer:      req.Trainer,
			Facility:     req.Facility,
			StartDate:    start,
			EndDate:      end,
			Status:       req.Status,
			Skills:       req.Skills,
			Progress:     req.Progress,
			Cost:         req.Cost,
			Notes:        req.Notes,
			Certificates: req.Certificates,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDogNotFound):
				web.WriteError(w, http.StatusNotFound, web.KindNotFound, "dog not found")
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, toTrainingResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar entrenamiento
// @Tags training-records
// @Accept json
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param payload body updateRecordRequest true "Campos a modificar"
// @Success 200 {object} trainingResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /training-records/{recordID} [patch]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRecordRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		in := UpdateInput{
			Type:         req.Type,
			Trainer:      req.Trainer,
			Facility:     req.Facility,
			Status:       req.Status,
			Skills:       req.Skills,
			Progress:     req.Progress,
			Cost:         req.Cost,
			Notes:        req.Notes,
			Certificates: req.Certificates,
		}
		if req.StartDate != nil {
			start, err := web.ParseDate(*req.StartDate)
			if err != nil {
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, "startDate must be YYYY-MM-DD")
				return
			}
			in.StartDate = &start
		}
		if req.EndDate != nil {
			end, err := web.ParseOptionalDate(*req.EndDate)
			if err != nil {
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, "endDate must be YYYY-MM-DD")
				return
			}
			in.EndDate = end
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, web.KindNotFound, "training record not found")
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, toTrainingResponse(updated))
	}
}

func toTrainingResponse(rec Record) trainingResponse {
	return trainingResponse{
		ID:           rec.ID,
		DogID:        rec.DogID,
		Type:         string(rec.Type),
		Trainer:      rec.Trainer,
		Facility:     rec.Facility,
		StartDate:    rec.StartDate,
		EndDate:      rec.EndDate,
		Status:       string(rec.Status),
		Skills:       rec.Skills,
		Progress:     string(rec.Progress),
		Cost:         rec.Cost,
		Notes:        rec.Notes,
		Certificates: rec.Certificates,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
