package health

import (
	"errors"
	"net/http"
	"time"

	"dog-adoption-api/internal/platform/web"
	"dog-adoption-api/internal/query"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Get("/", listRecordsHandler(svc))
		hr.Post("/", createRecordHandler(svc))

		// Rutas fijas antes de {recordID} para que chi no las capture.
		hr.Get("/veterinarians", vetDirectoryHandler(svc))
		hr.Get("/dogs/{dogID}/vaccinations", vaccinationsHandler(svc))

		hr.Get("/{recordID}", getRecordHandler(svc))
		hr.Patch("/{recordID}", updateRecordHandler(svc))
	})
}

type createRecordRequest struct {
	DogID        string   `json:"dogId" validate:"required,uuid4"`
	Type         string   `json:"type" validate:"required,oneof=vaccination checkup surgery dental medication injury other"`
	Date         string   `json:"date" validate:"required"` // YYYY-MM-DD
	Veterinarian string   `json:"veterinarian" validate:"required,max=100"`
	Clinic       string   `json:"clinic" validate:"omitempty,max=100"`
	Description  string   `json:"description" validate:"omitempty,max=1000"`
	Medications  []string `json:"medications" validate:"omitempty,max=20"`
	Cost         *float64 `json:"cost" validate:"omitempty,gte=0"`
	FollowUpDate string   `json:"followUpDate"` // YYYY-MM-DD opcional
}

type updateRecordRequest struct {
	Type         *string   `json:"type" validate:"omitempty,oneof=vaccination checkup surgery dental medication injury other"`
	Date         *string   `json:"date"` // YYYY-MM-DD
	Veterinarian *string   `json:"veterinarian" validate:"omitempty,max=100"`
	Clinic       *string   `json:"clinic" validate:"omitempty,max=100"`
	Description  *string   `json:"description" validate:"omitempty,max=1000"`
	Medications  *[]string `json:"medications" validate:"omitempty,max=20"`
	Cost         *float64  `json:"cost" validate:"omitempty,gte=0"`
	FollowUpDate *string   `json:"followUpDate"` // YYYY-MM-DD
}

type recordResponse struct {
	ID           string     `json:"id"`
	DogID        string     `json:"dogId"`
	Type         string     `json:"type"`
	Date         time.Time  `json:"date"`
	Veterinarian string     `json:"veterinarian"`
	Clinic       string     `json:"clinic"`
	Description  string     `json:"description"`
	Medications  []string   `json:"medications,omitempty"`
	Cost         *float64   `json:"cost,omitempty"`
	FollowUpDate *time.Time `json:"followUpDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type vetResponse struct {
	Veterinarian string   `json:"veterinarian"`
	Clinic       string   `json:"clinic"`
	RecordTypes  []string `json:"recordTypes"`
	TotalRecords int      `json:"totalRecords"`
}

type vaccinationStatusResponse struct {
	DogID             string           `json:"dogId"`
	UpToDate          bool             `json:"upToDate"`
	LastVaccination   *time.Time       `json:"lastVaccination,omitempty"`
	NextDue           *time.Time       `json:"nextDue,omitempty"`
	TotalVaccinations int              `json:"totalVaccinations"`
	Vaccinations      []recordResponse `json:"vaccinations"`
}

// listRecordsHandler godoc
// @Summary Listar registros de salud
// @Tags health-records
// @Produce json
// @Param dog_id query string false "Filtra por perro"
// @Param type query string false "Tipo de registro"
// @Param veterinarian query string false "Subcadena del veterinario"
// @Param date_from query string false "Desde (YYYY-MM-DD, inclusivo)"
// @Param date_to query string false "Hasta (YYYY-MM-DD, inclusivo)"
// @Param page query int false "Página (base 1)"
// @Param limit query int false "Tamaño de página (1..100)"
// @Success 200 {object} web.ListResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /health-records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := web.PageParams(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		filter := ListFilter{
			DogID:        web.QueryString(r, "dog_id"),
			Type:         web.QueryString(r, "type"),
			Veterinarian: web.QueryString(r, "veterinarian"),
		}
		if filter.From, err = web.QueryDate(r, "date_from"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}
		if filter.To, err = web.QueryDate(r, "date_to"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		window, meta := query.Paginate(items, page, limit)

		out := make([]recordResponse, 0, len(window))
		for _, rec := range window {
			out = append(out, toRecordResponse(rec))
		}

		web.WriteJSON(w, http.StatusOK, web.ListResponse{Data: out, Pagination: meta})
	}
}

// vetDirectoryHandler godoc
// @Summary Directorio de veterinarios
// @Description Agrupa registros por (veterinario, clínica) en orden de primera aparición.
// @Tags health-records
// @Produce json
// @Success 200 {array} vetResponse
// @Router /health-records/veterinarians [get]
func vetDirectoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vets, err := svc.VetDirectory(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		out := make([]vetResponse, 0, len(vets))
		for _, v := range vets {
			types := make([]string, 0, len(v.RecordTypes))
			for _, t := range v.RecordTypes {
				types = append(types, string(t))
			}
			out = append(out, vetResponse{
				Veterinarian: v.Veterinarian,
				Clinic:       v.Clinic,
				RecordTypes:  types,
				TotalRecords: v.TotalRecords,
			})
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}

// vaccinationsHandler godoc
// @Summary Estado de vacunación de un perro
// @Description "Al día" = vacuna más reciente posterior a hoy menos un año calendario.
// @Tags health-records
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} vaccinationStatusResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /health-records/dogs/{dogID}/vaccinations [get]
func vaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Vaccinations(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "dog not found")
			return
		}

		out := vaccinationStatusResponse{
			DogID:             st.DogID,
			UpToDate:          st.UpToDate,
			LastVaccination:   st.LastVaccination,
			NextDue:           st.NextDue,
			TotalVaccinations: st.TotalVaccinations,
			Vaccinations:      make([]recordResponse, 0, len(st.Vaccinations)),
		}
		for _, rec := range st.Vaccinations {
			out.Vaccinations = append(out.Vaccinations, toRecordResponse(rec))
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}

// getRecordHandler godoc
// @Summary Obtener registro de salud
// @Tags health-records
// @Produce json
// @Param recordID path string true "ID del registro"
// @Success 200 {object} recordResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /health-records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "health record not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// createRecordHandler godoc
// @Summary Crear registro de salud
// @Description El dogId debe referenciar un perro existente; si no existe responde 404.
// @Tags health-records
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Datos del registro; fechas en YYYY-MM-DD"
// @Success 201 {object} recordResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /health-records [post]
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

		date, err := web.ParseDate(req.Date)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, "date must be YYYY-MM-DD")
			return
		}
		followUp, err := web.ParseOptionalDate(req.FollowUpDate)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, "followUpDate must be YYYY-MM-DD")
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			DogID:        req.DogID,
			Type:         req.Type,
			Date:         date,
			Veterinarian: req.Veterinarian,
			Clinic:       req.Clinic,
			Description:  req.Description,
			Medications:  req.Medications,
			Cost:         req.Cost,
			FollowUpDate: followUp,
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

		web.WriteJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Actualizar registro de salud
// @Tags health-records
// @Accept json
// @Produce json
// @Param recordID path string true "ID del registro"
// @Param payload body updateRecordRequest true "Campos a modificar"
// @Success 200 {object} recordResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /health-records/{recordID} [patch]
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
			Veterinarian: req.Veterinarian,
			Clinic:       req.Clinic,
			Description:  req.Description,
			Medications:  req.Medications,
			Cost:         req.Cost,
		}
		if req.Date != nil {
			date, err := web.ParseDate(*req.Date)
			if err != nil {
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, "date must be YYYY-MM-DD")
				return
			}
			in.Date = &date
		}
		if req.FollowUpDate != nil {
			followUp, err := web.ParseOptionalDate(*req.FollowUpDate)
			if err != nil {
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, "followUpDate must be YYYY-MM-DD")
				return
			}
			in.FollowUpDate = followUp
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, web.KindNotFound, "health record not found")
			default:
				web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, toRecordResponse(updated))
	}
}

func toRecordResponse(rec Record) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		DogID:        rec.DogID,
		Type:         string(rec.Type),
		Date:         rec.Date,
		Veterinarian: rec.Veterinarian,
		Clinic:       rec.Clinic,
		Description:  rec.Description,
		Medications:  rec.Medications,
		Cost:         rec.Cost,
		FollowUpDate: rec.FollowUpDate,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
