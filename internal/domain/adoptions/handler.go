package adoptions

import (
	"errors"
	"net/http"
	"time"

	"dog-adoption-api/internal/platform/web"
	"dog-adoption-api/internal/query"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listApplicationsHandler(svc))
		ar.Post("/", createApplicationHandler(svc))

		// Estadísticas antes de {applicationID} para que chi no lo capture.
		ar.Get("/stats", statsHandler(svc))

		ar.Get("/{applicationID}", getApplicationHandler(svc))
		ar.Patch("/{applicationID}", updateApplicationHandler(svc))
	})
}

type addressPayload struct {
	Street  string `json:"street" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	ZipCode string `json:"zipCode" validate:"required,max=20"`
	Country string `json:"country" validate:"omitempty,max=100"`
}

type createApplicationRequest struct {
	DogID         string         `json:"dogId" validate:"required,uuid4"`
	ApplicantName string         `json:"applicantName" validate:"required,max=100"`
	Email         string         `json:"email" validate:"required,email"`
	Phone         string         `json:"phone" validate:"required,max=30"`
	Address       addressPayload `json:"address" validate:"required"`
	HousingType   string         `json:"housingType" validate:"required,oneof=house apartment condo farm other"`
	HasYard       bool           `json:"hasYard"`
	Experience    string         `json:"experience" validate:"required,oneof=first-time some-experience experienced"`
	Reason        string         `json:"reason" validate:"omitempty,max=1000"`
}

type updateApplicationRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending approved rejected withdrawn"`
	Reason *string `json:"reason" validate:"omitempty,max=1000"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

type applicationResponse struct {
	ID            string         `json:"id"`
	DogID         string         `json:"dogId"`
	ApplicantName string         `json:"applicantName"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone"`
	Address       addressPayload `json:"address"`
	HousingType   string         `json:"housingType"`
	HasYard       bool           `json:"hasYard"`
	Experience    string         `json:"experience"`
	Status        string         `json:"status"`
	Reason        string         `json:"reason"`
	Notes         string         `json:"notes"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type statsResponse struct {
	TotalApplications int     `json:"totalApplications"`
	Pending           int     `json:"pending"`
	Approved          int     `json:"approved"`
	Rejected          int     `json:"rejected"`
	Withdrawn         int     `json:"withdrawn"`
	TotalDogs         int     `json:"totalDogs"`
	AdoptionRate      float64 `json:"adoptionRate"`
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes de adopción
// @Tags adoptions
// @Produce json
// @Param status query string false "pending | approved | rejected | withdrawn"
// @Param dog_id query string false "Filtra por perro"
// @Param page query int false "Página (base 1)"
// @Param limit query int false "Tamaño de página (1..100)"
// @Success 200 {object} web.ListResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /adoptions [get]
func listApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := web.PageParams(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		filter := ListFilter{
			Status: web.QueryString(r, "status"),
			DogID:  web.QueryString(r, "dog_id"),
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		window, meta := query.Paginate(items, page, limit)

		out := make([]applicationResponse, 0, len(window))
		for _, a := range window {
			out = append(out, toApplicationResponse(a))
		}

		web.WriteJSON(w, http.StatusOK, web.ListResponse{Data: out, Pagination: meta})
	}
}

// statsHandler godoc
// @Summary Estadísticas de adopción
// @Description Conteos por estado y tasa de adopción (approved / total de perros * 100).
// @Tags adoptions
// @Produce json
// @Success 200 {object} statsResponse
// @Router /adoptions/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Stats(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, statsResponse{
			TotalApplications: st.TotalApplications,
			Pending:           st.Pending,
			Approved:          st.Approved,
			Rejected:          st.Rejected,
			Withdrawn:         st.Withdrawn,
			TotalDogs:         st.TotalDogs,
			AdoptionRate:      st.AdoptionRate,
		})
	}
}

// getApplicationHandler godoc
// @Summary Obtener solicitud
// @Tags adoptions
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Success 200 {object} applicationResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /adoptions/{applicationID} [get]
func getApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "applicationID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "application not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, toApplicationResponse(a))
	}
}

// createApplicationHandler godoc
// @Summary Crear solicitud de adopción
// @Description El dogId debe referenciar un perro existente; si no existe responde 404.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param payload body createApplicationRequest true "Datos de la solicitud"
// @Success 201 {object} applicationResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /adoptions [post]
func createApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createApplicationRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			DogID:         req.DogID,
			ApplicantName: req.ApplicantName,
			Email:         req.Email,
			Phone:         req.Phone,
			Address: Address{
				Street:  req.Address.Street,
				City:    req.Address.City,
				State:   req.Address.State,
				ZipCode: req.Address.ZipCode,
				Country: req.Address.Country,
			},
			HousingType: req.HousingType,
			HasYard:     req.HasYard,
			Experience:  req.Experience,
			Reason:      req.Reason,
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

		web.WriteJSON(w, http.StatusCreated, toApplicationResponse(a))
	}
}

// updateApplicationHandler godoc
// @Summary Actualizar solicitud
// @Description Cambia estado, razón o notas. Las transiciones de estado no se restringen.
// @Tags adoptions
// @Accept json
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Param payload body updateApplicationRequest true "Campos a modificar"
// @Success 200 {object} applicationResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /adoptions/{applicationID} [patch]
func updateApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateApplicationRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "applicationID"), UpdateInput{
			Status: req.Status,
			Reason: req.Reason,
			Notes:  req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, web.KindNotFound, "application not found")
			default:
				web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, toApplicationResponse(updated))
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:            a.ID,
		DogID:         a.DogID,
		ApplicantName: a.ApplicantName,
		Email:         a.Email,
		Phone:         a.Phone,
		Address: addressPayload{
			Street:  a.Address.Street,
			City:    a.Address.City,
			State:   a.Address.State,
			ZipCode: a.Address.ZipCode,
			Country: a.Address.Country,
		},
		HousingType: string(a.HousingType),
		HasYard:     a.HasYard,
		Experience:  string(a.Experience),
		Status:      string(a.Status),
		Reason:      a.Reason,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
