package breeds

import (
	"errors"
	"net/http"
	"time"

	"dog-adoption-api/internal/platform/web"
	"dog-adoption-api/internal/query"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", createBreedHandler(svc))

		// Agregación por grupo canino; antes de {breedID} para que chi no
		// lo capture como parámetro.
		br.Get("/groups", listGroupsHandler(svc))

		br.Get("/{breedID}", getBreedHandler(svc))
		br.Patch("/{breedID}", updateBreedHandler(svc))
	})
}

type lifespanPayload struct {
	Min int `json:"min" validate:"min=1,max=30"`
	Max int `json:"max" validate:"min=1,max=30,gtefield=Min"`
}

type createBreedRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Group         string          `json:"group" validate:"required,oneof=sporting hound working terrier toy non-sporting herding miscellaneous"`
	Origin        string          `json:"origin" validate:"omitempty,max=100"`
	Size          string          `json:"size" validate:"required,oneof=small medium large extra-large"`
	Lifespan      lifespanPayload `json:"lifespan" validate:"required"`
	Temperament   []string        `json:"temperament" validate:"omitempty,max=15"`
	ExerciseNeeds string          `json:"exerciseNeeds" validate:"required,oneof=low moderate high"`
	GroomingNeeds string          `json:"groomingNeeds" validate:"required,oneof=low moderate high"`
	Trainability  string          `json:"trainability" validate:"required,oneof=low moderate high"`
	GoodWithKids  bool            `json:"goodWithKids"`
	GoodWithPets  bool            `json:"goodWithPets"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	ImageURL      string          `json:"imageUrl" validate:"omitempty,url"`
}

type updateBreedRequest struct {
	Name          *string          `json:"name" validate:"omitempty,max=100"`
	Group         *string          `json:"group" validate:"omitempty,oneof=sporting hound working terrier toy non-sporting herding miscellaneous"`
	Origin        *string          `json:"origin" validate:"omitempty,max=100"`
	Size          *string          `json:"size" validate:"omitempty,oneof=small medium large extra-large"`
	Lifespan      *lifespanPayload `json:"lifespan"`
	Temperament   *[]string        `json:"temperament" validate:"omitempty,max=15"`
	ExerciseNeeds *string          `json:"exerciseNeeds" validate:"omitempty,oneof=low moderate high"`
	GroomingNeeds *string          `json:"groomingNeeds" validate:"omitempty,oneof=low moderate high"`
	Trainability  *string          `json:"trainability" validate:"omitempty,oneof=low moderate high"`
	GoodWithKids  *bool            `json:"goodWithKids"`
	GoodWithPets  *bool            `json:"goodWithPets"`
	Description   *string          `json:"description" validate:"omitempty,max=1000"`
	ImageURL      *string          `json:"imageUrl" validate:"omitempty,url"`
}

type breedResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Group         string          `json:"group"`
	Origin        string          `json:"origin"`
	Size          string          `json:"size"`
	Lifespan      lifespanPayload `json:"lifespan"`
	Temperament   []string        `json:"temperament"`
	ExerciseNeeds string          `json:"exerciseNeeds"`
	GroomingNeeds string          `json:"groomingNeeds"`
	Trainability  string          `json:"trainability"`
	GoodWithKids  bool            `json:"goodWithKids"`
	GoodWithPets  bool            `json:"goodWithPets"`
	Description   string          `json:"description"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

type groupResponse struct {
	Group  string   `json:"group"`
	Count  int      `json:"count"`
	Breeds []string `json:"breeds"`
}

// listBreedsHandler godoc
// @Summary Listar razas
// @Description Lista el catálogo de razas con filtros opcionales (AND) y paginación.
// @Tags breeds
// @Produce json
// @Param name query string false "Subcadena del nombre"
// @Param group query string false "Grupo canino"
// @Param size query string false "small | medium | large | extra-large"
// @Param good_with_kids query bool false "Apto con niños"
// @Param good_with_pets query bool false "Apto con otras mascotas"
// @Param page query int false "Página (base 1)"
// @Param limit query int false "Tamaño de página (1..100)"
// @Success 200 {object} web.ListResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := web.PageParams(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		filter := ListFilter{
			Name:  web.QueryString(r, "name"),
			Group: web.QueryString(r, "group"),
			Size:  web.QueryString(r, "size"),
		}
		if filter.GoodWithKids, err = web.QueryBool(r, "good_with_kids"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}
		if filter.GoodWithPets, err = web.QueryBool(r, "good_with_pets"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		window, meta := query.Paginate(items, page, limit)

		out := make([]breedResponse, 0, len(window))
		for _, b := range window {
			out = append(out, toBreedResponse(b))
		}

		web.WriteJSON(w, http.StatusOK, web.ListResponse{Data: out, Pagination: meta})
	}
}

// listGroupsHandler godoc
// @Summary Razas por grupo canino
// @Description Agrupa el catálogo por grupo en orden de primera aparición.
// @Tags breeds
// @Produce json
// @Success 200 {array} groupResponse
// @Router /breeds/groups [get]
func listGroupsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.Groups(r.Context())
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		out := make([]groupResponse, 0, len(groups))
		for _, g := range groups {
			out = append(out, groupResponse{
				Group:  string(g.Group),
				Count:  g.Count,
				Breeds: g.Breeds,
			})
		}

		web.WriteJSON(w, http.StatusOK, out)
	}
}

// getBreedHandler godoc
// @Summary Obtener raza
// @Tags breeds
// @Produce json
// @Param breedID path string true "ID de la raza"
// @Success 200 {object} breedResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /breeds/{breedID} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breedID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "breed not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

// createBreedHandler godoc
// @Summary Registrar raza
// @Tags breeds
// @Accept json
// @Produce json
// @Param payload body createBreedRequest true "Datos de la raza"
// @Success 201 {object} breedResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /breeds [post]
func createBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBreedRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:          req.Name,
			Group:         req.Group,
			Origin:        req.Origin,
			Size:          req.Size,
			LifespanMin:   req.Lifespan.Min,
			LifespanMax:   req.Lifespan.Max,
			Temperament:   req.Temperament,
			ExerciseNeeds: req.ExerciseNeeds,
			GroomingNeeds: req.GroomingNeeds,
			Trainability:  req.Trainability,
			GoodWithKids:  req.GoodWithKids,
			GoodWithPets:  req.GoodWithPets,
			Description:   req.Description,
			ImageURL:      req.ImageURL,
		})
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		web.WriteJSON(w, http.StatusCreated, toBreedResponse(b))
	}
}

// updateBreedHandler godoc
// @Summary Actualizar raza
// @Tags breeds
// @Accept json
// @Produce json
// @Param breedID path string true "ID de la raza"
// @Param payload body updateBreedRequest true "Campos a modificar"
// @Success 200 {object} breedResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /breeds/{breedID} [patch]
func updateBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBreedRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		in := UpdateInput{
			Name:          req.Name,
			Group:         req.Group,
			Origin:        req.Origin,
			Size:          req.Size,
			Temperament:   req.Temperament,
			ExerciseNeeds: req.ExerciseNeeds,
			GroomingNeeds: req.GroomingNeeds,
			Trainability:  req.Trainability,
			GoodWithKids:  req.GoodWithKids,
			GoodWithPets:  req.GoodWithPets,
			Description:   req.Description,
			ImageURL:      req.ImageURL,
		}
		if req.Lifespan != nil {
			in.LifespanMin = &req.Lifespan.Min
			in.LifespanMax = &req.Lifespan.Max
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "breedID"), in)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, web.KindNotFound, "breed not found")
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, toBreedResponse(updated))
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:            b.ID,
		Name:          b.Name,
		Group:         string(b.Group),
		Origin:        b.Origin,
		Size:          b.Size,
		Lifespan:      lifespanPayload{Min: b.Lifespan.Min, Max: b.Lifespan.Max},
		Temperament:   b.Temperament,
		ExerciseNeeds: string(b.ExerciseNeeds),
		GroomingNeeds: string(b.GroomingNeeds),
		Trainability:  string(b.Trainability),
		GoodWithKids:  b.GoodWithKids,
		GoodWithPets:  b.GoodWithPets,
		Description:   b.Description,
		ImageURL:      b.ImageURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
