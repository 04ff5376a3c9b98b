package dogs

import (
	"errors"
	"net/http"
	"time"

	"dog-adoption-api/internal/platform/web"
	"dog-adoption-api/internal/query"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/dogs", func(dr chi.Router) {
		dr.Get("/", listDogsHandler(svc))
		dr.Post("/", createDogHandler(svc))
		dr.Get("/{dogID}", getDogHandler(svc))
		dr.Patch("/{dogID}", updateDogHandler(svc))
		dr.Delete("/{dogID}", deleteDogHandler(svc))
	})
}

// createDogRequest es el cuerpo para registrar un perro.
type createDogRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Breed       string   `json:"breed" validate:"required,max=100"`
	Age         int      `json:"age" validate:"min=0,max=30"`
	Weight      float64  `json:"weight" validate:"gt=0,lte=200"`
	Gender      string   `json:"gender" validate:"required,oneof=male female"`
	Color       string   `json:"color" validate:"required,max=50"`
	Size        string   `json:"size" validate:"required,oneof=small medium large extra-large"`
	Temperament []string `json:"temperament" validate:"omitempty,max=10"`
	Neutered    bool     `json:"neutered"`
	Microchip   string   `json:"microchip" validate:"omitempty,max=50"`
	Photos      []string `json:"photos" validate:"omitempty,max=10,dive,url"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
}

// updateDogRequest usa punteros para PATCH real: nil = no tocar.
type updateDogRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=100"`
	Breed       *string   `json:"breed" validate:"omitempty,max=100"`
	Age         *int      `json:"age" validate:"omitempty,min=0,max=30"`
	Weight      *float64  `json:"weight" validate:"omitempty,gt=0,lte=200"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=male female"`
	Color       *string   `json:"color" validate:"omitempty,max=50"`
	Size        *string   `json:"size" validate:"omitempty,oneof=small medium large extra-large"`
	Temperament *[]string `json:"temperament" validate:"omitempty,max=10"`
	Neutered    *bool     `json:"neutered"`
	Microchip   *string   `json:"microchip" validate:"omitempty,max=50"`
	Photos      *[]string `json:"photos" validate:"omitempty,max=10,dive,url"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
}

// dogResponse representa un perro devuelto por la API.
type dogResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	Weight      float64   `json:"weight"`
	Gender      string    `json:"gender"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	Temperament []string  `json:"temperament"`
	Neutered    bool      `json:"neutered"`
	Microchip   string    `json:"microchip,omitempty"`
	Photos      []string  `json:"photos"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// listDogsHandler godoc
// @Summary Listar perros
// @Description Lista perros en adopción con filtros opcionales (AND) y paginación.
// @Tags dogs
// @Produce json
// @Param breed query string false "Subcadena de raza, case-insensitive"
// @Param gender query string false "male | female"
// @Param size query string false "small | medium | large | extra-large"
// @Param age_min query int false "Edad mínima (inclusive)"
// @Param age_max query int false "Edad máxima (inclusive)"
// @Param weight_min query number false "Peso mínimo (inclusive)"
// @Param weight_max query number false "Peso máximo (inclusive)"
// @Param neutered query bool false "Filtra por castrado"
// @Param page query int false "Página (base 1, default 1)"
// @Param limit query int false "Tamaño de página (1..100, default 10)"
// @Success 200 {object} web.ListResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /dogs [get]
func listDogsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := web.PageParams(r)
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		filter := ListFilter{
			Breed:  web.QueryString(r, "breed"),
			Gender: web.QueryString(r, "gender"),
			Size:   web.QueryString(r, "size"),
		}
		if filter.AgeMin, err = web.QueryInt(r, "age_min"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}
		if filter.AgeMax, err = web.QueryInt(r, "age_max"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}
		if filter.WeightMin, err = web.QueryFloat(r, "weight_min"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}
		if filter.WeightMax, err = web.QueryFloat(r, "weight_max"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}
		if filter.Neutered, err = web.QueryBool(r, "neutered"); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			return
		}

		window, meta := query.Paginate(items, page, limit)

		out := make([]dogResponse, 0, len(window))
		for _, d := range window {
			out = append(out, toDogResponse(d))
		}

		web.WriteJSON(w, http.StatusOK, web.ListResponse{Data: out, Pagination: meta})
	}
}

// getDogHandler godoc
// @Summary Obtener perro
// @Tags dogs
// @Produce json
// @Param dogID path string true "ID del perro"
// @Success 200 {object} dogResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /dogs/{dogID} [get]
func getDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "dogID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "dog not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, toDogResponse(d))
	}
}

// createDogHandler godoc
// @Summary Registrar perro
// @Description Registra un perro; el ID y los timestamps los asigna el servicio.
// @Tags dogs
// @Accept json
// @Produce json
// @Param payload body createDogRequest true "Datos del perro"
// @Success 201 {object} dogResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /dogs [post]
func createDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDogRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Age:         req.Age,
			Weight:      req.Weight,
			Gender:      req.Gender,
			Color:       req.Color,
			Size:        req.Size,
			Temperament: req.Temperament,
			Neutered:    req.Neutered,
			Microchip:   req.Microchip,
			Photos:      req.Photos,
			Description: req.Description,
		})
		if err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		web.WriteJSON(w, http.StatusCreated, toDogResponse(d))
	}
}

// updateDogHandler godoc
// @Summary Actualizar perro
// @Description Reemplazo parcial; solo UpdatedAt se refresca.
// @Tags dogs
// @Accept json
// @Produce json
// @Param dogID path string true "ID del perro"
// @Param payload body updateDogRequest true "Campos a modificar"
// @Success 200 {object} dogResponse
// @Failure 400 {object} web.ErrorResponse
// @Failure 404 {object} web.ErrorResponse
// @Router /dogs/{dogID} [patch]
func updateDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateDogRequest
		if err := web.DecodeJSON(r, &req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindBadRequest, "invalid json")
			return
		}
		if err := web.Validate(req); err != nil {
			web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "dogID"), UpdateInput{
			Name:        req.Name,
			Breed:       req.Breed,
			Age:         req.Age,
			Weight:      req.Weight,
			Gender:      req.Gender,
			Color:       req.Color,
			Size:        req.Size,
			Temperament: req.Temperament,
			Neutered:    req.Neutered,
			Microchip:   req.Microchip,
			Photos:      req.Photos,
			Description: req.Description,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, web.KindNotFound, "dog not found")
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, web.KindValidation, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, web.KindInternal, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, toDogResponse(updated))
	}
}

// deleteDogHandler godoc
// @Summary Eliminar perro
// @Description Borrado duro. No retira registros dependientes (comportamiento deliberado).
// @Tags dogs
// @Param dogID path string true "ID del perro"
// @Success 204 "sin contenido"
// @Failure 404 {object} web.ErrorResponse
// @Router /dogs/{dogID} [delete]
func deleteDogHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "dogID")); err != nil {
			web.WriteError(w, http.StatusNotFound, web.KindNotFound, "dog not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func toDogResponse(d Dog) dogResponse {
	return dogResponse{
		ID:          d.ID,
		Name:        d.Name,
		Breed:       d.Breed,
		Age:         d.Age,
		Weight:      d.Weight,
		Gender:      string(d.Gender),
		Color:       d.Color,
		Size:        string(d.Size),
		Temperament: d.Temperament,
		Neutered:    d.Neutered,
		Microchip:   d.Microchip,
		Photos:      d.Photos,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
