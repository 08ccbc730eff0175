package transport

import (
	"encoding/json"
	"net/http"

	"github.com/xchain/logitrack/constant"
	"github.com/xchain/logitrack/model"
	"github.com/xchain/logitrack/utils/errors"
	validatorx "github.com/xchain/logitrack/utils/validator"
)

func (s *RestHandler) ListBackorders(w http.ResponseWriter, r *http.Request) {
	res, err := s.BackorderApp.ListBackorders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetBackorder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BackorderApp.GetBackorder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateSimpleOrder handler
// @Summary Create simple order
// @Description Create a standalone order that purchasing can derive a purchase order from
// @Tags Order
// @Accept json
// @Produce json
// @Param request body model.SimpleOrderCreateRequest true "Simple Order Request"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.CustomError
// @Router /orders [post]
func (s *RestHandler) CreateSimpleOrder(w http.ResponseWriter, r *http.Request) {
	var req model.SimpleOrderCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BackorderApp.CreateSimpleOrder(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BackorderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) UpdateSimpleOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.SimpleOrderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BackorderApp.UpdateSimpleOrder(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.BackorderApp.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
