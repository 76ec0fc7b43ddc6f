package handlers

import (
	"github.com/compravenda/api/internal/http/response"
	"github.com/compravenda/api/internal/repository"
	"github.com/compravenda/api/internal/service"

	"github.com/gin-gonic/gin"
)

// Register creates an account.
func (h *Handler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Informe nome de usuário e senha.")
		return
	}
	user, err := h.UserService.Register(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, user)
}

// ListUsers returns a page of accounts.
func (h *Handler) ListUsers(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	page, pageSize := parsePageQuery(c)
	filter := repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("busca"),
	}
	users, total, err := h.UserService.List(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OKWithPage(c, users, response.NewPagination(page, pageSize, total))
}

// GetUser returns an account by id.
func (h *Handler) GetUser(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	user, err := h.UserService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, user)
}

// UpdateUser saves account fields by id. An account can only be
// edited by its own user.
func (h *Handler) UpdateUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if id != uid {
		response.Forbidden(c, "Você não pode alterar a conta de outro usuário.")
		return
	}
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados do usuário inválidos.")
		return
	}
	user, err := h.UserService.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, user)
}

// GetProfile returns the authenticated user's account.
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserService.Get(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, user)
}

// UpdateProfile saves the authenticated user's account fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var input service.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dados do usuário inválidos.")
		return
	}
	user, err := h.UserService.Update(uid, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, user)
}
