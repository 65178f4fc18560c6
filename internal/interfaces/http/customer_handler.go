package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
)

// CustomerHandler maneja el CRUD de clientes.
type CustomerHandler struct {
	uc      *usecase.CustomerUseCase
	checker *validation.Checker
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, checker *validation.Checker) *CustomerHandler {
	return &CustomerHandler{uc: uc, checker: checker}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {object}  dto.CustomerList
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, "clientes.list", err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cliente por CPF
// @Tags         clientes
// @Produce      json
// @Param        cpf  path  string  true  "CPF (xxx.xxx.xxx-xx)"
// @Success      200  {object}  dto.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{cpf} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	cpf, err := h.checker.CPFParam(param(c, "cpf"))
	if err != nil {
		return writeError(c, "clientes.get", err)
	}
	out, err := h.uc.Get(c.UserContext(), cpf)
	if err != nil {
		return writeError(c, "clientes.get", err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.Customer  true  "Datos del cliente"
// @Success      201   {object}  dto.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	in, err := h.checker.CustomerBody(c.Body())
	if err != nil {
		return writeError(c, "clientes.create", err)
	}
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return writeError(c, "clientes.create", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar cliente
// @Description  El CPF del cuerpo debe coincidir con el de la URL.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        cpf   path  string        true  "CPF (xxx.xxx.xxx-xx)"
// @Param        body  body  dto.Customer  true  "Datos del cliente"
// @Success      200   {object}  dto.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /clientes/{cpf} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	cpf, err := h.checker.CPFParam(param(c, "cpf"))
	if err != nil {
		return writeError(c, "clientes.update", err)
	}
	in, err := h.checker.CustomerBody(c.Body())
	if err != nil {
		return writeError(c, "clientes.update", err)
	}
	out, err := h.uc.Update(c.UserContext(), cpf, *in)
	if err != nil {
		return writeError(c, "clientes.update", err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Param        cpf  path  string  true  "CPF (xxx.xxx.xxx-xx)"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clientes/{cpf} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	cpf, err := h.checker.CPFParam(param(c, "cpf"))
	if err != nil {
		return writeError(c, "clientes.delete", err)
	}
	if err := h.uc.Delete(c.UserContext(), cpf); err != nil {
		return writeError(c, "clientes.delete", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
