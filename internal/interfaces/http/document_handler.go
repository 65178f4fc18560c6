package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/brdocs-api/internal/application/usecase"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
)

// DocumentHandler maneja la validación de documentos y la consulta de CEP.
type DocumentHandler struct {
	uc      *usecase.DocumentUseCase
	checker *validation.Checker
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *usecase.DocumentUseCase, checker *validation.Checker) *DocumentHandler {
	return &DocumentHandler{uc: uc, checker: checker}
}

// ValidateCPF GET /valida-cpf/:cpf
func (h *DocumentHandler) ValidateCPF(c *fiber.Ctx) error {
	cpf, err := h.checker.CPFParam(param(c, "cpf"))
	if err != nil {
		return writeError(c, "cpf.validate", err)
	}
	return c.JSON(h.uc.ValidateCPF(cpf))
}

// ValidateCPFBody POST /valida-cpf
func (h *DocumentHandler) ValidateCPFBody(c *fiber.Ctx) error {
	cpf, err := h.checker.CPFBody(c.Body())
	if err != nil {
		return writeError(c, "cpf.validate", err)
	}
	return c.JSON(h.uc.ValidateCPF(cpf))
}

// ValidateCNPJ GET /valida-cnpj/+ (el CNPJ lleva "/", por eso el parámetro es greedy).
func (h *DocumentHandler) ValidateCNPJ(c *fiber.Ctx) error {
	cnpj, err := h.checker.CNPJParam(param(c, "+"))
	if err != nil {
		return writeError(c, "cnpj.validate", err)
	}
	return c.JSON(h.uc.ValidateCNPJ(cnpj))
}

// ValidateCNH GET /valida-cnh/:cnh
func (h *DocumentHandler) ValidateCNH(c *fiber.Ctx) error {
	cnh, err := h.checker.CNHParam(param(c, "cnh"))
	if err != nil {
		return writeError(c, "cnh.validate", err)
	}
	return c.JSON(h.uc.ValidateCNH(cnh))
}

// LookupCEP GET /valida-cep/:cep
func (h *DocumentHandler) LookupCEP(c *fiber.Ctx) error {
	cep, err := h.checker.CEPParam(param(c, "cep"))
	if err != nil {
		return writeError(c, "cep.lookup", err)
	}
	out, err := h.uc.LookupCEP(c.UserContext(), cep)
	if err != nil {
		return writeError(c, "cep.lookup", err)
	}
	return c.JSON(out)
}

// param copia el valor: fasthttp reutiliza el buffer al terminar el handler.
func param(c *fiber.Ctx, key string) string {
	return utils.CopyString(c.Params(key))
}
