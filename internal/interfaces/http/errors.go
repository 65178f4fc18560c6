package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/brdocs-api/internal/application/dto"
	"github.com/jhoicas/brdocs-api/internal/application/validation"
	"github.com/jhoicas/brdocs-api/internal/domain"
)

const (
	msgValidation         = "Erro de validação"
	msgCustomerValidation = "Erro de validação nos dados do cliente."
	msgKeyMismatch        = "O CPF no corpo da requisição deve ser o mesmo que o da URL."
	msgNotFound           = "Cliente não encontrado"
	msgConflict           = "Cliente com este CPF já cadastrado."
	msgInternal           = "Erro interno do servidor."
)

// writeError es el único punto que traduce errores de aplicación a status HTTP.
// Solo los fallos internos se registran como error.
func writeError(c *fiber.Ctx, op string, err error) error {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		msg := msgValidation
		if strings.HasPrefix(ve.Op, "clientes.") {
			msg = msgCustomerValidation
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensagem: msg, Erros: ve.Fields})
	case errors.Is(err, domain.ErrKeyMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensagem: msgKeyMismatch})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensagem: msgNotFound})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Mensagem: msgConflict})
	default:
		log.Error().Err(err).Str("op", op).Str("request_id", requestID(c)).Msg("erro interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensagem: msgInternal})
	}
}

// ErrorHandler de la app Fiber: errores del router (404, 405, cuerpo demasiado grande)
// y panics recuperados, con el mismo envelope que los handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Mensagem: fe.Message})
	}
	log.Error().Err(err).Str("request_id", requestID(c)).Str("path", c.Path()).Msg("erro não tratado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensagem: msgInternal})
}
