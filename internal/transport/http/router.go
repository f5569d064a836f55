// Пакет rest — HTTP-транспорт приёма заявок (gin).
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/orderform/internal/domain"
	"github.com/Gunvolt24/orderform/internal/ports"
	"github.com/Gunvolt24/orderform/internal/usecase"
	"github.com/Gunvolt24/orderform/pkg/httpx"
	"github.com/Gunvolt24/orderform/pkg/validate"
)

// Текст ответа на нечитаемое тело запроса (до валидации полей).
const msgBadRequestBody = "invalid request body"

// Текст ответа при сбое записи. Зафиксирован контрактом API.
const msgSaveFailed = "Failed to save order."

type Handler struct {
	intake ports.OrderIntake
	log    ports.Logger
}

func NewHandler(intake ports.OrderIntake, log ports.Logger) *Handler {
	return &Handler{intake: intake, log: log}
}

// NewRouter — собирает gin-роутер с боевым набором middleware.
// otelServiceName пустой — otelgin не подключается.
func NewRouter(h *Handler, otelServiceName string, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	r.Use(corsMiddleware(corsOrigins))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/api/orders", h.submitOrder)

	return r
}

// submitOrder — POST /api/orders.
// 400 — нечитаемое тело или невалидная форма (текст причины — в "error");
// 500 — заявка не записалась; 200 — успех (возможно, с оговоркой про письмо).
func (h *Handler) submitOrder(c *gin.Context) {
	var form domain.OrderForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Warnf(c.Request.Context(), "bad request body err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequestBody})
		return
	}

	receipt, err := h.intake.SubmitOrder(c.Request.Context(), form)
	if err != nil {
		var fe *validate.FormError
		if errors.As(err, &fe) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fe.Reason})
			return
		}
		if errors.Is(err, usecase.ErrSaveOrder) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgSaveFailed})
			return
		}
		h.log.Errorf(c.Request.Context(), "SubmitOrder failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}
