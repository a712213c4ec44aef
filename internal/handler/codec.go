package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	huffman "github.com/masonwr/huffman-encoding"
	"github.com/masonwr/huffman-encoding/internal/service"
)

const octetStream = "application/octet-stream"

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

func (h *CodecHandler) Encode(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Encode(body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

func (h *CodecHandler) Decode(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	out, err := h.svc.Decode(body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Data(http.StatusOK, octetStream, out)
}

func (h *CodecHandler) Stats(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	report, err := h.svc.Stats(body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, huffman.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, huffman.ErrTruncatedHeader),
		errors.Is(err, huffman.ErrInvalidHeader),
		errors.Is(err, huffman.ErrTruncatedPayload):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrOutputTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
