package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wikiguess/internal/wikierr"
	"wikiguess/wikiguess"
)

const jsonContentType = "application/json; charset=utf-8"

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "WikiGuess backend root")
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) countries(c *gin.Context) {
	data, err := wikiguess.Countries(c.Request.Context(), s.options)
	if err != nil {
		s.fail(c, wikiguess.MemberStatesPage, err)
		return
	}

	c.Data(http.StatusOK, jsonContentType, data)
}

func (s *Server) countryInfo(c *gin.Context) {
	page := c.Param("page")

	data, err := wikiguess.CountryInfo(c.Request.Context(), s.options, page)
	if err != nil {
		s.fail(c, page, err)
		return
	}

	c.Data(http.StatusOK, jsonContentType, data)
}

func (s *Server) fail(c *gin.Context, page string, err error) {
	class := errorClass(err)
	s.metrics.RecordPageError(class)

	status := wikierr.StatusCode(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("page retrieval failed", zap.String("page", page), zap.String("class", class), zap.Error(err))
	} else {
		s.logger.Info("page retrieval failed", zap.String("page", page), zap.String("class", class), zap.Error(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, wikierr.ErrNotFound):
		return "not_found"
	case errors.Is(err, wikierr.ErrRemoteServer):
		return "remote_server"
	case errors.Is(err, wikierr.ErrUnhandledFetch):
		return "unhandled_fetch"
	case errors.Is(err, wikierr.ErrMalformedPage):
		return "malformed_page"
	default:
		return "internal"
	}
}
