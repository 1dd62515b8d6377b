package controllers

import (
	"errors"
	"github.com/Kubica-10/contador-historias-api/domain"
	"github.com/Kubica-10/contador-historias-api/infrastructure/gin_interface/dto"
	"github.com/gin-gonic/gin"
	"net/http"
)

var statusByKind = map[domain.ErrorKind]int{
	domain.InvalidInputKind:              http.StatusUnprocessableEntity,
	domain.ConfigurationKind:             http.StatusInternalServerError,
	domain.CredentialRejectedKind:        http.StatusForbidden,
	domain.TransportFailureKind:          http.StatusBadGateway,
	domain.MalformedUpstreamResponseKind: http.StatusInternalServerError,
	domain.UpstreamStatusKind:            http.StatusInternalServerError,
	domain.ServiceBusyKind:               http.StatusServiceUnavailable,
	domain.UnexpectedFailureKind:         http.StatusInternalServerError,
}

// StatusFor maps an error kind to the HTTP status returned to the caller.
func StatusFor(kind domain.ErrorKind) int {
	status, ok := statusByKind[kind]
	if !ok {
		return http.StatusInternalServerError
	}
	return status
}

// abortWithError is the only place service errors become HTTP responses.
func abortWithError(c *gin.Context, err error) {
	detail := err.Error()
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		detail = domainErr.Detail
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(StatusFor(domain.KindOf(err)), dto.ErrorResponse{Detail: detail})
}
