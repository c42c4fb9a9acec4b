// Package http provides http transport for timezone lookups
package http

import (
	stdhttp "net/http"
	"strings"

	"tzdetect/internal/core/subject"
	"tzdetect/internal/modkit/httpkit"
	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/services/timezone/domain"
)

// Register mounts timezone endpoints on the given router
func Register(r httpkit.Router, s domain.IntegratorPort) {
	h := &handlers{svc: s}

	// timezone name for the subject described by the query string
	httpkit.Get(r, "/timezone", h.timezone)

	// ±HH:MM offset
	httpkit.Get(r, "/utc-offset", h.utcOffset)

	// current wall time at that offset
	httpkit.Get(r, "/local-time", h.localTime)
}

type handlers struct{ svc domain.IntegratorPort }

// @Summary Timezone name for an address
// @Tags Timezone
// @Produce json
// @Param city query string false "City"
// @Param state query string false "State or province"
// @Param country query string false "Country"
// @Param zip query string false "Postal code"
// @Success 200 {object} domain.TimezoneResult "ok"
// @Failure 404 "no match"
// @Router /timezone [get]
func (h *handlers) timezone(r *stdhttp.Request) (any, error) {
	tz, ok, err := h.svc.DetectTimezone(r.Context(), subjectOf(r))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("no timezone matches the query")
	}
	return domain.TimezoneResult{Timezone: tz}, nil
}

// @Summary UTC offset for an address as +HH:MM
// @Tags Timezone
// @Produce json
// @Param city query string false "City"
// @Param state query string false "State or province"
// @Param country query string false "Country"
// @Param zip query string false "Postal code"
// @Success 200 {object} domain.OffsetResult "ok"
// @Failure 404 "no match"
// @Router /utc-offset [get]
func (h *handlers) utcOffset(r *stdhttp.Request) (any, error) {
	off, ok, err := h.svc.UTCOffset(r.Context(), subjectOf(r))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("no utc offset matches the query")
	}
	return domain.OffsetResult{UTCOffset: off}, nil
}

// @Summary Current wall time at the address's UTC offset
// @Tags Timezone
// @Produce json
// @Param city query string false "City"
// @Param state query string false "State or province"
// @Param country query string false "Country"
// @Param zip query string false "Postal code"
// @Success 200 {object} domain.LocalTimeResult "ok"
// @Failure 404 "no match"
// @Router /local-time [get]
func (h *handlers) localTime(r *stdhttp.Request) (any, error) {
	now, ok, err := h.svc.CurrentTime(r.Context(), subjectOf(r))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, perr.NotFoundf("no utc offset matches the query")
	}
	return domain.LocalTimeResult{UTCOffset: now.Location().String(), LocalTime: now}, nil
}

// subjectOf reads the first value of every non-blank query parameter
func subjectOf(r *stdhttp.Request) subject.Map {
	q := r.URL.Query()
	m := make(subject.Map, len(q))
	for k, vs := range q {
		if len(vs) == 0 {
			continue
		}
		if v := strings.TrimSpace(vs[0]); v != "" {
			m[k] = v
		}
	}
	return m
}
