package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vahanbazar/vahanbazar-backend/api/middleware"
	"github.com/vahanbazar/vahanbazar-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func addRouteParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func withIdentity(r *http.Request, userID, userName, role string) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), userID, userName, role))
}
