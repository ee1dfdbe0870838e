// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package rest exposes the generic HTTP boundary for catalogue resources.
//
// One generic [Handler] serves every resource type; the per-resource
// packages instantiate it with their entity type and mount it on the router.
// Reads are public, mutations are gated behind the admin role.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/apperr"
	"github.com/starchive/starchive/internal/platform/middleware"
	"github.com/starchive/starchive/internal/platform/request"
	"github.com/starchive/starchive/internal/platform/respond"
	"github.com/starchive/starchive/internal/platform/sec"
	"github.com/starchive/starchive/internal/platform/validate"
	"github.com/starchive/starchive/pkg/pagination"
)

// Handler adapts a generic [resource.Service] to chi routes.
type Handler[T any, P resource.Entity[T]] struct {
	service *resource.Service[T, P]
}

// NewHandler wires a REST handler around a resource lifecycle service.
func NewHandler[T any, P resource.Entity[T]](service *resource.Service[T, P]) *Handler[T, P] {
	return &Handler[T, P]{service: service}
}

// Mount registers the resource routes under the collection's wire name, so
// the route path and canonical URLs always agree on the kind segment.
func (handler *Handler[T, P]) Mount(router chi.Router) {
	router.Route("/"+string(handler.service.Descriptor().Kind), handler.RegisterRoutes)
}

// RegisterRoutes mounts the standard resource endpoints on the router.
func (handler *Handler[T, P]) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.list)
	router.Get("/{id}", handler.get)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/create", handler.create)
		adminRoute.Patch("/{id}", handler.update)
		adminRoute.Delete("/{id}", handler.delete)
	})
}

func (handler *Handler[T, P]) list(writer http.ResponseWriter, httpRequest *http.Request) {
	paginationParams := pagination.FromRequest(httpRequest)
	search := httpRequest.URL.Query().Get("search")

	entities, total, err := handler.service.List(httpRequest.Context(), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if entities == nil {
		entities = []*T{}
	}

	respond.Paginated(writer, entities, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, len(entities), total))
}

func (handler *Handler[T, P]) get(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := handler.pathID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	entity, err := handler.service.Get(httpRequest.Context(), id)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, entity)
}

func (handler *Handler[T, P]) create(writer http.ResponseWriter, httpRequest *http.Request) {
	input := new(T)
	if err := handler.decode(httpRequest, input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	created, err := handler.service.Create(httpRequest.Context(), input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler[T, P]) update(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := handler.pathID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	input := new(T)
	if err := handler.decode(httpRequest, input); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	updated, err := handler.service.Update(httpRequest.Context(), id, input)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler[T, P]) delete(writer http.ResponseWriter, httpRequest *http.Request) {
	id, err := handler.pathID(httpRequest)
	if err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	if err := handler.service.Delete(httpRequest.Context(), id); err != nil {
		respond.Error(writer, httpRequest, err)
		return
	}

	respond.NoContent(writer)
}

// pathID parses the {id} route parameter.
func (handler *Handler[T, P]) pathID(httpRequest *http.Request) (int64, error) {
	raw := request.Param(httpRequest, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid resource id", apperr.FieldError{
			Field:   "id",
			Message: "Must be a positive integer",
		})
	}

	return id, nil
}

// decode reads the JSON body, translating relation shape failures into the
// 422 reference taxonomy instead of a generic 400.
func (handler *Handler[T, P]) decode(httpRequest *http.Request, target *T) error {
	err := json.NewDecoder(httpRequest.Body).Decode(target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, resource.ErrNestedReferenceList):
		return apperr.UnsupportedShape("relations")
	case errors.Is(err, resource.ErrNonStringReference):
		return apperr.InvalidReference("non-string value")
	default:
		return validate.ErrInvalidJSON
	}
}
