// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler implements the HTTP handlers for page management.
package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/ocms-breadcrumbs/internal/breadcrumb"
	"github.com/olegiv/ocms-breadcrumbs/internal/model"
	"github.com/olegiv/ocms-breadcrumbs/internal/render"
	"github.com/olegiv/ocms-breadcrumbs/internal/store"
)

// MaxTitleLength is the longest accepted page title, in characters.
const MaxTitleLength = 200

// editing matches the edit form and its submission. Those pages add the
// page crumb themselves and end the trail with "Edit", so the automatic
// resource crumb is turned off for them.
var editing = breadcrumb.Any(
	breadcrumb.Paths(RoutePages+"/*"+RouteSuffixEdit),
	breadcrumb.All(breadcrumb.Methods(http.MethodPost), breadcrumb.Paths(RoutePages+"/*")),
)

// Accessors returns the link accessors shared by every request.
func Accessors() breadcrumb.Accessors {
	return breadcrumb.Accessors{
		AccessorRoot:  func(*http.Request) string { return RouteRoot },
		AccessorPages: func(*http.Request) string { return RoutePages },
	}
}

// PagesHandler handles page management routes.
type PagesHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(db *sql.DB, renderer *render.Renderer) *PagesHandler {
	return &PagesHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Routes returns the router for /pages. Mount it under RoutePages.
func (h *PagesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(breadcrumb.Scope("pages"))
	r.Use(breadcrumb.Register("Home", breadcrumb.Accessor(AccessorRoot), breadcrumb.Always()))
	r.Use(breadcrumb.Register("Pages", breadcrumb.Accessor(AccessorPages), breadcrumb.Always()))
	r.Use(breadcrumb.AutoResource(breadcrumb.Not(editing)))

	r.Get(RouteRoot, h.List)
	r.Post(RouteRoot, h.Create)
	r.Get(RouteSuffixNew, h.NewForm)
	r.Get(RouteParamID, h.Show)
	r.Post(RouteParamID, h.Update) // HTML forms can't send PUT
	r.Get(RouteParamID+RouteSuffixEdit, h.EditForm)

	return r
}

// PagesListData holds data for the pages list template.
type PagesListData struct {
	Pages      []*model.Page
	Pagination Pagination
}

// PageFormData holds data for the page form template.
type PageFormData struct {
	Page     *model.Page
	Statuses []string
	Errors   map[string]string
}

// PageShowData holds data for the page template.
type PageShowData struct {
	Page *model.Page
}

// List handles GET /pages - displays one screen of pages.
func (h *PagesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.queries.CountPages(ctx)
	if err != nil {
		slog.Error("failed to count pages", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	pagination := BuildPagination(ParsePageParam(r), total, PagesPerScreen, RoutePages)
	pages, err := h.queries.ListPages(ctx, store.ListPagesParams{
		Limit:  int64(pagination.PerPage),
		Offset: int64(pagination.Offset()),
	})
	if err != nil {
		slog.Error("failed to list pages", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderer.RenderPage(w, r, "pages/list", render.TemplateData{
		Title: "Pages",
		Data:  PagesListData{Pages: pages, Pagination: pagination},
	})
}

// Show handles GET /pages/{id} - displays a page.
func (h *PagesHandler) Show(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}

	breadcrumb.FromRequest(r).Set("page", page)

	h.renderer.RenderPage(w, r, "pages/show", render.TemplateData{
		Title: page.Title,
		Data:  PageShowData{Page: page},
	})
}

// NewForm handles GET /pages/new - displays the new page form.
func (h *PagesHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	page := &model.Page{Status: model.PageStatusDraft}
	h.renderNewForm(w, r, page, nil)
}

// Create handles POST /pages - creates a new page.
func (h *PagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	page, formErrors, ok := parsePageForm(w, r)
	if !ok {
		return
	}
	if len(formErrors) > 0 {
		h.renderNewForm(w, r, page, formErrors)
		return
	}

	now := time.Now()
	created, err := h.queries.CreatePage(r.Context(), store.CreatePageParams{
		Title:     page.Title,
		Body:      page.Body,
		Status:    page.Status,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.Error("failed to create page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.Info("page created", "page_id", created.ID, "title", created.Title)
	http.Redirect(w, r, created.Path(), http.StatusSeeOther)
}

// EditForm handles GET /pages/{id}/edit - displays the edit form.
func (h *PagesHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	page, ok := h.loadPage(w, r)
	if !ok {
		return
	}
	h.renderEditForm(w, r, page, page, nil)
}

// Update handles POST /pages/{id} - updates a page.
func (h *PagesHandler) Update(w http.ResponseWriter, r *http.Request) {
	stored, ok := h.loadPage(w, r)
	if !ok {
		return
	}

	submitted, formErrors, ok := parsePageForm(w, r)
	if !ok {
		return
	}
	submitted.ID = stored.ID
	submitted.CreatedAt = stored.CreatedAt

	if len(formErrors) > 0 {
		h.renderEditForm(w, r, stored, submitted, formErrors)
		return
	}

	err := h.queries.UpdatePage(r.Context(), store.UpdatePageParams{
		ID:        stored.ID,
		Title:     submitted.Title,
		Body:      submitted.Body,
		Status:    submitted.Status,
		UpdatedAt: time.Now(),
	})
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to update page", "page_id", stored.ID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	slog.Info("page updated", "page_id", stored.ID)
	http.Redirect(w, r, stored.Path(), http.StatusSeeOther)
}

// renderNewForm renders the new page form. The resource crumb reads
// "New Page" because the page has not been saved.
func (h *PagesHandler) renderNewForm(w http.ResponseWriter, r *http.Request, page *model.Page, formErrors map[string]string) {
	breadcrumb.FromRequest(r).Set("page", page)

	status := http.StatusOK
	if len(formErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}

	h.renderer.RenderPage(w, r, "pages/form", render.TemplateData{
		Title:      "New Page",
		Data:       PageFormData{Page: page, Statuses: model.ValidStatuses, Errors: formErrors},
		StatusCode: status,
	})
}

// renderEditForm renders the edit form for form. The trail names the stored
// page, so a rejected title change does not show up in it.
func (h *PagesHandler) renderEditForm(w http.ResponseWriter, r *http.Request, stored, form *model.Page, formErrors map[string]string) {
	crumbs := breadcrumb.FromRequest(r)
	crumbs.Provide(AccessorPage, stored.Path)
	if err := crumbs.Add(stored, breadcrumb.Accessor(AccessorPage)); err != nil {
		slog.Error("failed to add page breadcrumb", "page_id", stored.ID, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	crumbs.Append("Edit", "")

	status := http.StatusOK
	if len(formErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}

	h.renderer.RenderPage(w, r, "pages/form", render.TemplateData{
		Title:      "Edit Page - " + stored.Title,
		Data:       PageFormData{Page: form, Statuses: model.ValidStatuses, Errors: formErrors},
		StatusCode: status,
	})
}

// loadPage loads the page named by the {id} URL parameter, answering 404
// when the ID is malformed or unknown.
func (h *PagesHandler) loadPage(w http.ResponseWriter, r *http.Request) (*model.Page, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return nil, false
	}

	page, err := h.queries.GetPage(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		slog.Error("failed to get page", "page_id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return page, true
}

// parsePageForm reads and validates the page form. It answers 400 and
// returns ok=false if the form cannot be parsed.
func parsePageForm(w http.ResponseWriter, r *http.Request) (page *model.Page, formErrors map[string]string, ok bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return nil, nil, false
	}

	page = &model.Page{
		Title:  strings.TrimSpace(r.FormValue("title")),
		Body:   r.FormValue("body"),
		Status: r.FormValue("status"),
	}

	formErrors = make(map[string]string)

	switch n := len([]rune(page.Title)); {
	case n == 0:
		formErrors["title"] = "Title is required"
	case n < 2:
		formErrors["title"] = "Title must be at least 2 characters"
	case n > MaxTitleLength:
		formErrors["title"] = "Title must be at most " + strconv.Itoa(MaxTitleLength) + " characters"
	}

	if page.Status == "" {
		page.Status = model.PageStatusDraft
	} else if !model.IsValidStatus(page.Status) {
		formErrors["status"] = "Invalid status"
	}

	return page, formErrors, true
}
