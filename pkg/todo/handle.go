package todo

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/tendant/simple-todo/pkg/apierror"
)

// Handle serves the todo routes. All todo operations are unauthenticated.
type Handle struct {
	todoService *TodoService
}

func NewHandle(todoService *TodoService) Handle {
	return Handle{
		todoService: todoService,
	}
}

// Routes mounts the todo endpoints
func (h Handle) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Patch("/{todoId}", h.Patch)
	r.Delete("/{todoId}", h.Delete)
}

// List all todos
// (GET /todos)
func (h Handle) List(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.FindTodos(r.Context())
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, todos)
}

// Create a new todo
// (POST /todos)
func (h Handle) Create(w http.ResponseWriter, r *http.Request) {
	var patch TodoPatch
	if err := decodeJSON(r, &patch); err != nil {
		apierror.Render(w, r, err)
		return
	}

	t, err := h.todoService.CreateTodo(r.Context(), patch)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, t)
}

// Apply a partial patch to a todo
// (PATCH /todos/{todoId})
func (h Handle) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	var patch TodoPatch
	if err := decodeJSON(r, &patch); err != nil {
		apierror.Render(w, r, err)
		return
	}

	t, err := h.todoService.PatchTodo(r.Context(), id, patch)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, t)
}

// Delete a todo
// (DELETE /todos/{todoId})
func (h Handle) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		apierror.Render(w, r, err)
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		apierror.Render(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func todoID(r *http.Request) (int32, error) {
	id64, err := strconv.ParseInt(chi.URLParam(r, "todoId"), 10, 32)
	if err != nil {
		return 0, apierror.InvalidInput("invalid todo id")
	}
	return int32(id64), nil
}

func decodeJSON(r *http.Request, v interface{}) error {
	if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		return apierror.New(apierror.ErrCodeUnsupported, "expected application/json content type")
	}
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return apierror.InvalidInput("unable to parse body")
	}
	return nil
}
