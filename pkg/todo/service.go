package todo

import (
	"context"
	"errors"

	"github.com/tendant/simple-todo/pkg/apierror"
)

// TodoService provides the todo lifecycle: create with defaults, list,
// partial patch and unconditional delete. The read-merge-write patch flow
// is deliberately not transactional: two concurrent patches against the
// same id can interleave, and the last write wins.
type TodoService struct {
	repo TodoRepository
}

// NewTodoService creates a new todo service
func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

// FindTodos lists all todos
func (s *TodoService) FindTodos(ctx context.Context) ([]Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.InternalWrap(err, "failed to find todos")
	}
	return todos, nil
}

// CreateTodo inserts a todo, defaulting omitted fields to title "" and
// done false, and returns the created row
func (s *TodoService) CreateTodo(ctx context.Context, patch TodoPatch) (Todo, error) {
	t := Todo{}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}

	id, err := s.repo.Create(ctx, t.Title, t.Done)
	if err != nil {
		return Todo{}, apierror.InternalWrap(err, "failed to create todo")
	}
	t.ID = id

	return t, nil
}

// PatchTodo merges the supplied fields over the current row, persists the
// full row and returns it. Absent fields keep their prior values; an empty
// patch is a no-op write.
func (s *TodoService) PatchTodo(ctx context.Context, id int32, patch TodoPatch) (Todo, error) {
	t, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrTodoNotFound) {
		return Todo{}, apierror.NotFound("todo", id)
	}
	if err != nil {
		return Todo{}, apierror.InternalWrap(err, "failed to get todo")
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Done != nil {
		t.Done = *patch.Done
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return Todo{}, apierror.InternalWrap(err, "failed to update todo")
	}

	return t, nil
}

// DeleteTodo removes a todo by id. Deleting an id that never existed is
// not an error.
func (s *TodoService) DeleteTodo(ctx context.Context, id int32) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.InternalWrap(err, "failed to delete todo")
	}
	return nil
}
