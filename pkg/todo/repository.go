package todo

import (
	"context"
	"errors"
)

// ErrTodoNotFound is returned when no todo matches
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines persistence for todo rows. Deletion is permanent;
// there is no soft-delete flag on todos.
type TodoRepository interface {
	Create(ctx context.Context, title string, done bool) (int32, error)
	Get(ctx context.Context, id int32) (Todo, error)
	List(ctx context.Context) ([]Todo, error)
	Update(ctx context.Context, todo Todo) error
	Delete(ctx context.Context, id int32) error
}
