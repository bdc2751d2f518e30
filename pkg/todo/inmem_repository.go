package todo

import (
	"context"
	"sync"
)

// InMemoryTodoRepository implements TodoRepository using in-memory storage.
// Intended for tests and demos.
type InMemoryTodoRepository struct {
	mu     sync.RWMutex
	todos  map[int32]Todo
	nextID int32
}

// NewInMemoryTodoRepository creates a new in-memory todo repository
func NewInMemoryTodoRepository() *InMemoryTodoRepository {
	return &InMemoryTodoRepository{
		todos:  make(map[int32]Todo),
		nextID: 1,
	}
}

func (r *InMemoryTodoRepository) Create(ctx context.Context, title string, done bool) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := Todo{
		ID:    r.nextID,
		Title: title,
		Done:  done,
	}
	r.todos[t.ID] = t
	r.nextID++

	return t.ID, nil
}

func (r *InMemoryTodoRepository) Get(ctx context.Context, id int32) (Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.todos[id]
	if !ok {
		return Todo{}, ErrTodoNotFound
	}

	return t, nil
}

func (r *InMemoryTodoRepository) List(ctx context.Context) ([]Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []Todo{}
	for id := int32(1); id < r.nextID; id++ {
		if t, ok := r.todos[id]; ok {
			todos = append(todos, t)
		}
	}

	return todos, nil
}

func (r *InMemoryTodoRepository) Update(ctx context.Context, todo Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[todo.ID]; !ok {
		return nil
	}
	r.todos[todo.ID] = todo

	return nil
}

func (r *InMemoryTodoRepository) Delete(ctx context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.todos, id)
	return nil
}
