package todo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/simple-todo/pkg/apierror"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTodoDefaults(t *testing.T) {
	ctx := context.Background()
	service := NewTodoService(NewInMemoryTodoRepository())

	tests := []struct {
		name  string
		patch TodoPatch
		want  Todo
	}{
		{
			name:  "no fields supplied",
			patch: TodoPatch{},
			want:  Todo{Title: "", Done: false},
		},
		{
			name:  "title only",
			patch: TodoPatch{Title: strPtr("buy milk")},
			want:  Todo{Title: "buy milk", Done: false},
		},
		{
			name:  "done only",
			patch: TodoPatch{Done: boolPtr(true)},
			want:  Todo{Title: "", Done: true},
		},
		{
			name:  "both fields",
			patch: TodoPatch{Title: strPtr("walk dog"), Done: boolPtr(true)},
			want:  Todo{Title: "walk dog", Done: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := service.CreateTodo(ctx, tt.patch)
			require.NoError(t, err)
			assert.NotZero(t, created.ID)
			assert.Equal(t, tt.want.Title, created.Title)
			assert.Equal(t, tt.want.Done, created.Done)
		})
	}
}

func TestCreateTodoRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := NewTodoService(NewInMemoryTodoRepository())

	created, err := service.CreateTodo(ctx, TodoPatch{Title: strPtr("buy milk")})
	require.NoError(t, err)

	list, err := service.FindTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Todo{created}, list)
}

func TestPatchTodoMergeSemantics(t *testing.T) {
	ctx := context.Background()
	service := NewTodoService(NewInMemoryTodoRepository())

	created, err := service.CreateTodo(ctx, TodoPatch{Title: strPtr("buy milk")})
	require.NoError(t, err)

	// done only: title untouched
	patched, err := service.PatchTodo(ctx, created.ID, TodoPatch{Done: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, Todo{ID: created.ID, Title: "buy milk", Done: true}, patched)

	// empty patch is a no-op
	patched, err = service.PatchTodo(ctx, created.ID, TodoPatch{})
	require.NoError(t, err)
	assert.Equal(t, Todo{ID: created.ID, Title: "buy milk", Done: true}, patched)

	// explicit zero values overwrite
	patched, err = service.PatchTodo(ctx, created.ID, TodoPatch{Title: strPtr(""), Done: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, Todo{ID: created.ID, Title: "", Done: false}, patched)
}

func TestPatchTodoNotFound(t *testing.T) {
	ctx := context.Background()
	service := NewTodoService(NewInMemoryTodoRepository())

	_, err := service.PatchTodo(ctx, 99, TodoPatch{Done: boolPtr(true)})
	require.Error(t, err)
	assert.True(t, apierror.IsCode(err, apierror.ErrCodeNotFound))
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()
	service := NewTodoService(NewInMemoryTodoRepository())

	created, err := service.CreateTodo(ctx, TodoPatch{Title: strPtr("buy milk")})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTodo(ctx, created.ID))

	list, err := service.FindTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// deleting an absent id is indistinguishable from success
	assert.NoError(t, service.DeleteTodo(ctx, created.ID))
	assert.NoError(t, service.DeleteTodo(ctx, 12345))
}
